package queries

import (
	"context"
	"errors"

	"fulfillment/internal/core/ports"
	"fulfillment/internal/pkg/errs"
)

// OrderQueryHandler answers the order and shipment lookups through the repositories.
//
// Example:
//
//	handler := NewOrderQueryHandler(orderRepo, shippingRepo)
//	query, _ := NewGetOrderQuery(orderID)
//	view, err := handler.GetOrder(ctx, query)
//	if errors.Is(err, errs.ErrObjectNotFound) {
//	    // 404
//	}
type OrderQueryHandler struct {
	orders    ports.OrderRepository
	shipments ports.ShippingRepository
}

func NewOrderQueryHandler(orders ports.OrderRepository, shipments ports.ShippingRepository) OrderQueryHandler {
	return OrderQueryHandler{orders: orders, shipments: shipments}
}

func (h OrderQueryHandler) GetOrder(ctx context.Context, query GetOrderQuery) (OrderView, error) {
	if err := query.Validate(); err != nil {
		return OrderView{}, errs.NewValueIsInvalidErrorWithCause("query", err)
	}

	o, err := h.orders.FindByID(ctx, query.OrderID())
	if err != nil {
		return OrderView{}, readFault("find order", err)
	}
	return newOrderView(o), nil
}

func (h OrderQueryHandler) GetShipmentByOrder(ctx context.Context, query GetShipmentByOrderQuery) (ShipmentView, error) {
	if err := query.Validate(); err != nil {
		return ShipmentView{}, errs.NewValueIsInvalidErrorWithCause("query", err)
	}

	s, err := h.shipments.FindByOrderID(ctx, query.OrderID())
	if err != nil {
		return ShipmentView{}, readFault("find shipping by order", err)
	}
	return newShipmentView(s), nil
}

func (h OrderQueryHandler) ListCustomerOrders(ctx context.Context, query ListCustomerOrdersQuery) ([]OrderView, error) {
	if err := query.Validate(); err != nil {
		return nil, errs.NewValueIsInvalidErrorWithCause("query", err)
	}

	orders, err := h.orders.FindByCustomer(ctx, query.CustomerID())
	if err != nil {
		return nil, readFault("find orders by customer", err)
	}

	views := make([]OrderView, 0, len(orders))
	for _, o := range orders {
		views = append(views, newOrderView(o))
	}
	return views, nil
}

func readFault(operation string, err error) error {
	var repoErr *errs.RepositoryError
	if errors.Is(err, errs.ErrObjectNotFound) || errors.As(err, &repoErr) {
		return err
	}
	return errs.NewRepositoryError(operation, err)
}
