package queries

import (
	"errors"

	"fulfillment/internal/core/domain/model/kernel"
	"fulfillment/internal/pkg/guard"
)

var (
	ErrGetOrderQueryIsNotConstructed = errors.New(
		"GetOrderQuery must be created via NewGetOrderQuery constructor",
	)
	ErrGetShipmentByOrderQueryIsNotConstructed = errors.New(
		"GetShipmentByOrderQuery must be created via NewGetShipmentByOrderQuery constructor",
	)
	ErrListCustomerOrdersQueryIsNotConstructed = errors.New(
		"ListCustomerOrdersQuery must be created via NewListCustomerOrdersQuery constructor",
	)
)

// GetOrderQuery fetches one order by id.
type GetOrderQuery struct {
	orderID kernel.ID
	guard   guard.ConstructorGuard
}

func NewGetOrderQuery(orderID kernel.ID) (GetOrderQuery, error) {
	if err := orderID.Validate(); err != nil {
		return GetOrderQuery{}, err
	}
	return GetOrderQuery{orderID: orderID, guard: guard.NewConstructorGuard()}, nil
}

func (q GetOrderQuery) Validate() error {
	return q.guard.Validate(ErrGetOrderQueryIsNotConstructed)
}

func (q GetOrderQuery) OrderID() kernel.ID {
	return q.orderID
}

// GetShipmentByOrderQuery fetches the shipment of an order.
type GetShipmentByOrderQuery struct {
	orderID kernel.ID
	guard   guard.ConstructorGuard
}

func NewGetShipmentByOrderQuery(orderID kernel.ID) (GetShipmentByOrderQuery, error) {
	if err := orderID.Validate(); err != nil {
		return GetShipmentByOrderQuery{}, err
	}
	return GetShipmentByOrderQuery{orderID: orderID, guard: guard.NewConstructorGuard()}, nil
}

func (q GetShipmentByOrderQuery) Validate() error {
	return q.guard.Validate(ErrGetShipmentByOrderQueryIsNotConstructed)
}

func (q GetShipmentByOrderQuery) OrderID() kernel.ID {
	return q.orderID
}

// ListCustomerOrdersQuery lists every order of a customer, oldest first.
type ListCustomerOrdersQuery struct {
	customerID kernel.ID
	guard      guard.ConstructorGuard
}

func NewListCustomerOrdersQuery(customerID kernel.ID) (ListCustomerOrdersQuery, error) {
	if err := customerID.Validate(); err != nil {
		return ListCustomerOrdersQuery{}, err
	}
	return ListCustomerOrdersQuery{customerID: customerID, guard: guard.NewConstructorGuard()}, nil
}

func (q ListCustomerOrdersQuery) Validate() error {
	return q.guard.Validate(ErrListCustomerOrdersQueryIsNotConstructed)
}

func (q ListCustomerOrdersQuery) CustomerID() kernel.ID {
	return q.customerID
}
