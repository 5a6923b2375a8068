package commands

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"fulfillment/internal/core/domain/model/kernel"
	"fulfillment/internal/core/domain/model/order"
	"fulfillment/internal/core/domain/model/shipping"
	"fulfillment/internal/core/ports"
	"fulfillment/internal/pkg/errs"
	"fulfillment/internal/pkg/result"
)

// CreateShipmentCommandHandler opens the single shipment of a paid order.
type CreateShipmentCommandHandler struct {
	orders    ports.OrderRepository
	shipments ports.ShippingRepository
	clock     kernel.Clock
	logger    *slog.Logger
}

func NewCreateShipmentCommandHandler(
	orders ports.OrderRepository,
	shipments ports.ShippingRepository,
	clock kernel.Clock,
	logger *slog.Logger,
) *CreateShipmentCommandHandler {
	return &CreateShipmentCommandHandler{
		orders:    orders,
		shipments: shipments,
		clock:     clock,
		logger:    loggerOrDefault(logger, "create_shipment"),
	}
}

// Handle returns the id of the new shipment.
//
// Fails with not_found when the order does not exist and with
// business_rule_violation when it is not Paid or already has a shipment.
func (h *CreateShipmentCommandHandler) Handle(ctx context.Context, cmd CreateShipmentCommand) (kernel.ID, error) {
	loaded := result.Chain(validated(cmd), func(cmd CreateShipmentCommand) result.Task[order.Order] {
		return loadOrder(h.orders, cmd.OrderID())
	})
	paid := result.ChainResult(loaded, requirePaid)
	unshipped := result.Tap(paid, func(o order.Order) result.Task[result.Unit] {
		return h.requireNoShipment(o.ID())
	})
	created := result.ChainResult(unshipped, func(o order.Order) result.Result[shipping.Shipping] {
		return result.Of(shipping.New(h.shipments.NextID(), o.ID(), cmd.Address(), cmd.Method(), h.clock.Now()))
	})
	saved := result.Chain(created, saveShipping(h.shipments))

	return settle(ctx, h.logger, "create shipment", result.Map(saved, shipping.Shipping.ID))
}

func requirePaid(o order.Order) result.Result[order.Order] {
	if kind := o.Status().Kind(); kind != order.StatusPaid {
		return result.Fail[order.Order](errs.NewBusinessRuleViolationErrorWithCause(
			"only paid orders can be shipped",
			fmt.Errorf("order %s is %s", o.ID(), kind),
		))
	}
	return result.Ok(o)
}

// requireNoShipment succeeds only when the repository reports no shipment for orderID.
func (h *CreateShipmentCommandHandler) requireNoShipment(orderID kernel.ID) result.Task[result.Unit] {
	lookup := result.Try(func(ctx context.Context) (shipping.Shipping, error) {
		return h.shipments.FindByOrderID(ctx, orderID)
	}, repositoryFault("find shipping by order"))

	return func(ctx context.Context) result.Result[result.Unit] {
		existing, err := lookup.Run(ctx).Unwrap()
		switch {
		case err == nil:
			return result.Fail[result.Unit](errs.NewBusinessRuleViolationErrorWithCause(
				"order already has a shipment",
				fmt.Errorf("shipping %s for order %s", existing.ID(), orderID),
			))
		case errors.Is(err, errs.ErrObjectNotFound):
			return result.Ok(result.Unit{})
		default:
			return result.Fail[result.Unit](err)
		}
	}
}
