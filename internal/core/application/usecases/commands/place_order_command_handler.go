package commands

import (
	"context"
	"log/slog"
	"time"

	"fulfillment/internal/core/domain/events"
	"fulfillment/internal/core/domain/model/kernel"
	"fulfillment/internal/core/domain/model/order"
	"fulfillment/internal/core/ports"
	"fulfillment/internal/pkg/errs"
	"fulfillment/internal/pkg/result"
)

// PlaceOrderCommandHandler creates a draft, adds the requested lines, places it,
// stores it and publishes order_placed.
type PlaceOrderCommandHandler struct {
	orders    ports.OrderRepository
	publisher ports.EventPublisher
	clock     kernel.Clock
	logger    *slog.Logger
}

func NewPlaceOrderCommandHandler(
	orders ports.OrderRepository,
	publisher ports.EventPublisher,
	clock kernel.Clock,
	logger *slog.Logger,
) *PlaceOrderCommandHandler {
	return &PlaceOrderCommandHandler{
		orders:    orders,
		publisher: publisher,
		clock:     clock,
		logger:    loggerOrDefault(logger, "place_order"),
	}
}

// Handle returns the id of the placed order.
//
// A line the order refuses (for example a repeated product) stops the fold and is
// reported as a business rule violation; the order is then neither saved nor
// announced.
func (h *PlaceOrderCommandHandler) Handle(ctx context.Context, cmd PlaceOrderCommand) (kernel.ID, error) {
	placed := result.ChainResult(validated(cmd), func(cmd PlaceOrderCommand) result.Result[order.Order] {
		now := h.clock.Now()
		draft := result.Of(order.New(h.orders.NextID(), cmd.CustomerID(), now))
		filled := result.Bind(draft, func(o order.Order) result.Result[order.Order] {
			return result.Fold(cmd.Lines(), o, addLine(now))
		})
		return result.Bind(filled, func(o order.Order) result.Result[order.Order] {
			return result.Of(o.Place(now))
		})
	})

	saved := result.Chain(placed, saveOrder(h.orders))
	announced := result.Tap(saved, func(o order.Order) result.Task[result.Unit] {
		return publish(h.publisher, events.NewOrderPlaced(o))
	})

	return settle(ctx, h.logger, "place order", result.Map(announced, order.Order.ID))
}

func addLine(now time.Time) func(order.Order, order.Line) result.Result[order.Order] {
	return func(o order.Order, line order.Line) result.Result[order.Order] {
		next, err := o.AddLine(line, now)
		if err != nil && errs.KindOf(err) != errs.KindBusinessRule {
			err = errs.NewBusinessRuleViolationErrorWithCause("order line rejected", err)
		}
		return result.Of(next, err)
	}
}
