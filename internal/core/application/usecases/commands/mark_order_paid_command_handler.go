package commands

import (
	"context"
	"log/slog"

	"fulfillment/internal/core/domain/events"
	"fulfillment/internal/core/domain/model/kernel"
	"fulfillment/internal/core/domain/model/order"
	"fulfillment/internal/core/ports"
	"fulfillment/internal/pkg/result"
)

// MarkOrderPaidCommandHandler moves a Placed order to Paid and publishes order_paid.
type MarkOrderPaidCommandHandler struct {
	orders    ports.OrderRepository
	publisher ports.EventPublisher
	clock     kernel.Clock
	logger    *slog.Logger
}

func NewMarkOrderPaidCommandHandler(
	orders ports.OrderRepository,
	publisher ports.EventPublisher,
	clock kernel.Clock,
	logger *slog.Logger,
) *MarkOrderPaidCommandHandler {
	return &MarkOrderPaidCommandHandler{
		orders:    orders,
		publisher: publisher,
		clock:     clock,
		logger:    loggerOrDefault(logger, "mark_order_paid"),
	}
}

func (h *MarkOrderPaidCommandHandler) Handle(ctx context.Context, cmd MarkOrderPaidCommand) error {
	loaded := result.Chain(validated(cmd), func(cmd MarkOrderPaidCommand) result.Task[order.Order] {
		return loadOrder(h.orders, cmd.OrderID())
	})
	paid := result.ChainResult(loaded, func(o order.Order) result.Result[order.Order] {
		return result.Of(o.MarkPaid(h.clock.Now()))
	})
	saved := result.Chain(paid, saveOrder(h.orders))
	announced := result.Chain(saved, func(o order.Order) result.Task[result.Unit] {
		return publish(h.publisher, events.NewOrderPaid(o))
	})

	_, err := settle(ctx, h.logger, "mark order paid", announced)
	return err
}
