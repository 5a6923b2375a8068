package commands

import (
	"context"
	"log/slog"

	"fulfillment/internal/core/domain/model/kernel"
	"fulfillment/internal/core/domain/model/order"
	"fulfillment/internal/core/ports"
	"fulfillment/internal/pkg/result"
)

// CancelOrderCommandHandler cancels an order. No event is published.
type CancelOrderCommandHandler struct {
	orders ports.OrderRepository
	clock  kernel.Clock
	logger *slog.Logger
}

func NewCancelOrderCommandHandler(
	orders ports.OrderRepository,
	clock kernel.Clock,
	logger *slog.Logger,
) *CancelOrderCommandHandler {
	return &CancelOrderCommandHandler{
		orders: orders,
		clock:  clock,
		logger: loggerOrDefault(logger, "cancel_order"),
	}
}

func (h *CancelOrderCommandHandler) Handle(ctx context.Context, cmd CancelOrderCommand) error {
	loaded := result.Chain(validated(cmd), func(cmd CancelOrderCommand) result.Task[order.Order] {
		return loadOrder(h.orders, cmd.OrderID())
	})
	cancelled := result.ChainResult(loaded, func(o order.Order) result.Result[order.Order] {
		return result.Of(o.Cancel(h.clock.Now(), cmd.Reason()))
	})

	_, err := settle(ctx, h.logger, "cancel order", result.Chain(cancelled, saveOrder(h.orders)))
	return err
}
