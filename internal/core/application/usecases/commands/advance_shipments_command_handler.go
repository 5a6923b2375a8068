package commands

import (
	"context"
	"log/slog"

	"fulfillment/internal/core/domain/events"
	"fulfillment/internal/core/domain/model/kernel"
	"fulfillment/internal/core/domain/model/shipping"
	"fulfillment/internal/core/ports"
	"fulfillment/internal/pkg/result"
)

// AdvanceShipmentsReport counts the shipments moved by one run.
type AdvanceShipmentsReport struct {
	Prepared  int
	Shipped   int
	Delivered int
}

// Total is the number of transitions performed.
func (r AdvanceShipmentsReport) Total() int {
	return r.Prepared + r.Shipped + r.Delivered
}

// AdvanceShipmentsCommandHandler delivers shipped parcels whose estimated delivery
// date has been reached, ships prepared ones and starts preparing pending ones, in
// that order, so a shipment moves at most one step per run. Processing stops at the
// first failure.
type AdvanceShipmentsCommandHandler struct {
	shipments ports.ShippingRepository
	publisher ports.EventPublisher
	clock     kernel.Clock
	logger    *slog.Logger
}

func NewAdvanceShipmentsCommandHandler(
	shipments ports.ShippingRepository,
	publisher ports.EventPublisher,
	clock kernel.Clock,
	logger *slog.Logger,
) *AdvanceShipmentsCommandHandler {
	return &AdvanceShipmentsCommandHandler{
		shipments: shipments,
		publisher: publisher,
		clock:     clock,
		logger:    loggerOrDefault(logger, "advance_shipments"),
	}
}

func (h *AdvanceShipmentsCommandHandler) Handle(ctx context.Context, cmd AdvanceShipmentsCommand) (AdvanceShipmentsReport, error) {
	task := result.Chain(validated(cmd), func(cmd AdvanceShipmentsCommand) result.Task[AdvanceShipmentsReport] {
		limit := cmd.BatchSize()

		delivered := result.Map(h.stage(shipping.StatusShipped, limit, h.due, h.deliver), func(n int) AdvanceShipmentsReport {
			return AdvanceShipmentsReport{Delivered: n}
		})
		shipped := result.Chain(delivered, func(report AdvanceShipmentsReport) result.Task[AdvanceShipmentsReport] {
			return result.Map(h.stage(shipping.StatusPreparing, limit, always, h.ship), func(n int) AdvanceShipmentsReport {
				report.Shipped = n
				return report
			})
		})
		return result.Chain(shipped, func(report AdvanceShipmentsReport) result.Task[AdvanceShipmentsReport] {
			return result.Map(h.stage(shipping.StatusPending, limit, always, h.prepare), func(n int) AdvanceShipmentsReport {
				report.Prepared = n
				return report
			})
		})
	})

	report, err := settle(ctx, h.logger, "advance shipments", task)
	if err == nil && report.Total() > 0 {
		h.logger.InfoContext(ctx, "shipments advanced",
			"prepared", report.Prepared, "shipped", report.Shipped, "delivered", report.Delivered)
	}
	return report, err
}

// stage applies step to the shipments among the first limit in status that
// satisfy keep.
func (h *AdvanceShipmentsCommandHandler) stage(
	status shipping.StatusKind,
	limit int,
	keep func(shipping.Shipping) bool,
	step func(shipping.Shipping) result.Task[result.Unit],
) result.Task[int] {
	found := result.Try(func(ctx context.Context) ([]shipping.Shipping, error) {
		return h.shipments.FindByStatus(ctx, status, limit)
	}, repositoryFault("find shipping by status"))

	return result.Chain(found, func(batch []shipping.Shipping) result.Task[int] {
		selected := batch[:0]
		for _, s := range batch {
			if keep(s) {
				selected = append(selected, s)
			}
		}
		return forEach(selected, step)
	})
}

func always(shipping.Shipping) bool { return true }

// due reports whether the estimated delivery date has been reached.
func (h *AdvanceShipmentsCommandHandler) due(s shipping.Shipping) bool {
	return !s.EstimatedDeliveryDate().After(h.clock.Now())
}

func (h *AdvanceShipmentsCommandHandler) prepare(s shipping.Shipping) result.Task[result.Unit] {
	next := result.Lift(result.Of(s.StartPreparation(h.clock.Now())))
	return result.Map(result.Chain(next, saveShipping(h.shipments)), func(shipping.Shipping) result.Unit {
		return result.Unit{}
	})
}

func (h *AdvanceShipmentsCommandHandler) ship(s shipping.Shipping) result.Task[result.Unit] {
	next := result.Lift(result.Of(s.Ship(h.clock.Now())))
	return result.Chain(result.Chain(next, saveShipping(h.shipments)), func(s shipping.Shipping) result.Task[result.Unit] {
		return publish(h.publisher, events.NewShipmentStarted(s))
	})
}

func (h *AdvanceShipmentsCommandHandler) deliver(s shipping.Shipping) result.Task[result.Unit] {
	next := result.Lift(result.Of(s.Deliver(h.clock.Now())))
	return result.Chain(result.Chain(next, saveShipping(h.shipments)), func(s shipping.Shipping) result.Task[result.Unit] {
		return publish(h.publisher, events.NewShipmentDelivered(s))
	})
}

// forEach runs step for every item in order and counts the successes. It stops at
// the first failure.
func forEach[T any](items []T, step func(T) result.Task[result.Unit]) result.Task[int] {
	acc := result.Succeed(0)
	for _, item := range items {
		acc = result.Chain(acc, func(n int) result.Task[int] {
			return result.Map(step(item), func(result.Unit) int { return n + 1 })
		})
	}
	return acc
}
