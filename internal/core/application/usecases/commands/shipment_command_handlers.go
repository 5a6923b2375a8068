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

// ShipmentCommandHandler runs the manual shipment transitions: preparation,
// hand over to the carrier and delivery.
type ShipmentCommandHandler struct {
	shipments ports.ShippingRepository
	publisher ports.EventPublisher
	clock     kernel.Clock
	logger    *slog.Logger
}

func NewShipmentCommandHandler(
	shipments ports.ShippingRepository,
	publisher ports.EventPublisher,
	clock kernel.Clock,
	logger *slog.Logger,
) *ShipmentCommandHandler {
	return &ShipmentCommandHandler{
		shipments: shipments,
		publisher: publisher,
		clock:     clock,
		logger:    loggerOrDefault(logger, "shipment"),
	}
}

// HandleStartPreparation moves a Pending shipment to Preparing.
func (h *ShipmentCommandHandler) HandleStartPreparation(ctx context.Context, cmd StartShipmentPreparationCommand) error {
	task := result.Chain(validated(cmd), func(cmd StartShipmentPreparationCommand) result.Task[shipping.Shipping] {
		return transitionShipping(h.shipments, cmd.ShippingID(), func(s shipping.Shipping) (shipping.Shipping, error) {
			return s.StartPreparation(h.clock.Now())
		})
	})

	_, err := settle(ctx, h.logger, "start shipment preparation", task)
	return err
}

// HandleShip ships a Preparing shipment, publishes shipment_started and returns
// the issued tracking number.
func (h *ShipmentCommandHandler) HandleShip(ctx context.Context, cmd ShipShipmentCommand) (kernel.TrackingNumber, error) {
	shipped := result.Chain(validated(cmd), func(cmd ShipShipmentCommand) result.Task[shipping.Shipping] {
		return transitionShipping(h.shipments, cmd.ShippingID(), func(s shipping.Shipping) (shipping.Shipping, error) {
			return s.Ship(h.clock.Now())
		})
	})
	announced := result.Tap(shipped, func(s shipping.Shipping) result.Task[result.Unit] {
		return publish(h.publisher, events.NewShipmentStarted(s))
	})
	tracking := result.Map(announced, func(s shipping.Shipping) kernel.TrackingNumber {
		tn, _ := s.TrackingNumber()
		return tn
	})

	return settle(ctx, h.logger, "ship shipment", tracking)
}

// HandleDeliver completes a Shipped shipment and publishes shipment_delivered.
func (h *ShipmentCommandHandler) HandleDeliver(ctx context.Context, cmd DeliverShipmentCommand) error {
	delivered := result.Chain(validated(cmd), func(cmd DeliverShipmentCommand) result.Task[shipping.Shipping] {
		return transitionShipping(h.shipments, cmd.ShippingID(), func(s shipping.Shipping) (shipping.Shipping, error) {
			return s.Deliver(h.clock.Now())
		})
	})
	announced := result.Chain(delivered, func(s shipping.Shipping) result.Task[result.Unit] {
		return publish(h.publisher, events.NewShipmentDelivered(s))
	})

	_, err := settle(ctx, h.logger, "deliver shipment", announced)
	return err
}
