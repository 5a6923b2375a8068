package ports

import (
	"context"

	"fulfillment/internal/core/domain/model/kernel"
	"fulfillment/internal/core/domain/model/shipping"
)

// ShippingRepository stores shipment snapshots.
type ShippingRepository interface {
	// Save stores s as the latest snapshot for its id (last write wins).
	Save(ctx context.Context, s shipping.Shipping) error

	// FindByID returns the latest snapshot or errs.ObjectNotFoundError.
	FindByID(ctx context.Context, id kernel.ID) (shipping.Shipping, error)

	// FindByOrderID returns the shipment of an order or errs.ObjectNotFoundError.
	FindByOrderID(ctx context.Context, orderID kernel.ID) (shipping.Shipping, error)

	// FindByStatus returns up to limit shipments in the given status, least recently
	// updated first. A non-positive limit means no limit.
	FindByStatus(ctx context.Context, status shipping.StatusKind, limit int) ([]shipping.Shipping, error)

	NextID() kernel.ID
}
