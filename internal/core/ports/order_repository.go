// Package ports defines the collaborator contracts of the core: repositories that own
// the current aggregate snapshots and the publisher that receives domain events.
//
// Implementations live under internal/adapters/out. Absence is always reported as an
// errs.ObjectNotFoundError so callers can tell it apart from a failed call.
package ports

import (
	"context"

	"fulfillment/internal/core/domain/model/kernel"
	"fulfillment/internal/core/domain/model/order"
)

// OrderRepository stores order snapshots.
type OrderRepository interface {
	// Save stores o as the latest snapshot for its id. Repeated saves with the same
	// id overwrite the previous snapshot (last write wins).
	Save(ctx context.Context, o order.Order) error

	// FindByID returns the latest snapshot or errs.ObjectNotFoundError.
	FindByID(ctx context.Context, id kernel.ID) (order.Order, error)

	// FindByCustomer returns every order of the customer, oldest first.
	// An empty slice is not an error.
	FindByCustomer(ctx context.Context, customerID kernel.ID) ([]order.Order, error)

	// NextID returns a fresh identifier for a new order.
	NextID() kernel.ID
}
