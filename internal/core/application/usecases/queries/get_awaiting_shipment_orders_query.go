package queries

import (
	"errors"
	"time"

	"fulfillment/internal/core/domain/model/kernel"
	"fulfillment/internal/pkg/errs"
	"fulfillment/internal/pkg/guard"

	"github.com/shopspring/decimal"
)

const (
	DefaultAwaitingShipmentLimit = 50
	MaxAwaitingShipmentLimit     = 500
)

var (
	ErrGetAwaitingShipmentOrdersQueryIsNotConstructed = errors.New(
		"GetAwaitingShipmentOrdersQuery must be created via NewGetAwaitingShipmentOrdersQuery constructor",
	)
)

// GetAwaitingShipmentOrdersQuery lists paid orders that have no shipment yet,
// the work queue of the warehouse.
//
// Example:
//
//	query, err := NewGetAwaitingShipmentOrdersQuery(0)
//	handler := NewGetAwaitingShipmentOrdersQueryHandler(db)
//
//	orders, err := handler.Handle(ctx, query)
//	if err != nil {
//	    return fmt.Errorf("failed to list orders awaiting shipment: %w", err)
//	}
//
//	for _, o := range orders {
//	    fmt.Printf("Order %s paid at %s, %d products\n", o.ID, o.PaidAt, len(o.ProductIDs))
//	}
type GetAwaitingShipmentOrdersQuery struct {
	limit int
	guard guard.ConstructorGuard
}

// NewGetAwaitingShipmentOrdersQuery bounds the result to limit rows.
// Zero selects DefaultAwaitingShipmentLimit.
func NewGetAwaitingShipmentOrdersQuery(limit int) (GetAwaitingShipmentOrdersQuery, error) {
	if limit == 0 {
		limit = DefaultAwaitingShipmentLimit
	}
	if limit < 1 || limit > MaxAwaitingShipmentLimit {
		return GetAwaitingShipmentOrdersQuery{}, errs.NewValueIsOutOfRangeError("limit", limit, 1, MaxAwaitingShipmentLimit)
	}
	return GetAwaitingShipmentOrdersQuery{limit: limit, guard: guard.NewConstructorGuard()}, nil
}

func (q GetAwaitingShipmentOrdersQuery) Validate() error {
	return q.guard.Validate(ErrGetAwaitingShipmentOrdersQueryIsNotConstructed)
}

func (q GetAwaitingShipmentOrdersQuery) Limit() int {
	return q.limit
}

// AwaitingShipmentOrder is one row of the awaiting shipment list.
type AwaitingShipmentOrder struct {
	ID          kernel.ID
	CustomerID  kernel.ID
	TotalAmount decimal.Decimal
	ProductIDs  []kernel.ID
	PaidAt      time.Time
}
