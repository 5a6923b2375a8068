package memory

import (
	"context"
	"slices"
	"strings"
	"sync"

	"fulfillment/internal/core/domain/model/kernel"
	"fulfillment/internal/core/domain/model/shipping"
	"fulfillment/internal/pkg/errs"
)

type ShippingRepository struct {
	mu      sync.RWMutex
	records map[kernel.ID]shipping.Record
}

func NewShippingRepository() *ShippingRepository {
	return &ShippingRepository{records: make(map[kernel.ID]shipping.Record)}
}

func (r *ShippingRepository) Save(ctx context.Context, s shipping.Shipping) error {
	if err := ctx.Err(); err != nil {
		return errs.NewRepositoryError("save shipping", err)
	}
	if err := s.Validate(); err != nil {
		return err
	}

	r.mu.Lock()
	defer r.mu.Unlock()
	r.records[s.ID()] = s.Record()
	return nil
}

func (r *ShippingRepository) FindByID(ctx context.Context, id kernel.ID) (shipping.Shipping, error) {
	if err := ctx.Err(); err != nil {
		return shipping.Shipping{}, errs.NewRepositoryError("find shipping", err)
	}

	r.mu.RLock()
	rec, ok := r.records[id]
	r.mu.RUnlock()
	if !ok {
		return shipping.Shipping{}, errs.NewObjectNotFoundError("shipping", id)
	}
	return shipping.Restore(rec)
}

func (r *ShippingRepository) FindByOrderID(ctx context.Context, orderID kernel.ID) (shipping.Shipping, error) {
	if err := ctx.Err(); err != nil {
		return shipping.Shipping{}, errs.NewRepositoryError("find shipping by order", err)
	}

	r.mu.RLock()
	var (
		found shipping.Record
		ok    bool
	)
	for _, rec := range r.records {
		if rec.OrderID == orderID.String() {
			found, ok = rec, true
			break
		}
	}
	r.mu.RUnlock()

	if !ok {
		return shipping.Shipping{}, errs.NewObjectNotFoundError("shipping of order", orderID)
	}
	return shipping.Restore(found)
}

func (r *ShippingRepository) FindByStatus(
	ctx context.Context,
	status shipping.StatusKind,
	limit int,
) ([]shipping.Shipping, error) {
	if err := ctx.Err(); err != nil {
		return nil, errs.NewRepositoryError("find shipping by status", err)
	}

	r.mu.RLock()
	var recs []shipping.Record
	for _, rec := range r.records {
		if rec.Status.Kind == status.String() {
			recs = append(recs, rec)
		}
	}
	r.mu.RUnlock()

	slices.SortFunc(recs, func(a, b shipping.Record) int {
		if c := a.UpdatedAt.Compare(b.UpdatedAt); c != 0 {
			return c
		}
		return strings.Compare(a.ID, b.ID)
	})
	if limit > 0 && len(recs) > limit {
		recs = recs[:limit]
	}

	result := make([]shipping.Shipping, 0, len(recs))
	for _, rec := range recs {
		s, err := shipping.Restore(rec)
		if err != nil {
			return nil, err
		}
		result = append(result, s)
	}
	return result, nil
}

func (r *ShippingRepository) NextID() kernel.ID {
	return kernel.NewID()
}
