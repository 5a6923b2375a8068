package memory

import (
	"context"
	"slices"
	"strings"
	"sync"

	"fulfillment/internal/core/domain/model/kernel"
	"fulfillment/internal/core/domain/model/order"
	"fulfillment/internal/pkg/errs"
)

type OrderRepository struct {
	mu      sync.RWMutex
	records map[kernel.ID]order.Record
}

func NewOrderRepository() *OrderRepository {
	return &OrderRepository{records: make(map[kernel.ID]order.Record)}
}

func (r *OrderRepository) Save(ctx context.Context, o order.Order) error {
	if err := ctx.Err(); err != nil {
		return errs.NewRepositoryError("save order", err)
	}
	if err := o.Validate(); err != nil {
		return err
	}

	r.mu.Lock()
	defer r.mu.Unlock()
	r.records[o.ID()] = o.Record()
	return nil
}

func (r *OrderRepository) FindByID(ctx context.Context, id kernel.ID) (order.Order, error) {
	if err := ctx.Err(); err != nil {
		return order.Order{}, errs.NewRepositoryError("find order", err)
	}

	r.mu.RLock()
	rec, ok := r.records[id]
	r.mu.RUnlock()
	if !ok {
		return order.Order{}, errs.NewObjectNotFoundError("order", id)
	}
	return order.Restore(rec)
}

func (r *OrderRepository) FindByCustomer(ctx context.Context, customerID kernel.ID) ([]order.Order, error) {
	if err := ctx.Err(); err != nil {
		return nil, errs.NewRepositoryError("find orders by customer", err)
	}

	r.mu.RLock()
	var recs []order.Record
	for _, rec := range r.records {
		if rec.CustomerID == customerID.String() {
			recs = append(recs, rec)
		}
	}
	r.mu.RUnlock()

	slices.SortFunc(recs, func(a, b order.Record) int {
		if c := a.CreatedAt.Compare(b.CreatedAt); c != 0 {
			return c
		}
		return strings.Compare(a.ID, b.ID)
	})

	orders := make([]order.Order, 0, len(recs))
	for _, rec := range recs {
		o, err := order.Restore(rec)
		if err != nil {
			return nil, err
		}
		orders = append(orders, o)
	}
	return orders, nil
}

func (r *OrderRepository) NextID() kernel.ID {
	return kernel.NewID()
}

// Len reports the number of stored orders.
func (r *OrderRepository) Len() int {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return len(r.records)
}
