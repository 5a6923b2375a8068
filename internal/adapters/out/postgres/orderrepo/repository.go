package orderrepo

import (
	"context"
	"errors"

	"fulfillment/internal/core/domain/model/kernel"
	"fulfillment/internal/core/domain/model/order"
	"fulfillment/internal/pkg/errs"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// GormOrderRepository implements ports.OrderRepository using GORM.
// Save is an upsert, so concurrent writers of the same order resolve as last write wins.
type GormOrderRepository struct {
	db *gorm.DB
}

func NewGormOrderRepository(db *gorm.DB) *GormOrderRepository {
	return &GormOrderRepository{db: db}
}

// Save inserts or replaces the order row together with all of its lines.
func (r *GormOrderRepository) Save(ctx context.Context, aggregate order.Order) error {
	if err := aggregate.Validate(); err != nil {
		return err
	}

	dto, err := fromDomain(aggregate)
	if err != nil {
		return errs.NewRepositoryError("map order", err)
	}

	err = r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Omit(clause.Associations).
			Clauses(clause.OnConflict{UpdateAll: true}).
			Create(&dto).Error; err != nil {
			return err
		}
		if err := tx.Where("order_id = ?", dto.ID).Delete(&LineDTO{}).Error; err != nil {
			return err
		}
		if len(dto.Lines) == 0 {
			return nil
		}
		return tx.Create(&dto.Lines).Error
	})
	if err != nil {
		return errs.NewRepositoryError("save order", err)
	}
	return nil
}

func (r *GormOrderRepository) FindByID(ctx context.Context, id kernel.ID) (order.Order, error) {
	if err := id.Validate(); err != nil {
		return order.Order{}, err
	}

	var dto OrderDTO
	if err := r.withLines(ctx).First(&dto, "id = ?", id.UUID()).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return order.Order{}, errs.NewObjectNotFoundError("order", id)
		}
		return order.Order{}, errs.NewRepositoryError("find order", err)
	}

	o, err := toDomain(dto)
	if err != nil {
		return order.Order{}, errs.NewRepositoryError("decode order", err)
	}
	return o, nil
}

// FindByCustomer returns the customer's orders oldest first.
func (r *GormOrderRepository) FindByCustomer(ctx context.Context, customerID kernel.ID) ([]order.Order, error) {
	if err := customerID.Validate(); err != nil {
		return nil, err
	}

	var dtos []OrderDTO
	if err := r.withLines(ctx).
		Where("customer_id = ?", customerID.UUID()).
		Order("created_at, id").
		Find(&dtos).Error; err != nil {
		return nil, errs.NewRepositoryError("find orders by customer", err)
	}

	orders := make([]order.Order, 0, len(dtos))
	for _, dto := range dtos {
		o, err := toDomain(dto)
		if err != nil {
			return nil, errs.NewRepositoryError("decode order", err)
		}
		orders = append(orders, o)
	}
	return orders, nil
}

func (r *GormOrderRepository) NextID() kernel.ID {
	return kernel.NewID()
}

func (r *GormOrderRepository) withLines(ctx context.Context) *gorm.DB {
	return r.db.WithContext(ctx).Preload("Lines", func(db *gorm.DB) *gorm.DB {
		return db.Order("position")
	})
}
