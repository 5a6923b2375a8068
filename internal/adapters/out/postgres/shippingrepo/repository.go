package shippingrepo

import (
	"context"
	"errors"

	"fulfillment/internal/core/domain/model/kernel"
	"fulfillment/internal/core/domain/model/shipping"
	"fulfillment/internal/pkg/errs"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// GormShippingRepository implements ports.ShippingRepository using GORM.
type GormShippingRepository struct {
	db *gorm.DB
}

func NewGormShippingRepository(db *gorm.DB) *GormShippingRepository {
	return &GormShippingRepository{db: db}
}

// Save upserts the shipment row.
func (r *GormShippingRepository) Save(ctx context.Context, aggregate shipping.Shipping) error {
	if err := aggregate.Validate(); err != nil {
		return err
	}

	dto, err := fromDomain(aggregate)
	if err != nil {
		return errs.NewRepositoryError("map shipping", err)
	}

	if err := r.db.WithContext(ctx).
		Clauses(clause.OnConflict{
			Columns:   []clause.Column{{Name: "id"}},
			UpdateAll: true,
		}).
		Create(&dto).Error; err != nil {
		return errs.NewRepositoryError("save shipping", err)
	}
	return nil
}

func (r *GormShippingRepository) FindByID(ctx context.Context, id kernel.ID) (shipping.Shipping, error) {
	if err := id.Validate(); err != nil {
		return shipping.Shipping{}, err
	}
	return r.first(ctx, "shipping", id, "id = ?", id.UUID())
}

func (r *GormShippingRepository) FindByOrderID(ctx context.Context, orderID kernel.ID) (shipping.Shipping, error) {
	if err := orderID.Validate(); err != nil {
		return shipping.Shipping{}, err
	}
	return r.first(ctx, "shipping of order", orderID, "order_id = ?", orderID.UUID())
}

// FindByStatus returns up to limit shipments in the given status, least recently
// updated first. A non-positive limit returns all of them.
func (r *GormShippingRepository) FindByStatus(
	ctx context.Context,
	status shipping.StatusKind,
	limit int,
) ([]shipping.Shipping, error) {
	if err := status.Validate(); err != nil {
		return nil, err
	}

	query := r.db.WithContext(ctx).
		Where("status = ?", status.String()).
		Order("updated_at, id")
	if limit > 0 {
		query = query.Limit(limit)
	}

	var dtos []ShippingDTO
	if err := query.Find(&dtos).Error; err != nil {
		return nil, errs.NewRepositoryError("find shipping by status", err)
	}

	shipments := make([]shipping.Shipping, 0, len(dtos))
	for _, dto := range dtos {
		s, err := toDomain(dto)
		if err != nil {
			return nil, errs.NewRepositoryError("decode shipping", err)
		}
		shipments = append(shipments, s)
	}
	return shipments, nil
}

func (r *GormShippingRepository) NextID() kernel.ID {
	return kernel.NewID()
}

func (r *GormShippingRepository) first(
	ctx context.Context,
	param string,
	id kernel.ID,
	query string,
	args ...any,
) (shipping.Shipping, error) {
	var dto ShippingDTO
	if err := r.db.WithContext(ctx).Where(query, args...).First(&dto).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return shipping.Shipping{}, errs.NewObjectNotFoundError(param, id)
		}
		return shipping.Shipping{}, errs.NewRepositoryError("find "+param, err)
	}

	s, err := toDomain(dto)
	if err != nil {
		return shipping.Shipping{}, errs.NewRepositoryError("decode shipping", err)
	}
	return s, nil
}
