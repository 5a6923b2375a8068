// Package shippingrepo persists shipping aggregates in PostgreSQL through GORM.
package shippingrepo

import (
	"time"

	"fulfillment/internal/core/domain/model/kernel"
	"fulfillment/internal/core/domain/model/shipping"

	"github.com/google/uuid"
)

// ShippingDTO is the "shippings" row. An order owns at most one shipment,
// which the unique index on order_id enforces.
type ShippingDTO struct {
	ID                    uuid.UUID  `gorm:"type:uuid;primaryKey"`
	OrderID               uuid.UUID  `gorm:"type:uuid;not null;uniqueIndex"`
	Address               AddressDTO `gorm:"embedded;embeddedPrefix:address_"`
	Method                string     `gorm:"type:varchar(16);not null"`
	Status                string     `gorm:"type:varchar(16);not null;index:idx_shippings_status_updated"`
	ShippedAt             *time.Time `gorm:"type:timestamptz"`
	TrackingNumber        string     `gorm:"type:varchar(32)"`
	DeliveredAt           *time.Time `gorm:"type:timestamptz"`
	FailedAt              *time.Time `gorm:"type:timestamptz"`
	FailureReason         string     `gorm:"type:varchar(500)"`
	EstimatedDeliveryDate time.Time  `gorm:"type:timestamptz;not null"`
	CreatedAt             time.Time  `gorm:"type:timestamptz;not null"`
	UpdatedAt             time.Time  `gorm:"type:timestamptz;not null;index:idx_shippings_status_updated"`
}

func (ShippingDTO) TableName() string {
	return "shippings"
}

// AddressDTO is the delivery address embedded in the shipping row.
type AddressDTO struct {
	Street     string `gorm:"type:varchar(200);not null"`
	City       string `gorm:"type:varchar(100);not null"`
	State      string `gorm:"type:varchar(50);not null"`
	PostalCode string `gorm:"type:varchar(10);not null"`
	Country    string `gorm:"type:varchar(60);not null"`
}

func fromDomain(s shipping.Shipping) (ShippingDTO, error) {
	rec := s.Record()

	id, err := uuid.Parse(rec.ID)
	if err != nil {
		return ShippingDTO{}, err
	}
	orderID, err := uuid.Parse(rec.OrderID)
	if err != nil {
		return ShippingDTO{}, err
	}

	return ShippingDTO{
		ID:      id,
		OrderID: orderID,
		Address: AddressDTO{
			Street:     rec.Address.Street,
			City:       rec.Address.City,
			State:      rec.Address.State,
			PostalCode: rec.Address.PostalCode,
			Country:    rec.Address.Country,
		},
		Method:                rec.Method,
		Status:                rec.Status.Kind,
		ShippedAt:             rec.Status.ShippedAt,
		TrackingNumber:        rec.Status.TrackingNumber,
		DeliveredAt:           rec.Status.DeliveredAt,
		FailedAt:              rec.Status.FailedAt,
		FailureReason:         rec.Status.Reason,
		EstimatedDeliveryDate: rec.EstimatedDeliveryDate,
		CreatedAt:             rec.CreatedAt,
		UpdatedAt:             rec.UpdatedAt,
	}, nil
}

func toDomain(dto ShippingDTO) (shipping.Shipping, error) {
	return shipping.Restore(shipping.Record{
		ID:      dto.ID.String(),
		OrderID: dto.OrderID.String(),
		Address: kernel.AddressFields{
			Street:     dto.Address.Street,
			City:       dto.Address.City,
			State:      dto.Address.State,
			PostalCode: dto.Address.PostalCode,
			Country:    dto.Address.Country,
		},
		Method: dto.Method,
		Status: shipping.StatusRecord{
			Kind:           dto.Status,
			ShippedAt:      dto.ShippedAt,
			TrackingNumber: dto.TrackingNumber,
			DeliveredAt:    dto.DeliveredAt,
			FailedAt:       dto.FailedAt,
			Reason:         dto.FailureReason,
		},
		EstimatedDeliveryDate: dto.EstimatedDeliveryDate,
		CreatedAt:             dto.CreatedAt,
		UpdatedAt:             dto.UpdatedAt,
	})
}
