// Package orderrepo persists order aggregates in PostgreSQL through GORM.
// Rows are mapped to and from order.Record, so every order read back goes
// through the same schema check as one built in memory.
package orderrepo

import (
	"time"

	"fulfillment/internal/core/domain/model/order"

	"github.com/google/uuid"
	"github.com/lib/pq"
	"github.com/shopspring/decimal"
)

// OrderDTO is the "orders" row. The status union is flattened into nullable
// payload columns; ProductIDs mirrors the line product ids for array lookups.
type OrderDTO struct {
	ID           uuid.UUID       `gorm:"type:uuid;primaryKey"`
	CustomerID   uuid.UUID       `gorm:"type:uuid;not null;index"`
	Status       string          `gorm:"type:varchar(16);not null;index"`
	PlacedAt     *time.Time      `gorm:"type:timestamptz"`
	PaidAt       *time.Time      `gorm:"type:timestamptz"`
	CancelledAt  *time.Time      `gorm:"type:timestamptz"`
	CancelReason string          `gorm:"type:varchar(500)"`
	TotalAmount  decimal.Decimal `gorm:"type:numeric(14,2);not null"`
	ProductIDs   pq.StringArray  `gorm:"type:text[]"`
	CreatedAt    time.Time       `gorm:"type:timestamptz;not null;index"`
	UpdatedAt    time.Time       `gorm:"type:timestamptz;not null"`
	Lines        []LineDTO       `gorm:"foreignKey:OrderID;constraint:OnDelete:CASCADE"`
}

func (OrderDTO) TableName() string {
	return "orders"
}

// LineDTO is one "order_lines" row. Position keeps the insertion order of lines.
type LineDTO struct {
	OrderID     uuid.UUID       `gorm:"type:uuid;primaryKey"`
	Position    int             `gorm:"type:int;primaryKey"`
	ProductID   uuid.UUID       `gorm:"type:uuid;not null"`
	ProductName string          `gorm:"type:varchar(200);not null"`
	UnitPrice   decimal.Decimal `gorm:"type:numeric(8,2);not null"`
	Quantity    int             `gorm:"type:int;not null"`
}

func (LineDTO) TableName() string {
	return "order_lines"
}

func fromDomain(o order.Order) (OrderDTO, error) {
	rec := o.Record()

	id, err := uuid.Parse(rec.ID)
	if err != nil {
		return OrderDTO{}, err
	}
	customerID, err := uuid.Parse(rec.CustomerID)
	if err != nil {
		return OrderDTO{}, err
	}

	lines := make([]LineDTO, 0, len(rec.Lines))
	productIDs := make(pq.StringArray, 0, len(rec.Lines))
	for i, l := range rec.Lines {
		productID, parseErr := uuid.Parse(l.ProductID)
		if parseErr != nil {
			return OrderDTO{}, parseErr
		}
		lines = append(lines, LineDTO{
			OrderID:     id,
			Position:    i,
			ProductID:   productID,
			ProductName: l.ProductName,
			UnitPrice:   l.UnitPrice,
			Quantity:    l.Quantity,
		})
		productIDs = append(productIDs, l.ProductID)
	}

	return OrderDTO{
		ID:           id,
		CustomerID:   customerID,
		Status:       rec.Status.Kind,
		PlacedAt:     rec.Status.PlacedAt,
		PaidAt:       rec.Status.PaidAt,
		CancelledAt:  rec.Status.CancelledAt,
		CancelReason: rec.Status.Reason,
		TotalAmount:  rec.TotalAmount,
		ProductIDs:   productIDs,
		CreatedAt:    rec.CreatedAt,
		UpdatedAt:    rec.UpdatedAt,
		Lines:        lines,
	}, nil
}

// toDomain expects dto.Lines sorted by Position.
func toDomain(dto OrderDTO) (order.Order, error) {
	lines := make([]order.LineRecord, 0, len(dto.Lines))
	for _, l := range dto.Lines {
		lines = append(lines, order.LineRecord{
			ProductID:   l.ProductID.String(),
			ProductName: l.ProductName,
			UnitPrice:   l.UnitPrice,
			Quantity:    l.Quantity,
		})
	}

	return order.Restore(order.Record{
		ID:         dto.ID.String(),
		CustomerID: dto.CustomerID.String(),
		Lines:      lines,
		Status: order.StatusRecord{
			Kind:        dto.Status,
			PlacedAt:    dto.PlacedAt,
			PaidAt:      dto.PaidAt,
			CancelledAt: dto.CancelledAt,
			Reason:      dto.CancelReason,
		},
		TotalAmount: dto.TotalAmount,
		CreatedAt:   dto.CreatedAt,
		UpdatedAt:   dto.UpdatedAt,
	})
}
