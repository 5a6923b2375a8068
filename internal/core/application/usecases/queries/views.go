// Package queries contains read-only use cases. Each query is a validated value
// handled by a handler that returns plain read models, never aggregates.
package queries

import (
	"time"

	"fulfillment/internal/core/domain/model/kernel"
	"fulfillment/internal/core/domain/model/order"
	"fulfillment/internal/core/domain/model/shipping"

	"github.com/shopspring/decimal"
)

// OrderView is the read model of an order.
type OrderView struct {
	ID           string
	CustomerID   string
	Status       string
	TotalAmount  decimal.Decimal
	Lines        []OrderLineView
	PlacedAt     *time.Time
	PaidAt       *time.Time
	CancelledAt  *time.Time
	CancelReason string
	CreatedAt    time.Time
	UpdatedAt    time.Time
}

type OrderLineView struct {
	ProductID   string
	ProductName string
	UnitPrice   decimal.Decimal
	Quantity    int
	Amount      decimal.Decimal
}

// ShipmentView is the read model of a shipment.
type ShipmentView struct {
	ID                    string
	OrderID               string
	Status                string
	Method                string
	Address               kernel.AddressFields
	TrackingNumber        string
	EstimatedDeliveryDate time.Time
	ShippedAt             *time.Time
	DeliveredAt           *time.Time
	FailedAt              *time.Time
	FailureReason         string
	CreatedAt             time.Time
	UpdatedAt             time.Time
}

func newOrderView(o order.Order) OrderView {
	rec := o.Record()
	lines := make([]OrderLineView, 0, len(rec.Lines))
	for _, l := range o.Lines() {
		lines = append(lines, OrderLineView{
			ProductID:   l.ProductID().String(),
			ProductName: l.ProductName(),
			UnitPrice:   l.UnitPrice().Amount(),
			Quantity:    l.Quantity().Value(),
			Amount:      l.Amount(),
		})
	}

	return OrderView{
		ID:           rec.ID,
		CustomerID:   rec.CustomerID,
		Status:       rec.Status.Kind,
		TotalAmount:  rec.TotalAmount,
		Lines:        lines,
		PlacedAt:     rec.Status.PlacedAt,
		PaidAt:       rec.Status.PaidAt,
		CancelledAt:  rec.Status.CancelledAt,
		CancelReason: rec.Status.Reason,
		CreatedAt:    rec.CreatedAt,
		UpdatedAt:    rec.UpdatedAt,
	}
}

func newShipmentView(s shipping.Shipping) ShipmentView {
	rec := s.Record()
	return ShipmentView{
		ID:                    rec.ID,
		OrderID:               rec.OrderID,
		Status:                rec.Status.Kind,
		Method:                rec.Method,
		Address:               rec.Address,
		TrackingNumber:        rec.Status.TrackingNumber,
		EstimatedDeliveryDate: rec.EstimatedDeliveryDate,
		ShippedAt:             rec.Status.ShippedAt,
		DeliveredAt:           rec.Status.DeliveredAt,
		FailedAt:              rec.Status.FailedAt,
		FailureReason:         rec.Status.Reason,
		CreatedAt:             rec.CreatedAt,
		UpdatedAt:             rec.UpdatedAt,
	}
}
