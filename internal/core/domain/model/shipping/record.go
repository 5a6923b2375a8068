package shipping

import (
	"time"

	"fulfillment/internal/core/domain/model/kernel"
	"fulfillment/internal/pkg/schema"

	"github.com/go-playground/validator/v10"
)

// Record is the flat form of a Shipping snapshot and carries the shipping schema.
type Record struct {
	ID                    string `validate:"required,uuid"`
	OrderID               string `validate:"required,uuid"`
	Address               kernel.AddressFields
	Method                string `validate:"required,oneof=standard express overnight"`
	Status                StatusRecord
	EstimatedDeliveryDate time.Time `validate:"required"`
	CreatedAt             time.Time `validate:"required"`
	UpdatedAt             time.Time `validate:"required,gtefield=CreatedAt"`
}

// StatusRecord flattens Status. Shipped needs ShippedAt and TrackingNumber,
// Delivered needs DeliveredAt only, Failed needs FailedAt and Reason.
type StatusRecord struct {
	Kind           string     `validate:"required,oneof=pending preparing shipped delivered failed"`
	ShippedAt      *time.Time `validate:"required_if=Kind shipped"`
	TrackingNumber string     `validate:"required_if=Kind shipped"`
	DeliveredAt    *time.Time `validate:"required_if=Kind delivered"`
	FailedAt       *time.Time `validate:"required_if=Kind failed"`
	Reason         string     `validate:"required_if=Kind failed,max=500"`
}

var recordSchema = newRecordSchema()

func newRecordSchema() *schema.Validator {
	v := schema.New()
	v.RegisterStructRule(validateRecord, Record{})
	v.RegisterStructRule(validateStatusRecord, StatusRecord{})
	return v
}

func validateRecord(sl validator.StructLevel) {
	rec, _ := sl.Current().Interface().(Record)

	method, err := kernel.ParseShippingMethod(rec.Method)
	if err != nil {
		return
	}
	if want := method.EstimateDelivery(rec.CreatedAt); !rec.EstimatedDeliveryDate.Equal(want) {
		sl.ReportError(rec.EstimatedDeliveryDate, "EstimatedDeliveryDate", "EstimatedDeliveryDate",
			"delivery_window", method.String())
	}
}

func validateStatusRecord(sl validator.StructLevel) {
	s, _ := sl.Current().Interface().(StatusRecord)
	shipped := s.Kind == StatusShipped.String()

	if s.TrackingNumber != "" && !schema.IsTrackingNumber(s.TrackingNumber) {
		sl.ReportError(s.TrackingNumber, "TrackingNumber", "TrackingNumber", schema.TrackingNumberTag, "")
	}
	if s.ShippedAt != nil && !shipped {
		sl.ReportError(s.ShippedAt, "ShippedAt", "ShippedAt", "excluded_unless", "Kind shipped")
	}
	if s.TrackingNumber != "" && !shipped {
		sl.ReportError(s.TrackingNumber, "TrackingNumber", "TrackingNumber", "excluded_unless", "Kind shipped")
	}
	if s.DeliveredAt != nil && s.Kind != StatusDelivered.String() {
		sl.ReportError(s.DeliveredAt, "DeliveredAt", "DeliveredAt", "excluded_unless", "Kind delivered")
	}
	if s.FailedAt != nil && s.Kind != StatusFailed.String() {
		sl.ReportError(s.FailedAt, "FailedAt", "FailedAt", "excluded_unless", "Kind failed")
	}
	if s.Reason != "" && s.Kind != StatusFailed.String() {
		sl.ReportError(s.Reason, "Reason", "Reason", "excluded_unless", "Kind failed")
	}
}

// Restore validates rec against the shipping schema and builds the Shipping it describes.
func Restore(rec Record) (Shipping, error) {
	if err := recordSchema.Check(rec); err != nil {
		return Shipping{}, err
	}

	id, err := kernel.ParseID(rec.ID)
	if err != nil {
		return Shipping{}, err
	}
	orderID, err := kernel.ParseID(rec.OrderID)
	if err != nil {
		return Shipping{}, err
	}
	address, err := kernel.NewAddress(rec.Address)
	if err != nil {
		return Shipping{}, err
	}
	method, err := kernel.ParseShippingMethod(rec.Method)
	if err != nil {
		return Shipping{}, err
	}
	status, err := rec.Status.toStatus()
	if err != nil {
		return Shipping{}, err
	}

	return Shipping{
		id:                    id,
		orderID:               orderID,
		address:               address,
		method:                method,
		status:                status,
		estimatedDeliveryDate: rec.EstimatedDeliveryDate.UTC(),
		createdAt:             rec.CreatedAt.UTC(),
		updatedAt:             rec.UpdatedAt.UTC(),
		isConstructed:         true,
	}, nil
}

// Record flattens the shipment.
func (s Shipping) Record() Record {
	return Record{
		ID:                    s.id.String(),
		OrderID:               s.orderID.String(),
		Address:               s.address.Fields(),
		Method:                s.method.String(),
		Status:                statusRecord(s.status),
		EstimatedDeliveryDate: s.estimatedDeliveryDate,
		CreatedAt:             s.createdAt,
		UpdatedAt:             s.updatedAt,
	}
}

func (s StatusRecord) toStatus() (Status, error) {
	kind, err := ParseStatusKind(s.Kind)
	if err != nil {
		return nil, err
	}

	switch kind {
	case StatusPending:
		return Pending{}, nil
	case StatusPreparing:
		return Preparing{}, nil
	case StatusShipped:
		tn, tnErr := kernel.NewTrackingNumber(s.TrackingNumber)
		if tnErr != nil {
			return nil, tnErr
		}
		return Shipped{ShippedAt: s.ShippedAt.UTC(), TrackingNumber: tn}, nil
	case StatusDelivered:
		return Delivered{DeliveredAt: s.DeliveredAt.UTC()}, nil
	case StatusFailed:
		return Failed{FailedAt: s.FailedAt.UTC(), Reason: s.Reason}, nil
	case StatusUnknown:
	}
	return nil, kind.Validate()
}

func statusRecord(status Status) StatusRecord {
	rec := StatusRecord{}
	switch s := status.(type) {
	case Pending:
		rec.Kind = StatusPending.String()
	case Preparing:
		rec.Kind = StatusPreparing.String()
	case Shipped:
		rec.Kind = StatusShipped.String()
		rec.ShippedAt = timePtr(s.ShippedAt)
		rec.TrackingNumber = s.TrackingNumber.String()
	case Delivered:
		rec.Kind = StatusDelivered.String()
		rec.DeliveredAt = timePtr(s.DeliveredAt)
	case Failed:
		rec.Kind = StatusFailed.String()
		rec.FailedAt = timePtr(s.FailedAt)
		rec.Reason = s.Reason
	}
	return rec
}

func timePtr(t time.Time) *time.Time {
	return &t
}
