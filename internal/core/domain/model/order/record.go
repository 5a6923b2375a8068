package order

import (
	"fmt"
	"time"

	"fulfillment/internal/core/domain/model/kernel"
	"fulfillment/internal/pkg/schema"

	"github.com/go-playground/validator/v10"
	"github.com/shopspring/decimal"
)

// Record is the flat, exported form of an Order snapshot. Adapters persist it and
// Restore turns it back into an Order; its tags plus the rules registered below are
// the complete order schema.
type Record struct {
	ID          string       `validate:"required,uuid"`
	CustomerID  string       `validate:"required,uuid"`
	Lines       []LineRecord `validate:"unique=ProductID,dive"`
	Status      StatusRecord
	TotalAmount decimal.Decimal `validate:"gte=0"`
	CreatedAt   time.Time       `validate:"required"`
	UpdatedAt   time.Time       `validate:"required,gtefield=CreatedAt"`
}

// LineRecord is the flat form of a Line.
type LineRecord struct {
	ProductID   string          `validate:"required,uuid"`
	ProductName string          `validate:"required,max=200"`
	UnitPrice   decimal.Decimal `validate:"gte=0,lte=999999.99"`
	Quantity    int             `validate:"gte=1,lte=9999"`
}

// StatusRecord flattens the Status union: Kind is the tag and only the payload
// fields of that tag may be set.
type StatusRecord struct {
	Kind        string     `validate:"required,oneof=draft placed paid cancelled"`
	PlacedAt    *time.Time `validate:"required_if=Kind placed"`
	PaidAt      *time.Time `validate:"required_if=Kind paid"`
	CancelledAt *time.Time `validate:"required_if=Kind cancelled"`
	Reason      string     `validate:"required_if=Kind cancelled,max=500"`
}

var recordSchema = newRecordSchema()

func newRecordSchema() *schema.Validator {
	v := schema.New()
	v.RegisterStructRule(validateRecord, Record{})
	v.RegisterStructRule(validateLineRecord, LineRecord{})
	v.RegisterStructRule(validateStatusRecord, StatusRecord{})
	return v
}

func validateRecord(sl validator.StructLevel) {
	rec, _ := sl.Current().Interface().(Record)

	sum := decimal.Zero
	for _, l := range rec.Lines {
		sum = sum.Add(l.UnitPrice.Mul(decimal.NewFromInt(int64(l.Quantity))))
	}
	if !sum.Equal(rec.TotalAmount) {
		sl.ReportError(rec.TotalAmount, "TotalAmount", "TotalAmount", "line_total", sum.String())
	}

	if (rec.Status.Kind == StatusPlaced.String() || rec.Status.Kind == StatusPaid.String()) && len(rec.Lines) == 0 {
		sl.ReportError(rec.Lines, "Lines", "Lines", "required_for_status", rec.Status.Kind)
	}
}

func validateLineRecord(sl validator.StructLevel) {
	l, _ := sl.Current().Interface().(LineRecord)
	if !l.UnitPrice.Equal(l.UnitPrice.Round(kernel.PriceScale)) {
		sl.ReportError(l.UnitPrice, "UnitPrice", "UnitPrice", "price_scale", fmt.Sprint(kernel.PriceScale))
	}
}

func validateStatusRecord(sl validator.StructLevel) {
	s, _ := sl.Current().Interface().(StatusRecord)
	if s.PlacedAt != nil && s.Kind != StatusPlaced.String() {
		sl.ReportError(s.PlacedAt, "PlacedAt", "PlacedAt", "excluded_unless", "Kind placed")
	}
	if s.PaidAt != nil && s.Kind != StatusPaid.String() {
		sl.ReportError(s.PaidAt, "PaidAt", "PaidAt", "excluded_unless", "Kind paid")
	}
	if s.CancelledAt != nil && s.Kind != StatusCancelled.String() {
		sl.ReportError(s.CancelledAt, "CancelledAt", "CancelledAt", "excluded_unless", "Kind cancelled")
	}
	if s.Reason != "" && s.Kind != StatusCancelled.String() {
		sl.ReportError(s.Reason, "Reason", "Reason", "excluded_unless", "Kind cancelled")
	}
}

// Restore validates rec against the order schema and builds the Order it describes.
// It is the single entry point for snapshots read from storage, and every
// transition passes its result through it.
func Restore(rec Record) (Order, error) {
	if err := recordSchema.Check(rec); err != nil {
		return Order{}, err
	}

	id, err := kernel.ParseID(rec.ID)
	if err != nil {
		return Order{}, err
	}
	customerID, err := kernel.ParseID(rec.CustomerID)
	if err != nil {
		return Order{}, err
	}

	lines := make([]Line, 0, len(rec.Lines))
	for _, lr := range rec.Lines {
		line, lineErr := lr.toLine()
		if lineErr != nil {
			return Order{}, lineErr
		}
		lines = append(lines, line)
	}

	status, err := rec.Status.toStatus()
	if err != nil {
		return Order{}, err
	}

	return Order{
		id:            id,
		customerID:    customerID,
		lines:         lines,
		status:        status,
		totalAmount:   rec.TotalAmount,
		createdAt:     rec.CreatedAt.UTC(),
		updatedAt:     rec.UpdatedAt.UTC(),
		isConstructed: true,
	}, nil
}

// Record flattens the order. The returned value shares nothing with o.
func (o Order) Record() Record {
	lines := make([]LineRecord, 0, len(o.lines))
	for _, l := range o.lines {
		lines = append(lines, LineRecord{
			ProductID:   l.ProductID().String(),
			ProductName: l.ProductName(),
			UnitPrice:   l.UnitPrice().Amount(),
			Quantity:    l.Quantity().Value(),
		})
	}

	return Record{
		ID:          o.id.String(),
		CustomerID:  o.customerID.String(),
		Lines:       lines,
		Status:      statusRecord(o.status),
		TotalAmount: o.totalAmount,
		CreatedAt:   o.createdAt,
		UpdatedAt:   o.updatedAt,
	}
}

func (lr LineRecord) toLine() (Line, error) {
	productID, err := kernel.ParseID(lr.ProductID)
	if err != nil {
		return Line{}, err
	}
	price, err := kernel.NewPrice(lr.UnitPrice)
	if err != nil {
		return Line{}, err
	}
	quantity, err := kernel.NewQuantity(lr.Quantity)
	if err != nil {
		return Line{}, err
	}
	return NewLine(productID, lr.ProductName, price, quantity)
}

func (s StatusRecord) toStatus() (Status, error) {
	kind, err := ParseStatusKind(s.Kind)
	if err != nil {
		return nil, err
	}

	switch kind {
	case StatusDraft:
		return Draft{}, nil
	case StatusPlaced:
		return Placed{PlacedAt: s.PlacedAt.UTC()}, nil
	case StatusPaid:
		return Paid{PaidAt: s.PaidAt.UTC()}, nil
	case StatusCancelled:
		return Cancelled{CancelledAt: s.CancelledAt.UTC(), Reason: s.Reason}, nil
	case StatusUnknown:
	}
	return nil, kind.Validate()
}

func statusRecord(status Status) StatusRecord {
	rec := StatusRecord{}
	switch s := status.(type) {
	case Draft:
		rec.Kind = StatusDraft.String()
	case Placed:
		rec.Kind = StatusPlaced.String()
		rec.PlacedAt = timePtr(s.PlacedAt)
	case Paid:
		rec.Kind = StatusPaid.String()
		rec.PaidAt = timePtr(s.PaidAt)
	case Cancelled:
		rec.Kind = StatusCancelled.String()
		rec.CancelledAt = timePtr(s.CancelledAt)
		rec.Reason = s.Reason
	}
	return rec
}

func timePtr(t time.Time) *time.Time {
	return &t
}
