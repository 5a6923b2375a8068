package order

import (
	"fmt"
	"time"

	"fulfillment/internal/pkg/errs"
)

// StatusKind is the discriminant of Status.
//
// State transitions:
//
//	Draft ──> Placed ──> Paid
//	  │         │
//	  └─────────┴──> Cancelled
//
// Paid and Cancelled are terminal.
type StatusKind int

const (
	// StatusUnknown is the zero value and never valid.
	StatusUnknown StatusKind = iota
	StatusDraft
	StatusPlaced
	StatusPaid
	StatusCancelled
)

func getStatusKindStrings() map[StatusKind]string {
	//nolint:exhaustive // StatusUnknown has no textual form
	return map[StatusKind]string{
		StatusDraft:     "draft",
		StatusPlaced:    "placed",
		StatusPaid:      "paid",
		StatusCancelled: "cancelled",
	}
}

// ParseStatusKind is the inverse of StatusKind.String for valid kinds.
func ParseStatusKind(s string) (StatusKind, error) {
	for kind, str := range getStatusKindStrings() {
		if str == s {
			return kind, nil
		}
	}
	return StatusUnknown, errs.NewValueIsInvalidErrorWithCause("status", fmt.Errorf("%q is not an order status", s))
}

func (k StatusKind) String() string {
	if str, ok := getStatusKindStrings()[k]; ok {
		return str
	}
	return "unknown"
}

// Validate rejects StatusUnknown and out of range values.
func (k StatusKind) Validate() error {
	if _, ok := getStatusKindStrings()[k]; !ok {
		return errs.NewValueIsInvalidErrorWithCause("status", fmt.Errorf("%d is not a valid status", k))
	}
	return nil
}

// IsTerminal reports whether no transition leaves k.
func (k StatusKind) IsTerminal() bool {
	return k == StatusPaid || k == StatusCancelled
}

// Status is a closed union: Draft, Placed, Paid or Cancelled. Each variant carries
// only the fields that belong to it.
type Status interface {
	Kind() StatusKind
	isStatus()
}

// Draft is the initial status; lines can only be added here.
type Draft struct{}

// Placed means the customer committed to the order.
type Placed struct {
	PlacedAt time.Time
}

// Paid means payment was captured.
type Paid struct {
	PaidAt time.Time
}

// Cancelled ends the order without payment.
type Cancelled struct {
	CancelledAt time.Time
	Reason      string
}

func (Draft) Kind() StatusKind     { return StatusDraft }
func (Placed) Kind() StatusKind    { return StatusPlaced }
func (Paid) Kind() StatusKind      { return StatusPaid }
func (Cancelled) Kind() StatusKind { return StatusCancelled }

func (Draft) isStatus()     {}
func (Placed) isStatus()    {}
func (Paid) isStatus()      {}
func (Cancelled) isStatus() {}
