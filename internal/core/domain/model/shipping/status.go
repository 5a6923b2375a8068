package shipping

import (
	"fmt"
	"time"

	"fulfillment/internal/core/domain/model/kernel"
	"fulfillment/internal/pkg/errs"
)

// StatusKind is the discriminant of Status.
//
//	Pending ──> Preparing ──> Shipped ──> Delivered
//	   │            │            │
//	   └────────────┴────────────┴──> Failed
type StatusKind int

const (
	StatusUnknown StatusKind = iota
	StatusPending
	StatusPreparing
	StatusShipped
	StatusDelivered
	StatusFailed
)

func getStatusKindStrings() map[StatusKind]string {
	//nolint:exhaustive // StatusUnknown has no textual form
	return map[StatusKind]string{
		StatusPending:   "pending",
		StatusPreparing: "preparing",
		StatusShipped:   "shipped",
		StatusDelivered: "delivered",
		StatusFailed:    "failed",
	}
}

func ParseStatusKind(s string) (StatusKind, error) {
	for kind, str := range getStatusKindStrings() {
		if str == s {
			return kind, nil
		}
	}
	return StatusUnknown, errs.NewValueIsInvalidErrorWithCause("status", fmt.Errorf("%q is not a shipping status", s))
}

func (k StatusKind) String() string {
	if str, ok := getStatusKindStrings()[k]; ok {
		return str
	}
	return "unknown"
}

func (k StatusKind) Validate() error {
	if _, ok := getStatusKindStrings()[k]; !ok {
		return errs.NewValueIsInvalidErrorWithCause("status", fmt.Errorf("%d is not a valid status", k))
	}
	return nil
}

// IsTerminal is true for Delivered and Failed.
func (k StatusKind) IsTerminal() bool {
	return k == StatusDelivered || k == StatusFailed
}

// Status is a closed union of the shipment lifecycle states.
type Status interface {
	Kind() StatusKind
	isStatus()
}

type Pending struct{}

type Preparing struct{}

// Shipped carries the tracking number issued when the parcel left the warehouse.
type Shipped struct {
	ShippedAt      time.Time
	TrackingNumber kernel.TrackingNumber
}

type Delivered struct {
	DeliveredAt time.Time
}

type Failed struct {
	FailedAt time.Time
	Reason   string
}

func (Pending) Kind() StatusKind   { return StatusPending }
func (Preparing) Kind() StatusKind { return StatusPreparing }
func (Shipped) Kind() StatusKind   { return StatusShipped }
func (Delivered) Kind() StatusKind { return StatusDelivered }
func (Failed) Kind() StatusKind    { return StatusFailed }

func (Pending) isStatus()   {}
func (Preparing) isStatus() {}
func (Shipped) isStatus()   {}
func (Delivered) isStatus() {}
func (Failed) isStatus()    {}
