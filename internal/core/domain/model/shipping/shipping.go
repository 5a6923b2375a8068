package shipping

import (
	"errors"
	"fmt"
	"strings"
	"time"
	"unicode/utf8"

	"fulfillment/internal/core/domain/model/kernel"
	"fulfillment/internal/pkg/errs"
)

// MaxFailureReasonLength bounds Failed.Reason in characters.
const MaxFailureReasonLength = 500

var ErrShippingIsNotConstructed = errors.New("Shipping must be created via New or Restore")

// Shipping is the aggregate root of the delivery side: one shipment per order.
//
// Like order.Order it is an immutable snapshot and each transition accepts exactly
// one prior status (Fail accepts any non-terminal one). EstimatedDeliveryDate is
// fixed at creation as CreatedAt plus the method's delivery window.
type Shipping struct {
	id                    kernel.ID
	orderID               kernel.ID
	address               kernel.Address
	method                kernel.ShippingMethod
	status                Status
	estimatedDeliveryDate time.Time
	createdAt             time.Time
	updatedAt             time.Time

	isConstructed bool
}

// New creates a Pending shipment for orderID. It only fails for unconstructed or
// invalid arguments.
func New(id, orderID kernel.ID, address kernel.Address, method kernel.ShippingMethod, now time.Time) (Shipping, error) {
	if err := errors.Join(id.Validate(), orderID.Validate(), address.Validate(), method.Validate()); err != nil {
		return Shipping{}, err
	}

	return revalidate(Shipping{
		id:                    id,
		orderID:               orderID,
		address:               address,
		method:                method,
		status:                Pending{},
		estimatedDeliveryDate: method.EstimateDelivery(now),
		createdAt:             now,
		updatedAt:             now,
		isConstructed:         true,
	})
}

func (s Shipping) Validate() error {
	if !s.isConstructed {
		return ErrShippingIsNotConstructed
	}
	return nil
}

func (s Shipping) IsEqual(other Shipping) bool {
	return s.id.Equal(other.id)
}

func (s Shipping) ID() kernel.ID {
	return s.id
}

func (s Shipping) OrderID() kernel.ID {
	return s.orderID
}

func (s Shipping) Address() kernel.Address {
	return s.address
}

func (s Shipping) Method() kernel.ShippingMethod {
	return s.method
}

func (s Shipping) Status() Status {
	return s.status
}

func (s Shipping) EstimatedDeliveryDate() time.Time {
	return s.estimatedDeliveryDate
}

func (s Shipping) CreatedAt() time.Time {
	return s.createdAt
}

func (s Shipping) UpdatedAt() time.Time {
	return s.updatedAt
}

// TrackingNumber is only available while the shipment is Shipped.
func (s Shipping) TrackingNumber() (kernel.TrackingNumber, bool) {
	shipped, ok := s.status.(Shipped)
	if !ok {
		return kernel.TrackingNumber{}, false
	}
	return shipped.TrackingNumber, true
}

// StartPreparation moves a Pending shipment to Preparing.
func (s Shipping) StartPreparation(now time.Time) (Shipping, error) {
	if err := s.requireStatus("start preparation of", StatusPending); err != nil {
		return Shipping{}, err
	}
	return s.transition(Preparing{}, now)
}

// Ship hands a Preparing shipment to the carrier and issues a tracking number.
func (s Shipping) Ship(now time.Time) (Shipping, error) {
	if err := s.requireStatus("ship", StatusPreparing); err != nil {
		return Shipping{}, err
	}
	return s.transition(Shipped{ShippedAt: now, TrackingNumber: kernel.GenerateTrackingNumber()}, now)
}

// Deliver completes a Shipped shipment.
func (s Shipping) Deliver(now time.Time) (Shipping, error) {
	if err := s.requireStatus("deliver", StatusShipped); err != nil {
		return Shipping{}, err
	}
	return s.transition(Delivered{DeliveredAt: now}, now)
}

// Fail ends a shipment that has not been delivered. reason is required.
func (s Shipping) Fail(now time.Time, reason string) (Shipping, error) {
	reason = strings.TrimSpace(reason)
	if reason == "" {
		return Shipping{}, errs.NewValueIsRequiredError("failure reason")
	}
	if n := utf8.RuneCountInString(reason); n > MaxFailureReasonLength {
		return Shipping{}, errs.NewValueIsOutOfRangeError("failure reason length", n, 1, MaxFailureReasonLength)
	}
	if err := s.requireStatus("fail", StatusPending, StatusPreparing, StatusShipped); err != nil {
		return Shipping{}, err
	}
	return s.transition(Failed{FailedAt: now, Reason: reason}, now)
}

func (s Shipping) requireStatus(action string, allowed ...StatusKind) error {
	if err := s.Validate(); err != nil {
		return err
	}
	current := s.status.Kind()
	for _, kind := range allowed {
		if current == kind {
			return nil
		}
	}
	return errs.NewBusinessRuleViolationErrorWithCause(
		fmt.Sprintf("cannot %s a shipment in %s status", action, current),
		fmt.Errorf("shipping %s", s.id),
	)
}

func (s Shipping) transition(status Status, now time.Time) (Shipping, error) {
	next := s
	next.status = status
	next.updatedAt = now
	return revalidate(next)
}

func revalidate(candidate Shipping) (Shipping, error) {
	next, err := Restore(candidate.Record())
	if err != nil {
		return Shipping{}, fmt.Errorf("shipping %s failed validation: %w", candidate.id, err)
	}
	return next, nil
}
