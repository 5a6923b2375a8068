package order

import (
	"errors"
	"fmt"
	"strings"
	"time"
	"unicode/utf8"

	"fulfillment/internal/core/domain/model/kernel"
	"fulfillment/internal/pkg/errs"

	"github.com/shopspring/decimal"
)

// MaxCancelReasonLength bounds Cancelled.Reason in characters.
const MaxCancelReasonLength = 500

// ErrOrderIsNotConstructed is returned when an Order was not created through New or Restore.
var ErrOrderIsNotConstructed = errors.New("Order must be created via New or Restore")

// Order is the aggregate root of the ordering context.
//
// Order is an immutable snapshot: every transition returns a new Order that has
// been re-validated against the order schema, and the receiver is left untouched.
// Invariants:
//   - product identifiers are unique within the order
//   - TotalAmount always equals the sum of unit price times quantity over all lines
//   - lines can only change while the order is a Draft
//   - status only moves Draft -> Placed -> Paid, or to Cancelled from a non-terminal status
type Order struct {
	id          kernel.ID
	customerID  kernel.ID
	lines       []Line
	status      Status
	totalAmount decimal.Decimal
	createdAt   time.Time
	updatedAt   time.Time

	isConstructed bool
}

// New creates an empty Draft order for customerID.
func New(id kernel.ID, customerID kernel.ID, now time.Time) (Order, error) {
	if err := errors.Join(id.Validate(), customerID.Validate()); err != nil {
		return Order{}, err
	}

	return revalidate(Order{
		id:            id,
		customerID:    customerID,
		lines:         []Line{},
		status:        Draft{},
		totalAmount:   decimal.Zero,
		createdAt:     now,
		updatedAt:     now,
		isConstructed: true,
	})
}

// Validate ensures the Order was produced by New or Restore.
func (o Order) Validate() error {
	if !o.isConstructed {
		return ErrOrderIsNotConstructed
	}
	return nil
}

// IsEqual compares orders by identity.
func (o Order) IsEqual(other Order) bool {
	return o.id.Equal(other.id)
}

func (o Order) ID() kernel.ID {
	return o.id
}

func (o Order) CustomerID() kernel.ID {
	return o.customerID
}

// Lines returns a copy of the order lines in insertion order.
func (o Order) Lines() []Line {
	lines := make([]Line, len(o.lines))
	copy(lines, o.lines)
	return lines
}

func (o Order) Status() Status {
	return o.status
}

func (o Order) TotalAmount() decimal.Decimal {
	return o.totalAmount
}

func (o Order) CreatedAt() time.Time {
	return o.createdAt
}

func (o Order) UpdatedAt() time.Time {
	return o.updatedAt
}

// HasProduct reports whether a line for productID exists.
func (o Order) HasProduct(productID kernel.ID) bool {
	for _, l := range o.lines {
		if l.ProductID().Equal(productID) {
			return true
		}
	}
	return false
}

// AddLine appends line to a Draft order and recomputes the total.
//
// Fails with a business rule violation when the order is not a Draft or when the
// product is already on the order.
func (o Order) AddLine(line Line, now time.Time) (Order, error) {
	if err := errors.Join(o.Validate(), line.Validate()); err != nil {
		return Order{}, err
	}
	if err := o.requireStatus("add line", StatusDraft); err != nil {
		return Order{}, err
	}
	if o.HasProduct(line.ProductID()) {
		return Order{}, errs.NewBusinessRuleViolationErrorWithCause(
			"product is already on the order",
			fmt.Errorf("product %s", line.ProductID()),
		)
	}

	next := o.clone(now)
	next.lines = append(next.lines, line)
	next.totalAmount = sumLines(next.lines)
	return revalidate(next)
}

// Place commits a Draft order that has at least one line.
func (o Order) Place(now time.Time) (Order, error) {
	if err := o.Validate(); err != nil {
		return Order{}, err
	}
	if err := o.requireStatus("place", StatusDraft); err != nil {
		return Order{}, err
	}
	if len(o.lines) == 0 {
		return Order{}, errs.NewBusinessRuleViolationError("an order without lines cannot be placed")
	}

	next := o.clone(now)
	next.status = Placed{PlacedAt: now}
	return revalidate(next)
}

// MarkPaid records payment of a Placed order.
func (o Order) MarkPaid(now time.Time) (Order, error) {
	if err := o.Validate(); err != nil {
		return Order{}, err
	}
	if err := o.requireStatus("mark paid", StatusPlaced); err != nil {
		return Order{}, err
	}

	next := o.clone(now)
	next.status = Paid{PaidAt: now}
	return revalidate(next)
}

// Cancel ends a Draft or Placed order. reason is required.
func (o Order) Cancel(now time.Time, reason string) (Order, error) {
	if err := o.Validate(); err != nil {
		return Order{}, err
	}
	reason = strings.TrimSpace(reason)
	if reason == "" {
		return Order{}, errs.NewValueIsRequiredError("cancellation reason")
	}
	if n := utf8.RuneCountInString(reason); n > MaxCancelReasonLength {
		return Order{}, errs.NewValueIsOutOfRangeError("cancellation reason length", n, 1, MaxCancelReasonLength)
	}
	if err := o.requireStatus("cancel", StatusDraft, StatusPlaced); err != nil {
		return Order{}, err
	}

	next := o.clone(now)
	next.status = Cancelled{CancelledAt: now, Reason: reason}
	return revalidate(next)
}

func (o Order) requireStatus(action string, allowed ...StatusKind) error {
	current := o.status.Kind()
	for _, kind := range allowed {
		if current == kind {
			return nil
		}
	}
	return errs.NewBusinessRuleViolationErrorWithCause(
		fmt.Sprintf("cannot %s an order in %s status", action, current),
		fmt.Errorf("order %s", o.id),
	)
}

// clone copies o with a private lines slice and a new update time.
func (o Order) clone(now time.Time) Order {
	next := o
	next.lines = o.Lines()
	next.updatedAt = now
	return next
}

func sumLines(lines []Line) decimal.Decimal {
	total := decimal.Zero
	for _, l := range lines {
		total = total.Add(l.Amount())
	}
	return total
}

func revalidate(candidate Order) (Order, error) {
	next, err := Restore(candidate.Record())
	if err != nil {
		return Order{}, fmt.Errorf("order %s failed validation: %w", candidate.id, err)
	}
	return next, nil
}
