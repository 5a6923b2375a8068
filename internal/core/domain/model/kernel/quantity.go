package kernel

import (
	"fulfillment/internal/pkg/errs"
	"fulfillment/internal/pkg/guard"
)

const (
	// MinQuantity is the smallest number of units on an order line.
	MinQuantity = 1
	// MaxQuantity is the largest number of units on an order line.
	MaxQuantity = 9999
)

// ErrQuantityIsNotConstructed is returned when validating a zero value Quantity.
var ErrQuantityIsNotConstructed = errs.NewValueIsRequiredError("quantity must be created via NewQuantity")

// Quantity is a positive number of units, at most MaxQuantity.
type Quantity struct { //nolint:recvcheck //using for validation
	value int
	guard guard.ConstructorGuard
}

// NewQuantity validates value against [MinQuantity..MaxQuantity].
func NewQuantity(value int) (Quantity, error) {
	q := Quantity{guard: guard.NewConstructorGuard()}
	if err := q.setValue(value); err != nil {
		return Quantity{}, err
	}
	return q, nil
}

func (q Quantity) Validate() error {
	return q.guard.Validate(ErrQuantityIsNotConstructed)
}

func (q Quantity) Value() int {
	return q.value
}

func (q *Quantity) setValue(value int) error {
	if value < MinQuantity || value > MaxQuantity {
		return errs.NewValueIsOutOfRangeError("quantity", value, MinQuantity, MaxQuantity)
	}

	q.value = value
	return nil
}
