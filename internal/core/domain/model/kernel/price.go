package kernel

import (
	"fmt"
	"math"

	"fulfillment/internal/pkg/errs"
	"fulfillment/internal/pkg/guard"

	"github.com/shopspring/decimal"
)

// PriceScale is the number of decimal places a Price is rounded to.
const PriceScale = 2

var (
	// MinPrice is the lowest accepted unit price.
	MinPrice = decimal.Zero
	// MaxPrice is the highest accepted unit price.
	MaxPrice = decimal.RequireFromString("999999.99")

	// ErrPriceIsNotConstructed is returned when validating a zero value Price.
	ErrPriceIsNotConstructed = errs.NewValueIsRequiredError("price must be created via NewPrice, PriceFromFloat or ParsePrice")
)

// Price is a non-negative monetary amount with two decimal places.
//
// The range check is applied to the raw input and the accepted amount is then
// rounded half away from zero, so 10.005 becomes 10.01 while 999999.995 is rejected.
type Price struct { //nolint:recvcheck //using for validation
	amount decimal.Decimal
	guard  guard.ConstructorGuard
}

// NewPrice validates and rounds amount.
func NewPrice(amount decimal.Decimal) (Price, error) {
	p := Price{guard: guard.NewConstructorGuard()}
	if err := p.setAmount(amount); err != nil {
		return Price{}, err
	}
	return p, nil
}

// PriceFromFloat is NewPrice for float input. NaN and infinities are rejected.
func PriceFromFloat(amount float64) (Price, error) {
	if math.IsNaN(amount) || math.IsInf(amount, 0) {
		return Price{}, errs.NewValueIsInvalidErrorWithCause("price", fmt.Errorf("%v is not a finite number", amount))
	}
	return NewPrice(decimal.NewFromFloat(amount))
}

// ParsePrice is NewPrice for textual input such as "15.99".
func ParsePrice(amount string) (Price, error) {
	d, err := decimal.NewFromString(amount)
	if err != nil {
		return Price{}, errs.NewValueIsInvalidErrorWithCause("price", err)
	}
	return NewPrice(d)
}

// Validate returns ErrPriceIsNotConstructed for the zero value.
func (p Price) Validate() error {
	return p.guard.Validate(ErrPriceIsNotConstructed)
}

// Amount returns the rounded amount.
func (p Price) Amount() decimal.Decimal {
	return p.amount
}

// Times returns the line amount for q units at this price.
func (p Price) Times(q Quantity) decimal.Decimal {
	return p.amount.Mul(decimal.NewFromInt(int64(q.Value())))
}

// Equal compares amounts.
func (p Price) Equal(other Price) bool {
	return p.amount.Equal(other.amount)
}

func (p Price) String() string {
	return p.amount.StringFixed(PriceScale)
}

func (p *Price) setAmount(amount decimal.Decimal) error {
	if amount.LessThan(MinPrice) || amount.GreaterThan(MaxPrice) {
		return errs.NewValueIsOutOfRangeError("price", amount, MinPrice, MaxPrice)
	}

	p.amount = amount.Round(PriceScale)
	return nil
}
