package order

import (
	"errors"
	"fmt"
	"strings"
	"unicode/utf8"

	"fulfillment/internal/core/domain/model/kernel"
	"fulfillment/internal/pkg/errs"
	"fulfillment/internal/pkg/guard"

	"github.com/shopspring/decimal"
)

// MaxProductNameLength bounds Line.ProductName in characters.
const MaxProductNameLength = 200

// ErrLineIsNotConstructed is returned when validating a zero value Line.
var ErrLineIsNotConstructed = errors.New("Line must be created via NewLine constructor")

// Line is one product on an order. Lines are values; the order owns copies.
type Line struct { //nolint:recvcheck //using for validation
	productID   kernel.ID
	productName string
	unitPrice   kernel.Price
	quantity    kernel.Quantity
	guard       guard.ConstructorGuard
}

// NewLine validates every part of the line and reports all problems at once.
func NewLine(productID kernel.ID, productName string, unitPrice kernel.Price, quantity kernel.Quantity) (Line, error) {
	l := Line{guard: guard.NewConstructorGuard()}

	if err := errors.Join(
		l.setProductID(productID),
		l.setProductName(productName),
		l.setUnitPrice(unitPrice),
		l.setQuantity(quantity),
	); err != nil {
		return Line{}, err
	}

	return l, nil
}

func (l Line) Validate() error {
	return l.guard.Validate(ErrLineIsNotConstructed)
}

func (l Line) ProductID() kernel.ID {
	return l.productID
}

func (l Line) ProductName() string {
	return l.productName
}

func (l Line) UnitPrice() kernel.Price {
	return l.unitPrice
}

func (l Line) Quantity() kernel.Quantity {
	return l.quantity
}

// Amount is unit price times quantity.
func (l Line) Amount() decimal.Decimal {
	return l.unitPrice.Times(l.quantity)
}

func (l *Line) setProductID(id kernel.ID) error {
	if err := id.Validate(); err != nil {
		return err
	}
	l.productID = id
	return nil
}

func (l *Line) setProductName(name string) error {
	name = strings.TrimSpace(name)
	if name == "" {
		return errs.NewValueIsRequiredError("product name")
	}
	if n := utf8.RuneCountInString(name); n > MaxProductNameLength {
		return errs.NewValueIsOutOfRangeError("product name length", n, 1, MaxProductNameLength)
	}
	l.productName = name
	return nil
}

func (l *Line) setUnitPrice(price kernel.Price) error {
	if err := price.Validate(); err != nil {
		return err
	}
	l.unitPrice = price
	return nil
}

func (l *Line) setQuantity(quantity kernel.Quantity) error {
	if err := quantity.Validate(); err != nil {
		return fmt.Errorf("line quantity: %w", err)
	}
	l.quantity = quantity
	return nil
}
