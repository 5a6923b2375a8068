package commands

import (
	"errors"
	"fmt"

	"fulfillment/internal/core/domain/model/kernel"
	"fulfillment/internal/core/domain/model/order"
	"fulfillment/internal/pkg/errs"
	"fulfillment/internal/pkg/guard"

	"github.com/shopspring/decimal"
)

var ErrPlaceOrderCommandIsNotConstructed = errors.New(
	"PlaceOrderCommand must be created via NewPlaceOrderCommand constructor",
)

// MaxLinesPerOrder bounds the number of lines accepted in one PlaceOrderCommand.
const MaxLinesPerOrder = 100

// LineInput is one requested order line in its raw form.
type LineInput struct {
	ProductID   kernel.ID
	ProductName string
	UnitPrice   decimal.Decimal
	Quantity    int
}

// PlaceOrderCommand asks to create and place an order in one step.
//
// Example:
//
//	cmd, err := NewPlaceOrderCommand(customerID, []LineInput{
//	    {ProductID: laptopID, ProductName: "Laptop", UnitPrice: decimal.NewFromInt(1500), Quantity: 2},
//	})
//	if err != nil {
//	    return err // validation_error
//	}
//	orderID, err := handler.Handle(ctx, cmd)
type PlaceOrderCommand struct { //nolint:recvcheck //using for validation
	customerID kernel.ID
	lines      []order.Line

	guard guard.ConstructorGuard
}

// NewPlaceOrderCommand validates the shape of every line. Cross-line rules such as
// duplicate products are left to the order itself.
func NewPlaceOrderCommand(customerID kernel.ID, lines []LineInput) (PlaceOrderCommand, error) {
	cmd := PlaceOrderCommand{guard: guard.NewConstructorGuard()}

	if err := errors.Join(
		cmd.setCustomerID(customerID),
		cmd.setLines(lines),
	); err != nil {
		return PlaceOrderCommand{}, err
	}

	return cmd, nil
}

func (c PlaceOrderCommand) Validate() error {
	return c.guard.Validate(ErrPlaceOrderCommandIsNotConstructed)
}

func (c PlaceOrderCommand) CustomerID() kernel.ID {
	return c.customerID
}

// Lines returns a copy of the validated lines in request order.
func (c PlaceOrderCommand) Lines() []order.Line {
	lines := make([]order.Line, len(c.lines))
	copy(lines, c.lines)
	return lines
}

func (c *PlaceOrderCommand) setCustomerID(customerID kernel.ID) error {
	if err := customerID.Validate(); err != nil {
		return err
	}
	c.customerID = customerID
	return nil
}

func (c *PlaceOrderCommand) setLines(inputs []LineInput) error {
	if len(inputs) == 0 {
		return errs.NewValueIsRequiredError("lines")
	}
	if len(inputs) > MaxLinesPerOrder {
		return errs.NewValueIsOutOfRangeError("number of lines", len(inputs), 1, MaxLinesPerOrder)
	}

	lines := make([]order.Line, 0, len(inputs))
	var lineErrs []error
	for i, in := range inputs {
		line, err := in.toLine()
		if err != nil {
			lineErrs = append(lineErrs, fmt.Errorf("line %d: %w", i, err))
			continue
		}
		lines = append(lines, line)
	}
	if err := errors.Join(lineErrs...); err != nil {
		return err
	}

	c.lines = lines
	return nil
}

func (in LineInput) toLine() (order.Line, error) {
	price, priceErr := kernel.NewPrice(in.UnitPrice)
	quantity, quantityErr := kernel.NewQuantity(in.Quantity)
	if err := errors.Join(priceErr, quantityErr); err != nil {
		return order.Line{}, err
	}
	return order.NewLine(in.ProductID, in.ProductName, price, quantity)
}
