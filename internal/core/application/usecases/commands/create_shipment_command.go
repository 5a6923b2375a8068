package commands

import (
	"errors"

	"fulfillment/internal/core/domain/model/kernel"
	"fulfillment/internal/pkg/guard"
)

var ErrCreateShipmentCommandIsNotConstructed = errors.New(
	"CreateShipmentCommand must be created via NewCreateShipmentCommand constructor",
)

// CreateShipmentCommand asks to ship a paid order to an address.
type CreateShipmentCommand struct { //nolint:recvcheck //using for validation
	orderID kernel.ID
	address kernel.Address
	method  kernel.ShippingMethod

	guard guard.ConstructorGuard
}

// NewCreateShipmentCommand validates the order id, the address and the method name.
func NewCreateShipmentCommand(orderID kernel.ID, address kernel.AddressFields, method string) (CreateShipmentCommand, error) {
	cmd := CreateShipmentCommand{guard: guard.NewConstructorGuard()}

	if err := errors.Join(
		cmd.setOrderID(orderID),
		cmd.setAddress(address),
		cmd.setMethod(method),
	); err != nil {
		return CreateShipmentCommand{}, err
	}

	return cmd, nil
}

func (c CreateShipmentCommand) Validate() error {
	return c.guard.Validate(ErrCreateShipmentCommandIsNotConstructed)
}

func (c CreateShipmentCommand) OrderID() kernel.ID {
	return c.orderID
}

func (c CreateShipmentCommand) Address() kernel.Address {
	return c.address
}

func (c CreateShipmentCommand) Method() kernel.ShippingMethod {
	return c.method
}

func (c *CreateShipmentCommand) setOrderID(orderID kernel.ID) error {
	if err := orderID.Validate(); err != nil {
		return err
	}
	c.orderID = orderID
	return nil
}

func (c *CreateShipmentCommand) setAddress(fields kernel.AddressFields) error {
	address, err := kernel.NewAddress(fields)
	if err != nil {
		return err
	}
	c.address = address
	return nil
}

func (c *CreateShipmentCommand) setMethod(name string) error {
	method, err := kernel.ParseShippingMethod(name)
	if err != nil {
		return err
	}
	c.method = method
	return nil
}
