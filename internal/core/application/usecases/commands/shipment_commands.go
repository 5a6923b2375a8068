package commands

import (
	"errors"

	"fulfillment/internal/core/domain/model/kernel"
	"fulfillment/internal/pkg/guard"
)

var (
	ErrStartShipmentPreparationCommandIsNotConstructed = errors.New(
		"StartShipmentPreparationCommand must be created via NewStartShipmentPreparationCommand constructor",
	)
	ErrShipShipmentCommandIsNotConstructed = errors.New(
		"ShipShipmentCommand must be created via NewShipShipmentCommand constructor",
	)
	ErrDeliverShipmentCommandIsNotConstructed = errors.New(
		"DeliverShipmentCommand must be created via NewDeliverShipmentCommand constructor",
	)
)

// StartShipmentPreparationCommand moves a pending shipment into the warehouse.
type StartShipmentPreparationCommand struct { //nolint:recvcheck //using for validation
	shippingID kernel.ID
	guard      guard.ConstructorGuard
}

func NewStartShipmentPreparationCommand(shippingID kernel.ID) (StartShipmentPreparationCommand, error) {
	if err := shippingID.Validate(); err != nil {
		return StartShipmentPreparationCommand{}, err
	}
	return StartShipmentPreparationCommand{shippingID: shippingID, guard: guard.NewConstructorGuard()}, nil
}

func (c StartShipmentPreparationCommand) Validate() error {
	return c.guard.Validate(ErrStartShipmentPreparationCommandIsNotConstructed)
}

func (c StartShipmentPreparationCommand) ShippingID() kernel.ID {
	return c.shippingID
}

// ShipShipmentCommand hands a prepared shipment to the carrier.
type ShipShipmentCommand struct { //nolint:recvcheck //using for validation
	shippingID kernel.ID
	guard      guard.ConstructorGuard
}

func NewShipShipmentCommand(shippingID kernel.ID) (ShipShipmentCommand, error) {
	if err := shippingID.Validate(); err != nil {
		return ShipShipmentCommand{}, err
	}
	return ShipShipmentCommand{shippingID: shippingID, guard: guard.NewConstructorGuard()}, nil
}

func (c ShipShipmentCommand) Validate() error {
	return c.guard.Validate(ErrShipShipmentCommandIsNotConstructed)
}

func (c ShipShipmentCommand) ShippingID() kernel.ID {
	return c.shippingID
}

// DeliverShipmentCommand confirms delivery of a shipped parcel.
type DeliverShipmentCommand struct { //nolint:recvcheck //using for validation
	shippingID kernel.ID
	guard      guard.ConstructorGuard
}

func NewDeliverShipmentCommand(shippingID kernel.ID) (DeliverShipmentCommand, error) {
	if err := shippingID.Validate(); err != nil {
		return DeliverShipmentCommand{}, err
	}
	return DeliverShipmentCommand{shippingID: shippingID, guard: guard.NewConstructorGuard()}, nil
}

func (c DeliverShipmentCommand) Validate() error {
	return c.guard.Validate(ErrDeliverShipmentCommandIsNotConstructed)
}

func (c DeliverShipmentCommand) ShippingID() kernel.ID {
	return c.shippingID
}
