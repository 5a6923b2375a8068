package commands

import (
	"errors"

	"fulfillment/internal/pkg/errs"
	"fulfillment/internal/pkg/guard"
)

var ErrAdvanceShipmentsCommandIsNotConstructed = errors.New(
	"AdvanceShipmentsCommand must be created via NewAdvanceShipmentsCommand constructor",
)

const MaxAdvanceBatchSize = 1000

// AdvanceShipmentsCommand moves up to BatchSize shipments of every open status one
// step forward. It drives the simulated carrier run by the scheduler.
type AdvanceShipmentsCommand struct { //nolint:recvcheck //using for validation
	batchSize int
	guard     guard.ConstructorGuard
}

func NewAdvanceShipmentsCommand(batchSize int) (AdvanceShipmentsCommand, error) {
	if batchSize < 1 || batchSize > MaxAdvanceBatchSize {
		return AdvanceShipmentsCommand{}, errs.NewValueIsOutOfRangeError("batch size", batchSize, 1, MaxAdvanceBatchSize)
	}
	return AdvanceShipmentsCommand{batchSize: batchSize, guard: guard.NewConstructorGuard()}, nil
}

func (c AdvanceShipmentsCommand) Validate() error {
	return c.guard.Validate(ErrAdvanceShipmentsCommandIsNotConstructed)
}

func (c AdvanceShipmentsCommand) BatchSize() int {
	return c.batchSize
}
