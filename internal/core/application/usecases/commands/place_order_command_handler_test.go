package commands_test

import (
	"errors"
	"testing"

	"fulfillment/internal/core/application/usecases/commands"
	"fulfillment/internal/core/domain/events"
	"fulfillment/internal/core/domain/model/kernel"
	"fulfillment/internal/core/domain/model/order"
	"fulfillment/internal/pkg/errs"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func newPlaceOrderHandler(orders *MockOrderRepository, bus *MockEventPublisher) *commands.PlaceOrderCommandHandler {
	return commands.NewPlaceOrderCommandHandler(orders, bus, kernel.NewFixedClock(t0), nil)
}

func TestPlaceOrderCommandHandler_Handle_Success(t *testing.T) {
	ctx := t.Context()
	orderID := kernel.NewID()
	cmd, err := commands.NewPlaceOrderCommand(kernel.NewID(), laptopAndMonitor())
	require.NoError(t, err)

	orders := new(MockOrderRepository)
	bus := new(MockEventPublisher)
	isPlaced := mock.MatchedBy(func(o order.Order) bool {
		return o.ID().Equal(orderID) && o.Status().Kind() == order.StatusPlaced
	})
	isAnnouncement := mock.MatchedBy(func(e events.Event) bool {
		placed, ok := e.(events.OrderPlaced)
		return ok && placed.OrderID.Equal(orderID) && placed.TotalAmount.Equal(decimal.NewFromInt(5800))
	})
	mock.InOrder(
		orders.On("NextID").Return(orderID).Once(),
		orders.On("Save", mock.Anything, isPlaced).Return(nil).Once(),
		bus.On("Publish", mock.Anything, isAnnouncement).Return(nil).Once(),
	)

	id, err := newPlaceOrderHandler(orders, bus).Handle(ctx, cmd)

	require.NoError(t, err)
	assert.Equal(t, orderID, id)
	orders.AssertExpectations(t)
	bus.AssertExpectations(t)
}

func TestPlaceOrderCommandHandler_Handle_ValidationError(t *testing.T) {
	orders := new(MockOrderRepository)
	bus := new(MockEventPublisher)

	_, err := newPlaceOrderHandler(orders, bus).Handle(t.Context(), commands.PlaceOrderCommand{})

	require.Error(t, err)
	assert.Equal(t, errs.KindValidation, errs.KindOf(err))
	orders.AssertNotCalled(t, "NextID")
}

func TestPlaceOrderCommandHandler_Handle_DuplicateProduct(t *testing.T) {
	inputs := laptopAndMonitor()
	inputs[1].ProductID = inputs[0].ProductID
	cmd, err := commands.NewPlaceOrderCommand(kernel.NewID(), inputs)
	require.NoError(t, err)

	orders := new(MockOrderRepository)
	bus := new(MockEventPublisher)
	orders.On("NextID").Return(kernel.NewID()).Once()

	_, err = newPlaceOrderHandler(orders, bus).Handle(t.Context(), cmd)

	require.ErrorIs(t, err, errs.ErrBusinessRuleViolation)
	orders.AssertNotCalled(t, "Save", mock.Anything, mock.Anything)
	bus.AssertNotCalled(t, "Publish", mock.Anything, mock.Anything)
}

func TestPlaceOrderCommandHandler_Handle_SaveErrorSkipsPublish(t *testing.T) {
	cmd, err := commands.NewPlaceOrderCommand(kernel.NewID(), laptopAndMonitor())
	require.NoError(t, err)

	orders := new(MockOrderRepository)
	bus := new(MockEventPublisher)
	orders.On("NextID").Return(kernel.NewID()).Once()
	orders.On("Save", mock.Anything, mock.Anything).Return(errors.New("connection reset")).Once()

	_, err = newPlaceOrderHandler(orders, bus).Handle(t.Context(), cmd)

	require.ErrorIs(t, err, errs.ErrRepositoryOperation)
	assert.Contains(t, err.Error(), "connection reset")
	orders.AssertNumberOfCalls(t, "Save", 1)
	bus.AssertNumberOfCalls(t, "Publish", 0)
}

func TestPlaceOrderCommandHandler_Handle_PublishError(t *testing.T) {
	cmd, err := commands.NewPlaceOrderCommand(kernel.NewID(), laptopAndMonitor())
	require.NoError(t, err)

	orders := new(MockOrderRepository)
	bus := new(MockEventPublisher)
	orders.On("NextID").Return(kernel.NewID()).Once()
	orders.On("Save", mock.Anything, mock.Anything).Return(nil).Once()
	bus.On("Publish", mock.Anything, mock.Anything).Return(errors.New("broker down")).Once()

	_, err = newPlaceOrderHandler(orders, bus).Handle(t.Context(), cmd)

	require.ErrorIs(t, err, errs.ErrRepositoryOperation)
	assert.Equal(t, errs.KindRepository, errs.KindOf(err))
}

func TestPlaceOrderCommandHandler_Handle_PanickingRepository(t *testing.T) {
	cmd, err := commands.NewPlaceOrderCommand(kernel.NewID(), laptopAndMonitor())
	require.NoError(t, err)

	orders := new(MockOrderRepository)
	bus := new(MockEventPublisher)
	orders.On("NextID").Return(kernel.NewID()).Once()
	orders.On("Save", mock.Anything, mock.Anything).Run(func(mock.Arguments) {
		panic("driver bug")
	}).Once()

	_, err = newPlaceOrderHandler(orders, bus).Handle(t.Context(), cmd)

	require.ErrorIs(t, err, errs.ErrRepositoryOperation)
	assert.Contains(t, err.Error(), "driver bug")
	bus.AssertNotCalled(t, "Publish", mock.Anything, mock.Anything)
}
