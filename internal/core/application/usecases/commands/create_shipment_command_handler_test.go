package commands_test

import (
	"errors"
	"testing"
	"time"

	"fulfillment/internal/core/application/usecases/commands"
	"fulfillment/internal/core/domain/model/kernel"
	"fulfillment/internal/core/domain/model/order"
	"fulfillment/internal/core/domain/model/shipping"
	"fulfillment/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

type createShipmentFixture struct {
	orders    *MockOrderRepository
	shipments *MockShippingRepository
	handler   *commands.CreateShipmentCommandHandler
}

func newCreateShipmentFixture() createShipmentFixture {
	f := createShipmentFixture{
		orders:    new(MockOrderRepository),
		shipments: new(MockShippingRepository),
	}
	f.handler = commands.NewCreateShipmentCommandHandler(f.orders, f.shipments, kernel.NewFixedClock(t0.Add(time.Hour)), nil)
	return f
}

func mustCreateShipmentCommand(t *testing.T, orderID kernel.ID) commands.CreateShipmentCommand {
	t.Helper()
	cmd, err := commands.NewCreateShipmentCommand(orderID, validAddress(), "overnight")
	require.NoError(t, err)
	return cmd
}

func TestCreateShipmentCommandHandler_Handle_Success(t *testing.T) {
	f := newCreateShipmentFixture()
	paid := orderIn(t, order.StatusPaid)
	shippingID := kernel.NewID()
	isNewShipment := mock.MatchedBy(func(s shipping.Shipping) bool {
		return s.ID().Equal(shippingID) &&
			s.OrderID().Equal(paid.ID()) &&
			s.Status().Kind() == shipping.StatusPending &&
			s.EstimatedDeliveryDate().Equal(t0.Add(25*time.Hour))
	})
	mock.InOrder(
		f.orders.On("FindByID", mock.Anything, paid.ID()).Return(paid, nil).Once(),
		f.shipments.On("FindByOrderID", mock.Anything, paid.ID()).
			Return(shipping.Shipping{}, errs.NewObjectNotFoundError("shipping of order", paid.ID())).Once(),
		f.shipments.On("NextID").Return(shippingID).Once(),
		f.shipments.On("Save", mock.Anything, isNewShipment).Return(nil).Once(),
	)

	id, err := f.handler.Handle(t.Context(), mustCreateShipmentCommand(t, paid.ID()))

	require.NoError(t, err)
	assert.Equal(t, shippingID, id)
	f.orders.AssertExpectations(t)
	f.shipments.AssertExpectations(t)
}

func TestCreateShipmentCommandHandler_Handle_OrderNotFound(t *testing.T) {
	f := newCreateShipmentFixture()
	orderID := kernel.NewID()
	f.orders.On("FindByID", mock.Anything, orderID).
		Return(order.Order{}, errs.NewObjectNotFoundError("order", orderID)).Once()

	_, err := f.handler.Handle(t.Context(), mustCreateShipmentCommand(t, orderID))

	require.ErrorIs(t, err, errs.ErrObjectNotFound)
	assert.Equal(t, errs.KindNotFound, errs.KindOf(err))
	f.shipments.AssertNotCalled(t, "FindByOrderID", mock.Anything, mock.Anything)
}

func TestCreateShipmentCommandHandler_Handle_OrderNotPaid(t *testing.T) {
	for _, status := range []order.StatusKind{order.StatusDraft, order.StatusPlaced} {
		t.Run(status.String(), func(t *testing.T) {
			f := newCreateShipmentFixture()
			o := orderIn(t, status)
			f.orders.On("FindByID", mock.Anything, o.ID()).Return(o, nil).Once()

			_, err := f.handler.Handle(t.Context(), mustCreateShipmentCommand(t, o.ID()))

			require.ErrorIs(t, err, errs.ErrBusinessRuleViolation)
			assert.Contains(t, err.Error(), status.String())
			f.shipments.AssertNotCalled(t, "FindByOrderID", mock.Anything, mock.Anything)
			f.shipments.AssertNotCalled(t, "Save", mock.Anything, mock.Anything)
		})
	}
}

func TestCreateShipmentCommandHandler_Handle_ShipmentExists(t *testing.T) {
	f := newCreateShipmentFixture()
	paid := orderIn(t, order.StatusPaid)
	address, err := kernel.NewAddress(validAddress())
	require.NoError(t, err)
	existing, err := shipping.New(kernel.NewID(), paid.ID(), address, kernel.ShippingMethodStandard, t0)
	require.NoError(t, err)
	f.orders.On("FindByID", mock.Anything, paid.ID()).Return(paid, nil).Once()
	f.shipments.On("FindByOrderID", mock.Anything, paid.ID()).Return(existing, nil).Once()

	_, err = f.handler.Handle(t.Context(), mustCreateShipmentCommand(t, paid.ID()))

	require.ErrorIs(t, err, errs.ErrBusinessRuleViolation)
	assert.Contains(t, err.Error(), existing.ID().String())
	f.shipments.AssertNotCalled(t, "Save", mock.Anything, mock.Anything)
}

func TestCreateShipmentCommandHandler_Handle_LookupFails(t *testing.T) {
	f := newCreateShipmentFixture()
	paid := orderIn(t, order.StatusPaid)
	f.orders.On("FindByID", mock.Anything, paid.ID()).Return(paid, nil).Once()
	f.shipments.On("FindByOrderID", mock.Anything, paid.ID()).
		Return(shipping.Shipping{}, errors.New("timeout")).Once()

	_, err := f.handler.Handle(t.Context(), mustCreateShipmentCommand(t, paid.ID()))

	require.ErrorIs(t, err, errs.ErrRepositoryOperation)
	f.shipments.AssertNotCalled(t, "Save", mock.Anything, mock.Anything)
}
