package commands_test

import (
	"context"

	"fulfillment/internal/core/domain/events"
	"fulfillment/internal/core/domain/model/kernel"
	"fulfillment/internal/core/domain/model/order"
	"fulfillment/internal/core/domain/model/shipping"

	"github.com/stretchr/testify/mock"
)

type MockOrderRepository struct{ mock.Mock }

func (m *MockOrderRepository) Save(ctx context.Context, o order.Order) error {
	args := m.Called(ctx, o)
	return args.Error(0)
}

func (m *MockOrderRepository) FindByID(ctx context.Context, id kernel.ID) (order.Order, error) {
	args := m.Called(ctx, id)
	return args.Get(0).(order.Order), args.Error(1)
}

func (m *MockOrderRepository) FindByCustomer(ctx context.Context, customerID kernel.ID) ([]order.Order, error) {
	args := m.Called(ctx, customerID)
	return args.Get(0).([]order.Order), args.Error(1)
}

func (m *MockOrderRepository) NextID() kernel.ID {
	args := m.Called()
	return args.Get(0).(kernel.ID)
}

type MockShippingRepository struct{ mock.Mock }

func (m *MockShippingRepository) Save(ctx context.Context, s shipping.Shipping) error {
	args := m.Called(ctx, s)
	return args.Error(0)
}

func (m *MockShippingRepository) FindByID(ctx context.Context, id kernel.ID) (shipping.Shipping, error) {
	args := m.Called(ctx, id)
	return args.Get(0).(shipping.Shipping), args.Error(1)
}

func (m *MockShippingRepository) FindByOrderID(ctx context.Context, orderID kernel.ID) (shipping.Shipping, error) {
	args := m.Called(ctx, orderID)
	return args.Get(0).(shipping.Shipping), args.Error(1)
}

func (m *MockShippingRepository) FindByStatus(
	ctx context.Context,
	status shipping.StatusKind,
	limit int,
) ([]shipping.Shipping, error) {
	args := m.Called(ctx, status, limit)
	return args.Get(0).([]shipping.Shipping), args.Error(1)
}

func (m *MockShippingRepository) NextID() kernel.ID {
	args := m.Called()
	return args.Get(0).(kernel.ID)
}

type MockEventPublisher struct{ mock.Mock }

func (m *MockEventPublisher) Publish(ctx context.Context, event events.Event) error {
	args := m.Called(ctx, event)
	return args.Error(0)
}
