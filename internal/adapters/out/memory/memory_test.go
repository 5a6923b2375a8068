package memory_test

import (
	"context"
	"testing"
	"time"

	"fulfillment/internal/adapters/out/memory"
	"fulfillment/internal/core/domain/events"
	"fulfillment/internal/core/domain/model/kernel"
	"fulfillment/internal/core/domain/model/order"
	"fulfillment/internal/core/domain/model/shipping"
	"fulfillment/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var t0 = time.Date(2025, 3, 1, 12, 0, 0, 0, time.UTC)

func newOrder(t *testing.T, customerID kernel.ID, at time.Time) order.Order {
	t.Helper()
	o, err := order.New(kernel.NewID(), customerID, at)
	require.NoError(t, err)
	return o
}

func newShipping(t *testing.T, at time.Time) shipping.Shipping {
	t.Helper()
	address, err := kernel.NewAddress(kernel.AddressFields{
		Street: "221B Baker St", City: "Portland", State: "ME", PostalCode: "04101", Country: "US",
	})
	require.NoError(t, err)
	s, err := shipping.New(kernel.NewID(), kernel.NewID(), address, kernel.ShippingMethodStandard, at)
	require.NoError(t, err)
	return s
}

func TestOrderRepository(t *testing.T) {
	ctx := t.Context()

	t.Run("should return saved snapshot", func(t *testing.T) {
		repo := memory.NewOrderRepository()
		o := newOrder(t, kernel.NewID(), t0)

		require.NoError(t, repo.Save(ctx, o))
		got, err := repo.FindByID(ctx, o.ID())

		require.NoError(t, err)
		assert.Equal(t, o.Record(), got.Record())
	})

	t.Run("should overwrite on repeated save", func(t *testing.T) {
		repo := memory.NewOrderRepository()
		o := newOrder(t, kernel.NewID(), t0)
		cancelled, err := o.Cancel(t0.Add(time.Hour), "duplicate")
		require.NoError(t, err)

		require.NoError(t, repo.Save(ctx, o))
		require.NoError(t, repo.Save(ctx, cancelled))
		got, err := repo.FindByID(ctx, o.ID())

		require.NoError(t, err)
		assert.Equal(t, order.StatusCancelled, got.Status().Kind())
		assert.Equal(t, 1, repo.Len())
	})

	t.Run("should report missing order as not found", func(t *testing.T) {
		_, err := memory.NewOrderRepository().FindByID(ctx, kernel.NewID())

		require.ErrorIs(t, err, errs.ErrObjectNotFound)
	})

	t.Run("should list customer orders oldest first", func(t *testing.T) {
		repo := memory.NewOrderRepository()
		customerID := kernel.NewID()
		second := newOrder(t, customerID, t0.Add(time.Hour))
		first := newOrder(t, customerID, t0)
		require.NoError(t, repo.Save(ctx, second))
		require.NoError(t, repo.Save(ctx, first))
		require.NoError(t, repo.Save(ctx, newOrder(t, kernel.NewID(), t0)))

		got, err := repo.FindByCustomer(ctx, customerID)

		require.NoError(t, err)
		require.Len(t, got, 2)
		assert.True(t, first.ID().Equal(got[0].ID()))
		assert.True(t, second.ID().Equal(got[1].ID()))
	})

	t.Run("should reject unconstructed order", func(t *testing.T) {
		err := memory.NewOrderRepository().Save(ctx, order.Order{})

		require.ErrorIs(t, err, order.ErrOrderIsNotConstructed)
	})

	t.Run("should fail on cancelled context", func(t *testing.T) {
		cancelled, cancel := context.WithCancel(ctx)
		cancel()

		err := memory.NewOrderRepository().Save(cancelled, newOrder(t, kernel.NewID(), t0))

		require.ErrorIs(t, err, errs.ErrRepositoryOperation)
		assert.Contains(t, err.Error(), context.Canceled.Error())
	})
}

func TestShippingRepository(t *testing.T) {
	ctx := t.Context()

	t.Run("should find by order id", func(t *testing.T) {
		repo := memory.NewShippingRepository()
		s := newShipping(t, t0)
		require.NoError(t, repo.Save(ctx, s))

		got, err := repo.FindByOrderID(ctx, s.OrderID())

		require.NoError(t, err)
		assert.Equal(t, s.Record(), got.Record())

		_, err = repo.FindByOrderID(ctx, kernel.NewID())
		require.ErrorIs(t, err, errs.ErrObjectNotFound)
	})

	t.Run("should list by status least recently updated first", func(t *testing.T) {
		repo := memory.NewShippingRepository()
		late := newShipping(t, t0.Add(2*time.Hour))
		early := newShipping(t, t0)
		middle := newShipping(t, t0.Add(time.Hour))
		preparing, err := newShipping(t, t0).StartPreparation(t0.Add(time.Minute))
		require.NoError(t, err)
		for _, s := range []shipping.Shipping{late, early, middle, preparing} {
			require.NoError(t, repo.Save(ctx, s))
		}

		got, err := repo.FindByStatus(ctx, shipping.StatusPending, 2)

		require.NoError(t, err)
		require.Len(t, got, 2)
		assert.True(t, early.ID().Equal(got[0].ID()))
		assert.True(t, middle.ID().Equal(got[1].ID()))

		all, err := repo.FindByStatus(ctx, shipping.StatusPending, 0)
		require.NoError(t, err)
		assert.Len(t, all, 3)
	})
}

func TestEventBus(t *testing.T) {
	bus := memory.NewEventBus()
	var seen []events.Kind
	bus.Subscribe(func(e events.Event) { seen = append(seen, e.Kind()) })
	s := newShipping(t, t0)

	require.NoError(t, bus.Publish(t.Context(), events.NewShipmentDelivered(s)))

	assert.Equal(t, []events.Kind{events.KindShipmentDelivered}, bus.Kinds())
	assert.Equal(t, []events.Kind{events.KindShipmentDelivered}, seen)
	require.Len(t, bus.Published(), 1)
}
