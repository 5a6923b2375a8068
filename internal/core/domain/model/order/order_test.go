package order_test

import (
	"strings"
	"testing"
	"time"

	"fulfillment/internal/core/domain/model/kernel"
	"fulfillment/internal/core/domain/model/order"
	"fulfillment/internal/pkg/errs"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var t0 = time.Date(2025, 3, 1, 12, 0, 0, 0, time.UTC)

func newDraft(t *testing.T) order.Order {
	t.Helper()
	o, err := order.New(kernel.NewID(), kernel.NewID(), t0)
	require.NoError(t, err)
	return o
}

func draftWithLines(t *testing.T, lines ...order.Line) order.Order {
	t.Helper()
	o := newDraft(t)
	for i, l := range lines {
		var err error
		o, err = o.AddLine(l, t0.Add(time.Duration(i+1)*time.Minute))
		require.NoError(t, err)
	}
	return o
}

func TestNew(t *testing.T) {
	t.Run("should create empty draft", func(t *testing.T) {
		id, customerID := kernel.NewID(), kernel.NewID()

		o, err := order.New(id, customerID, t0)

		require.NoError(t, err)
		require.NoError(t, o.Validate())
		assert.True(t, id.Equal(o.ID()))
		assert.True(t, customerID.Equal(o.CustomerID()))
		assert.Empty(t, o.Lines())
		assert.Equal(t, order.Draft{}, o.Status())
		assert.True(t, o.TotalAmount().IsZero())
		assert.Equal(t, t0, o.CreatedAt())
		assert.Equal(t, t0, o.UpdatedAt())
	})

	t.Run("should reject zero identifiers", func(t *testing.T) {
		_, err := order.New(kernel.ID{}, kernel.ID{}, t0)

		require.ErrorIs(t, err, errs.ErrValueIsRequired)
	})

	t.Run("should reject zero timestamp", func(t *testing.T) {
		_, err := order.New(kernel.NewID(), kernel.NewID(), time.Time{})

		require.ErrorIs(t, err, errs.ErrValueIsInvalid)
		assert.Equal(t, errs.KindValidation, errs.KindOf(err))
	})

	t.Run("zero value should fail validation", func(t *testing.T) {
		var o order.Order
		assert.Equal(t, order.ErrOrderIsNotConstructed, o.Validate())
	})
}

func TestOrder_AddLine(t *testing.T) {
	t.Run("should keep total equal to sum of lines", func(t *testing.T) {
		o := draftWithLines(t,
			mustLine(t, "Laptop", "1500.00", 2),
			mustLine(t, "Monitor", "2800.00", 1),
		)

		assert.Len(t, o.Lines(), 2)
		assert.True(t, decimal.RequireFromString("5800.00").Equal(o.TotalAmount()))
		assert.Equal(t, t0.Add(2*time.Minute), o.UpdatedAt())
		assert.Equal(t, t0, o.CreatedAt())
	})

	t.Run("should leave receiver unchanged", func(t *testing.T) {
		before := newDraft(t)
		snapshot := before.Record()

		after, err := before.AddLine(mustLine(t, "Laptop", "10.00", 1), t0.Add(time.Minute))

		require.NoError(t, err)
		assert.Equal(t, snapshot, before.Record())
		assert.Empty(t, before.Lines())
		assert.Len(t, after.Lines(), 1)
	})

	t.Run("should reject duplicate product", func(t *testing.T) {
		line := mustLine(t, "Laptop", "10.00", 1)
		o := draftWithLines(t, line)

		_, err := o.AddLine(line, t0.Add(time.Hour))

		require.ErrorIs(t, err, errs.ErrBusinessRuleViolation)
		assert.Contains(t, err.Error(), line.ProductID().String())
	})

	t.Run("should reject lines outside draft", func(t *testing.T) {
		placed, err := draftWithLines(t, mustLine(t, "Laptop", "10.00", 1)).Place(t0.Add(time.Hour))
		require.NoError(t, err)

		_, err = placed.AddLine(mustLine(t, "Mouse", "5.00", 1), t0.Add(2*time.Hour))

		require.ErrorIs(t, err, errs.ErrBusinessRuleViolation)
		assert.Contains(t, err.Error(), "placed")
	})

	t.Run("should reject unconstructed line", func(t *testing.T) {
		_, err := newDraft(t).AddLine(order.Line{}, t0)

		require.ErrorIs(t, err, order.ErrLineIsNotConstructed)
	})

	t.Run("should reject update time before creation", func(t *testing.T) {
		_, err := newDraft(t).AddLine(mustLine(t, "Laptop", "10.00", 1), t0.Add(-time.Second))

		require.ErrorIs(t, err, errs.ErrValueIsInvalid)
		assert.Contains(t, err.Error(), "UpdatedAt")
	})
}

func TestOrder_Place(t *testing.T) {
	t.Run("should place draft with lines", func(t *testing.T) {
		at := t0.Add(time.Hour)

		o, err := draftWithLines(t, mustLine(t, "Laptop", "10.00", 1)).Place(at)

		require.NoError(t, err)
		assert.Equal(t, order.Placed{PlacedAt: at}, o.Status())
		assert.Equal(t, at, o.UpdatedAt())
	})

	t.Run("should reject empty order", func(t *testing.T) {
		_, err := newDraft(t).Place(t0.Add(time.Hour))

		require.ErrorIs(t, err, errs.ErrBusinessRuleViolation)
		assert.Equal(t, errs.KindBusinessRule, errs.KindOf(err))
	})

	t.Run("should reject placing twice", func(t *testing.T) {
		o, err := draftWithLines(t, mustLine(t, "Laptop", "10.00", 1)).Place(t0.Add(time.Hour))
		require.NoError(t, err)

		_, err = o.Place(t0.Add(2 * time.Hour))

		require.ErrorIs(t, err, errs.ErrBusinessRuleViolation)
	})
}

func TestOrder_MarkPaid(t *testing.T) {
	t.Run("should pay placed order", func(t *testing.T) {
		placed, err := draftWithLines(t, mustLine(t, "Laptop", "10.00", 1)).Place(t0.Add(time.Hour))
		require.NoError(t, err)
		at := t0.Add(2 * time.Hour)

		paid, err := placed.MarkPaid(at)

		require.NoError(t, err)
		assert.Equal(t, order.Paid{PaidAt: at}, paid.Status())
		assert.True(t, paid.Status().Kind().IsTerminal())
		assert.Equal(t, order.StatusPlaced, placed.Status().Kind())
	})

	t.Run("should reject draft", func(t *testing.T) {
		_, err := draftWithLines(t, mustLine(t, "Laptop", "10.00", 1)).MarkPaid(t0.Add(time.Hour))

		require.ErrorIs(t, err, errs.ErrBusinessRuleViolation)
		assert.Contains(t, err.Error(), "draft")
	})
}

func TestOrder_Cancel(t *testing.T) {
	t.Run("should cancel draft and placed orders", func(t *testing.T) {
		draft := draftWithLines(t, mustLine(t, "Laptop", "10.00", 1))
		placed, err := draft.Place(t0.Add(time.Hour))
		require.NoError(t, err)

		for _, o := range []order.Order{draft, placed} {
			at := t0.Add(3 * time.Hour)

			cancelled, cancelErr := o.Cancel(at, " out of stock ")

			require.NoError(t, cancelErr)
			assert.Equal(t, order.Cancelled{CancelledAt: at, Reason: "out of stock"}, cancelled.Status())
		}
	})

	t.Run("should reject paid order", func(t *testing.T) {
		placed, err := draftWithLines(t, mustLine(t, "Laptop", "10.00", 1)).Place(t0.Add(time.Hour))
		require.NoError(t, err)
		paid, err := placed.MarkPaid(t0.Add(2 * time.Hour))
		require.NoError(t, err)

		_, err = paid.Cancel(t0.Add(3*time.Hour), "changed mind")

		require.ErrorIs(t, err, errs.ErrBusinessRuleViolation)
	})

	t.Run("should require reason", func(t *testing.T) {
		_, err := newDraft(t).Cancel(t0.Add(time.Hour), "  ")

		require.ErrorIs(t, err, errs.ErrValueIsRequired)
	})

	t.Run("should reject long reason", func(t *testing.T) {
		_, err := newDraft(t).Cancel(t0.Add(time.Hour), strings.Repeat("r", order.MaxCancelReasonLength+1))

		require.ErrorIs(t, err, errs.ErrValueIsOutOfRange)
	})
}

func TestOrder_Lines(t *testing.T) {
	o := draftWithLines(t, mustLine(t, "Laptop", "10.00", 1))

	lines := o.Lines()
	lines[0] = order.Line{}

	require.NoError(t, o.Lines()[0].Validate())
}
