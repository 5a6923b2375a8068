package order_test

import (
	"strings"
	"testing"

	"fulfillment/internal/core/domain/model/kernel"
	"fulfillment/internal/core/domain/model/order"
	"fulfillment/internal/pkg/errs"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func mustPrice(t *testing.T, amount string) kernel.Price {
	t.Helper()
	p, err := kernel.ParsePrice(amount)
	require.NoError(t, err)
	return p
}

func mustQuantity(t *testing.T, v int) kernel.Quantity {
	t.Helper()
	q, err := kernel.NewQuantity(v)
	require.NoError(t, err)
	return q
}

func mustLine(t *testing.T, name, price string, quantity int) order.Line {
	t.Helper()
	l, err := order.NewLine(kernel.NewID(), name, mustPrice(t, price), mustQuantity(t, quantity))
	require.NoError(t, err)
	return l
}

func TestNewLine(t *testing.T) {
	t.Run("should create line and compute amount", func(t *testing.T) {
		productID := kernel.NewID()

		l, err := order.NewLine(productID, "  Laptop ", mustPrice(t, "1500.00"), mustQuantity(t, 2))

		require.NoError(t, err)
		require.NoError(t, l.Validate())
		assert.True(t, productID.Equal(l.ProductID()))
		assert.Equal(t, "Laptop", l.ProductName())
		assert.True(t, decimal.RequireFromString("3000").Equal(l.Amount()))
	})

	t.Run("should report every invalid part", func(t *testing.T) {
		_, err := order.NewLine(kernel.ID{}, "", kernel.Price{}, kernel.Quantity{})

		require.Error(t, err)
		require.ErrorIs(t, err, errs.ErrValueIsRequired)
		assert.Contains(t, err.Error(), "product name")
		assert.Contains(t, err.Error(), "line quantity")
	})

	t.Run("should reject product name over the limit", func(t *testing.T) {
		name := strings.Repeat("ж", order.MaxProductNameLength+1)

		_, err := order.NewLine(kernel.NewID(), name, mustPrice(t, "1"), mustQuantity(t, 1))

		require.ErrorIs(t, err, errs.ErrValueIsOutOfRange)
	})

	t.Run("should accept multibyte name at the limit", func(t *testing.T) {
		name := strings.Repeat("ж", order.MaxProductNameLength)

		_, err := order.NewLine(kernel.NewID(), name, mustPrice(t, "1"), mustQuantity(t, 1))

		require.NoError(t, err)
	})

	t.Run("zero value should fail validation", func(t *testing.T) {
		var l order.Line
		assert.Equal(t, order.ErrLineIsNotConstructed, l.Validate())
	})
}
