package guard_test

import (
	"errors"
	"testing"

	"fulfillment/internal/core/application/usecases/commands"
	"fulfillment/internal/core/domain/model/kernel"
	"fulfillment/internal/core/domain/model/order"
	"fulfillment/internal/pkg/guard"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestConstructorGuard_Validate(t *testing.T) {
	errNotConstructed := errors.New("parcel must be created via NewParcel")

	t.Run("constructed_guard_passes", func(t *testing.T) {
		// Given
		g := guard.NewConstructorGuard()

		// Then
		require.NoError(t, g.Validate(errNotConstructed))
		require.NoError(t, g.Validate(nil))
	})

	t.Run("zero_value_returns_supplied_error", func(t *testing.T) {
		// Given
		var g guard.ConstructorGuard

		// When
		err := g.Validate(errNotConstructed)

		// Then
		require.ErrorIs(t, err, errNotConstructed)
	})

	t.Run("zero_value_falls_back_to_default_error", func(t *testing.T) {
		// Given
		var g guard.ConstructorGuard

		// When
		err := g.Validate(nil)

		// Then
		require.ErrorIs(t, err, guard.ErrDefaultConstructorGuard)
	})
}

func TestConstructorGuard_ZeroValuesAreRejected(t *testing.T) {
	tests := []struct {
		name  string
		value interface{ Validate() error }
		want  error
	}{
		{"price", kernel.Price{}, kernel.ErrPriceIsNotConstructed},
		{"quantity", kernel.Quantity{}, kernel.ErrQuantityIsNotConstructed},
		{"address", kernel.Address{}, kernel.ErrAddressIsNotConstructed},
		{"order_line", order.Line{}, order.ErrLineIsNotConstructed},
		{"place_order_command", commands.PlaceOrderCommand{}, commands.ErrPlaceOrderCommandIsNotConstructed},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.ErrorIs(t, tt.value.Validate(), tt.want)
		})
	}
}

func TestConstructorGuard_ConstructedValuesPass(t *testing.T) {
	// Given
	price, err := kernel.ParsePrice("19.99")
	require.NoError(t, err)
	qty, err := kernel.NewQuantity(3)
	require.NoError(t, err)
	line, err := order.NewLine(kernel.NewID(), "Desk lamp", price, qty)
	require.NoError(t, err)
	cmd, err := commands.NewPlaceOrderCommand(kernel.NewID(), []commands.LineInput{
		{ProductID: kernel.NewID(), ProductName: "Desk lamp", UnitPrice: decimal.RequireFromString("19.99"), Quantity: 3},
	})
	require.NoError(t, err)

	// Then
	for _, value := range []interface{ Validate() error }{price, qty, line, cmd} {
		require.NoError(t, value.Validate())
	}
}

func TestConstructorGuard_CopiesKeepConstruction(t *testing.T) {
	// Given
	qty, err := kernel.NewQuantity(2)
	require.NoError(t, err)

	// When
	copied := qty

	// Then
	require.NoError(t, copied.Validate())
	assert.Equal(t, 2, copied.Value())
}
