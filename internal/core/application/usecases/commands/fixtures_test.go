package commands_test

import (
	"testing"
	"time"

	"fulfillment/internal/core/application/usecases/commands"
	"fulfillment/internal/core/domain/model/kernel"
	"fulfillment/internal/core/domain/model/order"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/require"
)

var t0 = time.Date(2025, 3, 1, 12, 0, 0, 0, time.UTC)

func laptopAndMonitor() []commands.LineInput {
	return []commands.LineInput{
		{ProductID: kernel.NewID(), ProductName: "Laptop", UnitPrice: decimal.NewFromInt(1500), Quantity: 2},
		{ProductID: kernel.NewID(), ProductName: "Monitor", UnitPrice: decimal.NewFromInt(2800), Quantity: 1},
	}
}

func validAddress() kernel.AddressFields {
	return kernel.AddressFields{
		Street:     "500 Market St",
		City:       "San Francisco",
		State:      "CA",
		PostalCode: "94105",
		Country:    "US",
	}
}

// orderIn builds an order that went through the given transitions.
func orderIn(t *testing.T, status order.StatusKind) order.Order {
	t.Helper()
	o, err := order.New(kernel.NewID(), kernel.NewID(), t0)
	require.NoError(t, err)
	price, err := kernel.ParsePrice("10.00")
	require.NoError(t, err)
	qty, err := kernel.NewQuantity(1)
	require.NoError(t, err)
	line, err := order.NewLine(kernel.NewID(), "Cable", price, qty)
	require.NoError(t, err)
	o, err = o.AddLine(line, t0)
	require.NoError(t, err)
	if status == order.StatusDraft {
		return o
	}
	o, err = o.Place(t0)
	require.NoError(t, err)
	if status == order.StatusPlaced {
		return o
	}
	o, err = o.MarkPaid(t0)
	require.NoError(t, err)
	return o
}
