package kernel_test

import (
	"testing"

	"fulfillment/internal/core/domain/model/kernel"
	"fulfillment/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewTrackingNumber(t *testing.T) {
	t.Run("should accept carrier format", func(t *testing.T) {
		tn, err := kernel.NewTrackingNumber(" RR123456785US ")

		require.NoError(t, err)
		assert.Equal(t, "RR123456785US", tn.String())
	})

	t.Run("should reject empty input as required", func(t *testing.T) {
		_, err := kernel.NewTrackingNumber("  ")
		require.ErrorIs(t, err, errs.ErrValueIsRequired)
	})

	t.Run("should reject other formats", func(t *testing.T) {
		for _, s := range []string{"RR12345678US", "rr123456785us", "1234567890123", "RR123456785USA"} {
			_, err := kernel.NewTrackingNumber(s)
			require.ErrorIs(t, err, errs.ErrValueIsInvalid, s)
		}
	})
}

func TestGenerateTrackingNumber(t *testing.T) {
	seen := make(map[string]struct{})
	for range 100 {
		tn := kernel.GenerateTrackingNumber()

		require.NoError(t, tn.Validate())
		parsed, err := kernel.NewTrackingNumber(tn.String())
		require.NoError(t, err)
		assert.Equal(t, tn, parsed)
		seen[tn.String()] = struct{}{}
	}

	assert.Greater(t, len(seen), 90)
}

func TestTrackingNumber_ZeroValue(t *testing.T) {
	var tn kernel.TrackingNumber
	assert.Equal(t, kernel.ErrTrackingNumberIsNotConstructed, tn.Validate())
}
