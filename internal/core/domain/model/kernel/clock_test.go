package kernel_test

import (
	"testing"
	"time"

	"fulfillment/internal/core/domain/model/kernel"

	"github.com/stretchr/testify/assert"
)

func TestSystemClock_Now(t *testing.T) {
	now := kernel.SystemClock{}.Now()

	assert.Equal(t, time.UTC, now.Location())
	assert.Equal(t, now, now.Truncate(kernel.ClockPrecision))
	assert.WithinDuration(t, time.Now(), now, time.Second)
}

func TestFixedClock(t *testing.T) {
	start := time.Date(2026, 1, 2, 3, 4, 5, 6789, time.UTC)
	clock := kernel.NewFixedClock(start)

	assert.Equal(t, start.Truncate(time.Microsecond), clock.Now())

	clock.Advance(time.Hour)
	assert.Equal(t, start.Truncate(time.Microsecond).Add(time.Hour), clock.Now())
}
