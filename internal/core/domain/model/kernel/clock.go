package kernel

import (
	"sync"
	"time"
)

// ClockPrecision is the resolution timestamps are truncated to, matching what
// PostgreSQL timestamptz columns can round-trip.
const ClockPrecision = time.Microsecond

// Clock supplies the "now" used by state transitions.
type Clock interface {
	Now() time.Time
}

// SystemClock reads the wall clock in UTC.
type SystemClock struct{}

func (SystemClock) Now() time.Time {
	return time.Now().UTC().Truncate(ClockPrecision)
}

// FixedClock returns a controllable instant. Safe for concurrent use.
type FixedClock struct {
	mu  sync.Mutex
	now time.Time
}

func NewFixedClock(at time.Time) *FixedClock {
	return &FixedClock{now: at.UTC().Truncate(ClockPrecision)}
}

func (c *FixedClock) Now() time.Time {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.now
}

// Advance moves the clock forward by d.
func (c *FixedClock) Advance(d time.Duration) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.now = c.now.Add(d).Truncate(ClockPrecision)
}
