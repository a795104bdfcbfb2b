package clock

import (
	"sync"
	"time"
)

// Clock is the single source of "now" for status derivation and audit stamps.
type Clock interface {
	Now() time.Time
}

type RealClock struct{}

func NewRealClock() Clock {
	return RealClock{}
}

// Now is truncated to the microsecond precision Postgres stores, so a value
// read back compares equal to the one written.
func (RealClock) Now() time.Time {
	return time.Now().Truncate(time.Microsecond)
}

// MockClock is a settable clock safe for use from concurrent goroutines.
type MockClock struct {
	mu  sync.RWMutex
	now time.Time
}

func NewMockClock(t time.Time) *MockClock {
	return &MockClock{now: t}
}

func (c *MockClock) Now() time.Time {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.now
}

func (c *MockClock) Set(t time.Time) {
	c.mu.Lock()
	c.now = t
	c.mu.Unlock()
}

func (c *MockClock) Add(d time.Duration) {
	c.mu.Lock()
	c.now = c.now.Add(d)
	c.mu.Unlock()
}

// DayBounds returns local midnight of now in loc and the midnight after it.
// Calendar arithmetic keeps DST days at their real length.
func DayBounds(now time.Time, loc *time.Location) (today, tomorrow time.Time) {
	if loc == nil {
		loc = time.UTC
	}
	local := now.In(loc)
	today = time.Date(local.Year(), local.Month(), local.Day(), 0, 0, 0, 0, loc)
	tomorrow = today.AddDate(0, 0, 1)
	return today, tomorrow
}
