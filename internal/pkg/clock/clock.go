package clock

import "time"

// Clock abstracts time access so resolution logic stays deterministic in tests.
type Clock interface {
	Now() time.Time
}

// SystemClock reads the system time.
type SystemClock struct{}

// NewSystemClock creates a Clock backed by time.Now.
func NewSystemClock() Clock {
	return &SystemClock{}
}

func (c *SystemClock) Now() time.Time {
	return time.Now()
}

// FixedClock is a test clock pinned to an explicit instant.
type FixedClock struct {
	current time.Time
}

// NewFixedClock creates a FixedClock starting at t.
func NewFixedClock(t time.Time) *FixedClock {
	return &FixedClock{current: t}
}

func (f *FixedClock) Now() time.Time {
	return f.current
}

// Set pins the clock to t.
func (f *FixedClock) Set(t time.Time) {
	f.current = t
}

// Advance moves the clock forward by d.
func (f *FixedClock) Advance(d time.Duration) {
	f.current = f.current.Add(d)
}
