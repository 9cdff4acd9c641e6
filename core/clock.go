package core

import "time"

// Clock reports elapsed seconds since construction. It never resets or
// pauses; time-based shader uniforms read it once per frame.
type Clock struct {
	start time.Time
	now   func() time.Time
}

func NewClock() *Clock {
	return &Clock{start: time.Now(), now: time.Now}
}

// NewClockAt creates a clock with an injected time source, for tests.
func NewClockAt(now func() time.Time) *Clock {
	return &Clock{start: now(), now: now}
}

// Elapsed returns seconds since the clock was created.
func (c *Clock) Elapsed() float32 {
	return float32(c.now().Sub(c.start).Seconds())
}
