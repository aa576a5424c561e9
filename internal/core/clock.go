package core

import "time"

// Clock supplies the elapsed time since the previous tick, in seconds.
type Clock interface {
	Delta() float64
}

// WallClock measures real elapsed time between calls to Delta.
// The first call reports one nominal frame at the given tick rate.
type WallClock struct {
	now      func() time.Time
	last     time.Time
	nominal  float64
	maxDelta float64
}

// NewWallClock creates a clock for the given tick rate. Deltas larger than
// MaxFrameDelta are capped.
func NewWallClock(tickRate int) *WallClock {
	if tickRate <= 0 {
		tickRate = 60
	}
	return &WallClock{
		now:      time.Now,
		nominal:  1.0 / float64(tickRate),
		maxDelta: MaxFrameDelta,
	}
}

// Delta returns seconds since the previous call.
func (c *WallClock) Delta() float64 {
	t := c.now()
	if c.last.IsZero() {
		c.last = t
		return c.nominal
	}
	dt := t.Sub(c.last).Seconds()
	c.last = t
	return ClampF(dt, 0, c.maxDelta)
}

// FixedClock returns the same delta on every tick. Used for headless runs.
type FixedClock float64

// Delta implements Clock.
func (c FixedClock) Delta() float64 {
	return float64(c)
}
