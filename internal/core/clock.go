package core

import "math"

// Clock accumulates simulation ticks toward a fixed cycle length, applying a
// tunable speed multiplier to each frame delta.
type Clock struct {
	cycle float64
	speed float64
	ticks float64
}

// NewClock constructs a Clock whose cycle completes after the given number of
// ticks at speed 1.
func NewClock(cycle int) *Clock {
	if cycle <= 0 {
		cycle = 1
	}
	return &Clock{cycle: float64(cycle), speed: 1}
}

// SetSpeed changes the tick rate multiplier. It reports whether the factor was
// accepted; non-positive or non-finite factors leave the previous speed intact.
func (c *Clock) SetSpeed(f float64) bool {
	if f <= 0 || math.IsNaN(f) || math.IsInf(f, 0) {
		return false
	}
	c.speed = f
	return true
}

// Speed returns the current tick rate multiplier.
func (c *Clock) Speed() float64 { return c.speed }

// Advance scales the frame delta by the current speed, accumulates it, and
// returns the scaled tick amount.
func (c *Clock) Advance(dt float64) float64 {
	d := dt * c.speed
	c.ticks += d
	return d
}

// Cycled reports whether a full cycle has elapsed and, if so, restarts the
// accumulator from zero.
func (c *Clock) Cycled() bool {
	if c.ticks >= c.cycle {
		c.ticks = 0
		return true
	}
	return false
}

// Reset restarts the accumulator without touching the speed.
func (c *Clock) Reset() { c.ticks = 0 }

// Ticks returns the ticks accumulated since the last cycle.
func (c *Clock) Ticks() float64 { return c.ticks }
