package core

import "testing"

func TestClockCycle(t *testing.T) {
	c := NewClock(10)
	for i := 0; i < 9; i++ {
		c.Advance(1)
		if c.Cycled() {
			t.Fatalf("cycle fired after %d ticks", i+1)
		}
	}
	c.Advance(1)
	if !c.Cycled() {
		t.Fatal("cycle must fire after 10 ticks")
	}
	if c.Ticks() != 0 {
		t.Fatalf("accumulator = %v after cycle, want 0", c.Ticks())
	}
}

func TestClockSpeed(t *testing.T) {
	c := NewClock(10)
	if !c.SetSpeed(2.5) {
		t.Fatal("SetSpeed(2.5) must be accepted")
	}
	if d := c.Advance(2); d != 5 {
		t.Fatalf("Advance(2) at 2.5x = %v, want 5", d)
	}

	for _, f := range []float64{0, -1} {
		if c.SetSpeed(f) {
			t.Fatalf("SetSpeed(%v) must be rejected", f)
		}
	}
	if c.Speed() != 2.5 {
		t.Fatalf("rejected factor must retain prior speed, got %v", c.Speed())
	}
}

func TestClockReset(t *testing.T) {
	c := NewClock(10)
	c.Advance(7)
	c.Reset()
	if c.Ticks() != 0 {
		t.Fatalf("Reset left %v ticks", c.Ticks())
	}
	c.Advance(9)
	if c.Cycled() {
		t.Fatal("cycle must not fire before a full period after Reset")
	}
}
