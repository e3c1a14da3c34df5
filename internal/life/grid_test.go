package life

import (
	"errors"
	"slices"
	"testing"

	"life3d/internal/core"
)

func TestRandomizeDeterministic(t *testing.T) {
	a := NewGrid(32, 24)
	b := NewGrid(32, 24)
	a.Randomize(core.NewRNG(99), 0.5)
	b.Randomize(core.NewRNG(99), 0.5)

	if !slices.Equal(a.Cells(), b.Cells()) {
		t.Fatal("same seed and probability must produce identical grids")
	}

	b.Randomize(core.NewRNG(100), 0.5)
	if slices.Equal(a.Cells(), b.Cells()) {
		t.Fatal("different seeds should produce different grids")
	}
}

func TestRandomizeExtremes(t *testing.T) {
	g := NewGrid(16, 16)

	g.Randomize(core.NewRNG(7), 0)
	if g.Population() != 0 {
		t.Fatalf("p=0 must kill every cell, got population %d", g.Population())
	}

	g.Randomize(core.NewRNG(7), 1)
	if g.Population() != 16*16 {
		t.Fatalf("p=1 must fill every cell, got population %d", g.Population())
	}
}

func TestClear(t *testing.T) {
	g := NewGrid(8, 8)
	g.Randomize(core.NewRNG(3), 1)
	g.Clear()

	for y := 0; y < g.H; y++ {
		for x := 0; x < g.W; x++ {
			if n := g.NeighborCount(x, y); n != 0 {
				t.Fatalf("cell (%d,%d) has %d neighbors after Clear", x, y, n)
			}
		}
	}

	_, diff := Step(g)
	if len(diff) != 0 {
		t.Fatalf("stepping an empty grid changed %d cells", len(diff))
	}
}

func TestToggle(t *testing.T) {
	g := NewGrid(4, 4)
	before := g.Alive(1, 2)

	if err := g.Toggle(1, 2); err != nil {
		t.Fatalf("Toggle(1,2): %v", err)
	}
	if g.Alive(1, 2) == before {
		t.Fatal("Toggle did not flip the cell")
	}
	if err := g.Toggle(1, 2); err != nil {
		t.Fatalf("Toggle(1,2): %v", err)
	}
	if g.Alive(1, 2) != before {
		t.Fatal("toggling twice must restore the original state")
	}
}

func TestToggleOutOfBounds(t *testing.T) {
	g := NewGrid(4, 4)
	snapshot := append([]uint8(nil), g.Cells()...)

	for _, p := range []Point{{-1, 0}, {0, -1}, {4, 0}, {0, 4}, {100, 100}} {
		if err := g.Toggle(p.X, p.Y); !errors.Is(err, ErrOutOfBounds) {
			t.Fatalf("Toggle(%d,%d) = %v, want ErrOutOfBounds", p.X, p.Y, err)
		}
		if err := g.Set(p.X, p.Y, true); !errors.Is(err, ErrOutOfBounds) {
			t.Fatalf("Set(%d,%d) = %v, want ErrOutOfBounds", p.X, p.Y, err)
		}
	}
	if !slices.Equal(snapshot, g.Cells()) {
		t.Fatal("rejected edits must not mutate the grid")
	}
}

func TestNeighborCountBounded(t *testing.T) {
	g := NewGrid(3, 3)
	g.Randomize(core.NewRNG(1), 1)

	// Corner and edge cells see clamped neighborhoods; nothing wraps around.
	if n := g.NeighborCount(0, 0); n != 3 {
		t.Fatalf("corner neighbor count = %d, want 3", n)
	}
	if n := g.NeighborCount(1, 0); n != 5 {
		t.Fatalf("edge neighbor count = %d, want 5", n)
	}
	if n := g.NeighborCount(1, 1); n != 8 {
		t.Fatalf("center neighbor count = %d, want 8", n)
	}
}

func TestIndexRoundTrip(t *testing.T) {
	g := NewGrid(7, 5)
	for y := 0; y < g.H; y++ {
		for x := 0; x < g.W; x++ {
			if p := g.At(g.Index(x, y)); p.X != x || p.Y != y {
				t.Fatalf("At(Index(%d,%d)) = %v", x, y, p)
			}
		}
	}
}
