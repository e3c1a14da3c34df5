package life

import (
	"slices"
	"testing"

	"life3d/internal/core"
)

func TestBlinkerOscillation(t *testing.T) {
	g := NewGrid(5, 5)
	set := func(x, y int) {
		if err := g.Set(x, y, true); err != nil {
			t.Fatalf("Set(%d,%d): %v", x, y, err)
		}
	}
	set(2, 1)
	set(2, 2)
	set(2, 3)

	g, _ = Step(g)

	expects := map[[2]int]bool{
		{1, 2}: true,
		{2, 2}: true,
		{3, 2}: true,
	}

	for y := 0; y < 5; y++ {
		for x := 0; x < 5; x++ {
			alive := g.Alive(x, y)
			_, shouldBeAlive := expects[[2]int{x, y}]
			if shouldBeAlive != alive {
				t.Fatalf("cell (%d,%d) alive=%v, expected %v", x, y, alive, shouldBeAlive)
			}
		}
	}

	g, _ = Step(g)

	expects = map[[2]int]bool{
		{2, 1}: true,
		{2, 2}: true,
		{2, 3}: true,
	}

	for y := 0; y < 5; y++ {
		for x := 0; x < 5; x++ {
			alive := g.Alive(x, y)
			_, shouldBeAlive := expects[[2]int{x, y}]
			if shouldBeAlive != alive {
				t.Fatalf("after second step cell (%d,%d) alive=%v, expected %v", x, y, alive, shouldBeAlive)
			}
		}
	}
}

// A horizontal blinker on a 3x3 grid turns vertical: off-grid neighbors are
// dead, so the end cells starve while the cells above and below the center
// are born.
func TestBlinkerAtBoundary(t *testing.T) {
	g := NewGrid(3, 3)
	for x := 0; x < 3; x++ {
		if err := g.Set(x, 1, true); err != nil {
			t.Fatalf("Set(%d,1): %v", x, err)
		}
	}

	next, diff := Step(g)

	expects := map[[2]int]bool{
		{1, 0}: true,
		{1, 1}: true,
		{1, 2}: true,
	}
	for y := 0; y < 3; y++ {
		for x := 0; x < 3; x++ {
			alive := next.Alive(x, y)
			_, shouldBeAlive := expects[[2]int{x, y}]
			if shouldBeAlive != alive {
				t.Fatalf("cell (%d,%d) alive=%v, expected %v", x, y, alive, shouldBeAlive)
			}
		}
	}

	wantDiff := []Point{{1, 0}, {0, 1}, {2, 1}, {1, 2}}
	if !slices.Equal(diff, wantDiff) {
		t.Fatalf("diff = %v, want %v", diff, wantDiff)
	}
}

func TestBlockStillLife(t *testing.T) {
	g := NewGrid(4, 4)
	for _, p := range []Point{{1, 1}, {2, 1}, {1, 2}, {2, 2}} {
		if err := g.Set(p.X, p.Y, true); err != nil {
			t.Fatalf("Set(%d,%d): %v", p.X, p.Y, err)
		}
	}

	next, diff := Step(g)
	if len(diff) != 0 {
		t.Fatalf("a block must not change, diff = %v", diff)
	}
	if !slices.Equal(g.Cells(), next.Cells()) {
		t.Fatal("a block must survive unchanged")
	}
}

func TestLoneCellDies(t *testing.T) {
	g := NewGrid(3, 3)
	if err := g.Set(1, 1, true); err != nil {
		t.Fatalf("Set(1,1): %v", err)
	}

	next, diff := Step(g)
	if next.Population() != 0 {
		t.Fatal("an isolated cell must die of underpopulation")
	}
	if !slices.Equal(diff, []Point{{1, 1}}) {
		t.Fatalf("diff = %v, want [{1 1}]", diff)
	}
}

func TestStepPreservesInput(t *testing.T) {
	g := NewGrid(16, 16)
	g.Randomize(core.NewRNG(42), 0.5)
	snapshot := append([]uint8(nil), g.Cells()...)

	next, diff := Step(g)
	if !slices.Equal(snapshot, g.Cells()) {
		t.Fatal("Step must not modify its input grid")
	}
	if next.W != g.W || next.H != g.H {
		t.Fatalf("next grid is %dx%d, want %dx%d", next.W, next.H, g.W, g.H)
	}
	if len(diff) > g.W*g.H {
		t.Fatalf("diff has %d entries for a %d-cell grid", len(diff), g.W*g.H)
	}
}

func TestStepDeterministic(t *testing.T) {
	g := NewGrid(24, 24)
	g.Randomize(core.NewRNG(7), 0.5)

	next1, diff1 := Step(g)
	next2, diff2 := Step(g)

	if !slices.Equal(next1.Cells(), next2.Cells()) {
		t.Fatal("re-running Step on the same grid must produce identical output")
	}
	if !slices.Equal(diff1, diff2) {
		t.Fatal("re-running Step on the same grid must produce an identical diff")
	}

	// Every diff entry must mark an actual change, and every change must be
	// present in the diff.
	changed := map[Point]bool{}
	for _, p := range diff1 {
		changed[p] = true
		if g.Alive(p.X, p.Y) == next1.Alive(p.X, p.Y) {
			t.Fatalf("diff entry %v did not change", p)
		}
	}
	for y := 0; y < g.H; y++ {
		for x := 0; x < g.W; x++ {
			if g.Alive(x, y) != next1.Alive(x, y) && !changed[Point{x, y}] {
				t.Fatalf("changed cell (%d,%d) missing from diff", x, y)
			}
		}
	}
}
