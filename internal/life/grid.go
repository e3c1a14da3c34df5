package life

import (
	"errors"

	"life3d/internal/core"
)

// ErrOutOfBounds reports a cell coordinate outside the grid extent.
var ErrOutOfBounds = errors.New("life: cell out of bounds")

// Point identifies a single cell by its grid coordinates.
type Point struct {
	X, Y int
}

// Grid stores a 2D field of cell states in row-major order, 1 for alive and 0
// for dead. The grid is bounded: coordinates outside the extent count as dead
// when computing neighborhoods, with no toroidal wrapping.
type Grid struct {
	W, H  int
	cells []uint8
}

// NewGrid allocates an all-dead grid with the given dimensions.
func NewGrid(w, h int) *Grid {
	if w <= 0 {
		w = 1
	}
	if h <= 0 {
		h = 1
	}
	return &Grid{W: w, H: h, cells: make([]uint8, w*h)}
}

// Size returns the grid dimensions.
func (g *Grid) Size() core.Size { return core.Size{W: g.W, H: g.H} }

// Cells exposes the backing slice so callers can read values directly.
func (g *Grid) Cells() []uint8 { return g.cells }

// Index returns the linear slice index for coordinates (x, y).
func (g *Grid) Index(x, y int) int { return y*g.W + x }

// At recovers the coordinates of the cell at linear index i.
func (g *Grid) At(i int) Point { return Point{X: i % g.W, Y: i / g.W} }

// Contains reports whether (x, y) lies inside the grid extent.
func (g *Grid) Contains(x, y int) bool {
	return x >= 0 && x < g.W && y >= 0 && y < g.H
}

// Alive reports the state of the cell at (x, y). Out-of-range coordinates are
// dead.
func (g *Grid) Alive(x, y int) bool {
	if !g.Contains(x, y) {
		return false
	}
	return g.cells[g.Index(x, y)] == 1
}

// Set writes the state of a single cell.
func (g *Grid) Set(x, y int, alive bool) error {
	if !g.Contains(x, y) {
		return ErrOutOfBounds
	}
	g.cells[g.Index(x, y)] = 0
	if alive {
		g.cells[g.Index(x, y)] = 1
	}
	return nil
}

// Toggle flips the state of a single cell.
func (g *Grid) Toggle(x, y int) error {
	if !g.Contains(x, y) {
		return ErrOutOfBounds
	}
	g.cells[g.Index(x, y)] ^= 1
	return nil
}

// Clear kills every cell.
func (g *Grid) Clear() {
	for i := range g.cells {
		g.cells[i] = 0
	}
}

// Randomize sets each cell alive independently with probability p. The result
// is deterministic for a given RNG seed.
func (g *Grid) Randomize(rng *core.RNG, p float64) {
	rng.FillChance(g.cells, p)
}

// NeighborCount counts alive cells among the Moore neighbors of (x, y). The
// window is clamped to the grid bounds, so edge and corner cells see reduced
// neighborhoods.
func (g *Grid) NeighborCount(x, y int) int {
	x0, x1 := x-1, x+1
	y0, y1 := y-1, y+1
	if x0 < 0 {
		x0 = 0
	}
	if y0 < 0 {
		y0 = 0
	}
	if x1 >= g.W {
		x1 = g.W - 1
	}
	if y1 >= g.H {
		y1 = g.H - 1
	}
	count := 0
	for ny := y0; ny <= y1; ny++ {
		for nx := x0; nx <= x1; nx++ {
			if nx == x && ny == y {
				continue
			}
			count += int(g.cells[ny*g.W+nx])
		}
	}
	return count
}

// Population returns the number of alive cells.
func (g *Grid) Population() int {
	n := 0
	for _, c := range g.cells {
		n += int(c)
	}
	return n
}
