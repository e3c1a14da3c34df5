package life

import (
	"runtime"

	"golang.org/x/sync/errgroup"
)

// nextState returns the fate of a cell under the B3/S23 rule: alive cells
// survive with 2 or 3 neighbors, dead cells are born with exactly 3.
func nextState(alive bool, neighbors int) bool {
	return (alive && neighbors == 2) || neighbors == 3
}

// Step applies one Game of Life generation to g and returns the next grid
// together with the cells whose state changed, in row-major order. The input
// grid is never modified, so the same input always produces the same output.
func Step(g *Grid) (*Grid, []Point) {
	next := NewGrid(g.W, g.H)

	workers := runtime.NumCPU()
	if workers > g.H {
		workers = g.H
	}
	if workers < 1 {
		workers = 1
	}
	rows := (g.H + workers - 1) / workers

	// Each worker owns a horizontal band and records its own changes so the
	// concatenated diff stays in row-major order.
	diffs := make([][]Point, workers)
	var eg errgroup.Group
	for i := 0; i < workers; i++ {
		band := i
		y0 := band * rows
		y1 := min(y0+rows, g.H)
		if y0 >= g.H {
			break
		}
		eg.Go(func() error {
			var changed []Point
			for y := y0; y < y1; y++ {
				for x := 0; x < g.W; x++ {
					idx := y*g.W + x
					alive := g.cells[idx] == 1
					if nextState(alive, g.NeighborCount(x, y)) {
						next.cells[idx] = 1
					}
					if (next.cells[idx] == 1) != alive {
						changed = append(changed, Point{X: x, Y: y})
					}
				}
			}
			diffs[band] = changed
			return nil
		})
	}
	// Workers never return errors.
	_ = eg.Wait()

	var diff []Point
	for _, d := range diffs {
		diff = append(diff, d...)
	}
	return next, diff
}
