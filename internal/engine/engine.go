package engine

import (
	"errors"

	"life3d/internal/core"
	"life3d/internal/life"
)

// ErrInvalidSpeed reports a rejected non-positive speed factor.
var ErrInvalidSpeed = errors.New("engine: speed factor must be positive")

// RunState describes whether the generation schedule is advancing.
type RunState int

const (
	Running RunState = iota
	Paused
)

// CellAttr is the per-cell view handed to the renderer each frame. Phase is
// the normalized progress of the cell's current birth or death animation; how
// it eases into a transform or color is the renderer's business.
type CellAttr struct {
	Alive bool
	Phase float64
}

// Phase maps ticks elapsed since a cell's last transition into normalized
// animation progress, saturating at 1 once the cycle length is reached.
func Phase(tick, cycle float64) float64 {
	if cycle <= 0 || tick >= cycle {
		return 1
	}
	if tick <= 0 {
		return 0
	}
	return tick / cycle
}

// Engine couples the discrete Game of Life update with a continuous animation
// clock. It owns the universe grid and one tick accumulator per cell, advances
// them every frame, and fires a rule application each time the global clock
// completes a lifecycle. The engine is single-owner: one Update call per
// rendered frame, no concurrent access.
type Engine struct {
	cfg   Config
	grid  *life.Grid
	ticks []float64
	clock *core.Clock
	state RunState
	gen   int
	queue []Command
}

// New constructs an Engine and randomizes its universe from the configured
// seed. Every cell starts at tick zero so the whole board animates in.
func New(cfg Config) *Engine {
	if cfg.Width <= 0 || cfg.Height <= 0 {
		d := DefaultConfig()
		cfg.Width, cfg.Height = d.Width, d.Height
	}
	if cfg.LifecycleTicks <= 0 {
		cfg.LifecycleTicks = DefaultConfig().LifecycleTicks
	}
	e := &Engine{
		cfg:   cfg,
		grid:  life.NewGrid(cfg.Width, cfg.Height),
		ticks: make([]float64, cfg.Width*cfg.Height),
		clock: core.NewClock(cfg.LifecycleTicks),
	}
	e.clock.SetSpeed(cfg.Speed)
	e.grid.Randomize(core.NewRNG(cfg.Seed), cfg.Probability)
	if cfg.StartPaused {
		e.state = Paused
	}
	return e
}

// Size returns the universe dimensions.
func (e *Engine) Size() core.Size { return e.grid.Size() }

// Cells exposes the current cell states, row-major, 1 for alive.
func (e *Engine) Cells() []uint8 { return e.grid.Cells() }

// Generation returns the number of rule applications so far.
func (e *Engine) Generation() int { return e.gen }

// Population returns the number of alive cells.
func (e *Engine) Population() int { return e.grid.Population() }

// Running reports whether the schedule is advancing.
func (e *Engine) Running() bool { return e.state == Running }

// Speed returns the current tick rate multiplier.
func (e *Engine) Speed() float64 { return e.clock.Speed() }

// LifecycleTicks returns the configured ticks per generation cycle.
func (e *Engine) LifecycleTicks() int { return e.cfg.LifecycleTicks }

// Enqueue schedules a command for the next Update. Must be called from the
// frame loop goroutine.
func (e *Engine) Enqueue(cmd Command) {
	e.queue = append(e.queue, cmd)
}

// Update applies queued commands in arrival order and then advances the
// animation by dt frame ticks. It returns the errors of rejected commands;
// a rejected command leaves all state untouched. When paused, commands still
// apply but no tick advances.
func (e *Engine) Update(dt float64) []error {
	var rejected []error
	for _, cmd := range e.queue {
		if err := e.apply(cmd); err != nil {
			rejected = append(rejected, err)
		}
	}
	e.queue = e.queue[:0]

	if e.state == Paused {
		return rejected
	}

	d := e.clock.Advance(dt)
	for i := range e.ticks {
		e.ticks[i] += d
	}

	if e.clock.Cycled() {
		next, diff := life.Step(e.grid)
		e.grid = next
		for _, p := range diff {
			e.ticks[e.grid.Index(p.X, p.Y)] = 0
		}
		e.gen++
	}
	return rejected
}

// Snapshot fills dst with the per-cell render attributes for this frame,
// growing it if needed, and returns it. The slice is row-major and aligned
// with the grid.
func (e *Engine) Snapshot(dst []CellAttr) []CellAttr {
	n := len(e.ticks)
	if cap(dst) < n {
		dst = make([]CellAttr, n)
	}
	dst = dst[:n]
	cells := e.grid.Cells()
	cycle := float64(e.cfg.LifecycleTicks)
	for i := range dst {
		dst[i] = CellAttr{Alive: cells[i] == 1, Phase: Phase(e.ticks[i], cycle)}
	}
	return dst
}

func (e *Engine) apply(cmd Command) error {
	switch cmd.Op {
	case OpPause:
		e.state = Paused
	case OpResume:
		e.state = Running
	case OpRandomize:
		e.grid.Randomize(core.NewRNG(cmd.Seed), cmd.P)
		e.restart()
	case OpClear:
		e.grid.Clear()
		e.restart()
	case OpToggle:
		if err := e.grid.Toggle(cmd.X, cmd.Y); err != nil {
			return err
		}
		e.ticks[e.grid.Index(cmd.X, cmd.Y)] = 0
	case OpSet:
		if err := e.grid.Set(cmd.X, cmd.Y, cmd.Alive); err != nil {
			return err
		}
		e.ticks[e.grid.Index(cmd.X, cmd.Y)] = 0
	case OpSetSpeed:
		if !e.clock.SetSpeed(cmd.Speed) {
			return ErrInvalidSpeed
		}
	}
	return nil
}

// restart zeroes every cell tick and the global clock after a wholesale grid
// replacement. The rule engine is not invoked.
func (e *Engine) restart() {
	for i := range e.ticks {
		e.ticks[i] = 0
	}
	e.clock.Reset()
}
