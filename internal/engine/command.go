package engine

// Op enumerates the control and edit requests the engine accepts.
type Op int

const (
	OpPause Op = iota
	OpResume
	OpRandomize
	OpClear
	OpToggle
	OpSet
	OpSetSpeed
)

// Command is a single control or edit request. Commands are queued by the
// input layer and applied in arrival order at the next frame boundary.
type Command struct {
	Op    Op
	X, Y  int
	Alive bool
	Seed  int64
	P     float64
	Speed float64
}

// Pause freezes the animation and the generation schedule.
func Pause() Command { return Command{Op: OpPause} }

// Resume restarts a paused engine.
func Resume() Command { return Command{Op: OpResume} }

// Randomize replaces the universe with a fresh random one drawn from seed,
// each cell alive with probability p.
func Randomize(seed int64, p float64) Command {
	return Command{Op: OpRandomize, Seed: seed, P: p}
}

// Clear kills every cell and restarts the animation cycle.
func Clear() Command { return Command{Op: OpClear} }

// Toggle flips the cell at (x, y).
func Toggle(x, y int) Command { return Command{Op: OpToggle, X: x, Y: y} }

// SetCell writes the cell at (x, y) directly.
func SetCell(x, y int, alive bool) Command {
	return Command{Op: OpSet, X: x, Y: y, Alive: alive}
}

// SetSpeed changes the tick rate multiplier.
func SetSpeed(f float64) Command { return Command{Op: OpSetSpeed, Speed: f} }
