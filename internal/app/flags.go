package app

import (
	"flag"

	"life3d/internal/engine"
)

// Config represents the command-line parameters for the application.
type Config struct {
	Width       int
	Height      int
	Lifecycle   int
	Scale       int
	TPS         int
	Seed        int64
	Probability float64
	Speed       float64
	Paused      bool
	File        string
}

// NewConfig returns a Config populated with sensible defaults.
func NewConfig() *Config {
	ec := engine.DefaultConfig()
	return &Config{
		Width:       ec.Width,
		Height:      ec.Height,
		Lifecycle:   ec.LifecycleTicks,
		Scale:       10,
		TPS:         60,
		Seed:        ec.Seed,
		Probability: ec.Probability,
		Speed:       ec.Speed,
	}
}

// Bind attaches the configuration to the provided FlagSet.
func (c *Config) Bind(fs *flag.FlagSet) {
	fs.IntVar(&c.Width, "width", c.Width, "universe width in cells")
	fs.IntVar(&c.Height, "height", c.Height, "universe height in cells")
	fs.IntVar(&c.Lifecycle, "lifecycle", c.Lifecycle, "animation ticks per generation")
	fs.IntVar(&c.Scale, "scale", c.Scale, "pixel scale multiplier")
	fs.IntVar(&c.TPS, "tps", c.TPS, "ticks per second")
	fs.Int64Var(&c.Seed, "seed", c.Seed, "seed for the initial universe")
	fs.Float64Var(&c.Probability, "probability", c.Probability, "alive chance when randomizing")
	fs.Float64Var(&c.Speed, "speed", c.Speed, "initial speed multiplier")
	fs.BoolVar(&c.Paused, "paused", c.Paused, "start paused")
	fs.StringVar(&c.File, "config", c.File, "JSON configuration file (overrides other flags)")
}

// EngineConfig resolves the engine configuration: the JSON file when one is
// given, flag values otherwise.
func (c *Config) EngineConfig() (engine.Config, error) {
	if c.File != "" {
		return engine.LoadConfig(c.File)
	}
	ec := engine.DefaultConfig()
	ec.Width = c.Width
	ec.Height = c.Height
	ec.LifecycleTicks = c.Lifecycle
	ec.Seed = c.Seed
	ec.Probability = c.Probability
	ec.Speed = c.Speed
	ec.StartPaused = c.Paused
	return ec, nil
}
