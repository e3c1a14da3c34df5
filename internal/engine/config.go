package engine

import (
	"encoding/json"
	"os"
	"strconv"

	"github.com/pkg/errors"
)

// Config controls the universe dimensions and the animation schedule.
type Config struct {
	Width  int `json:"width"`
	Height int `json:"height"`

	// LifecycleTicks is the number of animation ticks a generation lasts: the
	// time a birth bounce or death shrink takes to play out before the next
	// rule application fires.
	LifecycleTicks int `json:"lifecycle_ticks"`

	Seed int64 `json:"seed"`

	// Probability is the alive chance used when randomizing the universe.
	Probability float64 `json:"probability"`

	// Speed is the initial tick rate multiplier.
	Speed float64 `json:"speed"`

	StartPaused bool `json:"start_paused"`
}

// DefaultConfig returns the standard configuration.
func DefaultConfig() Config {
	return Config{
		Width:          60,
		Height:         60,
		LifecycleTicks: 24,
		Seed:           42,
		Probability:    0.5,
		Speed:          1,
	}
}

// FromMap populates the config from a string map (flag-style key/value pairs).
func FromMap(cfg map[string]string) Config {
	c := DefaultConfig()
	if cfg == nil {
		return c
	}
	if v, ok := cfg["w"]; ok {
		if parsed, err := strconv.Atoi(v); err == nil && parsed > 0 {
			c.Width = parsed
		}
	}
	if v, ok := cfg["h"]; ok {
		if parsed, err := strconv.Atoi(v); err == nil && parsed > 0 {
			c.Height = parsed
		}
	}
	if v, ok := cfg["lifecycle"]; ok {
		if parsed, err := strconv.Atoi(v); err == nil && parsed > 0 {
			c.LifecycleTicks = parsed
		}
	}
	if v, ok := cfg["seed"]; ok {
		if parsed, err := strconv.ParseInt(v, 10, 64); err == nil {
			c.Seed = parsed
		}
	}
	if v, ok := cfg["probability"]; ok {
		if parsed, err := strconv.ParseFloat(v, 64); err == nil && parsed >= 0 && parsed <= 1 {
			c.Probability = parsed
		}
	}
	if v, ok := cfg["speed"]; ok {
		if parsed, err := strconv.ParseFloat(v, 64); err == nil && parsed > 0 {
			c.Speed = parsed
		}
	}
	if v, ok := cfg["paused"]; ok {
		if parsed, err := strconv.ParseBool(v); err == nil {
			c.StartPaused = parsed
		}
	}
	return c
}

// LoadConfig reads a JSON configuration file over the defaults.
func LoadConfig(path string) (Config, error) {
	c := DefaultConfig()

	data, err := os.ReadFile(path)
	if err != nil {
		return c, errors.Wrapf(err, "[LoadConfig] failed to read file: %+v", path)
	}

	if err = json.Unmarshal(data, &c); err != nil {
		return c, errors.Wrapf(err, "[LoadConfig] failed to unmarshal data from file: %+v", path)
	}

	return c, nil
}
