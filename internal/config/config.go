// Package config provides difficulty presets, override resolution and
// YAML-based configuration loading for the arena environment.
package config

import "errors"

// ErrInvalidArgument reports an unsupported difficulty, observation type
// or parameter value. Raised synchronously at construction and never
// recovered from locally.
var ErrInvalidArgument = errors.New("invalid argument")

// Config holds the resolved simulation parameters passed to the engine.
// Created once at environment construction and never mutated afterward.
type Config struct {
	TicksPerStep int     // Engine ticks advanced per environment step
	ArenaSize    float64 // World extent; positions live in [0, ArenaSize]
	NumPellets   int
	NumViruses   int
	NumBots      int
	PelletRegen  bool
}

// Overrides carries optional per-field replacements for a difficulty preset.
// A nil field keeps the preset value; a set field always wins, regardless
// of difficulty.
type Overrides struct {
	TicksPerStep *int     `yaml:"ticks_per_step"`
	ArenaSize    *float64 `yaml:"arena_size"`
	NumPellets   *int     `yaml:"num_pellets"`
	NumViruses   *int     `yaml:"num_viruses"`
	NumBots      *int     `yaml:"num_bots"`
	PelletRegen  *bool    `yaml:"pellet_regen"`
}

// GridOptions configures the grid observation encoding.
type GridOptions struct {
	NumFrames      int  `yaml:"num_frames"`      // Stacked history frames
	GridSize       int  `yaml:"grid_size"`       // Resolution per side
	ObserveCells   bool `yaml:"observe_cells"`   // Own cells channel
	ObserveOthers  bool `yaml:"observe_others"`  // Other players channel
	ObserveViruses bool `yaml:"observe_viruses"` // Viruses channel
	ObservePellets bool `yaml:"observe_pellets"` // Pellets channel
}

// DefaultGridOptions returns the grid encoding defaults: two stacked
// frames at 128x128 with every entity channel enabled.
func DefaultGridOptions() GridOptions {
	return GridOptions{
		NumFrames:      2,
		GridSize:       128,
		ObserveCells:   true,
		ObserveOthers:  true,
		ObserveViruses: true,
		ObservePellets: true,
	}
}

// EnvConfig is the full typed construction configuration recognized by
// the environment factory. It enumerates every option explicitly; there
// is no dynamic key-value map and unknown YAML keys are rejected at load.
type EnvConfig struct {
	Difficulty string      `yaml:"difficulty"`
	Overrides  Overrides   `yaml:",inline"`
	Grid       GridOptions `yaml:"grid"`
	ScreenLen  int         `yaml:"screen_len"` // Screen encoding side length
	Seed       int64       `yaml:"seed"`       // 0 picks a time-based seed
}

// DefaultEnvConfig returns an EnvConfig with normal difficulty and
// default encoding parameters.
func DefaultEnvConfig() EnvConfig {
	return EnvConfig{
		Difficulty: string(DifficultyNormal),
		Grid:       DefaultGridOptions(),
		ScreenLen:  256,
	}
}
