package config

import "fmt"

// Difficulty names a base parameter set for the arena.
type Difficulty string

const (
	DifficultyNormal  Difficulty = "normal"  // Full arena with bots and viruses
	DifficultyEmpty   Difficulty = "empty"   // Same as normal but no enemies
	DifficultyTrivial Difficulty = "trivial" // Tiny arena, plenty of food, nothing hostile
)

// presets maps each difficulty to its base parameter set.
var presets = map[Difficulty]Config{
	DifficultyNormal: {
		TicksPerStep: 4,
		ArenaSize:    1000,
		NumPellets:   1000,
		NumViruses:   25,
		NumBots:      25,
		PelletRegen:  true,
	},
	DifficultyEmpty: {
		TicksPerStep: 4,
		ArenaSize:    1000,
		NumPellets:   1000,
		NumViruses:   25,
		NumBots:      0,
		PelletRegen:  true,
	},
	DifficultyTrivial: {
		TicksPerStep: 4,
		ArenaSize:    50,
		NumPellets:   200,
		NumViruses:   0,
		NumBots:      0,
		PelletRegen:  true,
	},
}

// Resolve turns a difficulty name plus explicit overrides into a concrete
// Config. Each set override field replaces the preset value unconditionally.
// Pure function of its inputs; no side effects.
func Resolve(difficulty Difficulty, ov Overrides) (Config, error) {
	base, ok := presets[difficulty]
	if !ok {
		return Config{}, fmt.Errorf("%w: unknown difficulty %q", ErrInvalidArgument, difficulty)
	}

	cfg := base
	if ov.TicksPerStep != nil {
		cfg.TicksPerStep = *ov.TicksPerStep
	}
	if ov.ArenaSize != nil {
		cfg.ArenaSize = *ov.ArenaSize
	}
	if ov.NumPellets != nil {
		cfg.NumPellets = *ov.NumPellets
	}
	if ov.NumViruses != nil {
		cfg.NumViruses = *ov.NumViruses
	}
	if ov.NumBots != nil {
		cfg.NumBots = *ov.NumBots
	}
	if ov.PelletRegen != nil {
		cfg.PelletRegen = *ov.PelletRegen
	}

	if cfg.TicksPerStep <= 0 {
		return Config{}, fmt.Errorf("%w: ticks_per_step must be a positive integer, got %d",
			ErrInvalidArgument, cfg.TicksPerStep)
	}

	return cfg, nil
}
