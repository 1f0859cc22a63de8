package main

import (
	"math/rand"
	"testing"

	"github.com/mohamedayman15069/Agar/internal/config"
	"github.com/mohamedayman15069/Agar/internal/envs"
	"github.com/mohamedayman15069/Agar/internal/registry"
)

func TestRunEpisode(t *testing.T) {
	ec := config.DefaultEnvConfig()
	ec.Difficulty = string(config.DifficultyTrivial)
	ec.Seed = 1

	e, err := registry.Make(envs.GridID, ec)
	if err != nil {
		t.Fatalf("Make failed: %v", err)
	}

	rng := rand.New(rand.NewSource(1))
	_, steps, terminated, err := runEpisode(e, rng, 20)
	if err != nil {
		t.Fatalf("runEpisode failed: %v", err)
	}

	// A trivial arena has nothing that can eliminate the agent, so the
	// episode runs to the step limit.
	if steps != 20 {
		t.Errorf("steps = %d, want 20", steps)
	}
	if terminated {
		t.Error("terminated = true, want truncation at the step limit")
	}
}

func TestRunEpisodeReproducible(t *testing.T) {
	run := func() (float64, int) {
		ec := config.DefaultEnvConfig()
		ec.Difficulty = string(config.DifficultyTrivial)
		ec.Seed = 7

		e, err := registry.Make(envs.RamID, ec)
		if err != nil {
			t.Fatalf("Make failed: %v", err)
		}
		total, steps, _, err := runEpisode(e, rand.New(rand.NewSource(7)), 15)
		if err != nil {
			t.Fatalf("runEpisode failed: %v", err)
		}
		return total, steps
	}

	t1, s1 := run()
	t2, s2 := run()
	if t1 != t2 || s1 != s2 {
		t.Errorf("episodes diverged: (%v, %d) vs (%v, %d)", t1, s1, t2, s2)
	}
}
