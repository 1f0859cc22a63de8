package envs

import (
	"errors"
	"testing"

	"github.com/mohamedayman15069/Agar/internal/config"
	"github.com/mohamedayman15069/Agar/internal/env"
	"github.com/mohamedayman15069/Agar/internal/registry"
)

func TestAllVariantsRegistered(t *testing.T) {
	for _, id := range []string{GridID, RamID, ScreenID, FullID} {
		if !registry.Exists(id) {
			t.Errorf("environment %q not registered", id)
		}
	}
}

func TestMakeGrid(t *testing.T) {
	ec := config.DefaultEnvConfig()
	ec.Difficulty = string(config.DifficultyTrivial)
	ec.Seed = 1

	e, err := registry.Make(GridID, ec)
	if err != nil {
		t.Fatalf("Make(%s) failed: %v", GridID, err)
	}
	if e.ObsType() != env.ObsTypeGrid {
		t.Errorf("ObsType = %s, want grid", e.ObsType())
	}

	obs := e.Reset()
	if _, ok := obs.(*env.IntTensor); !ok {
		t.Errorf("observation is %T, want *env.IntTensor", obs)
	}
}

func TestMakeScreenUnavailable(t *testing.T) {
	ec := config.DefaultEnvConfig()
	ec.Difficulty = string(config.DifficultyTrivial)
	ec.Seed = 1

	if _, err := registry.Make(ScreenID, ec); !errors.Is(err, env.ErrUnavailable) {
		t.Errorf("Make(%s) error = %v, want ErrUnavailable", ScreenID, err)
	}
}
