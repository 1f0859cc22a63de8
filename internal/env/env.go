// Package env implements the environment adapter layer: it exposes the
// arena simulation through the episodic reset/step/render interface used
// by training loops, with declared action and observation spaces.
//
// Every operation is a blocking, synchronous call. One engine instance
// is owned per Env and the caller serializes all interaction.
package env

import (
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/mohamedayman15069/Agar/internal/config"
	"github.com/mohamedayman15069/Agar/internal/engine"
)

// Action is the agent's input for one step: a target point in
// [0, arena_size] per coordinate plus a discrete directive.
// Consumed once; never persisted.
type Action struct {
	X, Y      float64
	Directive engine.Directive
}

// Info carries per-step diagnostics returned alongside the observation.
type Info struct {
	StepCount int
	EpisodeID string
}

// lifecycle state of the episode controller
type state int

const (
	stateUninitialized state = iota // before the first Reset
	stateReady                      // episode in progress
	stateDone                       // engine reported episode end
)

// Env is the episode controller. It owns exactly one engine instance,
// the bound observation space descriptor and the episode state machine.
type Env struct {
	obsType ObsType
	cfg     config.Config
	v       variant

	actionSpace TupleSpace

	state     state
	stepCount int
	episodeID uuid.UUID
}

// New constructs an environment with the given observation type and
// configuration. The difficulty preset is resolved with overrides, the
// matching engine variant is instantiated and the observation space is
// fixed for the lifetime of the instance.
func New(obsType ObsType, ec config.EnvConfig) (*Env, error) {
	cfg, err := config.Resolve(config.Difficulty(ec.Difficulty), ec.Overrides)
	if err != nil {
		return nil, err
	}

	seed := ec.Seed
	if seed == 0 {
		seed = time.Now().UnixNano()
	}

	v, err := build(obsType, cfg, ec, seed)
	if err != nil {
		return nil, fmt.Errorf("building %s environment: %w", obsType, err)
	}

	return &Env{
		obsType: obsType,
		cfg:     cfg,
		v:       v,
		actionSpace: TupleSpace{Spaces: []Space{
			NewBox(0, cfg.ArenaSize, []int{2}, DtypeFloat64),
			Discrete{N: 3},
		}},
	}, nil
}

// ObsType returns the encoding selected at construction.
func (e *Env) ObsType() ObsType { return e.obsType }

// Config returns the resolved simulation parameters.
func (e *Env) Config() config.Config { return e.cfg }

// ActionSpace describes valid actions: a continuous 2D target bounded by
// the arena size and a 3-way discrete directive.
func (e *Env) ActionSpace() TupleSpace { return e.actionSpace }

// ObservationSpace describes the shape, dtype and bounds of observations
// for the chosen encoding.
func (e *Env) ObservationSpace() Space { return e.v.space }

// StepCount returns the number of successful steps since the last Reset.
func (e *Env) StepCount() int { return e.stepCount }

// EpisodeID returns the identifier of the current episode, or empty
// before the first Reset.
func (e *Env) EpisodeID() string {
	if e.state == stateUninitialized {
		return ""
	}
	return e.episodeID.String()
}

// Reset starts a new episode. Valid from any state: it zeroes the step
// counter, resets the engine, discards any prior snapshot and returns
// the freshly translated observation.
func (e *Env) Reset() any {
	e.stepCount = 0
	e.episodeID = uuid.New()
	e.v.handle.Reset()
	e.state = stateReady
	return e.v.observe()
}

// Step decodes the action, forwards it to the engine, advances the
// simulation by ticks_per_step ticks and returns the translated
// observation, the scalar reward, the termination flag and diagnostics.
//
// Calling Step before the first Reset fails with ErrNotReset. When the
// episode terminates the returned observation is nil and a subsequent
// Reset is required to continue.
func (e *Env) Step(a Action) (any, float64, bool, Info, error) {
	if e.state == stateUninitialized {
		return nil, 0, false, Info{}, ErrNotReset
	}

	e.v.handle.TakeAction(a.X, a.Y, a.Directive)
	reward := e.v.handle.Step()
	done := e.v.handle.Done()

	e.stepCount++
	info := Info{StepCount: e.stepCount, EpisodeID: e.episodeID.String()}

	if done {
		e.state = stateDone
		return nil, reward, true, info, nil
	}
	return e.v.observe(), reward, false, info, nil
}

// Render passes through to the engine's own rendering. Only the "human"
// mode is contractually supported; other modes are engine-defined.
func (e *Env) Render(mode string) {
	e.v.handle.Render()
}
