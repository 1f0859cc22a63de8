package tui

import (
	"fmt"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/mohamedayman15069/Agar/internal/config"
	"github.com/mohamedayman15069/Agar/internal/core"
	"github.com/mohamedayman15069/Agar/internal/engine"
	"github.com/mohamedayman15069/Agar/internal/env"
	"github.com/mohamedayman15069/Agar/internal/storage"
)

// Options configures an interactive play session.
type Options struct {
	EnvID    string // Registry identifier recorded with results
	Config   config.EnvConfig
	Store    *storage.Store // Optional; nil disables persistence
	Width    int
	Height   int
	TickRate int // Environment steps per second
}

// Model is the Bubble Tea model driving one full-encoded environment.
// Keyboard input steers the agent's target point; the model steps the
// environment on every tick and renders the raw observation.
type Model struct {
	e      *env.Env
	opts   Options
	screen *core.Screen

	obs       env.FullObservation
	target    core.Vec2
	directive engine.Directive
	started   bool
	steps     int
	reward    float64
	done      bool
	quitting  bool
	saved     bool
	stepErr   error
}

// NewModel constructs a session model around an already-built
// environment. Call Reset via Init.
func NewModel(e *env.Env, opts Options) Model {
	if opts.TickRate <= 0 {
		opts.TickRate = 15
	}
	arena := e.Config().ArenaSize
	return Model{
		e:      e,
		opts:   opts,
		screen: core.NewScreen(opts.Width, opts.Height),
		target: core.Vec2{X: arena / 2, Y: arena / 2},
	}
}

// Init resets the environment and starts the tick loop.
func (m Model) Init() tea.Cmd {
	return tickCmd(m.opts.TickRate)
}

// Update handles messages and updates the model state.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKey(msg)
	case tea.WindowSizeMsg:
		m.screen.Resize(msg.Width, msg.Height)
		return m, nil
	case TickMsg:
		return m.handleTick()
	}
	return m, nil
}

// handleKey maps keyboard input to target movement and directives.
func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	arena := m.e.Config().ArenaSize
	nudge := arena / 20

	switch msg.String() {
	case "ctrl+c", "q":
		// A quit mid-episode still records the truncated result.
		if m.started && !m.done && m.steps > 0 {
			m.saveResult(false)
		}
		m.quitting = true
		return m, tea.Quit
	case "up", "w":
		m.target.Y = core.ClampF(m.target.Y-nudge, 0, arena)
	case "down", "s":
		m.target.Y = core.ClampF(m.target.Y+nudge, 0, arena)
	case "left", "a":
		m.target.X = core.ClampF(m.target.X-nudge, 0, arena)
	case "right", "d":
		m.target.X = core.ClampF(m.target.X+nudge, 0, arena)
	case " ":
		m.directive = engine.DirectiveSplit
	case "f":
		m.directive = engine.DirectiveFeed
	case "r":
		if m.done {
			m.resetEpisode()
		}
	}
	return m, nil
}

// handleTick steps the environment once.
func (m Model) handleTick() (tea.Model, tea.Cmd) {
	if !m.started {
		if obs, ok := m.e.Reset().(env.FullObservation); ok {
			m.obs = obs
		}
		m.started = true
	}

	if !m.done {
		obs, reward, done, info, err := m.e.Step(env.Action{
			X: m.target.X, Y: m.target.Y, Directive: m.directive,
		})
		m.directive = engine.DirectiveNone
		if err != nil {
			m.stepErr = err
			m.quitting = true
			return m, tea.Quit
		}

		m.reward += reward
		m.steps = info.StepCount
		if done {
			m.done = true
			m.saveResult(true)
		} else if fullObs, ok := obs.(env.FullObservation); ok {
			m.obs = fullObs
		}
	}

	return m, tickCmd(m.opts.TickRate)
}

// resetEpisode starts a fresh episode after termination.
func (m *Model) resetEpisode() {
	if obs, ok := m.e.Reset().(env.FullObservation); ok {
		m.obs = obs
	}
	m.started = true
	m.steps = 0
	m.reward = 0
	m.done = false
	m.saved = false
}

// saveResult persists the episode outcome, once per episode.
func (m *Model) saveResult(terminated bool) {
	if m.saved || m.opts.Store == nil {
		return
	}
	//nolint:errcheck // Best-effort save, session continues regardless
	m.opts.Store.SaveEpisode(storage.EpisodeResult{
		EpisodeID:   m.e.EpisodeID(),
		EnvID:       m.opts.EnvID,
		Difficulty:  m.opts.Config.Difficulty,
		Steps:       m.steps,
		TotalReward: m.reward,
		Terminated:  terminated,
	})
	m.saved = true
}

// View renders the current observation to a styled string.
func (m Model) View() string {
	if m.quitting {
		return ""
	}

	drawObservation(m.screen, m.obs, m.e.Config().ArenaSize, m.target, m.steps, m.reward)
	out := RenderScreen(m.screen)

	if m.done {
		out += "\n" + fmt.Sprintf(" episode over after %d steps (reward %.1f) - press r to restart, q to quit", m.steps, m.reward)
	}
	return out
}

// Err returns the error that ended the session, if any.
func (m Model) Err() error { return m.stepErr }

// Run builds a full-encoded environment and drives it interactively
// until the user quits.
func Run(opts Options) error {
	e, err := env.New(env.ObsTypeFull, opts.Config)
	if err != nil {
		return err
	}

	model := NewModel(e, opts)
	p := tea.NewProgram(model, tea.WithAltScreen())

	final, err := p.Run()
	if err != nil {
		return err
	}
	if m, ok := final.(Model); ok && m.Err() != nil {
		return m.Err()
	}
	return nil
}
