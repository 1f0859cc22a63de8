package engine

// FullEnvironment exposes the raw variable-length entity collections
// without any numeric transform. Meant for debugging and analysis.
type FullEnvironment struct {
	world *World
}

// NewFullEnvironment creates the full-state engine variant.
func NewFullEnvironment(ticksPerStep int, arenaSize float64, pelletRegen bool,
	numPellets, numViruses, numBots int, seed int64) *FullEnvironment {

	return &FullEnvironment{
		world: NewWorld(ticksPerStep, arenaSize, pelletRegen, numPellets, numViruses, numBots, seed),
	}
}

// Reset restarts the episode.
func (f *FullEnvironment) Reset() { f.world.Reset() }

// Step advances the world.
func (f *FullEnvironment) Step() float64 { return f.world.Step() }

// Done reports episode termination.
func (f *FullEnvironment) Done() bool { return f.world.Done() }

// TakeAction forwards the agent's action to the world.
func (f *FullEnvironment) TakeAction(x, y float64, d Directive) {
	f.world.TakeAction(x, y, d)
}

// Render draws the world to stdout.
func (f *FullEnvironment) Render() { f.world.Render() }

// ArenaSize returns the world extent.
func (f *FullEnvironment) ArenaSize() float64 { return f.world.ArenaSize() }

// State returns the raw entity collections.
func (f *FullEnvironment) State() Snapshot { return f.world.Snapshot() }
