package engine

import (
	"github.com/mohamedayman15069/Agar/internal/config"
	"github.com/mohamedayman15069/Agar/internal/core"
)

// GridEnvironment rasterizes the world into an image-like stack of
// integer channels: one channel per enabled entity type, repeated for
// each stacked history frame. The tensor layout is channel-first
// (channels, width, height); the observation shape query is the single
// source of truth for the channel count.
type GridEnvironment struct {
	world *World
	opts  config.GridOptions

	// history holds the most recent rasterized frames, oldest first.
	// Each frame is channelsPerFrame * gridSize * gridSize values.
	history [][]int32
}

// NewGridEnvironment creates the grid-encoded engine variant. Observation
// options default to config.DefaultGridOptions until ConfigureObservation
// is called.
func NewGridEnvironment(ticksPerStep int, arenaSize float64, pelletRegen bool,
	numPellets, numViruses, numBots int, seed int64) *GridEnvironment {

	g := &GridEnvironment{
		world: NewWorld(ticksPerStep, arenaSize, pelletRegen, numPellets, numViruses, numBots, seed),
		opts:  config.DefaultGridOptions(),
	}
	g.capture()
	return g
}

// ConfigureObservation sets the grid resolution, frame stack depth and
// entity channel toggles. Must be called before the shape is queried;
// it clears any frame history.
func (g *GridEnvironment) ConfigureObservation(opts config.GridOptions) {
	g.opts = opts
	g.history = nil
	g.capture()
}

// channelsPerFrame counts the enabled entity channels.
func (g *GridEnvironment) channelsPerFrame() int {
	n := 0
	for _, on := range []bool{
		g.opts.ObserveCells, g.opts.ObserveOthers,
		g.opts.ObserveViruses, g.opts.ObservePellets,
	} {
		if on {
			n++
		}
	}
	return n
}

// ObservationShape reports the channel-first tensor shape:
// (num_frames * enabled channels, grid_size, grid_size).
func (g *GridEnvironment) ObservationShape() []int {
	return []int{g.opts.NumFrames * g.channelsPerFrame(), g.opts.GridSize, g.opts.GridSize}
}

// Reset restarts the episode and clears the frame history.
func (g *GridEnvironment) Reset() {
	g.world.Reset()
	g.history = nil
	g.capture()
}

// Step advances the world and pushes a fresh frame into the history.
func (g *GridEnvironment) Step() float64 {
	reward := g.world.Step()
	g.capture()
	return reward
}

// Done reports episode termination.
func (g *GridEnvironment) Done() bool { return g.world.Done() }

// TakeAction forwards the agent's action to the world.
func (g *GridEnvironment) TakeAction(x, y float64, d Directive) {
	g.world.TakeAction(x, y, d)
}

// Render draws the world to stdout.
func (g *GridEnvironment) Render() { g.world.Render() }

// ArenaSize returns the world extent.
func (g *GridEnvironment) ArenaSize() float64 { return g.world.ArenaSize() }

// State returns the stacked frames flattened in channel-first order,
// oldest frame first. Frames missing from a short history are zero.
func (g *GridEnvironment) State() []int32 {
	size := g.opts.GridSize
	perFrame := g.channelsPerFrame() * size * size
	out := make([]int32, g.opts.NumFrames*perFrame)

	// Right-align history: newest frame is always the last block.
	offset := g.opts.NumFrames - len(g.history)
	for i, frame := range g.history {
		copy(out[(offset+i)*perFrame:], frame)
	}
	return out
}

// capture rasterizes the current world state and appends it to the
// frame history, dropping the oldest frame past the stack depth.
func (g *GridEnvironment) capture() {
	size := g.opts.GridSize
	channels := g.channelsPerFrame()
	frame := make([]int32, channels*size*size)

	ch := 0
	if g.opts.ObserveCells {
		g.rasterCells(frame, ch*size*size, g.world.agent.Cells)
		ch++
	}
	if g.opts.ObserveOthers {
		for _, bot := range g.world.bots {
			g.rasterCells(frame, ch*size*size, bot.Cells)
		}
		ch++
	}
	if g.opts.ObserveViruses {
		for _, v := range g.world.viruses {
			g.bump(frame, ch*size*size, v.Pos, int32(VirusMass))
		}
		ch++
	}
	if g.opts.ObservePellets {
		for _, p := range g.world.pellets {
			g.bump(frame, ch*size*size, p.Pos, 1)
		}
		for _, f := range g.world.foods {
			g.bump(frame, ch*size*size, f.Pos, 1)
		}
	}

	g.history = append(g.history, frame)
	if len(g.history) > g.opts.NumFrames {
		g.history = g.history[1:]
	}
}

// rasterCells adds each cell's integer mass at its grid position.
func (g *GridEnvironment) rasterCells(frame []int32, base int, cells []Cell) {
	for i := range cells {
		g.bump(frame, base, cells[i].Pos, int32(cells[i].Mass))
	}
}

// bump adds v at the grid cell containing the arena position.
func (g *GridEnvironment) bump(frame []int32, base int, pos core.Vec2, v int32) {
	size := g.opts.GridSize
	gx := core.Clamp(int(pos.X/g.world.arenaSize*float64(size)), 0, size-1)
	gy := core.Clamp(int(pos.Y/g.world.arenaSize*float64(size)), 0, size-1)
	frame[base+gx*size+gy] += v
}
