package engine

// RamEnvironment exposes the world as a flat fixed-length vector of
// entity positions and velocities. The layout is fixed by configuration:
//
//	pellets  numPellets       x (x, y)
//	viruses  numViruses       x (x, y)
//	foods    FoodCapacity     x (x, y)
//	agent    MaxCellsPerPlayer x (x, y, vx, vy, mass)
//	others   numBots * MaxCellsPerPlayer x (x, y, vx, vy, mass)
//
// Unused slots are filled with -1.
type RamEnvironment struct {
	world *World
}

// NewRamEnvironment creates the ram-encoded engine variant.
func NewRamEnvironment(ticksPerStep int, arenaSize float64, pelletRegen bool,
	numPellets, numViruses, numBots int, seed int64) *RamEnvironment {

	return &RamEnvironment{
		world: NewWorld(ticksPerStep, arenaSize, pelletRegen, numPellets, numViruses, numBots, seed),
	}
}

// ObservationShape reports the flat vector length.
func (r *RamEnvironment) ObservationShape() []int {
	n := 2*r.world.numPellets +
		2*r.world.numViruses +
		2*FoodCapacity +
		5*MaxCellsPerPlayer +
		5*MaxCellsPerPlayer*r.world.numBots
	return []int{n}
}

// Reset restarts the episode.
func (r *RamEnvironment) Reset() { r.world.Reset() }

// Step advances the world.
func (r *RamEnvironment) Step() float64 { return r.world.Step() }

// Done reports episode termination.
func (r *RamEnvironment) Done() bool { return r.world.Done() }

// TakeAction forwards the agent's action to the world.
func (r *RamEnvironment) TakeAction(x, y float64, d Directive) {
	r.world.TakeAction(x, y, d)
}

// Render draws the world to stdout.
func (r *RamEnvironment) Render() { r.world.Render() }

// ArenaSize returns the world extent.
func (r *RamEnvironment) ArenaSize() float64 { return r.world.ArenaSize() }

// State serializes the current world into the fixed vector layout.
func (r *RamEnvironment) State() []float64 {
	out := make([]float64, r.ObservationShape()[0])
	for i := range out {
		out[i] = -1
	}

	s := r.world.Snapshot()
	i := 0

	writePos := func(entities []EntityPos, capacity int) {
		for j := 0; j < capacity; j++ {
			if j < len(entities) {
				out[i] = entities[j].X
				out[i+1] = entities[j].Y
			}
			i += 2
		}
	}
	writeCells := func(cells []CellData, capacity int) {
		for j := 0; j < capacity; j++ {
			if j < len(cells) {
				c := cells[j]
				out[i] = c.X
				out[i+1] = c.Y
				out[i+2] = c.VX
				out[i+3] = c.VY
				out[i+4] = c.Mass
			}
			i += 5
		}
	}

	writePos(s.Pellets, r.world.numPellets)
	writePos(s.Viruses, r.world.numViruses)
	writePos(s.Foods, FoodCapacity)
	writeCells(s.Agent, MaxCellsPerPlayer)
	for b := 0; b < r.world.numBots; b++ {
		if b < len(s.Others) {
			writeCells(s.Others[b], MaxCellsPerPlayer)
		} else {
			writeCells(nil, MaxCellsPerPlayer)
		}
	}

	return out
}
