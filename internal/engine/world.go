// Package engine implements the arena simulation: a seeded, deterministic
// world of pellets, viruses, ejected food, one controlled agent and a set
// of bot players. One engine instance is owned per environment and all
// access is single-threaded by contract.
package engine

import (
	"math/rand"

	"github.com/mohamedayman15069/Agar/internal/core"
)

// World owns the arena state and advances it tick by tick.
type World struct {
	ticksPerStep int
	arenaSize    float64
	pelletRegen  bool
	numPellets   int
	numViruses   int
	numBots      int

	seed int64
	rng  *rand.Rand

	pellets []Pellet
	viruses []Virus
	foods   []Food
	agent   *Player
	bots    []*Player

	tick uint64
	done bool
}

// NewWorld creates a world with the given simulation parameters.
// The argument order is fixed: ticksPerStep, arenaSize, pelletRegen,
// numPellets, numViruses, numBots. Call Reset before stepping.
func NewWorld(ticksPerStep int, arenaSize float64, pelletRegen bool,
	numPellets, numViruses, numBots int, seed int64) *World {

	w := &World{
		ticksPerStep: ticksPerStep,
		arenaSize:    arenaSize,
		pelletRegen:  pelletRegen,
		numPellets:   numPellets,
		numViruses:   numViruses,
		numBots:      numBots,
		seed:         seed,
	}
	w.Reset()
	return w
}

// ArenaSize returns the world extent.
func (w *World) ArenaSize() float64 { return w.arenaSize }

// NumPellets returns the configured pellet count.
func (w *World) NumPellets() int { return w.numPellets }

// NumViruses returns the configured virus count.
func (w *World) NumViruses() int { return w.numViruses }

// NumBots returns the configured bot count.
func (w *World) NumBots() int { return w.numBots }

// Tick returns the number of ticks simulated since the last reset.
func (w *World) Tick() uint64 { return w.tick }

// Reset repopulates the arena and respawns every player.
func (w *World) Reset() {
	w.rng = rand.New(rand.NewSource(w.seed))
	w.tick = 0
	w.done = false

	w.pellets = make([]Pellet, w.numPellets)
	for i := range w.pellets {
		w.pellets[i] = Pellet{Pos: w.randomPos()}
	}
	w.viruses = make([]Virus, w.numViruses)
	for i := range w.viruses {
		w.viruses[i] = Virus{Pos: w.randomPos()}
	}
	w.foods = w.foods[:0]

	w.agent = w.spawnPlayer()
	w.bots = make([]*Player, w.numBots)
	for i := range w.bots {
		w.bots[i] = w.spawnPlayer()
	}
}

// TakeAction records the agent's intent for the next Step: steer toward
// (x, y) and optionally split or feed. Coordinates are clamped to the
// arena bounds.
func (w *World) TakeAction(x, y float64, d Directive) {
	w.agent.Target = core.Vec2{
		X: core.ClampF(x, 0, w.arenaSize),
		Y: core.ClampF(y, 0, w.arenaSize),
	}
	w.agent.split = d == DirectiveSplit
	w.agent.feed = d == DirectiveFeed
}

// Step advances the world by ticksPerStep ticks and returns the reward:
// the change in the agent's total mass across the step.
func (w *World) Step() float64 {
	before := w.agent.Mass()

	for i := 0; i < w.ticksPerStep && !w.done; i++ {
		w.simTick()
	}

	return w.agent.Mass() - before
}

// Done reports whether the agent has been eliminated.
func (w *World) Done() bool { return w.done }

// simTick advances the simulation by one tick.
func (w *World) simTick() {
	w.tick++

	w.steerBots()

	w.applyIntent(w.agent)
	for _, bot := range w.bots {
		w.applyIntent(bot)
	}

	w.moveCells(w.agent)
	for _, bot := range w.bots {
		w.moveCells(bot)
	}
	w.moveFood()

	w.eatPellets(w.agent)
	for _, bot := range w.bots {
		w.eatPellets(bot)
	}

	w.virusCollisions(w.agent)
	for _, bot := range w.bots {
		w.virusCollisions(bot)
	}

	w.playerCollisions()

	if !w.agent.Alive() {
		w.done = true
	}
	w.respawnBots()
}

// applyIntent handles pending split/feed requests for a player.
func (w *World) applyIntent(p *Player) {
	if p.split {
		p.split = false
		w.splitCells(p)
	}
	if p.feed {
		p.feed = false
		w.feedFrom(p)
	}
}

// splitCells divides every sufficiently heavy cell in half, launching the
// new half toward the player's target.
func (w *World) splitCells(p *Player) {
	dir := p.Target.Sub(p.Centroid()).Normalized()
	spawned := make([]Cell, 0, len(p.Cells))
	for i := range p.Cells {
		if len(p.Cells)+len(spawned) >= MaxCellsPerPlayer {
			break
		}
		c := &p.Cells[i]
		if c.Mass < SplitMinMass {
			continue
		}
		half := c.Mass / 2
		c.Mass = half
		spawned = append(spawned, Cell{
			Pos:  c.Pos,
			Vel:  dir.Scale(4 * baseSpeed * (w.arenaSize / 1000.0)),
			Mass: half,
		})
	}
	p.Cells = append(p.Cells, spawned...)
}

// feedFrom ejects one piece of food per heavy cell toward the target.
func (w *World) feedFrom(p *Player) {
	dir := p.Target.Sub(p.Centroid()).Normalized()
	for i := range p.Cells {
		if len(w.foods) >= FoodCapacity {
			return
		}
		c := &p.Cells[i]
		if c.Mass < FeedMinMass {
			continue
		}
		c.Mass -= FoodMass
		w.foods = append(w.foods, Food{
			Pos: c.Pos.Add(dir.Scale(c.Radius())),
			Vel: dir.Scale(2 * baseSpeed * (w.arenaSize / 1000.0)),
		})
	}
}

// moveCells steers a player's cells toward its target and decays any
// split burst velocity.
func (w *World) moveCells(p *Player) {
	for i := range p.Cells {
		c := &p.Cells[i]
		toward := p.Target.Sub(c.Pos)
		dist := toward.Length()
		step := c.Speed(w.arenaSize)
		if dist > 0 {
			if step > dist {
				step = dist
			}
			c.Pos = c.Pos.Add(toward.Normalized().Scale(step))
		}
		c.Pos = c.Pos.Add(c.Vel)
		c.Vel = c.Vel.Scale(0.8)
		c.Pos.X = core.ClampF(c.Pos.X, 0, w.arenaSize)
		c.Pos.Y = core.ClampF(c.Pos.Y, 0, w.arenaSize)
	}
}

// moveFood drifts ejected food along its ejection direction.
func (w *World) moveFood() {
	for i := range w.foods {
		f := &w.foods[i]
		f.Pos = f.Pos.Add(f.Vel)
		f.Vel = f.Vel.Scale(0.8)
		f.Pos.X = core.ClampF(f.Pos.X, 0, w.arenaSize)
		f.Pos.Y = core.ClampF(f.Pos.Y, 0, w.arenaSize)
	}
}

// eatPellets consumes pellets and food overlapping the player's cells.
func (w *World) eatPellets(p *Player) {
	for i := range p.Cells {
		c := &p.Cells[i]
		r := c.Radius()

		for j := 0; j < len(w.pellets); j++ {
			if c.Pos.DistanceTo(w.pellets[j].Pos) > r {
				continue
			}
			c.Mass += PelletMass
			if w.pelletRegen {
				w.pellets[j] = Pellet{Pos: w.randomPos()}
			} else {
				w.pellets[j] = w.pellets[len(w.pellets)-1]
				w.pellets = w.pellets[:len(w.pellets)-1]
				j--
			}
		}

		for j := 0; j < len(w.foods); j++ {
			if c.Pos.DistanceTo(w.foods[j].Pos) > r {
				continue
			}
			c.Mass += FoodMass
			w.foods[j] = w.foods[len(w.foods)-1]
			w.foods = w.foods[:len(w.foods)-1]
			j--
		}
	}
}

// virusCollisions pops cells that run into a virus while heavier than it.
// The popped cell loses a third of its mass and the virus relocates.
func (w *World) virusCollisions(p *Player) {
	for i := range p.Cells {
		c := &p.Cells[i]
		if c.Mass <= VirusMass {
			continue
		}
		for j := range w.viruses {
			if c.Pos.DistanceTo(w.viruses[j].Pos) > c.Radius() {
				continue
			}
			c.Mass *= 2.0 / 3.0
			w.viruses[j] = Virus{Pos: w.randomPos()}
		}
	}
}

// playerCollisions resolves cell-versus-cell eating between different
// players. A cell consumes an overlapping cell when it is at least
// EatRatio times heavier.
func (w *World) playerCollisions() {
	players := make([]*Player, 0, 1+len(w.bots))
	players = append(players, w.agent)
	players = append(players, w.bots...)

	for ai, a := range players {
		for bi, b := range players {
			if ai == bi {
				continue
			}
			w.resolveEating(a, b)
		}
	}
}

// resolveEating lets eater's cells consume prey's cells where possible.
func (w *World) resolveEating(eater, prey *Player) {
	for i := range eater.Cells {
		ec := &eater.Cells[i]
		for j := 0; j < len(prey.Cells); j++ {
			pc := &prey.Cells[j]
			if ec.Mass < pc.Mass*EatRatio {
				continue
			}
			if ec.Pos.DistanceTo(pc.Pos) > ec.Radius() {
				continue
			}
			ec.Mass += pc.Mass
			prey.Cells[j] = prey.Cells[len(prey.Cells)-1]
			prey.Cells = prey.Cells[:len(prey.Cells)-1]
			j--
		}
	}
}

// steerBots runs the greedy bot policy: head for the nearest pellet.
func (w *World) steerBots() {
	for _, bot := range w.bots {
		if !bot.Alive() || len(w.pellets) == 0 {
			continue
		}
		pos := bot.Centroid()
		nearest := w.pellets[0].Pos
		best := pos.DistanceTo(nearest)
		for _, p := range w.pellets[1:] {
			if d := pos.DistanceTo(p.Pos); d < best {
				best = d
				nearest = p.Pos
			}
		}
		bot.Target = nearest
	}
}

// respawnBots brings eliminated bots back at a random position so the
// arena keeps its configured population.
func (w *World) respawnBots() {
	for i, bot := range w.bots {
		if !bot.Alive() {
			w.bots[i] = w.spawnPlayer()
		}
	}
}

// spawnPlayer creates a single-cell player at a random position.
func (w *World) spawnPlayer() *Player {
	pos := w.randomPos()
	return &Player{
		Cells:  []Cell{{Pos: pos, Mass: MinCellMass}},
		Target: pos,
	}
}

// randomPos returns a uniformly random point inside the arena.
func (w *World) randomPos() core.Vec2 {
	return core.Vec2{
		X: w.rng.Float64() * w.arenaSize,
		Y: w.rng.Float64() * w.arenaSize,
	}
}
