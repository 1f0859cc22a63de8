package engine

import (
	"math"

	"github.com/mohamedayman15069/Agar/internal/core"
)

// Simulation constants. Masses are in arbitrary units; a cell's radius
// grows with the square root of its mass.
const (
	MinCellMass  = 10.0 // Mass of a freshly spawned cell
	PelletMass   = 1.0
	FoodMass     = 2.0
	VirusMass    = 100.0
	SplitMinMass = 2 * MinCellMass // Below this a cell cannot split
	FeedMinMass  = MinCellMass + FoodMass

	// EatRatio is how much bigger a cell must be to consume another.
	EatRatio = 1.25

	// MaxCellsPerPlayer caps how many cells one player can split into.
	MaxCellsPerPlayer = 16

	// FoodCapacity caps how many ejected food pieces exist at once.
	FoodCapacity = 64

	// baseSpeed is cell speed at MinCellMass, in arena units per tick
	// for an arena of size 1000. Scaled linearly with arena size.
	baseSpeed = 1.2
)

// Directive is the discrete part of an action.
type Directive int

const (
	DirectiveNone Directive = iota
	DirectiveSplit
	DirectiveFeed
)

// Pellet is a small static food particle worth PelletMass.
type Pellet struct {
	Pos core.Vec2
}

// Virus is a static hazard that pops cells larger than its mass.
type Virus struct {
	Pos core.Vec2
}

// Food is a piece of mass ejected by a feeding cell. It drifts briefly
// in the ejection direction and can be eaten like a pellet.
type Food struct {
	Pos core.Vec2
	Vel core.Vec2
}

// Cell is one blob of a player's body.
type Cell struct {
	Pos  core.Vec2
	Vel  core.Vec2 // Burst velocity from splitting; decays per tick
	Mass float64
}

// Radius returns the cell's collision radius.
func (c *Cell) Radius() float64 {
	return math.Sqrt(c.Mass)
}

// Speed returns the cell's base movement speed for the given arena size.
// Heavier cells move slower.
func (c *Cell) Speed(arenaSize float64) float64 {
	return baseSpeed * (arenaSize / 1000.0) * math.Sqrt(MinCellMass/c.Mass) * 4
}

// Player is the agent or a bot: a target point plus one or more cells.
type Player struct {
	Cells  []Cell
	Target core.Vec2 // Point the cells steer toward

	split bool // Split requested for the next tick
	feed  bool // Feed requested for the next tick
}

// Mass returns the player's total mass across all cells.
func (p *Player) Mass() float64 {
	var total float64
	for i := range p.Cells {
		total += p.Cells[i].Mass
	}
	return total
}

// Alive reports whether the player still has cells on the board.
func (p *Player) Alive() bool {
	return len(p.Cells) > 0
}

// Centroid returns the mass-weighted center of the player's cells.
func (p *Player) Centroid() core.Vec2 {
	if len(p.Cells) == 0 {
		return core.Vec2{}
	}
	var c core.Vec2
	var total float64
	for i := range p.Cells {
		c = c.Add(p.Cells[i].Pos.Scale(p.Cells[i].Mass))
		total += p.Cells[i].Mass
	}
	return c.Scale(1 / total)
}
