package engine

// CellData is the raw per-cell record exposed in state snapshots:
// position, velocity and mass.
type CellData struct {
	X, Y   float64
	VX, VY float64
	Mass   float64
}

// EntityPos is the raw per-entity record for point-like entities.
type EntityPos struct {
	X, Y float64
}

// Snapshot is the raw structured state returned by the engine per
// step/reset. It is consumed immediately by the observation transform
// and not retained.
type Snapshot struct {
	Pellets []EntityPos
	Viruses []EntityPos
	Foods   []EntityPos
	Agent   []CellData
	Others  [][]CellData // One slice of cells per living bot
}

// Snapshot captures the current world state.
func (w *World) Snapshot() Snapshot {
	s := Snapshot{
		Pellets: make([]EntityPos, len(w.pellets)),
		Viruses: make([]EntityPos, len(w.viruses)),
		Foods:   make([]EntityPos, len(w.foods)),
		Agent:   cellData(w.agent.Cells),
	}
	for i, p := range w.pellets {
		s.Pellets[i] = EntityPos{p.Pos.X, p.Pos.Y}
	}
	for i, v := range w.viruses {
		s.Viruses[i] = EntityPos{v.Pos.X, v.Pos.Y}
	}
	for i, f := range w.foods {
		s.Foods[i] = EntityPos{f.Pos.X, f.Pos.Y}
	}
	for _, bot := range w.bots {
		if bot.Alive() {
			s.Others = append(s.Others, cellData(bot.Cells))
		}
	}
	return s
}

func cellData(cells []Cell) []CellData {
	out := make([]CellData, len(cells))
	for i := range cells {
		c := &cells[i]
		out[i] = CellData{c.Pos.X, c.Pos.Y, c.Vel.X, c.Vel.Y, c.Mass}
	}
	return out
}
