//go:build !screen

package engine

// ScreenEnvironment is only available in builds with the screen tag.
// This stub keeps the construction signature identical so callers can
// distinguish "not compiled in" from other construction failures.
type ScreenEnvironment struct{}

// NewScreenEnvironment always fails in builds without screen rendering.
func NewScreenEnvironment(ticksPerStep int, arenaSize float64, pelletRegen bool,
	numPellets, numViruses, numBots int, seed int64, width, height int) (*ScreenEnvironment, error) {

	return nil, ErrScreenUnavailable
}

func (s *ScreenEnvironment) ObservationShape() []int              { return nil }
func (s *ScreenEnvironment) Reset()                               {}
func (s *ScreenEnvironment) Step() float64                        { return 0 }
func (s *ScreenEnvironment) Done() bool                           { return false }
func (s *ScreenEnvironment) TakeAction(x, y float64, d Directive) {}
func (s *ScreenEnvironment) Render()                              {}
func (s *ScreenEnvironment) ArenaSize() float64                   { return 0 }
func (s *ScreenEnvironment) State() []uint8                       { return nil }
