package env

import (
	"fmt"

	"github.com/mohamedayman15069/Agar/internal/config"
	"github.com/mohamedayman15069/Agar/internal/engine"
)

// ObsType selects one of the four mutually exclusive observation
// encodings. Fixed at construction for the lifetime of the instance.
type ObsType string

const (
	ObsTypeScreen ObsType = "screen"
	ObsTypeGrid   ObsType = "grid"
	ObsTypeRam    ObsType = "ram"
	ObsTypeFull   ObsType = "full"
)

// handle is the synchronous contract every engine variant satisfies.
// The engine may parallelize internally; that is not observable here.
type handle interface {
	Reset()
	Step() float64
	Done() bool
	TakeAction(x, y float64, d engine.Directive)
	Render()
}

// variant binds an engine handle to its observation space and the
// matching raw-state translator. Selected once at construction, never
// switched on afterward.
type variant struct {
	handle  handle
	space   Space
	observe func() any
}

// build instantiates the engine variant matching the encoding and
// derives the observation space descriptor. The resolved configuration
// fields are passed positionally in the engine-defined order.
func build(obsType ObsType, cfg config.Config, ec config.EnvConfig, seed int64) (variant, error) {
	switch obsType {
	case ObsTypeGrid:
		grid := ec.Grid
		if grid == (config.GridOptions{}) {
			grid = config.DefaultGridOptions()
		}
		defaults := config.DefaultGridOptions()
		if grid.NumFrames <= 0 {
			grid.NumFrames = defaults.NumFrames
		}
		if grid.GridSize <= 0 {
			grid.GridSize = defaults.GridSize
		}
		if !grid.ObserveCells && !grid.ObserveOthers && !grid.ObserveViruses && !grid.ObservePellets {
			return variant{}, fmt.Errorf("%w: grid encoding needs at least one entity channel enabled",
				ErrInvalidArgument)
		}

		e := engine.NewGridEnvironment(cfg.TicksPerStep, cfg.ArenaSize, cfg.PelletRegen,
			cfg.NumPellets, cfg.NumViruses, cfg.NumBots, seed)
		e.ConfigureObservation(grid)

		// The engine's shape query is authoritative; the adapter only
		// permutes the axes to channel-last.
		shape := e.ObservationShape()
		channels, width, height := shape[0], shape[1], shape[2]
		return variant{
			handle: e,
			space:  Unbounded([]int{width, height, channels}, DtypeInt32),
			observe: func() any {
				return transposeCHW(e.State(), channels, width, height)
			},
		}, nil

	case ObsTypeRam:
		e := engine.NewRamEnvironment(cfg.TicksPerStep, cfg.ArenaSize, cfg.PelletRegen,
			cfg.NumPellets, cfg.NumViruses, cfg.NumBots, seed)
		return variant{
			handle:  e,
			space:   Unbounded(e.ObservationShape(), DtypeFloat64),
			observe: func() any { return ramVector(e.State()) },
		}, nil

	case ObsTypeScreen:
		screenLen := ec.ScreenLen
		if screenLen <= 0 {
			screenLen = 256
		}
		// Width and height are extra construction arguments; there is no
		// post-construction configuration call on this variant.
		e, err := engine.NewScreenEnvironment(cfg.TicksPerStep, cfg.ArenaSize, cfg.PelletRegen,
			cfg.NumPellets, cfg.NumViruses, cfg.NumBots, seed, screenLen, screenLen)
		if err != nil {
			return variant{}, err
		}
		shape := []int{engine.ScreenFrames, screenLen, screenLen, engine.PixelChannels}
		return variant{
			handle: e,
			space:  NewBox(0, 255, shape, DtypeUint8),
			observe: func() any {
				return &ByteTensor{Shape: shape, Data: e.State()}
			},
		}, nil

	case ObsTypeFull:
		e := engine.NewFullEnvironment(cfg.TicksPerStep, cfg.ArenaSize, cfg.PelletRegen,
			cfg.NumPellets, cfg.NumViruses, cfg.NumBots, seed)
		return variant{
			handle: e,
			space: DictSpace{Entries: []DictEntry{
				{Key: "pellets", Space: Unbounded([]int{VarShape, 2}, DtypeFloat64)},
				{Key: "viruses", Space: Unbounded([]int{VarShape, 2}, DtypeFloat64)},
				{Key: "foods", Space: Unbounded([]int{VarShape, 2}, DtypeFloat64)},
				{Key: "agent", Space: Unbounded([]int{VarShape, 5}, DtypeFloat64)},
				{Key: "others", Space: Unbounded([]int{VarShape, VarShape, 5}, DtypeFloat64)},
			}},
			observe: func() any { return repackageFull(e.State()) },
		}, nil

	default:
		return variant{}, fmt.Errorf("%w: unsupported observation type %q", ErrInvalidArgument, obsType)
	}
}
