// Package envs registers the arena environment variants with the
// process-wide registry. Import it for side effects:
//
//	import _ "github.com/mohamedayman15069/Agar/internal/envs"
package envs

import (
	"github.com/mohamedayman15069/Agar/internal/config"
	"github.com/mohamedayman15069/Agar/internal/env"
	"github.com/mohamedayman15069/Agar/internal/registry"
)

// Registered environment identifiers, one per observation encoding.
const (
	GridID   = "agario-grid-v0"
	RamID    = "agario-ram-v0"
	ScreenID = "agario-screen-v0"
	FullID   = "agario-full-v0"
)

func init() {
	register(GridID, env.ObsTypeGrid)
	register(RamID, env.ObsTypeRam)
	register(ScreenID, env.ObsTypeScreen)
	register(FullID, env.ObsTypeFull)
}

func register(id string, obsType env.ObsType) {
	registry.Register(id, func(cfg config.EnvConfig) (*env.Env, error) {
		return env.New(obsType, cfg)
	})
}
