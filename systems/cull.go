package systems

import (
	"time"

	"github.com/lixenwraith/martians/constants"
	"github.com/lixenwraith/martians/engine"
)

// CullSystem removes entities marked for destruction
// It runs last in the tick to allow other systems to react to the tagged state
type CullSystem struct {
	ctx *engine.GameContext
}

// NewCullSystem creates a new cull system
func NewCullSystem(ctx *engine.GameContext) *CullSystem {
	return &CullSystem{ctx: ctx}
}

// Priority returns the system's priority (highest value = runs last)
func (s *CullSystem) Priority() int {
	return constants.PriorityCull
}

// Update iterates through tagged entities and destroys them
func (s *CullSystem) Update(world *engine.World, dt time.Duration) {
	for _, e := range world.Deaths.All() {
		if d, ok := world.Deaths.Get(e); ok {
			s.ctx.Logger.Trace().
				Uint64("entity", uint64(e)).
				Str("reason", d.Reason.String()).
				Msg("cull")
		}
		world.DestroyEntity(e)
	}
}
