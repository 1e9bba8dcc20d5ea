package systems

import (
	"time"

	"github.com/lixenwraith/martians/components"
	"github.com/lixenwraith/martians/constants"
	"github.com/lixenwraith/martians/engine"
)

// LifetimeSystem expires projectiles that outlived their tick budget
type LifetimeSystem struct {
	ctx *engine.GameContext
}

// NewLifetimeSystem creates a new lifetime system
func NewLifetimeSystem(ctx *engine.GameContext) *LifetimeSystem {
	return &LifetimeSystem{ctx: ctx}
}

// Priority returns the system's priority
func (s *LifetimeSystem) Priority() int {
	return constants.PriorityLifetime
}

// Update marks expired entities for removal
func (s *LifetimeSystem) Update(world *engine.World, dt time.Duration) {
	tick := s.ctx.State.Tick
	for _, e := range world.Query().With(world.Lifetimes).Without(world.Deaths).Execute() {
		if l := world.Lifetimes.MustGet(e); tick > l.ExpiresAt {
			world.MarkDead(e, components.ReasonExpired)
		}
	}
}
