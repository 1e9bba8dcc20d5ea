package systems

import (
	"fmt"
	"time"

	"github.com/lixenwraith/martians/components"
	"github.com/lixenwraith/martians/constants"
	"github.com/lixenwraith/martians/engine"
	"github.com/lixenwraith/martians/vmath"
)

// MovementSystem advances every moving entity by its velocity and applies its edge strategy
type MovementSystem struct {
	ctx *engine.GameContext
}

// NewMovementSystem creates a new movement system
func NewMovementSystem(ctx *engine.GameContext) *MovementSystem {
	return &MovementSystem{ctx: ctx}
}

// Priority returns the system's priority
func (s *MovementSystem) Priority() int {
	return constants.PriorityMovement
}

// Update moves all live entities once
func (s *MovementSystem) Update(world *engine.World, dt time.Duration) {
	entities := world.Query().
		With(world.Positions).
		With(world.Velocities).
		With(world.Sprites).
		Without(world.Deaths).
		Execute()

	for _, e := range entities {
		s.move(world, e)
	}
}

func (s *MovementSystem) move(world *engine.World, e engine.Entity) {
	edge, ok := world.Edges.Get(e)
	if !ok || edge.Strategy == components.EdgeUnset {
		panic(fmt.Sprintf("systems: entity %d moves without an edge strategy", e))
	}

	vel := world.Velocities.MustGet(e)
	if vel.IsZero() {
		return
	}
	pos := world.Positions.MustGet(e)
	sprite := world.Sprites.MustGet(e)
	grid := s.ctx.Grid

	proposed := components.PositionComponent{X: pos.X + vel.X, Y: pos.Y + vel.Y}
	box := sprite.Box(proposed)
	crossed := grid.ClassifyEdgeCrossing(box)

	// The tank is pinned to the grid and keeps its velocity
	if e == s.ctx.TankEntity {
		if crossed != vmath.EdgeNone {
			x, y := grid.Clamp(box)
			proposed = components.PositionComponent{X: float64(x), Y: float64(y)}
		}
		world.Positions.Set(e, proposed)
		return
	}

	if crossed == vmath.EdgeNone {
		world.Positions.Set(e, proposed)
		return
	}

	switch edge.Strategy {
	case components.EdgeDisappear:
		world.MarkDead(e, components.ReasonEdge)

	case components.EdgeBounce:
		if crossed.Horizontal() {
			vel.X = -vel.X
		}
		if crossed.Vertical() {
			vel.Y = -vel.Y
		}
		next := components.PositionComponent{X: pos.X + vel.X, Y: pos.Y + vel.Y}
		if b := sprite.Box(next); !grid.InBounds(b) {
			x, y := grid.Clamp(b)
			next = components.PositionComponent{X: float64(x), Y: float64(y)}
		}
		world.Positions.Set(e, next)
		world.Velocities.Set(e, vel)

	case components.EdgeWrap:
		x, y := grid.Wrap(box)
		world.Positions.Set(e, components.PositionComponent{X: float64(x), Y: float64(y)})
	}
}
