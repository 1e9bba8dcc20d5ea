package systems

import (
	"time"

	"github.com/lixenwraith/martians/components"
	"github.com/lixenwraith/martians/constants"
	"github.com/lixenwraith/martians/engine"
	"github.com/lixenwraith/martians/vmath"
)

// CollisionSystem exchanges damage between overlapping entities of opposing factions
// Each unordered pair is resolved at most once per tick
type CollisionSystem struct {
	ctx *engine.GameContext
}

// NewCollisionSystem creates a new collision system
func NewCollisionSystem(ctx *engine.GameContext) *CollisionSystem {
	return &CollisionSystem{ctx: ctx}
}

// Priority returns the system's priority
func (s *CollisionSystem) Priority() int {
	return constants.PriorityCollision
}

type collider struct {
	entity engine.Entity
	id     components.IdentityComponent
	box    vmath.Box
}

// Update checks every pair of live entities
func (s *CollisionSystem) Update(world *engine.World, dt time.Duration) {
	entities := world.Query().
		With(world.Identities).
		With(world.Positions).
		With(world.Sprites).
		Without(world.Deaths).
		Execute()

	colliders := make([]collider, 0, len(entities))
	for _, e := range entities {
		sprite := world.Sprites.MustGet(e)
		colliders = append(colliders, collider{
			entity: e,
			id:     world.Identities.MustGet(e),
			box:    sprite.Box(world.Positions.MustGet(e)),
		})
	}

	for i := 0; i < len(colliders); i++ {
		for j := i + 1; j < len(colliders); j++ {
			a, b := colliders[i], colliders[j]
			aDead, bDead := world.Deaths.Has(a.entity), world.Deaths.Has(b.entity)
			switch {
			case aDead && bDead:
			case aDead:
				s.spend(world, b, a)
			case bDead:
				s.spend(world, a, b)
			default:
				s.resolve(world, a, b)
			}
		}
	}
}

// spend retires a projectile overlapping a target killed earlier in this pass
// The dead target takes no further damage and is not counted again
func (s *CollisionSystem) spend(world *engine.World, shot, target collider) {
	if !shot.id.Kind.IsProjectile() || !shot.id.Faction.Opposes(target.id.Faction) {
		return
	}
	if !world.Healths.Has(target.entity) || !vmath.Overlaps(shot.box, target.box) {
		return
	}
	world.MarkDead(shot.entity, components.ReasonImpact)
}

func (s *CollisionSystem) resolve(world *engine.World, a, b collider) {
	if !a.id.Faction.Opposes(b.id.Faction) {
		return
	}
	aHealth, aHas := world.Healths.Get(a.entity)
	bHealth, bHas := world.Healths.Get(b.entity)
	if !aHas && !bHas {
		return
	}
	if !vmath.Overlaps(a.box, b.box) {
		return
	}

	aDamage, _ := world.Damages.Get(a.entity)
	bDamage, _ := world.Damages.Get(b.entity)

	if aHas {
		aHealth.Damage(bDamage.Amount)
		world.Healths.Set(a.entity, aHealth)
		s.ctx.Metrics.Hit(a.id.Kind.String())
	}
	if bHas {
		bHealth.Damage(aDamage.Amount)
		world.Healths.Set(b.entity, bHealth)
		s.ctx.Metrics.Hit(b.id.Kind.String())
	}

	// A projectile is spent on anything it can hurt
	if a.id.Kind.IsProjectile() && bHas {
		world.MarkDead(a.entity, components.ReasonImpact)
	}
	if b.id.Kind.IsProjectile() && aHas {
		world.MarkDead(b.entity, components.ReasonImpact)
	}

	if aHas && !aHealth.Alive() {
		s.kill(world, a, b)
	}
	if bHas && !bHealth.Alive() {
		s.kill(world, b, a)
	}
}

// kill marks the victim dead; only player projectiles earn score
func (s *CollisionSystem) kill(world *engine.World, victim, killer collider) {
	world.MarkDead(victim.entity, components.ReasonKilled)

	switch victim.id.Kind {
	case components.KindMartian:
		shot, ok := world.Projectiles.Get(killer.entity)
		if !ok || shot.Owner != components.FactionPlayer {
			s.ctx.Logger.Debug().
				Uint64("entity", uint64(victim.entity)).
				Str("killer", killer.id.Kind.String()).
				Msg("martian destroyed without credit")
			return
		}
		s.ctx.State.RecordKill(s.ctx.Config.Enemies.Score)
		s.ctx.Metrics.Kill()
		s.ctx.Logger.Debug().
			Uint64("entity", uint64(victim.entity)).
			Int("kills", s.ctx.State.Kills).
			Int("score", s.ctx.State.Score).
			Msg("martian destroyed")
	case components.KindTank:
		s.ctx.State.TransitionPhase(engine.PhaseLost)
	}
}
