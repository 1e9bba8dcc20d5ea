package engine

import (
	"fmt"

	"github.com/gdamore/tcell/v2"

	"github.com/lixenwraith/martians/asset"
	"github.com/lixenwraith/martians/components"
	"github.com/lixenwraith/martians/constants"
	"github.com/lixenwraith/martians/vmath"
)

var kindStyles = map[components.Kind]tcell.Style{
	components.KindTank:    tcell.StyleDefault.Foreground(tcell.ColorGreen),
	components.KindMartian: tcell.StyleDefault.Foreground(tcell.ColorRed),
	components.KindLaser:   tcell.StyleDefault.Foreground(tcell.ColorYellow),
	components.KindRocket:  tcell.StyleDefault.Foreground(tcell.ColorWhite),
	components.KindBomb:    tcell.StyleDefault.Foreground(tcell.ColorFuchsia),
}

var kindZ = map[components.Kind]int{
	components.KindTank:    constants.ZTank,
	components.KindMartian: constants.ZMartian,
	components.KindLaser:   constants.ZProjectile,
	components.KindRocket:  constants.ZProjectile,
	components.KindBomb:    constants.ZProjectile,
}

var projectileGlyphs = map[components.Kind][]string{
	components.KindLaser:  asset.Laser,
	components.KindRocket: asset.Rocket,
	components.KindBomb:   asset.Bomb,
}

// SpawnTank creates the player's tank at the bottom left of the grid
// Panics if a tank already exists
func (ctx *GameContext) SpawnTank() Entity {
	if ctx.TankEntity != 0 && ctx.World.Exists(ctx.TankEntity) {
		panic(fmt.Sprintf("engine: second tank, entity %d already exists", ctx.TankEntity))
	}

	cfg := ctx.Config
	sprite := components.NewSprite(asset.Tank, kindStyles[components.KindTank], kindZ[components.KindTank])
	x, y := ctx.Grid.Clamp(vmath.Box{
		X:      3,
		Y:      ctx.Grid.Height - sprite.Height(),
		Width:  sprite.Width(),
		Height: sprite.Height(),
	})

	w := ctx.World
	eb := w.NewEntity()
	With(eb, w.Identities, components.IdentityComponent{Kind: components.KindTank, Faction: components.FactionPlayer})
	With(eb, w.Positions, components.PositionComponent{X: float64(x), Y: float64(y)})
	With(eb, w.Velocities, components.VelocityComponent{})
	With(eb, w.Sprites, sprite)
	With(eb, w.Healths, components.HealthComponent{Current: cfg.Tank.Health, Max: cfg.Tank.Health})
	With(eb, w.Damages, components.DamageComponent{Amount: cfg.Damage.Tank})
	With(eb, w.Edges, components.EdgeComponent{Strategy: cfg.EdgeStrategy(components.KindTank)})
	With(eb, w.Weapons, components.WeaponComponent{})
	ctx.TankEntity = eb.Build()

	ctx.Logger.Debug().Uint64("entity", uint64(ctx.TankEntity)).Int("x", x).Int("y", y).Msg("tank spawned")
	return ctx.TankEntity
}

// SpawnMartian creates a martian with the given label at (x, y) moving with vel
// Returns false without spawning when the martian cap is reached or the label does not fit
func (ctx *GameContext) SpawnMartian(lines []string, x, y float64, vel vmath.Vec) (Entity, bool) {
	cfg := ctx.Config
	w := ctx.World
	if w.CountKind(components.KindMartian) >= cfg.Enemies.Max {
		return 0, false
	}

	sprite := components.NewSprite(lines, kindStyles[components.KindMartian], kindZ[components.KindMartian])
	pos := components.PositionComponent{X: x, Y: y}
	if !ctx.Grid.InBounds(sprite.Box(pos)) {
		return 0, false
	}

	now := ctx.TimeProvider.Now()
	bomber := components.BomberComponent{
		Interval: cfg.Enemies.BombInterval,
		Jitter:   cfg.Enemies.BombJitter,
	}
	if bomber.Interval > 0 {
		bomber.NextDrop = now.Add(ctx.BombDelay(bomber.Interval, bomber.Jitter))
	}

	eb := w.NewEntity()
	With(eb, w.Identities, components.IdentityComponent{Kind: components.KindMartian, Faction: components.FactionEnemy})
	With(eb, w.Positions, pos)
	With(eb, w.Velocities, components.VelocityComponent{X: vel.X, Y: vel.Y})
	With(eb, w.Sprites, sprite)
	With(eb, w.Healths, components.HealthComponent{Current: cfg.Enemies.Health, Max: cfg.Enemies.Health})
	With(eb, w.Damages, components.DamageComponent{Amount: cfg.Damage.Martian})
	With(eb, w.Edges, components.EdgeComponent{Strategy: cfg.EdgeStrategy(components.KindMartian)})
	With(eb, w.Bombers, bomber)
	return eb.Build(), true
}

// SpawnProjectile creates a laser, rocket or bomb owned by a faction
// Returns false without spawning when the projectile cap is reached or the glyph would start off-grid
func (ctx *GameContext) SpawnProjectile(kind components.Kind, owner components.Faction, x, y float64, vel vmath.Vec) (Entity, bool) {
	if !kind.IsProjectile() {
		panic(fmt.Sprintf("engine: %s is not a projectile", kind))
	}

	cfg := ctx.Config
	w := ctx.World
	if w.CountProjectiles() >= cfg.Projectile.Max {
		return 0, false
	}

	sprite := components.NewSprite(projectileGlyphs[kind], kindStyles[kind], kindZ[kind])
	pos := components.PositionComponent{X: x, Y: y}
	if !ctx.Grid.InBounds(sprite.Box(pos)) {
		return 0, false
	}

	eb := w.NewEntity()
	With(eb, w.Identities, components.IdentityComponent{Kind: kind, Faction: owner})
	With(eb, w.Positions, pos)
	With(eb, w.Velocities, components.VelocityComponent{X: vel.X, Y: vel.Y})
	With(eb, w.Sprites, sprite)
	With(eb, w.Damages, components.DamageComponent{Amount: cfg.DamageFor(kind)})
	With(eb, w.Edges, components.EdgeComponent{Strategy: cfg.EdgeStrategy(kind)})
	With(eb, w.Projectiles, components.ProjectileComponent{Owner: owner})
	With(eb, w.Lifetimes, components.LifetimeComponent{ExpiresAt: ctx.State.Tick + cfg.Projectile.LifetimeTicks})
	e := eb.Build()

	ctx.Metrics.Shot(kind.String())
	return e, true
}
