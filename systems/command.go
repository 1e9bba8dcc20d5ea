package systems

import (
	"time"

	"github.com/lixenwraith/martians/components"
	"github.com/lixenwraith/martians/constants"
	"github.com/lixenwraith/martians/engine"
	"github.com/lixenwraith/martians/vmath"
)

// Muzzle offsets relative to the tank's top-left
const (
	laserOffsetX  = 5
	laserOffsetY  = -1
	rocketOffsetX = 2
	rocketOffsetY = -3
)

// CommandSystem applies the player's pending commands to the tank
type CommandSystem struct {
	ctx *engine.GameContext
}

// NewCommandSystem creates a new command system
func NewCommandSystem(ctx *engine.GameContext) *CommandSystem {
	return &CommandSystem{ctx: ctx}
}

// Priority returns the system's priority
func (s *CommandSystem) Priority() int {
	return constants.PriorityCommand
}

// Update drains the commands queued since the previous tick
func (s *CommandSystem) Update(world *engine.World, dt time.Duration) {
	for _, cmd := range s.ctx.TakeCommands() {
		if s.ctx.State.Phase().Terminal() {
			return
		}
		s.apply(world, cmd)
	}
}

func (s *CommandSystem) apply(world *engine.World, cmd engine.Command) {
	if cmd == engine.CmdQuit {
		s.ctx.State.TransitionPhase(engine.PhaseQuit)
		return
	}

	tank := s.ctx.TankEntity
	if tank == 0 || !world.Alive(tank) {
		return
	}
	speed := s.ctx.Config.Tank.Speed

	switch cmd {
	case engine.CmdMoveLeft:
		world.Velocities.Set(tank, components.VelocityComponent{X: -speed})
	case engine.CmdMoveRight:
		world.Velocities.Set(tank, components.VelocityComponent{X: speed})
	case engine.CmdStop:
		world.Velocities.Set(tank, components.VelocityComponent{})
	case engine.CmdFireLaser:
		s.fireLaser(world, tank)
	case engine.CmdFireRocket:
		s.fireRocket(world, tank)
	}
}

// fireLaser shoots diagonally up-right unless the gun is reloading
func (s *CommandSystem) fireLaser(world *engine.World, tank engine.Entity) {
	now := s.ctx.TimeProvider.Now()
	weapon, _ := world.Weapons.Get(tank)
	if !weapon.LastLaser.IsZero() && now.Sub(weapon.LastLaser) < s.ctx.Config.Tank.LaserReload {
		return
	}

	pos := world.Positions.MustGet(tank)
	_, ok := s.ctx.SpawnProjectile(components.KindLaser, components.FactionPlayer,
		pos.X+laserOffsetX, pos.Y+laserOffsetY,
		vmath.Heading(1, -1, s.ctx.Config.Projectile.LaserSpeed))
	if !ok {
		return
	}

	weapon.LastLaser = now
	world.Weapons.Set(tank, weapon)
}

// fireRocket shoots straight up, rockets have no reload
func (s *CommandSystem) fireRocket(world *engine.World, tank engine.Entity) {
	pos := world.Positions.MustGet(tank)
	s.ctx.SpawnProjectile(components.KindRocket, components.FactionPlayer,
		pos.X+rocketOffsetX, pos.Y+rocketOffsetY,
		vmath.Heading(0, -1, s.ctx.Config.Projectile.RocketSpeed))
}
