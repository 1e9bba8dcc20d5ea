package systems

import (
	"testing"

	"github.com/lixenwraith/martians/components"
	"github.com/lixenwraith/martians/engine"
)

func TestTankMovementCommands(t *testing.T) {
	ctx, _ := newTestContext(t, 40, 20, nil)
	tank := ctx.SpawnTank()
	speed := ctx.Config.Tank.Speed

	tests := []struct {
		cmd  engine.Command
		want float64
	}{
		{engine.CmdMoveRight, speed},
		{engine.CmdMoveLeft, -speed},
		{engine.CmdStop, 0},
	}

	for _, tt := range tests {
		t.Run(tt.cmd.String(), func(t *testing.T) {
			ctx.Enqueue(tt.cmd)
			tick(ctx, NewCommandSystem(ctx))
			if v := ctx.World.Velocities.MustGet(tank); v.X != tt.want || v.Y != 0 {
				t.Errorf("velocity = %+v, want (%v, 0)", v, tt.want)
			}
			// Velocity persists without further commands
			tick(ctx, NewCommandSystem(ctx))
			if v := ctx.World.Velocities.MustGet(tank); v.X != tt.want {
				t.Errorf("velocity after idle tick = %+v, want %v", v, tt.want)
			}
		})
	}
}

// Two laser shots within the reload interval produce one laser
func TestLaserReload(t *testing.T) {
	ctx, clock := newTestContext(t, 40, 20, nil)
	ctx.SpawnTank()

	ctx.Enqueue(engine.CmdFireLaser, engine.CmdFireLaser)
	tick(ctx, NewCommandSystem(ctx))
	if n := ctx.World.CountProjectiles(); n != 1 {
		t.Fatalf("lasers = %d, want 1", n)
	}

	clock.Advance(ctx.Config.Tank.LaserReload / 2)
	ctx.Enqueue(engine.CmdFireLaser)
	tick(ctx, NewCommandSystem(ctx))
	if n := ctx.World.CountProjectiles(); n != 1 {
		t.Fatalf("lasers during reload = %d, want 1", n)
	}

	clock.Advance(ctx.Config.Tank.LaserReload / 2)
	ctx.Enqueue(engine.CmdFireLaser)
	tick(ctx, NewCommandSystem(ctx))
	if n := ctx.World.CountProjectiles(); n != 2 {
		t.Errorf("lasers after reload = %d, want 2", n)
	}
}

func TestLaserFiredUpRightAboveTank(t *testing.T) {
	ctx, _ := newTestContext(t, 40, 20, nil)
	tank := ctx.SpawnTank()

	ctx.Enqueue(engine.CmdFireLaser)
	tick(ctx, NewCommandSystem(ctx))

	lasers := ctx.World.Query().With(ctx.World.Projectiles).Execute()
	if len(lasers) != 1 {
		t.Fatalf("lasers = %d, want 1", len(lasers))
	}
	laser := lasers[0]
	if id := ctx.World.Identities.MustGet(laser); id.Kind != components.KindLaser || id.Faction != components.FactionPlayer {
		t.Errorf("identity = %+v", id)
	}
	if v := ctx.World.Velocities.MustGet(laser); v.X <= 0 || v.Y >= 0 || v.X != -v.Y {
		t.Errorf("velocity = %+v, want diagonal up-right", v)
	}
	if boxOf(ctx, laser).Bottom() > boxOf(ctx, tank).Y {
		t.Error("laser must start above the tank")
	}
}

func TestRocketUnthrottled(t *testing.T) {
	ctx, _ := newTestContext(t, 40, 20, nil)
	tank := ctx.SpawnTank()

	ctx.Enqueue(engine.CmdFireRocket, engine.CmdFireRocket, engine.CmdFireRocket)
	tick(ctx, NewCommandSystem(ctx))

	rockets := ctx.World.Query().With(ctx.World.Projectiles).Execute()
	if len(rockets) != 3 {
		t.Fatalf("rockets = %d, want 3", len(rockets))
	}
	for _, r := range rockets {
		if v := ctx.World.Velocities.MustGet(r); v.X != 0 || v.Y != -ctx.Config.Projectile.RocketSpeed {
			t.Errorf("rocket velocity = %+v, want straight up", v)
		}
		if boxOf(ctx, r).Bottom() > boxOf(ctx, tank).Y {
			t.Error("rocket must start above the tank")
		}
	}
}

func TestQuitCommand(t *testing.T) {
	ctx, _ := newTestContext(t, 40, 20, nil)
	ctx.SpawnTank()

	ctx.Enqueue(engine.CmdQuit, engine.CmdFireRocket)
	tick(ctx, NewCommandSystem(ctx))

	if ctx.State.Phase() != engine.PhaseQuit {
		t.Errorf("phase = %v, want Quit", ctx.State.Phase())
	}
	if n := ctx.World.CountProjectiles(); n != 0 {
		t.Errorf("commands after quit applied, projectiles = %d", n)
	}
}

func TestCommandsWithoutTankIgnored(t *testing.T) {
	ctx, _ := newTestContext(t, 40, 20, nil)
	ctx.Enqueue(engine.CmdMoveLeft, engine.CmdFireLaser, engine.CmdFireRocket)
	tick(ctx, NewCommandSystem(ctx))
	if n := ctx.World.CountProjectiles(); n != 0 {
		t.Errorf("projectiles = %d, want 0", n)
	}
}
