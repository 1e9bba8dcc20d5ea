package systems

import (
	"math/rand"
	"testing"
	"time"

	"github.com/rs/zerolog"

	"github.com/lixenwraith/martians/components"
	"github.com/lixenwraith/martians/config"
	"github.com/lixenwraith/martians/engine"
	"github.com/lixenwraith/martians/telemetry"
	"github.com/lixenwraith/martians/vmath"
)

var testEpoch = time.Date(2025, 1, 1, 0, 0, 0, 0, time.UTC)

// newTestContext returns a context on a width x height grid with the given config tweaks applied
func newTestContext(t *testing.T, width, height int, tweak func(cfg *config.Config)) (*engine.GameContext, *engine.MockTimeProvider) {
	t.Helper()
	cfg := config.Default()
	if tweak != nil {
		tweak(cfg)
		if err := cfg.Validate(); err != nil {
			t.Fatalf("invalid test config: %v", err)
		}
	}
	clock := engine.NewMockTimeProvider(testEpoch)
	ctx := engine.NewGameContext(cfg, vmath.NewGrid(width, height), clock,
		rand.New(rand.NewSource(42)), zerolog.Nop(), telemetry.Nop())
	return ctx, clock
}

// tick runs the given systems once, in priority order
func tick(ctx *engine.GameContext, systems ...engine.System) {
	w := engine.NewWorld()
	for _, s := range systems {
		w.AddSystem(s)
	}
	ctx.State.Tick++
	for _, s := range w.Systems() {
		s.Update(ctx.World, ctx.Config.Loop.Tick)
	}
}

func mustSpawnProjectile(t *testing.T, ctx *engine.GameContext, kind components.Kind, owner components.Faction, x, y float64, vel vmath.Vec) engine.Entity {
	t.Helper()
	e, ok := ctx.SpawnProjectile(kind, owner, x, y, vel)
	if !ok {
		t.Fatalf("spawn %s at (%v, %v) rejected", kind, x, y)
	}
	return e
}

func mustSpawnMartian(t *testing.T, ctx *engine.GameContext, lines []string, x, y float64, vel vmath.Vec) engine.Entity {
	t.Helper()
	e, ok := ctx.SpawnMartian(lines, x, y, vel)
	if !ok {
		t.Fatalf("spawn martian at (%v, %v) rejected", x, y)
	}
	return e
}

func placeAt(ctx *engine.GameContext, e engine.Entity, x, y float64) {
	ctx.World.Positions.Set(e, components.PositionComponent{X: x, Y: y})
}

func boxOf(ctx *engine.GameContext, e engine.Entity) vmath.Box {
	return ctx.World.Sprites.MustGet(e).Box(ctx.World.Positions.MustGet(e))
}
