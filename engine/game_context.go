package engine

import (
	"math/rand"
	"time"

	"github.com/rs/zerolog"

	"github.com/lixenwraith/martians/config"
	"github.com/lixenwraith/martians/telemetry"
	"github.com/lixenwraith/martians/vmath"
)

// GameContext holds all game state including the ECS world
// Owned by the tick loop, no field is safe for concurrent access
type GameContext struct {
	World *World
	State *GameState

	Config *config.Config
	Grid   vmath.Grid // Play field, HUD rows excluded

	TimeProvider TimeProvider
	Rand         *rand.Rand // Seeded by the launcher, fixed in tests
	Logger       zerolog.Logger
	Metrics      *telemetry.Metrics

	TankEntity Entity // Zero until the tank is spawned

	pending []Command
}

// NewGameContext creates a context with an empty world
// A nil metrics is replaced by a no-op recorder
func NewGameContext(cfg *config.Config, grid vmath.Grid, tp TimeProvider, rng *rand.Rand, logger zerolog.Logger, metrics *telemetry.Metrics) *GameContext {
	if metrics == nil {
		metrics = telemetry.Nop()
	}
	return &GameContext{
		World:        NewWorld(),
		State:        NewGameState(logger),
		Config:       cfg,
		Grid:         grid,
		TimeProvider: tp,
		Rand:         rng,
		Logger:       logger,
		Metrics:      metrics,
	}
}

// Enqueue adds commands to be applied on the next tick
func (ctx *GameContext) Enqueue(cmds ...Command) {
	ctx.pending = append(ctx.pending, cmds...)
}

// TakeCommands returns and clears the commands pending for this tick
func (ctx *GameContext) TakeCommands() []Command {
	cmds := ctx.pending
	ctx.pending = nil
	return cmds
}

// BombDelay returns the next drop delay: interval plus uniform jitter in [-jitter, +jitter]
// Never negative
func (ctx *GameContext) BombDelay(interval, jitter time.Duration) time.Duration {
	d := interval
	if jitter > 0 {
		d += time.Duration(ctx.Rand.Int63n(int64(2*jitter)+1)) - jitter
	}
	if d < 0 {
		d = 0
	}
	return d
}
