package systems

import (
	"time"

	"github.com/lixenwraith/martians/asset"
	"github.com/lixenwraith/martians/components"
	"github.com/lixenwraith/martians/constants"
	"github.com/lixenwraith/martians/engine"
	"github.com/lixenwraith/martians/vmath"
)

// Formation layout in cells
const (
	formationTop  = 1
	formationLeft = 2
	formationGapX = 2
	formationGapY = 1
)

// SpawnSystem runs the enemy wave: initial formation, bomb drops and depletion
type SpawnSystem struct {
	ctx *engine.GameContext
}

// NewSpawnSystem creates a new spawn system
func NewSpawnSystem(ctx *engine.GameContext) *SpawnSystem {
	return &SpawnSystem{ctx: ctx}
}

// Priority returns the system's priority
func (s *SpawnSystem) Priority() int {
	return constants.PrioritySpawn
}

// Update advances the wave state machine
func (s *SpawnSystem) Update(world *engine.World, dt time.Duration) {
	state := s.ctx.State
	if state.Phase().Terminal() {
		return
	}

	switch state.Wave() {
	case engine.WaveSpawning:
		n := s.spawnFormation()
		s.ctx.Logger.Info().
			Int("requested", s.ctx.Config.Enemies.InitialCount).
			Int("spawned", n).
			Msg("wave spawned")
		state.AdvanceWave(engine.WaveSteady)

	case engine.WaveSteady:
		if world.CountKind(components.KindMartian) == 0 {
			state.AdvanceWave(engine.WaveDepleted)
			state.TransitionPhase(engine.PhaseWon)
			return
		}
		s.dropBombs(world)
	}
}

// spawnFormation lays martians out in rows from the top left, returns how many fit
func (s *SpawnSystem) spawnFormation() int {
	cfg := s.ctx.Config.Enemies
	grid := s.ctx.Grid
	rng := s.ctx.Rand

	x, y := formationLeft, formationTop
	rowHeight := 0
	spawned := 0

	for i := 0; i < cfg.InitialCount; i++ {
		lines := asset.MartianStyles[rng.Intn(len(asset.MartianStyles))]
		w, h := len(lines[0]), len(lines)

		if x+w > grid.Width {
			x = formationLeft
			y += rowHeight + formationGapY
			rowHeight = 0
		}
		if y+h > grid.Height {
			s.ctx.Logger.Warn().Int("spawned", spawned).Msg("formation does not fit the grid")
			break
		}

		dir := 1.0
		if rng.Intn(2) == 0 {
			dir = -1.0
		}
		vel := vmath.Heading(dir, cfg.Drift, cfg.Speed)

		if _, ok := s.ctx.SpawnMartian(lines, float64(x), float64(y), vel); ok {
			spawned++
		}
		x += w + formationGapX
		rowHeight = max(rowHeight, h)
	}
	return spawned
}

// dropBombs releases a bomb below every martian whose drop is due
func (s *SpawnSystem) dropBombs(world *engine.World) {
	now := s.ctx.TimeProvider.Now()
	speed := s.ctx.Config.Projectile.BombSpeed

	martians := world.Query().
		With(world.Bombers).
		With(world.Positions).
		With(world.Sprites).
		Without(world.Deaths).
		Execute()

	for _, e := range martians {
		bomber := world.Bombers.MustGet(e)
		if bomber.Interval == 0 || !now.After(bomber.NextDrop) {
			continue
		}

		pos := world.Positions.MustGet(e)
		sprite := world.Sprites.MustGet(e)
		s.ctx.SpawnProjectile(components.KindBomb, components.FactionEnemy,
			pos.X+float64(sprite.Width()/2), pos.Y+float64(sprite.Height()),
			vmath.Heading(0, 1, speed))

		bomber.NextDrop = now.Add(s.ctx.BombDelay(bomber.Interval, bomber.Jitter))
		world.Bombers.Set(e, bomber)
	}
}
