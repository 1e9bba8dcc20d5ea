package engine

import (
	"context"
	"time"
)

// FrameRenderer draws the current state once per tick
// Implementations only read the context
type FrameRenderer interface {
	Render(ctx *GameContext)
}

// Result summarizes a finished game
type Result struct {
	Phase GamePhase
	Score int
	Kills int
	Ticks uint64
}

// Game drives the fixed-tick simulation loop
type Game struct {
	ctx    *GameContext
	source CommandSource
	frame  FrameRenderer

	// sleep waits for d or until ctx is done, returns false on cancellation
	sleep func(ctx context.Context, d time.Duration) bool
}

// NewGame creates a loop over ctx; source and frame may be nil for headless runs
func NewGame(ctx *GameContext, source CommandSource, frame FrameRenderer) *Game {
	return &Game{
		ctx:    ctx,
		source: source,
		frame:  frame,
		sleep:  sleepContext,
	}
}

// Context returns the game's context
func (g *Game) Context() *GameContext {
	return g.ctx
}

// Step executes one tick: commands, movement, collision, spawner, lifetime and cull
func (g *Game) Step() {
	if g.source != nil {
		g.ctx.Enqueue(g.source.Drain()...)
	}

	g.ctx.State.Tick++
	g.ctx.World.Update(g.ctx.Config.Loop.Tick)
	g.ctx.Metrics.Tick()
}

// Run ticks until the game ends or ctx is canceled
// A won or lost game keeps its final frame on screen for the banner wait
func (g *Game) Run(ctx context.Context) Result {
	state := g.ctx.State
	tick := g.ctx.Config.Loop.Tick
	tp := g.ctx.TimeProvider

	g.ctx.Logger.Info().
		Int("width", g.ctx.Grid.Width).
		Int("height", g.ctx.Grid.Height).
		Dur("tick", tick).
		Msg("game started")

	deadline := tp.Now()
	for !state.Phase().Terminal() {
		if ctx.Err() != nil {
			state.TransitionPhase(PhaseQuit)
			break
		}

		g.Step()
		g.render()

		if state.Phase().Terminal() {
			break
		}

		// Sleep to the next deadline, late ticks reset the schedule instead of bursting
		deadline = deadline.Add(tick)
		wait := deadline.Sub(tp.Now())
		if wait <= 0 {
			deadline = tp.Now()
			continue
		}
		if !g.sleep(ctx, wait) {
			state.TransitionPhase(PhaseQuit)
		}
	}

	switch state.Phase() {
	case PhaseWon, PhaseLost:
		g.render()
		g.sleep(ctx, g.ctx.Config.Loop.EndBannerWait)
	}

	result := Result{
		Phase: state.Phase(),
		Score: state.Score,
		Kills: state.Kills,
		Ticks: state.Tick,
	}

	g.ctx.Logger.Info().
		Str("phase", result.Phase.String()).
		Int("score", result.Score).
		Int("kills", result.Kills).
		Uint64("ticks", result.Ticks).
		Msg("game over")

	return result
}

func (g *Game) render() {
	if g.frame != nil {
		g.frame.Render(g.ctx)
	}
}

func sleepContext(ctx context.Context, d time.Duration) bool {
	timer := time.NewTimer(d)
	defer timer.Stop()
	select {
	case <-timer.C:
		return true
	case <-ctx.Done():
		return false
	}
}
