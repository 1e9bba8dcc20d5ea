package render

import (
	"sort"

	"github.com/lixenwraith/martians/asset"
	"github.com/lixenwraith/martians/engine"
)

// Frame composes one frame from the simulation state
// It only reads the context
type Frame struct {
	r Renderer
}

// NewFrame creates a frame composer drawing on r
func NewFrame(r Renderer) *Frame {
	return &Frame{r: r}
}

type drawItem struct {
	entity engine.Entity
	z      int
}

// Render draws clear, entities by z-order, HUD, the outcome banner, then flushes
func (f *Frame) Render(ctx *engine.GameContext) {
	w := ctx.World
	f.r.Clear()

	entities := w.Query().
		With(w.Identities).
		With(w.Positions).
		With(w.Sprites).
		Without(w.Deaths).
		Execute()

	items := make([]drawItem, 0, len(entities))
	for _, e := range entities {
		items = append(items, drawItem{entity: e, z: w.Sprites.MustGet(e).Z})
	}
	// Higher z on top, creation order breaks ties
	sort.SliceStable(items, func(i, j int) bool {
		if items[i].z != items[j].z {
			return items[i].z < items[j].z
		}
		return items[i].entity < items[j].entity
	})

	for _, it := range items {
		sprite := w.Sprites.MustGet(it.entity)
		x, y := w.Positions.MustGet(it.entity).Cell()
		f.r.Draw(w.Identities.MustGet(it.entity).Kind, sprite.Lines, x, y, sprite.Style)
	}

	health, maxHealth := 0, ctx.Config.Tank.Health
	if h, ok := w.Healths.Get(ctx.TankEntity); ok {
		health, maxHealth = h.Current, h.Max
	}
	f.r.DrawHUD(health, maxHealth, ctx.State.Score)

	switch ctx.State.Phase() {
	case engine.PhaseLost:
		f.r.DrawBanner(asset.YouLose)
	case engine.PhaseWon:
		f.r.DrawBanner(asset.GameWin)
	}

	f.r.Flush()
}
