// Package render draws the simulation state with tcell
package render

import (
	"github.com/gdamore/tcell/v2"

	"github.com/lixenwraith/martians/components"
)

// Renderer is the drawing surface a frame is composed on
// Coordinates are play field cells, the HUD is placed by the implementation
type Renderer interface {
	Clear()
	Draw(kind components.Kind, lines []string, x, y int, style tcell.Style)
	DrawHUD(health, maxHealth, score int)
	DrawBanner(lines []string)
	Flush()
}
