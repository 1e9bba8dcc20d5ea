package render

import (
	"fmt"

	"github.com/gdamore/tcell/v2"
	"github.com/mattn/go-runewidth"

	"github.com/lixenwraith/martians/components"
	"github.com/lixenwraith/martians/constants"
	"github.com/lixenwraith/martians/vmath"
)

var (
	hudStyle    = tcell.StyleDefault.Foreground(tcell.ColorWhite)
	healthStyle = tcell.StyleDefault.Foreground(tcell.ColorGreen)
	bannerStyle = tcell.StyleDefault.Foreground(tcell.ColorWhite).Bold(true)
)

// TerminalRenderer handles all terminal rendering
// The HUD occupies the top rows, the play field starts below it
type TerminalRenderer struct {
	screen tcell.Screen
	grid   vmath.Grid
	gameY  int
}

// NewTerminalRenderer creates a new terminal renderer for a play field of the grid's size
func NewTerminalRenderer(screen tcell.Screen, grid vmath.Grid) *TerminalRenderer {
	return &TerminalRenderer{
		screen: screen,
		grid:   grid,
		gameY:  constants.HUDRows,
	}
}

// Clear blanks the whole screen
func (r *TerminalRenderer) Clear() {
	r.screen.Clear()
}

// Draw writes a label with its top-left at play field cell (x, y)
// Spaces are transparent, cells outside the play field are clipped
func (r *TerminalRenderer) Draw(kind components.Kind, lines []string, x, y int, style tcell.Style) {
	for dy, line := range lines {
		r.drawLine(line, x, y+dy, style, false)
	}
}

// DrawHUD draws the health bar and score on the top row
func (r *TerminalRenderer) DrawHUD(health, maxHealth, score int) {
	x := r.putString(0, 0, constants.HealthLabel, hudStyle)

	filled := 0
	if maxHealth > 0 && health > 0 {
		// Round up so any remaining health shows at least one cell
		filled = (health*constants.HealthBarWidth + maxHealth - 1) / maxHealth
	}
	for i := 0; i < constants.HealthBarWidth; i++ {
		ch := ' '
		if i < filled {
			ch = constants.HealthBarChar
		}
		r.screen.SetContent(x+i, 0, ch, nil, healthStyle)
	}
	x += constants.HealthBarWidth + constants.ScoreOffset

	r.putString(x, 0, fmt.Sprintf("%s%d", constants.ScoreLabel, score), hudStyle)
}

// DrawBanner draws lines centered on the play field, spaces included
func (r *TerminalRenderer) DrawBanner(lines []string) {
	if len(lines) == 0 {
		return
	}
	w := runewidth.StringWidth(lines[0])
	x := (r.grid.Width - w) / 2
	y := (r.grid.Height - len(lines)) / 2
	for dy, line := range lines {
		r.drawLine(line, x, y+dy, bannerStyle, true)
	}
}

// Flush makes the frame visible
func (r *TerminalRenderer) Flush() {
	r.screen.Show()
}

func (r *TerminalRenderer) drawLine(line string, x, y int, style tcell.Style, opaque bool) {
	if y < 0 || y >= r.grid.Height {
		return
	}
	col := x
	for _, ch := range line {
		if (opaque || ch != ' ') && r.grid.Contains(col, y) {
			r.screen.SetContent(col, r.gameY+y, ch, nil, style)
		}
		col += runewidth.RuneWidth(ch)
	}
}

// putString writes text on a screen row and returns the column after it
func (r *TerminalRenderer) putString(x, y int, s string, style tcell.Style) int {
	for _, ch := range s {
		r.screen.SetContent(x, y, ch, nil, style)
		x += runewidth.RuneWidth(ch)
	}
	return x
}
