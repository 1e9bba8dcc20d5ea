package components

import (
	"github.com/gdamore/tcell/v2"
	"github.com/lixenwraith/martians/vmath"
	"github.com/mattn/go-runewidth"
)

// SpriteComponent is the entity's label: the glyph lines drawn on screen
// Its width x height footprint is also the collision box
type SpriteComponent struct {
	Lines  []string
	Style  tcell.Style
	Z      int // Draw order, higher on top
	width  int
	height int
}

// NewSprite builds a sprite, panics if lines are empty or of different widths
func NewSprite(lines []string, style tcell.Style, z int) SpriteComponent {
	if len(lines) == 0 {
		panic("components: sprite needs at least one line")
	}
	w := runewidth.StringWidth(lines[0])
	for _, l := range lines[1:] {
		if runewidth.StringWidth(l) != w {
			panic("components: sprite lines must have equal width: " + l)
		}
	}
	if w == 0 {
		panic("components: sprite lines must not be empty")
	}
	return SpriteComponent{
		Lines:  lines,
		Style:  style,
		Z:      z,
		width:  w,
		height: len(lines),
	}
}

// Width returns the footprint width in cells
func (s SpriteComponent) Width() int { return s.width }

// Height returns the footprint height in cells
func (s SpriteComponent) Height() int { return s.height }

// Box returns the footprint at the given position
func (s SpriteComponent) Box(p PositionComponent) vmath.Box {
	x, y := p.Cell()
	return vmath.Box{X: x, Y: y, Width: s.width, Height: s.height}
}
