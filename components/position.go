package components

import "github.com/lixenwraith/martians/vmath"

// PositionComponent is the top-left corner of the entity's label, in cells
// Tracked in floating point for smooth slow movement, rounded when drawn
type PositionComponent struct {
	X, Y float64
}

// Cell returns the grid cell the corner is drawn at
func (p PositionComponent) Cell() (int, int) {
	return vmath.Cell(p.X), vmath.Cell(p.Y)
}

// VelocityComponent is the displacement applied once per tick
type VelocityComponent struct {
	X, Y float64
}

// IsZero reports a stationary entity
func (v VelocityComponent) IsZero() bool {
	return v.X == 0 && v.Y == 0
}
