package vmath

import "math"

// Vec is a 2D float vector in cells (or cells per tick)
type Vec struct {
	X, Y float64
}

// Scale returns v * s
func (v Vec) Scale(s float64) Vec {
	return Vec{X: v.X * s, Y: v.Y * s}
}

// Length returns the euclidean magnitude
func (v Vec) Length() float64 {
	return math.Hypot(v.X, v.Y)
}

// Normalize returns the unit vector, zero-safe
func (v Vec) Normalize() Vec {
	l := v.Length()
	if l < 1e-9 {
		return Vec{}
	}
	return Vec{X: v.X / l, Y: v.Y / l}
}

// Heading returns a velocity of the given speed along direction (dx, dy)
// Panics on a zero direction, which has no heading
func Heading(dx, dy, speed float64) Vec {
	dir := Vec{X: dx, Y: dy}.Normalize()
	if dir == (Vec{}) {
		panic("vmath: heading direction too small")
	}
	return dir.Scale(speed)
}

// Cell rounds a float coordinate to the grid cell it is drawn in
func Cell(f float64) int {
	return int(math.Round(f))
}
