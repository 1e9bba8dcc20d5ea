package vmath

import "strings"

// Edge is a bitmask of grid boundaries
type Edge uint8

const (
	EdgeTop Edge = 1 << iota
	EdgeBottom
	EdgeLeft
	EdgeRight
)

// EdgeNone means the box is fully in bounds
const EdgeNone Edge = 0

// Has checks if all edges in other are set
func (e Edge) Has(other Edge) bool {
	return e&other == other && other != EdgeNone
}

// Horizontal reports a crossing of the left or right edge
func (e Edge) Horizontal() bool {
	return e&(EdgeLeft|EdgeRight) != 0
}

// Vertical reports a crossing of the top or bottom edge
func (e Edge) Vertical() bool {
	return e&(EdgeTop|EdgeBottom) != 0
}

func (e Edge) String() string {
	if e == EdgeNone {
		return "none"
	}
	var parts []string
	for _, n := range []struct {
		edge Edge
		name string
	}{
		{EdgeTop, "top"},
		{EdgeBottom, "bottom"},
		{EdgeLeft, "left"},
		{EdgeRight, "right"},
	} {
		if e.Has(n.edge) {
			parts = append(parts, n.name)
		}
	}
	return strings.Join(parts, "|")
}
