package vmath

// Box is a rectangular footprint on the grid
type Box struct {
	X, Y          int // Top-left corner
	Width, Height int // Dimensions (minimum 1x1)
}

// Right returns the column just past the box
func (b Box) Right() int { return b.X + b.Width }

// Bottom returns the row just past the box
func (b Box) Bottom() int { return b.Y + b.Height }

// Grid is the bounded play field, cells [0,Width) x [0,Height)
type Grid struct {
	Width, Height int
}

// NewGrid creates a grid, panics on non-positive dimensions
func NewGrid(width, height int) Grid {
	if width <= 0 || height <= 0 {
		panic("vmath: grid dimensions must be positive")
	}
	return Grid{Width: width, Height: height}
}

// Contains checks if a cell is on the grid
func (g Grid) Contains(x, y int) bool {
	return x >= 0 && x < g.Width && y >= 0 && y < g.Height
}

// InBounds checks if the whole box fits on the grid
func (g Grid) InBounds(b Box) bool {
	return b.X >= 0 && b.Y >= 0 && b.Right() <= g.Width && b.Bottom() <= g.Height
}

// ClassifyEdgeCrossing returns the set of edges the box sticks out of
// A diagonal exit through a corner reports both edges
func (g Grid) ClassifyEdgeCrossing(b Box) Edge {
	var e Edge
	if b.Y < 0 {
		e |= EdgeTop
	}
	if b.Bottom() > g.Height {
		e |= EdgeBottom
	}
	if b.X < 0 {
		e |= EdgeLeft
	}
	if b.Right() > g.Width {
		e |= EdgeRight
	}
	return e
}

// Clamp returns the top-left corner nearest to the box that keeps it fully in bounds
// Boxes larger than the grid are pinned to the origin
func (g Grid) Clamp(b Box) (x, y int) {
	x = clampInt(b.X, 0, g.Width-b.Width)
	y = clampInt(b.Y, 0, g.Height-b.Height)
	return x, y
}

// Wrap moves a box that left the grid to the opposite side
// Only the crossed axes are repositioned
func (g Grid) Wrap(b Box) (x, y int) {
	x, y = b.X, b.Y
	e := g.ClassifyEdgeCrossing(b)
	switch {
	case e.Has(EdgeLeft):
		x = g.Width - b.Width
	case e.Has(EdgeRight):
		x = 0
	}
	switch {
	case e.Has(EdgeTop):
		y = g.Height - b.Height
	case e.Has(EdgeBottom):
		y = 0
	}
	return g.Clamp(Box{X: x, Y: y, Width: b.Width, Height: b.Height})
}

func clampInt(v, lo, hi int) int {
	if hi < lo {
		return lo
	}
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}
