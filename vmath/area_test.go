package vmath

import "testing"

func TestGridInBounds(t *testing.T) {
	g := NewGrid(30, 20)
	tests := []struct {
		name string
		box  Box
		want bool
	}{
		{"Single cell origin", Box{0, 0, 1, 1}, true},
		{"Bottom right corner", Box{29, 19, 1, 1}, true},
		{"Exactly fills grid", Box{0, 0, 30, 20}, true},
		{"Past right edge", Box{28, 5, 3, 1}, false},
		{"Past bottom edge", Box{5, 18, 1, 3}, false},
		{"Negative x", Box{-1, 5, 1, 1}, false},
		{"Negative y", Box{5, -1, 1, 1}, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := g.InBounds(tt.box); got != tt.want {
				t.Errorf("InBounds(%+v) = %v, want %v", tt.box, got, tt.want)
			}
		})
	}
}

func TestClassifyEdgeCrossing(t *testing.T) {
	g := NewGrid(30, 20)
	tests := []struct {
		name string
		box  Box
		want Edge
	}{
		{"Inside", Box{10, 10, 3, 3}, EdgeNone},
		{"Top", Box{10, -1, 3, 3}, EdgeTop},
		{"Bottom", Box{10, 18, 3, 3}, EdgeBottom},
		{"Left", Box{-2, 10, 3, 3}, EdgeLeft},
		{"Right", Box{28, 10, 3, 3}, EdgeRight},
		{"Top right corner", Box{29, -1, 3, 3}, EdgeTop | EdgeRight},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := g.ClassifyEdgeCrossing(tt.box)
			if got != tt.want {
				t.Errorf("ClassifyEdgeCrossing(%+v) = %v, want %v", tt.box, got, tt.want)
			}
			if (got == EdgeNone) != g.InBounds(tt.box) {
				t.Errorf("ClassifyEdgeCrossing and InBounds disagree for %+v", tt.box)
			}
		})
	}
}

func TestGridClamp(t *testing.T) {
	g := NewGrid(30, 20)
	tests := []struct {
		name         string
		box          Box
		wantX, wantY int
	}{
		{"Already inside", Box{5, 5, 3, 3}, 5, 5},
		{"Left overflow", Box{-4, 5, 3, 3}, 0, 5},
		{"Right overflow", Box{29, 5, 3, 3}, 27, 5},
		{"Top overflow", Box{5, -2, 3, 3}, 5, 0},
		{"Bottom overflow", Box{5, 19, 3, 3}, 5, 17},
		{"Larger than grid", Box{3, 3, 40, 3}, 0, 3},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			x, y := g.Clamp(tt.box)
			if x != tt.wantX || y != tt.wantY {
				t.Errorf("Clamp(%+v) = (%d,%d), want (%d,%d)", tt.box, x, y, tt.wantX, tt.wantY)
			}
		})
	}
}

func TestGridWrap(t *testing.T) {
	g := NewGrid(30, 20)

	x, y := g.Wrap(Box{-1, 5, 1, 1})
	if x != 29 || y != 5 {
		t.Errorf("Expected left exit to wrap to (29,5), got (%d,%d)", x, y)
	}

	x, y = g.Wrap(Box{10, 20, 1, 1})
	if x != 10 || y != 0 {
		t.Errorf("Expected bottom exit to wrap to (10,0), got (%d,%d)", x, y)
	}

	if !g.InBounds(Box{X: x, Y: y, Width: 1, Height: 1}) {
		t.Error("Wrapped box should be in bounds")
	}
}

func TestNewGridPanicsOnZero(t *testing.T) {
	defer func() {
		if recover() == nil {
			t.Error("Expected panic for zero-width grid")
		}
	}()
	NewGrid(0, 10)
}

func TestEdgeString(t *testing.T) {
	if s := (EdgeTop | EdgeLeft).String(); s != "top|left" {
		t.Errorf("Expected top|left, got %q", s)
	}
	if s := EdgeNone.String(); s != "none" {
		t.Errorf("Expected none, got %q", s)
	}
}
