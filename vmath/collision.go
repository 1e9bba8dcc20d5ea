package vmath

// Overlaps checks if two footprints share at least one cell
// Rectangle test only, blank cells inside a label still count
func Overlaps(a, b Box) bool {
	if a.X >= b.Right() || b.X >= a.Right() {
		return false
	}
	if a.Y >= b.Bottom() || b.Y >= a.Bottom() {
		return false
	}
	return true
}
