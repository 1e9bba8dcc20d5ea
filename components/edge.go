package components

import "fmt"

// EdgeStrategy is what happens when an entity reaches the edge of the grid
type EdgeStrategy uint8

const (
	// EdgeUnset is the zero value, an entity moving with it is a programming error
	EdgeUnset EdgeStrategy = iota
	// EdgeDisappear quietly removes the entity
	EdgeDisappear
	// EdgeBounce reflects velocity as if hitting a wall
	EdgeBounce
	// EdgeWrap moves the entity to the opposite side
	EdgeWrap
)

func (s EdgeStrategy) String() string {
	switch s {
	case EdgeDisappear:
		return "disappear"
	case EdgeBounce:
		return "bounce"
	case EdgeWrap:
		return "wrap"
	}
	return "unset"
}

// ParseEdgeStrategy converts a configuration name into a strategy
func ParseEdgeStrategy(name string) (EdgeStrategy, error) {
	switch name {
	case "disappear":
		return EdgeDisappear, nil
	case "bounce":
		return EdgeBounce, nil
	case "wrap":
		return EdgeWrap, nil
	}
	return EdgeUnset, fmt.Errorf("unknown edge strategy %q", name)
}

// EdgeComponent holds the entity's edge strategy
type EdgeComponent struct {
	Strategy EdgeStrategy
}
