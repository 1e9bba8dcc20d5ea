package components

// DeathReason records why an entity was removed
type DeathReason uint8

const (
	ReasonKilled  DeathReason = iota // Health reached zero
	ReasonImpact                     // Projectile spent on a target
	ReasonEdge                       // Left the grid with EdgeDisappear
	ReasonExpired                    // Lifetime ran out
)

func (r DeathReason) String() string {
	switch r {
	case ReasonKilled:
		return "killed"
	case ReasonImpact:
		return "impact"
	case ReasonEdge:
		return "edge"
	case ReasonExpired:
		return "expired"
	}
	return "unknown"
}

// DeathComponent tags an entity to be destroyed by CullSystem after the tick's game logic
type DeathComponent struct {
	Reason DeathReason
}
