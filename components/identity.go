package components

import "fmt"

// Kind identifies what an entity is
type Kind uint8

const (
	KindTank Kind = iota
	KindMartian
	KindLaser
	KindRocket
	KindBomb
)

// Kinds lists every entity kind, in declaration order
var Kinds = []Kind{KindTank, KindMartian, KindLaser, KindRocket, KindBomb}

func (k Kind) String() string {
	switch k {
	case KindTank:
		return "tank"
	case KindMartian:
		return "martian"
	case KindLaser:
		return "laser"
	case KindRocket:
		return "rocket"
	case KindBomb:
		return "bomb"
	}
	return fmt.Sprintf("kind(%d)", uint8(k))
}

// IsProjectile reports lasers, rockets and bombs
func (k Kind) IsProjectile() bool {
	return k == KindLaser || k == KindRocket || k == KindBomb
}

// Faction determines which entities may collide
type Faction uint8

const (
	FactionPlayer Faction = iota
	FactionEnemy
)

func (f Faction) String() string {
	switch f {
	case FactionPlayer:
		return "player"
	case FactionEnemy:
		return "enemy"
	}
	return fmt.Sprintf("faction(%d)", uint8(f))
}

// Opposes reports whether two factions are hostile to each other
func (f Faction) Opposes(other Faction) bool {
	return f != other
}

// IdentityComponent tags every simulated entity with its kind and side
// Projectiles carry the faction of whoever fired them
type IdentityComponent struct {
	Kind    Kind
	Faction Faction
}
