package components

import "time"

// DamageComponent is subtracted from the opposite entity's health on collision
type DamageComponent struct {
	Amount int
}

// ProjectileComponent marks lasers, rockets and bombs
type ProjectileComponent struct {
	Owner Faction // Side that fired it, only player shots score kills
}

// LifetimeComponent removes an entity once the tick counter passes ExpiresAt
type LifetimeComponent struct {
	ExpiresAt uint64
}

// WeaponComponent tracks reload state of the tank's guns
type WeaponComponent struct {
	LastLaser time.Time // Zero until the first shot
}

// BomberComponent schedules bomb drops of a martian
type BomberComponent struct {
	Interval time.Duration // Mean time between drops, zero disables dropping
	Jitter   time.Duration // Maximum deviation from Interval
	NextDrop time.Time
}
