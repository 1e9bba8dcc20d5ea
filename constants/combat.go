package constants

import "time"

// Health
const (
	TankHealth    = 100
	MartianHealth = 30
)

// Damage dealt on collision, per kind
// Ordering laser < rocket < bomb is validated at config load
const (
	LaserDamage   = 10
	RocketDamage  = 20
	BombDamage    = 25
	TankDamage    = 5 // contact damage when a martian rams the tank
	MartianDamage = 5
)

// Scoring
const (
	// MartianScore is awarded to the player per destroyed martian
	MartianScore = 100
)

// Weapons
const (
	// LaserReload is the minimum real time between two laser shots from the same owner
	LaserReload = 500 * time.Millisecond

	// LaserSpeed is cells per tick along the laser's diagonal heading
	LaserSpeed = 1.5

	// RocketSpeed is cells per tick, straight up
	RocketSpeed = 1.0

	// BombSpeed is cells per tick, straight down
	BombSpeed = 1.0

	// ProjectileLifetimeTicks removes projectiles that never leave the grid (bouncing lasers)
	ProjectileLifetimeTicks = 200
)

// Enemy Wave
const (
	// EnemiesInitialCount is the number of martians created at game start
	EnemiesInitialCount = 6

	// MartianSpeed is cells per tick along the martian's heading
	MartianSpeed = 0.7

	// MartianDrift is the downward component of the martian heading before normalization
	MartianDrift = 0.05

	// BombInterval is the mean time between bomb drops of a single martian
	BombInterval = 2 * time.Second

	// BombJitter is the maximum random deviation applied to BombInterval
	BombJitter = 1 * time.Second
)

// Tank
const (
	// TankSpeed is the horizontal speed set by a move command, cells per tick
	TankSpeed = 0.5
)
