package constants

import "time"

// Game Loop & Engine Timing
const (
	// FramesPerSecond is the target tick rate of the simulation loop
	FramesPerSecond = 10

	// TickInterval is the fixed duration of one simulation tick
	TickInterval = time.Second / FramesPerSecond

	// EndBannerWait is how long the win/lose banner stays on screen before the loop returns
	EndBannerWait = 3 * time.Second
)

// Grid Dimensions
// Zero means "use the terminal size at startup"
const (
	GridWidth  = 0
	GridHeight = 0

	// MinGridWidth and MinGridHeight fit the enemy formation and the tank
	MinGridWidth  = 40
	MinGridHeight = 20

	// HUDRows is the number of terminal rows above the play field reserved for the HUD
	HUDRows = 1
)

// ECS & Resource Limits
const (
	// MaxMartians caps concurrently live martians
	MaxMartians = 64

	// MaxProjectiles caps concurrently live lasers, rockets and bombs
	MaxProjectiles = 256

	// InputQueueSize is the capacity of the pending command queue
	InputQueueSize = 8
)
