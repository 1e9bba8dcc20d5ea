package constants

// Edge strategy names accepted in configuration, per entity kind
const (
	EdgeDisappear = "disappear"
	EdgeBounce    = "bounce"
	EdgeWrap      = "wrap"
)

// Default edge strategy per kind
// The tank ignores its strategy and is always clamped
const (
	TankEdge    = EdgeBounce
	MartianEdge = EdgeBounce
	LaserEdge   = EdgeDisappear
	RocketEdge  = EdgeDisappear
	BombEdge    = EdgeDisappear
)

// Draw order, higher is drawn later (on top)
const (
	ZProjectile = 1
	ZMartian    = 2
	ZTank       = 2
	ZBanner     = 3
)
