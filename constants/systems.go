package constants

// System Execution Priorities (lower runs first)
// Order follows the tick sequence: commands, movement, collision, spawner, purge
const (
	PriorityCommand   = 10
	PriorityMovement  = 20
	PriorityCollision = 30
	PrioritySpawn     = 40
	PriorityLifetime  = 50
	PriorityCull      = 100
)
