// Package systems holds the per-tick simulation steps
package systems

import "github.com/lixenwraith/martians/engine"

// Register adds every simulation system to the context's world
func Register(ctx *engine.GameContext) {
	ctx.World.AddSystem(NewCommandSystem(ctx))
	ctx.World.AddSystem(NewMovementSystem(ctx))
	ctx.World.AddSystem(NewCollisionSystem(ctx))
	ctx.World.AddSystem(NewSpawnSystem(ctx))
	ctx.World.AddSystem(NewLifetimeSystem(ctx))
	ctx.World.AddSystem(NewCullSystem(ctx))
}
