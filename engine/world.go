package engine

import (
	"time"

	"github.com/lixenwraith/martians/components"
)

// World contains all entities and their components
// All component stores are explicitly typed for compile-time type safety
type World struct {
	nextEntityID Entity

	// Component Stores (Public for direct system access)
	Identities  *Store[components.IdentityComponent]
	Positions   *Store[components.PositionComponent]
	Velocities  *Store[components.VelocityComponent]
	Sprites     *Store[components.SpriteComponent]
	Healths     *Store[components.HealthComponent]
	Damages     *Store[components.DamageComponent]
	Edges       *Store[components.EdgeComponent]
	Projectiles *Store[components.ProjectileComponent]
	Lifetimes   *Store[components.LifetimeComponent]
	Weapons     *Store[components.WeaponComponent]
	Bombers     *Store[components.BomberComponent]
	Deaths      *Store[components.DeathComponent]

	// Lifecycle registry - all stores implement AnyStore for uniform cleanup
	allStores []AnyStore

	systems []System
}

// NewWorld creates a new ECS world with all component stores initialized
func NewWorld() *World {
	w := &World{
		nextEntityID: 1,
		Identities:   NewStore[components.IdentityComponent](),
		Positions:    NewStore[components.PositionComponent](),
		Velocities:   NewStore[components.VelocityComponent](),
		Sprites:      NewStore[components.SpriteComponent](),
		Healths:      NewStore[components.HealthComponent](),
		Damages:      NewStore[components.DamageComponent](),
		Edges:        NewStore[components.EdgeComponent](),
		Projectiles:  NewStore[components.ProjectileComponent](),
		Lifetimes:    NewStore[components.LifetimeComponent](),
		Weapons:      NewStore[components.WeaponComponent](),
		Bombers:      NewStore[components.BomberComponent](),
		Deaths:       NewStore[components.DeathComponent](),
	}

	w.allStores = []AnyStore{
		w.Identities,
		w.Positions,
		w.Velocities,
		w.Sprites,
		w.Healths,
		w.Damages,
		w.Edges,
		w.Projectiles,
		w.Lifetimes,
		w.Weapons,
		w.Bombers,
		w.Deaths,
	}

	return w
}

// DestroyEntity removes all components associated with an entity
func (w *World) DestroyEntity(e Entity) {
	for _, store := range w.allStores {
		store.Remove(e)
	}
}

// Exists checks if the entity still has any component
func (w *World) Exists(e Entity) bool {
	for _, store := range w.allStores {
		if store.Has(e) {
			return true
		}
	}
	return false
}

// Alive checks if the entity exists and is not marked for death
func (w *World) Alive(e Entity) bool {
	return w.Identities.Has(e) && !w.Deaths.Has(e)
}

// MarkDead tags an entity for removal at the end of the tick
// The first reason recorded wins
func (w *World) MarkDead(e Entity, reason components.DeathReason) {
	if w.Deaths.Has(e) {
		return
	}
	w.Deaths.Set(e, components.DeathComponent{Reason: reason})
}

// CountKind returns the number of live entities of a kind
func (w *World) CountKind(kind components.Kind) int {
	n := 0
	for _, e := range w.Identities.entities {
		if id := w.Identities.components[e]; id.Kind == kind && !w.Deaths.Has(e) {
			n++
		}
	}
	return n
}

// CountProjectiles returns the number of live lasers, rockets and bombs
func (w *World) CountProjectiles() int {
	n := 0
	for _, e := range w.Projectiles.entities {
		if !w.Deaths.Has(e) {
			n++
		}
	}
	return n
}

// AddSystem adds a system to the world, keeping systems sorted by priority
// Systems with equal priority run in registration order
func (w *World) AddSystem(system System) {
	w.systems = append(w.systems, system)
	for i := len(w.systems) - 1; i > 0 && w.systems[i-1].Priority() > w.systems[i].Priority(); i-- {
		w.systems[i-1], w.systems[i] = w.systems[i], w.systems[i-1]
	}
}

// Systems returns the registered systems in execution order
func (w *World) Systems() []System {
	out := make([]System, len(w.systems))
	copy(out, w.systems)
	return out
}

// Update runs all systems once, in priority order
func (w *World) Update(dt time.Duration) {
	for _, system := range w.systems {
		system.Update(w, dt)
	}
}
