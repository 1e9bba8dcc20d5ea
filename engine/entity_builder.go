package engine

import "fmt"

// EntityBuilder provides a fluent, type-safe interface for constructing entities with components.
// It reserves an entity ID upfront and adds components before the entity is handed out via Build().
//
// Example usage:
//
//	entity := With(With(world.NewEntity(),
//	    world.Identities, components.IdentityComponent{Kind: components.KindBomb}),
//	    world.Positions, components.PositionComponent{X: 10, Y: 5}).
//	    Build()
type EntityBuilder struct {
	world  *World
	entity Entity
	built  bool
}

// NewEntity creates a new EntityBuilder with a reserved entity ID
func (w *World) NewEntity() *EntityBuilder {
	id := w.nextEntityID
	w.nextEntityID++
	return &EntityBuilder{world: w, entity: id}
}

// With adds a component of type T to the entity being built.
// Panics if called after Build().
func With[T any](eb *EntityBuilder, store *Store[T], component T) *EntityBuilder {
	if eb.built {
		panic("entity already built - cannot add components after Build()")
	}
	store.Set(eb.entity, component)
	return eb
}

// Build finalizes entity construction and returns the entity ID
// Every simulated entity needs an identity, building one without it panics
func (eb *EntityBuilder) Build() Entity {
	if !eb.world.Identities.Has(eb.entity) {
		panic(fmt.Sprintf("entity %d built without an IdentityComponent", eb.entity))
	}
	eb.built = true
	return eb.entity
}
