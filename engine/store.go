package engine

import "fmt"

// Store is a generic container for a specific component type T
// Uses sparse set pattern for cache-friendly iteration
// Stores are owned by the tick loop and are not safe for concurrent use
type Store[T any] struct {
	components map[Entity]T
	entities   []Entity // Entities that have this component, in insertion order
	index      map[Entity]int
}

// NewStore creates a new component store for type T
func NewStore[T any]() *Store[T] {
	return &Store[T]{
		components: make(map[Entity]T),
		entities:   make([]Entity, 0, 64),
		index:      make(map[Entity]int),
	}
}

// Set inserts or updates a component for an entity
func (s *Store[T]) Set(e Entity, val T) {
	if _, exists := s.components[e]; !exists {
		s.index[e] = len(s.entities)
		s.entities = append(s.entities, e)
	}
	s.components[e] = val
}

// Get retrieves a component for an entity
func (s *Store[T]) Get(e Entity) (T, bool) {
	val, ok := s.components[e]
	return val, ok
}

// MustGet retrieves a component, panics if the entity does not have it
func (s *Store[T]) MustGet(e Entity) T {
	val, ok := s.components[e]
	if !ok {
		var zero T
		panic(fmt.Sprintf("engine: entity %d has no %T", e, zero))
	}
	return val
}

// Remove deletes the component from an entity
// Keeps the remaining entities in insertion order
func (s *Store[T]) Remove(e Entity) {
	i, exists := s.index[e]
	if !exists {
		return
	}
	delete(s.components, e)
	delete(s.index, e)
	copy(s.entities[i:], s.entities[i+1:])
	s.entities = s.entities[:len(s.entities)-1]
	for j := i; j < len(s.entities); j++ {
		s.index[s.entities[j]] = j
	}
}

// Has checks if entity has this component
func (s *Store[T]) Has(e Entity) bool {
	_, ok := s.components[e]
	return ok
}

// All returns a copy of all entities with this component type
func (s *Store[T]) All() []Entity {
	result := make([]Entity, len(s.entities))
	copy(result, s.entities)
	return result
}

// Count returns number of entities with this component
func (s *Store[T]) Count() int {
	return len(s.entities)
}
