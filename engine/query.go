package engine

import "sort"

// QueryBuilder provides a fluent interface for querying entities based on component intersection.
// The query starts with the smallest store and filters through larger ones.
type QueryBuilder struct {
	world    *World
	stores   []QueryableStore
	excluded []AnyStore
	executed bool
	results  []Entity
}

// Query creates a new QueryBuilder for finding entities with specific component combinations.
//
// Example:
//
//	entities := world.Query().
//	    With(world.Positions).
//	    With(world.Velocities).
//	    Without(world.Deaths).
//	    Execute()
func (w *World) Query() *QueryBuilder {
	return &QueryBuilder{
		world:  w,
		stores: make([]QueryableStore, 0, 4),
	}
}

// With adds a component store every result must be in
// Panics if called after Execute().
func (qb *QueryBuilder) With(store QueryableStore) *QueryBuilder {
	if qb.executed {
		panic("query already executed - cannot modify after Execute()")
	}
	qb.stores = append(qb.stores, store)
	return qb
}

// Without adds a component store no result may be in
// Panics if called after Execute().
func (qb *QueryBuilder) Without(store AnyStore) *QueryBuilder {
	if qb.executed {
		panic("query already executed - cannot modify after Execute()")
	}
	qb.excluded = append(qb.excluded, store)
	return qb
}

// Execute runs the query and returns matching entities in the smallest store's order.
// Calling Execute() multiple times returns the cached result.
func (qb *QueryBuilder) Execute() []Entity {
	if qb.executed {
		return qb.results
	}
	qb.executed = true

	if len(qb.stores) == 0 {
		qb.results = make([]Entity, 0)
		return qb.results
	}

	// Smallest store first minimizes Has() checks, stable keeps results deterministic
	sort.SliceStable(qb.stores, func(i, j int) bool {
		return qb.stores[i].Count() < qb.stores[j].Count()
	})

	candidates := qb.stores[0].All()
	filtered := candidates[:0]
next:
	for _, e := range candidates {
		for _, store := range qb.stores[1:] {
			if !store.Has(e) {
				continue next
			}
		}
		for _, store := range qb.excluded {
			if store.Has(e) {
				continue next
			}
		}
		filtered = append(filtered, e)
	}

	qb.results = filtered
	return qb.results
}
