package engine

// AnyStore provides type-erased operations for lifecycle management
// This interface allows World to manage all stores uniformly
// for operations like entity destruction without knowing the concrete type
type AnyStore interface {
	Remove(e Entity)
	Has(e Entity) bool
	Count() int
}

// QueryableStore extends AnyStore with the listing needed by the query builder
type QueryableStore interface {
	AnyStore
	All() []Entity
}
