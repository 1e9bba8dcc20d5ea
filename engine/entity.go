package engine

// Entity is a unique identifier for an entity, zero is never issued
type Entity uint64
