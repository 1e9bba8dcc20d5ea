package components

// HealthComponent is carried by tanks and martians only
type HealthComponent struct {
	Current int
	Max     int
}

// Damage subtracts amount, clamping at zero
// Returns true if the entity is now dead
func (h *HealthComponent) Damage(amount int) bool {
	if amount < 0 {
		panic("components: negative damage")
	}
	h.Current -= amount
	if h.Current < 0 {
		h.Current = 0
	}
	return h.Current == 0
}

// Alive reports positive health
func (h HealthComponent) Alive() bool {
	return h.Current > 0
}
