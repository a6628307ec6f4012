package component

// HealthComponent is the damage-receiving capability
// Invariant: 0 <= Current <= Max, clamped on every mutation
type HealthComponent struct {
	Current int
	Max     int
}

// NewHealth creates a health record at full capacity
func NewHealth(max int) HealthComponent {
	return HealthComponent{Current: max, Max: max}
}

// Dead reports whether the capability has been exhausted
func (h HealthComponent) Dead() bool {
	return h.Current <= 0
}
