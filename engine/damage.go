package engine

import (
	"wavebreaker/component"
	"wavebreaker/core"
)

// DeathHandler consumes the one-shot terminal notification for an entity
type DeathHandler func(e core.Entity)

// DamageRegistry routes damage by capability lookup rather than concrete type
// Any entity carrying a HealthComponent can be targeted uniformly; entities
// without one are excluded from damage routing
type DamageRegistry struct {
	healths  *Store[component.HealthComponent]
	handlers *Store[DeathHandler]
}

// NewDamageRegistry creates a registry over the world's health store
func NewDamageRegistry(world *World) *DamageRegistry {
	return &DamageRegistry{
		healths:  world.Components.Health,
		handlers: NewStore[DeathHandler](),
	}
}

// Capability returns the entity's damage capability, if it exposes one
func (r *DamageRegistry) Capability(e core.Entity) (component.HealthComponent, bool) {
	return r.healths.Get(e)
}

// SetDeathHandler binds the controller callback fired when health crosses to zero
func (r *DamageRegistry) SetDeathHandler(e core.Entity, fn DeathHandler) {
	r.handlers.Set(e, fn)
}

// ApplyDamage subtracts amount from the entity's health, clamped to [0, Max]
// Crossing from positive to zero fires the death handler exactly once;
// further damage to a dead capability is a no-op. Returns whether the entity
// died on this call
func (r *DamageRegistry) ApplyDamage(e core.Entity, amount int) bool {
	h, ok := r.healths.Get(e)
	if !ok {
		return false // No capability, excluded from routing
	}
	if h.Current <= 0 {
		return false // Idempotent past zero
	}

	h.Current -= amount
	if h.Current < 0 {
		h.Current = 0
	}
	if h.Current > h.Max {
		h.Current = h.Max
	}
	r.healths.Set(e, h)

	if h.Current > 0 {
		return false
	}
	if fn, ok := r.handlers.Get(e); ok {
		fn(e)
	}
	return true
}

// Reset drops all registered death handlers
func (r *DamageRegistry) Reset() {
	r.handlers.Clear()
}
