package engine

import (
	"wavebreaker/component"
)

// ComponentStore bundles the typed stores for every component kind
// Named fields avoid reflection on the per-frame path
type ComponentStore struct {
	Transform  *Store[component.TransformComponent]
	Health     *Store[component.HealthComponent]
	Behavior   *Store[component.BehaviorComponent]
	Pooled     *Store[component.PooledComponent]
	Projectile *Store[component.ProjectileComponent]
	Player     *Store[component.PlayerComponent]
}

func newComponentStore() ComponentStore {
	return ComponentStore{
		Transform:  NewStore[component.TransformComponent](),
		Health:     NewStore[component.HealthComponent](),
		Behavior:   NewStore[component.BehaviorComponent](),
		Pooled:     NewStore[component.PooledComponent](),
		Projectile: NewStore[component.ProjectileComponent](),
		Player:     NewStore[component.PlayerComponent](),
	}
}

// clearAll empties every store
func (c *ComponentStore) clearAll() {
	c.Transform.Clear()
	c.Health.Clear()
	c.Behavior.Clear()
	c.Pooled.Clear()
	c.Projectile.Clear()
	c.Player.Clear()
}
