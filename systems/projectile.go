package systems

import (
	"wavebreaker/config"
	"wavebreaker/core"
	"wavebreaker/engine"
	"wavebreaker/parameter"
)

// ContactFunc is the trigger-detection boundary: the system reports contacts,
// the simulation routes them to the damage capability of the other entity
type ContactFunc func(self, other core.Entity)

// ProjectileSystem integrates projectile motion, expires lifetimes and
// reports contacts against enemies. The radius test stands in for the
// external physics layer's trigger volumes
type ProjectileSystem struct {
	world   *engine.World
	pool    *engine.EntityPool
	tun     config.Tunables
	contact ContactFunc
}

// NewProjectileSystem creates the projectile system
func NewProjectileSystem(world *engine.World, pool *engine.EntityPool, tun config.Tunables, contact ContactFunc) *ProjectileSystem {
	return &ProjectileSystem{
		world:   world,
		pool:    pool,
		tun:     tun,
		contact: contact,
	}
}

func (s *ProjectileSystem) Priority() int {
	return parameter.PriorityProjectile
}

// Update moves projectiles, expires them and fires contact notifications
func (s *ProjectileSystem) Update(dt float64) {
	for _, e := range s.world.Components.Projectile.Entities() {
		proj, ok := s.world.Components.Projectile.Get(e)
		if !ok {
			continue
		}
		t, ok := s.world.Components.Transform.Get(e)
		if !ok {
			continue
		}

		proj.TTL -= dt
		if proj.TTL <= 0 {
			s.pool.Release(e)
			continue
		}

		t.Position = t.Position.Add(proj.Velocity.Mul(dt))
		s.world.Components.Transform.Set(e, t)
		s.world.Components.Projectile.Set(e, proj)

		if hit, ok := s.firstContact(e); ok {
			if s.contact != nil {
				s.contact(e, hit)
			}
			s.pool.Release(e)
		}
	}
}

// firstContact returns the first enemy within the hit radius, if any
func (s *ProjectileSystem) firstContact(proj core.Entity) (core.Entity, bool) {
	pt, ok := s.world.Components.Transform.Get(proj)
	if !ok {
		return core.EntityNone, false
	}

	for _, enemy := range s.world.Components.Behavior.Entities() {
		et, ok := s.world.Components.Transform.Get(enemy)
		if !ok {
			continue
		}
		if et.Position.Sub(pt.Position).Len() <= s.tun.ProjectileHitRadius {
			return enemy, true
		}
	}
	return core.EntityNone, false
}
