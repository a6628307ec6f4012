// Package game wires the simulation core together: one Simulation owns the
// world, pool, damage registry, systems and director, constructed once and
// handed to subsystems as explicit references. No global lookup
package game

import (
	"math/rand"

	"github.com/go-gl/mathgl/mgl64"

	"wavebreaker/component"
	"wavebreaker/config"
	"wavebreaker/core"
	"wavebreaker/engine"
	"wavebreaker/event"
	"wavebreaker/parameter"
	"wavebreaker/systems"
)

// Simulation is the top-level simulation context and tick entry point
type Simulation struct {
	cfg *config.Config

	world    *engine.World
	queue    *event.EventQueue
	router   *engine.EventRouter
	pool     *engine.EntityPool
	registry *engine.DamageRegistry
	director *Director

	waves       *systems.WaveSystem
	behavior    *systems.BehaviorSystem
	projectiles *systems.ProjectileSystem
	audio       *systems.AudioSystem

	player core.Entity
}

// NewSimulation constructs and wires the full simulation from configuration
// The rand source seeds spawn placement; pass a fixed seed for determinism
func NewSimulation(cfg *config.Config, rng *rand.Rand, enableAudio bool) (*Simulation, error) {
	queue := event.NewEventQueue()
	world := engine.NewWorld(queue)

	s := &Simulation{
		cfg:      cfg,
		world:    world,
		queue:    queue,
		router:   engine.NewEventRouter(queue),
		pool:     engine.NewEntityPool(world),
		registry: engine.NewDamageRegistry(world),
		director: NewDirector(world, cfg.Tunables.ScorePerKill),
	}

	s.pool.RegisterTemplate(parameter.TemplateEnemyBasic, s.enemyTemplate)
	s.pool.RegisterTemplate(parameter.TemplateProjectileBolt, s.projectileTemplate)

	categories := make([]engine.PoolCategory, 0, len(cfg.Pools))
	for _, p := range cfg.Pools {
		categories = append(categories, engine.PoolCategory{
			Tag:        p.Tag,
			TemplateID: p.TemplateID,
			Size:       p.InitialSize,
		})
	}
	if err := s.pool.Configure(categories); err != nil {
		return nil, err
	}
	s.pool.Prewarm()

	s.spawnPlayer()

	s.waves = systems.NewWaveSystem(world, s.pool, rng, cfg.Waves, cfg.Tunables)
	s.waves.RegisterMediator(s.director)
	s.director.RegisterWaveCoordinator(s.waves)

	s.behavior = systems.NewBehaviorSystem(world, s.registry, cfg.Tunables)
	s.projectiles = systems.NewProjectileSystem(world, s.pool, cfg.Tunables, s.OnContact)

	world.AddSystem(s.waves)
	world.AddSystem(s.behavior)
	world.AddSystem(s.projectiles)

	s.audio = systems.NewAudioSystem(enableAudio)
	s.router.Register(s.audio)

	return s, nil
}

// Step advances the simulation by dt seconds, the once-per-frame entry point
// Queued notifications from the previous frame are dispatched first, then
// all systems run in priority order. Once the session leaves Playing the
// world freezes; only observer dispatch continues
func (s *Simulation) Step(dt float64) {
	if dt < 0 {
		dt = 0
	}

	s.router.DispatchAll()
	s.director.Tick(dt)

	if s.director.Playing() {
		s.world.Update(dt)
	}
}

// OnContact is the trigger boundary: look up the other entity's damage
// capability and apply the contacting projectile's damage. No geometry here
func (s *Simulation) OnContact(self, other core.Entity) {
	proj, ok := s.world.Components.Projectile.Get(self)
	if !ok {
		return
	}
	if _, ok := s.registry.Capability(other); !ok {
		return // Not damageable, excluded from routing
	}
	s.registry.ApplyDamage(other, proj.Damage)
}

// enemyTemplate applies the basic chaser component set
// Enemies always activate in Chase
func (s *Simulation) enemyTemplate(w *engine.World, e core.Entity) {
	w.Components.Health.Set(e, component.NewHealth(s.cfg.Tunables.EnemyHealth))
	w.Components.Behavior.Set(e, component.BehaviorComponent{State: component.BehaviorChase})
	s.registry.SetDeathHandler(e, s.onEnemyDeath)
}

// projectileTemplate applies the bolt component set
// Velocity and TTL are assigned at fire time
func (s *Simulation) projectileTemplate(w *engine.World, e core.Entity) {
	w.Components.Projectile.Set(e, component.ProjectileComponent{
		Damage: s.cfg.Tunables.ProjectileDamage,
	})
}

// onEnemyDeath is the enemy controller's terminal notification
// Order matters: the kill is relayed through the director while the handle
// is still logically this enemy, only then is the handle released
func (s *Simulation) onEnemyDeath(e core.Entity) {
	index, _, _, _ := s.waves.Progress()
	s.world.PushEvent(event.EventEnemyKilled, &event.KillPayload{Entity: e, WaveIndex: index})

	s.director.OnEnemyKilled()
	s.pool.Release(e)
}

// onPlayerDeath ends the session
func (s *Simulation) onPlayerDeath(core.Entity) {
	s.director.EndGame()
}

// spawnPlayer creates the single player entity at the arena origin
func (s *Simulation) spawnPlayer() {
	e := s.world.CreateEntity()
	s.world.Components.Player.Set(e, component.PlayerComponent{})
	s.world.Components.Transform.Set(e, component.NewTransform(mgl64.Vec3{}))
	s.world.Components.Health.Set(e, component.NewHealth(s.cfg.Tunables.PlayerHealth))
	s.registry.SetDeathHandler(e, s.onPlayerDeath)
	s.player = e
}

// MovePlayer displaces the player on the arena plane, driver input boundary
func (s *Simulation) MovePlayer(dx, dz float64) {
	s.world.RunSafe(func() {
		t, ok := s.world.Components.Transform.Get(s.player)
		if !ok {
			return
		}
		t.Position = t.Position.Add(mgl64.Vec3{dx, 0, dz})
		s.world.Components.Transform.Set(s.player, t)
	})
}

// FireAtNearest launches a pooled projectile toward the closest enemy
// With no enemies alive the trigger pull is a no-op for this frame
func (s *Simulation) FireAtNearest() {
	s.world.RunSafe(func() {
		if !s.director.Playing() {
			return
		}
		pt, ok := s.world.Components.Transform.Get(s.player)
		if !ok {
			return
		}

		target, ok := s.nearestEnemy(pt.Position)
		if !ok {
			return
		}
		et, ok := s.world.Components.Transform.Get(target)
		if !ok {
			return
		}

		dir := et.Position.Sub(pt.Position)
		if dir.Len() < 1e-9 {
			return
		}
		dir = dir.Normalize()

		e, err := s.pool.Acquire(parameter.TagProjectile, pt.Position, mgl64.QuatBetweenVectors(mgl64.Vec3{0, 0, 1}, dir))
		if err != nil {
			return
		}
		proj, _ := s.world.Components.Projectile.Get(e)
		proj.Velocity = dir.Mul(s.cfg.Tunables.ProjectileSpeed)
		proj.TTL = s.cfg.Tunables.ProjectileTTL
		s.world.Components.Projectile.Set(e, proj)
	})
}

// nearestEnemy returns the closest active enemy to the given point
func (s *Simulation) nearestEnemy(from mgl64.Vec3) (core.Entity, bool) {
	best := core.EntityNone
	bestDist := 0.0
	for _, e := range s.world.Components.Behavior.Entities() {
		t, ok := s.world.Components.Transform.Get(e)
		if !ok {
			continue
		}
		d := t.Position.Sub(from).Len()
		if best == core.EntityNone || d < bestDist {
			best = e
			bestDist = d
		}
	}
	return best, best != core.EntityNone
}

// Reset tears the session down and starts a fresh one: cleared world,
// re-warmed pool, wave index zero, new session identity
func (s *Simulation) Reset() {
	s.world.RunSafe(func() {
		s.world.Clear()
		s.registry.Reset()
		s.pool.Reset()
		s.waves.Reset()
		s.director.Reset()
		s.spawnPlayer()
	})
}

// World exposes the underlying world for tests and the driver snapshot
func (s *Simulation) World() *engine.World {
	return s.world
}

// Director exposes the game state coordinator
func (s *Simulation) Director() *Director {
	return s.director
}

// Pool exposes the entity pool boundary
func (s *Simulation) Pool() *engine.EntityPool {
	return s.pool
}

// Registry exposes the damage capability registry
func (s *Simulation) Registry() *engine.DamageRegistry {
	return s.registry
}

// Waves exposes the wave coordinator
func (s *Simulation) Waves() *systems.WaveSystem {
	return s.waves
}

// Player returns the player entity handle
func (s *Simulation) Player() core.Entity {
	return s.player
}
