package systems

import (
	"math"

	"github.com/go-gl/mathgl/mgl64"

	"wavebreaker/component"
	"wavebreaker/config"
	"wavebreaker/core"
	"wavebreaker/engine"
	"wavebreaker/parameter"
)

// baseForward is the untransformed facing direction of every entity
var baseForward = mgl64.Vec3{0, 0, 1}

// stateFuncs is one row of the behavior dispatch table
// States are a tagged variant dispatched through plain functions, no
// per-transition allocation
type stateFuncs struct {
	enter  func(s *BehaviorSystem, e core.Entity, b *component.BehaviorComponent)
	update func(s *BehaviorSystem, e core.Entity, b *component.BehaviorComponent, dt float64)
	exit   func(s *BehaviorSystem, e core.Entity, b *component.BehaviorComponent)
}

// behaviorTable maps state tags to their enter/update/exit effects
var behaviorTable = map[component.BehaviorState]stateFuncs{
	component.BehaviorChase: {
		update: chaseUpdate,
	},
	component.BehaviorAttack: {
		enter:  attackEnter,
		update: attackUpdate,
	},
}

// BehaviorSystem runs the per-enemy Chase/Attack state machine
type BehaviorSystem struct {
	world    *engine.World
	registry *engine.DamageRegistry
	tun      config.Tunables
}

// NewBehaviorSystem creates the enemy behavior system
func NewBehaviorSystem(world *engine.World, registry *engine.DamageRegistry, tun config.Tunables) *BehaviorSystem {
	return &BehaviorSystem{
		world:    world,
		registry: registry,
		tun:      tun,
	}
}

func (s *BehaviorSystem) Priority() int {
	return parameter.PriorityBehavior
}

// Update advances every active enemy's behavior by dt seconds
// With no player in the world every enemy degrades to a no-op for the tick
func (s *BehaviorSystem) Update(dt float64) {
	if _, ok := s.playerEntity(); !ok {
		return
	}

	for _, e := range s.world.Components.Behavior.Entities() {
		b, ok := s.world.Components.Behavior.Get(e)
		if !ok {
			continue // Released mid-iteration
		}
		behaviorTable[b.State].update(s, e, &b, dt)
		s.world.Components.Behavior.Set(e, b)
	}
}

// transition runs exit(old) -> assign(new) -> enter(new), synchronously
func (s *BehaviorSystem) transition(e core.Entity, b *component.BehaviorComponent, to component.BehaviorState) {
	if fn := behaviorTable[b.State].exit; fn != nil {
		fn(s, e, b)
	}
	b.State = to
	if fn := behaviorTable[to].enter; fn != nil {
		fn(s, e, b)
	}
}

// playerEntity resolves the player-marked entity, if one exists
func (s *BehaviorSystem) playerEntity() (core.Entity, bool) {
	players := s.world.Components.Player.Entities()
	if len(players) == 0 {
		return core.EntityNone, false
	}
	return players[0], true
}

// playerDistance returns the enemy transform and its distance to the player
func (s *BehaviorSystem) playerDistance(e core.Entity) (component.TransformComponent, mgl64.Vec3, float64, bool) {
	player, ok := s.playerEntity()
	if !ok {
		return component.TransformComponent{}, mgl64.Vec3{}, 0, false
	}
	pt, ok := s.world.Components.Transform.Get(player)
	if !ok {
		return component.TransformComponent{}, mgl64.Vec3{}, 0, false
	}
	et, ok := s.world.Components.Transform.Get(e)
	if !ok {
		return component.TransformComponent{}, mgl64.Vec3{}, 0, false
	}
	return et, pt.Position, pt.Position.Sub(et.Position).Len(), true
}

// chaseUpdate closes distance at MoveSpeed, facing the direction of travel
// Switches to Attack once the player is within AttackRange
func chaseUpdate(s *BehaviorSystem, e core.Entity, b *component.BehaviorComponent, dt float64) {
	et, target, dist, ok := s.playerDistance(e)
	if !ok {
		return
	}

	if dist <= s.tun.AttackRange {
		s.transition(e, b, component.BehaviorAttack)
		return
	}

	dir := target.Sub(et.Position).Normalize()
	step := s.tun.MoveSpeed * dt
	if step > dist {
		step = dist // Never overshoot the target
	}
	et.Position = et.Position.Add(dir.Mul(step))
	et.Orientation = faceToward(et.Orientation, dir, dt)
	s.world.Components.Transform.Set(e, et)
}

// attackEnter zeroes the cooldown so the first strike fires immediately
func attackEnter(s *BehaviorSystem, e core.Entity, b *component.BehaviorComponent) {
	b.Cooldown = 0
}

// attackUpdate strikes the player every AttackCooldown while in range
// Falls back to Chase when the player escapes AttackRange
func attackUpdate(s *BehaviorSystem, e core.Entity, b *component.BehaviorComponent, dt float64) {
	et, target, dist, ok := s.playerDistance(e)
	if !ok {
		return
	}

	if dist > s.tun.AttackRange {
		s.transition(e, b, component.BehaviorChase)
		return
	}

	b.Cooldown -= dt
	if b.Cooldown <= 0 {
		if player, ok := s.playerEntity(); ok {
			s.registry.ApplyDamage(player, s.tun.ContactDamage)
		}
		b.Cooldown = s.tun.AttackCooldown
	}

	if dist > 1e-9 {
		dir := target.Sub(et.Position).Normalize()
		et.Orientation = faceToward(et.Orientation, dir, dt)
		s.world.Components.Transform.Set(e, et)
	}
}

// faceToward slerps an orientation toward the given heading
func faceToward(current mgl64.Quat, dir mgl64.Vec3, dt float64) mgl64.Quat {
	if dir.Len() < 1e-9 {
		return current
	}
	target := mgl64.QuatBetweenVectors(baseForward, dir)
	amount := math.Min(parameter.TurnRateFloat*dt, 1.0)
	return mgl64.QuatSlerp(current, target, amount)
}
