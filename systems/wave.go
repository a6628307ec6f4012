package systems

import (
	"log"
	"math"
	"math/rand"

	"github.com/go-gl/mathgl/mgl64"

	"wavebreaker/config"
	"wavebreaker/engine"
	"wavebreaker/event"
	"wavebreaker/parameter"
)

// Mediator is the wave coordinator's view of the game state coordinator
type Mediator interface {
	// Playing reports whether the session still accepts spawns
	Playing() bool

	// OnAllWavesComplete is the victory trigger, fired once after the final
	// wave clears
	OnAllWavesComplete()
}

// WaveSystem schedules enemy spawns and tracks wave completion
//
// Wave lifecycle: WaitingToStart -> Spawning -> WaitingForClear -> next wave
// or all-complete. All waiting is polled via elapsed-time accumulation
type WaveSystem struct {
	world    *engine.World
	pool     *engine.EntityPool
	rng      *rand.Rand
	mediator Mediator

	waves []config.WaveDefinition
	tun   config.Tunables

	index      int     // Current wave, advances on wave end
	spawned    int     // Enemies spawned this wave
	alive      int     // Enemies still alive this wave
	active     bool    // A wave is currently running
	sinceSpawn float64 // Seconds since last spawn while active
	untilNext  float64 // Countdown to next wave start while inactive
	allDone    bool    // Final wave cleared, victory reported
}

// NewWaveSystem creates the wave coordinator
// The rand source is injected so spawn placement is deterministic under test
func NewWaveSystem(world *engine.World, pool *engine.EntityPool, rng *rand.Rand, waves []config.WaveDefinition, tun config.Tunables) *WaveSystem {
	return &WaveSystem{
		world: world,
		pool:  pool,
		rng:   rng,
		waves: waves,
		tun:   tun,
	}
}

// RegisterMediator wires the non-owning back-reference to the coordinator
// Called once during simulation construction
func (s *WaveSystem) RegisterMediator(m Mediator) {
	s.mediator = m
}

func (s *WaveSystem) Priority() int {
	return parameter.PriorityWave
}

// Update advances wave scheduling by dt seconds
func (s *WaveSystem) Update(dt float64) {
	if s.allDone || s.mediator == nil || !s.mediator.Playing() {
		return
	}

	if !s.active {
		s.untilNext -= dt
		if s.untilNext <= 0 {
			s.startWave()
		}
		return
	}

	def := s.waves[s.index]
	if s.spawned < def.EnemyCount {
		s.sinceSpawn += dt
		// At most one spawn per elapsed interval
		if s.sinceSpawn >= def.SpawnInterval {
			s.sinceSpawn -= def.SpawnInterval
			s.spawnEnemy()
		}
	}
}

// OnEnemyKilled decrements the alive count, ending the wave once the roster
// is fully spawned and fully eliminated. Called synchronously from the kill
// relay so completion is observed in the same frame as the death
func (s *WaveSystem) OnEnemyKilled() {
	if s.alive > 0 {
		s.alive--
	}
	if s.active && s.spawned == s.waves[s.index].EnemyCount && s.alive == 0 {
		s.endWave()
	}
}

// startWave begins spawning the current wave definition
func (s *WaveSystem) startWave() {
	if s.index >= len(s.waves) {
		// No waves configured at all
		s.allDone = true
		s.mediator.OnAllWavesComplete()
		return
	}

	def := s.waves[s.index]
	s.active = true
	s.spawned = 0
	s.alive = 0
	// Preload the accumulator so the first enemy spawns immediately
	s.sinceSpawn = def.SpawnInterval

	s.world.PushEvent(event.EventWaveStarted, &event.WavePayload{Index: s.index, Name: def.Name})
	log.Printf("wave %d (%s) started: %d enemies every %.1fs", s.index, def.Name, def.EnemyCount, def.SpawnInterval)
}

// endWave closes the current wave and schedules the next, or reports victory
func (s *WaveSystem) endWave() {
	def := s.waves[s.index]
	s.active = false
	s.world.PushEvent(event.EventWaveCleared, &event.WavePayload{Index: s.index, Name: def.Name})

	if s.index+1 >= len(s.waves) {
		s.allDone = true
		s.mediator.OnAllWavesComplete()
		return
	}
	s.index++
	s.untilNext = s.tun.TimeBetweenWaves
}

// spawnEnemy acquires an enemy handle at a random point on the spawn circle
func (s *WaveSystem) spawnEnemy() {
	center, ok := s.playerPosition()
	if !ok {
		return // No player yet, skip this tick's spawn
	}

	angle := s.rng.Float64() * 2 * math.Pi
	pos := center.Add(mgl64.Vec3{
		math.Cos(angle) * s.tun.SpawnRadius,
		0,
		math.Sin(angle) * s.tun.SpawnRadius,
	})
	facing := mgl64.QuatBetweenVectors(baseForward, center.Sub(pos).Normalize())

	e, err := s.pool.Acquire(parameter.TagEnemy, pos, facing)
	if err != nil {
		log.Printf("wave %d: spawn failed: %v", s.index, err)
		return
	}

	s.spawned++
	s.alive++
	s.world.PushEvent(event.EventEnemySpawned, &event.SpawnPayload{Entity: e, Tag: parameter.TagEnemy})
}

// playerPosition resolves the spawn circle center
func (s *WaveSystem) playerPosition() (mgl64.Vec3, bool) {
	players := s.world.Components.Player.Entities()
	if len(players) == 0 {
		return mgl64.Vec3{}, false
	}
	t, ok := s.world.Components.Transform.Get(players[0])
	if !ok {
		return mgl64.Vec3{}, false
	}
	return t.Position, true
}

// Progress reports the wave counters for HUD and tests
func (s *WaveSystem) Progress() (index, spawned, alive int, active bool) {
	return s.index, s.spawned, s.alive, s.active
}

// AllComplete reports whether the final wave has been cleared
func (s *WaveSystem) AllComplete() bool {
	return s.allDone
}

// CurrentWave returns the active wave definition name for HUD display
func (s *WaveSystem) CurrentWave() string {
	if s.index < len(s.waves) {
		return s.waves[s.index].Name
	}
	return ""
}

// Reset returns the coordinator to the start of the first wave
func (s *WaveSystem) Reset() {
	s.index = 0
	s.spawned = 0
	s.alive = 0
	s.active = false
	s.sinceSpawn = 0
	s.untilNext = 0
	s.allDone = false
}
