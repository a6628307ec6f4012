package systems

import (
	"math"
	"math/rand"
	"testing"

	"github.com/go-gl/mathgl/mgl64"

	"wavebreaker/component"
	"wavebreaker/config"
	"wavebreaker/core"
	"wavebreaker/engine"
	"wavebreaker/parameter"
)

// fakeMediator satisfies the Mediator interface for wave tests
type fakeMediator struct {
	playing  bool
	complete int
}

func (m *fakeMediator) Playing() bool       { return m.playing }
func (m *fakeMediator) OnAllWavesComplete() { m.complete++ }

// newWaveFixture builds a world with a player, a configured enemy pool and
// a wave system over the given definitions
func newWaveFixture(t *testing.T, waves []config.WaveDefinition) (*engine.World, *engine.EntityPool, *WaveSystem, *fakeMediator) {
	t.Helper()
	w := engine.NewWorld(nil)

	player := w.CreateEntity()
	w.Components.Player.Set(player, component.PlayerComponent{})
	w.Components.Transform.Set(player, component.NewTransform(mgl64.Vec3{}))

	pool := engine.NewEntityPool(w)
	pool.RegisterTemplate(parameter.TemplateEnemyBasic, func(w *engine.World, e core.Entity) {
		w.Components.Health.Set(e, component.NewHealth(30))
		w.Components.Behavior.Set(e, component.BehaviorComponent{State: component.BehaviorChase})
	})
	if err := pool.Configure([]engine.PoolCategory{
		{Tag: parameter.TagEnemy, TemplateID: parameter.TemplateEnemyBasic, Size: 8},
	}); err != nil {
		t.Fatalf("Configure failed: %v", err)
	}
	pool.Prewarm()

	tun := config.Default().Tunables
	ws := NewWaveSystem(w, pool, rand.New(rand.NewSource(42)), waves, tun)
	m := &fakeMediator{playing: true}
	ws.RegisterMediator(m)
	return w, pool, ws, m
}

// killAll releases every active enemy and reports each kill to the system
func killAll(pool *engine.EntityPool, ws *WaveSystem) int {
	killed := 0
	for _, e := range pool.ActiveEntities(parameter.TagEnemy) {
		pool.Release(e)
		ws.OnEnemyKilled()
		killed++
	}
	return killed
}

// TestWaveSpawnCadence tests that a 5-enemy wave at 2.0s
// intervals spawns one enemy per interval of elapsed time
func TestWaveSpawnCadence(t *testing.T) {
	_, pool, ws, _ := newWaveFixture(t, []config.WaveDefinition{
		{Name: "test", EnemyCount: 5, SpawnInterval: 2.0},
	})

	ws.Update(0) // Enters Spawning

	elapsed := 0.0
	for elapsed < 10.0 {
		ws.Update(0.5)
		elapsed += 0.5
	}

	_, spawned, alive, active := ws.Progress()
	if spawned != 5 {
		t.Errorf("Expected 5 spawned after 10s at 2s intervals, got %d", spawned)
	}
	if alive != 5 {
		t.Errorf("Expected 5 alive, got %d", alive)
	}
	if !active {
		t.Error("Expected wave still active while enemies alive")
	}
	if got := len(pool.ActiveEntities(parameter.TagEnemy)); got != 5 {
		t.Errorf("Expected 5 active pool handles, got %d", got)
	}

	// Spawning is complete; further time must not spawn more
	ws.Update(5.0)
	_, spawned, _, _ = ws.Progress()
	if spawned != 5 {
		t.Errorf("Expected spawn count frozen at 5, got %d", spawned)
	}
}

// TestWaveCompletionInvariant tests a wave ends if and only if fully spawned
// and fully eliminated
func TestWaveCompletionInvariant(t *testing.T) {
	_, pool, ws, _ := newWaveFixture(t, []config.WaveDefinition{
		{Name: "first", EnemyCount: 2, SpawnInterval: 1.0},
		{Name: "second", EnemyCount: 2, SpawnInterval: 1.0},
	})

	ws.Update(0)
	ws.Update(1.0) // Spawn #1

	// Killing the only spawned enemy must NOT end the wave: spawning not done
	if n := killAll(pool, ws); n != 1 {
		t.Fatalf("Expected 1 enemy to kill, got %d", n)
	}
	if _, _, _, active := ws.Progress(); !active {
		t.Error("Wave ended before the roster was fully spawned")
	}

	ws.Update(1.0) // Spawn #2
	killAll(pool, ws)

	index, _, _, active := ws.Progress()
	if active {
		t.Error("Expected wave to end once fully spawned and eliminated")
	}
	if index != 1 {
		t.Errorf("Expected wave index advanced to 1, got %d", index)
	}
}

// TestWaveInterWaveDelay tests the next wave starts only after the
// configured delay has elapsed
func TestWaveInterWaveDelay(t *testing.T) {
	_, pool, ws, _ := newWaveFixture(t, []config.WaveDefinition{
		{Name: "first", EnemyCount: 1, SpawnInterval: 0.5},
		{Name: "second", EnemyCount: 1, SpawnInterval: 0.5},
	})

	ws.Update(0)
	ws.Update(0.5)
	killAll(pool, ws)

	// Default delay is 3.0s; just before it, nothing starts
	ws.Update(2.9)
	if _, _, _, active := ws.Progress(); active {
		t.Error("Expected no wave during the inter-wave delay")
	}

	ws.Update(0.2)
	if _, _, _, active := ws.Progress(); !active {
		t.Error("Expected next wave active after the delay")
	}
}

// TestWaveAllCompleteReportsVictory tests the final wave reports completion
// to the mediator exactly once instead of scheduling another wave
func TestWaveAllCompleteReportsVictory(t *testing.T) {
	_, pool, ws, m := newWaveFixture(t, []config.WaveDefinition{
		{Name: "only", EnemyCount: 1, SpawnInterval: 0.5},
	})

	ws.Update(0)
	ws.Update(0.5)
	killAll(pool, ws)

	if m.complete != 1 {
		t.Errorf("Expected exactly one all-complete report, got %d", m.complete)
	}
	if !ws.AllComplete() {
		t.Error("Expected AllComplete after final wave cleared")
	}

	// Time passing afterwards must not restart anything
	ws.Update(100)
	if _, _, _, active := ws.Progress(); active {
		t.Error("Expected no further waves after completion")
	}
	if m.complete != 1 {
		t.Errorf("Expected completion reported once, got %d", m.complete)
	}
}

// TestWaveSpawnOnCircle tests spawn placement lands on the configured
// radius around the player, deterministic under a fixed seed
func TestWaveSpawnOnCircle(t *testing.T) {
	w, pool, ws, _ := newWaveFixture(t, []config.WaveDefinition{
		{Name: "ring", EnemyCount: 4, SpawnInterval: 1.0},
	})

	ws.Update(0)
	for i := 0; i < 4; i++ {
		ws.Update(1.0)
	}

	radius := config.Default().Tunables.SpawnRadius
	for _, e := range pool.ActiveEntities(parameter.TagEnemy) {
		tr, _ := w.Components.Transform.Get(e)
		if d := tr.Position.Len(); math.Abs(d-radius) > 1e-9 {
			t.Errorf("Expected spawn on radius %f, got %f", radius, d)
		}
	}
}

// TestWaveStopsWhenNotPlaying tests spawning halts once the session leaves
// the playing state
func TestWaveStopsWhenNotPlaying(t *testing.T) {
	_, _, ws, m := newWaveFixture(t, []config.WaveDefinition{
		{Name: "test", EnemyCount: 5, SpawnInterval: 0.5},
	})

	ws.Update(0)
	ws.Update(0.5)
	m.playing = false

	ws.Update(10)
	_, spawned, _, _ := ws.Progress()
	if spawned != 1 {
		t.Errorf("Expected spawning frozen at 1 after session end, got %d", spawned)
	}
}

// TestWaveKilledFloorAtZero tests the alive counter never goes negative
func TestWaveKilledFloorAtZero(t *testing.T) {
	_, _, ws, _ := newWaveFixture(t, []config.WaveDefinition{
		{Name: "test", EnemyCount: 3, SpawnInterval: 1.0},
	})

	ws.Update(0)
	ws.OnEnemyKilled()
	ws.OnEnemyKilled()

	if _, _, alive, _ := ws.Progress(); alive != 0 {
		t.Errorf("Expected alive floored at 0, got %d", alive)
	}
}
