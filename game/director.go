package game

import (
	"log"
	"sync"

	"github.com/google/uuid"

	"wavebreaker/engine"
	"wavebreaker/event"
)

// SessionState is the 3-state game lifecycle
type SessionState uint8

const (
	// StatePlaying accepts spawns and accrues score and time
	StatePlaying SessionState = iota

	// StateGameOver is terminal, entered on player death
	StateGameOver

	// StateVictory is terminal, entered when all waves are cleared
	StateVictory
)

// String returns the state name for HUD and logs
func (s SessionState) String() string {
	switch s {
	case StatePlaying:
		return "Playing"
	case StateGameOver:
		return "GameOver"
	case StateVictory:
		return "Victory"
	default:
		return "Unknown"
	}
}

// WaveCoordinator is the director's view of the wave scheduler
type WaveCoordinator interface {
	OnEnemyKilled()
}

// Director is the game state coordinator: it owns score and session
// lifecycle and relays enemy-death notifications to the wave coordinator.
// Enemies know only the director; any number of future listeners can hang
// off the event queue without coupling enemies to them
type Director struct {
	mu      sync.Mutex
	id      uuid.UUID
	score   int
	elapsed float64
	state   SessionState

	world        *engine.World
	wc           WaveCoordinator
	scorePerKill int
}

// NewDirector creates a coordinator for a fresh session
func NewDirector(world *engine.World, scorePerKill int) *Director {
	d := &Director{
		world:        world,
		scorePerKill: scorePerKill,
	}
	d.newSession()
	return d
}

func (d *Director) newSession() {
	d.id = uuid.New()
	d.score = 0
	d.elapsed = 0
	d.state = StatePlaying
	log.Printf("session %s started", d.id)
}

// RegisterWaveCoordinator wires the non-owning relay reference
// Called once during simulation construction
func (d *Director) RegisterWaveCoordinator(wc WaveCoordinator) {
	d.mu.Lock()
	defer d.mu.Unlock()
	d.wc = wc
}

// Tick accrues elapsed time while the session is playing
func (d *Director) Tick(dt float64) {
	d.mu.Lock()
	defer d.mu.Unlock()
	if d.state == StatePlaying {
		d.elapsed += dt
	}
}

// AddScore awards points. Score only moves while playing and never decreases
func (d *Director) AddScore(points int) {
	d.mu.Lock()
	defer d.mu.Unlock()
	if d.state != StatePlaying || points <= 0 {
		return
	}
	d.score += points
}

// OnEnemyKilled is the single relay point for enemy deaths: it awards score
// and synchronously forwards the kill to the wave coordinator so completion
// checks observe the decremented alive count within the same frame
func (d *Director) OnEnemyKilled() {
	d.AddScore(d.scorePerKill)

	d.mu.Lock()
	wc := d.wc
	d.mu.Unlock()
	if wc != nil {
		wc.OnEnemyKilled()
	}
}

// EndGame transitions Playing -> GameOver on player death. Terminal
func (d *Director) EndGame() {
	d.mu.Lock()
	if d.state != StatePlaying {
		d.mu.Unlock()
		return
	}
	d.state = StateGameOver
	id, score, elapsed := d.id, d.score, d.elapsed
	d.mu.Unlock()

	log.Printf("session %s over: score %d after %.1fs", id, score, elapsed)
	d.world.PushEvent(event.EventPlayerDied, nil)
}

// OnAllWavesComplete transitions Playing -> Victory. Terminal
func (d *Director) OnAllWavesComplete() {
	d.mu.Lock()
	if d.state != StatePlaying {
		d.mu.Unlock()
		return
	}
	d.state = StateVictory
	id, score, elapsed := d.id, d.score, d.elapsed
	d.mu.Unlock()

	log.Printf("session %s victorious: score %d after %.1fs", id, score, elapsed)
	d.world.PushEvent(event.EventVictory, nil)
}

// Playing reports whether the session still accepts spawns and score
func (d *Director) Playing() bool {
	d.mu.Lock()
	defer d.mu.Unlock()
	return d.state == StatePlaying
}

// State returns the current lifecycle state
func (d *Director) State() SessionState {
	d.mu.Lock()
	defer d.mu.Unlock()
	return d.state
}

// Score returns the current score
func (d *Director) Score() int {
	d.mu.Lock()
	defer d.mu.Unlock()
	return d.score
}

// Elapsed returns seconds of play time accrued
func (d *Director) Elapsed() float64 {
	d.mu.Lock()
	defer d.mu.Unlock()
	return d.elapsed
}

// SessionID returns the current session identity
func (d *Director) SessionID() uuid.UUID {
	d.mu.Lock()
	defer d.mu.Unlock()
	return d.id
}

// Reset begins a fresh session with a new identity
func (d *Director) Reset() {
	d.mu.Lock()
	defer d.mu.Unlock()
	d.newSession()
}
