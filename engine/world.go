package engine

import (
	"sync"
	"sync/atomic"

	"wavebreaker/core"
	"wavebreaker/event"
)

// System is the per-frame unit of simulation logic
type System interface {
	// Update advances the system by dt seconds
	Update(dt float64)

	// Priority orders systems within a frame, lower runs first
	Priority() int
}

// World contains all entities and their components using typed stores
// Entity handles are generational: recycling a slot bumps its generation so
// stale handles held by gameplay code are recognizably invalid
type World struct {
	mu          sync.RWMutex
	generations []uint32 // Indexed by entity slot, 0 = never allocated

	Components ComponentStore

	eventQueue *event.EventQueue
	frame      atomic.Int64

	systems     []System
	updateMutex sync.Mutex
}

// NewWorld creates a new ECS world
func NewWorld(queue *event.EventQueue) *World {
	return &World{
		generations: make([]uint32, 0, 64),
		Components:  newComponentStore(),
		eventQueue:  queue,
		systems:     make([]System, 0),
	}
}

// CreateEntity allocates a fresh slot and returns its handle
func (w *World) CreateEntity() core.Entity {
	w.mu.Lock()
	defer w.mu.Unlock()

	w.generations = append(w.generations, 1)
	return core.NewEntity(uint32(len(w.generations)-1), 1)
}

// Alive reports whether the handle matches its slot's current generation
func (w *World) Alive(e core.Entity) bool {
	w.mu.RLock()
	defer w.mu.RUnlock()
	return w.aliveLocked(e)
}

func (w *World) aliveLocked(e core.Entity) bool {
	idx := e.Index()
	return e.Valid() && int(idx) < len(w.generations) && w.generations[idx] == e.Generation()
}

// Clear removes all components and invalidates every issued handle
// Slot generations are bumped rather than truncated so handles held across
// the clear fail the Alive check instead of aliasing fresh entities
func (w *World) Clear() {
	w.mu.Lock()
	for i := range w.generations {
		w.generations[i]++
	}
	w.mu.Unlock()
	w.Components.clearAll()
}

// AddSystem adds a system to the world and sorts by priority
func (w *World) AddSystem(system System) {
	w.mu.Lock()
	defer w.mu.Unlock()

	w.systems = append(w.systems, system)

	// Sort by priority (bubble sort, small N)
	for i := 0; i < len(w.systems)-1; i++ {
		for j := 0; j < len(w.systems)-i-1; j++ {
			if w.systems[j].Priority() > w.systems[j+1].Priority() {
				w.systems[j], w.systems[j+1] = w.systems[j+1], w.systems[j]
			}
		}
	}
}

// Update runs all systems in priority order for one frame
func (w *World) Update(dt float64) {
	w.updateMutex.Lock()
	defer w.updateMutex.Unlock()

	w.mu.RLock()
	systems := make([]System, len(w.systems))
	copy(systems, w.systems)
	w.mu.RUnlock()

	w.frame.Add(1)
	for _, system := range systems {
		system.Update(dt)
	}
}

// RunSafe executes fn while holding the world's update lock
// Used by the driver for input mutation and render snapshots
func (w *World) RunSafe(fn func()) {
	w.updateMutex.Lock()
	defer w.updateMutex.Unlock()
	fn()
}

// FrameNumber returns the current frame index
func (w *World) FrameNumber() int64 {
	return w.frame.Load()
}

// PushEvent emits a fire-and-forget notification for observers
func (w *World) PushEvent(eventType event.EventType, payload any) {
	if w.eventQueue == nil {
		return
	}
	w.eventQueue.Push(event.GameEvent{
		Type:    eventType,
		Payload: payload,
		Frame:   w.frame.Load(),
	})
}
