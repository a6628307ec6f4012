package engine

import (
	"errors"
	"fmt"
	"log"
	"sync"

	"github.com/go-gl/mathgl/mgl64"

	"wavebreaker/component"
	"wavebreaker/core"
)

var (
	// ErrUnknownCategory is returned when acquiring from an unconfigured tag
	ErrUnknownCategory = errors.New("entity pool: unknown category")

	// ErrUnknownHandle is returned when releasing a handle the pool never issued
	ErrUnknownHandle = errors.New("entity pool: unknown handle")

	// ErrUnknownTemplate is returned when a category names an unregistered template
	ErrUnknownTemplate = errors.New("entity pool: unknown template")
)

// TemplateFunc applies a category's component set to a freshly leased entity
type TemplateFunc func(w *World, e core.Entity)

// PoolCategory configures one recyclable entity category
type PoolCategory struct {
	Tag        string
	TemplateID string
	Size       int
}

// poolEntry tracks one category's template and its queue of available handles
type poolEntry struct {
	tag       string
	template  TemplateFunc
	size      int
	available []core.Entity // FIFO
}

// EntityPool hands out and reclaims entity handles by category tag
//
// Handles are created once at prewarm (or lazily on exhaustion), then reused
// indefinitely: release flips them to available, acquire flips them back.
// A handle is active xor available, never both; the PooledComponent Active
// flag is the authority and guards against double-enqueue
type EntityPool struct {
	mu        sync.Mutex
	world     *World
	templates map[string]TemplateFunc
	entries   map[string]*poolEntry
	prewarmed bool
}

// NewEntityPool creates an empty pool bound to a world
func NewEntityPool(world *World) *EntityPool {
	return &EntityPool{
		world:     world,
		templates: make(map[string]TemplateFunc),
		entries:   make(map[string]*poolEntry),
	}
}

// RegisterTemplate binds a template id to its component constructor
func (p *EntityPool) RegisterTemplate(id string, fn TemplateFunc) {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.templates[id] = fn
}

// Configure installs the category set. Every category must name a registered
// template. Must be called before Prewarm
func (p *EntityPool) Configure(categories []PoolCategory) error {
	p.mu.Lock()
	defer p.mu.Unlock()

	for _, cat := range categories {
		tmpl, ok := p.templates[cat.TemplateID]
		if !ok {
			return fmt.Errorf("%w: %s", ErrUnknownTemplate, cat.TemplateID)
		}
		p.entries[cat.Tag] = &poolEntry{
			tag:       cat.Tag,
			template:  tmpl,
			size:      cat.Size,
			available: make([]core.Entity, 0, cat.Size),
		}
	}
	return nil
}

// Prewarm fills each category's queue to its configured size, exactly once
func (p *EntityPool) Prewarm() {
	p.mu.Lock()
	defer p.mu.Unlock()

	if p.prewarmed {
		return
	}
	p.prewarmed = true

	for _, entry := range p.entries {
		for i := 0; i < entry.size; i++ {
			entry.available = append(entry.available, p.newHandle(entry.tag))
		}
	}
}

// newHandle creates a dormant pool-owned entity, caller holds p.mu
func (p *EntityPool) newHandle(tag string) core.Entity {
	e := p.world.CreateEntity()
	p.world.Components.Pooled.Set(e, component.PooledComponent{Tag: tag, Active: false})
	return e
}

// Acquire leases a handle from the tag's queue, synthesizing a new one if
// the queue is exhausted. Spawning never blocks gameplay
func (p *EntityPool) Acquire(tag string, pos mgl64.Vec3, orient mgl64.Quat) (core.Entity, error) {
	p.mu.Lock()
	entry, ok := p.entries[tag]
	if !ok {
		p.mu.Unlock()
		log.Printf("pool: acquire for unconfigured category %q", tag)
		return core.EntityNone, ErrUnknownCategory
	}

	var e core.Entity
	if len(entry.available) > 0 {
		e = entry.available[0]
		entry.available = entry.available[1:]
	} else {
		e = p.newHandle(tag)
		log.Printf("pool: category %q exhausted, growing past %d", tag, entry.size)
	}
	template := entry.template
	p.mu.Unlock()

	template(p.world, e)
	p.world.Components.Pooled.Set(e, component.PooledComponent{Tag: tag, Active: true})
	p.world.Components.Transform.Set(e, component.TransformComponent{Position: pos, Orientation: orient})
	return e, nil
}

// Release deactivates a handle and re-enqueues it under its origin category
// Releasing an already-available handle is a no-op; a handle the pool never
// issued fails with ErrUnknownHandle (logged, not fatal)
func (p *EntityPool) Release(e core.Entity) error {
	if !p.world.Alive(e) {
		log.Printf("pool: release of unrecognized handle %#x", uint64(e))
		return ErrUnknownHandle
	}

	pooled, ok := p.world.Components.Pooled.Get(e)
	if !ok {
		log.Printf("pool: release of non-pooled entity %#x", uint64(e))
		return ErrUnknownHandle
	}
	if !pooled.Active {
		return nil // Already in the queue
	}

	// Strip gameplay components so systems stop seeing the entity
	// Transform is left behind and overwritten on next acquire
	p.world.Components.Health.Remove(e)
	p.world.Components.Behavior.Remove(e)
	p.world.Components.Projectile.Remove(e)
	p.world.Components.Pooled.Set(e, component.PooledComponent{Tag: pooled.Tag, Active: false})

	p.mu.Lock()
	if entry, ok := p.entries[pooled.Tag]; ok {
		entry.available = append(entry.available, e)
	}
	p.mu.Unlock()
	return nil
}

// ActiveEntities returns all currently leased handles for a tag
func (p *EntityPool) ActiveEntities(tag string) []core.Entity {
	var result []core.Entity
	for _, e := range p.world.Components.Pooled.Entities() {
		if pooled, ok := p.world.Components.Pooled.Get(e); ok && pooled.Active && pooled.Tag == tag {
			result = append(result, e)
		}
	}
	return result
}

// AvailableCount returns the queue length for a tag, 0 for unknown tags
func (p *EntityPool) AvailableCount(tag string) int {
	p.mu.Lock()
	defer p.mu.Unlock()
	if entry, ok := p.entries[tag]; ok {
		return len(entry.available)
	}
	return 0
}

// Reset drains every queue and re-warms the pool against a cleared world
func (p *EntityPool) Reset() {
	p.mu.Lock()
	for _, entry := range p.entries {
		entry.available = entry.available[:0]
	}
	p.prewarmed = false
	p.mu.Unlock()
	p.Prewarm()
}
