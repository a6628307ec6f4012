package engine

import (
	"errors"
	"testing"

	"github.com/go-gl/mathgl/mgl64"

	"wavebreaker/component"
	"wavebreaker/core"
)

const testTag = "Enemy"

// newTestPool builds a world and a pool with one configured category
func newTestPool(t *testing.T, size int) (*World, *EntityPool) {
	t.Helper()
	w := NewWorld(nil)
	p := NewEntityPool(w)
	p.RegisterTemplate("enemy.test", func(w *World, e core.Entity) {
		w.Components.Health.Set(e, component.NewHealth(30))
		w.Components.Behavior.Set(e, component.BehaviorComponent{State: component.BehaviorChase})
	})
	if err := p.Configure([]PoolCategory{{Tag: testTag, TemplateID: "enemy.test", Size: size}}); err != nil {
		t.Fatalf("Configure failed: %v", err)
	}
	p.Prewarm()
	return w, p
}

// TestPoolPrewarm tests that each category queue is filled exactly once
func TestPoolPrewarm(t *testing.T) {
	_, p := newTestPool(t, 4)

	if n := p.AvailableCount(testTag); n != 4 {
		t.Errorf("Expected 4 available after prewarm, got %d", n)
	}

	// A second prewarm must not add handles
	p.Prewarm()
	if n := p.AvailableCount(testTag); n != 4 {
		t.Errorf("Expected 4 available after repeated prewarm, got %d", n)
	}
}

// TestPoolRoundTrip tests release-then-acquire returns a handle from the
// same category without creating a duplicate active handle
func TestPoolRoundTrip(t *testing.T) {
	w, p := newTestPool(t, 2)

	e, err := p.Acquire(testTag, mgl64.Vec3{1, 0, 2}, mgl64.QuatIdent())
	if err != nil {
		t.Fatalf("Acquire failed: %v", err)
	}

	pooled, ok := w.Components.Pooled.Get(e)
	if !ok || !pooled.Active || pooled.Tag != testTag {
		t.Fatalf("Expected active pooled component with tag %q, got %+v ok=%v", testTag, pooled, ok)
	}
	tr, ok := w.Components.Transform.Get(e)
	if !ok || tr.Position != (mgl64.Vec3{1, 0, 2}) {
		t.Errorf("Expected transform applied on acquire, got %+v ok=%v", tr, ok)
	}

	if err := p.Release(e); err != nil {
		t.Fatalf("Release failed: %v", err)
	}
	if len(p.ActiveEntities(testTag)) != 0 {
		t.Error("Expected no active handles after release")
	}
	if w.Components.Behavior.Has(e) || w.Components.Health.Has(e) {
		t.Error("Expected gameplay components stripped on release")
	}

	e2, err := p.Acquire(testTag, mgl64.Vec3{}, mgl64.QuatIdent())
	if err != nil {
		t.Fatalf("Re-acquire failed: %v", err)
	}
	pooled2, _ := w.Components.Pooled.Get(e2)
	if pooled2.Tag != testTag {
		t.Errorf("Expected re-acquired handle in category %q, got %q", testTag, pooled2.Tag)
	}
	if got := len(p.ActiveEntities(testTag)); got != 1 {
		t.Errorf("Expected exactly 1 active handle, got %d", got)
	}
}

// TestPoolGrowthUnderExhaustion tests that a drained category synthesizes
// new valid handles instead of failing or reusing active ones
func TestPoolGrowthUnderExhaustion(t *testing.T) {
	_, p := newTestPool(t, 2)

	seen := make(map[core.Entity]bool)
	for i := 0; i < 5; i++ {
		e, err := p.Acquire(testTag, mgl64.Vec3{}, mgl64.QuatIdent())
		if err != nil {
			t.Fatalf("Acquire %d failed: %v", i, err)
		}
		if seen[e] {
			t.Fatalf("Acquire %d returned an already-active handle %#x", i, uint64(e))
		}
		seen[e] = true
	}

	if got := len(p.ActiveEntities(testTag)); got != 5 {
		t.Errorf("Expected 5 active handles after growth, got %d", got)
	}
}

// TestPoolUnknownCategory tests the unconfigured tag error path
func TestPoolUnknownCategory(t *testing.T) {
	_, p := newTestPool(t, 1)

	_, err := p.Acquire("Turret", mgl64.Vec3{}, mgl64.QuatIdent())
	if !errors.Is(err, ErrUnknownCategory) {
		t.Errorf("Expected ErrUnknownCategory, got %v", err)
	}
}

// TestPoolUnknownHandle tests release of handles the pool never issued
func TestPoolUnknownHandle(t *testing.T) {
	w, p := newTestPool(t, 1)

	if err := p.Release(core.NewEntity(99, 7)); !errors.Is(err, ErrUnknownHandle) {
		t.Errorf("Expected ErrUnknownHandle for forged handle, got %v", err)
	}

	// A live but non-pooled entity is also unrecognized
	outsider := w.CreateEntity()
	if err := p.Release(outsider); !errors.Is(err, ErrUnknownHandle) {
		t.Errorf("Expected ErrUnknownHandle for non-pooled entity, got %v", err)
	}
}

// TestPoolDoubleRelease tests that releasing an available handle is a no-op
// guarded against double-enqueue
func TestPoolDoubleRelease(t *testing.T) {
	_, p := newTestPool(t, 2)

	e, _ := p.Acquire(testTag, mgl64.Vec3{}, mgl64.QuatIdent())
	if err := p.Release(e); err != nil {
		t.Fatalf("First release failed: %v", err)
	}
	before := p.AvailableCount(testTag)

	if err := p.Release(e); err != nil {
		t.Errorf("Second release should be a no-op, got %v", err)
	}
	if after := p.AvailableCount(testTag); after != before {
		t.Errorf("Double release changed queue length: %d -> %d", before, after)
	}
}

// TestPoolConfigureUnknownTemplate tests rejection of unregistered templates
func TestPoolConfigureUnknownTemplate(t *testing.T) {
	w := NewWorld(nil)
	p := NewEntityPool(w)

	err := p.Configure([]PoolCategory{{Tag: "Enemy", TemplateID: "missing", Size: 1}})
	if !errors.Is(err, ErrUnknownTemplate) {
		t.Errorf("Expected ErrUnknownTemplate, got %v", err)
	}
}

// TestPoolReset tests that Reset re-warms queues against a cleared world
func TestPoolReset(t *testing.T) {
	w, p := newTestPool(t, 3)

	e, _ := p.Acquire(testTag, mgl64.Vec3{}, mgl64.QuatIdent())
	w.Clear()
	p.Reset()

	if n := p.AvailableCount(testTag); n != 3 {
		t.Errorf("Expected 3 available after reset, got %d", n)
	}
	if w.Alive(e) {
		t.Error("Expected pre-reset handle to be invalid")
	}
	if err := p.Release(e); !errors.Is(err, ErrUnknownHandle) {
		t.Errorf("Expected stale handle release to fail, got %v", err)
	}
}
