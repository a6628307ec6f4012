package engine

import (
	"testing"

	"wavebreaker/component"
	"wavebreaker/core"
)

// TestStoreSetGetRemove tests the basic component lifecycle in a store
func TestStoreSetGetRemove(t *testing.T) {
	s := NewStore[component.HealthComponent]()
	e := core.NewEntity(0, 1)

	if _, ok := s.Get(e); ok {
		t.Error("Expected no component before Set")
	}

	s.Set(e, component.NewHealth(50))
	h, ok := s.Get(e)
	if !ok || h.Current != 50 || h.Max != 50 {
		t.Errorf("Expected 50/50 health, got %v ok=%v", h, ok)
	}

	// Update in place must not duplicate the entity in the index
	s.Set(e, component.HealthComponent{Current: 10, Max: 50})
	if s.Count() != 1 {
		t.Errorf("Expected count 1 after update, got %d", s.Count())
	}

	s.Remove(e)
	if s.Has(e) {
		t.Error("Expected component removed")
	}
	if s.Count() != 0 {
		t.Errorf("Expected count 0 after remove, got %d", s.Count())
	}
}

// TestStoreEntitiesSnapshot tests that Entities returns a safe copy
func TestStoreEntitiesSnapshot(t *testing.T) {
	s := NewStore[component.PlayerComponent]()
	a := core.NewEntity(0, 1)
	b := core.NewEntity(1, 1)
	s.Set(a, component.PlayerComponent{})
	s.Set(b, component.PlayerComponent{})

	entities := s.Entities()
	if len(entities) != 2 {
		t.Fatalf("Expected 2 entities, got %d", len(entities))
	}

	// Mutating the store must not affect the returned slice
	s.Remove(a)
	if len(entities) != 2 {
		t.Errorf("Returned slice changed under mutation, len %d", len(entities))
	}
}

// TestWorldHandleInvalidation tests generational handle checks across Clear
func TestWorldHandleInvalidation(t *testing.T) {
	w := NewWorld(nil)

	e := w.CreateEntity()
	if !w.Alive(e) {
		t.Fatal("Expected freshly created entity to be alive")
	}

	forged := core.NewEntity(e.Index(), e.Generation()+1)
	if w.Alive(forged) {
		t.Error("Expected forged generation to fail the alive check")
	}
	if w.Alive(core.EntityNone) {
		t.Error("Expected the zero handle to be invalid")
	}

	w.Clear()
	if w.Alive(e) {
		t.Error("Expected handle to be invalid after Clear")
	}
}

// orderProbe records execution order to verify priority sorting
type orderProbe struct {
	priority int
	order    *[]int
}

func (p *orderProbe) Update(dt float64) { *p.order = append(*p.order, p.priority) }
func (p *orderProbe) Priority() int     { return p.priority }

// TestWorldSystemPriority tests that systems run lowest priority first
func TestWorldSystemPriority(t *testing.T) {
	w := NewWorld(nil)
	var order []int

	w.AddSystem(&orderProbe{priority: 30, order: &order})
	w.AddSystem(&orderProbe{priority: 10, order: &order})
	w.AddSystem(&orderProbe{priority: 20, order: &order})

	w.Update(0.016)

	if len(order) != 3 || order[0] != 10 || order[1] != 20 || order[2] != 30 {
		t.Errorf("Expected priority order [10 20 30], got %v", order)
	}
}
