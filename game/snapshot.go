package game

import (
	"github.com/go-gl/mathgl/mgl64"

	"wavebreaker/component"
)

// EntitySnapshot is one renderable entity: category tag and position
type EntitySnapshot struct {
	Tag      string
	Position mgl64.Vec3
}

// Snapshot is a read-only copy of renderable state for the host driver
// The core performs no rendering; the driver draws whatever it likes from this
type Snapshot struct {
	State     SessionState
	Score     int
	Elapsed   float64
	WaveIndex int
	WaveName  string
	Alive     int

	PlayerPosition mgl64.Vec3
	PlayerHealth   component.HealthComponent

	Entities []EntitySnapshot
}

// Snapshot captures the current frame's renderable state
func (s *Simulation) Snapshot() Snapshot {
	snap := Snapshot{
		State:    s.director.State(),
		Score:    s.director.Score(),
		Elapsed:  s.director.Elapsed(),
		WaveName: s.waves.CurrentWave(),
	}
	snap.WaveIndex, _, snap.Alive, _ = s.waves.Progress()

	if t, ok := s.world.Components.Transform.Get(s.player); ok {
		snap.PlayerPosition = t.Position
	}
	if h, ok := s.world.Components.Health.Get(s.player); ok {
		snap.PlayerHealth = h
	}

	for _, e := range s.world.Components.Pooled.Entities() {
		pooled, ok := s.world.Components.Pooled.Get(e)
		if !ok || !pooled.Active {
			continue
		}
		t, ok := s.world.Components.Transform.Get(e)
		if !ok {
			continue
		}
		snap.Entities = append(snap.Entities, EntitySnapshot{Tag: pooled.Tag, Position: t.Position})
	}
	return snap
}
