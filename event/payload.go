package event

import (
	"wavebreaker/core"
)

// GameEvent is a single notification moving through the queue
type GameEvent struct {
	Type    EventType
	Payload any
	Frame   int64
}

// KillPayload accompanies EventEnemyKilled
type KillPayload struct {
	Entity    core.Entity
	WaveIndex int
}

// SpawnPayload accompanies EventEnemySpawned
type SpawnPayload struct {
	Entity core.Entity
	Tag    string
}

// WavePayload accompanies EventWaveStarted and EventWaveCleared
type WavePayload struct {
	Index int
	Name  string
}
