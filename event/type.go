package event

// EventType represents the type of game event
//
// The queue carries fire-and-forget notifications for observers (audio,
// HUD). Authoritative state relay (kill counters, wave completion) is a
// synchronous call chain through the Director and never rides the queue.
type EventType int

const (
	// EventEnemySpawned signals an enemy entered the arena
	// Trigger: WaveSystem | Consumer: AudioSystem | Payload: *SpawnPayload
	EventEnemySpawned EventType = iota + 1

	// EventEnemyKilled signals an enemy died this frame
	// Trigger: enemy death handler | Consumer: AudioSystem | Payload: *KillPayload
	EventEnemyKilled

	// EventWaveStarted signals a new wave began spawning
	// Trigger: WaveSystem | Consumer: AudioSystem | Payload: *WavePayload
	EventWaveStarted

	// EventWaveCleared signals the active wave was fully eliminated
	// Trigger: WaveSystem | Consumer: AudioSystem | Payload: *WavePayload
	EventWaveCleared

	// EventPlayerDied signals the player's health reached zero
	// Trigger: player death handler | Consumer: AudioSystem | Payload: nil
	EventPlayerDied

	// EventVictory signals all configured waves were cleared
	// Trigger: Director | Consumer: AudioSystem | Payload: nil
	EventVictory
)
