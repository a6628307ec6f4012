package parameter

// System priorities, lower runs first
const (
	// PriorityWave runs wave scheduling before behavior so same-frame spawns tick
	PriorityWave = 10

	// PriorityBehavior runs enemy FSM updates
	PriorityBehavior = 20

	// PriorityProjectile runs projectile motion and contact checks
	PriorityProjectile = 30
)

// Event queue
const (
	// EventQueueSize is the ring buffer capacity, must be a power of two
	EventQueueSize = 1024

	// EventBufferMask is the index mask for the ring buffer
	EventBufferMask = EventQueueSize - 1
)
