package component

// BehaviorState is the tag of an enemy behavior variant
type BehaviorState uint8

const (
	// BehaviorChase closes distance to the player
	BehaviorChase BehaviorState = iota

	// BehaviorAttack strikes the player on a cooldown while in range
	BehaviorAttack
)

// String returns the state name for logs and tests
func (s BehaviorState) String() string {
	switch s {
	case BehaviorChase:
		return "Chase"
	case BehaviorAttack:
		return "Attack"
	default:
		return "Unknown"
	}
}

// BehaviorComponent holds the active behavior variant and its per-enemy context
// Exactly one state is active at a time; transitions run exit -> assign -> enter
type BehaviorComponent struct {
	State BehaviorState

	// Cooldown is seconds until the next attack may fire
	// Attack.enter zeroes it so the first strike lands immediately
	Cooldown float64
}
