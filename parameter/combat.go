package parameter

// Enemy behavior
const (
	// AttackRangeFloat is the distance at which an enemy switches from Chase to Attack
	AttackRangeFloat = 2.0

	// AttackCooldownFloat is seconds between enemy strikes while in range
	AttackCooldownFloat = 1.0

	// MoveSpeedFloat is enemy chase speed in units/sec
	MoveSpeedFloat = 3.0

	// TurnRateFloat is facing interpolation rate (fraction of remaining arc per second)
	TurnRateFloat = 8.0

	// EnemyContactDamage is damage per enemy strike on the player
	EnemyContactDamage = 10
)

// Hit points
const (
	// PlayerInitialHP is player starting hit points
	PlayerInitialHP = 100

	// EnemyInitialHP is basic enemy starting hit points
	EnemyInitialHP = 30
)

// Projectiles
const (
	// ProjectileSpeedFloat is projectile travel speed in units/sec
	ProjectileSpeedFloat = 20.0

	// ProjectileTTLFloat is projectile lifetime in seconds
	ProjectileTTLFloat = 2.0

	// ProjectileDamage is damage per projectile hit
	ProjectileDamage = 10

	// ProjectileHitRadiusFloat is the contact radius standing in for the
	// external collision layer's trigger volume
	ProjectileHitRadiusFloat = 0.5
)
