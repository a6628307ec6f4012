package parameter

// Wave scheduling
const (
	// SpawnRadiusFloat is the radius of the spawn circle centered on the player
	SpawnRadiusFloat = 12.0

	// TimeBetweenWavesFloat is seconds between clearing a wave and starting the next
	TimeBetweenWavesFloat = 3.0
)

// Pool sizing defaults
const (
	// PoolSizeEnemy is the pre-populated handle count for the enemy category
	PoolSizeEnemy = 16

	// PoolSizeProjectile is the pre-populated handle count for the projectile category
	PoolSizeProjectile = 32
)

// Category tags
const (
	// TagEnemy is the pool category for basic enemies
	TagEnemy = "Enemy"

	// TagProjectile is the pool category for player projectiles
	TagProjectile = "Projectile"
)

// Template identifiers
const (
	// TemplateEnemyBasic is the component template for the basic chaser enemy
	TemplateEnemyBasic = "enemy.basic"

	// TemplateProjectileBolt is the component template for the player bolt
	TemplateProjectileBolt = "projectile.bolt"
)
