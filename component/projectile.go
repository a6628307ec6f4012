package component

import (
	"github.com/go-gl/mathgl/mgl64"
)

// ProjectileComponent drives straight-line projectile motion
type ProjectileComponent struct {
	Velocity mgl64.Vec3

	// TTL is remaining lifetime in seconds; expired projectiles return to the pool
	TTL float64

	// Damage applied to the first entity contacted
	Damage int
}
