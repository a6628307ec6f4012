package component

import (
	"github.com/go-gl/mathgl/mgl64"
)

// TransformComponent holds world-space position and facing for an entity
type TransformComponent struct {
	Position    mgl64.Vec3
	Orientation mgl64.Quat
}

// NewTransform creates a transform at the given position with identity facing
func NewTransform(pos mgl64.Vec3) TransformComponent {
	return TransformComponent{
		Position:    pos,
		Orientation: mgl64.QuatIdent(),
	}
}

// Forward returns the unit vector the entity is facing
func (t TransformComponent) Forward() mgl64.Vec3 {
	return t.Orientation.Rotate(mgl64.Vec3{0, 0, 1})
}
