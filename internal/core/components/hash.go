// Package components holds the engine's built-in component types. Every type
// implements component.Component with explicit field-by-field Equal and Hash.
package components

import (
	"github.com/clowdy/clowdy/internal/core/ecs/component"
	"github.com/clowdy/clowdy/internal/core/maths"
)

func hashVec3(h *component.Hasher, v maths.Vec3) *component.Hasher {
	return h.Float32(v.X).Float32(v.Y).Float32(v.Z)
}

func hashVec4(h *component.Hasher, v maths.Vec4) *component.Hasher {
	return h.Float32(v.X).Float32(v.Y).Float32(v.Z).Float32(v.W)
}

func equalVec3(a, b maths.Vec3) bool {
	return component.Float32Equal(a.X, b.X) &&
		component.Float32Equal(a.Y, b.Y) &&
		component.Float32Equal(a.Z, b.Z)
}

func equalVec4(a, b maths.Vec4) bool {
	return equalVec3(maths.Vec3{X: a.X, Y: a.Y, Z: a.Z}, maths.Vec3{X: b.X, Y: b.Y, Z: b.Z}) &&
		component.Float32Equal(a.W, b.W)
}
