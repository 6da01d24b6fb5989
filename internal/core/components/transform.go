package components

import (
	"github.com/clowdy/clowdy/internal/core/ecs/component"
	"github.com/clowdy/clowdy/internal/core/maths"
)

var (
	TransformType  = component.NewType("transform")
	transformPools = []component.PoolType{component.PoolRender, component.PoolPhysics}
)

// Transform places an entity in the world. Rotation holds Euler angles in
// radians.
type Transform struct {
	Position maths.Vec3
	Rotation maths.Vec3
	Scale    maths.Vec3
}

// NewTransform returns a transform at position with unit scale.
func NewTransform(position maths.Vec3) *Transform {
	return &Transform{Position: position, Scale: maths.Vec3{X: 1, Y: 1, Z: 1}}
}

func (*Transform) Type() component.Type            { return TransformType }
func (*Transform) PoolTypes() []component.PoolType { return transformPools }

func (t *Transform) Equal(other component.Component) bool {
	o, ok := other.(*Transform)
	return ok && o != nil &&
		equalVec3(t.Position, o.Position) &&
		equalVec3(t.Rotation, o.Rotation) &&
		equalVec3(t.Scale, o.Scale)
}

func (t *Transform) Hash() uint64 {
	h := component.NewHasher(TransformType)
	hashVec3(h, t.Position)
	hashVec3(h, t.Rotation)
	hashVec3(h, t.Scale)
	return h.Sum64()
}

func (t *Transform) Clone() component.Component {
	clone := *t
	return &clone
}

// Translate moves the transform by delta.
func (t *Transform) Translate(delta maths.Vec3) {
	t.Position = t.Position.Add(delta)
}
