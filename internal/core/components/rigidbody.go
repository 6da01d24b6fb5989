package components

import (
	"github.com/clowdy/clowdy/internal/core/ecs/component"
	"github.com/clowdy/clowdy/internal/core/maths"
)

var (
	RigidBodyType  = component.NewType("rigidbody")
	rigidBodyPools = []component.PoolType{component.PoolPhysics}
)

// RigidBody carries the state a physics system integrates. A kinematic body
// is moved by its owner and ignores forces.
type RigidBody struct {
	Velocity  maths.Vec3
	Mass      float32
	Kinematic bool
}

func (*RigidBody) Type() component.Type            { return RigidBodyType }
func (*RigidBody) PoolTypes() []component.PoolType { return rigidBodyPools }

func (r *RigidBody) Equal(other component.Component) bool {
	o, ok := other.(*RigidBody)
	return ok && o != nil &&
		equalVec3(r.Velocity, o.Velocity) &&
		component.Float32Equal(r.Mass, o.Mass) &&
		r.Kinematic == o.Kinematic
}

func (r *RigidBody) Hash() uint64 {
	h := component.NewHasher(RigidBodyType)
	hashVec3(h, r.Velocity)
	return h.Float32(r.Mass).Bool(r.Kinematic).Sum64()
}

func (r *RigidBody) Clone() component.Component {
	clone := *r
	return &clone
}
