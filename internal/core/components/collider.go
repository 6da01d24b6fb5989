package components

import (
	"github.com/clowdy/clowdy/internal/core/ecs/component"
	"github.com/clowdy/clowdy/internal/core/maths"
)

var (
	ColliderType  = component.NewType("collider")
	colliderPools = []component.PoolType{component.PoolCollision, component.PoolPhysics}
)

// Collider is an axis-aligned box centered on the entity's transform.
// Triggers report overlaps without a physical response.
type Collider struct {
	HalfExtents maths.Vec3
	Layer       uint32
	Trigger     bool
}

func (*Collider) Type() component.Type            { return ColliderType }
func (*Collider) PoolTypes() []component.PoolType { return colliderPools }

func (c *Collider) Equal(other component.Component) bool {
	o, ok := other.(*Collider)
	return ok && o != nil &&
		equalVec3(c.HalfExtents, o.HalfExtents) &&
		c.Layer == o.Layer &&
		c.Trigger == o.Trigger
}

func (c *Collider) Hash() uint64 {
	h := component.NewHasher(ColliderType)
	hashVec3(h, c.HalfExtents)
	return h.Uint32(c.Layer).Bool(c.Trigger).Sum64()
}

func (c *Collider) Clone() component.Component {
	clone := *c
	return &clone
}

// Overlaps reports whether two colliders placed at a and b intersect.
func (c *Collider) Overlaps(a maths.Vec3, other *Collider, b maths.Vec3) bool {
	d := a.Sub(b)
	return abs(d.X) <= c.HalfExtents.X+other.HalfExtents.X &&
		abs(d.Y) <= c.HalfExtents.Y+other.HalfExtents.Y &&
		abs(d.Z) <= c.HalfExtents.Z+other.HalfExtents.Z
}

func abs(f float32) float32 {
	if f < 0 {
		return -f
	}
	return f
}
