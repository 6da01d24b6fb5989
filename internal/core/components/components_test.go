package components

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/clowdy/clowdy/internal/core/ecs/component"
	"github.com/clowdy/clowdy/internal/core/ecs/entity"
	"github.com/clowdy/clowdy/internal/core/maths"
)

func builtins() []component.Component {
	return []component.Component{
		NewTransform(maths.Vec3{X: 1, Y: 2, Z: 3}),
		&Sprite{Texture: "hero.png", Tint: maths.Vec4{X: 1, Y: 1, Z: 1, W: 1}, Layer: 2, Frames: []int{0, 1, 2}},
		&RigidBody{Velocity: maths.Vec3{X: 1}, Mass: 2},
		&Collider{HalfExtents: maths.Vec3{X: 0.5, Y: 0.5, Z: 0.5}, Layer: 4},
		&Tag{Name: "hero"},
	}
}

func TestBuiltinsDeclarePools(t *testing.T) {
	cases := map[component.Type][]component.PoolType{
		TransformType: {component.PoolRender, component.PoolPhysics},
		SpriteType:    {component.PoolRender},
		RigidBodyType: {component.PoolPhysics},
		ColliderType:  {component.PoolCollision, component.PoolPhysics},
		TagType:       {component.PoolTest},
	}
	for _, c := range builtins() {
		assert.ElementsMatch(t, cases[c.Type()], c.PoolTypes(), c.Type().String())
	}
}

func TestBuiltinsCloneEqualAndIndependent(t *testing.T) {
	for _, c := range builtins() {
		clone := c.Clone()
		require.NotSame(t, c, clone)
		assert.True(t, c.Equal(clone), c.Type().String())
		assert.Equal(t, c.Hash(), clone.Hash(), c.Type().String())
	}
}

func TestBuiltinsDistinguishTypes(t *testing.T) {
	all := builtins()
	for i, a := range all {
		for j, b := range all {
			if i != j {
				assert.False(t, a.Equal(b), "%s vs %s", a.Type(), b.Type())
			}
		}
	}
}

func TestDefaultConstructedBuiltinsAreEqual(t *testing.T) {
	pairs := [][2]component.Component{
		{&Transform{}, &Transform{}},
		{&Sprite{}, &Sprite{}},
		{&RigidBody{}, &RigidBody{}},
		{&Collider{}, &Collider{}},
		{&Tag{}, &Tag{}},
	}
	for _, p := range pairs {
		assert.True(t, p[0].Equal(p[1]))
		assert.Equal(t, p[0].Hash(), p[1].Hash())
	}
}

func TestTransformNormalizesFloats(t *testing.T) {
	negZero := float32(math.Copysign(0, -1))
	nan := float32(math.NaN())

	a := &Transform{Position: maths.Vec3{X: negZero, Y: nan}}
	b := &Transform{Position: maths.Vec3{X: 0, Y: nan}}

	assert.True(t, a.Equal(b))
	assert.Equal(t, a.Hash(), b.Hash())
}

func TestTransformFieldChangeBreaksEquality(t *testing.T) {
	a := NewTransform(maths.Vec3{})
	b := NewTransform(maths.Vec3{})
	b.Translate(maths.Vec3{Z: 1})

	assert.False(t, a.Equal(b))
	assert.NotEqual(t, a.Hash(), b.Hash())
	assert.Equal(t, maths.Vec3{Z: 1}, b.Position)
}

func TestSpriteCloneCopiesFrames(t *testing.T) {
	s := &Sprite{Frames: []int{1, 2}}
	clone := s.Clone().(*Sprite)

	clone.Frames[0] = 9

	assert.Equal(t, []int{1, 2}, s.Frames)
	assert.False(t, s.Equal(clone))
}

func TestSpriteFramesOrderMatters(t *testing.T) {
	a := &Sprite{Frames: []int{1, 2}}
	b := &Sprite{Frames: []int{2, 1}}

	assert.False(t, a.Equal(b))
	assert.NotEqual(t, a.Hash(), b.Hash())
}

func TestColliderOverlaps(t *testing.T) {
	unit := &Collider{HalfExtents: maths.Vec3{X: 1, Y: 1, Z: 1}}

	assert.True(t, unit.Overlaps(maths.Vec3{}, unit, maths.Vec3{X: 1.5}))
	assert.True(t, unit.Overlaps(maths.Vec3{}, unit, maths.Vec3{X: 2}))
	assert.False(t, unit.Overlaps(maths.Vec3{}, unit, maths.Vec3{X: -2.5}))
	assert.False(t, unit.Overlaps(maths.Vec3{}, unit, maths.Vec3{Y: 3}))
}

func TestTransformAndColliderShareThePhysicsPool(t *testing.T) {
	e := entity.NewBuilder(nil).
		WithComponent(NewTransform(maths.Vec3{})).
		WithComponent(&Collider{HalfExtents: maths.Vec3{X: 1}}).
		BuildEntity()

	physics, ok := e.GetComponentPool(component.PoolPhysics)
	require.True(t, ok)
	assert.Equal(t, 2, physics.Size())

	collision, ok := e.GetComponentPool(component.PoolCollision)
	require.True(t, ok)
	assert.Equal(t, 1, collision.Size())
}

func TestBuiltinsAreNotEqualToTypedNil(t *testing.T) {
	pairs := [][2]component.Component{
		{&Transform{}, (*Transform)(nil)},
		{&Sprite{}, (*Sprite)(nil)},
		{&RigidBody{}, (*RigidBody)(nil)},
		{&Collider{}, (*Collider)(nil)},
		{&Tag{}, (*Tag)(nil)},
	}
	for _, p := range pairs {
		assert.NotPanics(t, func() {
			assert.False(t, p[0].Equal(p[1]))
		}, p[0].Type().String())
	}
}
