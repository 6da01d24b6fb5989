package entity

import "github.com/clowdy/clowdy/internal/core/ecs/component"

var (
	physicsType = component.NewType("entity_test.physics")
	renderType  = component.NewType("entity_test.render")
	spriteType  = component.NewType("entity_test.sprite")
	bodyType    = component.NewType("entity_test.body")
)

// physicsComponent declares PHYSICS and TEST.
type physicsComponent struct {
	A float32
}

func (*physicsComponent) Type() component.Type { return physicsType }
func (*physicsComponent) PoolTypes() []component.PoolType {
	return []component.PoolType{component.PoolPhysics, component.PoolTest}
}

func (c *physicsComponent) Equal(other component.Component) bool {
	o, ok := other.(*physicsComponent)
	return ok && component.Float32Equal(c.A, o.A)
}

func (c *physicsComponent) Hash() uint64 {
	return component.NewHasher(physicsType).Float32(c.A).Sum64()
}

func (c *physicsComponent) Clone() component.Component {
	clone := *c
	return &clone
}

// renderComponent declares RENDER and TEST.
type renderComponent struct {
	B float32
}

func (*renderComponent) Type() component.Type { return renderType }
func (*renderComponent) PoolTypes() []component.PoolType {
	return []component.PoolType{component.PoolRender, component.PoolTest}
}

func (c *renderComponent) Equal(other component.Component) bool {
	o, ok := other.(*renderComponent)
	return ok && component.Float32Equal(c.B, o.B)
}

func (c *renderComponent) Hash() uint64 {
	return component.NewHasher(renderType).Float32(c.B).Sum64()
}

func (c *renderComponent) Clone() component.Component {
	clone := *c
	return &clone
}

// spriteComponent declares RENDER only.
type spriteComponent struct {
	Frames []int
}

func (*spriteComponent) Type() component.Type { return spriteType }
func (*spriteComponent) PoolTypes() []component.PoolType {
	return []component.PoolType{component.PoolRender}
}

func (c *spriteComponent) Equal(other component.Component) bool {
	o, ok := other.(*spriteComponent)
	if !ok || len(c.Frames) != len(o.Frames) {
		return false
	}
	for i := range c.Frames {
		if c.Frames[i] != o.Frames[i] {
			return false
		}
	}
	return true
}

func (c *spriteComponent) Hash() uint64 {
	h := component.NewHasher(spriteType).Int(len(c.Frames))
	for _, f := range c.Frames {
		h.Int(f)
	}
	return h.Sum64()
}

func (c *spriteComponent) Clone() component.Component {
	return &spriteComponent{Frames: append([]int(nil), c.Frames...)}
}

// bodyComponent declares RENDER and PHYSICS.
type bodyComponent struct {
	Mass float32
}

func (*bodyComponent) Type() component.Type { return bodyType }
func (*bodyComponent) PoolTypes() []component.PoolType {
	return []component.PoolType{component.PoolRender, component.PoolPhysics}
}

func (c *bodyComponent) Equal(other component.Component) bool {
	o, ok := other.(*bodyComponent)
	return ok && component.Float32Equal(c.Mass, o.Mass)
}

func (c *bodyComponent) Hash() uint64 {
	return component.NewHasher(bodyType).Float32(c.Mass).Sum64()
}

func (c *bodyComponent) Clone() component.Component {
	clone := *c
	return &clone
}

var rawType = component.NewType("entity_test.raw")

// rawComponent compares its float with ==, so a NaN value is not equal to
// itself.
type rawComponent struct {
	F float64
}

func (*rawComponent) Type() component.Type { return rawType }
func (*rawComponent) PoolTypes() []component.PoolType {
	return []component.PoolType{component.PoolPhysics}
}

func (c *rawComponent) Equal(other component.Component) bool {
	o, ok := other.(*rawComponent)
	return ok && o != nil && c.F == o.F
}

func (c *rawComponent) Hash() uint64 {
	return component.NewHasher(rawType).Float64(c.F).Sum64()
}

func (c *rawComponent) Clone() component.Component {
	clone := *c
	return &clone
}
