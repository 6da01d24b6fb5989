package component

var (
	physicsType = NewType("component_test.physics")
	renderType  = NewType("component_test.render")

	physicsPools = []PoolType{PoolPhysics, PoolTest}
	renderPools  = []PoolType{PoolRender, PoolTest}
)

type physicsStub struct {
	A float32
	B float64
}

func (*physicsStub) Type() Type            { return physicsType }
func (*physicsStub) PoolTypes() []PoolType { return physicsPools }

func (c *physicsStub) Equal(other Component) bool {
	o, ok := other.(*physicsStub)
	return ok && Float32Equal(c.A, o.A) && Float64Equal(c.B, o.B)
}

func (c *physicsStub) Hash() uint64 {
	return NewHasher(physicsType).Float32(c.A).Float64(c.B).Sum64()
}

func (c *physicsStub) Clone() Component {
	clone := *c
	return &clone
}

type renderStub struct {
	Texture string
}

func (*renderStub) Type() Type            { return renderType }
func (*renderStub) PoolTypes() []PoolType { return renderPools }

func (c *renderStub) Equal(other Component) bool {
	o, ok := other.(*renderStub)
	return ok && c.Texture == o.Texture
}

func (c *renderStub) Hash() uint64 {
	return NewHasher(renderType).String(c.Texture).Sum64()
}

func (c *renderStub) Clone() Component {
	clone := *c
	return &clone
}
