package components

import "github.com/clowdy/clowdy/internal/core/ecs/component"

var (
	TagType  = component.NewType("tag")
	tagPools = []component.PoolType{component.PoolTest}
)

// Tag names an entity for lookups and debugging.
type Tag struct {
	Name string
}

func (*Tag) Type() component.Type            { return TagType }
func (*Tag) PoolTypes() []component.PoolType { return tagPools }

func (t *Tag) Equal(other component.Component) bool {
	o, ok := other.(*Tag)
	return ok && o != nil && t.Name == o.Name
}

func (t *Tag) Hash() uint64 {
	return component.NewHasher(TagType).String(t.Name).Sum64()
}

func (t *Tag) Clone() component.Component {
	clone := *t
	return &clone
}
