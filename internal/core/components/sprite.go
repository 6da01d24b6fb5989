package components

import (
	"github.com/clowdy/clowdy/internal/core/ecs/component"
	"github.com/clowdy/clowdy/internal/core/maths"
)

var (
	SpriteType  = component.NewType("sprite")
	spritePools = []component.PoolType{component.PoolRender}
)

// Sprite is a textured quad. Frames lists atlas frame indices for animation.
type Sprite struct {
	Texture string
	Tint    maths.Vec4
	Layer   int
	Frames  []int
}

func (*Sprite) Type() component.Type            { return SpriteType }
func (*Sprite) PoolTypes() []component.PoolType { return spritePools }

func (s *Sprite) Equal(other component.Component) bool {
	o, ok := other.(*Sprite)
	if !ok || o == nil || s.Texture != o.Texture || s.Layer != o.Layer || !equalVec4(s.Tint, o.Tint) {
		return false
	}
	if len(s.Frames) != len(o.Frames) {
		return false
	}
	for i := range s.Frames {
		if s.Frames[i] != o.Frames[i] {
			return false
		}
	}
	return true
}

func (s *Sprite) Hash() uint64 {
	h := component.NewHasher(SpriteType).String(s.Texture).Int(s.Layer)
	hashVec4(h, s.Tint)
	h.Int(len(s.Frames))
	for _, f := range s.Frames {
		h.Int(f)
	}
	return h.Sum64()
}

func (s *Sprite) Clone() component.Component {
	clone := *s
	if s.Frames != nil {
		clone.Frames = append(make([]int, 0, len(s.Frames)), s.Frames...)
	}
	return &clone
}
