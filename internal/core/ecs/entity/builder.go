package entity

import (
	"cmp"
	"slices"

	"github.com/clowdy/clowdy/internal/core/ecs/component"
)

// Builder stages components and produces wired entities. Staging keeps
// insertion order, so entities are assembled deterministically. A Builder is
// reusable: each BuildEntity call consumes the staged components.
type Builder struct {
	manager *Manager
	staged  map[component.Type]component.Component
	order   []component.Type
}

// NewBuilder creates a builder publishing into manager. A nil manager gets a
// private one.
func NewBuilder(manager *Manager) *Builder {
	if manager == nil {
		manager = NewManager(nil, nil)
	}
	return &Builder{
		manager: manager,
		staged:  make(map[component.Type]component.Component),
	}
}

// WithComponent stages c unless a component of the same type is already
// staged. Nil components are ignored.
func (b *Builder) WithComponent(c component.Component) *Builder {
	if component.IsNil(c) {
		return b
	}
	if _, exists := b.staged[c.Type()]; exists {
		return b
	}
	b.stage(c)
	return b
}

// CopyEntity stages deep clones of every component of e. Clones replace
// components of the same type that were staged before.
func (b *Builder) CopyEntity(e *Entity) *Builder {
	if e == nil {
		return b
	}
	components := e.GetAllComponents()
	slices.SortFunc(components, func(x, y component.Component) int {
		return cmp.Compare(x.Type(), y.Type())
	})
	for _, c := range components {
		b.stage(c.Clone())
	}
	return b
}

// BuildEntity creates an entity bound to the builder's manager with every
// staged component attached, then resets the staging area.
func (b *Builder) BuildEntity() *Entity {
	e := newEntity(b.manager)
	for _, t := range b.order {
		e.AddComponent(b.staged[t])
	}
	b.Reset()
	return e
}

// Staged returns the number of staged components.
func (b *Builder) Staged() int {
	return len(b.order)
}

// Reset drops every staged component.
func (b *Builder) Reset() {
	clear(b.staged)
	b.order = b.order[:0]
}

func (b *Builder) stage(c component.Component) {
	if _, exists := b.staged[c.Type()]; !exists {
		b.order = append(b.order, c.Type())
	}
	b.staged[c.Type()] = c
}
