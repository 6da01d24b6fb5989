package entity

import (
	"fmt"
	"slices"

	"github.com/clowdy/clowdy/internal/core/ecs/component"
	"github.com/clowdy/clowdy/pkg/sequence"
	"github.com/google/uuid"
)

// Entity owns at most one component per component.Type and one pool per pool
// type declared by its components. Every pool it holds is non-empty and
// published in its Manager.
//
// Entities are created by a Builder.
type Entity struct {
	id         uuid.UUID
	components map[component.Type]component.Component
	pools      map[component.PoolType]*component.Pool
	manager    *Manager
}

func newEntity(manager *Manager) *Entity {
	return &Entity{
		id:         uuid.New(),
		components: make(map[component.Type]component.Component),
		pools:      make(map[component.PoolType]*component.Pool),
		manager:    manager,
	}
}

func (e *Entity) ID() uuid.UUID {
	return e.id
}

// Len returns the number of components held.
func (e *Entity) Len() int {
	return len(e.components)
}

// AddComponent attaches c and publishes every pool it joins. It returns false,
// changing nothing, when c is nil or a component of the same type is present.
func (e *Entity) AddComponent(c component.Component) bool {
	if component.IsNil(c) {
		return false
	}
	t := c.Type()
	if _, exists := e.components[t]; exists {
		return false
	}
	e.components[t] = c

	for _, poolType := range c.PoolTypes() {
		pool, ok := e.pools[poolType]
		if !ok {
			pool = component.NewPool(poolType)
			e.pools[poolType] = pool
		}
		pool.Add(c)
		e.manager.put(pool)
	}

	e.manager.emit(EventComponentAdded, ComponentEvent{EntityID: e.id, Component: c})
	return true
}

// HasComponent reports whether a component of type t is attached.
func (e *Entity) HasComponent(t component.Type) bool {
	_, ok := e.components[t]
	return ok
}

// HasComponentValue reports whether an attached component equals c.
func (e *Entity) HasComponentValue(c component.Component) bool {
	if component.IsNil(c) {
		return false
	}
	stored, ok := e.components[c.Type()]
	return ok && component.Equal(stored, c)
}

func (e *Entity) GetComponent(t component.Type) (component.Component, bool) {
	c, ok := e.components[t]
	return c, ok
}

// GetComponentPool returns this entity's pool for poolType.
func (e *Entity) GetComponentPool(poolType component.PoolType) (*component.Pool, bool) {
	pool, ok := e.pools[poolType]
	return pool, ok
}

// GetAllComponents returns a snapshot of the attached components in no
// particular order.
func (e *Entity) GetAllComponents() []component.Component {
	return sequence.FromMap(e.components).Collect()
}

// GetAllComponentPools returns a snapshot of the held pools in no particular
// order.
func (e *Entity) GetAllComponentPools() []*component.Pool {
	return sequence.FromMap(e.pools).Collect()
}

// RemoveComponent detaches the component of type t and returns it. Pools left
// empty are detached and retracted from the Manager; the others are published
// again.
func (e *Entity) RemoveComponent(t component.Type) (component.Component, bool) {
	c, ok := e.components[t]
	if !ok {
		return nil, false
	}
	delete(e.components, t)

	for _, poolType := range c.PoolTypes() {
		pool, ok := e.pools[poolType]
		if !ok {
			continue
		}
		pool.RemoveType(t)
		if pool.Size() == 0 {
			delete(e.pools, poolType)
			e.manager.remove(pool)
		} else {
			e.manager.put(pool)
		}
	}

	e.manager.emit(EventComponentRemoved, ComponentEvent{EntityID: e.id, Component: c})
	return c, true
}

// Clear removes every component and retracts every pool. The identifier and
// manager are kept.
func (e *Entity) Clear() {
	removed := len(e.components)
	for _, pool := range e.pools {
		e.manager.remove(pool)
	}
	clear(e.components)
	clear(e.pools)

	if removed > 0 {
		e.manager.emit(EventEntityCleared, EntityEvent{EntityID: e.id, Removed: removed})
	}
}

// Equal compares attached components only; identifiers are ignored.
func (e *Entity) Equal(other *Entity) bool {
	if e == nil || other == nil {
		return e == other
	}
	if len(e.components) != len(other.components) {
		return false
	}
	for t, c := range e.components {
		if !component.Equal(c, other.components[t]) {
			return false
		}
	}
	return true
}

// Hash agrees with Equal.
func (e *Entity) Hash() uint64 {
	hashes := sequence.Map(sequence.FromMap(e.components), component.Component.Hash).Collect()
	return component.CombineUnordered(0, hashes...)
}

func (e *Entity) String() string {
	names := sequence.Map(sequence.FromMap(e.components), func(c component.Component) string {
		return c.Type().String()
	}).Collect()
	slices.Sort(names)
	return fmt.Sprintf("entity(%s %v)", e.id, names)
}

// Get returns the component of type t as T. It reports false when the
// component is missing or is not a T.
func Get[T component.Component](e *Entity, t component.Type) (T, bool) {
	var zero T
	c, ok := e.GetComponent(t)
	if !ok {
		return zero, false
	}
	typed, ok := c.(T)
	return typed, ok
}
