package component

import (
	"fmt"

	"github.com/google/uuid"
)

// Pool holds the components of one entity that declare one pool type. It keeps
// at most one component per Type and its size always matches its contents.
type Pool struct {
	id         uuid.UUID
	poolType   PoolType
	components map[Type]Component
	size       int
}

func NewPool(poolType PoolType) *Pool {
	return &Pool{
		id:         uuid.New(),
		poolType:   poolType,
		components: make(map[Type]Component),
	}
}

func (p *Pool) ID() uuid.UUID {
	return p.id
}

func (p *Pool) PoolType() PoolType {
	return p.poolType
}

func (p *Pool) Size() int {
	return p.size
}

// Add stores c under its Type. It refuses nil components and components whose
// Type is already present.
func (p *Pool) Add(c Component) bool {
	if IsNil(c) {
		return false
	}
	t := c.Type()
	if _, exists := p.components[t]; exists {
		return false
	}
	p.components[t] = c
	p.size++
	p.check()
	return true
}

// Remove deletes the entry for c's Type only when the stored component equals
// c. The size changes only if an entry was removed.
func (p *Pool) Remove(c Component) bool {
	if IsNil(c) {
		return false
	}
	t := c.Type()
	stored, exists := p.components[t]
	if !exists || !Equal(stored, c) {
		return false
	}
	delete(p.components, t)
	p.size--
	p.check()
	return true
}

// RemoveType deletes whatever component is stored under t and returns it.
// Owners use it to detach a component they hold regardless of how its Equal
// behaves.
func (p *Pool) RemoveType(t Type) (Component, bool) {
	stored, exists := p.components[t]
	if !exists {
		return nil, false
	}
	delete(p.components, t)
	p.size--
	p.check()
	return stored, true
}

func (p *Pool) Get(t Type) (Component, bool) {
	c, ok := p.components[t]
	return c, ok
}

func (p *Pool) Has(t Type) bool {
	_, ok := p.components[t]
	return ok
}

// Components returns a snapshot of the pool contents in no particular order.
func (p *Pool) Components() []Component {
	out := make([]Component, 0, len(p.components))
	for _, c := range p.components {
		out = append(out, c)
	}
	return out
}

// Equal compares pool type and contents. Identifiers are ignored.
func (p *Pool) Equal(other *Pool) bool {
	if p == nil || other == nil {
		return p == other
	}
	if p.poolType != other.poolType || len(p.components) != len(other.components) {
		return false
	}
	for t, c := range p.components {
		if !Equal(c, other.components[t]) {
			return false
		}
	}
	return true
}

func (p *Pool) Hash() uint64 {
	hashes := make([]uint64, 0, len(p.components))
	for _, c := range p.components {
		hashes = append(hashes, c.Hash())
	}
	return CombineUnordered(uint64(p.poolType), hashes...)
}

func (p *Pool) String() string {
	return fmt.Sprintf("pool(%s %s size=%d)", p.poolType, p.id, p.size)
}

func (p *Pool) check() {
	if p.size < 0 || p.size != len(p.components) {
		panic(fmt.Errorf("%w: %s has size %d with %d entries", ErrInvariant, p.id, p.size, len(p.components)))
	}
}

// Reader is the read-only face of a Pool handed to systems.
type Reader interface {
	ID() uuid.UUID
	PoolType() PoolType
	Size() int
	Get(t Type) (Component, bool)
	Has(t Type) bool
	Components() []Component
}

var _ Reader = (*Pool)(nil)

// Get returns the component of type t held by r as T. It reports false when
// the component is missing or is not a T.
func Get[T Component](r Reader, t Type) (T, bool) {
	var zero T
	c, ok := r.Get(t)
	if !ok {
		return zero, false
	}
	typed, ok := c.(T)
	return typed, ok
}
