package entity

import (
	"iter"
	"maps"
	"slices"

	"github.com/clowdy/clowdy/internal/core/ecs/component"
	"github.com/google/uuid"
)

// View is a read-only snapshot of the pools of one pool type, keyed by pool
// identifier. Pools added or removed after the snapshot are not reflected;
// the pools themselves are live.
type View struct {
	poolType component.PoolType
	pools    map[uuid.UUID]component.Reader
}

func (v View) PoolType() component.PoolType {
	return v.poolType
}

func (v View) Len() int {
	return len(v.pools)
}

func (v View) Empty() bool {
	return len(v.pools) == 0
}

func (v View) Get(id uuid.UUID) (component.Reader, bool) {
	pool, ok := v.pools[id]
	return pool, ok
}

// IDs returns the pool identifiers in a stable order.
func (v View) IDs() []uuid.UUID {
	return slices.SortedFunc(maps.Keys(v.pools), func(a, b uuid.UUID) int {
		return slices.Compare(a[:], b[:])
	})
}

// Pools returns the pools ordered by identifier.
func (v View) Pools() []component.Reader {
	out := make([]component.Reader, 0, len(v.pools))
	for _, id := range v.IDs() {
		out = append(out, v.pools[id])
	}
	return out
}

// All iterates pools in map order.
func (v View) All() iter.Seq2[uuid.UUID, component.Reader] {
	return maps.All(v.pools)
}

// Components flattens every pool into one slice.
func (v View) Components() []component.Component {
	var out []component.Component
	for _, pool := range v.pools {
		out = append(out, pool.Components()...)
	}
	return out
}
