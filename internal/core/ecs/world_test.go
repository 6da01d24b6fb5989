package ecs

import (
	"sync"
	"testing"

	"github.com/clowdy/clowdy/internal/core/ecs/component"
	"github.com/clowdy/clowdy/internal/core/ecs/entity"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var counterType = component.NewType("ecs_test.counter")

type counter struct{ N int }

func (*counter) Type() component.Type { return counterType }
func (*counter) PoolTypes() []component.PoolType {
	return []component.PoolType{component.PoolTest}
}
func (c *counter) Equal(other component.Component) bool {
	o, ok := other.(*counter)
	return ok && c.N == o.N
}
func (c *counter) Hash() uint64 { return component.NewHasher(counterType).Int(c.N).Sum64() }
func (c *counter) Clone() component.Component {
	clone := *c
	return &clone
}

func TestSpawnAndDespawn(t *testing.T) {
	w := NewWorld(nil, nil)

	e := w.Spawn(&counter{N: 1})
	require.Equal(t, 1, w.Len())
	assert.Equal(t, 1, w.Manager().PoolCount(component.PoolTest))

	got, ok := w.Entity(e.ID())
	require.True(t, ok)
	assert.Same(t, e, got)

	assert.True(t, w.Despawn(e.ID()))
	assert.False(t, w.Despawn(e.ID()))
	assert.Zero(t, w.Len())
	assert.Zero(t, w.Manager().PoolCount(component.PoolTest))
}

func TestBuilderSharesRegistry(t *testing.T) {
	w := NewWorld(entity.NewManager(nil, nil), nil)

	w.Builder().WithComponent(&counter{}).BuildEntity()
	w.Builder().WithComponent(&counter{}).BuildEntity()

	assert.Equal(t, 2, w.Manager().View(component.PoolTest).Len())
	assert.Zero(t, w.Len())
}

func TestReset(t *testing.T) {
	w := NewWorld(nil, nil)
	w.Spawn(&counter{N: 1})
	w.Spawn(&counter{N: 2})

	w.Reset()

	assert.Empty(t, w.Entities())
	assert.Empty(t, w.Manager().PoolTypes())
}

func TestMutateSerializesWriters(t *testing.T) {
	w := NewWorld(nil, nil)
	e := w.Spawn()

	var wg sync.WaitGroup
	for i := 0; i < 8; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			w.Mutate(func(*World) {
				if c, ok := entity.Get[*counter](e, counterType); ok {
					e.RemoveComponent(counterType)
					e.AddComponent(&counter{N: c.N + 1})
					return
				}
				e.AddComponent(&counter{N: 1})
			})
		}()
	}
	wg.Wait()

	c, ok := entity.Get[*counter](e, counterType)
	require.True(t, ok)
	assert.Equal(t, 8, c.N)
	assert.Equal(t, 1, w.Manager().PoolCount(component.PoolTest))
}
