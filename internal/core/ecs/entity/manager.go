package entity

import (
	"cmp"
	"maps"

	"github.com/clowdy/clowdy/internal/core/ecs/component"
	"github.com/clowdy/clowdy/internal/core/events/bus"
	"github.com/clowdy/clowdy/internal/core/observability/log"
	"github.com/clowdy/clowdy/pkg/sequence"
	"github.com/google/uuid"
)

// Manager indexes every live, non-empty pool by pool type so systems can find
// the components they care about without scanning entities.
//
// Only entities mutate the index. Manager does no locking; callers that mutate
// entities from several goroutines must serialize those mutations.
type Manager struct {
	pools  map[component.PoolType]map[uuid.UUID]*component.Pool
	logger log.Log
	events bus.EventBus
}

// NewManager creates an empty registry. Both arguments are optional.
func NewManager(logger log.Log, events bus.EventBus) *Manager {
	if logger == nil {
		logger = log.Nop()
	}
	return &Manager{
		pools:  make(map[component.PoolType]map[uuid.UUID]*component.Pool),
		logger: logger.With(log.String("module", "ecs.manager")),
		events: events,
	}
}

// put publishes pool under its type. Pools are mutated in place, so put is
// called after every change to keep the index current.
func (m *Manager) put(pool *component.Pool) {
	if pool == nil {
		return
	}
	if pool.Size() == 0 {
		m.logger.Warn("refusing to publish empty pool", log.Stringer("pool", pool.ID()))
		return
	}

	bucket, ok := m.pools[pool.PoolType()]
	if !ok {
		bucket = make(map[uuid.UUID]*component.Pool)
		m.pools[pool.PoolType()] = bucket
	}
	_, existed := bucket[pool.ID()]
	bucket[pool.ID()] = pool

	if !existed {
		m.logger.Debug("pool published",
			log.Stringer("pool", pool.ID()),
			log.Stringer("pool_type", pool.PoolType()),
		)
		m.emit(EventPoolPublished, poolEvent(pool))
	}
}

// remove retracts pool if it is indexed. Emptied buckets are dropped.
func (m *Manager) remove(pool *component.Pool) {
	if pool == nil {
		return
	}
	bucket, ok := m.pools[pool.PoolType()]
	if !ok {
		return
	}
	if stored, ok := bucket[pool.ID()]; !ok || stored != pool {
		return
	}

	delete(bucket, pool.ID())
	if len(bucket) == 0 {
		delete(m.pools, pool.PoolType())
	}

	m.logger.Debug("pool retracted",
		log.Stringer("pool", pool.ID()),
		log.Stringer("pool_type", pool.PoolType()),
	)
	m.emit(EventPoolRetracted, poolEvent(pool))
}

// View returns a read-only snapshot of the pools of poolType. The view is empty
// when no entity holds a component of that type.
func (m *Manager) View(poolType component.PoolType) View {
	bucket := m.pools[poolType]
	snapshot := make(map[uuid.UUID]component.Reader, len(bucket))
	for id, pool := range bucket {
		snapshot[id] = pool
	}
	return View{poolType: poolType, pools: snapshot}
}

// PoolTypes lists the pool types that currently have at least one pool.
func (m *Manager) PoolTypes() []component.PoolType {
	return sequence.FromSeq(maps.Keys(m.pools)).Sort(cmp.Compare[component.PoolType]).Collect()
}

// PoolCount returns the number of pools indexed under poolType.
func (m *Manager) PoolCount(poolType component.PoolType) int {
	return len(m.pools[poolType])
}

// Stats summarizes the index per pool type.
type Stats struct {
	PoolType   component.PoolType
	Pools      int
	Components int
}

func (m *Manager) Stats() []Stats {
	out := make([]Stats, 0, len(m.pools))
	for _, p := range m.PoolTypes() {
		s := Stats{PoolType: p, Pools: len(m.pools[p])}
		for _, pool := range m.pools[p] {
			s.Components += pool.Size()
		}
		out = append(out, s)
	}
	return out
}

// Events returns the bus lifecycle events are published on, or nil.
func (m *Manager) Events() bus.EventBus {
	return m.events
}

func (m *Manager) emit(eventType string, data any) {
	if m.events == nil || m.events.Subscribers(eventType) == 0 {
		return
	}
	if err := m.events.Publish(bus.NewEvent(eventType, eventSource, data)); err != nil {
		m.logger.Warn("event handler failed", log.String("event", eventType), log.Error(err))
	}
}

func poolEvent(pool *component.Pool) PoolEvent {
	return PoolEvent{PoolID: pool.ID(), PoolType: pool.PoolType(), Size: pool.Size()}
}
