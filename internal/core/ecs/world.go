// Package ecs ties the entity-component core together. A World owns exactly
// one registry, and every entity built from the World publishes its pools
// there.
package ecs

import (
	"sync"

	"github.com/clowdy/clowdy/internal/core/ecs/component"
	"github.com/clowdy/clowdy/internal/core/ecs/entity"
	"github.com/clowdy/clowdy/internal/core/events/bus"
	"github.com/clowdy/clowdy/internal/core/observability/log"
	"github.com/google/uuid"
)

// World is the per-simulation context: the registry, its event bus and the
// entities created through it.
type World struct {
	mu       sync.Mutex
	manager  *entity.Manager
	events   bus.EventBus
	logger   log.Log
	entities map[uuid.UUID]*entity.Entity
}

func NewWorld(manager *entity.Manager, logger log.Log) *World {
	if logger == nil {
		logger = log.Nop()
	}
	if manager == nil {
		manager = entity.NewManager(logger, nil)
	}
	return &World{
		manager:  manager,
		events:   manager.Events(),
		logger:   logger.With(log.String("module", "ecs.world")),
		entities: make(map[uuid.UUID]*entity.Entity),
	}
}

func (w *World) Manager() *entity.Manager {
	return w.manager
}

// Events returns the bus the registry publishes on, or nil.
func (w *World) Events() bus.EventBus {
	return w.events
}

// Builder returns a fresh builder bound to the world's registry. Entities it
// builds are not tracked; use Spawn for that.
func (w *World) Builder() *entity.Builder {
	return entity.NewBuilder(w.manager)
}

// Spawn builds an entity from the given components and tracks it.
func (w *World) Spawn(components ...component.Component) *entity.Entity {
	b := w.Builder()
	for _, c := range components {
		b.WithComponent(c)
	}
	return w.Track(b.BuildEntity())
}

// Track records e as a live entity of this world.
func (w *World) Track(e *entity.Entity) *entity.Entity {
	w.entities[e.ID()] = e
	return e
}

// Despawn clears e and forgets it. It reports whether e was tracked.
func (w *World) Despawn(id uuid.UUID) bool {
	e, ok := w.entities[id]
	if !ok {
		return false
	}
	e.Clear()
	delete(w.entities, id)
	return true
}

func (w *World) Entity(id uuid.UUID) (*entity.Entity, bool) {
	e, ok := w.entities[id]
	return e, ok
}

// Entities returns the tracked entities in no particular order.
func (w *World) Entities() []*entity.Entity {
	out := make([]*entity.Entity, 0, len(w.entities))
	for _, e := range w.entities {
		out = append(out, e)
	}
	return out
}

// Len returns the number of tracked entities.
func (w *World) Len() int {
	return len(w.entities)
}

// Reset despawns every tracked entity.
func (w *World) Reset() {
	for id := range w.entities {
		w.Despawn(id)
	}
	w.logger.Debug("world reset")
}

// Mutate runs fn while holding the world lock. The core itself does no
// locking; goroutines that mutate entities of the same world go through
// Mutate so that an entity change and its registry publish happen as a unit.
func (w *World) Mutate(fn func(*World)) {
	w.mu.Lock()
	defer w.mu.Unlock()
	fn(w)
}
