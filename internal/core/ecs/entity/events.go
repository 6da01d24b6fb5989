package entity

import (
	"github.com/clowdy/clowdy/internal/core/ecs/component"
	"github.com/google/uuid"
)

// Event types published on the manager's bus.
const (
	EventPoolPublished    = "pool.published"
	EventPoolRetracted    = "pool.retracted"
	EventComponentAdded   = "component.added"
	EventComponentRemoved = "component.removed"
	EventEntityCleared    = "entity.cleared"
)

const eventSource = "ecs.entity"

// PoolEvent is the payload of pool.published and pool.retracted.
type PoolEvent struct {
	PoolID   uuid.UUID
	PoolType component.PoolType
	Size     int
}

// ComponentEvent is the payload of component.added and component.removed.
type ComponentEvent struct {
	EntityID  uuid.UUID
	Component component.Component
}

// EntityEvent is the payload of entity.cleared.
type EntityEvent struct {
	EntityID uuid.UUID
	Removed  int
}
