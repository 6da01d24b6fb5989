package systems

import (
	"context"
	"time"

	"github.com/clowdy/clowdy/internal/core/components"
	"github.com/clowdy/clowdy/internal/core/ecs/component"
	"github.com/clowdy/clowdy/internal/core/ecs/entity"
)

// Movement integrates rigid body velocity into the transform of every
// physics pool that holds both. Kinematic bodies are skipped.
type Movement struct{}

func NewMovement() *Movement { return &Movement{} }

func (*Movement) Name() string                 { return "movement" }
func (*Movement) PoolType() component.PoolType { return component.PoolPhysics }
func (*Movement) Priority() Priority           { return PriorityHigh }

func (*Movement) Update(ctx context.Context, dt time.Duration, view entity.View) error {
	seconds := float32(dt.Seconds())
	for _, pool := range view.Pools() {
		if err := ctx.Err(); err != nil {
			return err
		}
		transform, ok := component.Get[*components.Transform](pool, components.TransformType)
		if !ok {
			continue
		}
		body, ok := component.Get[*components.RigidBody](pool, components.RigidBodyType)
		if !ok || body.Kinematic {
			continue
		}
		transform.Translate(body.Velocity.Scale(seconds))
	}
	return nil
}
