package scene

import (
	"fmt"

	"github.com/clowdy/clowdy/internal/core/ecs"
	"github.com/clowdy/clowdy/internal/core/ecs/entity"
)

// Result maps entity names to the entities built for them, in replica order.
type Result struct {
	entities map[string][]*entity.Entity
	total    int
}

func (r *Result) Named(name string) []*entity.Entity {
	return r.entities[name]
}

// First returns the first replica built for name.
func (r *Result) First(name string) (*entity.Entity, bool) {
	es := r.entities[name]
	if len(es) == 0 {
		return nil, false
	}
	return es[0], true
}

// Len returns the number of entities built.
func (r *Result) Len() int {
	return r.total
}

// Build creates and tracks the scene's entities in world. Entities are built
// in file order, so copy_of always sees a fully built template. On error the
// entities built so far stay in the world.
func (s *Scene) Build(world *ecs.World) (*Result, error) {
	result := &Result{entities: make(map[string][]*entity.Entity, len(s.Entities))}
	builder := world.Builder()

	for _, entry := range s.Entities {
		var template *entity.Entity
		if entry.CopyOf != "" {
			var ok bool
			if template, ok = result.First(entry.CopyOf); !ok {
				return result, fmt.Errorf("%w: %q copies %q", ErrUnknownEntity, entry.Name, entry.CopyOf)
			}
		}

		for range entry.Replicas() {
			e, err := buildOne(builder, template, entry)
			if err != nil {
				return result, err
			}
			world.Track(e)
			result.entities[entry.Name] = append(result.entities[entry.Name], e)
			result.total++
		}
	}
	return result, nil
}

func buildOne(builder *entity.Builder, template *entity.Entity, entry EntitySpec) (*entity.Entity, error) {
	if template == nil {
		for i := range entry.Components {
			c, err := entry.Components[i].Decode()
			if err != nil {
				return nil, fmt.Errorf("%q: %w", entry.Name, err)
			}
			builder.WithComponent(c)
		}
		return builder.BuildEntity(), nil
	}

	e := builder.CopyEntity(template).BuildEntity()
	for i := range entry.Components {
		c, err := entry.Components[i].Decode()
		if err != nil {
			return nil, fmt.Errorf("%q: %w", entry.Name, err)
		}
		e.RemoveComponent(c.Type())
		e.AddComponent(c)
	}
	return e, nil
}
