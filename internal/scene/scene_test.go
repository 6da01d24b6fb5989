package scene

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gopkg.in/yaml.v3"

	"github.com/clowdy/clowdy/internal/core/components"
	"github.com/clowdy/clowdy/internal/core/ecs"
	"github.com/clowdy/clowdy/internal/core/ecs/component"
	"github.com/clowdy/clowdy/internal/core/ecs/entity"
	"github.com/clowdy/clowdy/internal/core/maths"
)

const demo = `
name: demo
entities:
  - name: crate
    components:
      - kind: transform
        position: [0, 1, 0]
      - kind: collider
        half_extents: [0.5, 0.5, 0.5]
        layer: 2
      - kind: sprite
        texture: crate.png
        frames: [0, 1]
  - name: stack
    copy_of: crate
    count: 3
  - name: ball
    copy_of: crate
    components:
      - kind: transform
        position: [4, 0, 0]
      - kind: rigidbody
        velocity: [1, 0, 0]
`

func load(t *testing.T, doc string) *Scene {
	t.Helper()
	s, err := Load(strings.NewReader(doc))
	require.NoError(t, err)
	return s
}

func TestLoad(t *testing.T) {
	s := load(t, demo)

	assert.Equal(t, "demo", s.Name)
	require.Len(t, s.Entities, 3)
	assert.Equal(t, 3, s.Entities[1].Replicas())
	assert.Equal(t, 1, s.Entities[2].Replicas())

	c, err := s.Entities[0].Components[0].Decode()
	require.NoError(t, err)
	assert.True(t, c.Equal(&components.Transform{
		Position: maths.Vec3{Y: 1},
		Scale:    maths.Vec3{X: 1, Y: 1, Z: 1},
	}))
}

func TestLoadEmpty(t *testing.T) {
	s := load(t, "")
	assert.Empty(t, s.Entities)
}

func TestDecodeDefaults(t *testing.T) {
	s := load(t, `
entities:
  - name: e
    components:
      - kind: sprite
        texture: a.png
      - kind: rigidbody
`)
	sprite, err := s.Entities[0].Components[0].Decode()
	require.NoError(t, err)
	assert.Equal(t, maths.Vec4{X: 1, Y: 1, Z: 1, W: 1}, sprite.(*components.Sprite).Tint)

	body, err := s.Entities[0].Components[1].Decode()
	require.NoError(t, err)
	assert.Equal(t, float32(1), body.(*components.RigidBody).Mass)
}

func TestLoadRejects(t *testing.T) {
	cases := map[string]struct {
		doc string
		err error
	}{
		"unknown kind": {
			doc: "entities: [{name: a, components: [{kind: laser}]}]",
			err: ErrUnknownComponent,
		},
		"forward copy": {
			doc: "entities: [{name: a, copy_of: b}, {name: b}]",
			err: ErrUnknownEntity,
		},
		"duplicate": {
			doc: "entities: [{name: a}, {name: a}]",
			err: ErrDuplicateEntity,
		},
		"unnamed": {
			doc: "entities: [{count: 2}]",
			err: ErrInvalidScene,
		},
		"negative count": {
			doc: "entities: [{name: a, count: -1}]",
			err: ErrInvalidScene,
		},
	}
	for name, tc := range cases {
		t.Run(name, func(t *testing.T) {
			_, err := Load(strings.NewReader(tc.doc))
			assert.ErrorIs(t, err, tc.err)
		})
	}
}

func TestLoadRejectsMalformedComponents(t *testing.T) {
	for name, doc := range map[string]string{
		"no kind":      "entities: [{name: a, components: [{texture: x}]}]",
		"short vector": "entities: [{name: a, components: [{kind: transform, position: [1, 2]}]}]",
		"no texture":   "entities: [{name: a, components: [{kind: sprite}]}]",
		"heavy":        "entities: [{name: a, components: [{kind: rigidbody, mass: -2}]}]",
		"unknown key":  "entities: [{name: a, colour: red}]",
		"body typo":    "entities: [{name: a, components: [{kind: rigidbody, velocty: [1, 0, 0]}]}]",
	} {
		t.Run(name, func(t *testing.T) {
			_, err := Load(strings.NewReader(doc))
			assert.Error(t, err)
		})
	}
}

func TestDecodeStrict(t *testing.T) {
	var node yaml.Node
	require.NoError(t, yaml.Unmarshal([]byte("{kind: tag, name: hero}"), &node))
	body := node.Content[0]

	var tag struct {
		Name string `yaml:"name"`
	}
	require.NoError(t, DecodeStrict(body, &tag))
	assert.Equal(t, "hero", tag.Name)
	assert.Len(t, body.Content, 4)

	var other struct {
		Title string `yaml:"title"`
	}
	assert.Error(t, DecodeStrict(body, &other))
}

func TestBuild(t *testing.T) {
	world := ecs.NewWorld(nil, nil)
	result, err := load(t, demo).Build(world)
	require.NoError(t, err)

	assert.Equal(t, 5, result.Len())
	assert.Equal(t, 5, world.Len())
	assert.Len(t, result.Named("stack"), 3)

	crate, ok := result.First("crate")
	require.True(t, ok)
	for _, replica := range result.Named("stack") {
		assert.True(t, crate.Equal(replica))
		assert.NotEqual(t, crate.ID(), replica.ID())

		original, _ := crate.GetComponent(components.SpriteType)
		copied, _ := replica.GetComponent(components.SpriteType)
		assert.NotSame(t, original, copied)
	}

	ball, ok := result.First("ball")
	require.True(t, ok)
	transform, ok := entity.Get[*components.Transform](ball, components.TransformType)
	require.True(t, ok)
	assert.Equal(t, maths.Vec3{X: 4}, transform.Position)
	assert.True(t, ball.HasComponent(components.RigidBodyType))
	assert.True(t, ball.HasComponent(components.ColliderType))

	assert.Equal(t, 5, world.Manager().View(component.PoolRender).Len())
	assert.Equal(t, 5, world.Manager().View(component.PoolCollision).Len())
	physics, _ := ball.GetComponentPool(component.PoolPhysics)
	assert.Equal(t, 3, physics.Size())
}

func TestBuildUnknownTemplate(t *testing.T) {
	s := &Scene{Entities: []EntitySpec{{Name: "a", CopyOf: "ghost"}}}

	_, err := s.Build(ecs.NewWorld(nil, nil))
	assert.ErrorIs(t, err, ErrUnknownEntity)
}

func TestRegisterKind(t *testing.T) {
	decode := func(*yaml.Node) (component.Component, error) { return &components.Tag{Name: "custom"}, nil }

	require.NoError(t, RegisterKind("scene_test.custom", decode))
	assert.ErrorIs(t, RegisterKind("scene_test.custom", decode), ErrDuplicateKind)
	assert.ErrorIs(t, RegisterKind("transform", decode), ErrDuplicateKind)

	s := load(t, "entities: [{name: a, components: [{kind: scene_test.custom}]}]")
	c, err := s.Entities[0].Components[0].Decode()
	require.NoError(t, err)
	assert.Equal(t, "custom", c.(*components.Tag).Name)
}
