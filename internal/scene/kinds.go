package scene

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"sync"

	"gopkg.in/yaml.v3"

	"github.com/clowdy/clowdy/internal/core/components"
	"github.com/clowdy/clowdy/internal/core/ecs/component"
	"github.com/clowdy/clowdy/internal/core/maths"
)

var ErrDuplicateKind = errors.New("component kind already registered")

// Decoder builds a component from the YAML body of a component entry.
type Decoder func(node *yaml.Node) (component.Component, error)

var (
	kindsMu sync.RWMutex
	kinds   = map[string]Decoder{
		"transform": decodeTransform,
		"sprite":    decodeSprite,
		"rigidbody": decodeRigidBody,
		"collider":  decodeCollider,
		"tag":       decodeTag,
	}
)

// RegisterKind makes a component kind available to scene files.
func RegisterKind(kind string, decode Decoder) error {
	kindsMu.Lock()
	defer kindsMu.Unlock()
	if _, exists := kinds[kind]; exists {
		return fmt.Errorf("%w: %s", ErrDuplicateKind, kind)
	}
	kinds[kind] = decode
	return nil
}

func lookupKind(kind string) (Decoder, bool) {
	kindsMu.RLock()
	defer kindsMu.RUnlock()
	decode, ok := kinds[kind]
	return decode, ok
}

// DecodeStrict decodes a component body into out, rejecting keys out does not
// declare. The kind key is skipped.
func DecodeStrict(node *yaml.Node, out any) error {
	body := *node
	if node.Kind == yaml.MappingNode {
		body.Content = make([]*yaml.Node, 0, len(node.Content))
		for i := 0; i+1 < len(node.Content); i += 2 {
			if node.Content[i].Value == "kind" {
				continue
			}
			body.Content = append(body.Content, node.Content[i], node.Content[i+1])
		}
	}
	raw, err := yaml.Marshal(&body)
	if err != nil {
		return err
	}
	dec := yaml.NewDecoder(bytes.NewReader(raw))
	dec.KnownFields(true)
	if err := dec.Decode(out); err != nil && !errors.Is(err, io.EOF) {
		return err
	}
	return nil
}

type vec3 maths.Vec3

func (v *vec3) UnmarshalYAML(node *yaml.Node) error {
	xs, err := floats(node, 3)
	if err != nil {
		return err
	}
	*v = vec3{X: xs[0], Y: xs[1], Z: xs[2]}
	return nil
}

type vec4 maths.Vec4

func (v *vec4) UnmarshalYAML(node *yaml.Node) error {
	xs, err := floats(node, 4)
	if err != nil {
		return err
	}
	*v = vec4{X: xs[0], Y: xs[1], Z: xs[2], W: xs[3]}
	return nil
}

func floats(node *yaml.Node, n int) ([]float32, error) {
	var xs []float32
	if err := node.Decode(&xs); err != nil {
		return nil, err
	}
	if len(xs) != n {
		return nil, fmt.Errorf("line %d: want %d values, got %d", node.Line, n, len(xs))
	}
	return xs, nil
}

func decodeTransform(node *yaml.Node) (component.Component, error) {
	body := struct {
		Position vec3 `yaml:"position"`
		Rotation vec3 `yaml:"rotation"`
		Scale    vec3 `yaml:"scale"`
	}{Scale: vec3{X: 1, Y: 1, Z: 1}}
	if err := DecodeStrict(node, &body); err != nil {
		return nil, err
	}
	return &components.Transform{
		Position: maths.Vec3(body.Position),
		Rotation: maths.Vec3(body.Rotation),
		Scale:    maths.Vec3(body.Scale),
	}, nil
}

func decodeSprite(node *yaml.Node) (component.Component, error) {
	body := struct {
		Texture string `yaml:"texture"`
		Tint    vec4   `yaml:"tint"`
		Layer   int    `yaml:"layer"`
		Frames  []int  `yaml:"frames"`
	}{Tint: vec4{X: 1, Y: 1, Z: 1, W: 1}}
	if err := DecodeStrict(node, &body); err != nil {
		return nil, err
	}
	if body.Texture == "" {
		return nil, errors.New("sprite without texture")
	}
	return &components.Sprite{
		Texture: body.Texture,
		Tint:    maths.Vec4(body.Tint),
		Layer:   body.Layer,
		Frames:  body.Frames,
	}, nil
}

func decodeRigidBody(node *yaml.Node) (component.Component, error) {
	body := struct {
		Velocity  vec3    `yaml:"velocity"`
		Mass      float32 `yaml:"mass"`
		Kinematic bool    `yaml:"kinematic"`
	}{Mass: 1}
	if err := DecodeStrict(node, &body); err != nil {
		return nil, err
	}
	if body.Mass < 0 {
		return nil, fmt.Errorf("negative mass %v", body.Mass)
	}
	return &components.RigidBody{
		Velocity:  maths.Vec3(body.Velocity),
		Mass:      body.Mass,
		Kinematic: body.Kinematic,
	}, nil
}

func decodeCollider(node *yaml.Node) (component.Component, error) {
	var body struct {
		HalfExtents vec3   `yaml:"half_extents"`
		Layer       uint32 `yaml:"layer"`
		Trigger     bool   `yaml:"trigger"`
	}
	if err := DecodeStrict(node, &body); err != nil {
		return nil, err
	}
	return &components.Collider{
		HalfExtents: maths.Vec3(body.HalfExtents),
		Layer:       body.Layer,
		Trigger:     body.Trigger,
	}, nil
}

func decodeTag(node *yaml.Node) (component.Component, error) {
	var body struct {
		Name string `yaml:"name"`
	}
	if err := DecodeStrict(node, &body); err != nil {
		return nil, err
	}
	return &components.Tag{Name: body.Name}, nil
}
