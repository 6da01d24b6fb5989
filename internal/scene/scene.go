// Package scene loads YAML scene descriptions and builds them into a world.
//
// A scene lists named entities. Each entity is a set of components selected by
// kind, may start as a deep copy of an earlier entity (copy_of) and may be
// replicated (count):
//
//	name: demo
//	entities:
//	  - name: crate
//	    components:
//	      - kind: transform
//	        position: [0, 1, 0]
//	      - kind: collider
//	        half_extents: [0.5, 0.5, 0.5]
//	  - name: stack
//	    copy_of: crate
//	    count: 3
package scene

import (
	"errors"
	"fmt"
	"io"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/clowdy/clowdy/internal/core/ecs/component"
)

var (
	ErrUnknownComponent = errors.New("unknown component kind")
	ErrUnknownEntity    = errors.New("unknown entity")
	ErrDuplicateEntity  = errors.New("duplicate entity name")
	ErrInvalidScene     = errors.New("invalid scene")
)

type Scene struct {
	Name     string       `json:"name" yaml:"name"`
	Entities []EntitySpec `json:"entities" yaml:"entities"`
}

type EntitySpec struct {
	Name string `json:"name" yaml:"name"`
	// CopyOf names an earlier entity whose components are deep-copied before
	// Components are applied. Components listed here replace copied ones of
	// the same kind.
	CopyOf string `json:"copy_of,omitempty" yaml:"copy_of,omitempty"`
	// Count is the number of replicas; zero means one.
	Count      int             `json:"count,omitempty" yaml:"count,omitempty"`
	Components []ComponentSpec `json:"components,omitempty" yaml:"components,omitempty"`
}

// Replicas returns how many entities the entry produces.
func (s EntitySpec) Replicas() int {
	return max(s.Count, 1)
}

// ComponentSpec is one component entry. The body is kept undecoded until the
// kind is resolved.
type ComponentSpec struct {
	Kind string
	node yaml.Node
}

func (c *ComponentSpec) UnmarshalYAML(node *yaml.Node) error {
	var head struct {
		Kind string `yaml:"kind"`
	}
	if err := node.Decode(&head); err != nil {
		return err
	}
	if head.Kind == "" {
		return fmt.Errorf("line %d: component without kind", node.Line)
	}
	c.Kind = head.Kind
	c.node = *node
	return nil
}

// Decode builds a fresh component from the entry.
func (c *ComponentSpec) Decode() (component.Component, error) {
	decode, ok := lookupKind(c.Kind)
	if !ok {
		return nil, fmt.Errorf("%w: %q", ErrUnknownComponent, c.Kind)
	}
	comp, err := decode(&c.node)
	if err != nil {
		return nil, fmt.Errorf("line %d: %s: %w", c.node.Line, c.Kind, err)
	}
	return comp, nil
}

// Load decodes and validates a scene.
func Load(r io.Reader) (*Scene, error) {
	var s Scene
	dec := yaml.NewDecoder(r)
	dec.KnownFields(true)
	if err := dec.Decode(&s); err != nil && !errors.Is(err, io.EOF) {
		return nil, fmt.Errorf("decode scene: %w", err)
	}
	if err := s.Validate(); err != nil {
		return nil, err
	}
	return &s, nil
}

func LoadFile(path string) (*Scene, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	s, err := Load(f)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return s, nil
}

// Validate checks names, references and component bodies.
func (s *Scene) Validate() error {
	seen := make(map[string]struct{}, len(s.Entities))
	var errs []error
	for i := range s.Entities {
		entry := &s.Entities[i]
		if entry.Name == "" {
			errs = append(errs, fmt.Errorf("%w: entity %d has no name", ErrInvalidScene, i))
		} else if _, dup := seen[entry.Name]; dup {
			errs = append(errs, fmt.Errorf("%w: %q", ErrDuplicateEntity, entry.Name))
		}
		if entry.CopyOf != "" {
			if _, ok := seen[entry.CopyOf]; !ok {
				errs = append(errs, fmt.Errorf("%w: %q copies %q", ErrUnknownEntity, entry.Name, entry.CopyOf))
			}
		}
		if entry.Count < 0 {
			errs = append(errs, fmt.Errorf("%w: %q has negative count", ErrInvalidScene, entry.Name))
		}
		for j := range entry.Components {
			if _, err := entry.Components[j].Decode(); err != nil {
				errs = append(errs, fmt.Errorf("%q: %w", entry.Name, err))
			}
		}
		seen[entry.Name] = struct{}{}
	}
	return errors.Join(errs...)
}
