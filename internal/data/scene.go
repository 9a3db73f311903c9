package data

import (
	"fmt"
	"os"

	"github.com/daedelecs/daedel/internal/component"
	"github.com/daedelecs/daedel/internal/core/ecs"
	"gopkg.in/yaml.v3"
)

// EntityTemplate describes one entity of a scene. Absent fields mean the
// entity does not carry that component.
type EntityTemplate struct {
	Name     *string `yaml:"name"`
	Health   *int    `yaml:"health"`
	Strength *int    `yaml:"strength"`
	World    bool    `yaml:"world"` // carries component.WorldMarker
}

// Scene is the list of entities spawned into a fresh world.
type Scene struct {
	Entities []EntityTemplate `yaml:"entities"`
}

// LoadScene loads a scene YAML file.
func LoadScene(path string) (*Scene, error) {
	raw, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read scene: %w", err)
	}
	var s Scene
	if err := yaml.Unmarshal(raw, &s); err != nil {
		return nil, fmt.Errorf("parse scene: %w", err)
	}
	return &s, nil
}

// Count returns the number of entity templates in the scene.
func (s *Scene) Count() int {
	return len(s.Entities)
}

// Builder stages the template's components.
func (t EntityTemplate) Builder() *ecs.Builder {
	b := ecs.NewBuilder()
	if t.Name != nil {
		b.With(component.Name{Value: *t.Name})
	}
	if t.Health != nil {
		b.With(component.Health{Value: *t.Health})
	}
	if t.Strength != nil {
		b.With(component.Strength{Value: *t.Strength})
	}
	if t.World {
		b.With(component.WorldMarker{})
	}
	return b
}

// Spawn admits every template into w in file order.
func (s *Scene) Spawn(w ecs.Admitter) ([]ecs.EntityID, error) {
	ids := make([]ecs.EntityID, 0, len(s.Entities))
	for i, t := range s.Entities {
		id, err := t.Builder().AddToWorld(w)
		if err != nil {
			return ids, fmt.Errorf("spawn entity %d: %w", i, err)
		}
		ids = append(ids, id)
	}
	return ids, nil
}
