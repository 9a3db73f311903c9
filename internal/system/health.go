package system

import (
	"github.com/daedelecs/daedel/internal/component"
	"github.com/daedelecs/daedel/internal/core/ecs"
	"github.com/daedelecs/daedel/internal/world"
)

// AddHealth heals every entity with Health by one point per run.
type AddHealth struct{}

func (AddHealth) Requires() []ecs.TypeKey { return ecs.Require1[component.Health]() }

func (AddHealth) Run(e *ecs.Entity, _ *ecs.World[*world.State]) {
	ecs.Update(e, func(h *component.Health) { h.Value++ })
}

// SapStrength drains one point of Strength per run.
type SapStrength struct{}

func (SapStrength) Requires() []ecs.TypeKey { return ecs.Require1[component.Strength]() }

func (SapStrength) Run(e *ecs.Entity, _ *ecs.World[*world.State]) {
	ecs.Update(e, func(s *component.Strength) { s.Value-- })
}
