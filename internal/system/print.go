package system

import (
	"github.com/daedelecs/daedel/internal/component"
	"github.com/daedelecs/daedel/internal/core/ecs"
	"github.com/daedelecs/daedel/internal/world"
)

// Print writes one line per named entity, including its health and
// strength when present:
//
//	Entity[name="bar", health=10, strength=1]
type Print struct{}

func (Print) Requires() []ecs.TypeKey { return ecs.Require1[component.Name]() }

func (Print) Run(e *ecs.Entity, w *ecs.World[*world.State]) {
	st := w.State
	ecs.Read(e, func(n component.Name) {
		st.Printer.Fprintf(st.Out, "Entity[name=%q", n.Value)
	})
	ecs.Read(e, func(h component.Health) {
		st.Printer.Fprintf(st.Out, ", health=%d", h.Value)
	})
	ecs.Read(e, func(s component.Strength) {
		st.Printer.Fprintf(st.Out, ", strength=%d", s.Value)
	})
	st.Printer.Fprintf(st.Out, "]\n")
}

// PrintWorld prints the world state once per marker entity, then every
// named entity through Print.
type PrintWorld struct{}

func (PrintWorld) Requires() []ecs.TypeKey { return ecs.Require1[component.WorldMarker]() }

func (PrintWorld) Run(_ *ecs.Entity, w *ecs.World[*world.State]) {
	w.State.Printer.Fprintf(w.State.Out, "%s\n", w.State)
	ecs.RunSystem[Print](w)
}
