package ecs

import "github.com/rotisserie/eris"

// Admitter is the part of a World a Builder needs. *World[S] satisfies it
// for every S.
type Admitter interface {
	NextIdentifier() EntityID
	AddEntity(e *Entity) error
}

// Builder stages components for a new entity. The first failed attach is
// kept and reported by Err and AddToWorld.
//
//	id, err := ecs.NewBuilder().
//		With(component.Name{Value: "foo"}).
//		With(component.Health{Value: 5}).
//		AddToWorld(w)
type Builder struct {
	entity *Entity
	err    error
}

func NewBuilder() *Builder {
	return &Builder{entity: newEntity()}
}

// With attaches c and returns b for chaining. A duplicate type leaves the
// staged components unchanged and records ErrDuplicateComponent.
func (b *Builder) With(c any) *Builder {
	if err := b.Add(c); err != nil && b.err == nil {
		b.err = err
	}
	return b
}

// Add attaches c, reporting the failure directly.
func (b *Builder) Add(c any) error {
	if b.entity == nil {
		return ErrBuilderConsumed
	}
	return b.entity.add(c)
}

func (b *Builder) Err() error { return b.err }

// Len returns the number of staged components.
func (b *Builder) Len() int {
	if b.entity == nil {
		return 0
	}
	return b.entity.Len()
}

// AddToWorld numbers the staged entity and admits it into w. The builder
// cannot be used afterwards.
func (b *Builder) AddToWorld(w Admitter) (EntityID, error) {
	if b.entity == nil {
		return 0, ErrBuilderConsumed
	}
	if b.err != nil {
		return 0, eris.Wrap(b.err, "build entity")
	}
	e := b.entity
	e.id = w.NextIdentifier()
	if err := w.AddEntity(e); err != nil {
		return 0, err
	}
	b.entity = nil
	return e.id, nil
}
