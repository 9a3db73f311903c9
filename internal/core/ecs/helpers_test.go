package ecs

import (
	"errors"
	"slices"
	"testing"
)

type name struct{ v string }
type health struct{ v int }
type strength struct{ v int }
type marker struct{}

type testState struct {
	calls []EntityID
}

type addHealth struct{}

func (addHealth) Requires() []TypeKey { return Require1[health]() }
func (addHealth) Run(e *Entity, w *World[*testState]) {
	w.State.calls = append(w.State.calls, e.ID())
	Update(e, func(h *health) { h.v++ })
}

type sapStrength struct{}

func (sapStrength) Requires() []TypeKey { return Require1[strength]() }
func (sapStrength) Run(e *Entity, w *World[*testState]) {
	w.State.calls = append(w.State.calls, e.ID())
	Update(e, func(s *strength) { s.v-- })
}

type nameAndHealth struct{}

func (nameAndHealth) Requires() []TypeKey { return Require2[name, health]() }
func (nameAndHealth) Run(e *Entity, w *World[*testState]) {
	w.State.calls = append(w.State.calls, e.ID())
}

func newTestWorld() *World[*testState] {
	return NewWorld(&testState{}, nil)
}

func spawn(t *testing.T, w *World[*testState], comps ...any) EntityID {
	t.Helper()
	b := NewBuilder()
	for _, c := range comps {
		b.With(c)
	}
	id, err := b.AddToWorld(w)
	if err != nil {
		t.Fatalf("AddToWorld: %v", err)
	}
	return id
}

func healthOf(t *testing.T, w *World[*testState], id EntityID) int {
	t.Helper()
	e, ok := w.Entity(id)
	if !ok {
		t.Fatalf("entity %d not in world", id)
	}
	r, ok := Get[health](e)
	if !ok {
		t.Fatalf("entity %d has no health", id)
	}
	defer r.Release()
	return r.Value().v
}

// checkCaches asserts every system cache holds exactly the entities that
// meet its requirements.
func checkCaches[S any](t *testing.T, w *World[S]) {
	t.Helper()
	for _, sys := range w.Systems() {
		required, err := w.Requirements(sys)
		if err != nil {
			t.Fatalf("Requirements(%s): %v", sys, err)
		}
		var want []EntityID
		for _, id := range w.Entities() {
			e, _ := w.Entity(id)
			if required.SubsetOf(e.Keys()) {
				want = append(want, id)
			}
		}
		got, _ := w.SystemEntities(sys)
		if !slices.Equal(got, want) {
			t.Errorf("cache of %s = %v, want %v", sys, got, want)
		}
	}
}

func expectBorrowPanic(t *testing.T, fn func()) *BorrowError {
	t.Helper()
	var be *BorrowError
	func() {
		defer func() {
			r := recover()
			err, ok := r.(error)
			if !ok || !errors.As(err, &be) {
				t.Fatalf("expected *BorrowError panic, got %v", r)
			}
		}()
		fn()
	}()
	return be
}
