package ecs

import (
	"fmt"
	"reflect"
	"strings"

	"github.com/rotisserie/eris"
)

// EntityID is a world-unique identifier handed out by World.NextIdentifier.
// Zero means "not yet admitted".
type EntityID uint64

func (id EntityID) IsZero() bool { return id == 0 }

// Entity is an identifier plus at most one component per type. The set of
// component types is fixed once the entity is admitted to a world; only the
// component values change after that.
type Entity struct {
	id         EntityID
	phase      phase
	components map[TypeKey]*slot
}

// phase tracks an entity through its single admission. An entity is
// admitted at most once and is never admitted again after removal.
type phase uint8

const (
	staged phase = iota
	admitted
	removed
)

func newEntity() *Entity {
	return &Entity{components: make(map[TypeKey]*slot, 4)}
}

func (e *Entity) ID() EntityID { return e.id }

// Len returns the number of components on e.
func (e *Entity) Len() int { return len(e.components) }

func (e *Entity) Has(k TypeKey) bool {
	_, ok := e.components[k]
	return ok
}

// Keys returns the component types present on e.
func (e *Entity) Keys() TypeSet {
	keys := make([]TypeKey, 0, len(e.components))
	for k := range e.components {
		keys = append(keys, k)
	}
	return NewTypeSet(keys...)
}

// BorrowState reports how the component of type k is currently borrowed.
func (e *Entity) BorrowState(k TypeKey) BorrowState {
	if s, ok := e.components[k]; ok {
		return s.state()
	}
	return Unborrowed
}

// add stores a private copy of c under its dynamic type.
func (e *Entity) add(c any) error {
	if c == nil {
		return eris.Wrap(ErrInvalidComponent, "nil component")
	}
	t := reflect.TypeOf(c)
	if t.Kind() == reflect.Pointer {
		return eris.Wrapf(ErrInvalidComponent, "component %s must be stored by value", t)
	}
	k := keyFor(t)
	if _, ok := e.components[k]; ok {
		return eris.Wrapf(ErrDuplicateComponent, "component %s", k)
	}
	p := reflect.New(t)
	p.Elem().Set(reflect.ValueOf(c))
	e.components[k] = &slot{key: k, ptr: p.Interface()}
	return nil
}

func (e *Entity) String() string {
	var b strings.Builder
	fmt.Fprintf(&b, "Entity[%d]{", e.id)
	for i, k := range e.Keys().keys {
		if i > 0 {
			b.WriteString(", ")
		}
		b.WriteString(k.String())
	}
	b.WriteString("}")
	return b.String()
}
