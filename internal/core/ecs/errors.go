package ecs

import (
	"fmt"

	"github.com/rotisserie/eris"
)

var (
	// ErrDuplicateComponent is returned when a second component of an
	// already present type is attached to an entity.
	ErrDuplicateComponent = eris.New("duplicate component")
	// ErrInvalidComponent rejects nil and pointer components.
	ErrInvalidComponent = eris.New("invalid component")
	// ErrMissingRegistration is returned when a system's requirements are
	// queried before the system is registered with the world.
	ErrMissingRegistration = eris.New("system not registered")
	ErrBuilderConsumed     = eris.New("entity builder already consumed")
	ErrInvalidEntity       = eris.New("invalid entity")
	ErrEntityExists        = eris.New("entity already in world")
	// ErrBorrowConflict is the cause of every *BorrowError panic.
	ErrBorrowConflict = eris.New("borrow conflict")
)

// BorrowError is the panic value raised when a component view is requested
// while a conflicting view of the same component is alive.
type BorrowError struct {
	Entity EntityID
	Type   TypeKey
	Held   BorrowState
	Want   BorrowState
}

func (e *BorrowError) Error() string {
	return fmt.Sprintf("borrow conflict: entity %d component %s is borrowed %s, cannot borrow %s",
		e.Entity, e.Type, e.Held, e.Want)
}

func (e *BorrowError) Unwrap() error { return ErrBorrowConflict }
