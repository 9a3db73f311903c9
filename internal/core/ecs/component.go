package ecs

// BorrowState is the current access mode of a component slot.
type BorrowState uint8

const (
	Unborrowed BorrowState = iota
	Shared
	Exclusive
)

func (b BorrowState) String() string {
	switch b {
	case Shared:
		return "shared"
	case Exclusive:
		return "exclusive"
	default:
		return "unborrowed"
	}
}

// slot owns one component value. The value is always a pointer to a private
// copy so mutable views can hand out *C without re-boxing.
type slot struct {
	key       TypeKey
	ptr       any
	readers   int
	exclusive bool
}

func (s *slot) state() BorrowState {
	switch {
	case s.exclusive:
		return Exclusive
	case s.readers > 0:
		return Shared
	default:
		return Unborrowed
	}
}

func (s *slot) acquire(owner EntityID, want BorrowState) {
	held := s.state()
	if held == Exclusive || (want == Exclusive && held != Unborrowed) {
		panic(&BorrowError{Entity: owner, Type: s.key, Held: held, Want: want})
	}
	if want == Exclusive {
		s.exclusive = true
		return
	}
	s.readers++
}

// borrow is shared by every copy of a view, so releasing any copy ends the
// borrow exactly once.
type borrow struct {
	s        *slot
	mode     BorrowState
	released bool
}

func (b *borrow) release() {
	if b == nil || b.released {
		return
	}
	b.released = true
	switch b.mode {
	case Exclusive:
		b.s.exclusive = false
	case Shared:
		if b.s.readers > 0 {
			b.s.readers--
		}
	}
}

// Ref is a shared view of a component. Release it when done.
type Ref[C any] struct {
	b *borrow
	v *C
}

// Value returns a copy of the component.
func (r Ref[C]) Value() C { return *r.v }

// Release ends the borrow. Releasing again, or through a copy, is harmless.
func (r Ref[C]) Release() { r.b.release() }

// Mut is an exclusive view of a component. Release it when done.
type Mut[C any] struct {
	b *borrow
	v *C
}

// Get returns the component for in-place mutation. The pointer must not be
// kept past Release.
func (m Mut[C]) Get() *C { return m.v }

func (m Mut[C]) Release() { m.b.release() }

func lookup[C any](e *Entity) (*slot, *C, bool) {
	s, ok := e.components[TypeOf[C]()]
	if !ok {
		return nil, nil, false
	}
	return s, s.ptr.(*C), true
}

// Get borrows the C component of e for reading. It panics with a
// *BorrowError if the component is exclusively borrowed.
func Get[C any](e *Entity) (Ref[C], bool) {
	s, v, ok := lookup[C](e)
	if !ok {
		return Ref[C]{}, false
	}
	s.acquire(e.id, Shared)
	return Ref[C]{b: &borrow{s: s, mode: Shared}, v: v}, true
}

// GetMut borrows the C component of e exclusively. It panics with a
// *BorrowError if any other view of the component is alive.
func GetMut[C any](e *Entity) (Mut[C], bool) {
	s, v, ok := lookup[C](e)
	if !ok {
		return Mut[C]{}, false
	}
	s.acquire(e.id, Exclusive)
	return Mut[C]{b: &borrow{s: s, mode: Exclusive}, v: v}, true
}

// Read calls fn with the C component of e, if present, under a shared borrow.
func Read[C any](e *Entity, fn func(C)) bool {
	r, ok := Get[C](e)
	if !ok {
		return false
	}
	defer r.Release()
	fn(r.Value())
	return true
}

// Update calls fn with the C component of e, if present, under an
// exclusive borrow.
func Update[C any](e *Entity, fn func(*C)) bool {
	m, ok := GetMut[C](e)
	if !ok {
		return false
	}
	defer m.Release()
	fn(m.Get())
	return true
}

func Has[C any](e *Entity) bool {
	return e.Has(TypeOf[C]())
}
