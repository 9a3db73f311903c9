package ecs

// System is a stateless behaviour selected by component shape. A system is
// identified by its concrete type; its value carries no data.
type System[S any] interface {
	// Requires lists the component types an entity must carry. It is read
	// once, when the system is registered.
	Requires() []TypeKey
	// Run is called once per eligible entity with exclusive use of the
	// entity and the world.
	Run(e *Entity, w *World[S])
}

// Require builds a requirement list from explicit keys.
func Require(keys ...TypeKey) []TypeKey {
	return NewTypeSet(keys...).Keys()
}

func Require1[A any]() []TypeKey {
	return Require(TypeOf[A]())
}

func Require2[A, B any]() []TypeKey {
	return Require(TypeOf[A](), TypeOf[B]())
}

func Require3[A, B, C any]() []TypeKey {
	return Require(TypeOf[A](), TypeOf[B](), TypeOf[C]())
}

func Require4[A, B, C, D any]() []TypeKey {
	return Require(TypeOf[A](), TypeOf[B](), TypeOf[C](), TypeOf[D]())
}

// IsEligible reports whether e carries every component Sys requires. Sys
// must already be registered with w.
func IsEligible[Sys System[S], S any](w *World[S], e *Entity) (bool, error) {
	return w.Eligible(TypeOf[Sys](), e)
}

// RegisterSystem registers Sys with w. See World.Register.
func RegisterSystem[Sys System[S], S any](w *World[S]) {
	var sys Sys
	w.Register(sys)
}

// RunSystem runs Sys over its eligible entities. See World.Run.
func RunSystem[Sys System[S], S any](w *World[S]) {
	var sys Sys
	w.Run(sys)
}
