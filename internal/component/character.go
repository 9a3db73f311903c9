package component

// Name labels an entity for display.
// Pure data, zero methods; all mutations happen in systems.
type Name struct {
	Value string
}

type Health struct {
	Value int
}

type Strength struct {
	Value int
}

// WorldMarker tags the single entity that stands in for the world itself,
// so world-level systems get exactly one Run per pass.
type WorldMarker struct{}
