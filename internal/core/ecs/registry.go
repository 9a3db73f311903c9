package ecs

import "slices"

// entitySet is an ascending list of entity identifiers.
type entitySet struct {
	ids []EntityID
}

func (s *entitySet) insert(id EntityID) {
	i, found := slices.BinarySearch(s.ids, id)
	if found {
		return
	}
	s.ids = slices.Insert(s.ids, i, id)
}

func (s *entitySet) remove(id EntityID) {
	if i, found := slices.BinarySearch(s.ids, id); found {
		s.ids = slices.Delete(s.ids, i, i+1)
	}
}

// snapshot copies the identifiers so callers can iterate while the set is
// modified underneath them.
func (s *entitySet) snapshot() []EntityID {
	return slices.Clone(s.ids)
}

// registration is one system's requirements and its eligible entities.
type registration struct {
	required TypeSet
	members  entitySet
}

// Registry maps each registered system to its requirements and to the
// identifiers of the entities that currently satisfy them.
type Registry struct {
	systems map[TypeKey]*registration
}

func NewRegistry() *Registry {
	return &Registry{
		systems: make(map[TypeKey]*registration, 16),
	}
}

func (r *Registry) get(sys TypeKey) (*registration, bool) {
	reg, ok := r.systems[sys]
	return reg, ok
}

// Register adds an empty cache entry for sys and reports whether it did.
// An existing entry always wins.
func (r *Registry) Register(sys TypeKey, required TypeSet) bool {
	if _, ok := r.systems[sys]; ok {
		return false
	}
	r.systems[sys] = &registration{required: required}
	return true
}

// Admit records e in the cache of every system whose requirements it meets.
// It returns the number of caches updated.
func (r *Registry) Admit(e *Entity) int {
	keys := e.Keys()
	n := 0
	for _, reg := range r.systems {
		if reg.required.SubsetOf(keys) {
			reg.members.insert(e.id)
			n++
		}
	}
	return n
}

// RemoveAll clears the given entity from every system cache.
func (r *Registry) RemoveAll(id EntityID) {
	for _, reg := range r.systems {
		reg.members.remove(id)
	}
}

// Keys returns the registered system keys in ascending order.
func (r *Registry) Keys() []TypeKey {
	keys := make([]TypeKey, 0, len(r.systems))
	for k := range r.systems {
		keys = append(keys, k)
	}
	slices.Sort(keys)
	return keys
}

func (r *Registry) Len() int { return len(r.systems) }
