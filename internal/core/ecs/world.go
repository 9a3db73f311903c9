package ecs

import (
	"slices"

	"github.com/rotisserie/eris"
	"go.uber.org/zap"
)

// World is the top-level ECS container. It owns every entity, the system
// registry with its eligibility caches, and the user state payload.
// A World is driven from a single goroutine; it holds no locks.
type World[S any] struct {
	// State is opaque to the world and free for systems to read and mutate.
	State S

	entities map[EntityID]*Entity
	systems  *Registry
	nextID   EntityID
	log      *zap.Logger
}

// NewWorld creates an empty world carrying state. A nil logger discards output.
func NewWorld[S any](state S, log *zap.Logger) *World[S] {
	if log == nil {
		log = zap.NewNop()
	}
	return &World[S]{
		State:    state,
		entities: make(map[EntityID]*Entity, 256),
		systems:  NewRegistry(),
		log:      log,
	}
}

// NextIdentifier advances the identifier counter and returns the new value.
// Identifiers start at 1 and are never reused.
func (w *World[S]) NextIdentifier() EntityID {
	w.nextID++
	return w.nextID
}

// AddEntity admits a staged entity numbered by this world's NextIdentifier
// and adds it to the cache of every system it already qualifies for.
// Entities that were already admitted, here or elsewhere, are rejected even
// after removal.
func (w *World[S]) AddEntity(e *Entity) error {
	if e == nil || e.id.IsZero() {
		return eris.Wrap(ErrInvalidEntity, "entity has no identifier")
	}
	if e.phase != staged {
		return eris.Wrapf(ErrInvalidEntity, "entity %d was already admitted", e.id)
	}
	if e.id > w.nextID {
		return eris.Wrapf(ErrInvalidEntity, "entity %d was not numbered by this world", e.id)
	}
	if _, ok := w.entities[e.id]; ok {
		return eris.Wrapf(ErrEntityExists, "entity %d", e.id)
	}
	e.phase = admitted
	w.entities[e.id] = e
	n := w.systems.Admit(e)
	w.log.Debug("entity admitted",
		zap.Uint64("entity", uint64(e.id)),
		zap.Stringer("components", e.Keys()),
		zap.Int("systems", n),
	)
	return nil
}

// RemoveEntity drops the entity from every system cache and then from the
// world. It reports whether the entity was present.
func (w *World[S]) RemoveEntity(id EntityID) bool {
	e, ok := w.entities[id]
	if !ok {
		return false
	}
	w.systems.RemoveAll(id)
	delete(w.entities, id)
	e.phase = removed
	w.log.Debug("entity removed", zap.Uint64("entity", uint64(id)))
	return true
}

// Entity returns the entity with the given identifier.
func (w *World[S]) Entity(id EntityID) (*Entity, bool) {
	e, ok := w.entities[id]
	return e, ok
}

// Len returns the number of entities in the world.
func (w *World[S]) Len() int { return len(w.entities) }

// Entities returns every identifier in ascending order.
func (w *World[S]) Entities() []EntityID {
	ids := make([]EntityID, 0, len(w.entities))
	for id := range w.entities {
		ids = append(ids, id)
	}
	slices.Sort(ids)
	return ids
}

// Register records sys and seeds its cache with a single scan over the
// current entities. Registering an already known system does nothing.
func (w *World[S]) Register(sys System[S]) {
	key := KeyOf(sys)
	if _, ok := w.systems.get(key); ok {
		return
	}
	required := NewTypeSet(sys.Requires()...)
	w.systems.Register(key, required)
	reg, _ := w.systems.get(key)
	for id, e := range w.entities {
		if required.SubsetOf(e.Keys()) {
			reg.members.insert(id)
		}
	}
	w.log.Debug("system registered",
		zap.Stringer("system", key),
		zap.Stringer("requires", required),
		zap.Int("entities", len(reg.members.ids)),
	)
}

// Run calls sys.Run for every entity in its cache, in ascending identifier
// order. An unregistered system is registered first. The cache is copied
// before dispatch, so nested Register, Run, AddEntity and RemoveEntity
// calls are safe; entities removed during the pass are skipped. A panic
// from sys.Run aborts the pass.
func (w *World[S]) Run(sys System[S]) {
	key := KeyOf(sys)
	reg, ok := w.systems.get(key)
	if !ok {
		w.Register(sys)
		reg, _ = w.systems.get(key)
	}
	ids := reg.members.snapshot()
	w.log.Debug("system run", zap.Stringer("system", key), zap.Int("entities", len(ids)))
	for _, id := range ids {
		e, ok := w.entities[id]
		if !ok {
			continue
		}
		sys.Run(e, w)
	}
}

// IsRegistered reports whether the system with key sys has been registered.
func (w *World[S]) IsRegistered(sys TypeKey) bool {
	_, ok := w.systems.get(sys)
	return ok
}

// Systems returns the registered system keys in ascending order.
func (w *World[S]) Systems() []TypeKey { return w.systems.Keys() }

// Requirements returns the component types the system with key sys needs.
func (w *World[S]) Requirements(sys TypeKey) (TypeSet, error) {
	reg, ok := w.systems.get(sys)
	if !ok {
		return TypeSet{}, eris.Wrapf(ErrMissingRegistration, "system %s", sys)
	}
	return reg.required, nil
}

// SystemEntities returns the cached eligible identifiers of a system.
func (w *World[S]) SystemEntities(sys TypeKey) ([]EntityID, bool) {
	reg, ok := w.systems.get(sys)
	if !ok {
		return nil, false
	}
	return reg.members.snapshot(), true
}

// Eligible reports whether e carries every component the system with key
// sys requires.
func (w *World[S]) Eligible(sys TypeKey, e *Entity) (bool, error) {
	required, err := w.Requirements(sys)
	if err != nil {
		return false, err
	}
	return required.SubsetOf(e.Keys()), nil
}
