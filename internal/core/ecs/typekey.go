package ecs

import (
	"reflect"
	"slices"
	"strings"
	"sync"
)

// TypeKey identifies one concrete Go type. Keys are handed out on first sight
// of a type and stay fixed for the life of the process. Zero is never issued.
type TypeKey uint32

var types = struct {
	mu    sync.Mutex
	keys  map[reflect.Type]TypeKey
	byKey []reflect.Type // index = key; slot 0 unused
}{
	keys:  make(map[reflect.Type]TypeKey, 64),
	byKey: make([]reflect.Type, 1, 64),
}

// TypeOf returns the key for T.
func TypeOf[T any]() TypeKey {
	return keyFor(reflect.TypeFor[T]())
}

// KeyOf returns the key for the dynamic type of v. KeyOf(nil) is zero.
func KeyOf(v any) TypeKey {
	if v == nil {
		return 0
	}
	return keyFor(reflect.TypeOf(v))
}

func keyFor(t reflect.Type) TypeKey {
	types.mu.Lock()
	defer types.mu.Unlock()
	if k, ok := types.keys[t]; ok {
		return k
	}
	k := TypeKey(len(types.byKey))
	types.keys[t] = k
	types.byKey = append(types.byKey, t)
	return k
}

// Type returns the reflect.Type behind k, or nil for an unknown key.
func (k TypeKey) Type() reflect.Type {
	types.mu.Lock()
	defer types.mu.Unlock()
	if k == 0 || int(k) >= len(types.byKey) {
		return nil
	}
	return types.byKey[k]
}

func (k TypeKey) String() string {
	if t := k.Type(); t != nil {
		return t.String()
	}
	return "<invalid>"
}

// TypeSet is a sorted, duplicate-free list of type keys.
type TypeSet struct {
	keys []TypeKey
}

func NewTypeSet(keys ...TypeKey) TypeSet {
	s := slices.Clone(keys)
	slices.Sort(s)
	return TypeSet{keys: slices.Compact(s)}
}

func (s TypeSet) Contains(k TypeKey) bool {
	_, ok := slices.BinarySearch(s.keys, k)
	return ok
}

// SubsetOf reports whether every key in s is also in other.
func (s TypeSet) SubsetOf(other TypeSet) bool {
	for _, k := range s.keys {
		if !other.Contains(k) {
			return false
		}
	}
	return true
}

func (s TypeSet) Len() int { return len(s.keys) }

// Keys returns a copy of the keys in ascending order.
func (s TypeSet) Keys() []TypeKey { return slices.Clone(s.keys) }

func (s TypeSet) Equal(other TypeSet) bool { return slices.Equal(s.keys, other.keys) }

func (s TypeSet) String() string {
	names := make([]string, len(s.keys))
	for i, k := range s.keys {
		names[i] = k.String()
	}
	return "{" + strings.Join(names, ", ") + "}"
}
