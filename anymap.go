package gendex

import (
	"reflect"
)

// AnyMap is a type-erased registry holding at most one value per Go type,
// plus values registered under caller-chosen numeric ids. It is the odd one
// out among the containers: keys are types or ids rather than generational
// handles, which makes it a convenient home for the singletons that sit
// next to handle-keyed state (allocators, configs, schedulers).
//
// The zero value is an empty registry ready for use. By-type access goes
// through the package-level Set, Get and Remove functions since methods
// cannot be generic.
type AnyMap struct {
	values map[anyKey]any
}

// anyKey keys an entry by type or by id. Exactly one field is set: typ is
// nil for id-keyed entries, and id-keyed entries never carry a type.
type anyKey struct {
	typ reflect.Type
	id  uint64
}

// NewAnyMap creates an empty registry.
func NewAnyMap() *AnyMap {
	return &AnyMap{values: make(map[anyKey]any)}
}

func (m *AnyMap) lazyInit() {
	if m.values == nil {
		m.values = make(map[anyKey]any)
	}
}

// Len returns the number of registered values.
func (m *AnyMap) Len() int {
	return len(m.values)
}

// Clear removes all registered values.
func (m *AnyMap) Clear() {
	clear(m.values)
}

// SetByID registers value under a numeric id and returns the value it
// displaced, if any.
func (m *AnyMap) SetByID(id uint64, value any) (old any, replaced bool) {
	m.lazyInit()
	key := anyKey{id: id}
	old, replaced = m.values[key]
	m.values[key] = value
	return old, replaced
}

// GetByID returns the value registered under id.
func (m *AnyMap) GetByID(id uint64) (any, bool) {
	v, ok := m.values[anyKey{id: id}]
	return v, ok
}

// RemoveByID removes and returns the value registered under id.
func (m *AnyMap) RemoveByID(id uint64) (any, bool) {
	key := anyKey{id: id}
	v, ok := m.values[key]
	if ok {
		delete(m.values, key)
	}
	return v, ok
}

// Set registers value in m keyed by its type V and returns the value it
// displaced, if any. Registering under an interface type takes an explicit
// type argument: Set[io.Writer](m, w).
func Set[V any](m *AnyMap, value V) (old V, replaced bool) {
	m.lazyInit()
	key := anyKey{typ: reflect.TypeFor[V]()}
	prev, ok := m.values[key]
	m.values[key] = value
	if !ok {
		var zero V
		return zero, false
	}
	return prev.(V), true
}

// Get returns the value m has registered for type V.
func Get[V any](m *AnyMap) (V, bool) {
	v, ok := m.values[anyKey{typ: reflect.TypeFor[V]()}]
	if !ok {
		var zero V
		return zero, false
	}
	return v.(V), true
}

// Remove removes and returns the value m has registered for type V.
func Remove[V any](m *AnyMap) (V, bool) {
	key := anyKey{typ: reflect.TypeFor[V]()}
	v, ok := m.values[key]
	if !ok {
		var zero V
		return zero, false
	}
	delete(m.values, key)
	return v.(V), true
}

var _ Collection = (*AnyMap)(nil)
