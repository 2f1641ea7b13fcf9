package genmap

import (
	"fmt"
	"strings"

	"github.com/hupe1980/gendex/genindex"
)

// Map is an associative container keyed by generational handles. Entries
// live in a Backing keyed by raw index; every lookup revalidates the full
// handle, so a stale generation misses even when the index is occupied.
//
// A Map must not be shared between goroutines without external locking.
//
// The zero Map uses the vector backing and is ready to use.
type Map[T any, H genindex.GenIndex[H]] struct {
	backing Backing[H, T]
}

// New creates an empty Map on the default vector backing.
func New[T any, H genindex.GenIndex[H]]() *Map[T, H] {
	return &Map[T, H]{backing: NewVecBacking[H, T]()}
}

// NewWithBacking creates an empty Map storing its entries in b.
func NewWithBacking[T any, H genindex.GenIndex[H]](b Backing[H, T]) *Map[T, H] {
	return &Map[T, H]{backing: b}
}

func (m *Map[T, H]) lazyInit() {
	if m.backing == nil {
		m.backing = NewVecBacking[H, T]()
	}
}

// Len returns the number of entries.
func (m *Map[T, H]) Len() int {
	m.lazyInit()
	return m.backing.Len()
}

// Insert stores value under h. When an entry already exists for h's raw
// index it is replaced and its value returned with replaced == true. The
// raw index alone decides the match, but the entry is re-keyed to h, so
// later lookups must present h rather than the handle it displaced.
func (m *Map[T, H]) Insert(h H, value T) (old T, replaced bool) {
	m.lazyInit()

	prev, ok := m.backing.Set(h.Index(), &Entry[H, T]{Handle: h, Value: value})
	if !ok {
		var zero T
		return zero, false
	}

	return prev.Value, true
}

// Get returns the value stored under h. It reports false when h's raw index
// is unused or the stored handle differs in generation.
func (m *Map[T, H]) Get(h H) (T, bool) {
	e, ok := m.lookup(h)
	if !ok {
		var zero T
		return zero, false
	}

	return e.Value, true
}

// GetRef returns a pointer to the value stored under h, valid until the
// entry is removed or replaced. It reports false when h misses.
func (m *Map[T, H]) GetRef(h H) (*T, bool) {
	e, ok := m.lookup(h)
	if !ok {
		return nil, false
	}

	return &e.Value, true
}

// MustGet returns the value stored under h, panicking when h misses. Use
// Get for handles that have not been validated.
func (m *Map[T, H]) MustGet(h H) T {
	v, ok := m.Get(h)
	if !ok {
		panic(fmt.Sprintf("genmap: no entry for handle %v", h))
	}

	return v
}

// Contains reports whether h refers to a stored entry.
func (m *Map[T, H]) Contains(h H) bool {
	_, ok := m.lookup(h)
	return ok
}

// Remove deletes the entry under h and returns its value. It reports false
// and leaves the map unchanged when h misses or is stale.
func (m *Map[T, H]) Remove(h H) (T, bool) {
	if _, ok := m.lookup(h); !ok {
		var zero T
		return zero, false
	}

	e, _ := m.backing.Delete(h.Index())
	return e.Value, true
}

// Retain keeps only the entries for which keep returns true. The predicate
// receives a pointer, so kept values can be updated in the same pass.
// Deletions are applied after the scan; not every backing tolerates removal
// mid-iteration.
func (m *Map[T, H]) Retain(keep func(h H, value *T) bool) {
	m.lazyInit()

	var drop []uint64
	for e := range m.backing.All() {
		if !keep(e.Handle, &e.Value) {
			drop = append(drop, e.Handle.Index())
		}
	}

	for _, index := range drop {
		m.backing.Delete(index)
	}
}

// Clear removes all entries. The backing keeps its allocations where it
// can.
func (m *Map[T, H]) Clear() {
	m.lazyInit()
	m.backing.Clear()
}

// String renders the entries in the backing's order.
func (m *Map[T, H]) String() string {
	m.lazyInit()

	var sb strings.Builder

	sb.WriteByte('{')
	first := true
	for e := range m.backing.All() {
		if !first {
			sb.WriteString(", ")
		}
		first = false
		fmt.Fprintf(&sb, "%v: %v", e.Handle, e.Value)
	}
	sb.WriteByte('}')

	return sb.String()
}

func (m *Map[T, H]) lookup(h H) (*Entry[H, T], bool) {
	m.lazyInit()

	e, ok := m.backing.Get(h.Index())
	if !ok || e.Handle != h {
		return nil, false
	}

	return e, true
}

// Equal reports whether a and b hold the same entries. Backing order does
// not participate, so maps on different backings compare equal when their
// contents agree.
func Equal[T comparable, H genindex.GenIndex[H]](a, b *Map[T, H]) bool {
	return EqualFunc(a, b, func(x, y T) bool { return x == y })
}

// EqualFunc is Equal with a caller-supplied value comparison.
func EqualFunc[T any, H genindex.GenIndex[H]](a, b *Map[T, H], eq func(T, T) bool) bool {
	if a.Len() != b.Len() {
		return false
	}

	for h, v := range a.All() {
		w, ok := b.Get(h)
		if !ok || !eq(v, w) {
			return false
		}
	}

	return true
}
