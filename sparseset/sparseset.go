package sparseset

import (
	"fmt"
	"slices"
	"strings"

	"github.com/hupe1980/gendex/genindex"
)

// Entry is one dense (handle, value) pair.
type Entry[H genindex.GenIndex[H], T any] struct {
	Handle H
	Value  T
}

// Set is a sparse set holding values of type T keyed by handles of type H.
//
// A Set must not be shared between goroutines without external locking; it
// follows a single-owner, synchronous mutation model.
//
// The zero Set is empty and ready to use.
type Set[T any, H genindex.GenIndex[H]] struct {
	// entries is the dense array; iteration order is insertion order until
	// a removal or sort reorders it.
	entries []Entry[H, T]

	// sparse maps a raw handle index to its dense position, or -1 when the
	// index is not in use.
	sparse []int
}

// New creates an empty Set for values of type T keyed by handles of type H.
func New[T any, H genindex.GenIndex[H]](optFns ...Option) *Set[T, H] {
	o := applyOptions(optFns)

	s := &Set[T, H]{}
	if o.capacity > 0 {
		s.entries = make([]Entry[H, T], 0, o.capacity)
	}

	return s
}

// Len returns the number of entries.
func (s *Set[T, H]) Len() int {
	return len(s.entries)
}

// Cap returns the number of entries the dense array can hold before it
// grows again.
func (s *Set[T, H]) Cap() int {
	return cap(s.entries)
}

// Insert stores value under h. When an entry already exists for h's raw
// index, its value is overwritten in place, the stored handle is kept as it
// was, and the old value is returned with replaced == true. Generations do
// not participate in this match; the raw index alone decides.
//
// The sparse array grows to h's raw index, so storage is proportional to
// the largest index inserted, not to the entry count.
func (s *Set[T, H]) Insert(h H, value T) (old T, replaced bool) {
	i := h.Index()

	if i < uint64(len(s.sparse)) {
		if pos := s.sparse[i]; pos >= 0 && s.entries[pos].Handle.Index() == i {
			old = s.entries[pos].Value
			s.entries[pos].Value = value
			return old, true
		}
	}

	s.growSparse(int(i) + 1)
	s.sparse[i] = len(s.entries)
	s.entries = append(s.entries, Entry[H, T]{Handle: h, Value: value})

	var zero T
	return zero, false
}

// Get returns the value stored under h. It reports false when h's raw index
// is unused or the stored handle differs in generation.
func (s *Set[T, H]) Get(h H) (T, bool) {
	pos, ok := s.lookup(h)
	if !ok {
		var zero T
		return zero, false
	}

	return s.entries[pos].Value, true
}

// GetRef returns a pointer to the value stored under h, valid until the
// next mutation of the set. It reports false when h misses.
func (s *Set[T, H]) GetRef(h H) (*T, bool) {
	pos, ok := s.lookup(h)
	if !ok {
		return nil, false
	}

	return &s.entries[pos].Value, true
}

// MustGet returns the value stored under h, panicking when h misses. Use
// Get for handles that have not been validated.
func (s *Set[T, H]) MustGet(h H) T {
	v, ok := s.Get(h)
	if !ok {
		panic(fmt.Sprintf("sparseset: no entry for handle %v", h))
	}

	return v
}

// Contains reports whether h refers to a stored entry.
func (s *Set[T, H]) Contains(h H) bool {
	_, ok := s.lookup(h)
	return ok
}

// Remove deletes the entry under h and returns its value. The last entry is
// swapped into the freed dense position, so removal reorders iteration. It
// reports false and leaves the set unchanged when h misses.
func (s *Set[T, H]) Remove(h H) (T, bool) {
	pos, ok := s.lookup(h)
	if !ok {
		var zero T
		return zero, false
	}

	value := s.removeAt(pos)
	return value, true
}

// removeAt swap-removes the entry at dense position pos and returns its
// value. The moved entry's sparse pointer is repaired before the truncate.
func (s *Set[T, H]) removeAt(pos int) T {
	entry := s.entries[pos]
	last := len(s.entries) - 1

	if pos != last {
		moved := s.entries[last]
		s.sparse[moved.Handle.Index()] = pos
		s.entries[pos] = moved
	}

	var zero Entry[H, T]
	s.entries[last] = zero
	s.entries = s.entries[:last]
	s.sparse[entry.Handle.Index()] = -1

	return entry.Value
}

// Retain keeps only the entries for which keep returns true. The predicate
// receives a pointer, so kept values can be updated in the same pass. After
// a removal the swapped-in successor occupies the current position and is
// tested before the scan advances.
func (s *Set[T, H]) Retain(keep func(h H, value *T) bool) {
	for pos := 0; pos < len(s.entries); {
		e := &s.entries[pos]
		if keep(e.Handle, &e.Value) {
			pos++
			continue
		}
		s.removeAt(pos)
	}
}

// SortFunc reorders the dense array by cmp, then repairs every sparse
// pointer to match the new positions. The sort is stable: entries that
// compare equal keep their relative order.
func (s *Set[T, H]) SortFunc(cmp func(a, b Entry[H, T]) int) {
	slices.SortStableFunc(s.entries, cmp)

	for pos, e := range s.entries {
		s.sparse[e.Handle.Index()] = pos
	}
}

// Clear removes all entries. Allocated storage is kept for reuse.
func (s *Set[T, H]) Clear() {
	clear(s.entries)
	s.entries = s.entries[:0]
	s.sparse = s.sparse[:0]
}

// Reserve grows the dense array so at least n more entries fit without
// growing again. It panics if n is negative.
func (s *Set[T, H]) Reserve(n int) {
	s.entries = slices.Grow(s.entries, n)
}

// Clone returns a copy of the set. Values are copied by assignment, so
// pointer-typed values share referents with the original.
func (s *Set[T, H]) Clone() *Set[T, H] {
	return &Set[T, H]{
		entries: slices.Clone(s.entries),
		sparse:  slices.Clone(s.sparse),
	}
}

// String renders the entries in dense order.
func (s *Set[T, H]) String() string {
	var sb strings.Builder

	sb.WriteByte('{')
	for i, e := range s.entries {
		if i > 0 {
			sb.WriteString(", ")
		}
		fmt.Fprintf(&sb, "%v: %v", e.Handle, e.Value)
	}
	sb.WriteByte('}')

	return sb.String()
}

func (s *Set[T, H]) lookup(h H) (int, bool) {
	i := h.Index()
	if i >= uint64(len(s.sparse)) {
		return 0, false
	}

	pos := s.sparse[i]
	if pos < 0 || s.entries[pos].Handle != h {
		return 0, false
	}

	return pos, true
}

// growSparse extends the sparse array to length n, prefilling new positions
// with the unused sentinel.
func (s *Set[T, H]) growSparse(n int) {
	if n <= len(s.sparse) {
		return
	}

	s.sparse = slices.Grow(s.sparse, n-len(s.sparse))
	for len(s.sparse) < n {
		s.sparse = append(s.sparse, -1)
	}
}

// rebuildSparse recomputes the sparse array from the dense entries, used
// after decoding. Duplicate raw indices must have been rejected already.
func (s *Set[T, H]) rebuildSparse() {
	maxIndex := -1
	for _, e := range s.entries {
		if i := int(e.Handle.Index()); i > maxIndex {
			maxIndex = i
		}
	}

	s.sparse = s.sparse[:0]
	s.growSparse(maxIndex + 1)

	for pos, e := range s.entries {
		s.sparse[e.Handle.Index()] = pos
	}
}

// Equal reports whether a and b hold the same entries in the same dense
// order. The dense order is an observable property of a sparse set, so two
// sets with the same entries in different orders are not equal.
func Equal[T comparable, H genindex.GenIndex[H]](a, b *Set[T, H]) bool {
	return EqualFunc(a, b, func(x, y T) bool { return x == y })
}

// EqualFunc is Equal with a caller-supplied value comparison.
func EqualFunc[T any, H genindex.GenIndex[H]](a, b *Set[T, H], eq func(T, T) bool) bool {
	if len(a.entries) != len(b.entries) {
		return false
	}

	for pos, e := range a.entries {
		other := b.entries[pos]
		if e.Handle != other.Handle || !eq(e.Value, other.Value) {
			return false
		}
	}

	return true
}
