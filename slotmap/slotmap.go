package slotmap

import (
	"fmt"
	"math/bits"
	"slices"
	"strings"

	"github.com/hupe1980/gendex/genindex"
)

// Map is a paged generational slot map keyed by handles of type H and
// holding values of type T.
//
// A Map must not be shared between goroutines without external locking; it
// follows a single-owner, synchronous mutation model.
//
// The zero Map is empty and ready to use with the default page size.
type Map[T any, H genindex.GenIndex[H]] struct {
	// indices holds one handle per slot. Slot i is live iff
	// indices[i].Index() == i; otherwise the index field stores the next
	// free slot's position and the generation field keeps the slot's last
	// issued generation.
	indices []H
	pages   [][]T

	freeHead int
	freeTail int
	freeSize int

	pageSize  int
	pageMask  int
	pageShift uint
}

// New creates an empty Map for values of type T keyed by handles of type H.
func New[T any, H genindex.GenIndex[H]](optFns ...Option) *Map[T, H] {
	o := applyOptions(optFns)

	m := &Map[T, H]{}
	m.setPageSize(o.pageSize)

	return m
}

func (m *Map[T, H]) setPageSize(n int) {
	m.pageSize = n
	m.pageMask = n - 1
	m.pageShift = uint(bits.TrailingZeros(uint(n)))
}

func (m *Map[T, H]) lazyInit() {
	if m.pageSize == 0 {
		m.setPageSize(DefaultPageSize)
	}
}

// Len returns the number of live values.
func (m *Map[T, H]) Len() int {
	return len(m.indices) - m.freeSize
}

// Cap returns the number of slots the map can track before the index array
// grows again.
func (m *Map[T, H]) Cap() int {
	return cap(m.indices)
}

// PageSize returns the number of value slots per page.
func (m *Map[T, H]) PageSize() int {
	m.lazyInit()
	return m.pageSize
}

// Push stores value in a free slot and returns its handle. Freed slots are
// reused oldest first; otherwise the value goes into a fresh slot at the
// end, appending a page when the last one is full. Push panics when the
// fresh slot position is not representable by the handle's index type.
func (m *Map[T, H]) Push(value T) H {
	m.lazyInit()

	if m.freeSize > 0 {
		pos := m.freeHead
		stored := m.indices[pos]
		m.freeHead = int(stored.Index())
		m.freeSize--

		h := stored.FromRawParts(uint64(pos), stored.NextGeneration().Generation())
		m.indices[pos] = h
		m.pages[pos>>m.pageShift][pos&m.pageMask] = value

		return h
	}

	pos := len(m.indices)
	h := genindex.FromIndex[H](uint64(pos))

	if len(m.pages)*m.pageSize <= pos {
		m.pages = append(m.pages, make([]T, m.pageSize))
	}

	m.indices = append(m.indices, h)
	m.pages[pos>>m.pageShift][pos&m.pageMask] = value

	return h
}

// Get returns the value stored under h. It reports false when h is stale or
// out of range.
func (m *Map[T, H]) Get(h H) (T, bool) {
	i := h.Index()
	if i >= uint64(len(m.indices)) || m.indices[i] != h {
		var zero T
		return zero, false
	}

	return m.pages[i>>m.pageShift][int(i)&m.pageMask], true
}

// GetRef returns a pointer to the value stored under h, valid until the
// slot is removed or the map is cleared. It reports false when h is stale
// or out of range.
func (m *Map[T, H]) GetRef(h H) (*T, bool) {
	i := h.Index()
	if i >= uint64(len(m.indices)) || m.indices[i] != h {
		return nil, false
	}

	return &m.pages[i>>m.pageShift][int(i)&m.pageMask], true
}

// MustGet returns the value stored under h, panicking when h is stale or
// out of range. Use Get for handles that have not been validated.
func (m *Map[T, H]) MustGet(h H) T {
	v, ok := m.Get(h)
	if !ok {
		panic(fmt.Sprintf("slotmap: no live slot for handle %v", h))
	}

	return v
}

// Contains reports whether h refers to a live slot.
func (m *Map[T, H]) Contains(h H) bool {
	i := h.Index()
	return i < uint64(len(m.indices)) && m.indices[i] == h
}

// Remove deletes the value under h and returns it. It reports false and
// leaves the map unchanged when h is stale or out of range.
func (m *Map[T, H]) Remove(h H) (T, bool) {
	i := h.Index()
	if i >= uint64(len(m.indices)) || m.indices[i] != h {
		var zero T
		return zero, false
	}

	pos := int(i)
	slot := &m.pages[pos>>m.pageShift][pos&m.pageMask]
	value := *slot

	var zero T
	*slot = zero

	m.kill(pos)

	if m.freeSize > 0 {
		tail := m.indices[m.freeTail]
		m.indices[m.freeTail] = tail.FromRawParts(uint64(pos), tail.Generation())
	} else {
		m.freeHead = pos
	}
	m.freeTail = pos
	m.freeSize++

	return value, true
}

// Retain keeps only the values for which keep returns true and releases the
// rest. The predicate receives a pointer, so kept values can be updated in
// the same pass. Freed slots are chained into a single batch that is
// spliced onto the free list once at the end.
func (m *Map[T, H]) Retain(keep func(h H, value *T) bool) {
	batchHead, batchTail := -1, -1
	count := 0

	for pos, h := range m.indices {
		if h.Index() != uint64(pos) {
			continue
		}

		slot := &m.pages[pos>>m.pageShift][pos&m.pageMask]
		if keep(h, slot) {
			continue
		}

		var zero T
		*slot = zero

		m.kill(pos)

		if batchTail >= 0 {
			prev := m.indices[batchTail]
			m.indices[batchTail] = prev.FromRawParts(uint64(pos), prev.Generation())
		} else {
			batchHead = pos
		}
		batchTail = pos
		count++
	}

	if count == 0 {
		return
	}

	if m.freeSize > 0 {
		tail := m.indices[m.freeTail]
		m.indices[m.freeTail] = tail.FromRawParts(uint64(batchHead), tail.Generation())
	} else {
		m.freeHead = batchHead
	}
	m.freeTail = batchTail
	m.freeSize += count
}

// Clear removes all values. Allocated pages are kept and refilled by later
// pushes.
func (m *Map[T, H]) Clear() {
	for _, page := range m.pages {
		clear(page)
	}

	m.indices = m.indices[:0]
	m.freeHead = 0
	m.freeTail = 0
	m.freeSize = 0
}

// Reserve grows the map so that at least n more values fit without growing
// the index array again, appending pages to match. It panics if n is
// negative.
func (m *Map[T, H]) Reserve(n int) {
	m.lazyInit()

	m.indices = slices.Grow(m.indices, n)

	need := len(m.indices) + n
	for len(m.pages)*m.pageSize < need {
		m.pages = append(m.pages, make([]T, m.pageSize))
	}
}

// Clone returns a copy of the map with the same slot layout, free list and
// values. Values are copied by assignment, so pointer-typed values share
// referents with the original.
func (m *Map[T, H]) Clone() *Map[T, H] {
	c := &Map[T, H]{
		indices:   slices.Clone(m.indices),
		pages:     make([][]T, len(m.pages)),
		freeHead:  m.freeHead,
		freeTail:  m.freeTail,
		freeSize:  m.freeSize,
		pageSize:  m.pageSize,
		pageMask:  m.pageMask,
		pageShift: m.pageShift,
	}

	for i := range m.pages {
		c.pages[i] = make([]T, m.pageSize)
	}

	// Only live values are copied; dead slots stay zero.
	for pos, h := range m.indices {
		if h.Index() != uint64(pos) {
			continue
		}
		c.pages[pos>>m.pageShift][pos&m.pageMask] = m.pages[pos>>m.pageShift][pos&m.pageMask]
	}

	return c
}

// String renders the live entries in slot order.
func (m *Map[T, H]) String() string {
	var sb strings.Builder

	sb.WriteByte('{')
	first := true
	for h, v := range m.All() {
		if !first {
			sb.WriteString(", ")
		}
		first = false
		fmt.Fprintf(&sb, "%v: %v", h, v)
	}
	sb.WriteByte('}')

	return sb.String()
}

// kill rewrites the slot's index field as a free-list terminator, keeping
// the generation so the next reuse advances it. Slot 0 points at 1 so a
// dead slot never looks live.
func (m *Map[T, H]) kill(pos int) {
	marker := uint64(0)
	if pos == 0 {
		marker = 1
	}

	h := m.indices[pos]
	m.indices[pos] = h.FromRawParts(marker, h.Generation())
}

// rebuildFreeList threads a fresh free list through the dead slots in
// ascending position order, normalizing their markers. Used after decoding,
// where stored free-list pointers are not trusted.
func (m *Map[T, H]) rebuildFreeList() {
	m.freeHead = 0
	m.freeTail = 0
	m.freeSize = 0

	prev := -1
	for pos, h := range m.indices {
		if h.Index() == uint64(pos) {
			continue
		}

		m.kill(pos)

		if prev >= 0 {
			ph := m.indices[prev]
			m.indices[prev] = ph.FromRawParts(uint64(pos), ph.Generation())
		} else {
			m.freeHead = pos
		}
		prev = pos
		m.freeSize++
	}

	if prev >= 0 {
		m.freeTail = prev
	}
}

// Equal reports whether a and b hold the same live handles with equal
// values. Free-list order and page layout do not participate.
func Equal[T comparable, H genindex.GenIndex[H]](a, b *Map[T, H]) bool {
	return EqualFunc(a, b, func(x, y T) bool { return x == y })
}

// EqualFunc is Equal with a caller-supplied value comparison.
func EqualFunc[T any, H genindex.GenIndex[H]](a, b *Map[T, H], eq func(T, T) bool) bool {
	if a.Len() != b.Len() {
		return false
	}

	for h, v := range a.All() {
		other, ok := b.Get(h)
		if !ok || !eq(v, other) {
			return false
		}
	}

	return true
}
