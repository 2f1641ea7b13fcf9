package genmap

import (
	"fmt"
	"iter"
	"math"

	"github.com/hupe1980/gendex/genindex"
)

// Entry is one stored (handle, value) pair.
type Entry[H genindex.GenIndex[H], T any] struct {
	Handle H
	Value  T
}

// Backing stores entries keyed by raw handle index. A Backing holds entries
// by pointer so the Map can hand out stable value references. Backings are
// not safe for concurrent use.
type Backing[H genindex.GenIndex[H], T any] interface {
	// Len returns the number of stored entries.
	Len() int

	// Get returns the entry stored under index.
	Get(index uint64) (*Entry[H, T], bool)

	// Set stores e under index and returns the displaced entry, if any.
	Set(index uint64, e *Entry[H, T]) (*Entry[H, T], bool)

	// Delete removes and returns the entry stored under index.
	Delete(index uint64) (*Entry[H, T], bool)

	// Clear removes all entries.
	Clear()

	// All yields the entries in the backing's order.
	All() iter.Seq[*Entry[H, T]]
}

type mapBacking[H genindex.GenIndex[H], T any] map[uint64]*Entry[H, T]

// NewMapBacking returns a Backing on the builtin map, suited to sparse
// index ranges. Iteration order is unspecified.
func NewMapBacking[H genindex.GenIndex[H], T any]() Backing[H, T] {
	return mapBacking[H, T]{}
}

func (b mapBacking[H, T]) Len() int { return len(b) }

func (b mapBacking[H, T]) Get(index uint64) (*Entry[H, T], bool) {
	e, ok := b[index]
	return e, ok
}

func (b mapBacking[H, T]) Set(index uint64, e *Entry[H, T]) (*Entry[H, T], bool) {
	old, ok := b[index]
	b[index] = e

	return old, ok
}

func (b mapBacking[H, T]) Delete(index uint64) (*Entry[H, T], bool) {
	e, ok := b[index]
	if ok {
		delete(b, index)
	}

	return e, ok
}

func (b mapBacking[H, T]) Clear() { clear(b) }

func (b mapBacking[H, T]) All() iter.Seq[*Entry[H, T]] {
	return func(yield func(*Entry[H, T]) bool) {
		for _, e := range b {
			if !yield(e) {
				return
			}
		}
	}
}

// vecBacking stores entries at their raw index in a slice, nil marking a
// hole. Storage is proportional to the largest index, not the entry count.
type vecBacking[H genindex.GenIndex[H], T any] struct {
	items []*Entry[H, T]
	live  int
}

// NewVecBacking returns a Backing on a slice indexed by raw index. It is
// the default backing; iteration is in ascending index order.
func NewVecBacking[H genindex.GenIndex[H], T any]() Backing[H, T] {
	return &vecBacking[H, T]{}
}

func (b *vecBacking[H, T]) Len() int { return b.live }

func (b *vecBacking[H, T]) Get(index uint64) (*Entry[H, T], bool) {
	if index >= uint64(len(b.items)) {
		return nil, false
	}

	e := b.items[index]
	return e, e != nil
}

func (b *vecBacking[H, T]) Set(index uint64, e *Entry[H, T]) (*Entry[H, T], bool) {
	if index >= math.MaxInt {
		panic(fmt.Sprintf("genmap: index %d overflows the vector backing", index))
	}

	for uint64(len(b.items)) <= index {
		b.items = append(b.items, nil)
	}

	old := b.items[index]
	b.items[index] = e
	if old == nil {
		b.live++
		return nil, false
	}

	return old, true
}

func (b *vecBacking[H, T]) Delete(index uint64) (*Entry[H, T], bool) {
	if index >= uint64(len(b.items)) || b.items[index] == nil {
		return nil, false
	}

	e := b.items[index]
	b.items[index] = nil
	b.live--

	return e, true
}

func (b *vecBacking[H, T]) Clear() {
	clear(b.items)
	b.items = b.items[:0]
	b.live = 0
}

func (b *vecBacking[H, T]) All() iter.Seq[*Entry[H, T]] {
	return func(yield func(*Entry[H, T]) bool) {
		for _, e := range b.items {
			if e == nil {
				continue
			}
			if !yield(e) {
				return
			}
		}
	}
}
