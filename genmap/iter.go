package genmap

import (
	"iter"

	"github.com/RoaringBitmap/roaring/v2/roaring64"
)

// All yields the entries in the backing's order: ascending raw index for
// the vector and B-tree backings, unspecified for the map backing.
func (m *Map[T, H]) All() iter.Seq2[H, T] {
	m.lazyInit()

	return func(yield func(H, T) bool) {
		for e := range m.backing.All() {
			if !yield(e.Handle, e.Value) {
				return
			}
		}
	}
}

// Refs yields the entries with pointers to the stored values, so the loop
// body can mutate in place.
func (m *Map[T, H]) Refs() iter.Seq2[H, *T] {
	m.lazyInit()

	return func(yield func(H, *T) bool) {
		for e := range m.backing.All() {
			if !yield(e.Handle, &e.Value) {
				return
			}
		}
	}
}

// Handles yields the stored handles in the backing's order.
func (m *Map[T, H]) Handles() iter.Seq[H] {
	m.lazyInit()

	return func(yield func(H) bool) {
		for e := range m.backing.All() {
			if !yield(e.Handle) {
				return
			}
		}
	}
}

// Values yields the stored values in the backing's order.
func (m *Map[T, H]) Values() iter.Seq[T] {
	m.lazyInit()

	return func(yield func(T) bool) {
		for e := range m.backing.All() {
			if !yield(e.Value) {
				return
			}
		}
	}
}

// LiveSet returns a bitmap of the raw indices currently present. The bitmap
// is a snapshot; later mutations do not update it.
func (m *Map[T, H]) LiveSet() *roaring64.Bitmap {
	m.lazyInit()

	live := roaring64.New()
	for e := range m.backing.All() {
		live.Add(e.Handle.Index())
	}

	return live
}
