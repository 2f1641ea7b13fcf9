package slotmap

import (
	"iter"

	"github.com/RoaringBitmap/roaring/v2/roaring64"
)

// All yields the live entries in ascending slot order. Dead slots are
// skipped.
func (m *Map[T, H]) All() iter.Seq2[H, T] {
	return func(yield func(H, T) bool) {
		for pos, h := range m.indices {
			if h.Index() != uint64(pos) {
				continue
			}
			if !yield(h, m.pages[pos>>m.pageShift][pos&m.pageMask]) {
				return
			}
		}
	}
}

// Backward yields the live entries in descending slot order.
func (m *Map[T, H]) Backward() iter.Seq2[H, T] {
	return func(yield func(H, T) bool) {
		for pos := len(m.indices) - 1; pos >= 0; pos-- {
			h := m.indices[pos]
			if h.Index() != uint64(pos) {
				continue
			}
			if !yield(h, m.pages[pos>>m.pageShift][pos&m.pageMask]) {
				return
			}
		}
	}
}

// Refs yields pointers to the live values for in-place mutation. The
// pointers stay valid until their slot is removed or the map is cleared.
// The map must not be grown or shrunk while iterating.
func (m *Map[T, H]) Refs() iter.Seq2[H, *T] {
	return func(yield func(H, *T) bool) {
		for pos, h := range m.indices {
			if h.Index() != uint64(pos) {
				continue
			}
			if !yield(h, &m.pages[pos>>m.pageShift][pos&m.pageMask]) {
				return
			}
		}
	}
}

// BackwardRefs is Refs in descending slot order.
func (m *Map[T, H]) BackwardRefs() iter.Seq2[H, *T] {
	return func(yield func(H, *T) bool) {
		for pos := len(m.indices) - 1; pos >= 0; pos-- {
			h := m.indices[pos]
			if h.Index() != uint64(pos) {
				continue
			}
			if !yield(h, &m.pages[pos>>m.pageShift][pos&m.pageMask]) {
				return
			}
		}
	}
}

// Handles yields the live handles in ascending slot order.
func (m *Map[T, H]) Handles() iter.Seq[H] {
	return func(yield func(H) bool) {
		for pos, h := range m.indices {
			if h.Index() != uint64(pos) {
				continue
			}
			if !yield(h) {
				return
			}
		}
	}
}

// Values yields the live values in ascending slot order.
func (m *Map[T, H]) Values() iter.Seq[T] {
	return func(yield func(T) bool) {
		for pos, h := range m.indices {
			if h.Index() != uint64(pos) {
				continue
			}
			if !yield(m.pages[pos>>m.pageShift][pos&m.pageMask]) {
				return
			}
		}
	}
}

// LiveSet returns a bitmap of the raw indices currently live. The bitmap is
// a snapshot; later mutations do not update it.
func (m *Map[T, H]) LiveSet() *roaring64.Bitmap {
	live := roaring64.New()
	for pos, h := range m.indices {
		if h.Index() == uint64(pos) {
			live.Add(uint64(pos))
		}
	}

	return live
}
