package sparseset

import (
	"iter"

	"github.com/RoaringBitmap/roaring/v2/roaring64"
)

// All yields the entries in dense order.
func (s *Set[T, H]) All() iter.Seq2[H, T] {
	return func(yield func(H, T) bool) {
		for _, e := range s.entries {
			if !yield(e.Handle, e.Value) {
				return
			}
		}
	}
}

// Backward yields the entries in reverse dense order.
func (s *Set[T, H]) Backward() iter.Seq2[H, T] {
	return func(yield func(H, T) bool) {
		for pos := len(s.entries) - 1; pos >= 0; pos-- {
			if !yield(s.entries[pos].Handle, s.entries[pos].Value) {
				return
			}
		}
	}
}

// Refs yields pointers to the values for in-place mutation. The set must
// not be mutated while iterating.
func (s *Set[T, H]) Refs() iter.Seq2[H, *T] {
	return func(yield func(H, *T) bool) {
		for pos := range s.entries {
			if !yield(s.entries[pos].Handle, &s.entries[pos].Value) {
				return
			}
		}
	}
}

// BackwardRefs is Refs in reverse dense order.
func (s *Set[T, H]) BackwardRefs() iter.Seq2[H, *T] {
	return func(yield func(H, *T) bool) {
		for pos := len(s.entries) - 1; pos >= 0; pos-- {
			if !yield(s.entries[pos].Handle, &s.entries[pos].Value) {
				return
			}
		}
	}
}

// Handles yields the handles in dense order.
func (s *Set[T, H]) Handles() iter.Seq[H] {
	return func(yield func(H) bool) {
		for _, e := range s.entries {
			if !yield(e.Handle) {
				return
			}
		}
	}
}

// Values yields the values in dense order.
func (s *Set[T, H]) Values() iter.Seq[T] {
	return func(yield func(T) bool) {
		for _, e := range s.entries {
			if !yield(e.Value) {
				return
			}
		}
	}
}

// LiveSet returns a bitmap of the raw indices currently present. The bitmap
// is a snapshot; later mutations do not update it.
func (s *Set[T, H]) LiveSet() *roaring64.Bitmap {
	live := roaring64.New()
	for _, e := range s.entries {
		live.Add(e.Handle.Index())
	}

	return live
}
