package gendex

import (
	"github.com/RoaringBitmap/roaring/v2/roaring64"
)

// Collection is the minimal contract shared by every container.
type Collection interface {
	// Len returns the number of live entries.
	Len() int

	// Clear removes all entries.
	Clear()
}

// Getter reads values by key. Lookups with stale or null keys return the
// zero value and false.
type Getter[K comparable, V any] interface {
	// Get returns the value stored under key.
	Get(key K) (V, bool)

	// Contains reports whether key refers to a live entry.
	Contains(key K) bool
}

// RefGetter hands out pointers to stored values so callers can mutate them
// in place. Pointer validity across container mutation is container
// specific.
type RefGetter[K comparable, V any] interface {
	// GetRef returns a pointer to the value stored under key.
	GetRef(key K) (*V, bool)
}

// Inserter writes values under caller-supplied keys.
type Inserter[K comparable, V any] interface {
	// Insert stores value under key and returns the value it displaced,
	// if any.
	Insert(key K, value V) (old V, replaced bool)
}

// Remover removes entries by key.
type Remover[K comparable, V any] interface {
	// Remove deletes the entry stored under key and returns its value.
	Remove(key K) (V, bool)
}

// Pusher mints a fresh key for every stored value.
type Pusher[V any, K comparable] interface {
	// Push stores value and returns the key minted for it.
	Push(value V) K
}

// Retainer filters entries in place.
type Retainer[K comparable, V any] interface {
	// Retain keeps the entries the predicate approves of and removes the
	// rest. The predicate receives a pointer, so kept values can be
	// updated in the same pass.
	Retain(keep func(key K, value *V) bool)
}

// Reserver pre-allocates storage.
type Reserver interface {
	// Reserve grows the container so it can hold at least n entries
	// without reallocating.
	Reserve(n int)
}

// LiveSetter reports the raw indices of a container's live entries as a
// roaring bitmap.
type LiveSetter interface {
	// LiveSet returns a snapshot of the live raw indices.
	LiveSet() *roaring64.Bitmap
}
