package genindex

import "encoding/json"

// Typed brands a handle with the value type it refers to, so that a handle
// into a container of A cannot be passed where a handle into a container of
// B is expected. The brand is a zero-sized phantom; a Typed handle has the
// same size and representation as the handle it wraps.
//
// Typed marshals to JSON exactly as the underlying handle does.
type Typed[T any, H GenIndex[H]] struct {
	// The brand leads so the zero-sized field needs no trailing padding.
	_      [0]*T
	handle H
}

// NewTyped wraps a raw handle with the brand for T.
func NewTyped[T any, H GenIndex[H]](h H) Typed[T, H] {
	return Typed[T, H]{handle: h}
}

// Handle returns the underlying raw handle.
func (t Typed[T, H]) Handle() H { return t.handle }

// FromRawParts builds a branded handle from an index and a generation,
// delegating range behavior to the underlying encoding.
func (t Typed[T, H]) FromRawParts(index, generation uint64) Typed[T, H] {
	return Typed[T, H]{handle: t.handle.FromRawParts(index, generation)}
}

// Index returns the raw slot index.
func (t Typed[T, H]) Index() uint64 { return t.handle.Index() }

// Generation returns the generation counter.
func (t Typed[T, H]) Generation() uint64 { return t.handle.Generation() }

// MaxIndex returns the underlying encoding's largest index.
func (t Typed[T, H]) MaxIndex() uint64 { return t.handle.MaxIndex() }

// MaxGeneration returns the underlying encoding's largest generation.
func (t Typed[T, H]) MaxGeneration() uint64 { return t.handle.MaxGeneration() }

// NextGeneration returns the same index with the generation advanced.
func (t Typed[T, H]) NextGeneration() Typed[T, H] {
	return Typed[T, H]{handle: t.handle.NextGeneration()}
}

// MarshalJSON encodes the underlying handle.
func (t Typed[T, H]) MarshalJSON() ([]byte, error) {
	return json.Marshal(t.handle)
}

// UnmarshalJSON decodes into the underlying handle.
func (t *Typed[T, H]) UnmarshalJSON(data []byte) error {
	return json.Unmarshal(data, &t.handle)
}
