package genindex

import (
	"encoding/json"
	"fmt"
)

// Pair is a GenIndex stored as two separate unsigned fields. The widths are
// free to differ, e.g. Pair[uint32, uint16] keeps a compact handle with a
// short generation counter.
//
// Pair marshals to JSON as a two-element array, [index, generation].
type Pair[I, G Unsigned] struct {
	index      I
	generation G
}

// PairU is a Pair with platform-word fields, the default encoding when no
// particular width is called for.
type PairU = Pair[uint, uint]

// NewPair builds a Pair from typed parts.
func NewPair[I, G Unsigned](index I, generation G) Pair[I, G] {
	return Pair[I, G]{index: index, generation: generation}
}

// FromRawParts builds a Pair from an index and a generation. The generation
// wraps modulo MaxGeneration()+1; it panics when the index overflows I.
func (p Pair[I, G]) FromRawParts(index, generation uint64) Pair[I, G] {
	if index > p.MaxIndex() {
		panic("genindex: index overflows Pair encoding")
	}
	return Pair[I, G]{index: I(index), generation: G(generation)}
}

// Index returns the raw slot index.
func (p Pair[I, G]) Index() uint64 { return uint64(p.index) }

// Generation returns the generation counter.
func (p Pair[I, G]) Generation() uint64 { return uint64(p.generation) }

// MaxIndex returns the largest value of I.
func (p Pair[I, G]) MaxIndex() uint64 { return uint64(^I(0)) }

// MaxGeneration returns the largest value of G.
func (p Pair[I, G]) MaxGeneration() uint64 { return uint64(^G(0)) }

// NextGeneration returns the same index with the generation advanced,
// wrapping to zero past MaxGeneration.
func (p Pair[I, G]) NextGeneration() Pair[I, G] {
	return Pair[I, G]{index: p.index, generation: p.generation + 1}
}

// String formats the handle as "(index, generation)".
func (p Pair[I, G]) String() string {
	return fmt.Sprintf("(%d, %d)", uint64(p.index), uint64(p.generation))
}

// MarshalJSON encodes the handle as [index, generation].
func (p Pair[I, G]) MarshalJSON() ([]byte, error) {
	return json.Marshal([2]uint64{uint64(p.index), uint64(p.generation)})
}

// UnmarshalJSON decodes [index, generation], rejecting values outside the
// encoding's range.
func (p *Pair[I, G]) UnmarshalJSON(data []byte) error {
	var parts []uint64
	if err := json.Unmarshal(data, &parts); err != nil {
		return err
	}
	if len(parts) != 2 {
		return fmt.Errorf("genindex: expected [index, generation], got %d elements", len(parts))
	}
	if parts[0] > p.MaxIndex() {
		return fmt.Errorf("genindex: index %d overflows Pair encoding", parts[0])
	}
	if parts[1] > p.MaxGeneration() {
		return fmt.Errorf("genindex: generation %d overflows Pair encoding", parts[1])
	}
	*p = Pair[I, G]{index: I(parts[0]), generation: G(parts[1])}
	return nil
}
