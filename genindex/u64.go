package genindex

import (
	"fmt"
	"math"
)

// U64 packs a GenIndex into a single 64-bit word, the index in the low 32
// bits and the generation in the high 32 bits. It marshals to JSON as a
// plain number.
type U64 uint64

// NewU64 builds a U64 from 32-bit parts.
func NewU64(index, generation uint32) U64 {
	return U64(uint64(index) | uint64(generation)<<32)
}

// FromRawParts builds a U64 from an index and a generation. The generation
// wraps modulo 2^32; it panics when the index exceeds 32 bits.
func (u U64) FromRawParts(index, generation uint64) U64 {
	if index > math.MaxUint32 {
		panic("genindex: index overflows U64 encoding")
	}
	return U64(index | generation<<32)
}

// Index returns the low 32 bits.
func (u U64) Index() uint64 { return uint64(u) & math.MaxUint32 }

// Generation returns the high 32 bits.
func (u U64) Generation() uint64 { return uint64(u) >> 32 }

// MaxIndex returns the largest representable index.
func (u U64) MaxIndex() uint64 { return math.MaxUint32 }

// MaxGeneration returns the largest representable generation.
func (u U64) MaxGeneration() uint64 { return math.MaxUint32 }

// NextGeneration returns the same index with the generation advanced,
// wrapping to zero past MaxGeneration.
func (u U64) NextGeneration() U64 {
	return U64(u.Index() | uint64(uint32(u.Generation())+1)<<32)
}

// String formats the handle as "(index, generation)".
func (u U64) String() string {
	return fmt.Sprintf("(%d, %d)", u.Index(), u.Generation())
}
