package genindex

import (
	"fmt"
	"math"
)

// MaxSafeGeneration is the largest generation an F64 can carry. An IEEE 754
// double holds 53 bits of integer precision; 32 go to the index, leaving 21
// for the generation.
const MaxSafeGeneration = 1<<21 - 1

// F64 packs a GenIndex into a float64, for hosts where every number is a
// double. The index lives in the low 32 bits of the integer value and the
// generation above it. A live F64 never has generation zero, so the
// generation counter wraps back to one.
//
// F64 marshals to JSON as a plain number.
type F64 float64

// NewF64 builds an F64 from its parts. The generation is masked to
// MaxSafeGeneration.
func NewF64(index uint32, generation uint64) F64 {
	return F64(float64(uint64(index) | (generation&MaxSafeGeneration)<<32))
}

// FromRawParts builds an F64 from an index and a generation. The generation
// wraps modulo MaxSafeGeneration+1; it panics when the index exceeds 32 bits.
func (f F64) FromRawParts(index, generation uint64) F64 {
	if index > math.MaxUint32 {
		panic("genindex: index overflows F64 encoding")
	}
	return F64(float64(index | (generation&MaxSafeGeneration)<<32))
}

// Index returns the low 32 bits of the integer value.
func (f F64) Index() uint64 { return uint64(f) & math.MaxUint32 }

// Generation returns the bits above the index.
func (f F64) Generation() uint64 { return uint64(f) >> 32 }

// MaxIndex returns the largest representable index.
func (f F64) MaxIndex() uint64 { return math.MaxUint32 }

// MaxGeneration returns the largest representable generation.
func (f F64) MaxGeneration() uint64 { return MaxSafeGeneration }

// NextGeneration returns the same index with the generation advanced,
// wrapping to one past MaxSafeGeneration so a live handle never reaches
// generation zero.
func (f F64) NextGeneration() F64 {
	g := f.Generation()
	if g >= MaxSafeGeneration {
		g = 1
	} else {
		g++
	}
	return F64(float64(f.Index() | g<<32))
}

// String formats the handle as "(index, generation)".
func (f F64) String() string {
	return fmt.Sprintf("(%d, %d)", f.Index(), f.Generation())
}
