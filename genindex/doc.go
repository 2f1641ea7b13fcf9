// Package genindex defines generational indices: compound (index, generation)
// handles used as weak references into packed storage.
//
// A container hands out a handle when a value is stored. When the slot is
// later recycled, its generation advances, so a stale handle kept by a caller
// no longer matches and lookups with it simply miss instead of resolving to
// an unrelated value (the ABA problem).
//
// Four encodings implement the GenIndex contract:
//
//   - Pair[I, G]: two separate unsigned fields of any width
//   - U64: one 64-bit word, 32-bit index, 32-bit generation
//   - F64: one float64 word, 32-bit index, 21-bit generation, for numeric
//     models that only have IEEE-754 doubles
//   - Typed[T, H]: zero-cost branding of any encoding with an entity type
//
// The null handle is the zero value of an encoding; generation zero is
// reserved by FromIndex for "never issued", so handles minted by containers
// start at generation one and never equal the null handle.
package genindex
