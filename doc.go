// Package gendex provides generational-index handles and the associative
// containers keyed by them.
//
// A generational index packs a slot index and a generation counter into one
// small handle. Containers advance a slot's generation whenever the slot is
// reused, so a handle to a removed entry can never alias its replacement:
// lookups with stale handles simply miss.
//
// # Quick Start
//
//	entities := slotmap.New[string, genindex.U64]()
//	hero := entities.Push("hero")
//
//	name, ok := entities.Get(hero) // "hero", true
//	entities.Remove(hero)
//	name, ok = entities.Get(hero)  // "", false: the handle went stale
//
// # Handles
//
// Package genindex ships three encodings plus a phantom-typed wrapper:
//
//   - genindex.Pair[I, G]: index and generation as two explicit fields of
//     any unsigned widths (genindex.PairU for platform words)
//   - genindex.U64: both packed into a single uint64 (32/32 split)
//   - genindex.F64: both packed into a float64's integer range, for hosts
//     where every value is a double
//   - genindex.Typed[T, H]: brands any encoding with a compile-time tag so
//     handles from unrelated containers cannot be mixed up
//
// All encodings share the genindex.GenIndex contract: the all-zero value is
// the null handle, generation zero means "never issued", and fresh handles
// start at generation one.
//
// # Containers
//
// Three containers cover the usual storage trade-offs:
//
//   - slotmap.Map mints handles itself. Paged slot storage, O(1)
//     insert/get/remove, pointers stay valid across growth.
//   - sparseset.Set takes caller-supplied handles. Dense contiguous values,
//     cache-friendly iteration, sortable.
//   - genmap.Map takes caller-supplied handles over a pluggable backing
//     (vector, hash map, or B-tree for ordered iteration).
//
// Containers are not synchronized. Each instance expects a single logical
// owner, the way a built-in map does.
//
// # Joins
//
// The shared interface vocabulary (Getter, RefGetter, Inserter, ...) lets
// containers of different kinds interoperate. Join, JoinLeft, JoinLeftExcl
// and JoinRefs relate containers keyed by the same handle space:
//
//	for h, row := range gendex.Join(positions.All(), velocities) {
//	    fmt.Println(h, row.Left, row.Right)
//	}
//
// # Persistence
//
// Every container marshals to JSON and to a framed binary form through the
// codec package. Package snapshot bundles container sections into a single
// compressed, checksummed file with atomic replacement on save.
package gendex
