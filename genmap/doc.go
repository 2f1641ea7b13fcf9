// Package genmap provides a generational-index map over pluggable backings.
//
// A Map stores (handle, value) entries keyed by the handle's raw index and
// validates the full handle, generation included, on every lookup. Unlike a
// sparse set, Insert stores the handle it is given: replacing an entry
// through a newer handle re-keys the entry to that handle and retires the
// old one.
//
// Three backings cover the usual trade-offs: NewVecBacking, a slice with
// holes, is the default and the fastest for dense index ranges;
// NewMapBacking keys the builtin map and suits sparse ranges;
// NewBTreeBacking keeps entries ordered by raw index for in-order
// iteration.
package genmap
