// Package slotmap provides a paged generational slot map: a container that
// stores values in fixed-size pages and hands out generational handles that
// stay cheap to validate across remove/reuse cycles.
//
// Every slot position carries a handle in a parallel index array. A slot is
// live exactly when the handle stored at position i still says index i; a
// dead slot's index field is repurposed as a link in the free list, so
// vacancy costs no extra storage. Removing a value keeps its generation in
// the slot, and the next push through that slot advances it, which is what
// makes a stale handle fail validation instead of silently reading the new
// occupant.
//
// Freed slots are recycled oldest first. Pages are allocated one at a time
// as the map grows and values inside a page are only reachable through
// handle validation, never scanned directly.
package slotmap
