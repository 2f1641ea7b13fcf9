// Package sparseset provides a sparse set keyed by generational handles: a
// dense entry array that iterates without skipping, plus a sparse position
// array that maps a handle's raw index to its place in the dense array.
//
// Lookup costs two array reads. Removal swaps the last entry into the freed
// position and repairs its sparse pointer, so the dense array never carries
// tombstones; the trade-off is that removal reorders iteration. A stable
// sort is available and repairs every sparse pointer in one pass afterward.
//
// Unlike a slot map, the set never mints handles. Callers bring their own,
// usually issued by a slot map or minted with genindex.FromIndex, and the
// sparse array grows to the largest raw index seen.
package sparseset
