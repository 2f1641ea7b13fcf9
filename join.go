package gendex

import (
	"iter"

	"github.com/RoaringBitmap/roaring/v2/roaring64"
)

// Joined carries both sides of a join match. Joins compose by nesting: the
// result of one join can drive the next, with each step wrapping another
// Joined layer around the left side.
type Joined[A, B any] struct {
	Left  A
	Right B
}

// LeftJoined carries the driving value and, when the probe side has the
// key, its value. Ok reports whether the probe side matched; when it is
// false, Right is the zero value.
type LeftJoined[A, B any] struct {
	Left  A
	Right B
	Ok    bool
}

// Join inner joins a driving sequence with a probe side, yielding the keys
// present in both. The driving sequence determines the order.
func Join[K comparable, A, B any](drive iter.Seq2[K, A], probe Getter[K, B]) iter.Seq2[K, Joined[A, B]] {
	return func(yield func(K, Joined[A, B]) bool) {
		for k, a := range drive {
			b, ok := probe.Get(k)
			if !ok {
				continue
			}
			if !yield(k, Joined[A, B]{Left: a, Right: b}) {
				return
			}
		}
	}
}

// JoinLeft left joins a driving sequence with a probe side, yielding every
// driving key whether or not the probe side matched.
func JoinLeft[K comparable, A, B any](drive iter.Seq2[K, A], probe Getter[K, B]) iter.Seq2[K, LeftJoined[A, B]] {
	return func(yield func(K, LeftJoined[A, B]) bool) {
		for k, a := range drive {
			b, ok := probe.Get(k)
			if !yield(k, LeftJoined[A, B]{Left: a, Right: b, Ok: ok}) {
				return
			}
		}
	}
}

// JoinLeftExcl yields only the driving keys absent from the probe side.
func JoinLeftExcl[K comparable, A, B any](drive iter.Seq2[K, A], probe Getter[K, B]) iter.Seq2[K, A] {
	return func(yield func(K, A) bool) {
		for k, a := range drive {
			if probe.Contains(k) {
				continue
			}
			if !yield(k, a) {
				return
			}
		}
	}
}

// JoinRefs inner joins a driving sequence with a probe side, yielding a
// pointer into the probe container for every match so the matched values
// can be mutated during the join. The driving sequence must not repeat
// keys; a repeated key hands out the same pointer twice. Container
// iterators never repeat keys.
func JoinRefs[K comparable, A, B any](drive iter.Seq2[K, A], probe RefGetter[K, B]) iter.Seq2[K, Joined[A, *B]] {
	return func(yield func(K, Joined[A, *B]) bool) {
		for k, a := range drive {
			b, ok := probe.GetRef(k)
			if !ok {
				continue
			}
			if !yield(k, Joined[A, *B]{Left: a, Right: b}) {
				return
			}
		}
	}
}

// Intersect returns the raw indices live in every given container. A join
// across containers keyed by the same handle space can only produce keys
// whose raw index is in this set, so it is a cheap way to size a result or
// to pick the smallest driving side before iterating. With no arguments
// Intersect returns an empty bitmap.
func Intersect(sides ...LiveSetter) *roaring64.Bitmap {
	if len(sides) == 0 {
		return roaring64.New()
	}
	out := sides[0].LiveSet()
	for _, side := range sides[1:] {
		out.And(side.LiveSet())
	}
	return out
}
