package genmap

import (
	"iter"

	"github.com/google/btree"

	"github.com/hupe1980/gendex/genindex"
)

const btreeDegree = 16

type btreeItem[H genindex.GenIndex[H], T any] struct {
	index uint64
	entry *Entry[H, T]
}

type btreeBacking[H genindex.GenIndex[H], T any] struct {
	tree *btree.BTreeG[btreeItem[H, T]]
}

// NewBTreeBacking returns a Backing on a B-tree keyed by raw index, for
// workloads that iterate in index order.
func NewBTreeBacking[H genindex.GenIndex[H], T any]() Backing[H, T] {
	return &btreeBacking[H, T]{
		tree: btree.NewG(btreeDegree, func(a, b btreeItem[H, T]) bool {
			return a.index < b.index
		}),
	}
}

func (b *btreeBacking[H, T]) Len() int { return b.tree.Len() }

func (b *btreeBacking[H, T]) Get(index uint64) (*Entry[H, T], bool) {
	item, ok := b.tree.Get(btreeItem[H, T]{index: index})
	if !ok {
		return nil, false
	}

	return item.entry, true
}

func (b *btreeBacking[H, T]) Set(index uint64, e *Entry[H, T]) (*Entry[H, T], bool) {
	old, ok := b.tree.ReplaceOrInsert(btreeItem[H, T]{index: index, entry: e})
	if !ok {
		return nil, false
	}

	return old.entry, true
}

func (b *btreeBacking[H, T]) Delete(index uint64) (*Entry[H, T], bool) {
	old, ok := b.tree.Delete(btreeItem[H, T]{index: index})
	if !ok {
		return nil, false
	}

	return old.entry, true
}

func (b *btreeBacking[H, T]) Clear() {
	b.tree.Clear(false)
}

func (b *btreeBacking[H, T]) All() iter.Seq[*Entry[H, T]] {
	return func(yield func(*Entry[H, T]) bool) {
		b.tree.Ascend(func(item btreeItem[H, T]) bool {
			return yield(item.entry)
		})
	}
}
