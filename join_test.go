package gendex_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/hupe1980/gendex"
	"github.com/hupe1980/gendex/genindex"
	"github.com/hupe1980/gendex/genmap"
	"github.com/hupe1980/gendex/slotmap"
	"github.com/hupe1980/gendex/sparseset"
)

func joinFixtures(t *testing.T) (*sparseset.Set[string, genindex.U64], *sparseset.Set[int, genindex.U64]) {
	t.Helper()

	left := sparseset.New[string, genindex.U64]()
	left.Insert(genindex.NewU64(1, 1), "a")
	left.Insert(genindex.NewU64(2, 1), "b")
	left.Insert(genindex.NewU64(3, 1), "c")

	right := sparseset.New[int, genindex.U64]()
	right.Insert(genindex.NewU64(2, 1), 20)
	right.Insert(genindex.NewU64(3, 1), 30)
	right.Insert(genindex.NewU64(4, 1), 40)

	return left, right
}

func TestJoin(t *testing.T) {
	left, right := joinFixtures(t)

	var keys []genindex.U64
	var rows []gendex.Joined[string, int]
	for h, row := range gendex.Join(left.All(), right) {
		keys = append(keys, h)
		rows = append(rows, row)
	}

	assert.Equal(t, []genindex.U64{genindex.NewU64(2, 1), genindex.NewU64(3, 1)}, keys)
	assert.Equal(t, []gendex.Joined[string, int]{
		{Left: "b", Right: 20},
		{Left: "c", Right: 30},
	}, rows)
}

func TestJoinEarlyBreak(t *testing.T) {
	left, right := joinFixtures(t)

	count := 0
	for range gendex.Join(left.All(), right) {
		count++
		break
	}

	assert.Equal(t, 1, count)
}

func TestJoinStaleHandleMisses(t *testing.T) {
	left := sparseset.New[string, genindex.U64]()
	left.Insert(genindex.NewU64(2, 1), "b")

	// The probe side holds index 2 under a newer generation, so the
	// driving handle must not match it.
	right := sparseset.New[int, genindex.U64]()
	right.Insert(genindex.NewU64(2, 2), 20)

	for h := range gendex.Join(left.All(), right) {
		t.Fatalf("unexpected match for %v", h)
	}
}

func TestJoinLeft(t *testing.T) {
	left, right := joinFixtures(t)

	var keys []genindex.U64
	var rows []gendex.LeftJoined[string, int]
	for h, row := range gendex.JoinLeft(left.All(), right) {
		keys = append(keys, h)
		rows = append(rows, row)
	}

	assert.Equal(t, []genindex.U64{
		genindex.NewU64(1, 1),
		genindex.NewU64(2, 1),
		genindex.NewU64(3, 1),
	}, keys)
	assert.Equal(t, []gendex.LeftJoined[string, int]{
		{Left: "a", Right: 0, Ok: false},
		{Left: "b", Right: 20, Ok: true},
		{Left: "c", Right: 30, Ok: true},
	}, rows)
}

func TestJoinLeftExcl(t *testing.T) {
	left, right := joinFixtures(t)

	var keys []genindex.U64
	var values []string
	for h, v := range gendex.JoinLeftExcl(left.All(), right) {
		keys = append(keys, h)
		values = append(values, v)
	}

	assert.Equal(t, []genindex.U64{genindex.NewU64(1, 1)}, keys)
	assert.Equal(t, []string{"a"}, values)
}

func TestJoinRefsMutatesProbeSide(t *testing.T) {
	left, right := joinFixtures(t)

	for _, row := range gendex.JoinRefs(left.All(), right) {
		*row.Right++
	}

	got, ok := right.Get(genindex.NewU64(2, 1))
	require.True(t, ok)
	assert.Equal(t, 21, got)

	got, ok = right.Get(genindex.NewU64(3, 1))
	require.True(t, ok)
	assert.Equal(t, 31, got)

	// Index 4 never matched and keeps its value.
	got, ok = right.Get(genindex.NewU64(4, 1))
	require.True(t, ok)
	assert.Equal(t, 40, got)
}

func TestJoinAcrossContainerKinds(t *testing.T) {
	entities := slotmap.New[string, genindex.U64]()
	handles := make([]genindex.U64, 4)
	for i := range handles {
		handles[i] = entities.Push(string(rune('a' + i)))
	}

	weights := genmap.New[int, genindex.U64]()
	weights.Insert(handles[1], 10)
	weights.Insert(handles[3], 30)

	var keys []genindex.U64
	var rows []gendex.Joined[string, int]
	for h, row := range gendex.Join(entities.All(), weights) {
		keys = append(keys, h)
		rows = append(rows, row)
	}

	assert.Equal(t, []genindex.U64{handles[1], handles[3]}, keys)
	assert.Equal(t, []gendex.Joined[string, int]{
		{Left: "b", Right: 10},
		{Left: "d", Right: 30},
	}, rows)
}

func TestIntersect(t *testing.T) {
	a := sparseset.New[int, genindex.U64]()
	b := sparseset.New[int, genindex.U64]()
	c := sparseset.New[int, genindex.U64]()
	for _, idx := range []uint32{1, 2, 3} {
		a.Insert(genindex.NewU64(idx, 1), 0)
	}
	for _, idx := range []uint32{2, 3, 4} {
		b.Insert(genindex.NewU64(idx, 1), 0)
	}
	for _, idx := range []uint32{3, 4, 5} {
		c.Insert(genindex.NewU64(idx, 1), 0)
	}

	assert.Equal(t, []uint64{3}, gendex.Intersect(a, b, c).ToArray())
	assert.Equal(t, []uint64{2, 3}, gendex.Intersect(a, b).ToArray())
	assert.Equal(t, []uint64{1, 2, 3}, gendex.Intersect(a).ToArray())
	assert.True(t, gendex.Intersect().IsEmpty())
}

func TestIntersectEmptySide(t *testing.T) {
	a := sparseset.New[int, genindex.U64]()
	a.Insert(genindex.NewU64(1, 1), 0)
	empty := sparseset.New[int, genindex.U64]()

	assert.True(t, gendex.Intersect(a, empty).IsEmpty())
}
