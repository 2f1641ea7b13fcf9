package testutil

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestRNGDeterminism(t *testing.T) {
	a := NewRNG(4711)
	b := NewRNG(4711)

	for range 16 {
		assert.Equal(t, a.Uint64(), b.Uint64())
	}
}

func TestRNGReset(t *testing.T) {
	rng := NewRNG(99)

	first := rng.Uint64()
	rng.Uint64()
	rng.Reset()

	assert.Equal(t, first, rng.Uint64())
	assert.Equal(t, int64(99), rng.Seed())
}

func TestU64Handles(t *testing.T) {
	rng := NewRNG(4711)

	handles := rng.U64Handles(64)
	assert.Len(t, handles, 64)

	seen := make(map[uint64]bool, len(handles))
	for _, h := range handles {
		assert.False(t, seen[h.Index()], "duplicate index %d", h.Index())
		seen[h.Index()] = true
		assert.EqualValues(t, 1, h.Generation())
	}
}

func TestWords(t *testing.T) {
	rng := NewRNG(1)

	words := rng.Words(16)
	assert.Len(t, words, 16)
	for _, w := range words {
		assert.NotEmpty(t, w)
	}

	rng.Reset()
	assert.Equal(t, words[0], rng.Word())
}
