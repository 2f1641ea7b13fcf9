package testutil

import (
	"fmt"
	"math/rand"
	"sync"

	"github.com/hupe1980/gendex/genindex"
)

// RNG struct encapsulates the random number generator and seed.
// It is thread-safe.
type RNG struct {
	rand *rand.Rand
	seed int64
	mu   sync.Mutex
}

// NewRNG creates a new RNG instance with the specified seed.
func NewRNG(seed int64) *RNG {
	return &RNG{
		rand: rand.New(rand.NewSource(seed)),
		seed: seed,
	}
}

// Reset resets the RNG to its initial seed.
func (r *RNG) Reset() {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.rand.Seed(r.seed)
}

// Seed returns the initial seed.
func (r *RNG) Seed() int64 {
	return r.seed
}

// Intn returns a non-negative pseudo-random number in [0,n).
func (r *RNG) Intn(n int) int {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.rand.Intn(n)
}

// Uint64 returns a pseudo-random uint64.
func (r *RNG) Uint64() uint64 {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.rand.Uint64()
}

// Float64 returns, as a float64, a pseudo-random number in [0.0,1.0).
func (r *RNG) Float64() float64 {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.rand.Float64()
}

// Perm returns a pseudo-random permutation of the integers [0,n).
func (r *RNG) Perm(n int) []int {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.rand.Perm(n)
}

// Shuffle pseudo-randomizes the order of n elements using swap.
func (r *RNG) Shuffle(n int, swap func(i, j int)) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.rand.Shuffle(n, swap)
}

// U64Handles returns n handles with distinct indices in [0,n) and
// generation 1, in shuffled order. Distinct indices make the handles
// directly usable as sparse set or generational map keys.
func (r *RNG) U64Handles(n int) []genindex.U64 {
	r.mu.Lock()
	defer r.mu.Unlock()

	handles := make([]genindex.U64, n)
	for i, idx := range r.rand.Perm(n) {
		handles[i] = genindex.NewU64(uint32(idx), 1)
	}

	return handles
}

var stems = []string{
	"alpha", "brook", "cedar", "delta", "ember",
	"frost", "grove", "haven", "inlet", "juniper",
}

// Word returns a short pseudo-random payload string.
func (r *RNG) Word() string {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.word()
}

// Words returns n pseudo-random payload strings.
func (r *RNG) Words(n int) []string {
	r.mu.Lock()
	defer r.mu.Unlock()

	words := make([]string, n)
	for i := range words {
		words[i] = r.word()
	}

	return words
}

// word requires r.mu to be held.
func (r *RNG) word() string {
	return fmt.Sprintf("%s-%04d", stems[r.rand.Intn(len(stems))], r.rand.Intn(10000))
}
