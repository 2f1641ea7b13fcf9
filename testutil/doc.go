// Package testutil provides testing utilities for gendex.
//
// This package is intended for use in tests and benchmarks only.
// It provides a deterministic, thread-safe random source plus helpers
// for generating handle and payload fixtures for the containers.
//
// # Deterministic Randomness
//
//	rng := testutil.NewRNG(4711)
//	i := rng.Intn(100)
//	rng.Shuffle(len(xs), func(a, b int) { xs[a], xs[b] = xs[b], xs[a] })
//
// # Container Fixtures
//
//	handles := rng.U64Handles(1000) // distinct indices, shuffled order
//	words := rng.Words(1000)        // payload strings
package testutil
