// Package testutil provides testing utilities for apfind.
//
// This package is intended for use in tests and benchmarks only.
// It provides helpers for generating random non-decreasing streams and an
// exhaustive reference solver for the longest progression.
//
// # Random Streams
//
//	rng := testutil.NewRNG(seed)
//	stream := rng.MonotonicStream(64, 5) // steps in [0, 5]
//
// # Ground Truth
//
//	want := testutil.LongestProgression(stream)
package testutil
