package testutil

import (
	"math/rand"
	"slices"
	"sync"
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

// MonotonicStream returns n non-decreasing values whose consecutive steps are
// drawn uniformly from [0, maxStep].
func (r *RNG) MonotonicStream(n int, maxStep uint64) []uint64 {
	r.mu.Lock()
	defer r.mu.Unlock()

	out := make([]uint64, n)
	var v uint64
	if n > 0 {
		v = uint64(r.rand.Int63n(int64(maxStep) + 1))
	}
	for i := range out {
		if i > 0 {
			v += uint64(r.rand.Int63n(int64(maxStep) + 1))
		}
		out[i] = v
	}
	return out
}

// PlantedStream returns a sorted stream of n random values in [0, span) merged
// with a progression of the given length and step starting at start.
func (r *RNG) PlantedStream(n int, span, start, step uint64, length int) []uint64 {
	r.mu.Lock()
	out := make([]uint64, 0, n+length)
	for i := 0; i < n; i++ {
		out = append(out, uint64(r.rand.Int63n(int64(span))))
	}
	r.mu.Unlock()

	for i := 0; i < length; i++ {
		out = append(out, start+uint64(i)*step)
	}
	slices.Sort(out)
	return out
}
