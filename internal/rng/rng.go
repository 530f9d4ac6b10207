// Package rng centralizes deterministic random sources for the search.
//
// Goals:
//   - Determinism: same seed ⇒ identical tie-breaking and strategy selection.
//   - No time-based sources hidden anywhere; callers seed explicitly.
//
// Concurrency:
//   - math/rand.Rand is NOT goroutine-safe. Do not share a *rand.Rand across goroutines.
//   - Use Derive to create independent streams.
package rng

import "math/rand"

// DefaultSeed is used when callers pass seed == 0.
const DefaultSeed int64 = 1

// FromSeed returns a deterministic *rand.Rand.
// Policy: seed==0 ⇒ DefaultSeed; otherwise the seed verbatim.
func FromSeed(seed int64) *rand.Rand {
	if seed == 0 {
		seed = DefaultSeed
	}
	return rand.New(rand.NewSource(seed))
}

// DeriveSeed mixes a parent seed and a stream identifier (SplitMix64 finalizer).
func DeriveSeed(parent int64, stream uint64) int64 {
	var x uint64
	x = uint64(parent) ^ (stream + 0x9e3779b97f4a7c15)
	x += 0x9e3779b97f4a7c15
	x = (x ^ (x >> 30)) * 0xbf58476d1ce4e5b9
	x = (x ^ (x >> 27)) * 0x94d049bb133111eb
	x ^= x >> 31
	return int64(x)
}

// Derive creates an independent stream from base. base.Int63() is consumed
// once, so two derivations with the same stream id still differ. A nil base
// uses DefaultSeed as the parent.
func Derive(base *rand.Rand, stream uint64) *rand.Rand {
	parent := DefaultSeed
	if base != nil {
		parent = base.Int63()
	}
	return rand.New(rand.NewSource(DeriveSeed(parent, stream)))
}

// Intn returns a value in [0, n) from r, or from the default stream when r is nil.
func Intn(r *rand.Rand, n int) int {
	if r == nil {
		r = FromSeed(0)
	}
	return r.Intn(n)
}

// Shuffle permutes a in place (Fisher–Yates). A nil r uses the default stream.
func Shuffle[T any](a []T, r *rand.Rand) {
	if len(a) <= 1 {
		return
	}
	if r == nil {
		r = FromSeed(0)
	}
	for i := len(a) - 1; i > 0; i-- {
		j := r.Intn(i + 1)
		a[i], a[j] = a[j], a[i]
	}
}
