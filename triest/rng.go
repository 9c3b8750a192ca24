// SPDX-License-Identifier: MIT
// Package: triest
//
// rng.go - the random source behind admission coins and eviction picks.
//
// Goals:
//   - Determinism: same seed and same edge sequence ⇒ identical sample trajectory.
//   - Encapsulation: one source per estimator, injected at construction; no
//     ambient global generator and no time-based seeding inside the package.
//
// Concurrency:
//   - math/rand.Rand is NOT goroutine-safe. Never share one Rand between
//     estimators that run on different goroutines; use DeriveSeed instead.

package triest

import "math/rand"

// Rand is the randomness an estimator consumes. *math/rand.Rand satisfies it.
type Rand interface {
	// Float64 returns a pseudo-random number in [0.0, 1.0).
	Float64() float64
	// Intn returns a pseudo-random number in [0, n). It panics if n <= 0.
	Intn(n int) int
}

// DefaultSeed is the seed used when callers pass seed==0.
// The value is arbitrary but stable to keep reproducible defaults.
const DefaultSeed int64 = 1

// rngFromSeed returns a deterministic *rand.Rand.
// Policy: seed==0 ⇒ use DefaultSeed; otherwise use the provided seed verbatim.
//
// Complexity: O(1).
func rngFromSeed(seed int64) *rand.Rand {
	if seed == 0 {
		seed = DefaultSeed
	}
	return rand.New(rand.NewSource(seed))
}

// DeriveSeed mixes a parent seed and a stream identifier into a new 64-bit seed,
// so that independent estimators (e.g. repeated evaluation trials) draw from
// decorrelated streams while staying reproducible from one parent seed.
//
// The constants are the canonical SplitMix64 increment and finalizer multipliers.
//
// Complexity: O(1).
func DeriveSeed(parent int64, stream uint64) int64 {
	var x uint64
	x = uint64(parent) ^ (stream + 0x9e3779b97f4a7c15)
	x += 0x9e3779b97f4a7c15
	x = (x ^ (x >> 30)) * 0xbf58476d1ce4e5b9
	x = (x ^ (x >> 27)) * 0x94d049bb133111eb
	x ^= x >> 31
	return int64(x)
}

// flipCoin runs one Bernoulli trial that succeeds with probability capacity/t.
// Callers only flip once t > capacity, so the probability lies in (0,1).
func flipCoin(r Rand, capacity int, t uint64) bool {
	return r.Float64() < float64(capacity)/float64(t)
}
