// SPDX-License-Identifier: MIT
// Package: gen
//
// options.go - functional options and the resolved generator configuration.
//
// Deterministic defaults:
//   - rng     = nil (pure unless seeded; RandomSparse(0<p<1) and WithShuffle need one)
//   - offset  = 0   (first vertex ID)
//   - shuffle = false

package gen

import "math/rand"

// Option customizes stream generation by mutating genConfig before Build runs.
type Option func(*genConfig)

// genConfig aggregates all knobs used by constructors.
// It is passed by value to constructors.
type genConfig struct {
	rng     *rand.Rand
	offset  int64
	shuffle bool
}

// newGenConfig applies options in order; last wins.
func newGenConfig(opts ...Option) genConfig {
	var cfg genConfig
	for _, opt := range opts {
		opt(&cfg)
	}
	return cfg
}

// WithSeed creates a new *rand.Rand with the given seed.
func WithSeed(seed int64) Option {
	return func(c *genConfig) {
		c.rng = rand.New(rand.NewSource(seed))
	}
}

// WithRand provides an explicit RNG. Panics on nil.
func WithRand(r *rand.Rand) Option {
	if r == nil {
		panic("gen: WithRand(nil)")
	}
	return func(c *genConfig) {
		c.rng = r
	}
}

// WithOffset sets the first vertex ID handed out to constructors.
// Panics on negative offsets.
func WithOffset(first int64) Option {
	if first < 0 {
		panic("gen: WithOffset(first<0)")
	}
	return func(c *genConfig) {
		c.offset = first
	}
}

// WithShuffle permutes the assembled stream (Fisher–Yates with the configured
// RNG) so that arrival order no longer follows construction order.
func WithShuffle() Option {
	return func(c *genConfig) {
		c.shuffle = true
	}
}
