// SPDX-License-Identifier: MIT
// Package: triest
//
// options.go - functional options for estimator construction.
//
// Contract:
//   - Options are functional (type Option func(*config)).
//   - Option constructors panic on meaningless inputs (nil sources/strategies);
//     the estimator itself never panics on valid input.
//   - Determinism is explicit: WithSeed or WithRand; the default is the
//     fixed DefaultSeed, never the clock.

package triest

// Option customizes a Counter before its first edge.
type Option func(*config)

// config aggregates construction knobs. Later options override earlier ones.
type config struct {
	rng  Rand
	fold Fold
}

func newConfig(opts ...Option) config {
	var cfg config
	for _, opt := range opts {
		opt(&cfg)
	}
	if cfg.rng == nil {
		cfg.rng = rngFromSeed(0)
	}
	return cfg
}

// WithSeed seeds a fresh *rand.Rand for this estimator.
// seed==0 selects DefaultSeed.
func WithSeed(seed int64) Option {
	return func(c *config) {
		c.rng = rngFromSeed(seed)
	}
}

// WithRand injects an explicit random source. Panics on nil.
// The source must not be shared with estimators running on other goroutines.
func WithRand(r Rand) Option {
	if r == nil {
		panic("triest: WithRand(nil)")
	}
	return func(c *config) {
		c.rng = r
	}
}

// WithFold replaces the folding strategy chosen by the variant. Panics on nil.
// The Fold must be fresh: its tally is owned by the new estimator.
func WithFold(f Fold) Option {
	if f == nil {
		panic("triest: WithFold(nil)")
	}
	return func(c *config) {
		c.fold = f
	}
}
