// SPDX-License-Identifier: MIT
// Package: triest
//
// counter.go - the sampling engine shared by every estimator variant.
//
// Per edge, in order: count → admission decision → mutate sample/index → clock.
// Two implicit states, derived from the clock t (1-based index of the edge
// being processed) and the capacity M:
//
//	filling  t ≤ M   every edge is counted and admitted, nothing is evicted.
//	full     t > M   admission with probability M/t, paired with one uniform eviction.
//
// Concurrency: a Counter is single-threaded. Wrap it with NewSynchronized when
// several goroutines must share it.

package triest

import "fmt"

// MinCapacity is the smallest sample the bias-correction factors accept.
const MinCapacity = 3

// Estimator is the contract shared by all estimator variants.
type Estimator[V comparable] interface {
	// HandleEdge consumes the next edge of the stream.
	HandleEdge(e Edge[V])
	// Estimate returns the current estimate of triangles in the stream so far.
	Estimate() int64
}

// Counter estimates the triangle count of an insertion-only edge stream from
// a bounded reservoir sample.
type Counter[V comparable] struct {
	variant Variant
	sample  *reservoir[V]
	fold    Fold
	rng     Rand
	clock   uint64
}

// New returns a Counter of the given variant keeping at most capacity edges.
//
// Errors:
//   - ErrCapacityTooSmall when capacity < MinCapacity.
//   - ErrUnknownVariant for an unrecognised variant (unless WithFold supplies
//     the strategy, in which case variant is kept only as the Variant() tag).
func New[V comparable](variant Variant, capacity int, opts ...Option) (*Counter[V], error) {
	if capacity < MinCapacity {
		return nil, fmt.Errorf("New: capacity=%d < min=%d: %w", capacity, MinCapacity, ErrCapacityTooSmall)
	}
	cfg := newConfig(opts...)
	fold := cfg.fold
	if fold == nil {
		var err error
		if fold, err = variant.newFold(); err != nil {
			return nil, fmt.Errorf("New: %w", err)
		}
	}

	return &Counter[V]{
		variant: variant,
		sample:  newReservoir[V](capacity),
		fold:    fold,
		rng:     cfg.rng,
	}, nil
}

// NewBase returns a Counter running the baseline estimator.
func NewBase[V comparable](capacity int, opts ...Option) (*Counter[V], error) {
	return New[V](Base, capacity, opts...)
}

// NewImproved returns a Counter running the improved estimator.
func NewImproved[V comparable](capacity int, opts ...Option) (*Counter[V], error) {
	return New[V](Improved, capacity, opts...)
}

// HandleEdge processes one stream edge to completion.
//
// Complexity: O(min deg) for each shared-neighbor count it performs
// (one while filling, at most two when full), O(1) for sampling.
func (c *Counter[V]) HandleEdge(e Edge[V]) {
	t := c.clock + 1
	capacity := c.sample.capacity

	switch {
	case t <= uint64(capacity):
		c.fold.Observe(c.sample.adj.countShared(e), t, capacity)
		c.sample.insert(e)

	case c.fold.Decrements():
		if flipCoin(c.rng, capacity, t) {
			i := c.sample.pickRandom(c.rng)
			c.fold.Evict(c.sample.adj.countShared(c.sample.edges[i]))
			c.sample.removeAt(i)
			c.fold.Observe(c.sample.adj.countShared(e), t, capacity)
			c.sample.insert(e)
		}

	default:
		c.fold.Observe(c.sample.adj.countShared(e), t, capacity)
		if flipCoin(c.rng, capacity, t) {
			c.sample.evictRandom(c.rng)
			c.sample.insert(e)
		}
	}

	c.clock = t
}

// Estimate returns the current triangle estimate. It is a pure read and may
// be called between any two HandleEdge calls.
func (c *Counter[V]) Estimate() int64 {
	return c.fold.Estimate(c.clock, c.sample.capacity)
}

// Clock returns the number of edges processed so far.
func (c *Counter[V]) Clock() uint64 { return c.clock }

// Capacity returns the fixed sample capacity M.
func (c *Counter[V]) Capacity() int { return c.sample.capacity }

// SampleSize returns the number of edges currently sampled (≤ Capacity).
func (c *Counter[V]) SampleSize() int { return c.sample.size() }

// Variant returns the variant tag passed to New. When WithFold supplied the
// strategy, the tag is stored as given and says nothing about the fold that
// actually runs; it may even be a value ParseVariant would reject.
func (c *Counter[V]) Variant() Variant { return c.variant }
