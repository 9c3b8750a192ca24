// SPDX-License-Identifier: MIT
// Package: triest
//
// fold.go - folding strategies: how a per-edge triangle delta enters the tally.
//
// The Counter engine owns sampling and indexing; a Fold owns the statistic.
//
//	BaseFold       count sampled triangles, decrement on eviction, divide by π(t) on read.
//	ImprovedFold   weight every observation by w(t) = max(1, ...), never decrement.
//	TruncatedFold  unclamped weight, each weighted delta truncated before accumulating.

package triest

import "math"

// Fold folds triangle deltas into a running statistic.
type Fold interface {
	// Observe folds the triangles closed by the edge arriving at time t
	// (1-based) into the tally.
	Observe(closed int, t uint64, capacity int)
	// Evict removes the contribution of an evicted sample edge.
	// Called only when Decrements reports true.
	Evict(closed int)
	// Estimate converts the tally into a triangle estimate after t edges.
	Estimate(t uint64, capacity int) int64
	// Decrements reports the bookkeeping style. True: the engine counts and
	// evicts before observing, and observes admitted edges only. False: the
	// engine observes every arriving edge against the untouched index and
	// never reports evictions.
	Decrements() bool
}

// decay is π(t) = (M/t)·((M−1)/(t−1))·((M−2)/(t−2)), the probability that all
// three edges of a fixed triangle are in a uniform M-sample after t edges.
// Defined for t > M ≥ 3.
func decay(t uint64, capacity int) float64 {
	m, ft := float64(capacity), float64(t)
	return (m / ft) * ((m - 1) / (ft - 1)) * ((m - 2) / (ft - 2))
}

// rawWeight is ((t−1)/M)·((t−2)/(M−1)), the reciprocal of the probability that
// the two partner edges of a triangle closed at time t are both sampled.
func rawWeight(t uint64, capacity int) float64 {
	m, ft := float64(capacity), float64(t)
	return ((ft - 1) / m) * ((ft - 2) / (m - 1))
}

// weight is w(t) = max(1, rawWeight(t, M)); late edges are weighted up, never down.
func weight(t uint64, capacity int) float64 {
	return math.Max(1, rawWeight(t, capacity))
}

// BaseFold is the baseline statistic: the exact triangle count of the sampled
// subgraph, corrected by 1/π(t) when read.
type BaseFold struct {
	tally int64
}

// Observe adds the triangles the admitted edge closes in the sample.
func (f *BaseFold) Observe(closed int, _ uint64, _ int) {
	f.tally += int64(closed)
}

// Evict subtracts the triangles the evicted edge took with it.
func (f *BaseFold) Evict(closed int) {
	f.tally -= int64(closed)
}

// Estimate returns the raw tally while the sample still holds every observed
// edge, and tally/π(t) afterwards.
func (f *BaseFold) Estimate(t uint64, capacity int) int64 {
	if t <= uint64(capacity) {
		return f.tally
	}
	return int64(float64(f.tally) / decay(t, capacity))
}

// Decrements reports true.
func (f *BaseFold) Decrements() bool { return true }

// ImprovedFold pre-weights every observation so that the tally is itself the
// estimate. Accumulation is real-valued; truncation happens only on read.
type ImprovedFold struct {
	tally float64
}

// Observe adds w(t)·closed once the sample is full, and closed before that.
func (f *ImprovedFold) Observe(closed int, t uint64, capacity int) {
	if t <= uint64(capacity) {
		f.tally += float64(closed)
		return
	}
	f.tally += weight(t, capacity) * float64(closed)
}

// Evict is a no-op: the improved statistic never decrements.
func (f *ImprovedFold) Evict(int) {}

// Estimate truncates the tally toward zero.
func (f *ImprovedFold) Estimate(uint64, int) int64 {
	return int64(f.tally)
}

// Decrements reports false.
func (f *ImprovedFold) Decrements() bool { return false }

// TruncatedFold is the alternative reading of the improved estimator: no
// clamp on the weight, and each weighted delta is truncated to an integer
// before it is accumulated. It diverges from ImprovedFold once t exceeds the
// capacity and is kept for comparison runs.
type TruncatedFold struct {
	tally int64
}

// Observe adds int(rawWeight(t)·closed) once the sample is full.
func (f *TruncatedFold) Observe(closed int, t uint64, capacity int) {
	if t <= uint64(capacity) {
		f.tally += int64(closed)
		return
	}
	f.tally += int64(rawWeight(t, capacity) * float64(closed))
}

// Evict is a no-op.
func (f *TruncatedFold) Evict(int) {}

// Estimate returns the tally.
func (f *TruncatedFold) Estimate(uint64, int) int64 {
	return f.tally
}

// Decrements reports false.
func (f *TruncatedFold) Decrements() bool { return false }
