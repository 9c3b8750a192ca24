// Package triest estimates the number of triangles in an undirected graph
// that arrives as a one-pass, insertion-only stream of edges, keeping only a
// bounded uniform sample of M edges in memory.
//
// Two estimators share one sampling engine (Counter) and differ only in the
// folding strategy that turns per-edge triangle deltas into a statistic:
//
//	Base       tally of triangles inside the sample; decremented when an edge
//	           is evicted; divided by π(t) = M(M−1)(M−2) / (t(t−1)(t−2)) on read.
//	Improved   every arriving edge adds w(t)·closed, w(t) = max(1, (t−1)(t−2)/(M(M−1)));
//	           no decrements; the tally is read directly.
//
// A third strategy, ImprovedTruncated, keeps the unclamped, per-step
// truncating reading of the improved estimator for comparison.
//
// Sampling (random pairing): the first M edges are admitted unconditionally;
// edge t > M is admitted with probability M/t and always replaces one member
// chosen uniformly. After t edges every observed edge is in the sample with
// probability M/t.
//
// While t ≤ M the sample is the whole observed graph, and both estimators
// return its exact triangle count.
//
// Determinism: all randomness comes from the source given with WithSeed or
// WithRand (default: DefaultSeed). Equal seeds and equal edge sequences give
// identical samples and estimates.
//
// Concurrency: Counter is not safe for concurrent use; callers serialise
// access or wrap it with NewSynchronized.
//
// Quick example:
//
//	c, err := triest.NewImproved[int64](10_000, triest.WithSeed(42))
//	if err != nil { ... }
//	for e := range edges {
//		c.HandleEdge(e)
//	}
//	fmt.Println(c.Estimate())
package triest
