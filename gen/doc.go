// Package gen produces deterministic synthetic edge streams for exercising
// triangle estimators: workloads with known triangle counts, triangle-free
// controls and degenerate input (self-loops, matchings).
//
// A stream is assembled by Build from one or more Constructors applied in
// order. Every constructor draws fresh vertex IDs, so composing them yields a
// disjoint union whose triangle count is the sum of the parts:
//
//	edges, err := gen.Build(
//		[]gen.Option{gen.WithSeed(42), gen.WithShuffle()},
//		gen.Complete(10), // 120 triangles
//		gen.Wheel(8),     //   7 triangles
//		gen.Loops(5),     //   0 triangles
//	)
//
// The package offers:
//
//   - Options: WithSeed, WithRand, WithOffset, WithShuffle.
//   - Closed-form constructors: Complete, Cycle, Path, Star, Wheel, Disjoint, Loops.
//   - Repeat: duplicate stream edges over existing vertices.
//   - Random constructor: RandomSparse (G(n,p)), requires an RNG for 0<p<1.
//   - Text binding: Kind, ParseKind and ForKind for CLI and config callers.
//
// Guarantees:
//
//   - Fast-fail on meaningless option values via panics in option constructors.
//   - Runtime parameter errors wrap sentinels with method context; branch with errors.Is.
//   - Same options, seed and constructor order ⇒ byte-identical streams.
package gen
