// Package triest is the root of a small toolkit for estimating the number of
// triangles in a graph that arrives as a stream of edges, using memory bounded
// by a fixed number of sampled edges.
//
// What is inside:
//
//   - triest/    the estimators: reservoir sample, adjacency index and the
//     Base and Improved folding strategies behind one Counter type
//   - gen/       deterministic synthetic streams with known triangle counts
//   - stream/    edge-list reader/writer and the Run driver loop
//   - eval/      repeated seeded trials against an exact reference count
//   - telemetry/ Prometheus instrumentation and HTTP handlers
//   - config/    viper settings and the zerolog logger
//   - cmd/triest the command-line front end (estimate, generate, eval)
//
// Quick example:
//
//	c, _ := triest.NewImproved[int64](100_000, triest.WithSeed(7))
//	for _, e := range edges {
//		c.HandleEdge(e)
//	}
//	fmt.Println(c.Estimate())
//
//	go get github.com/katalvlaran/triest
package triest
