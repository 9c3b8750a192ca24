// Package eval measures estimator accuracy by running many independently
// seeded trials over one edge stream and comparing their spread with the exact
// triangle count.
//
// Trials fan out on an errgroup bounded by Config.Workers. Statistics come
// from gonum/stat and the exact count from a gonum simple.UndirectedGraph
// built over the same stream.
package eval
