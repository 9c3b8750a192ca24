// SPDX-License-Identifier: MIT
// Package: eval
//
// reference.go - exact triangle count of the observed stream, the yardstick
// estimates are judged against.
//
// Contract:
//   - Multigraph semantics, matching the estimators: a triangle {u,v,w}
//     counts m(u,v)·m(v,w)·m(u,w) times, where m is the number of stream
//     copies of the pair in either orientation. On a simple stream this is
//     the ordinary triangle count.
//   - Self-loops are dropped.
//   - Vertices of any comparable type are interned to dense int64 node IDs.
//
// Complexity: O(V + E) to build, O(Σ deg(u)²) to count.

package eval

import (
	"gonum.org/v1/gonum/graph"
	"gonum.org/v1/gonum/graph/simple"

	"github.com/katalvlaran/triest/triest"
)

// pairKey is an unordered node pair with lo < hi.
type pairKey struct{ lo, hi int64 }

func keyOf(u, v int64) pairKey {
	if u > v {
		u, v = v, u
	}
	return pairKey{lo: u, hi: v}
}

// Reference returns the exact number of (multigraph) triangles in edges.
func Reference[V comparable](edges []triest.Edge[V]) int64 {
	g, mult := buildGraph(edges)
	return countTriangles(g, mult)
}

// buildGraph returns the simple graph underlying edges together with the
// multiplicity of every pair.
func buildGraph[V comparable](edges []triest.Edge[V]) (*simple.UndirectedGraph, map[pairKey]int64) {
	g := simple.NewUndirectedGraph()
	mult := make(map[pairKey]int64)
	ids := make(map[V]int64)
	intern := func(v V) int64 {
		if id, ok := ids[v]; ok {
			return id
		}
		id := int64(len(ids))
		ids[v] = id
		return id
	}
	for _, e := range edges {
		if e.IsLoop() {
			continue // simple.UndirectedGraph panics on self edges
		}
		u, v := intern(e.U), intern(e.V)
		mult[keyOf(u, v)]++
		g.SetEdge(simple.Edge{F: simple.Node(u), T: simple.Node(v)})
	}
	return g, mult
}

// countTriangles visits each triangle once via its smallest node ID.
func countTriangles(g *simple.UndirectedGraph, mult map[pairKey]int64) int64 {
	var count int64
	nodes := g.Nodes()
	for nodes.Next() {
		u := nodes.Node().ID()
		var higher []int64
		for _, n := range graph.NodesOf(g.From(u)) {
			if n.ID() > u {
				higher = append(higher, n.ID())
			}
		}
		for i := 0; i < len(higher); i++ {
			for j := i + 1; j < len(higher); j++ {
				v, w := higher[i], higher[j]
				if g.HasEdgeBetween(v, w) {
					count += mult[keyOf(u, v)] * mult[keyOf(u, w)] * mult[keyOf(v, w)]
				}
			}
		}
	}
	return count
}
