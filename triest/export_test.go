// SPDX-License-Identifier: MIT

package triest

// Test bridge (white-box) for the unexported sample, index and bias helpers.
//
// The file is in package triest, so it reaches private state, but it only
// compiles into the test binary and widens nothing in production builds.

import "fmt"

var (
	// ExportedDecay exposes π(t).
	ExportedDecay = decay
	// ExportedWeight exposes the clamped w(t).
	ExportedWeight = weight
	// ExportedRawWeight exposes the unclamped weight.
	ExportedRawWeight = rawWeight
)

// SampleEdges returns a copy of the sampled edges in slot order.
func (c *Counter[V]) SampleEdges() []Edge[V] {
	return c.sample.snapshot()
}

// IndexedVertices returns the number of vertices present in the adjacency index.
func (c *Counter[V]) IndexedVertices() int {
	return c.sample.adj.vertexCount()
}

// HasNeighbor reports whether v ∈ N(u) in the adjacency index.
func (c *Counter[V]) HasNeighbor(u, v V) bool {
	_, ok := c.sample.adj.neighbors(u)[v]
	return ok
}

// CheckIndex rebuilds the index from the sampled edges and compares it with
// the live one: multiplicities, symmetry, and absence of empty entries.
func (c *Counter[V]) CheckIndex() error {
	want := newAdjacency[V]()
	for _, e := range c.sample.edges {
		want.link(e.U, e.V)
	}
	got := c.sample.adj.nbrs

	if len(got) != len(want.nbrs) {
		return fmt.Errorf("index holds %d vertices, sample implies %d", len(got), len(want.nbrs))
	}
	for u, set := range got {
		if len(set) == 0 {
			return fmt.Errorf("vertex %v kept with an empty neighbor set", u)
		}
		for v, n := range set {
			if want.nbrs[u][v] != n {
				return fmt.Errorf("N(%v)[%v]=%d, sample implies %d", u, v, n, want.nbrs[u][v])
			}
			if _, ok := got[v][u]; !ok {
				return fmt.Errorf("asymmetric index: %v ∈ N(%v) but %v ∉ N(%v)", v, u, u, v)
			}
		}
	}
	return nil
}

// Tally exposes the raw integer tally of the baseline strategy.
func (f *BaseFold) Tally() int64 { return f.tally }

// Tally exposes the real-valued tally of the improved strategy.
func (f *ImprovedFold) Tally() float64 { return f.tally }
