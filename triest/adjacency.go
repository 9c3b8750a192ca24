// SPDX-License-Identifier: MIT
// Package: triest
//
// adjacency.go - the neighbor index derived from the current sample.
//
// Invariants:
//   - v ∈ N(u) ⇔ u ∈ N(v) ⇔ at least one copy of {u,v} is currently sampled.
//   - No vertex is kept with an empty neighbor set.
//
// A stream may repeat an edge, and both copies may sit in the sample at once.
// Each neighbor entry therefore carries a multiplicity, and the entry vanishes
// only when the last sampled copy is unlinked.

package triest

// adjacency maps a vertex to its neighbors and their edge multiplicities:
// nbrs[u][v] = number of sampled copies of {u,v}.
type adjacency[V comparable] struct {
	nbrs map[V]map[V]int
}

func newAdjacency[V comparable]() *adjacency[V] {
	return &adjacency[V]{nbrs: make(map[V]map[V]int)}
}

// link records one sampled copy of {u,v} on both endpoints.
// A self-loop touches N(u) once.
//
// Complexity: O(1) amortized.
func (a *adjacency[V]) link(u, v V) {
	a.add(u, v)
	if u != v {
		a.add(v, u)
	}
}

// unlink drops one sampled copy of {u,v} from both endpoints and deletes any
// vertex whose neighbor set became empty. Unlinking a pair that is not linked
// is an invariant violation.
//
// Complexity: O(1) amortized.
func (a *adjacency[V]) unlink(u, v V) {
	a.remove(u, v)
	if u != v {
		a.remove(v, u)
	}
}

func (a *adjacency[V]) add(u, v V) {
	set, ok := a.nbrs[u]
	if !ok {
		set = make(map[V]int)
		a.nbrs[u] = set
	}
	set[v]++
}

func (a *adjacency[V]) remove(u, v V) {
	set := a.nbrs[u]
	n, ok := set[v]
	if !ok {
		panic("triest: unlink of an edge missing from the adjacency index")
	}
	if n > 1 {
		set[v] = n - 1
		return
	}
	delete(set, v)
	if len(set) == 0 {
		delete(a.nbrs, u)
	}
}

// neighbors returns the live neighbor set of u (nil when u is not indexed).
// The map is owned by the index and must be treated as read-only.
func (a *adjacency[V]) neighbors(u V) map[V]int {
	return a.nbrs[u]
}

// vertexCount returns the number of indexed vertices.
func (a *adjacency[V]) vertexCount() int {
	return len(a.nbrs)
}

// countShared returns the number of triangles the edge {u,v} closes in the
// current index: the sum over every vertex w other than u and v of
// m(u,w)·m(v,w), where m is the sampled multiplicity. On a simple sample this
// is the number of common neighbors. A self-loop returns 0 immediately.
//
// Excluding the endpoints keeps a loop on u from posing as the third vertex of
// {u,v}, and makes the count of a sampled edge the same whether it is taken
// before or after that edge is unlinked. With multiplicities counted, adding
// and later removing a copy of {u,v} moves the multigraph triangle count of the
// sample by the same amount.
//
// Complexity: O(min(deg(u), deg(v))).
func (a *adjacency[V]) countShared(e Edge[V]) int {
	if e.IsLoop() {
		return 0
	}
	small, large := a.nbrs[e.U], a.nbrs[e.V]
	if len(small) == 0 || len(large) == 0 {
		return 0
	}
	if len(small) > len(large) {
		small, large = large, small
	}

	var shared int
	for w, m := range small {
		if w == e.U || w == e.V {
			continue
		}
		shared += m * large[w]
	}
	return shared
}
