// SPDX-License-Identifier: MIT
// Package: triest
//
// reservoir.go - fixed-capacity edge sample plus its adjacency index.
//
// The sample is an index-addressable slice; eviction picks a uniform slot and
// swap-removes it (last element moves into the hole) for O(1) removal.
// Arrival order inside the slice carries no meaning.

package triest

// reservoir holds at most capacity edges and the index derived from them.
// It is mutated only by the owning Counter.
type reservoir[V comparable] struct {
	capacity int
	edges    []Edge[V]
	adj      *adjacency[V]
}

func newReservoir[V comparable](capacity int) *reservoir[V] {
	return &reservoir[V]{
		capacity: capacity,
		edges:    make([]Edge[V], 0, capacity),
		adj:      newAdjacency[V](),
	}
}

// insert adds e to the sample and links its endpoints.
// Precondition: size() < capacity (the caller evicts first when full).
//
// Complexity: O(1) amortized.
func (r *reservoir[V]) insert(e Edge[V]) {
	if len(r.edges) >= r.capacity {
		panic("triest: insert into a full sample")
	}
	r.edges = append(r.edges, e)
	r.adj.link(e.U, e.V)
}

// pickRandom returns the slot of a uniformly chosen member.
// Precondition: the sample is non-empty.
func (r *reservoir[V]) pickRandom(rng Rand) int {
	if len(r.edges) == 0 {
		panic("triest: eviction from an empty sample")
	}
	return rng.Intn(len(r.edges))
}

// removeAt swap-removes the edge in slot i, unlinks it and returns it.
//
// Complexity: O(1) amortized.
func (r *reservoir[V]) removeAt(i int) Edge[V] {
	last := len(r.edges) - 1
	e := r.edges[i]
	r.edges[i] = r.edges[last]
	r.edges[last] = Edge[V]{}
	r.edges = r.edges[:last]
	r.adj.unlink(e.U, e.V)
	return e
}

// evictRandom removes one member chosen uniformly at random and returns it.
// Precondition: the sample is non-empty.
func (r *reservoir[V]) evictRandom(rng Rand) Edge[V] {
	return r.removeAt(r.pickRandom(rng))
}

// size returns the current member count; size() <= capacity always.
func (r *reservoir[V]) size() int {
	return len(r.edges)
}

// snapshot returns a copy of the sampled edges in slot order.
func (r *reservoir[V]) snapshot() []Edge[V] {
	out := make([]Edge[V], len(r.edges))
	copy(out, r.edges)
	return out
}
