// SPDX-License-Identifier: MIT
// Package: triest
//
// edge.go - the stream element: an unordered pair of vertex identifiers.

package triest

// Edge is an undirected edge {U, V} of a stream.
//
// Endpoints are unordered for comparison purposes: {u,v} equals {v,u}.
// U == V denotes a self-loop; loops are legal stream elements that occupy one
// unit of sample capacity but never close a triangle.
type Edge[V comparable] struct {
	U V
	V V
}

// IsLoop reports whether e is a self-loop.
func (e Edge[V]) IsLoop() bool {
	return e.U == e.V
}

// Equal reports whether e and o join the same pair of vertices,
// regardless of endpoint order.
func (e Edge[V]) Equal(o Edge[V]) bool {
	return (e.U == o.U && e.V == o.V) || (e.U == o.V && e.V == o.U)
}

// Reverse returns the same edge with its endpoints swapped.
func (e Edge[V]) Reverse() Edge[V] {
	return Edge[V]{U: e.V, V: e.U}
}
