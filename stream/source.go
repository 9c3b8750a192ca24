// SPDX-License-Identifier: MIT
// Package: stream
//
// source.go - the pull interface consumed by Run, plus in-memory adapters.

package stream

import (
	"errors"
	"fmt"
	"io"

	"github.com/katalvlaran/triest/triest"
)

// Source yields edges one at a time and returns io.EOF at the end.
// *Reader satisfies Source[int64].
type Source[V comparable] interface {
	Next() (triest.Edge[V], error)
}

// SliceSource replays a fixed slice of edges.
type SliceSource[V comparable] struct {
	edges []triest.Edge[V]
	pos   int
}

// NewSliceSource returns a Source over edges. The slice is not copied.
func NewSliceSource[V comparable](edges []triest.Edge[V]) *SliceSource[V] {
	return &SliceSource[V]{edges: edges}
}

// Next implements Source.
func (s *SliceSource[V]) Next() (triest.Edge[V], error) {
	if s.pos >= len(s.edges) {
		return triest.Edge[V]{}, io.EOF
	}
	e := s.edges[s.pos]
	s.pos++
	return e, nil
}

// ReadAll drains src into a slice.
func ReadAll[V comparable](src Source[V]) ([]triest.Edge[V], error) {
	var out []triest.Edge[V]
	for {
		e, err := src.Next()
		if errors.Is(err, io.EOF) {
			return out, nil
		}
		if err != nil {
			return out, fmt.Errorf("ReadAll: %w", err)
		}
		out = append(out, e)
	}
}

// Dedupe wraps src and drops every edge whose unordered pair was already
// seen, so "u v" and "v u" lines of a bidirectional edge list count once.
// It remembers every distinct pair: memory grows with the number of distinct
// edges, not with the estimator's capacity.
func Dedupe[V comparable](src Source[V]) Source[V] {
	return &dedupeSource[V]{src: src, seen: make(map[triest.Edge[V]]struct{})}
}

type dedupeSource[V comparable] struct {
	src  Source[V]
	seen map[triest.Edge[V]]struct{}
}

// Next implements Source.
func (d *dedupeSource[V]) Next() (triest.Edge[V], error) {
	for {
		e, err := d.src.Next()
		if err != nil {
			return e, err
		}
		if _, ok := d.seen[e]; ok {
			continue
		}
		if _, ok := d.seen[e.Reverse()]; ok {
			continue
		}
		d.seen[e] = struct{}{}
		return e, nil
	}
}
