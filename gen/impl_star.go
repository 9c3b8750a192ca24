// SPDX-License-Identifier: MIT
// Package: gen
//
// impl_star.go - triangle-free and degenerate blocks: Star, Disjoint, Loops.
//
// Contract:
//   - Star(n):     n ≥ 2; center is the first ID, leaves follow. n-1 edges.
//   - Disjoint(k): k ≥ 1; k vertex-disjoint edges (a perfect matching on 2k IDs).
//   - Loops(k):    k ≥ 1; k self-loops on fresh vertices.
//
// None of these close a triangle; they exercise sampling without closure.

package gen

import "fmt"

const (
	methodStar     = "Star"
	methodDisjoint = "Disjoint"
	methodLoops    = "Loops"

	minStarN     = 2
	minDisjointK = 1
	minLoopsK    = 1
)

// Star returns a Constructor that emits the star S with n vertices.
func Star(n int) Constructor {
	return func(s *Stream, _ genConfig) error {
		if n < minStarN {
			return fmt.Errorf("%s: n=%d < min=%d: %w", methodStar, n, minStarN, ErrTooFewVertices)
		}
		center := s.reserve(n)
		for i := 1; i < n; i++ {
			s.add(center, center+int64(i))
		}
		return nil
	}
}

// Disjoint returns a Constructor that emits k pairwise disjoint edges.
func Disjoint(k int) Constructor {
	return func(s *Stream, _ genConfig) error {
		if k < minDisjointK {
			return fmt.Errorf("%s: k=%d < min=%d: %w", methodDisjoint, k, minDisjointK, ErrTooFewVertices)
		}
		base := s.reserve(2 * k)
		for i := 0; i < k; i++ {
			s.add(base+int64(2*i), base+int64(2*i+1))
		}
		return nil
	}
}

// Loops returns a Constructor that emits k self-loops.
func Loops(k int) Constructor {
	return func(s *Stream, _ genConfig) error {
		if k < minLoopsK {
			return fmt.Errorf("%s: k=%d < min=%d: %w", methodLoops, k, minLoopsK, ErrTooFewVertices)
		}
		base := s.reserve(k)
		for i := 0; i < k; i++ {
			v := base + int64(i)
			s.add(v, v)
		}
		return nil
	}
}
