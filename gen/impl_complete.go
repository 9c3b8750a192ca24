// SPDX-License-Identifier: MIT
// Package: gen
//
// impl_complete.go - implementation of Complete(n).
//
// Contract:
//   - n ≥ 1 (else ErrTooFewVertices).
//   - Emits every pair {i,j}, i<j, in lexicographic order: n(n-1)/2 edges.
//   - Triangles: C(n,3).
//
// Complexity: O(n²) edges.

package gen

import "fmt"

const (
	methodComplete = "Complete"
	minCompleteN   = 1
)

// Complete returns a Constructor that emits the complete graph Kₙ.
func Complete(n int) Constructor {
	return func(s *Stream, _ genConfig) error {
		if n < minCompleteN {
			return fmt.Errorf("%s: n=%d < min=%d: %w", methodComplete, n, minCompleteN, ErrTooFewVertices)
		}
		base := s.reserve(n)
		for i := 0; i < n; i++ {
			for j := i + 1; j < n; j++ {
				s.add(base+int64(i), base+int64(j))
			}
		}
		return nil
	}
}
