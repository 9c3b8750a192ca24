// SPDX-License-Identifier: MIT
// Package: gen
//
// impl_cycle.go - Cycle(n), Path(n) and Wheel(n).
//
// Contract:
//   - Cycle: n ≥ 3; edges {i,i+1} then the closing {n-1,0}. Triangles: 1 iff n == 3.
//   - Path:  n ≥ 2; edges {i,i+1}. Triangle-free.
//   - Wheel: n ≥ 4; a rim Cycle(n-1) followed by spokes from the hub (last ID).
//     Triangles: 4 for W₄ (which is K₄), n-1 otherwise.
//
// Complexity: O(n) for all three.

package gen

import "fmt"

const (
	methodCycle = "Cycle"
	methodPath  = "Path"
	methodWheel = "Wheel"

	minCycleN = 3
	minPathN  = 2
	minWheelN = 4 // rim must be a valid cycle
)

// Cycle returns a Constructor that emits the cycle Cₙ.
func Cycle(n int) Constructor {
	return func(s *Stream, _ genConfig) error {
		if n < minCycleN {
			return fmt.Errorf("%s: n=%d < min=%d: %w", methodCycle, n, minCycleN, ErrTooFewVertices)
		}
		emitCycle(s, s.reserve(n), n)
		return nil
	}
}

// Path returns a Constructor that emits the path Pₙ.
func Path(n int) Constructor {
	return func(s *Stream, _ genConfig) error {
		if n < minPathN {
			return fmt.Errorf("%s: n=%d < min=%d: %w", methodPath, n, minPathN, ErrTooFewVertices)
		}
		base := s.reserve(n)
		for i := 0; i < n-1; i++ {
			s.add(base+int64(i), base+int64(i+1))
		}
		return nil
	}
}

// Wheel returns a Constructor that emits Wₙ = Cₙ₋₁ + hub.
func Wheel(n int) Constructor {
	return func(s *Stream, _ genConfig) error {
		if n < minWheelN {
			return fmt.Errorf("%s: n=%d < min=%d: %w", methodWheel, n, minWheelN, ErrTooFewVertices)
		}
		base := s.reserve(n)
		rim := n - 1
		emitCycle(s, base, rim)
		hub := base + int64(rim)
		for i := 0; i < rim; i++ {
			s.add(hub, base+int64(i))
		}
		return nil
	}
}

// emitCycle writes the ring base..base+n-1 in index order.
func emitCycle(s *Stream, base int64, n int) {
	for i := 0; i < n-1; i++ {
		s.add(base+int64(i), base+int64(i+1))
	}
	s.add(base+int64(n-1), base)
}
