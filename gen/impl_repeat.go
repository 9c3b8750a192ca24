// SPDX-License-Identifier: MIT
// Package: gen
//
// impl_repeat.go - implementation of Repeat(e, k).
//
// Contract:
//   - k ≥ 1 (else ErrTooFewVertices).
//   - Appends k verbatim copies of e. No IDs are reserved: e may name vertices
//     of earlier blocks, which is the point (duplicate stream edges).
//   - Endpoints must be non-negative (else ErrConstructFailed).
//
// Complexity: O(k).

package gen

import (
	"fmt"

	"github.com/katalvlaran/triest/triest"
)

const (
	methodRepeat = "Repeat"
	minRepeatK   = 1
)

// Repeat returns a Constructor that emits e k times.
func Repeat(e triest.Edge[int64], k int) Constructor {
	return func(s *Stream, _ genConfig) error {
		if k < minRepeatK {
			return fmt.Errorf("%s: k=%d < min=%d: %w", methodRepeat, k, minRepeatK, ErrTooFewVertices)
		}
		if e.U < 0 || e.V < 0 {
			return fmt.Errorf("%s: negative endpoint in (%d,%d): %w", methodRepeat, e.U, e.V, ErrConstructFailed)
		}
		for i := 0; i < k; i++ {
			s.add(e.U, e.V)
		}
		return nil
	}
}
