// SPDX-License-Identifier: MIT
// Package: gen
//
// impl_random_sparse.go - implementation of RandomSparse(n, p).
//
// Model: G(n,p). Each unordered pair {i,j}, i<j, is emitted independently
// with probability p.
//
// Contract:
//   - n ≥ 1 (else ErrTooFewVertices).
//   - 0 ≤ p ≤ 1 (else ErrInvalidProbability).
//   - cfg.rng is required only when 0 < p < 1 (else ErrNeedRandSource);
//     p == 0 emits nothing and p == 1 degenerates to Complete(n).
//
// Complexity: O(n²) Bernoulli trials.
//
// Determinism: trial order is i asc, j asc; fixed seed ⇒ fixed stream.

package gen

import "fmt"

const (
	methodRandomSparse = "RandomSparse"
	minRandomSparseN   = 1
	probMin            = 0.0
	probMax            = 1.0
)

// RandomSparse returns a Constructor that samples G(n,p).
func RandomSparse(n int, p float64) Constructor {
	return func(s *Stream, cfg genConfig) error {
		if n < minRandomSparseN {
			return fmt.Errorf("%s: n=%d < min=%d: %w", methodRandomSparse, n, minRandomSparseN, ErrTooFewVertices)
		}
		if p < probMin || p > probMax {
			return fmt.Errorf("%s: p=%.6f not in [%.1f,%.1f]: %w",
				methodRandomSparse, p, probMin, probMax, ErrInvalidProbability)
		}
		stochastic := p > probMin && p < probMax
		if stochastic && cfg.rng == nil {
			return fmt.Errorf("%s: %w", methodRandomSparse, ErrNeedRandSource)
		}

		base := s.reserve(n)
		if p == probMin {
			return nil
		}
		for i := 0; i < n; i++ {
			for j := i + 1; j < n; j++ {
				if stochastic && cfg.rng.Float64() >= p {
					continue
				}
				s.add(base+int64(i), base+int64(j))
			}
		}
		return nil
	}
}
