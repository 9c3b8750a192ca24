// SPDX-License-Identifier: MIT
// Package: triest

package triest

import "sync"

// Synchronized serialises every call to an underlying Estimator behind one
// mutex, e.g. when a metrics scraper reads Estimate while a driver feeds edges.
type Synchronized[V comparable] struct {
	mu  sync.Mutex
	est Estimator[V]
}

// NewSynchronized wraps est. Panics on nil.
func NewSynchronized[V comparable](est Estimator[V]) *Synchronized[V] {
	if est == nil {
		panic("triest: NewSynchronized(nil)")
	}
	return &Synchronized[V]{est: est}
}

// HandleEdge forwards e under the lock.
func (s *Synchronized[V]) HandleEdge(e Edge[V]) {
	s.mu.Lock()
	s.est.HandleEdge(e)
	s.mu.Unlock()
}

// Estimate reads the estimate under the lock.
func (s *Synchronized[V]) Estimate() int64 {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.est.Estimate()
}

// Do runs fn with exclusive access to the wrapped estimator, for reads that
// must be consistent with each other (e.g. clock and estimate together).
func (s *Synchronized[V]) Do(fn func(Estimator[V])) {
	s.mu.Lock()
	defer s.mu.Unlock()
	fn(s.est)
}
