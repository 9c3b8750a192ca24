// SPDX-License-Identifier: MIT
// Package: gen
//
// api.go - the orchestrator and the constructor contract.
//
// Design contract:
//   - One orchestrator: Build(opts, cons...). Resolves cfg, runs cons in order,
//     then applies the optional shuffle.
//   - Each constructor draws fresh vertex IDs from the running Stream, so
//     composed constructors yield vertex-disjoint components.
//   - Determinism: same options, seed and constructor order ⇒ identical streams.

package gen

import (
	"fmt"
	"strings"

	"github.com/katalvlaran/triest/triest"
)

// Stream is the edge sequence under construction.
type Stream struct {
	edges []triest.Edge[int64]
	next  int64
}

// reserve hands out n consecutive fresh vertex IDs and returns the first.
func (s *Stream) reserve(n int) int64 {
	first := s.next
	s.next += int64(n)
	return first
}

// add appends the edge {u,v}.
func (s *Stream) add(u, v int64) {
	s.edges = append(s.edges, triest.Edge[int64]{U: u, V: v})
}

// Len returns the number of edges emitted so far.
func (s *Stream) Len() int { return len(s.edges) }

// Constructor appends a deterministic block of edges using the resolved config.
// Constructors validate parameters first and leave the stream untouched on error.
type Constructor func(s *Stream, cfg genConfig) error

// Build assembles a stream from constructors applied in order.
// Any constructor error is wrapped with "Build: %w" and returned immediately.
//
// Complexity: Σ cost of constructors, plus O(E) for the optional shuffle.
func Build(opts []Option, cons ...Constructor) ([]triest.Edge[int64], error) {
	cfg := newGenConfig(opts...)
	s := &Stream{next: cfg.offset}

	for i, fn := range cons {
		if fn == nil {
			return nil, fmt.Errorf("Build: nil constructor at index %d: %w", i, ErrConstructFailed)
		}
		if err := fn(s, cfg); err != nil {
			return nil, fmt.Errorf("Build: %w", err)
		}
	}

	if cfg.shuffle {
		if cfg.rng == nil {
			return nil, fmt.Errorf("Build: shuffle: %w", ErrNeedRandSource)
		}
		cfg.rng.Shuffle(len(s.edges), func(i, j int) {
			s.edges[i], s.edges[j] = s.edges[j], s.edges[i]
		})
	}

	return s.edges, nil
}

// Kind names a constructor for text-driven callers (CLI, config files).
type Kind string

// Known kinds.
const (
	KindComplete Kind = "complete"
	KindCycle    Kind = "cycle"
	KindPath     Kind = "path"
	KindStar     Kind = "star"
	KindWheel    Kind = "wheel"
	KindDisjoint Kind = "disjoint"
	KindLoops    Kind = "loops"
	KindRandom   Kind = "random"
)

// Kinds lists every known kind in a stable order.
var Kinds = []Kind{KindComplete, KindCycle, KindPath, KindStar, KindWheel, KindDisjoint, KindLoops, KindRandom}

// ParseKind maps a case-insensitive name to its Kind.
func ParseKind(name string) (Kind, error) {
	k := Kind(strings.ToLower(strings.TrimSpace(name)))
	for _, known := range Kinds {
		if k == known {
			return k, nil
		}
	}
	return "", fmt.Errorf("ParseKind: %q: %w", name, ErrUnknownKind)
}

// ForKind returns the constructor for kind with size n. p is used by
// KindRandom only.
func ForKind(kind Kind, n int, p float64) (Constructor, error) {
	switch kind {
	case KindComplete:
		return Complete(n), nil
	case KindCycle:
		return Cycle(n), nil
	case KindPath:
		return Path(n), nil
	case KindStar:
		return Star(n), nil
	case KindWheel:
		return Wheel(n), nil
	case KindDisjoint:
		return Disjoint(n), nil
	case KindLoops:
		return Loops(n), nil
	case KindRandom:
		return RandomSparse(n, p), nil
	default:
		return nil, fmt.Errorf("ForKind: %q: %w", kind, ErrUnknownKind)
	}
}
