// SPDX-License-Identifier: MIT
// Package: gen
//
// errors.go - sentinel errors for the gen package.
//
// Error policy:
//   - Only sentinel variables are exposed; callers branch with errors.Is.
//   - Constructors attach context with %w: "Cycle: n=2 < min=3: gen: parameter too small".
//   - Constructors never panic at runtime; option constructors (WithX) panic on
//     meaningless values.

package gen

import "errors"

// ErrTooFewVertices indicates a size parameter below the constructor's minimum.
var ErrTooFewVertices = errors.New("gen: parameter too small")

// ErrInvalidProbability indicates a probability outside [0,1].
var ErrInvalidProbability = errors.New("gen: probability out of range")

// ErrNeedRandSource indicates a stochastic step (RandomSparse with 0<p<1, or
// WithShuffle) ran without a configured RNG (WithSeed / WithRand).
var ErrNeedRandSource = errors.New("gen: rng is required")

// ErrConstructFailed indicates the stream could not be assembled, e.g. a nil
// constructor was passed to Build.
var ErrConstructFailed = errors.New("gen: construction failed")

// ErrUnknownKind indicates a generator name that ParseKind does not know.
var ErrUnknownKind = errors.New("gen: unknown kind")
