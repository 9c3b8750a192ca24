// SPDX-License-Identifier: MIT
// Package: triest
//
// errors.go - sentinel errors for the triest package.
//
// Error policy:
//   - Only construction can fail; HandleEdge and Estimate never return errors.
//   - Callers branch with errors.Is(err, ErrX); messages carry context via %w.
//   - Internal invariant violations (evicting from an empty sample, asymmetric
//     adjacency) are programmer errors and panic instead of surfacing here.

package triest

import "errors"

// ErrCapacityTooSmall indicates a sample capacity below MinCapacity.
// The bias-correction factors divide by (M-1) and (M-2), so M must be at least 3.
var ErrCapacityTooSmall = errors.New("triest: capacity too small")

// ErrUnknownVariant indicates an estimator variant that New or ParseVariant
// does not recognise.
var ErrUnknownVariant = errors.New("triest: unknown variant")
