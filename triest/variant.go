// SPDX-License-Identifier: MIT
// Package: triest

package triest

import (
	"fmt"
	"strings"
)

// Variant selects the folding strategy of a Counter.
type Variant int

const (
	// Base counts sampled triangles, decrements on eviction and corrects by 1/π(t).
	Base Variant = iota
	// Improved weights every observation by w(t) and never decrements.
	Improved
	// ImprovedTruncated is Improved with an unclamped weight and per-step
	// integer truncation.
	ImprovedTruncated
)

var variantNames = [...]string{
	Base:              "base",
	Improved:          "improved",
	ImprovedTruncated: "improved-truncated",
}

// String returns the canonical lower-case name of v.
func (v Variant) String() string {
	if v < 0 || int(v) >= len(variantNames) {
		return fmt.Sprintf("Variant(%d)", int(v))
	}
	return variantNames[v]
}

// ParseVariant maps a case-insensitive name ("base", "improved",
// "improved-truncated") to its Variant.
func ParseVariant(name string) (Variant, error) {
	key := strings.ToLower(strings.TrimSpace(name))
	for i, n := range variantNames {
		if n == key {
			return Variant(i), nil
		}
	}
	return 0, fmt.Errorf("ParseVariant: %q: %w", name, ErrUnknownVariant)
}

// newFold returns a fresh strategy for v.
func (v Variant) newFold() (Fold, error) {
	switch v {
	case Base:
		return &BaseFold{}, nil
	case Improved:
		return &ImprovedFold{}, nil
	case ImprovedTruncated:
		return &TruncatedFold{}, nil
	default:
		return nil, fmt.Errorf("newFold: %s: %w", v, ErrUnknownVariant)
	}
}
