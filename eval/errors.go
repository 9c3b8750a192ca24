// SPDX-License-Identifier: MIT
// Package: eval
//
// errors.go - sentinel errors for the eval package.

package eval

import "errors"

// ErrInvalidConfig indicates a Config field outside its domain.
var ErrInvalidConfig = errors.New("eval: invalid config")

// ErrEmptyStream indicates Run was given no edges.
var ErrEmptyStream = errors.New("eval: empty stream")
