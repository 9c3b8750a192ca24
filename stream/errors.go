// SPDX-License-Identifier: MIT
// Package: stream
//
// errors.go - sentinel errors for the stream package.
//
// Error policy:
//   - Sentinels only; context is attached with %w ("Reader: line 7: ...").
//   - io.EOF is returned unwrapped by Next to signal a clean end of stream.

package stream

import "errors"

// ErrMalformedLine indicates an edge-list line that does not start with two
// base-10 integer vertex IDs.
var ErrMalformedLine = errors.New("stream: malformed edge line")

// ErrNilSource indicates Run was called without a source or estimator.
var ErrNilSource = errors.New("stream: nil source or estimator")
