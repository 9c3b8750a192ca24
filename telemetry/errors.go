// SPDX-License-Identifier: MIT
// Package: telemetry
//
// errors.go - sentinel errors for the telemetry package.

package telemetry

import "errors"

// ErrNilEstimator indicates Instrument was called without an estimator or registry.
var ErrNilEstimator = errors.New("telemetry: nil estimator or registerer")

// ErrRegister indicates a collector could not be registered (typically a
// duplicate estimator name on the same registry).
var ErrRegister = errors.New("telemetry: metric registration failed")
