// SPDX-License-Identifier: MIT
// Package: config
//
// errors.go - sentinel errors for the config package.

package config

import "errors"

// ErrInvalid indicates a configuration value outside its domain.
var ErrInvalid = errors.New("config: invalid value")
