// SPDX-License-Identifier: MIT
// Package: eval
//
// config.go - trial configuration and its defaults.

package eval

import (
	"fmt"
	"runtime"

	"github.com/rs/zerolog"

	"github.com/katalvlaran/triest/triest"
)

// Config controls a repeated-trial evaluation.
type Config struct {
	// Variant selects the estimator under test.
	Variant triest.Variant
	// Capacity is the reservoir size M of every trial.
	Capacity int
	// Trials is the number of independent estimators run over the stream.
	Trials int
	// Workers bounds concurrently running trials. 0 means runtime.NumCPU().
	Workers int
	// Seed is the parent seed; trial i uses triest.DeriveSeed(Seed, i).
	Seed int64
	// Logger receives per-trial debug and summary info lines. nil is silent.
	Logger *zerolog.Logger
}

// DefaultConfig returns the baseline evaluation setup.
func DefaultConfig() Config {
	return Config{
		Variant:  triest.Improved,
		Capacity: 10_000,
		Trials:   50,
		Workers:  runtime.NumCPU(),
		Seed:     triest.DefaultSeed,
	}
}

// Validate checks domain constraints.
func (c Config) Validate() error {
	if c.Capacity < triest.MinCapacity {
		return fmt.Errorf("Validate: capacity=%d < min=%d: %w", c.Capacity, triest.MinCapacity, ErrInvalidConfig)
	}
	if c.Trials < 1 {
		return fmt.Errorf("Validate: trials=%d < 1: %w", c.Trials, ErrInvalidConfig)
	}
	if c.Workers < 0 {
		return fmt.Errorf("Validate: workers=%d < 0: %w", c.Workers, ErrInvalidConfig)
	}
	switch c.Variant {
	case triest.Base, triest.Improved, triest.ImprovedTruncated:
	default:
		return fmt.Errorf("Validate: %v: %w", c.Variant, ErrInvalidConfig)
	}
	return nil
}

func (c Config) workers() int {
	if c.Workers == 0 {
		return runtime.NumCPU()
	}
	return c.Workers
}

func (c Config) logger() zerolog.Logger {
	if c.Logger == nil {
		return zerolog.Nop()
	}
	return *c.Logger
}
