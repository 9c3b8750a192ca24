// SPDX-License-Identifier: MIT
// Package: stream
//
// options.go - functional options for Run.
//
// Defaults:
//   - reportEvery = 0 (no periodic reports)
//   - reporter    = nil
//   - logger      = zerolog.Nop()

package stream

import "github.com/rs/zerolog"

// Option customizes Run.
type Option func(*runConfig)

type runConfig struct {
	reportEvery uint64
	reporter    func(Report)
	logger      zerolog.Logger
}

func newRunConfig(opts ...Option) runConfig {
	cfg := runConfig{logger: zerolog.Nop()}
	for _, opt := range opts {
		opt(&cfg)
	}
	return cfg
}

// WithReportEvery emits a Report after every n edges. n == 0 disables.
func WithReportEvery(n uint64) Option {
	return func(c *runConfig) {
		c.reportEvery = n
	}
}

// WithReporter installs the callback receiving periodic Reports. Panics on nil.
func WithReporter(fn func(Report)) Option {
	if fn == nil {
		panic("stream: WithReporter(nil)")
	}
	return func(c *runConfig) {
		c.reporter = fn
	}
}

// WithLogger sets the progress logger.
func WithLogger(l zerolog.Logger) Option {
	return func(c *runConfig) {
		c.logger = l
	}
}
