// SPDX-License-Identifier: MIT
// Package: config
//
// logger.go - zerolog construction from configuration.

package config

import (
	"io"

	"github.com/rs/zerolog"
)

// Logger creates a zerolog logger writing to w. The level comes from
// logging.level (unknown values fall back to info); logging.console selects
// the human-readable console writer over JSON lines.
func (c *Config) Logger(w io.Writer) zerolog.Logger {
	level, err := zerolog.ParseLevel(c.LogLevel())
	if err != nil {
		level = zerolog.InfoLevel
	}
	out := w
	if c.LogConsole() {
		out = zerolog.ConsoleWriter{Out: w, TimeFormat: "15:04:05"}
	}
	return zerolog.New(out).Level(level).With().Timestamp().Str("service", "triest").Logger()
}
