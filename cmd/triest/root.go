// SPDX-License-Identifier: MIT
// Package: main
//
// root.go - the root command and state shared by subcommands.

package main

import (
	"fmt"
	"io"
	"os"

	"github.com/rs/zerolog"
	"github.com/spf13/cobra"

	"github.com/katalvlaran/triest/config"
	"github.com/katalvlaran/triest/stream"
	"github.com/katalvlaran/triest/triest"
)

// app carries what PersistentPreRunE resolved for the running subcommand.
type app struct {
	stdin  io.Reader
	stdout io.Writer
	stderr io.Writer

	configPath string
	cfg        *config.Config
	log        zerolog.Logger
}

func newRootCmd(stdin io.Reader, stdout, stderr io.Writer) *cobra.Command {
	a := &app{stdin: stdin, stdout: stdout, stderr: stderr}

	root := &cobra.Command{
		Use:   "triest",
		Short: "Streaming triangle estimation with a fixed-size edge sample",
		Long: `triest estimates the number of triangles in an edge stream while
keeping at most M edges in memory (reservoir sampling).

Configuration is layered: flags, TRIEST_* environment variables,
the --config file, then built-in defaults.`,
		PersistentPreRunE: func(cmd *cobra.Command, _ []string) error {
			return a.setup(cmd)
		},
	}
	root.SilenceUsage = true
	root.SetIn(stdin)
	root.SetOut(stdout)
	root.SetErr(stderr)

	pf := root.PersistentFlags()
	pf.StringVar(&a.configPath, "config", "", "config file (yaml, json or toml)")
	pf.String("log-level", "info", "log level: trace, debug, info, warn, error")
	pf.Bool("log-console", true, "human-readable logs instead of JSON lines")

	root.AddCommand(
		newEstimateCmd(a),
		newGenerateCmd(a),
		newEvalCmd(a),
	)
	return root
}

func (a *app) setup(cmd *cobra.Command) error {
	a.cfg = config.New()
	if a.configPath != "" {
		if err := a.cfg.LoadFromFile(a.configPath); err != nil {
			return err
		}
	}
	if err := a.cfg.BindFlags(cmd.Flags()); err != nil {
		return err
	}
	if err := a.cfg.Validate(); err != nil {
		return err
	}
	a.log = a.cfg.Logger(a.stderr)
	return nil
}

// openInput resolves the optional FILE argument; "-" or none means stdin.
// With stream.dedupe set, repeated and reversed pairs are dropped.
func (a *app) openInput(args []string) (stream.Source[int64], func() error, error) {
	var (
		src     stream.Source[int64]
		closeFn = func() error { return nil }
	)
	if len(args) == 0 || args[0] == "-" {
		src = stream.NewReader(a.stdin)
	} else {
		f, err := os.Open(args[0])
		if err != nil {
			return nil, nil, fmt.Errorf("open input: %w", err)
		}
		src, closeFn = stream.NewReader(f), f.Close
	}
	if a.cfg.Dedupe() {
		src = stream.Dedupe[int64](src)
	}
	return src, closeFn, nil
}

// estimatorFlags registers the flags shared by estimate and eval.
func estimatorFlags(cmd *cobra.Command) {
	f := cmd.Flags()
	f.String("variant", triest.Improved.String(), "estimator variant: base, improved, improved-truncated")
	f.Int("capacity", 10_000, "reservoir capacity M (edges kept in memory)")
	f.Int64("seed", 0, "random seed (default: time-based)")
	f.Bool("dedupe", false, "drop repeated and reversed edges (memory grows with distinct edges)")
}
