// SPDX-License-Identifier: MIT
// Package: main
//
// cmd_generate.go - `triest generate KIND N`.

package main

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/spf13/cobra"

	"github.com/katalvlaran/triest/config"
	"github.com/katalvlaran/triest/gen"
	"github.com/katalvlaran/triest/stream"
)

func newGenerateCmd(a *app) *cobra.Command {
	var (
		p       float64
		shuffle bool
		offset  int64
	)
	kinds := make([]string, len(gen.Kinds))
	for i, k := range gen.Kinds {
		kinds[i] = string(k)
	}

	cmd := &cobra.Command{
		Use:   "generate KIND N",
		Short: "Write a synthetic edge stream with a known triangle count",
		Long: fmt.Sprintf(`Write a generated stream as "u v" lines to stdout.

KIND is one of: %s.
N is the vertex count (edge count for disjoint, loop count for loops).
random samples G(N,p) and needs --p.

Examples:
  triest generate complete 50 > k50.txt
  triest generate random 10000 --p 0.001 --seed 3 --shuffle`, strings.Join(kinds, ", ")),
		Args: cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			if offset < 0 {
				return fmt.Errorf("generate: --offset=%d < 0: %w", offset, config.ErrInvalid)
			}
			kind, err := gen.ParseKind(args[0])
			if err != nil {
				return err
			}
			n, err := strconv.Atoi(args[1])
			if err != nil {
				return fmt.Errorf("generate: N=%q: %w", args[1], err)
			}
			ctor, err := gen.ForKind(kind, n, p)
			if err != nil {
				return err
			}
			opts := []gen.Option{gen.WithSeed(a.cfg.Seed()), gen.WithOffset(offset)}
			if shuffle {
				opts = append(opts, gen.WithShuffle())
			}
			edges, err := gen.Build(opts, ctor)
			if err != nil {
				return err
			}
			a.log.Debug().Str("kind", string(kind)).Int("n", n).Int("edges", len(edges)).Msg("generated")
			return stream.WriteEdges(a.stdout, edges)
		},
	}
	f := cmd.Flags()
	f.Float64Var(&p, "p", 0.1, "edge probability for random")
	f.BoolVar(&shuffle, "shuffle", false, "shuffle the arrival order")
	f.Int64Var(&offset, "offset", 0, "first vertex ID")
	f.Int64("seed", 0, "random seed (default: time-based)")
	return cmd
}
