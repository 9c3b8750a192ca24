// SPDX-License-Identifier: MIT
// Package: main
//
// cmd_eval.go - `triest eval [FILE|-]`.

package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/katalvlaran/triest/eval"
	"github.com/katalvlaran/triest/stream"
)

func newEvalCmd(a *app) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "eval [FILE|-]",
		Short: "Run repeated seeded trials and compare with the exact count",
		Long: `Load an edge list, run --trials independent estimators over it and
report the mean, standard deviation and median estimate together with the
exact triangle count and the relative error of the mean.

Examples:
  triest generate wheel 2000 --shuffle --seed 1 | triest eval - --capacity 800
  triest eval edges.txt --variant base --trials 200 --workers 8`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			reader, closeInput, err := a.openInput(args)
			if err != nil {
				return err
			}
			edges, err := stream.ReadAll[int64](reader)
			_ = closeInput()
			if err != nil {
				return err
			}

			cfg, err := a.cfg.Eval()
			if err != nil {
				return err
			}
			cfg.Logger = &a.log
			res, err := eval.Run(cmd.Context(), edges, cfg)
			if err != nil {
				return err
			}
			fmt.Fprintf(a.stdout,
				"variant=%s capacity=%d trials=%d edges=%d\nmean=%.2f stddev=%.2f median=%.0f reference=%d relative_error=%.4f\n",
				cfg.Variant, cfg.Capacity, cfg.Trials, len(edges),
				res.Mean, res.StdDev, res.Median, res.Reference, res.RelativeError)
			return nil
		},
	}
	estimatorFlags(cmd)
	cmd.Flags().Int("trials", 50, "independent trials")
	cmd.Flags().Int("workers", 0, "concurrent trials (default: NumCPU)")
	return cmd
}
