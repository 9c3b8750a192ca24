// SPDX-License-Identifier: MIT
// Package: eval
//
// run.go - repeated independent trials over one stream.
//
// Contract:
//   - Trial i is a fresh estimator seeded with triest.DeriveSeed(cfg.Seed, i);
//     results are stored by trial index, so the outcome does not depend on
//     Workers or scheduling.
//   - Trials run under an errgroup limited to cfg.workers(); ctx cancellation
//     stops every trial at its next check and Run returns ctx.Err().
//
// Complexity: O(Trials · E) edge handlings plus the reference count.

package eval

import (
	"context"
	"fmt"
	"math"
	"sort"
	"time"

	"golang.org/x/sync/errgroup"
	"gonum.org/v1/gonum/stat"

	"github.com/katalvlaran/triest/triest"
)

// ctxCheckEvery is the number of edges between context checks inside a trial.
const ctxCheckEvery = 4096

// Result aggregates one evaluation.
type Result struct {
	// Estimates holds the final estimate of each trial, by trial index.
	Estimates []int64
	Mean      float64
	StdDev    float64
	Median    float64
	// Reference is the exact triangle count of the stream.
	Reference int64
	// RelativeError is |Mean-Reference|/Reference; 0 when both are zero and
	// +Inf when only Reference is.
	RelativeError float64
	Elapsed       time.Duration
}

// Run evaluates cfg over edges.
func Run[V comparable](ctx context.Context, edges []triest.Edge[V], cfg Config) (*Result, error) {
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("Run: %w", err)
	}
	if len(edges) == 0 {
		return nil, fmt.Errorf("Run: %w", ErrEmptyStream)
	}
	log := cfg.logger()
	start := time.Now()

	estimates := make([]int64, cfg.Trials)
	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(cfg.workers())
	for i := 0; i < cfg.Trials; i++ {
		trial := i
		g.Go(func() error {
			seed := triest.DeriveSeed(cfg.Seed, uint64(trial))
			est, err := runTrial(gctx, edges, cfg.Variant, cfg.Capacity, seed)
			if err != nil {
				return fmt.Errorf("trial %d: %w", trial, err)
			}
			estimates[trial] = est
			log.Debug().Int("trial", trial).Int64("seed", seed).Int64("estimate", est).Msg("trial done")
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, fmt.Errorf("Run: %w", err)
	}

	res := summarize(estimates, Reference(edges))
	res.Elapsed = time.Since(start)
	log.Info().
		Str("variant", cfg.Variant.String()).
		Int("capacity", cfg.Capacity).
		Int("trials", cfg.Trials).
		Float64("mean", res.Mean).
		Float64("stddev", res.StdDev).
		Int64("reference", res.Reference).
		Float64("relative_error", res.RelativeError).
		Dur("elapsed", res.Elapsed).
		Msg("evaluation finished")
	return res, nil
}

func runTrial[V comparable](ctx context.Context, edges []triest.Edge[V], v triest.Variant, capacity int, seed int64) (int64, error) {
	c, err := triest.New[V](v, capacity, triest.WithSeed(seed))
	if err != nil {
		return 0, err
	}
	for i, e := range edges {
		if i%ctxCheckEvery == 0 {
			if err := ctx.Err(); err != nil {
				return 0, err
			}
		}
		c.HandleEdge(e)
	}
	return c.Estimate(), nil
}

func summarize(estimates []int64, reference int64) *Result {
	xs := make([]float64, len(estimates))
	for i, e := range estimates {
		xs[i] = float64(e)
	}
	res := &Result{Estimates: estimates, Reference: reference}
	if len(xs) == 1 {
		res.Mean = xs[0]
	} else {
		res.Mean, res.StdDev = stat.MeanStdDev(xs, nil)
	}
	sort.Float64s(xs)
	res.Median = stat.Quantile(0.5, stat.Empirical, xs, nil)

	switch {
	case reference != 0:
		res.RelativeError = math.Abs(res.Mean-float64(reference)) / float64(reference)
	case res.Mean != 0:
		res.RelativeError = math.Inf(1)
	}
	return res
}
