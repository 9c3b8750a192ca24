// SPDX-License-Identifier: MIT
// Package: stream
//
// run.go - the driver loop: pull from a Source, push into an Estimator.
//
// Contract:
//   - Edges are delivered in source order, one HandleEdge call each.
//   - ctx is checked before every edge; cancellation returns the partial
//     Summary together with ctx.Err().
//   - A source error other than io.EOF stops the run; the edges already
//     delivered stay applied.
//   - Reports fire after edge k·reportEvery and are logged at info level.

package stream

import (
	"context"
	"errors"
	"fmt"
	"io"
	"time"

	"github.com/katalvlaran/triest/triest"
)

// Report is a progress snapshot.
type Report struct {
	Edges    uint64
	Estimate int64
	Elapsed  time.Duration
}

// Summary is the outcome of a completed (or interrupted) run.
type Summary struct {
	Report
	// EdgesPerSecond is the mean throughput over the run.
	EdgesPerSecond float64
}

// Run streams every edge of src into est.
func Run[V comparable](ctx context.Context, src Source[V], est triest.Estimator[V], opts ...Option) (Summary, error) {
	if src == nil || est == nil {
		return Summary{}, fmt.Errorf("Run: %w", ErrNilSource)
	}
	cfg := newRunConfig(opts...)
	log := cfg.logger

	start := time.Now()
	var n uint64
	snapshot := func() Report {
		return Report{Edges: n, Estimate: est.Estimate(), Elapsed: time.Since(start)}
	}

	log.Debug().Uint64("report_every", cfg.reportEvery).Msg("stream started")
	for {
		if err := ctx.Err(); err != nil {
			s := summarize(snapshot())
			log.Warn().Uint64("edges", n).Err(err).Msg("stream interrupted")
			return s, fmt.Errorf("Run: after %d edges: %w", n, err)
		}

		e, err := src.Next()
		if errors.Is(err, io.EOF) {
			break
		}
		if err != nil {
			return summarize(snapshot()), fmt.Errorf("Run: edge %d: %w", n+1, err)
		}

		est.HandleEdge(e)
		n++

		if cfg.reportEvery > 0 && n%cfg.reportEvery == 0 {
			r := snapshot()
			log.Info().
				Uint64("edges", r.Edges).
				Int64("estimate", r.Estimate).
				Dur("elapsed", r.Elapsed).
				Msg("progress")
			if cfg.reporter != nil {
				cfg.reporter(r)
			}
		}
	}

	s := summarize(snapshot())
	log.Info().
		Uint64("edges", s.Edges).
		Int64("estimate", s.Estimate).
		Dur("elapsed", s.Elapsed).
		Float64("edges_per_second", s.EdgesPerSecond).
		Msg("stream finished")
	return s, nil
}

func summarize(r Report) Summary {
	s := Summary{Report: r}
	if secs := r.Elapsed.Seconds(); secs > 0 {
		s.EdgesPerSecond = float64(r.Edges) / secs
	}
	return s
}
