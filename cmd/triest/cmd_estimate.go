// SPDX-License-Identifier: MIT
// Package: main
//
// cmd_estimate.go - `triest estimate [FILE|-]`.

package main

import (
	"context"
	"errors"
	"fmt"
	"net"
	"net/http"
	"time"

	"github.com/google/uuid"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/rs/zerolog"
	"github.com/spf13/cobra"

	"github.com/katalvlaran/triest/stream"
	"github.com/katalvlaran/triest/telemetry"
	"github.com/katalvlaran/triest/triest"
)

const shutdownTimeout = 5 * time.Second

func newEstimateCmd(a *app) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "estimate [FILE|-]",
		Short: "Stream an edge list and print the triangle estimate",
		Long: `Read "u v" edge lines from FILE (or stdin) and feed them, one at a time,
to a bounded-memory triangle estimator. Progress lines are printed every
--report-every edges, followed by the final estimate.

Examples:
  triest estimate com-dblp.ungraph.txt --capacity 200000
  zcat edges.gz | triest estimate - --variant base --report-every 1000000
  triest estimate edges.txt --metrics-addr :9090`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return a.runEstimate(cmd.Context(), args)
		},
	}
	estimatorFlags(cmd)
	cmd.Flags().Int("report-every", 100_000, "edges between progress lines (0 disables)")
	cmd.Flags().String("metrics-addr", "", "serve /metrics and /estimate on this address while running")
	return cmd
}

func (a *app) runEstimate(ctx context.Context, args []string) error {
	variant, err := a.cfg.Variant()
	if err != nil {
		return err
	}
	runID := uuid.NewString()
	log := a.log.With().Str("run_id", runID).Str("variant", variant.String()).Logger()

	counter, err := triest.New[int64](variant, a.cfg.Capacity(), triest.WithSeed(a.cfg.Seed()))
	if err != nil {
		return err
	}
	var est triest.Estimator[int64] = counter

	if addr := a.cfg.MetricsAddr(); addr != "" {
		reg := prometheus.NewRegistry()
		reg.MustRegister(collectors.NewGoCollector(), collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}))
		in, err := telemetry.Instrument[int64](counter, reg, variant.String())
		if err != nil {
			return err
		}
		synced := triest.NewSynchronized[int64](in)
		est = synced

		stopServer, err := serveMetrics(addr, reg, synced, log)
		if err != nil {
			return err
		}
		defer stopServer()
	}

	reader, closeInput, err := a.openInput(args)
	if err != nil {
		return err
	}
	defer func() { _ = closeInput() }()

	log.Info().Int("capacity", counter.Capacity()).Int64("seed", a.cfg.Seed()).Msg("estimate started")
	sum, err := stream.Run[int64](ctx, reader, est,
		stream.WithReportEvery(uint64(a.cfg.ReportEvery())),
		stream.WithReporter(func(r stream.Report) {
			fmt.Fprintf(a.stdout, "edges=%d estimate=%d\n", r.Edges, r.Estimate)
		}),
		stream.WithLogger(log),
	)
	if err != nil {
		return err
	}
	fmt.Fprintf(a.stdout, "edges=%d estimate=%d elapsed=%s\n",
		sum.Edges, sum.Estimate, sum.Elapsed.Round(time.Millisecond))
	return nil
}

// serveMetrics starts the HTTP listener and returns its shutdown func.
func serveMetrics(addr string, reg *prometheus.Registry, est *triest.Synchronized[int64], log zerolog.Logger) (func(), error) {
	ln, err := net.Listen("tcp", addr)
	if err != nil {
		return nil, fmt.Errorf("metrics listen %s: %w", addr, err)
	}
	mux := http.NewServeMux()
	mux.Handle("/metrics", telemetry.Handler(reg))
	mux.Handle("/estimate", telemetry.EstimateHandler[int64](est))
	srv := &http.Server{Handler: mux, ReadHeaderTimeout: 5 * time.Second}

	go func() {
		if err := srv.Serve(ln); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Error().Err(err).Msg("metrics server stopped")
		}
	}()
	log.Info().Str("addr", ln.Addr().String()).Msg("metrics server listening")

	return func() {
		ctx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
		defer cancel()
		_ = srv.Shutdown(ctx)
	}, nil
}
