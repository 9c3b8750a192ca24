// SPDX-License-Identifier: MIT
// Package: telemetry
//
// handler.go - HTTP surfaces: Prometheus exposition and a JSON estimate probe.

package telemetry

import (
	"encoding/json"
	"net/http"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/katalvlaran/triest/triest"
)

// Handler exposes g in the Prometheus text format.
func Handler(g prometheus.Gatherer) http.Handler {
	return promhttp.HandlerFor(g, promhttp.HandlerOpts{})
}

// EstimateResponse is the body served by EstimateHandler.
type EstimateResponse struct {
	Estimate int64 `json:"estimate"`
}

// EstimateHandler serves the current estimate of est as JSON. est is read from
// the HTTP goroutine, so it must be safe for concurrent use (wrap it in
// triest.Synchronized when a writer is active).
func EstimateHandler[V comparable](est *triest.Synchronized[V]) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		_ = json.NewEncoder(w).Encode(EstimateResponse{Estimate: est.Estimate()})
	})
}
