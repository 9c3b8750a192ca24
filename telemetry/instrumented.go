// SPDX-License-Identifier: MIT
// Package: telemetry
//
// instrumented.go - a metrics decorator around triest.Estimator.
//
// Metrics (namespace "triest", const label estimator=<name>):
//   - edges_processed_total   counter, one per HandleEdge.
//   - estimate                gauge, refreshed after every edge.
//   - handle_duration_seconds histogram of HandleEdge latency.
//   - sample_size, sample_capacity gauges when the wrapped estimator reports
//     its reservoir (SampleSize/Capacity).
//
// Concurrency: the decorator adds no locking. Gauges are written by the
// HandleEdge caller and read atomically by scrapes, so scraping never touches
// the wrapped estimator.

package telemetry

import (
	"fmt"
	"time"

	"github.com/prometheus/client_golang/prometheus"

	"github.com/katalvlaran/triest/triest"
)

const metricsNamespace = "triest"

// handleBuckets spans sub-microsecond to millisecond edge handling.
var handleBuckets = prometheus.ExponentialBuckets(1e-7, 4, 10)

// sampler is implemented by *triest.Counter.
type sampler interface {
	SampleSize() int
	Capacity() int
}

// Instrumented is a triest.Estimator that records Prometheus metrics.
type Instrumented[V comparable] struct {
	est      triest.Estimator[V]
	sample   sampler
	edges    prometheus.Counter
	estimate prometheus.Gauge
	duration prometheus.Histogram
	size     prometheus.Gauge
}

// Instrument wraps est and registers its collectors on reg under name.
func Instrument[V comparable](est triest.Estimator[V], reg prometheus.Registerer, name string) (*Instrumented[V], error) {
	if est == nil || reg == nil {
		return nil, fmt.Errorf("Instrument: %w", ErrNilEstimator)
	}
	labels := prometheus.Labels{"estimator": name}
	in := &Instrumented[V]{est: est}
	in.edges = prometheus.NewCounter(prometheus.CounterOpts{
		Namespace:   metricsNamespace,
		Name:        "edges_processed_total",
		Help:        "Edges handed to the estimator.",
		ConstLabels: labels,
	})
	in.estimate = prometheus.NewGauge(prometheus.GaugeOpts{
		Namespace:   metricsNamespace,
		Name:        "estimate",
		Help:        "Current global triangle estimate.",
		ConstLabels: labels,
	})
	in.duration = prometheus.NewHistogram(prometheus.HistogramOpts{
		Namespace:   metricsNamespace,
		Name:        "handle_duration_seconds",
		Help:        "Latency of a single HandleEdge call.",
		ConstLabels: labels,
		Buckets:     handleBuckets,
	})
	collectors := []prometheus.Collector{in.edges, in.estimate, in.duration}

	if s, ok := est.(sampler); ok {
		in.sample = s
		in.size = prometheus.NewGauge(prometheus.GaugeOpts{
			Namespace:   metricsNamespace,
			Name:        "sample_size",
			Help:        "Edges currently held in the reservoir.",
			ConstLabels: labels,
		})
		capacity := prometheus.NewGauge(prometheus.GaugeOpts{
			Namespace:   metricsNamespace,
			Name:        "sample_capacity",
			Help:        "Reservoir capacity M.",
			ConstLabels: labels,
		})
		capacity.Set(float64(s.Capacity()))
		collectors = append(collectors, in.size, capacity)
	}

	for i, c := range collectors {
		if err := reg.Register(c); err != nil {
			// Leave reg as it was.
			for _, done := range collectors[:i] {
				reg.Unregister(done)
			}
			return nil, fmt.Errorf("Instrument: %q: %v: %w", name, err, ErrRegister)
		}
	}
	return in, nil
}

// HandleEdge forwards e and updates the metrics.
func (in *Instrumented[V]) HandleEdge(e triest.Edge[V]) {
	start := time.Now()
	in.est.HandleEdge(e)
	in.duration.Observe(time.Since(start).Seconds())
	in.edges.Inc()
	in.estimate.Set(float64(in.est.Estimate()))
	if in.sample != nil {
		in.size.Set(float64(in.sample.SampleSize()))
	}
}

// Estimate forwards to the wrapped estimator.
func (in *Instrumented[V]) Estimate() int64 { return in.est.Estimate() }

// Unwrap returns the wrapped estimator.
func (in *Instrumented[V]) Unwrap() triest.Estimator[V] { return in.est }
