// SPDX-License-Identifier: MIT

// Package metrics collects per-run Prometheus metrics for the lvsearch
// command and writes them in the text exposition format for node_exporter's
// textfile collector.
//
// Metrics (namespace "lvsearch"):
//
//	searches_total{algorithm,found}          counter
//	states_visited                           histogram
//	search_duration_seconds{algorithm}       histogram
//	heuristic_conditions_total{check,result} counter
package metrics

import (
	"fmt"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"

	"github.com/katalvlaran/lvsearch/heuristic"
	"github.com/katalvlaran/lvsearch/search"
)

const namespace = "lvsearch"

// Recorder owns an isolated registry; it is safe for concurrent use.
type Recorder struct {
	registry *prometheus.Registry

	searches   *prometheus.CounterVec
	visited    prometheus.Histogram
	duration   *prometheus.HistogramVec
	conditions *prometheus.CounterVec
}

// New registers all instruments on a fresh registry.
func New() *Recorder {
	reg := prometheus.NewRegistry()
	factory := promauto.With(reg)

	return &Recorder{
		registry: reg,
		searches: factory.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "searches_total",
			Help:      "Completed searches by algorithm and outcome",
		}, []string{"algorithm", "found"}),
		visited: factory.NewHistogram(prometheus.HistogramOpts{
			Namespace: namespace,
			Name:      "states_visited",
			Help:      "States counted as visited per search",
			Buckets:   prometheus.ExponentialBuckets(1, 4, 10), // 1 to ~262k
		}),
		duration: factory.NewHistogramVec(prometheus.HistogramOpts{
			Namespace: namespace,
			Name:      "search_duration_seconds",
			Help:      "Wall time of a single search",
			Buckets:   prometheus.DefBuckets,
		}, []string{"algorithm"}),
		conditions: factory.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "heuristic_conditions_total",
			Help:      "Heuristic conditions evaluated by check and result",
		}, []string{"check", "result"}),
	}
}

// Registry exposes the underlying registry, e.g. for an HTTP handler.
func (r *Recorder) Registry() *prometheus.Registry { return r.registry }

// ObserveSearch records one search outcome and its duration.
func (r *Recorder) ObserveSearch(res *search.Result, d time.Duration) {
	if res == nil {
		return
	}
	alg := res.Algorithm
	if alg == "" {
		alg = "unknown"
	}
	found := "no"
	if res.Found {
		found = "yes"
	}
	r.searches.WithLabelValues(alg, found).Inc()
	r.visited.Observe(float64(res.StatesVisited))
	r.duration.WithLabelValues(alg).Observe(d.Seconds())
}

// ObserveOptimism counts per-node optimism conditions.
func (r *Recorder) ObserveOptimism(rep *heuristic.OptimismReport) {
	if rep == nil {
		return
	}
	for _, c := range rep.Conditions {
		r.conditions.WithLabelValues("optimistic", result(c.OK)).Inc()
	}
}

// ObserveConsistency counts per-edge consistency conditions.
func (r *Recorder) ObserveConsistency(rep *heuristic.ConsistencyReport) {
	if rep == nil {
		return
	}
	for _, c := range rep.Conditions {
		r.conditions.WithLabelValues("consistent", result(c.OK)).Inc()
	}
}

// WriteFile atomically writes the registry to path in text format.
func (r *Recorder) WriteFile(path string) error {
	if err := prometheus.WriteToTextfile(path, r.registry); err != nil {
		return fmt.Errorf("metrics: write %s: %w", path, err)
	}

	return nil
}

func result(ok bool) string {
	if ok {
		return "ok"
	}

	return "err"
}
