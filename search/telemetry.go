// SPDX-License-Identifier: MIT

package search

import (
	"context"
	"sync"
	"time"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/metric"
	"go.opentelemetry.io/otel/trace"
)

// Package-level tracer and meter. Without an installed SDK both are no-ops.
var (
	tracer = otel.Tracer("lvsearch.search")
	meter  = otel.Meter("lvsearch.search")
)

var (
	runsTotal     metric.Int64Counter
	statesVisited metric.Int64Histogram
	findLatency   metric.Float64Histogram

	metricsOnce sync.Once
	metricsErr  error
)

// initMetrics creates the instruments once. Safe to call concurrently.
func initMetrics() error {
	metricsOnce.Do(func() {
		var err error

		runsTotal, err = meter.Int64Counter(
			"search_runs_total",
			metric.WithDescription("Total number of completed searches"),
		)
		if err != nil {
			metricsErr = err
			return
		}

		statesVisited, err = meter.Int64Histogram(
			"search_states_visited",
			metric.WithDescription("States visited per search"),
		)
		if err != nil {
			metricsErr = err
			return
		}

		findLatency, err = meter.Float64Histogram(
			"search_duration_seconds",
			metric.WithDescription("Duration of a single search"),
			metric.WithUnit("s"),
		)
		if err != nil {
			metricsErr = err
		}
	})

	return metricsErr
}

// startFindSpan opens the span covering one Find call.
func startFindSpan(ctx context.Context, alg Algorithm, start string) (context.Context, trace.Span) {
	return tracer.Start(ctx, "search.Find",
		trace.WithAttributes(
			attribute.String("search.algorithm", alg.String()),
			attribute.String("search.start", start),
		),
	)
}

// setFindSpanResult annotates the span with the outcome.
func setFindSpanResult(span trace.Span, res *Result) {
	span.SetAttributes(
		attribute.Bool("search.found", res.Found),
		attribute.Int("search.states_visited", res.StatesVisited),
		attribute.Int("search.path_length", res.PathLength()),
		attribute.Float64("search.total_cost", res.TotalCost),
	)
}

// recordFindMetrics records one finished search.
func recordFindMetrics(ctx context.Context, alg Algorithm, res *Result, d time.Duration) {
	if err := initMetrics(); err != nil {
		return
	}
	attrs := metric.WithAttributes(
		attribute.String("algorithm", alg.String()),
		attribute.Bool("found", res.Found),
	)
	runsTotal.Add(ctx, 1, attrs)
	statesVisited.Record(ctx, int64(res.StatesVisited), attrs)
	findLatency.Record(ctx, d.Seconds(), attrs)
}
