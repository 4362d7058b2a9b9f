// SPDX-License-Identifier: MIT

package heuristic

import (
	"context"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/trace"
	"golang.org/x/sync/errgroup"

	"github.com/katalvlaran/lvsearch/search"
)

var tracer = otel.Tracer("lvsearch.heuristic")

// CheckOptimistic tests h(n) <= h*(n) for every node n of g.
//
// Implementation:
//   - Stage 1: Enumerate nodes ascending by ID.
//   - Stage 2: For each node run search.UniformCost from it, with
//     search.SortedSuccessors(g) and g.IsGoal, and take TotalCost as h*
//     (0 when no goal is reachable).
//   - Stage 3: Fold the conditions into the verdict.
//
// Errors:
//   - ErrNilGraph, ErrOptionViolation, or the context error.
//
// Complexity:
//   - Time O(V · (V + E) log E), Space O(V + E) per concurrent oracle.
func CheckOptimistic(g Graph, opts ...Option) (*OptimismReport, error) {
	if g == nil {
		return nil, ErrNilGraph
	}
	o, err := buildOptions(opts)
	if err != nil {
		return nil, err
	}

	ctx, span := tracer.Start(o.Ctx, "heuristic.CheckOptimistic",
		trace.WithAttributes(attribute.Int("heuristic.workers", o.Workers)))
	defer span.End()

	ids := g.Nodes()
	conds := make([]OptimismCondition, len(ids))
	succ := search.SortedSuccessors(g)

	oracle := func(ctx context.Context, i int) error {
		res, err := search.Find(search.UniformCost, g, ids[i], succ, g.IsGoal, search.WithContext(ctx))
		if err != nil {
			return err
		}
		h := g.Heuristic(ids[i])
		conds[i] = OptimismCondition{ID: ids[i], H: h, HStar: res.TotalCost, OK: h <= res.TotalCost}

		return nil
	}

	if err = runIndexed(ctx, len(ids), o.Workers, oracle); err != nil {
		span.RecordError(err)
		return nil, err
	}

	rep := &OptimismReport{Conditions: conds, Optimistic: true}
	for _, c := range conds {
		if !c.OK {
			rep.Optimistic = false
			break
		}
	}
	span.SetAttributes(
		attribute.Int("heuristic.conditions", len(conds)),
		attribute.Bool("heuristic.optimistic", rep.Optimistic),
	)

	return rep, nil
}

// CheckConsistent tests h(n) <= h(m) + c for every edge n→m of g, nodes
// ascending by ID and each node's edges ascending by target ID.
//
// Complexity:
//   - Time O(V log V + E log d), Space O(E).
func CheckConsistent(g Graph, opts ...Option) (*ConsistencyReport, error) {
	if g == nil {
		return nil, ErrNilGraph
	}
	o, err := buildOptions(opts)
	if err != nil {
		return nil, err
	}
	_, span := tracer.Start(o.Ctx, "heuristic.CheckConsistent")
	defer span.End()

	succ := search.SortedSuccessors(g)
	rep := &ConsistencyReport{Consistent: true}
	for _, id := range g.Nodes() {
		hFrom := g.Heuristic(id)
		for _, e := range succ(id) {
			hTo := g.Heuristic(e.To)
			ok := hFrom <= hTo+e.Cost
			if !ok {
				rep.Consistent = false
			}
			rep.Conditions = append(rep.Conditions, ConsistencyCondition{
				From:  id,
				To:    e.To,
				HFrom: hFrom,
				HTo:   hTo,
				Cost:  e.Cost,
				OK:    ok,
			})
		}
	}
	span.SetAttributes(
		attribute.Int("heuristic.conditions", len(rep.Conditions)),
		attribute.Bool("heuristic.consistent", rep.Consistent),
	)

	return rep, nil
}

func buildOptions(opts []Option) (Options, error) {
	o := DefaultOptions()
	for _, opt := range opts {
		opt(&o)
	}

	return o, o.err
}

// runIndexed calls fn for 0..n-1, sequentially when workers == 1, otherwise on
// an errgroup limited to workers goroutines. The first error cancels the rest.
func runIndexed(ctx context.Context, n, workers int, fn func(context.Context, int) error) error {
	if workers <= 1 {
		for i := 0; i < n; i++ {
			if err := fn(ctx, i); err != nil {
				return err
			}
		}

		return nil
	}

	eg, egCtx := errgroup.WithContext(ctx)
	eg.SetLimit(workers)
	for i := 0; i < n; i++ {
		eg.Go(func() error { return fn(egCtx, i) })
	}

	return eg.Wait()
}
