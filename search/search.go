// SPDX-License-Identifier: MIT

package search

import (
	"context"
	"fmt"
	"time"
)

// Find runs alg from start until goal accepts a removed state or the open list
// is exhausted.
//
// Inputs:
//   - m: read-only state space; used for true edge costs and heuristics.
//   - start: ID of the root state.
//   - succ: successor function; nil means m.Successors.
//   - goal: goal predicate over state IDs.
//
// Returns:
//   - *Result: never nil on success. An unreachable goal is not an error.
//   - error: ErrNilModel, ErrEmptyStart, ErrNilGoal, ErrUnknownAlgorithm,
//     or the context error if the search was cancelled.
//
// Determinism:
//   - Given the same inputs and successor order, the Result is identical on
//     every call; no state survives between calls.
func Find(alg Algorithm, m Model, start string, succ SuccessorFunc, goal GoalFunc, opts ...Option) (*Result, error) {
	if m == nil {
		return nil, ErrNilModel
	}
	if start == "" {
		return nil, ErrEmptyStart
	}
	if goal == nil {
		return nil, ErrNilGoal
	}
	if !alg.Valid() {
		return nil, fmt.Errorf("%w: %d", ErrUnknownAlgorithm, int(alg))
	}
	if succ == nil {
		succ = m.Successors
	}
	o := DefaultOptions()
	for _, opt := range opts {
		opt(&o)
	}

	ctx, span := startFindSpan(o.Ctx, alg, start)
	defer span.End()
	began := time.Now()

	r := &runner{
		alg:   alg,
		model: m,
		succ:  succ,
		goal:  goal,
		opts:  o,
		ctx:   ctx,
		nodes: newArena(16),
	}

	var (
		res *Result
		err error
	)
	switch alg {
	case BreadthFirst:
		res, err = r.breadthFirst(start)
	case UniformCost:
		res, err = r.uniformCost(start)
	case AStar:
		res, err = r.aStar(start)
	}
	if err != nil {
		span.RecordError(err)
		return nil, err
	}
	setFindSpanResult(span, res)
	recordFindMetrics(ctx, alg, res, time.Since(began))

	return res, nil
}

// Run dispatches by tag. An unrecognised tag yields an empty, failed Result
// and no error, so callers can always print a report.
func Run(tag string, m Model, start string, succ SuccessorFunc, goal GoalFunc, opts ...Option) (*Result, error) {
	alg, ok := Parse(tag)
	if !ok {
		return &Result{}, nil
	}

	return Find(alg, m, start, succ, goal, opts...)
}

// runner holds the mutable state of a single search.
type runner struct {
	alg   Algorithm
	model Model
	succ  SuccessorFunc
	goal  GoalFunc
	opts  Options
	ctx   context.Context
	nodes *arena
}

// cancelled reports the context error, if any, without blocking.
func (r *runner) cancelled() error {
	select {
	case <-r.ctx.Done():
		return r.ctx.Err()
	default:
		return nil
	}
}

// root allocates the start node: g = 0, f = h(start) for A*.
func (r *runner) root(start string) int {
	var f float64
	if r.alg == AStar {
		f = r.model.Heuristic(start)
	}

	return r.nodes.add(start, 0, f, 0, noParent)
}

// expand allocates one fresh child per successor edge of node n, in the order
// the successor function returns them, and returns their arena indices.
//
// g accumulates the parent's g plus the Model's cost for the traversed edge;
// breadth-first search carries no costs at all.
func (r *runner) expand(n int) []int {
	parent := *r.nodes.at(n)
	edges := r.succ(parent.id)
	children := make([]int, 0, len(edges))
	for _, e := range edges {
		var g, f float64
		if r.alg != BreadthFirst {
			c, ok := r.model.Cost(parent.id, e.To)
			if !ok {
				c = e.Cost
			}
			g = parent.g + c
			f = g
			if r.alg == AStar {
				f = g + r.model.Heuristic(e.To)
			}
		}
		children = append(children, r.nodes.add(e.To, g, f, e.Cost, n))
	}

	return children
}

// success builds the Result for terminal node n; the goal itself is not in
// visited, hence the +1.
func (r *runner) success(n, visited int) *Result {
	path, cost := reconstruct(r.model, r.nodes, n)

	return &Result{
		Algorithm:     r.alg.String(),
		Found:         true,
		StatesVisited: visited + 1,
		Path:          path,
		TotalCost:     cost,
	}
}

// fail builds the Result for an exhausted open list.
func (r *runner) fail(visited int) *Result {
	return &Result{
		Algorithm:     r.alg.String(),
		Found:         false,
		StatesVisited: visited,
		Path:          []string{},
	}
}
