// SPDX-License-Identifier: MIT

package search

import (
	"context"
	"errors"
	"sort"

	"github.com/katalvlaran/lvsearch/core"
)

// Sentinel errors for search execution. Failing to reach a goal is not an
// error; it yields a Result with Found == false.
var (
	// ErrNilModel is returned when a nil Model is passed to Find.
	ErrNilModel = errors.New("search: model is nil")

	// ErrEmptyStart is returned when the start ID is empty.
	ErrEmptyStart = errors.New("search: start ID is empty")

	// ErrNilGoal is returned when no goal predicate is supplied.
	ErrNilGoal = errors.New("search: goal predicate is nil")

	// ErrUnknownAlgorithm is returned by Find for an Algorithm outside the enum.
	ErrUnknownAlgorithm = errors.New("search: unknown algorithm")
)

// Algorithm is the closed set of search strategies.
type Algorithm int

const (
	// BreadthFirst expands states in FIFO order, ignoring costs.
	BreadthFirst Algorithm = iota + 1

	// UniformCost expands the cheapest known state first.
	UniformCost

	// AStar expands the state with the lowest g + h first.
	AStar
)

// Parse resolves a command-line tag to an Algorithm.
// Recognised tags are "bfs", "ucs" and "astar" (case-sensitive).
func Parse(tag string) (Algorithm, bool) {
	switch tag {
	case "bfs":
		return BreadthFirst, true
	case "ucs":
		return UniformCost, true
	case "astar":
		return AStar, true
	default:
		return 0, false
	}
}

// String returns the report tag: "BFS", "UCS", "ASTAR", or "" when invalid.
func (a Algorithm) String() string {
	switch a {
	case BreadthFirst:
		return "BFS"
	case UniformCost:
		return "UCS"
	case AStar:
		return "ASTAR"
	default:
		return ""
	}
}

// Valid reports whether a is one of the defined strategies.
func (a Algorithm) Valid() bool { return a >= BreadthFirst && a <= AStar }

// Model is the read-only view of the state space consumed by the strategies.
// *core.Graph satisfies it.
type Model interface {
	// Successors returns the outgoing edges of id, ascending by target ID.
	Successors(id string) []core.Edge
	// Cost returns the true cost of from→to.
	Cost(from, to string) (float64, bool)
	// Heuristic returns h(id), 0 when unknown.
	Heuristic(id string) float64
}

var _ Model = (*core.Graph)(nil)

// SuccessorFunc maps a state to its outgoing edges. Edge.To names the child;
// the order of the returned slice is the open-list insertion order.
type SuccessorFunc func(id string) []core.Edge

// GoalFunc reports whether id is a goal state.
type GoalFunc func(id string) bool

// SortedSuccessors wraps m.Successors and re-sorts the result by target ID,
// independent of the order the model itself guarantees.
func SortedSuccessors(m Model) SuccessorFunc {
	return func(id string) []core.Edge {
		edges := m.Successors(id)
		sortEdgesByTarget(edges)

		return edges
	}
}

// sortEdgesByTarget orders edges by To ascending, stable for equal targets.
func sortEdgesByTarget(edges []core.Edge) {
	sort.SliceStable(edges, func(i, j int) bool { return edges[i].To < edges[j].To })
}

// Option configures a search via functional arguments.
type Option func(*Options)

// Options holds per-call knobs.
type Options struct {
	// Ctx allows cancellation and carries the parent tracing span.
	Ctx context.Context

	// OnExpand is called each time a state is closed and about to be expanded,
	// with its accumulated path cost (always 0 for BreadthFirst).
	OnExpand func(id string, g float64)
}

// DefaultOptions returns Options with a background context and a no-op hook.
func DefaultOptions() Options {
	return Options{
		Ctx:      context.Background(),
		OnExpand: func(string, float64) {},
	}
}

// WithContext sets a custom context; nil is ignored.
func WithContext(ctx context.Context) Option {
	return func(o *Options) {
		if ctx != nil {
			o.Ctx = ctx
		}
	}
}

// WithOnExpand registers a callback invoked before each expansion.
func WithOnExpand(fn func(id string, g float64)) Option {
	return func(o *Options) {
		if fn != nil {
			o.OnExpand = fn
		}
	}
}

// Result is the immutable outcome of one Find call.
//
// The zero Result (empty Algorithm, not found, empty path) is what Run returns
// for an unknown algorithm tag.
type Result struct {
	Algorithm     string
	Found         bool
	StatesVisited int
	Path          []string
	TotalCost     float64
}

// PathLength returns the number of states on the path, start and goal included.
func (r *Result) PathLength() int { return len(r.Path) }
