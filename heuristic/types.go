// SPDX-License-Identifier: MIT

package heuristic

import (
	"context"
	"errors"
	"fmt"

	"github.com/katalvlaran/lvsearch/core"
	"github.com/katalvlaran/lvsearch/search"
)

// Sentinel errors for heuristic verification.
var (
	// ErrNilGraph is returned when a nil graph is passed to a check.
	ErrNilGraph = errors.New("heuristic: graph is nil")

	// ErrOptionViolation is returned when an invalid Option is supplied.
	ErrOptionViolation = errors.New("heuristic: invalid option supplied")
)

// Graph is the read-only surface the verifier needs. *core.Graph satisfies it.
type Graph interface {
	search.Model
	// Nodes returns every node ID.
	Nodes() []string
	// IsGoal reports goal membership.
	IsGoal(id string) bool
}

var _ Graph = (*core.Graph)(nil)

// OptimismCondition is one admissibility check h(ID) <= h*(ID).
type OptimismCondition struct {
	ID    string
	H     float64
	HStar float64
	OK    bool
}

// OptimismReport lists one condition per node, ascending by ID.
type OptimismReport struct {
	Conditions []OptimismCondition
	Optimistic bool
}

// ConsistencyCondition is one edge check h(From) <= h(To) + Cost.
type ConsistencyCondition struct {
	From  string
	To    string
	HFrom float64
	HTo   float64
	Cost  float64
	OK    bool
}

// ConsistencyReport lists one condition per edge, ascending by (From, To).
type ConsistencyReport struct {
	Conditions []ConsistencyCondition
	Consistent bool
}

// Option configures verification via functional arguments.
// Invalid values are recorded and surfaced as ErrOptionViolation by the check.
type Option func(*Options)

// Options holds verification parameters.
type Options struct {
	// Ctx allows cancellation of the oracle searches.
	Ctx context.Context

	// Workers is the number of concurrent oracle searches; 1 means sequential.
	Workers int

	err error
}

// DefaultOptions returns a background context and sequential execution.
func DefaultOptions() Options {
	return Options{Ctx: context.Background(), Workers: 1}
}

// WithContext sets a custom context; nil is ignored.
func WithContext(ctx context.Context) Option {
	return func(o *Options) {
		if ctx != nil {
			o.Ctx = ctx
		}
	}
}

// WithWorkers sets the oracle parallelism.
//
//	n >= 1: run up to n searches at once
//	n <  1: invalid option → ErrOptionViolation
func WithWorkers(n int) Option {
	return func(o *Options) {
		if n < 1 {
			o.err = fmt.Errorf("%w: workers must be >= 1 (%d)", ErrOptionViolation, n)
			return
		}
		o.Workers = n
	}
}
