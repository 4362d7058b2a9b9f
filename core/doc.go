// SPDX-License-Identifier: MIT

// Package core provides the shared, read-mostly weighted state-space graph
// consumed by the search strategies and the heuristic verifier.
//
// The Graph G = (V, E, s, T, h) carries:
//
//   - V: nodes identified by unique, non-empty string IDs
//   - E: directed edges with non-negative float64 costs (at most one per ordered pair)
//   - s: exactly one start node
//   - T: a non-empty set of goal nodes
//   - h: a heuristic estimate per node, defaulting to 0
//
// Lifecycle:
//
//  1. Build with NewGraph, AddNode, AddEdge, SetStart, AddGoal, SetHeuristic.
//  2. Call Freeze to make the graph read-only.
//  3. Search it any number of times; searches never mutate it.
//
// Determinism:
//
//   - Nodes(), Goals(), Successors() and Edges() all return ascending-ID order.
//     Successor order decides open-list insertion order in every strategy, so
//     it is part of the observable contract.
//
// Concurrency:
//
//   - All methods are guarded by a single sync.RWMutex; once frozen, concurrent
//     readers never contend with writers.
//
// Errors:
//
//	ErrEmptyNodeID   - node ID is the empty string.
//	ErrNodeNotFound  - requested node does not exist.
//	ErrNegativeCost  - edge cost is negative or NaN.
//	ErrFrozen        - mutation attempted after Freeze.
package core
