// SPDX-License-Identifier: MIT

// Package search implements breadth-first, uniform-cost and A* search over a
// read-only state-space Model, sharing one expand/open-list protocol and one
// result-construction contract.
//
// Protocol (all strategies):
//
//	open ← [initial(s0)]
//	visited ← ∅
//	while open ≠ [] do
//	    n ← removeHead(open)
//	    if goal(n) then return success(n)      // STATES_VISITED = |visited| + 1
//	    visited ← visited ∪ {n}
//	    for m ∈ expand(n) do insert(m, open)   // per-strategy duplicate policy
//	return fail                                // STATES_VISITED = |visited|
//
// Strategies:
//
//   - BreadthFirst: FIFO open list; a child is enqueued iff its ID was never
//     visited. No cost bookkeeping.
//   - UniformCost: min-heap on (g, ID); visited IDs are never reopened, which is
//     sound because costs are non-negative (Dijkstra over an implicit graph).
//   - AStar: min-heap on f = g + h, ties broken by insertion order. A child m
//     whose ID already sits in open or visited as m' is discarded iff
//     g(m') < g(m); otherwise m' is removed and m inserted, so of two
//     equal-cost paths the later-generated one wins.
//
// SearchNodes are allocated in a per-call arena and refer to their parent by
// index. Nothing is written back to the Model, so the same graph can be searched
// any number of times, sequentially or concurrently, with identical results.
//
// Dispatch by tag ("bfs", "ucs", "astar") goes through Parse, a pure function;
// Run returns an empty Result for unknown tags instead of an error.
//
// Complexity:
//
//   - BFS: Time O(V + E), Memory O(V + E) (duplicates may coexist in the queue)
//   - UCS: Time O((V + E) log E), Memory O(V + E)
//   - A*:  Time O((V + E) log E) for consistent heuristics; reopening can cost
//     more with merely admissible ones.
package search
