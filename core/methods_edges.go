// SPDX-License-Identifier: MIT
//
// File: methods_edges.go
// Role: Edge insertion and the read contract consumed by search strategies.
//
// Determinism:
//   - Successors(id) is sorted by target ID ascending.
//   - Edges() is sorted by (From, To) ascending.

package core

import (
	"fmt"
	"math"
	"sort"
)

// AddEdge records the directed edge from→to with the given cost.
//
// Implementation:
//   - Stage 1: Validate IDs and cost.
//   - Stage 2: Under the write lock, materialise both endpoints on demand
//     (id only, no edges, heuristic 0) and store the cost.
//
// Behavior highlights:
//   - Dangling references never fail; they degrade to disconnected nodes.
//   - Re-adding an existing pair overwrites its cost; EdgeCount is unchanged.
//
// Errors:
//   - ErrEmptyNodeID: from or to is empty.
//   - ErrNegativeCost: cost < 0 or NaN (wrapped with the offending edge).
//   - ErrFrozen: if Freeze has been called.
//
// Complexity:
//   - Time O(1) amortized.
func (g *Graph) AddEdge(from, to string, cost float64) error {
	if from == "" || to == "" {
		return ErrEmptyNodeID
	}
	if cost < 0 || math.IsNaN(cost) {
		return fmt.Errorf("%w: edge %s→%s cost=%g", ErrNegativeCost, from, to, cost)
	}

	g.mu.Lock()
	defer g.mu.Unlock()
	if g.frozen {
		return ErrFrozen
	}
	g.ensureNode(from)
	g.ensureNode(to)

	out, ok := g.adjacency[from]
	if !ok {
		out = make(map[string]float64)
		g.adjacency[from] = out
	}
	if _, exists := out[to]; !exists {
		g.edgeCount++
	}
	out[to] = cost

	return nil
}

// Cost returns the true cost of the edge from→to and whether it exists.
// Complexity: O(1).
func (g *Graph) Cost(from, to string) (float64, bool) {
	g.mu.RLock()
	defer g.mu.RUnlock()
	c, ok := g.adjacency[from][to]

	return c, ok
}

// Successors returns the outgoing edges of id sorted by target ID ascending.
// Unknown IDs and sinks yield an empty slice. The slice is freshly allocated;
// callers may reorder it freely.
//
// Complexity: O(d log d) where d = out-degree(id).
func (g *Graph) Successors(id string) []Edge {
	g.mu.RLock()
	out := g.adjacency[id]
	edges := make([]Edge, 0, len(out))
	for to, c := range out {
		edges = append(edges, Edge{From: id, To: to, Cost: c})
	}
	g.mu.RUnlock()
	sort.Slice(edges, func(i, j int) bool { return edges[i].To < edges[j].To })

	return edges
}

// Edges returns every edge sorted by (From, To).
// Complexity: O(E log E).
func (g *Graph) Edges() []Edge {
	g.mu.RLock()
	edges := make([]Edge, 0, g.edgeCount)
	for from, out := range g.adjacency {
		for to, c := range out {
			edges = append(edges, Edge{From: from, To: to, Cost: c})
		}
	}
	g.mu.RUnlock()
	sort.Slice(edges, func(i, j int) bool {
		if edges[i].From != edges[j].From {
			return edges[i].From < edges[j].From
		}

		return edges[i].To < edges[j].To
	})

	return edges
}

// EdgeCount returns |E|.
func (g *Graph) EdgeCount() int {
	g.mu.RLock()
	defer g.mu.RUnlock()

	return g.edgeCount
}
