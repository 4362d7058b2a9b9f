// SPDX-License-Identifier: MIT
//
// File: methods_nodes.go
// Role: Node lifecycle, start/goal designation, heuristic lookup.
//
// Determinism:
//   - Nodes() and Goals() return IDs sorted lexicographically ascending.
//
// Concurrency:
//   - Mutations under mu write lock, queries under mu read lock.

package core

import "sort"

// AddNode inserts a node if missing (idempotent).
//
// Implementation:
//   - Stage 1: Validate non-empty ID (ErrEmptyNodeID).
//   - Stage 2: Under the write lock, reject frozen graphs and register the node.
//
// Errors:
//   - ErrEmptyNodeID: if id == "".
//   - ErrFrozen: if Freeze has been called.
//
// Complexity:
//   - Time O(1) amortized, Space O(1).
func (g *Graph) AddNode(id string) error {
	if id == "" {
		return ErrEmptyNodeID
	}
	g.mu.Lock()
	defer g.mu.Unlock()
	if g.frozen {
		return ErrFrozen
	}
	g.ensureNode(id)

	return nil
}

// ensureNode registers id with heuristic 0 if absent. Caller holds the write lock.
func (g *Graph) ensureNode(id string) *Node {
	n, ok := g.nodes[id]
	if !ok {
		n = &Node{ID: id}
		g.nodes[id] = n
	}

	return n
}

// HasNode reports whether the node ID exists (empty ID ⇒ false).
func (g *Graph) HasNode(id string) bool {
	if id == "" {
		return false
	}
	g.mu.RLock()
	defer g.mu.RUnlock()
	_, ok := g.nodes[id]

	return ok
}

// Nodes returns all node IDs in ascending order.
// Complexity: O(V log V).
func (g *Graph) Nodes() []string {
	g.mu.RLock()
	ids := make([]string, 0, len(g.nodes))
	for id := range g.nodes {
		ids = append(ids, id)
	}
	g.mu.RUnlock()
	sort.Strings(ids)

	return ids
}

// NodeCount returns |V|.
func (g *Graph) NodeCount() int {
	g.mu.RLock()
	defer g.mu.RUnlock()

	return len(g.nodes)
}

// SetStart designates id as the single start node, materialising it if needed.
// A later call replaces the previous start.
func (g *Graph) SetStart(id string) error {
	if id == "" {
		return ErrEmptyNodeID
	}
	g.mu.Lock()
	defer g.mu.Unlock()
	if g.frozen {
		return ErrFrozen
	}
	g.ensureNode(id)
	g.start = id

	return nil
}

// Start returns the start node ID, or "" if none was set.
func (g *Graph) Start() string {
	g.mu.RLock()
	defer g.mu.RUnlock()

	return g.start
}

// AddGoal adds id to the goal set, materialising it if needed.
func (g *Graph) AddGoal(id string) error {
	if id == "" {
		return ErrEmptyNodeID
	}
	g.mu.Lock()
	defer g.mu.Unlock()
	if g.frozen {
		return ErrFrozen
	}
	g.ensureNode(id)
	g.goals[id] = struct{}{}

	return nil
}

// Goals returns the goal IDs in ascending order.
func (g *Graph) Goals() []string {
	g.mu.RLock()
	ids := make([]string, 0, len(g.goals))
	for id := range g.goals {
		ids = append(ids, id)
	}
	g.mu.RUnlock()
	sort.Strings(ids)

	return ids
}

// IsGoal reports whether id belongs to the goal set.
// It matches the GoalFunc shape expected by the search package.
func (g *Graph) IsGoal(id string) bool {
	g.mu.RLock()
	defer g.mu.RUnlock()
	_, ok := g.goals[id]

	return ok
}

// SetHeuristic assigns h to an existing node.
//
// Behavior highlights:
//   - Unknown IDs are ignored and reported with ok == false; heuristic files
//     may mention states that the state-space file never declared.
//
// Errors:
//   - ErrFrozen: if Freeze has been called.
func (g *Graph) SetHeuristic(id string, h float64) (bool, error) {
	g.mu.Lock()
	defer g.mu.Unlock()
	if g.frozen {
		return false, ErrFrozen
	}
	n, ok := g.nodes[id]
	if !ok {
		return false, nil
	}
	n.Heuristic = h

	return true, nil
}

// Heuristic returns h(id), defaulting to 0 for nodes without heuristic data
// and for unknown IDs.
// Complexity: O(1).
func (g *Graph) Heuristic(id string) float64 {
	g.mu.RLock()
	defer g.mu.RUnlock()
	if n, ok := g.nodes[id]; ok {
		return n.Heuristic
	}

	return 0
}

// Freeze makes the graph read-only. Idempotent.
func (g *Graph) Freeze() {
	g.mu.Lock()
	g.frozen = true
	g.mu.Unlock()
}

// Frozen reports whether Freeze has been called.
func (g *Graph) Frozen() bool {
	g.mu.RLock()
	defer g.mu.RUnlock()

	return g.frozen
}
