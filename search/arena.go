// SPDX-License-Identifier: MIT

package search

// noParent marks the root of a search tree.
const noParent = -1

// searchNode is the ephemeral, per-call view of a state.
//
// parent is an index into the owning arena, never a pointer, so the tree can
// only point backwards and never aliases the shared Model.
type searchNode struct {
	id     string
	g      float64 // accumulated path cost
	f      float64 // strategy-dependent evaluation value
	step   float64 // cost of the edge parent→this as produced by the successor function
	parent int
	seq    uint64 // insertion order, for FIFO tie-breaking
	pos    int    // index inside the open heap, -1 when absent
}

// arena owns every searchNode allocated by one search.
type arena struct {
	nodes []searchNode
	seq   uint64
}

func newArena(capacity int) *arena {
	return &arena{nodes: make([]searchNode, 0, capacity)}
}

// add appends a node and returns its index.
func (a *arena) add(id string, g, f, step float64, parent int) int {
	a.seq++
	a.nodes = append(a.nodes, searchNode{
		id:     id,
		g:      g,
		f:      f,
		step:   step,
		parent: parent,
		seq:    a.seq,
		pos:    -1,
	})

	return len(a.nodes) - 1
}

// at returns a pointer that is only valid until the next add.
func (a *arena) at(i int) *searchNode { return &a.nodes[i] }

// onChain reports whether id names node i or any of its ancestors.
func (a *arena) onChain(i int, id string) bool {
	for ; i != noParent; i = a.nodes[i].parent {
		if a.nodes[i].id == id {
			return true
		}
	}

	return false
}
