// SPDX-License-Identifier: MIT

package core

import (
	"errors"
	"sync"
)

// Sentinel errors for core graph operations.
var (
	// ErrEmptyNodeID indicates that the provided node ID is empty.
	ErrEmptyNodeID = errors.New("core: node ID is empty")

	// ErrNodeNotFound indicates an operation referenced a non-existent node.
	ErrNodeNotFound = errors.New("core: node not found")

	// ErrNegativeCost indicates an edge cost below zero (or NaN).
	ErrNegativeCost = errors.New("core: negative edge cost")

	// ErrFrozen indicates a mutation was attempted on a frozen graph.
	ErrFrozen = errors.New("core: graph is frozen")
)

// Node is a single state of the search space.
//
// ID uniquely identifies the Node within its Graph.
// Heuristic is the estimated remaining cost to the nearest goal; 0 when no
// heuristic data was supplied.
type Node struct {
	ID        string
	Heuristic float64
}

// Edge is a directed, weighted transition From→To.
type Edge struct {
	From string
	To   string
	Cost float64
}

// Graph is the immutable-after-load state-space model.
//
// adjacency[from][to] = cost. A second AddEdge for the same ordered pair
// overwrites the cost.
type Graph struct {
	mu sync.RWMutex // guards every field below

	nodes     map[string]*Node
	adjacency map[string]map[string]float64
	edgeCount int

	start  string
	goals  map[string]struct{}
	frozen bool
}

// NewGraph creates an empty, mutable Graph.
// Complexity: O(1)
func NewGraph() *Graph {
	return &Graph{
		nodes:     make(map[string]*Node),
		adjacency: make(map[string]map[string]float64),
		goals:     make(map[string]struct{}),
	}
}
