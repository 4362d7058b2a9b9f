// SPDX-License-Identifier: MIT

package gridgraph

import (
	"errors"
	"fmt"
)

// Sentinel errors for gridgraph operations.
var (
	// ErrEmptyGrid indicates input grid has no rows or no columns.
	ErrEmptyGrid = errors.New("gridgraph: input grid must have at least one row and one column")
	// ErrNonRectangular indicates rows of differing lengths.
	ErrNonRectangular = errors.New("gridgraph: all rows must have the same length")
	// ErrOutOfBounds indicates a point outside the grid.
	ErrOutOfBounds = errors.New("gridgraph: point out of bounds")
	// ErrBlocked indicates a start or goal placed on a wall.
	ErrBlocked = errors.New("gridgraph: point is a wall")
	// ErrNoGoal indicates a conversion without any goal cell.
	ErrNoGoal = errors.New("gridgraph: at least one goal is required")
	// ErrParse indicates a malformed text map.
	ErrParse = errors.New("gridgraph: malformed map")
)

// Connectivity selects neighbor connectivity: orthogonal (Conn4) or including diagonals (Conn8).
type Connectivity int

const (
	// Conn4 uses 4-directional connectivity: N, E, S, W.
	Conn4 Connectivity = iota
	// Conn8 uses 8-directional connectivity: N, NE, E, SE, S, SW, W, NW.
	Conn8
)

// ParseConnectivity maps 4 or 8 to a Connectivity.
func ParseConnectivity(n int) (Connectivity, error) {
	switch n {
	case 4:
		return Conn4, nil
	case 8:
		return Conn8, nil
	default:
		return Conn4, fmt.Errorf("gridgraph: connectivity must be 4 or 8, got %d", n)
	}
}

// Point addresses a cell; X is the column, Y the row.
type Point struct {
	X, Y int
}

// ID is the state identifier used in the emitted graph.
func (p Point) ID() string {
	return fmt.Sprintf("%d,%d", p.X, p.Y)
}

// GridOptions contains tunable parameters for grid conversion.
type GridOptions struct {
	// Conn chooses 4- or 8-directional connectivity.
	Conn Connectivity
}

// DefaultGridOptions returns Conn4.
func DefaultGridOptions() GridOptions {
	return GridOptions{Conn: Conn4}
}

// GridGraph is an immutable cost map.
// CellValues[y][x] holds the input value; neighborOffsets is precomputed
// from Conn.
type GridGraph struct {
	Width, Height   int
	CellValues      [][]int
	Conn            Connectivity
	neighborOffsets [][2]int
}

// Map is a parsed text map: the grid plus the marked start and goals.
type Map struct {
	Grid  *GridGraph
	Start Point
	Goals []Point
}
