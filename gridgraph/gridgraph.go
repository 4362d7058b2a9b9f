// SPDX-License-Identifier: MIT

package gridgraph

import (
	"fmt"
	"math"

	"github.com/katalvlaran/lvsearch/core"
)

// NewGridGraph constructs a GridGraph from a non-empty, rectangular 2D slice.
// It deep-copies the input to ensure immutability.
// Returns ErrEmptyGrid if grid has no rows or no columns,
// ErrNonRectangular if any row length differs.
// Complexity: O(W×H) time and memory.
func NewGridGraph(values [][]int, opts GridOptions) (*GridGraph, error) {
	if len(values) == 0 || len(values[0]) == 0 {
		return nil, ErrEmptyGrid
	}
	h, w := len(values), len(values[0])
	for _, row := range values {
		if len(row) != w {
			return nil, ErrNonRectangular
		}
	}
	cells := make([][]int, h)
	for y := 0; y < h; y++ {
		cells[y] = make([]int, w)
		copy(cells[y], values[y])
	}

	var offsets [][2]int
	if opts.Conn == Conn8 {
		offsets = [][2]int{{0, -1}, {1, -1}, {1, 0}, {1, 1}, {0, 1}, {-1, 1}, {-1, 0}, {-1, -1}}
	} else {
		offsets = [][2]int{{0, -1}, {1, 0}, {0, 1}, {-1, 0}}
	}

	return &GridGraph{
		Width:           w,
		Height:          h,
		CellValues:      cells,
		Conn:            opts.Conn,
		neighborOffsets: offsets,
	}, nil
}

// InBounds reports whether (x,y) lies within the grid boundaries.
func (gg *GridGraph) InBounds(x, y int) bool {
	return x >= 0 && x < gg.Width && y >= 0 && y < gg.Height
}

// Passable reports whether p is inside the grid and not a wall.
func (gg *GridGraph) Passable(p Point) bool {
	return gg.InBounds(p.X, p.Y) && gg.CellValues[p.Y][p.X] > 0
}

// NeighborOffsets returns the precomputed (dx,dy) steps for gg.Conn.
func (gg *GridGraph) NeighborOffsets() [][2]int {
	return gg.neighborOffsets
}

// StepCost is the cost of moving by (dx,dy) into cell (x,y).
func (gg *GridGraph) StepCost(x, y, dx, dy int) float64 {
	c := float64(gg.CellValues[y][x])
	if dx != 0 && dy != 0 {
		return c * math.Sqrt2
	}

	return c
}

// ToCoreGraph converts the passable cells into a state space searched from
// start towards goals. Every passable cell becomes a state "x,y"; every move
// into a passable neighbor becomes a transition weighted by StepCost. Each
// state's heuristic is the distance estimate to the nearest goal.
// The returned graph is not frozen.
func (gg *GridGraph) ToCoreGraph(start Point, goals ...Point) (*core.Graph, error) {
	if len(goals) == 0 {
		return nil, ErrNoGoal
	}
	for _, p := range append([]Point{start}, goals...) {
		if !gg.InBounds(p.X, p.Y) {
			return nil, fmt.Errorf("%w: (%d,%d)", ErrOutOfBounds, p.X, p.Y)
		}
		if !gg.Passable(p) {
			return nil, fmt.Errorf("%w: (%d,%d)", ErrBlocked, p.X, p.Y)
		}
	}

	g := core.NewGraph()
	minCost := gg.minCellCost()
	for y := 0; y < gg.Height; y++ {
		for x := 0; x < gg.Width; x++ {
			u := Point{x, y}
			if !gg.Passable(u) {
				continue
			}
			if err := g.AddNode(u.ID()); err != nil {
				return nil, err
			}
			for _, d := range gg.NeighborOffsets() {
				v := Point{x + d[0], y + d[1]}
				if !gg.Passable(v) {
					continue
				}
				if err := g.AddEdge(u.ID(), v.ID(), gg.StepCost(v.X, v.Y, d[0], d[1])); err != nil {
					return nil, err
				}
			}
			if _, err := g.SetHeuristic(u.ID(), gg.estimate(u, goals, minCost)); err != nil {
				return nil, err
			}
		}
	}

	if err := g.SetStart(start.ID()); err != nil {
		return nil, err
	}
	for _, p := range goals {
		if err := g.AddGoal(p.ID()); err != nil {
			return nil, err
		}
	}

	return g, nil
}

// Distance is the obstacle-free lower bound on moves from a to b for
// connectivity conn, assuming every cell costs 1.
func Distance(conn Connectivity, a, b Point) float64 {
	dx := math.Abs(float64(a.X - b.X))
	dy := math.Abs(float64(a.Y - b.Y))
	if conn == Conn8 {
		return math.Max(dx, dy) + (math.Sqrt2-1)*math.Min(dx, dy)
	}

	return dx + dy
}

// HeuristicName labels the estimate used for conn in reports.
func HeuristicName(conn Connectivity) string {
	if conn == Conn8 {
		return "grid-octile"
	}

	return "grid-manhattan"
}

func (gg *GridGraph) estimate(p Point, goals []Point, minCost float64) float64 {
	best := math.Inf(1)
	for _, goal := range goals {
		best = math.Min(best, Distance(gg.Conn, p, goal))
	}

	if gg.Conn == Conn8 {
		best *= octileSlack
	}

	return best * minCost
}

// octileSlack shrinks irrational octile estimates so float rounding never
// lifts h(n) above h(m)+c(n,m) or above the true remaining cost.
const octileSlack = 1 - 1e-12

// minCellCost is the smallest positive cell value, or 0 when all are walls.
func (gg *GridGraph) minCellCost() float64 {
	m := 0
	for _, row := range gg.CellValues {
		for _, v := range row {
			if v > 0 && (m == 0 || v < m) {
				m = v
			}
		}
	}

	return float64(m)
}

// index maps (x,y) to a row-major index: y*Width + x.
func (gg *GridGraph) index(x, y int) int {
	return y*gg.Width + x
}

// Coordinate converts a row-major index back to (x,y).
func (gg *GridGraph) Coordinate(idx int) (x, y int) {
	return idx % gg.Width, idx / gg.Width
}
