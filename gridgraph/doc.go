// SPDX-License-Identifier: MIT

// Package gridgraph treats a 2D cost map as a search state space.
//
// What:
//
//   - GridGraph wraps a rectangular [][]int grid. A cell value ≤ 0 is a wall;
//     a positive value is the cost of entering that cell.
//
//   - ToCoreGraph emits a *core.Graph whose states are passable cells ("x,y"),
//     with start, goals and an admissible, consistent distance heuristic.
//
//   - ConnectedComponents labels islands of passable cells, so callers can tell
//     up front whether any goal is reachable from the start.
//
//   - ParseGrid reads the text map format:
//
//     #  wall            .  cost 1
//     S  start (cost 1)  G  goal (cost 1)
//     1-9  cost of entering the cell
//
// Moves:
//
//   - Conn4: N, E, S, W. Entering cell c costs value(c).
//   - Conn8: adds diagonals. A diagonal step costs value(c)·√2.
//
// Heuristic (minimum over all goals, scaled by the cheapest cell cost m):
//
//   - Conn4: m·(|dx|+|dy|)                     (Manhattan)
//   - Conn8: m·(max(dx,dy) + (√2−1)·min(dx,dy)) (octile)
//
// Complexity:
//
//   - ToCoreGraph:         O(W×H×d), d = 4 or 8, times the goal count for h.
//   - ConnectedComponents: O(W×H×d), Memory: O(W×H).
//
// Errors:
//
//   - ErrEmptyGrid, ErrNonRectangular: malformed input slice.
//   - ErrOutOfBounds, ErrBlocked: start or goal is not a passable cell.
//   - ErrNoGoal: ToCoreGraph called without goals.
//   - ErrParse: malformed text map (wrapped with source:line).
package gridgraph
