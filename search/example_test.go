// SPDX-License-Identifier: MIT

package search_test

import (
	"fmt"

	"github.com/katalvlaran/lvsearch/core"
	"github.com/katalvlaran/lvsearch/search"
)

// ExampleRun compares the three strategies on a small weighted graph.
func ExampleRun() {
	g := core.NewGraph()
	_ = g.SetStart("A")
	_ = g.AddGoal("C")
	_ = g.AddEdge("A", "B", 1)
	_ = g.AddEdge("B", "C", 2)
	_ = g.AddEdge("A", "C", 4)
	_, _ = g.SetHeuristic("A", 3)
	_, _ = g.SetHeuristic("B", 2)
	g.Freeze()

	for _, tag := range []string{"bfs", "ucs", "astar"} {
		res, err := search.Run(tag, g, g.Start(), nil, g.IsGoal)
		if err != nil {
			fmt.Println("error:", err)
			return
		}
		fmt.Printf("%s %v visited=%d cost=%.1f\n", res.Algorithm, res.Path, res.StatesVisited, res.TotalCost)
	}

	// Output:
	// BFS [A C] visited=3 cost=4.0
	// UCS [A B C] visited=3 cost=3.0
	// ASTAR [A B C] visited=3 cost=3.0
}
