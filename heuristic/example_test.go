// SPDX-License-Identifier: MIT

package heuristic_test

import (
	"fmt"

	"github.com/katalvlaran/lvsearch/core"
	"github.com/katalvlaran/lvsearch/heuristic"
)

// ExampleCheckConsistent flags the one edge that breaks the triangle inequality.
func ExampleCheckConsistent() {
	g := core.NewGraph()
	_ = g.SetStart("A")
	_ = g.AddGoal("C")
	_ = g.AddEdge("A", "B", 1)
	_ = g.AddEdge("B", "C", 2)
	_, _ = g.SetHeuristic("A", 4)
	_, _ = g.SetHeuristic("B", 2)
	g.Freeze()

	rep, err := heuristic.CheckConsistent(g)
	if err != nil {
		fmt.Println("error:", err)
		return
	}
	for _, c := range rep.Conditions {
		fmt.Printf("%s→%s ok=%v\n", c.From, c.To, c.OK)
	}
	fmt.Println("consistent:", rep.Consistent)

	// Output:
	// A→B ok=false
	// B→C ok=true
	// consistent: false
}
