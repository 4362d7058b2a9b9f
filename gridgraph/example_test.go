// SPDX-License-Identifier: MIT

package gridgraph_test

import (
	"fmt"
	"strings"

	"github.com/katalvlaran/lvsearch/gridgraph"
	"github.com/katalvlaran/lvsearch/search"
)

// ExampleParseGrid routes A* around a single wall on a 4-connected map.
func ExampleParseGrid() {
	m, err := gridgraph.ParseGrid("ring", strings.NewReader("S..\n.#.\n..G\n"), gridgraph.DefaultGridOptions())
	if err != nil {
		fmt.Println("error:", err)
		return
	}
	g, _ := m.ToCoreGraph()
	g.Freeze()

	res, _ := search.Find(search.AStar, g, g.Start(), nil, g.IsGoal)
	fmt.Println("states:", g.NodeCount(), "components:", len(m.Grid.ConnectedComponents()))
	fmt.Printf("%s %s cost=%.1f visited=%d\n",
		res.Algorithm, strings.Join(res.Path, " => "), res.TotalCost, res.StatesVisited)

	// Output:
	// states: 8 components: 1
	// ASTAR 0,0 => 1,0 => 2,0 => 2,1 => 2,2 cost=4.0 visited=8
}
