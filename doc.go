// SPDX-License-Identifier: MIT

// Package lvsearch is an in-memory engine for searching weighted state spaces
// and checking the heuristics used to guide that search.
//
// 🚀 What is inside?
//
//	core/         thread-safe, freezable state space: states, transitions, start, goals, h(n)
//	search/       BFS, uniform-cost and A* behind one call: search.Find / search.Run
//	heuristic/    optimism (h ≤ h*) and consistency (h(n) ≤ h(m) + c) verification
//	loader/       text formats for state spaces and heuristic tables
//	gridgraph/    2D cost maps turned into state spaces with distance heuristics
//	report/       the line-oriented result format
//	cmd/lvsearch  command line front end
//
// Determinism: successors are expanded in ascending state-ID order. BFS is
// FIFO, uniform-cost breaks cost ties by state ID and then insertion order,
// and A* breaks estimate ties by insertion order, so a run is reproducible
// byte for byte.
//
// Quick example:
//
//	g := core.NewGraph()
//	_ = g.SetStart("A")
//	_ = g.AddGoal("C")
//	_ = g.AddEdge("A", "B", 1)
//	_ = g.AddEdge("B", "C", 2)
//	g.Freeze()
//
//	res, _ := search.Run("ucs", g, g.Start(), nil, g.IsGoal)
//	// res.Path == [A B C], res.TotalCost == 3
package lvsearch
