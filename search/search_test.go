// SPDX-License-Identifier: MIT

// Package search_test covers the shared protocol, each strategy's duplicate
// policy and tie-breaking, and the result contract.
package search_test

import (
	"context"
	"fmt"
	"math"
	"math/rand"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/lvsearch/core"
	"github.com/katalvlaran/lvsearch/search"
)

const eps = 1e-9

// edge is a compact fixture literal.
type edge struct {
	from, to string
	cost     float64
}

// buildGraph assembles a frozen graph from fixtures.
func buildGraph(t *testing.T, start string, goals []string, edges []edge, h map[string]float64) *core.Graph {
	t.Helper()
	g := core.NewGraph()
	require.NoError(t, g.SetStart(start))
	for _, id := range goals {
		require.NoError(t, g.AddGoal(id))
	}
	for _, e := range edges {
		require.NoError(t, g.AddEdge(e.from, e.to, e.cost))
	}
	for id, v := range h {
		_, err := g.SetHeuristic(id, v)
		require.NoError(t, err)
	}
	g.Freeze()

	return g
}

// triangle is A→B(1), B→C(2), A→C(4) with h(A)=3, h(B)=2, h(C)=0.
func triangle(t *testing.T) *core.Graph {
	return buildGraph(t, "A", []string{"C"},
		[]edge{{"A", "B", 1}, {"B", "C", 2}, {"A", "C", 4}},
		map[string]float64{"A": 3, "B": 2, "C": 0})
}

func find(t *testing.T, alg search.Algorithm, g *core.Graph) *search.Result {
	t.Helper()
	res, err := search.Find(alg, g, g.Start(), nil, g.IsGoal)
	require.NoError(t, err)
	require.NotNil(t, res)

	return res
}

func TestParse(t *testing.T) {
	cases := map[string]search.Algorithm{
		"bfs":   search.BreadthFirst,
		"ucs":   search.UniformCost,
		"astar": search.AStar,
	}
	for tag, want := range cases {
		got, ok := search.Parse(tag)
		assert.True(t, ok, tag)
		assert.Equal(t, want, got, tag)
	}
	for _, tag := range []string{"", "BFS", "dfs", "a*"} {
		_, ok := search.Parse(tag)
		assert.False(t, ok, tag)
	}
	assert.Equal(t, "BFS", search.BreadthFirst.String())
	assert.Equal(t, "UCS", search.UniformCost.String())
	assert.Equal(t, "ASTAR", search.AStar.String())
	assert.Equal(t, "", search.Algorithm(0).String())
}

func TestFind_Validation(t *testing.T) {
	g := triangle(t)
	_, err := search.Find(search.UniformCost, nil, "A", nil, g.IsGoal)
	assert.ErrorIs(t, err, search.ErrNilModel)
	_, err = search.Find(search.UniformCost, g, "", nil, g.IsGoal)
	assert.ErrorIs(t, err, search.ErrEmptyStart)
	_, err = search.Find(search.UniformCost, g, "A", nil, nil)
	assert.ErrorIs(t, err, search.ErrNilGoal)
	_, err = search.Find(search.Algorithm(42), g, "A", nil, g.IsGoal)
	assert.ErrorIs(t, err, search.ErrUnknownAlgorithm)
}

func TestRun_UnknownTagYieldsEmptyResult(t *testing.T) {
	g := triangle(t)
	res, err := search.Run("dijkstra", g, g.Start(), nil, g.IsGoal)
	require.NoError(t, err)
	assert.Equal(t, &search.Result{}, res)
	assert.Zero(t, res.PathLength())
}

func TestTriangle_UniformCost(t *testing.T) {
	res := find(t, search.UniformCost, triangle(t))
	assert.Equal(t, "UCS", res.Algorithm)
	assert.True(t, res.Found)
	assert.Equal(t, []string{"A", "B", "C"}, res.Path)
	assert.Equal(t, 3, res.PathLength())
	assert.InDelta(t, 3.0, res.TotalCost, eps)
	// A and B are closed before C is removed: 2 + 1.
	assert.Equal(t, 3, res.StatesVisited)
}

func TestTriangle_AStar(t *testing.T) {
	res := find(t, search.AStar, triangle(t))
	assert.Equal(t, "ASTAR", res.Algorithm)
	assert.True(t, res.Found)
	assert.Equal(t, []string{"A", "B", "C"}, res.Path)
	assert.InDelta(t, 3.0, res.TotalCost, eps)
	assert.Equal(t, 3, res.StatesVisited)
}

func TestTriangle_BreadthFirst(t *testing.T) {
	res := find(t, search.BreadthFirst, triangle(t))
	assert.Equal(t, "BFS", res.Algorithm)
	assert.True(t, res.Found)
	assert.Equal(t, []string{"A", "C"}, res.Path)
	assert.InDelta(t, 4.0, res.TotalCost, eps)
	// A, then B are dequeued and closed before C.
	assert.Equal(t, 3, res.StatesVisited)
}

func TestStartIsGoal(t *testing.T) {
	g := buildGraph(t, "A", []string{"A"}, []edge{{"A", "B", 5}}, nil)
	for _, alg := range []search.Algorithm{search.BreadthFirst, search.UniformCost, search.AStar} {
		res := find(t, alg, g)
		assert.True(t, res.Found, alg.String())
		assert.Equal(t, []string{"A"}, res.Path, alg.String())
		assert.Zero(t, res.TotalCost, alg.String())
		assert.Equal(t, 1, res.StatesVisited, alg.String())
	}
}

func TestUnreachableGoal(t *testing.T) {
	g := buildGraph(t, "A", []string{"Z"}, []edge{{"A", "B", 1}, {"B", "A", 1}, {"Y", "Z", 1}}, nil)
	for _, alg := range []search.Algorithm{search.BreadthFirst, search.UniformCost, search.AStar} {
		res := find(t, alg, g)
		assert.False(t, res.Found, alg.String())
		assert.Empty(t, res.Path, alg.String())
		assert.Zero(t, res.PathLength(), alg.String())
		assert.Zero(t, res.TotalCost, alg.String())
		assert.Equal(t, 2, res.StatesVisited, alg.String())
	}
}

func TestUniformCost_TieBreakByID(t *testing.T) {
	g := buildGraph(t, "S", []string{"G"},
		[]edge{{"S", "B", 1}, {"S", "A", 1}, {"A", "G", 1}, {"B", "G", 1}}, nil)

	var order []string
	res, err := search.Find(search.UniformCost, g, "S", nil, g.IsGoal,
		search.WithOnExpand(func(id string, _ float64) { order = append(order, id) }))
	require.NoError(t, err)
	assert.Equal(t, []string{"S", "A", "B"}, order)
	assert.Equal(t, []string{"S", "A", "G"}, res.Path)
	assert.Equal(t, 4, res.StatesVisited)
}

func TestUniformCost_PrefersCheaperLongerPath(t *testing.T) {
	g := buildGraph(t, "S", []string{"G"},
		[]edge{{"S", "G", 10}, {"S", "A", 1}, {"A", "B", 1}, {"B", "G", 1}}, nil)
	res := find(t, search.UniformCost, g)
	assert.Equal(t, []string{"S", "A", "B", "G"}, res.Path)
	assert.InDelta(t, 3.0, res.TotalCost, eps)
}

func TestAStar_ReplaceOnTieFavoursLaterPath(t *testing.T) {
	g := buildGraph(t, "S", []string{"G"},
		[]edge{{"S", "A", 1}, {"S", "B", 1}, {"A", "G", 1}, {"B", "G", 1}}, nil)
	res := find(t, search.AStar, g)
	assert.Equal(t, []string{"S", "B", "G"}, res.Path)
	assert.InDelta(t, 2.0, res.TotalCost, eps)
	assert.Equal(t, 4, res.StatesVisited)
}

func TestAStar_ReopensClosedState(t *testing.T) {
	// h(B)=3 overestimates B→A→G, so A is closed through the expensive
	// edge S→A before the cheaper route via B is discovered.
	g := buildGraph(t, "S", []string{"G"},
		[]edge{{"S", "A", 4}, {"S", "B", 1}, {"B", "A", 1}, {"A", "G", 1}},
		map[string]float64{"B": 3})

	var order []string
	res, err := search.Find(search.AStar, g, "S", nil, g.IsGoal,
		search.WithOnExpand(func(id string, _ float64) { order = append(order, id) }))
	require.NoError(t, err)
	assert.Equal(t, []string{"S", "A", "B", "A"}, order)
	assert.Equal(t, []string{"S", "B", "A", "G"}, res.Path)
	assert.InDelta(t, 3.0, res.TotalCost, eps)
	assert.Equal(t, 4, res.StatesVisited)
}

func TestAStar_ZeroCostCycleTerminates(t *testing.T) {
	g := buildGraph(t, "A", []string{"C"}, []edge{{"A", "B", 0}, {"B", "A", 0}, {"A", "A", 0}}, nil)
	res := find(t, search.AStar, g)
	assert.False(t, res.Found)
	assert.Equal(t, 2, res.StatesVisited)
}

func TestAStar_ZeroCostCyclesThroughReopenedStates(t *testing.T) {
	// 0→1→2→0 and 0→5→1 are zero-cost; reopening 1 and 0 must not recurse.
	g := buildGraph(t, "0", []string{"X"}, []edge{
		{"0", "1", 0}, {"0", "5", 0}, {"1", "2", 0}, {"2", "0", 0}, {"2", "4", 0},
		{"3", "4", 1}, {"4", "3", 1}, {"4", "5", 0}, {"4", "6", 1}, {"5", "1", 0},
		{"5", "3", 1}, {"6", "1", 1}, {"6", "5", 1},
	}, nil)

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	res, err := search.Find(search.AStar, g, g.Start(), nil, g.IsGoal, search.WithContext(ctx))
	require.NoError(t, err)
	assert.False(t, res.Found)
	assert.Equal(t, 7, res.StatesVisited)
}

func TestAStar_RandomZeroOneCostsTerminate(t *testing.T) {
	const nodes = 7
	r := rand.New(rand.NewSource(97))
	id := func(i int) string { return fmt.Sprintf("%d", i) }

	for trial := 0; trial < 3000; trial++ {
		g := core.NewGraph()
		require.NoError(t, g.SetStart(id(0)))
		goal := "X"
		if trial%2 == 0 {
			goal = id(nodes - 1)
		}
		require.NoError(t, g.AddGoal(goal))
		for i := 0; i < nodes; i++ {
			for j := 0; j < nodes; j++ {
				if i != j && r.Float64() < 0.3 {
					require.NoError(t, g.AddEdge(id(i), id(j), float64(r.Intn(2))))
				}
			}
		}
		g.Freeze()

		ctx, cancel := context.WithTimeout(context.Background(), 2*time.Second)
		astar, err := search.Find(search.AStar, g, g.Start(), nil, g.IsGoal, search.WithContext(ctx))
		cancel()
		require.NoError(t, err, "trial %d", trial)
		ucs := find(t, search.UniformCost, g)

		require.Equal(t, ucs.Found, astar.Found, "trial %d", trial)
		assert.LessOrEqual(t, astar.StatesVisited, nodes+1, "trial %d", trial)
		assert.InDelta(t, ucs.TotalCost, astar.TotalCost, eps, "trial %d", trial)
	}
}

func TestSortedSuccessorsOverridesModelOrder(t *testing.T) {
	g := buildGraph(t, "S", []string{"G"}, []edge{{"S", "A", 1}, {"S", "B", 1}, {"A", "G", 1}, {"B", "G", 1}}, nil)
	reversed := func(id string) []core.Edge {
		es := g.Successors(id)
		for i, j := 0, len(es)-1; i < j; i, j = i+1, j-1 {
			es[i], es[j] = es[j], es[i]
		}
		return es
	}

	res, err := search.Find(search.BreadthFirst, g, "S", reversed, g.IsGoal)
	require.NoError(t, err)
	assert.Equal(t, []string{"S", "B", "G"}, res.Path)

	res, err = search.Find(search.BreadthFirst, g, "S", search.SortedSuccessors(g), g.IsGoal)
	require.NoError(t, err)
	assert.Equal(t, []string{"S", "A", "G"}, res.Path)
}

func TestFind_Cancelled(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	g := triangle(t)
	_, err := search.Find(search.UniformCost, g, "A", nil, g.IsGoal, search.WithContext(ctx))
	assert.ErrorIs(t, err, context.Canceled)
}

func TestFind_DoesNotMutateModel(t *testing.T) {
	g := triangle(t)
	before := g.Edges()
	for _, alg := range []search.Algorithm{search.BreadthFirst, search.UniformCost, search.AStar} {
		_ = find(t, alg, g)
	}
	assert.Equal(t, before, g.Edges())
	assert.Equal(t, 3.0, g.Heuristic("A"))
}

func TestPathCost(t *testing.T) {
	g := triangle(t)
	c, ok := search.PathCost(g, []string{"A", "B", "C"})
	assert.True(t, ok)
	assert.InDelta(t, 3.0, c, eps)

	c, ok = search.PathCost(g, []string{"A"})
	assert.True(t, ok)
	assert.Zero(t, c)

	_, ok = search.PathCost(g, []string{"C", "A"})
	assert.False(t, ok)
}

// randomGraph builds a reproducible directed graph on n nodes.
func randomGraph(t *testing.T, seed int64, n int, density float64) *core.Graph {
	t.Helper()
	r := rand.New(rand.NewSource(seed))
	g := core.NewGraph()
	id := func(i int) string { return fmt.Sprintf("N%02d", i) }
	for i := 0; i < n; i++ {
		require.NoError(t, g.AddNode(id(i)))
	}
	for i := 0; i < n; i++ {
		for j := 0; j < n; j++ {
			if i != j && r.Float64() < density {
				require.NoError(t, g.AddEdge(id(i), id(j), float64(r.Intn(20))/2))
			}
		}
	}
	require.NoError(t, g.SetStart(id(0)))
	require.NoError(t, g.AddGoal(id(n-1)))
	if r.Intn(2) == 0 {
		require.NoError(t, g.AddGoal(id(n/2)))
	}

	return g
}

func TestProperties_RandomGraphs(t *testing.T) {
	for seed := int64(1); seed <= 40; seed++ {
		g := randomGraph(t, seed, 12, 0.2)

		bfs := find(t, search.BreadthFirst, g)
		ucs := find(t, search.UniformCost, g)
		require.Equal(t, bfs.Found, ucs.Found, "seed %d", seed)

		// Optimal cost lower-bounds every path BFS may return.
		if ucs.Found {
			assert.LessOrEqual(t, ucs.TotalCost, bfs.TotalCost+eps, "seed %d", seed)
		}

		// Reported cost equals the true cost along the path.
		for _, res := range []*search.Result{bfs, ucs} {
			c, ok := search.PathCost(g, res.Path)
			require.True(t, ok, "seed %d", seed)
			assert.InDelta(t, res.TotalCost, c, eps, "seed %d %s", seed, res.Algorithm)
		}

		// Idempotence.
		again := find(t, search.UniformCost, g)
		assert.Equal(t, ucs, again, "seed %d", seed)
	}
}

func TestProperties_AdmissibleAStarIsOptimal(t *testing.T) {
	for seed := int64(1); seed <= 40; seed++ {
		base := randomGraph(t, seed, 10, 0.25)

		// Rebuild with h(n) = 0.5·h*(n), admissible by construction.
		g := core.NewGraph()
		require.NoError(t, g.SetStart(base.Start()))
		for _, id := range base.Goals() {
			require.NoError(t, g.AddGoal(id))
		}
		for _, e := range base.Edges() {
			require.NoError(t, g.AddEdge(e.From, e.To, e.Cost))
		}
		for _, id := range base.Nodes() {
			require.NoError(t, g.AddNode(id))
			res, err := search.Find(search.UniformCost, base, id, nil, base.IsGoal)
			require.NoError(t, err)
			if res.Found {
				_, err = g.SetHeuristic(id, res.TotalCost/2)
				require.NoError(t, err)
			}
		}

		ucs := find(t, search.UniformCost, g)
		astar := find(t, search.AStar, g)
		require.Equal(t, ucs.Found, astar.Found, "seed %d", seed)
		assert.True(t, math.Abs(ucs.TotalCost-astar.TotalCost) < eps,
			"seed %d: ucs=%v astar=%v", seed, ucs.TotalCost, astar.TotalCost)
	}
}
