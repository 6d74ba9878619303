package bfs_test

import (
	"context"
	"errors"
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/bfsroute/bfs"
	"github.com/katalvlaran/bfsroute/core"
	"github.com/katalvlaran/bfsroute/dataset"
)

func TestSearch_CityScenarios(t *testing.T) {
	g := dataset.Cities()

	cases := []struct {
		name        string
		start, goal string
		path        []string
		cost        float64
	}{
		{"default route", "1", "11", []string{"1", "2", "7", "11"}, 219 + 365 + 214},
		{"start is goal", "1", "1", []string{"1"}, 0},
		{"one-way city leaves", "21", "11", []string{"21", "16", "9", "7", "11"}, 999},
		{"reverse route", "11", "1", []string{"11", "7", "2", "1"}, 798},
		{"four hops", "1", "13", []string{"1", "2", "7", "12", "13"}, 1091},
		{"unknown start is its own goal", "99", "99", []string{"99"}, 0},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			res, err := bfs.Search(g, bfs.Problem{Initial: tc.start, Goal: tc.goal})
			require.NoError(t, err)
			require.True(t, res.Found())
			assert.Equal(t, tc.path, res.Path)
			assert.Equal(t, tc.cost, res.Cost)
			assert.Equal(t, len(tc.path)-1, res.Hops())
		})
	}
}

func TestSearch_Unreachable(t *testing.T) {
	g := dataset.Cities()

	for _, p := range []bfs.Problem{
		{Initial: "1", Goal: "21"},  // nothing enters 21
		{Initial: "1", Goal: "404"}, // goal not in graph
		{Initial: "404", Goal: "1"}, // unknown start has no neighbors
	} {
		res, err := bfs.Search(g, p)
		require.NoError(t, err, "unreachable is not an error")
		assert.False(t, res.Found())
		assert.Nil(t, res.Path)
		assert.True(t, math.IsInf(res.Cost, 1))
		assert.Equal(t, -1, res.Hops())
	}
}

func TestSearch_UnreachableIsDeterministic(t *testing.T) {
	g := dataset.Cities()
	first, err := bfs.Search(g, bfs.Problem{Initial: "1", Goal: "21"})
	require.NoError(t, err)
	for i := 0; i < 5; i++ {
		again, err := bfs.Search(g, bfs.Problem{Initial: "1", Goal: "21"})
		require.NoError(t, err)
		assert.Equal(t, first, again)
	}
	assert.Len(t, first.Reached, 20)
	assert.Equal(t, 20, first.Expanded)
}

// TestSearch_Properties checks, for every ordered pair of cities, that a
// found path starts and ends correctly, is hop-minimal, and that Cost is
// the weight of the returned path.
func TestSearch_Properties(t *testing.T) {
	g := dataset.Cities()
	for _, start := range g.Vertices() {
		tree, err := bfs.BFS(g, start)
		require.NoError(t, err)

		for _, goal := range g.Vertices() {
			res, err := bfs.Search(g, bfs.Problem{Initial: start, Goal: goal})
			require.NoError(t, err)

			depth, reachable := tree.Depth[goal]
			if !reachable {
				assert.False(t, res.Found(), "%s→%s", start, goal)
				assert.True(t, math.IsInf(res.Cost, 1))
				continue
			}
			require.True(t, res.Found(), "%s→%s", start, goal)
			assert.Equal(t, start, res.Path[0])
			assert.Equal(t, goal, res.Path[len(res.Path)-1])
			assert.Equal(t, depth, res.Hops(), "%s→%s hop count", start, goal)

			cost, err := bfs.PathCost(g, res.Path)
			require.NoError(t, err)
			assert.Equal(t, cost, res.Cost, "%s→%s cost", start, goal)
		}
	}
}

// TestSearch_CostIsNotMinimumWeight pins the documented limitation: the
// fewest-hop path wins even when a longer one is cheaper.
func TestSearch_CostIsNotMinimumWeight(t *testing.T) {
	g := core.NewGraph(core.WithDirected(true), core.WithWeighted())
	require.NoError(t, g.AddEdge("A", "B", 10))
	require.NoError(t, g.AddEdge("A", "C", 1))
	require.NoError(t, g.AddEdge("B", "D", 1))
	require.NoError(t, g.AddEdge("C", "E", 1))
	require.NoError(t, g.AddEdge("E", "D", 1))

	res, err := bfs.Search(g, bfs.Problem{Initial: "A", Goal: "D"})
	require.NoError(t, err)
	assert.Equal(t, []string{"A", "B", "D"}, res.Path)
	assert.Equal(t, 11.0, res.Cost)

	cheaper, err := bfs.PathCost(g, []string{"A", "C", "E", "D"})
	require.NoError(t, err)
	assert.Less(t, cheaper, res.Cost)
}

// TestSearch_FirstVisitWins checks the reached set keeps the discovery
// cost even when a later parent would be cheaper.
func TestSearch_FirstVisitWins(t *testing.T) {
	g := core.NewGraph(core.WithDirected(true), core.WithWeighted())
	require.NoError(t, g.AddEdge("S", "A", 1))
	require.NoError(t, g.AddEdge("S", "B", 1))
	require.NoError(t, g.AddEdge("A", "X", 50))
	require.NoError(t, g.AddEdge("B", "X", 2))
	require.NoError(t, g.AddEdge("X", "G", 3))

	res, err := bfs.Search(g, bfs.Problem{Initial: "S", Goal: "G"})
	require.NoError(t, err)
	assert.Equal(t, []string{"S", "A", "X", "G"}, res.Path)
	assert.Equal(t, 54.0, res.Cost)
	assert.Equal(t, 51.0, res.Reached["X"])
}

func TestSearch_GoalTestPredicate(t *testing.T) {
	g := dataset.Cities()
	// first city with a two-digit label, in BFS order from 1
	res, err := bfs.Search(g, bfs.Problem{
		Initial:  "1",
		GoalTest: func(s string) bool { return len(s) == 2 },
	})
	require.NoError(t, err)
	assert.Equal(t, []string{"1", "2", "6", "10"}, res.Path)
	assert.Equal(t, 860.0, res.Cost)
}

func TestSearch_Errors(t *testing.T) {
	_, err := bfs.Search(nil, bfs.Problem{Initial: "A", Goal: "B"})
	assert.ErrorIs(t, err, bfs.ErrGraphNil)

	g := dataset.Cities()
	_, err = bfs.Search(g, bfs.Problem{Initial: "1", Goal: "11"}, bfs.WithMaxDepth(-3))
	assert.ErrorIs(t, err, bfs.ErrOptionViolation)
}

func TestSearch_MaxDepth(t *testing.T) {
	g := dataset.Cities()

	res, err := bfs.Search(g, bfs.Problem{Initial: "1", Goal: "11"}, bfs.WithMaxDepth(2))
	require.NoError(t, err)
	assert.False(t, res.Found())

	res, err = bfs.Search(g, bfs.Problem{Initial: "1", Goal: "11"}, bfs.WithMaxDepth(3))
	require.NoError(t, err)
	assert.Equal(t, []string{"1", "2", "7", "11"}, res.Path)
}

func TestSearch_FilterNeighbor(t *testing.T) {
	g := dataset.Cities()
	closed := func(curr, nbr string) bool { return !(curr == "7" && nbr == "11") }

	res, err := bfs.Search(g, bfs.Problem{Initial: "1", Goal: "11"}, bfs.WithFilterNeighbor(closed))
	require.NoError(t, err)
	assert.Equal(t, []string{"1", "2", "6", "10", "11"}, res.Path)
	assert.Equal(t, 219.0+287+354+124, res.Cost)
}

func TestSearch_Hooks(t *testing.T) {
	g := dataset.Cities()
	var enq, deq []string

	res, err := bfs.Search(g, bfs.Problem{Initial: "1", Goal: "11"},
		bfs.WithOnEnqueue(func(id string, _ int) { enq = append(enq, id) }),
		bfs.WithOnDequeue(func(id string, _ int) { deq = append(deq, id) }),
	)
	require.NoError(t, err)
	assert.Equal(t, []string{"1", "2", "3", "4", "5", "6", "7"}, deq)
	assert.Equal(t, []string{"1", "2", "3", "4", "5", "6", "7", "8", "9", "10"}, enq)
	assert.Equal(t, 7, res.Expanded)
	assert.Len(t, res.Reached, 11)
}

func TestSearch_VisitError(t *testing.T) {
	g := dataset.Cities()
	stop := errors.New("stop")

	res, err := bfs.Search(g, bfs.Problem{Initial: "1", Goal: "11"},
		bfs.WithOnVisit(func(id string, d int) error {
			if d == 1 {
				return stop
			}
			return nil
		}),
	)
	assert.Nil(t, res)
	assert.ErrorIs(t, err, stop)
}

func TestSearch_Cancellation(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := bfs.Search(dataset.Cities(), bfs.Problem{Initial: "1", Goal: "11"}, bfs.WithContext(ctx))
	assert.ErrorIs(t, err, context.Canceled)

	// the start==goal short-circuit never reaches the loop
	res, err := bfs.Search(dataset.Cities(), bfs.Problem{Initial: "1", Goal: "1"}, bfs.WithContext(ctx))
	require.NoError(t, err)
	assert.Equal(t, []string{"1"}, res.Path)
}

func TestPathCost(t *testing.T) {
	g := dataset.Cities()

	for _, p := range [][]string{nil, {"1"}} {
		c, err := bfs.PathCost(g, p)
		require.NoError(t, err)
		assert.Zero(t, c)
	}

	c, err := bfs.PathCost(g, []string{"1", "2", "7", "11"})
	require.NoError(t, err)
	assert.Equal(t, 798.0, c)

	_, err = bfs.PathCost(g, []string{"1", "2", "11"})
	assert.ErrorIs(t, err, core.ErrEdgeNotFound)
	assert.Contains(t, err.Error(), "hop 2")

	_, err = bfs.PathCost(nil, []string{"1"})
	assert.ErrorIs(t, err, bfs.ErrGraphNil)
}
