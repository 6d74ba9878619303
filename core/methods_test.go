// Package core_test verifies core.Graph method-level contracts.
package core_test

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/bfsroute/core"
)

func TestGraph_AddVertex(t *testing.T) {
	g := core.NewGraph()

	assert.ErrorIs(t, g.AddVertex(""), core.ErrEmptyVertexID)

	require.NoError(t, g.AddVertex("A"))
	require.NoError(t, g.AddVertex("A")) // idempotent
	assert.True(t, g.HasVertex("A"))
	assert.False(t, g.HasVertex("B"))
	assert.Equal(t, 1, g.VertexCount())
	assert.Empty(t, g.Neighbors("A"))
}

func TestGraph_AddEdge_Validation(t *testing.T) {
	cases := []struct {
		name     string
		opts     []core.GraphOption
		from, to string
		w        float64
		want     error
	}{
		{"empty from", nil, "", "B", 0, core.ErrEmptyVertexID},
		{"empty to", nil, "A", "", 0, core.ErrEmptyVertexID},
		{"weight on unweighted", nil, "A", "B", 3, core.ErrBadWeight},
		{"negative", []core.GraphOption{core.WithWeighted()}, "A", "B", -1, core.ErrNegativeWeight},
		{"nan", []core.GraphOption{core.WithWeighted()}, "A", "B", math.NaN(), core.ErrBadWeight},
		{"inf", []core.GraphOption{core.WithWeighted()}, "A", "B", math.Inf(1), core.ErrBadWeight},
		{"loop", nil, "A", "A", 0, core.ErrLoopNotAllowed},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			g := core.NewGraph(tc.opts...)
			assert.ErrorIs(t, g.AddEdge(tc.from, tc.to, tc.w), tc.want)
			assert.Zero(t, g.EdgeCount())
		})
	}
}

func TestGraph_MultiEdges(t *testing.T) {
	g := core.NewGraph(core.WithDirected(true), core.WithWeighted())
	require.NoError(t, g.AddEdge("A", "B", 1))
	assert.ErrorIs(t, g.AddEdge("A", "B", 2), core.ErrMultiEdgeNotAllowed)

	m := core.NewGraph(core.WithDirected(true), core.WithWeighted(), core.WithMultiEdges())
	require.NoError(t, m.AddEdge("A", "B", 5))
	require.NoError(t, m.AddEdge("A", "B", 2))
	assert.Len(t, m.Neighbors("A"), 2)

	// first listed edge wins
	w, err := m.Weight("A", "B")
	require.NoError(t, err)
	assert.Equal(t, 5.0, w)
}

func TestGraph_NeighborsOrder(t *testing.T) {
	g := core.NewGraph(core.WithDirected(true), core.WithWeighted())
	for i, to := range []string{"9", "10", "2", "1"} {
		require.NoError(t, g.AddEdge("S", to, float64(i)))
	}

	var got []string
	for _, e := range g.Neighbors("S") {
		assert.Equal(t, "S", e.From)
		got = append(got, e.To)
	}
	assert.Equal(t, []string{"9", "10", "2", "1"}, got, "insertion order, not lexical")
}

func TestGraph_NeighborsUnknownVertex(t *testing.T) {
	g := core.NewGraph()
	assert.Empty(t, g.Neighbors("ghost"))
	assert.Empty(t, g.Neighbors(""))
}

func TestGraph_NeighborsIsCopy(t *testing.T) {
	g := core.NewGraph(core.WithWeighted())
	require.NoError(t, g.AddEdge("A", "B", 4))

	nbs := g.Neighbors("A")
	nbs[0].Weight = 100
	nbs[0].To = "Z"

	w, err := g.Weight("A", "B")
	require.NoError(t, err)
	assert.Equal(t, 4.0, w)
}

func TestGraph_UndirectedMirror(t *testing.T) {
	g := core.NewGraph(core.WithWeighted())
	require.NoError(t, g.AddEdge("A", "B", 7))

	assert.True(t, g.HasEdge("A", "B"))
	assert.True(t, g.HasEdge("B", "A"))
	assert.Equal(t, []core.Edge{{From: "B", To: "A", Weight: 7}}, g.Neighbors("B"))
	assert.Equal(t, 1, g.EdgeCount())
	assert.Len(t, g.Edges(), 2)
}

func TestGraph_DirectedNoMirror(t *testing.T) {
	g := core.NewGraph(core.WithDirected(true), core.WithWeighted())
	require.NoError(t, g.AddEdge("A", "B", 7))

	assert.True(t, g.Directed())
	assert.True(t, g.HasEdge("A", "B"))
	assert.False(t, g.HasEdge("B", "A"))
	assert.True(t, g.HasVertex("B"), "endpoint created even without outgoing edges")
	assert.Empty(t, g.Neighbors("B"))
}

func TestGraph_LoopsStoredOnce(t *testing.T) {
	g := core.NewGraph(core.WithLoops())
	require.NoError(t, g.AddEdge("A", "A", 0))
	assert.Len(t, g.Neighbors("A"), 1)
}

func TestGraph_Weight(t *testing.T) {
	g := core.NewGraph(core.WithDirected(true), core.WithWeighted())
	require.NoError(t, g.AddEdge("A", "B", 2.5))

	w, err := g.Weight("A", "B")
	require.NoError(t, err)
	assert.Equal(t, 2.5, w)

	_, err = g.Weight("B", "A")
	assert.ErrorIs(t, err, core.ErrEdgeNotFound)
	assert.Contains(t, err.Error(), `"B"→"A"`)

	_, err = g.Weight("nope", "A")
	assert.ErrorIs(t, err, core.ErrEdgeNotFound)
}

func TestGraph_VerticesAndEdgesDeterministic(t *testing.T) {
	g := core.NewGraph(core.WithDirected(true))
	require.NoError(t, g.AddEdge("c", "a", 0))
	require.NoError(t, g.AddEdge("a", "c", 0))
	require.NoError(t, g.AddEdge("a", "b", 0))

	assert.Equal(t, []string{"a", "b", "c"}, g.Vertices())
	assert.Equal(t, []core.Edge{
		{From: "a", To: "c"},
		{From: "a", To: "b"},
		{From: "c", To: "a"},
	}, g.Edges())
	assert.False(t, g.Weighted())
}
