package core_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/KunjBhawsar/Graph-Algorithm-Visualiser/core"
)

// TestGraph_AddVertex covers empty, duplicate and bounded inserts.
func TestGraph_AddVertex(t *testing.T) {
	g := core.NewGraph(core.WithMaxVertices(2))

	require.NoError(t, g.AddVertex("A"))
	assert.ErrorIs(t, g.AddVertex(""), core.ErrEmptyVertexID)
	assert.ErrorIs(t, g.AddVertex("A"), core.ErrDuplicateVertex)
	require.NoError(t, g.AddVertex("B"))
	assert.ErrorIs(t, g.AddVertex("C"), core.ErrNodeCount)

	assert.Equal(t, []string{"A", "B"}, g.Vertices())
	assert.Equal(t, 2, g.VertexCount())
	assert.True(t, g.HasVertex("B"))
	assert.False(t, g.HasVertex(""))
}

// TestGraph_AddEdgeConstraints checks the weight policy, loops and unknown endpoints.
func TestGraph_AddEdgeConstraints(t *testing.T) {
	g := core.NewGraph()
	require.NoError(t, g.AddVertex("A"))
	require.NoError(t, g.AddVertex("B"))

	_, err := g.AddEdge("A", "A", 0)
	assert.ErrorIs(t, err, core.ErrLoopNotAllowed)
	_, err = g.AddEdge("A", "Z", 0)
	assert.ErrorIs(t, err, core.ErrVertexNotFound)
	_, err = g.AddEdge("A", "B", 3)
	assert.ErrorIs(t, err, core.ErrBadWeight, "unweighted graph rejects non-zero weight")
	_, err = g.AddEdge("", "B", 0)
	assert.ErrorIs(t, err, core.ErrEmptyVertexID)

	w := core.NewGraph(core.WithWeighted())
	require.NoError(t, w.AddVertex("A"))
	require.NoError(t, w.AddVertex("B"))
	_, err = w.AddEdge("A", "B", 0)
	assert.ErrorIs(t, err, core.ErrBadWeight)
	_, err = w.AddEdge("A", "B", -4)
	assert.ErrorIs(t, err, core.ErrBadWeight)
	e, err := w.AddEdge("A", "B", 4)
	require.NoError(t, err)
	assert.Equal(t, core.Edge{Index: 0, From: "A", To: "B", Weight: 4}, e)
}

// TestGraph_EdgesInsertionOrder ensures indices and incident order follow insertion.
func TestGraph_EdgesInsertionOrder(t *testing.T) {
	g, err := core.GenerateNodes(4)
	require.NoError(t, err)
	for _, p := range [][2]string{{"1", "2"}, {"3", "1"}, {"2", "4"}, {"1", "2"}} {
		_, err := g.AddEdge(p[0], p[1], 0)
		require.NoError(t, err)
	}

	edges := g.Edges()
	require.Len(t, edges, 4)
	for i, e := range edges {
		assert.Equal(t, i, e.Index)
	}

	inc, err := g.IncidentEdges("1")
	require.NoError(t, err)
	got := make([]int, 0, len(inc))
	for _, e := range inc {
		got = append(got, e.Index)
	}
	assert.Equal(t, []int{0, 1, 3}, got, "parallel edge 1-2 is kept as a separate edge")

	deg, err := g.Degree("1")
	require.NoError(t, err)
	assert.Equal(t, 3, deg)

	_, err = g.IncidentEdges("9")
	assert.ErrorIs(t, err, core.ErrVertexNotFound)
}

// TestGraph_AccessorsReturnCopies guards the read-only contract used by generators.
func TestGraph_AccessorsReturnCopies(t *testing.T) {
	g, err := core.GenerateNodes(2)
	require.NoError(t, err)
	_, err = g.AddEdge("1", "2", 0)
	require.NoError(t, err)

	vs := g.Vertices()
	vs[0] = "X"
	es := g.Edges()
	es[0].From = "X"

	assert.Equal(t, []string{"1", "2"}, g.Vertices())
	assert.Equal(t, "1", g.Edges()[0].From)
}

// TestGraph_CloneAndStats compares a clone against its source.
func TestGraph_CloneAndStats(t *testing.T) {
	g, err := core.GenerateNodes(3, core.WithWeighted())
	require.NoError(t, err)
	_, _ = g.AddEdge("1", "2", 2)
	_, _ = g.AddEdge("2", "3", 5)

	c := g.Clone()
	_, err = c.AddEdge("1", "3", 1)
	require.NoError(t, err)

	assert.Equal(t, core.GraphStats{Weighted: true, MaxVertices: core.MaxVertices, VertexCount: 3, EdgeCount: 2, TotalWeight: 7}, g.Stats())
	assert.Equal(t, 3, c.EdgeCount())
	assert.True(t, c.Weighted())
}

func TestEdge_OtherAndTouches(t *testing.T) {
	e := core.Edge{From: "A", To: "B"}
	assert.Equal(t, "B", e.Other("A"))
	assert.Equal(t, "A", e.Other("B"))
	assert.True(t, e.Touches("B"))
	assert.False(t, e.Touches("C"))
}
