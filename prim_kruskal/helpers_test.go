package prim_kruskal_test

import (
	"math/rand"
	"strconv"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/KunjBhawsar/Graph-Algorithm-Visualiser/core"
	"github.com/KunjBhawsar/Graph-Algorithm-Visualiser/step"
)

type wedge struct {
	u, v string
	w    int64
}

// buildWeighted constructs a weighted graph from labels and edges.
func buildWeighted(t testing.TB, labels []string, edges ...wedge) *core.Graph {
	t.Helper()
	g, err := core.FromLabels(labels, core.WithWeighted())
	require.NoError(t, err)
	for _, e := range edges {
		_, err := g.AddEdge(e.u, e.v, e.w)
		require.NoError(t, err)
	}

	return g
}

// buildTriangle is A-B(1), B-C(2), A-C(5).
func buildTriangle(t testing.TB) *core.Graph {
	return buildWeighted(t, []string{"A", "B", "C"}, wedge{"A", "B", 1}, wedge{"B", "C", 2}, wedge{"A", "C", 5})
}

// buildRandom creates a weighted graph on n vertices with m random edges,
// seeded for reproducibility. Loops are skipped; parallel edges may occur.
func buildRandom(t testing.TB, seed int64, n, m int) *core.Graph {
	t.Helper()
	g, err := core.GenerateNodes(n, core.WithWeighted())
	require.NoError(t, err)
	r := rand.New(rand.NewSource(seed))
	for added := 0; added < m; {
		u, v := r.Intn(n)+1, r.Intn(n)+1
		if u == v {
			continue
		}
		_, err := g.AddEdge(strconv.Itoa(u), strconv.Itoa(v), int64(r.Intn(9)+1))
		require.NoError(t, err)
		added++
	}

	return g
}

func kinds(log *step.Log) []step.Kind {
	out := make([]step.Kind, 0, log.Len())
	for _, r := range log.Records() {
		out = append(out, r.Kind)
	}

	return out
}

// componentOf returns the index of the partition component holding id.
func componentOf(p []step.Component, id string) int {
	for i, c := range p {
		for _, n := range c.Nodes {
			if n == id {
				return i
			}
		}
	}

	return -1
}
