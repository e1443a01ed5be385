// Package core_test verifies thread-safety of core.Graph under concurrent operations.
package core_test

import (
	"strconv"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/KunjBhawsar/Graph-Algorithm-Visualiser/core"
)

// TestConcurrentAddEdge ensures concurrent AddEdge calls are safe and that
// indices stay unique and dense.
func TestConcurrentAddEdge(t *testing.T) {
	g, err := core.GenerateNodes(core.MaxVertices, core.WithWeighted())
	require.NoError(t, err)

	const num = 200
	var wg sync.WaitGroup
	wg.Add(num)
	for i := 0; i < num; i++ {
		go func(id int) {
			defer wg.Done()
			to := strconv.Itoa(id%(core.MaxVertices-1) + 2)
			_, err := g.AddEdge("1", to, int64(id+1))
			assert.NoError(t, err)
		}(i)
	}
	wg.Wait()

	edges := g.Edges()
	require.Len(t, edges, num)
	for i, e := range edges {
		assert.Equal(t, i, e.Index)
	}
	deg, err := g.Degree("1")
	require.NoError(t, err)
	assert.Equal(t, num, deg)
}

// TestConcurrentReadsAndClone validates that readers and clones do not
// race with a writer.
func TestConcurrentReadsAndClone(t *testing.T) {
	g, err := core.GenerateNodes(10)
	require.NoError(t, err)

	const readers = 50
	var wg sync.WaitGroup
	wg.Add(readers + 1)
	go func() {
		defer wg.Done()
		for i := 2; i <= 10; i++ {
			_, _ = g.AddEdge("1", strconv.Itoa(i), 0)
		}
	}()
	for r := 0; r < readers; r++ {
		go func() {
			defer wg.Done()
			_, _ = g.IncidentEdges("1")
			c := g.Clone()
			assert.LessOrEqual(t, c.EdgeCount(), 9)
			_ = g.Stats()
		}()
	}
	wg.Wait()
	assert.Equal(t, 9, g.EdgeCount())
}
