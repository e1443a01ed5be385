package bfs_test

import (
	"strconv"
	"testing"

	"github.com/KunjBhawsar/Graph-Algorithm-Visualiser/bfs"
	"github.com/KunjBhawsar/Graph-Algorithm-Visualiser/core"
)

// BenchmarkBFS_Complete measures generation on the largest complete graph allowed.
func BenchmarkBFS_Complete(b *testing.B) {
	g, _ := core.GenerateNodes(core.MaxVertices)
	for i := 1; i <= core.MaxVertices; i++ {
		for j := i + 1; j <= core.MaxVertices; j++ {
			_, _ = g.AddEdge(strconv.Itoa(i), strconv.Itoa(j), 0)
		}
	}
	b.ReportAllocs()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_, _ = bfs.BFS(g, "1")
	}
}

// BenchmarkBFS_Chain measures generation on a path of MaxVertices nodes.
func BenchmarkBFS_Chain(b *testing.B) {
	g, _ := core.GenerateNodes(core.MaxVertices)
	for i := 1; i < core.MaxVertices; i++ {
		_, _ = g.AddEdge(strconv.Itoa(i), strconv.Itoa(i+1), 0)
	}
	b.ReportAllocs()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_, _ = bfs.BFS(g, "1")
	}
}
