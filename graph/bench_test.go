package graph_test

import (
	"math/rand"
	"testing"

	"github.com/katalvlaran/roadgrid/graph"
)

// BenchmarkBuild measures graph construction on a 1000×1000 raster with
// roughly 70% road cells.
// Complexity: O(W×H×8).
func BenchmarkBuild(b *testing.B) {
	gr := randomGrid(b, rand.New(rand.NewSource(42)), 1000, 1000, 0.7)

	b.ReportAllocs()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		if _, err := graph.Build(gr); err != nil {
			b.Fatal(err)
		}
	}
}

// BenchmarkShortestPathUnweighted runs corner-to-corner BFS on an open
// 500×500 raster.
func BenchmarkShortestPathUnweighted(b *testing.B) {
	gr := randomGrid(b, rand.New(rand.NewSource(1)), 500, 500, 1)
	g, err := graph.Build(gr)
	if err != nil {
		b.Fatal(err)
	}
	start, end := graph.Node{X: 0, Y: 0}, graph.Node{X: 499, Y: 499}

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		if _, ok := g.ShortestPathUnweighted(start, end); !ok {
			b.Fatal("no path on open grid")
		}
	}
}
