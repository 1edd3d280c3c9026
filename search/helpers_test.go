package search_test

import (
	"math"
	"math/rand"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/roadgrid/graph"
	"github.com/katalvlaran/roadgrid/grid"
)

// buildRows builds a graph from ASCII rows: '.' road, anything else obstacle.
func buildRows(t testing.TB, rows ...string) *graph.Graph {
	t.Helper()
	cells := make([][]bool, len(rows))
	for y, r := range rows {
		cells[y] = make([]bool, len(r))
		for x := range r {
			cells[y][x] = r[x] == '.'
		}
	}
	gr, err := grid.From2D(cells)
	require.NoError(t, err)
	g, err := graph.Build(gr)
	require.NoError(t, err)
	return g
}

// buildRandom builds a w×h graph whose cells are road with probability p.
func buildRandom(t testing.TB, rng *rand.Rand, w, h int, p float64) *graph.Graph {
	t.Helper()
	cells := make([]bool, w*h)
	for i := range cells {
		cells[i] = rng.Float64() < p
	}
	gr, err := grid.New(w, h, cells)
	require.NoError(t, err)
	g, err := graph.Build(gr)
	require.NoError(t, err)
	return g
}

// allPairs computes all-pairs shortest weights (Floyd–Warshall) and hop
// counts over cell indices. Unreachable pairs hold +Inf.
func allPairs(g *graph.Graph) (weight [][]float64, hops [][]float64) {
	n := g.Len()
	weight = make([][]float64, n)
	hops = make([][]float64, n)
	for i := 0; i < n; i++ {
		weight[i] = make([]float64, n)
		hops[i] = make([]float64, n)
		for j := 0; j < n; j++ {
			weight[i][j] = math.Inf(1)
			hops[i][j] = math.Inf(1)
		}
		if g.Has(g.NodeAt(i)) {
			weight[i][i] = 0
			hops[i][i] = 0
		}
	}
	for _, u := range g.Nodes() {
		for _, e := range g.Edges(u) {
			i, j := g.Index(e.From), g.Index(e.To)
			weight[i][j] = e.Weight
			hops[i][j] = 1
		}
	}
	for k := 0; k < n; k++ {
		for i := 0; i < n; i++ {
			for j := 0; j < n; j++ {
				if d := weight[i][k] + weight[k][j]; d < weight[i][j] {
					weight[i][j] = d
				}
				if d := hops[i][k] + hops[k][j]; d < hops[i][j] {
					hops[i][j] = d
				}
			}
		}
	}
	return weight, hops
}
