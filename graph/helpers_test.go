package graph_test

import (
	"math/rand"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/roadgrid/graph"
	"github.com/katalvlaran/roadgrid/grid"
)

// parseRows builds a grid from ASCII rows: '.' road, anything else obstacle.
func parseRows(t testing.TB, rows ...string) *grid.Grid {
	t.Helper()
	cells := make([][]bool, len(rows))
	for y, r := range rows {
		cells[y] = make([]bool, len(r))
		for x := range r {
			cells[y][x] = r[x] == '.'
		}
	}
	g, err := grid.From2D(cells)
	require.NoError(t, err)
	return g
}

// mustBuild parses rows and builds the graph.
func mustBuild(t testing.TB, rows ...string) *graph.Graph {
	t.Helper()
	g, err := graph.Build(parseRows(t, rows...))
	require.NoError(t, err)
	return g
}

// randomGrid returns a w×h grid where each cell is road with probability p.
func randomGrid(t testing.TB, rng *rand.Rand, w, h int, p float64) *grid.Grid {
	t.Helper()
	cells := make([]bool, w*h)
	for i := range cells {
		cells[i] = rng.Float64() < p
	}
	g, err := grid.New(w, h, cells)
	require.NoError(t, err)
	return g
}
