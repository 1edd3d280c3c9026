package search_test

import (
	"fmt"

	"github.com/katalvlaran/roadgrid/graph"
	"github.com/katalvlaran/roadgrid/grid"
	"github.com/katalvlaran/roadgrid/search"
)

// ExampleFindPath routes across an open 3×3 map with each strategy.
func ExampleFindPath() {
	gr, _ := grid.From2D([][]bool{
		{true, true, true},
		{true, true, true},
		{true, true, true},
	})
	g, _ := graph.Build(gr)

	for _, st := range []search.Strategy{search.BFS, search.Dijkstra, search.AStar} {
		res, _ := search.FindPath(g, graph.Node{X: 0, Y: 0}, graph.Node{X: 2, Y: 2}, st)
		fmt.Printf("%-20s %v cost=%.4f\n", st.DisplayName(), res.Path, res.Cost)
	}
	// Output:
	// BFS Algorithm        [(0, 0) (1, 1) (2, 2)] cost=2.8284
	// Dijkstra's Algorithm [(0, 0) (1, 1) (2, 2)] cost=2.8284
	// A* Algorithm         [(0, 0) (1, 1) (2, 2)] cost=2.8284
}

// ExampleStrategyFor shows the tier to strategy mapping.
func ExampleStrategyFor() {
	for _, tier := range []search.Tier{search.TierRoutine, search.TierStandard, search.TierUrgent} {
		fmt.Println(tier, "->", search.StrategyFor(tier))
	}
	// Output:
	// routine -> bfs
	// standard -> dijkstra
	// urgent -> astar
}
