package graph_test

import (
	"fmt"

	"github.com/katalvlaran/roadgrid/graph"
	"github.com/katalvlaran/roadgrid/grid"
)

// ExampleBuild builds the graph of a small map and lists the outgoing edges
// of one node.
//
//	. . .
//	. # .
func ExampleBuild() {
	gr, _ := grid.From2D([][]bool{
		{true, true, true},
		{true, false, true},
	})
	g, _ := graph.Build(gr)

	fmt.Println("nodes:", g.NodeCount(), "edges:", g.EdgeCount())
	n, _ := g.Node(0, 0)
	for _, e := range g.Edges(n) {
		fmt.Println(e)
	}
	// Output:
	// nodes: 5 edges: 12
	// (0, 0) -> (1, 0) (1)
	// (0, 0) -> (0, 1) (1)
}

// ExampleGraph_ShortestPathUnweighted finds the fewest-hop route.
func ExampleGraph_ShortestPathUnweighted() {
	gr, _ := grid.From2D([][]bool{
		{true, false, true},
		{true, false, true},
		{true, true, true},
	})
	g, _ := graph.Build(gr)

	p, ok := g.ShortestPathUnweighted(graph.Node{X: 0, Y: 0}, graph.Node{X: 2, Y: 0})
	fmt.Println(ok, p)
	// Output:
	// true [(0, 0) (0, 1) (1, 2) (2, 1) (2, 0)]
}
