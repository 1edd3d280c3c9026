package graph

import "fmt"

// Graph is the immutable road graph over a W×H raster.
//
// Cell index i = y*width + x. present[i] marks road cells; the outgoing
// edges of cell i are edges[offsets[i]:offsets[i+1]] (empty for obstacles
// and for isolated road cells).
type Graph struct {
	width, height int
	present       []bool
	offsets       []int
	edges         []Edge
	nodes         int
}

// Width returns the raster width the graph was built from.
func (g *Graph) Width() int { return g.width }

// Height returns the raster height the graph was built from.
func (g *Graph) Height() int { return g.height }

// Len returns Width×Height, the size needed for per-cell search state.
func (g *Graph) Len() int { return len(g.present) }

// NodeCount returns the number of nodes (road cells).
func (g *Graph) NodeCount() int { return g.nodes }

// EdgeCount returns the number of directed edges.
func (g *Graph) EdgeCount() int { return len(g.edges) }

// Index maps n to its row-major cell index. The result is only meaningful
// when n lies inside the raster; use Has to check membership first.
func (g *Graph) Index(n Node) int {
	return n.Y*g.width + n.X
}

// NodeAt converts a cell index back to a Node.
func (g *Graph) NodeAt(idx int) Node {
	return Node{X: idx % g.width, Y: idx / g.width}
}

// Has reports whether n is a node of the graph.
// Complexity: O(1).
func (g *Graph) Has(n Node) bool {
	if n.X < 0 || n.X >= g.width || n.Y < 0 || n.Y >= g.height {
		return false
	}
	return g.present[g.Index(n)]
}

// Node returns the node at (x,y) and true, or the zero Node and false when
// (x,y) is out of bounds or an obstacle.
// Complexity: O(1).
func (g *Graph) Node(x, y int) (Node, bool) {
	n := Node{X: x, Y: y}
	if !g.Has(n) {
		return Node{}, false
	}
	return n, true
}

// Edges returns the outgoing edges of n in neighbor-scan order. The result
// is empty (never an error) for isolated nodes and for nodes not in the
// graph. The returned slice aliases graph storage and must not be modified.
// Complexity: O(1).
func (g *Graph) Edges(n Node) []Edge {
	if !g.Has(n) {
		return nil
	}
	i := g.Index(n)
	lo, hi := g.offsets[i], g.offsets[i+1]
	return g.edges[lo:hi:hi]
}

// Neighbors returns the destinations of n's outgoing edges, in the same
// order as Edges. Build never creates parallel edges, so the result holds
// no duplicates.
func (g *Graph) Neighbors(n Node) []Node {
	edges := g.Edges(n)
	out := make([]Node, len(edges))
	for i, e := range edges {
		out[i] = e.To
	}
	return out
}

// Edge returns the edge u → v if it exists.
// Complexity: O(deg(u)) ≤ 8.
func (g *Graph) Edge(u, v Node) (Edge, bool) {
	for _, e := range g.Edges(u) {
		if e.To == v {
			return e, true
		}
	}
	return Edge{}, false
}

// Nodes returns all nodes in row-major order.
// Complexity: O(W×H).
func (g *Graph) Nodes() []Node {
	out := make([]Node, 0, g.nodes)
	for i, ok := range g.present {
		if ok {
			out = append(out, g.NodeAt(i))
		}
	}
	return out
}

// PathWeight validates p against the graph and returns the sum of the
// weights of its edges. A single-node path weighs 0.
// Returns ErrInvalidPath when p is empty, contains a node outside the graph,
// or steps between nodes that share no edge.
func (g *Graph) PathWeight(p Path) (float64, error) {
	if len(p) == 0 {
		return 0, fmt.Errorf("%w: empty", ErrInvalidPath)
	}
	if !g.Has(p[0]) {
		return 0, fmt.Errorf("%w: %v is not a node", ErrInvalidPath, p[0])
	}
	var total float64
	for i := 1; i < len(p); i++ {
		e, ok := g.Edge(p[i-1], p[i])
		if !ok {
			return 0, fmt.Errorf("%w: no edge %v -> %v at step %d", ErrInvalidPath, p[i-1], p[i], i)
		}
		total += e.Weight
	}
	return total, nil
}
