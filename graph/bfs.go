package graph

// ShortestPathUnweighted returns a start→end path with the fewest edges,
// ignoring weights, and true; or nil and false when end is unreachable or
// either node is not in the graph.
//
// It is a plain breadth-first search: FIFO frontier, nodes marked visited
// when enqueued, one predecessor per visited node, and an early exit when
// end is dequeued. Ties between equal-length paths follow edge order.
// Search strategies live in package search; this method is meant as an
// independent structural check on them.
//
// Complexity: O(V + E) time, O(W×H) memory.
func (g *Graph) ShortestPathUnweighted(start, end Node) (Path, bool) {
	if !g.Has(start) || !g.Has(end) {
		return nil, false
	}
	visited := make([]bool, g.Len())
	prev := NewPredecessors(g)

	queue := []Node{start}
	visited[g.Index(start)] = true
	for qi := 0; qi < len(queue); qi++ {
		cur := queue[qi]
		if cur == end {
			path, err := prev.PathTo(start, end)
			if err != nil {
				return nil, false
			}
			return path, true
		}
		for _, e := range g.Edges(cur) {
			vi := g.Index(e.To)
			if visited[vi] {
				continue
			}
			visited[vi] = true
			prev.Set(e.To, cur)
			queue = append(queue, e.To)
		}
	}
	return nil, false
}
