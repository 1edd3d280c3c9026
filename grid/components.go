package grid

// ConnectedComponents finds all 8-connected regions of traversable cells.
// Components are returned in order of their first cell in row-major scan;
// each component lists cell indices in BFS discovery order.
//
// To convert an index back to (x,y), use Coordinate.
//
// Time:   O(W·H·8).
// Memory: O(W·H) for visited flags and output.
func (g *Grid) ConnectedComponents() [][]int {
	seen := make([]bool, len(g.cells))
	var comps [][]int

	for i0, road := range g.cells {
		if !road || seen[i0] {
			continue
		}
		queue := []int{i0}
		seen[i0] = true
		for qi := 0; qi < len(queue); qi++ {
			ux, uy := g.Coordinate(queue[qi])
			for _, d := range offsets8 {
				vx, vy := ux+d[0], uy+d[1]
				if !g.At(vx, vy) {
					continue
				}
				vi := g.Index(vx, vy)
				if !seen[vi] {
					seen[vi] = true
					queue = append(queue, vi)
				}
			}
		}
		comps = append(comps, queue)
	}
	return comps
}

// ComponentLabels returns, for every cell, the index of its component in
// ConnectedComponents order, or -1 for obstacle cells. Two road cells can
// reach each other iff their labels are equal.
func (g *Grid) ComponentLabels() []int {
	labels := make([]int, len(g.cells))
	for i := range labels {
		labels[i] = -1
	}
	for c, comp := range g.ConnectedComponents() {
		for _, i := range comp {
			labels[i] = c
		}
	}
	return labels
}
