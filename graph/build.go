package graph

import "github.com/katalvlaran/roadgrid/grid"

// Build converts a passability grid into a Graph.
//
// Behavior:
//  1. Every traversable cell (x,y) becomes Node{x,y}.
//  2. Every traversable cell gets one directed edge to each traversable
//     in-bounds neighbor, scanned in grid.Offsets() order.
//  3. Axis-aligned steps weigh OrthogonalWeight, diagonal steps DiagonalWeight.
//
// Adjacency is laid out in two passes: the first counts out-degrees into
// prefix offsets, the second writes edges in place, so the edge slice is
// allocated exactly once.
//
// Returns ErrNilGrid for a nil grid. Empty grids cannot reach Build because
// grid constructors reject them.
// Complexity: O(W×H×8) time, O(W×H + E) memory.
func Build(gr *grid.Grid) (*Graph, error) {
	if gr == nil {
		return nil, ErrNilGrid
	}
	w, h := gr.Width(), gr.Height()
	g := &Graph{
		width:   w,
		height:  h,
		present: make([]bool, w*h),
		offsets: make([]int, w*h+1),
	}
	offsets := grid.Offsets()

	// Pass 1: presence and out-degree prefix sums.
	for y := 0; y < h; y++ {
		for x := 0; x < w; x++ {
			i := y*w + x
			g.offsets[i+1] = g.offsets[i]
			if !gr.At(x, y) {
				continue
			}
			g.present[i] = true
			g.nodes++
			for _, d := range offsets {
				if gr.At(x+d[0], y+d[1]) {
					g.offsets[i+1]++
				}
			}
		}
	}

	// Pass 2: edges in scan order.
	g.edges = make([]Edge, g.offsets[w*h])
	for i, ok := range g.present {
		if !ok {
			continue
		}
		from := g.NodeAt(i)
		k := g.offsets[i]
		for _, d := range offsets {
			nx, ny := from.X+d[0], from.Y+d[1]
			if !gr.At(nx, ny) {
				continue
			}
			g.edges[k] = Edge{From: from, To: Node{X: nx, Y: ny}, Weight: stepWeight(d[0], d[1])}
			k++
		}
	}

	return g, nil
}

// stepWeight returns the weight of a unit step (dx,dy) with dx,dy ∈ {-1,0,1}.
func stepWeight(dx, dy int) float64 {
	if dx == 0 || dy == 0 {
		return OrthogonalWeight
	}
	return DiagonalWeight
}
