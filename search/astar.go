package search

import (
	"github.com/paulmach/orb"
	"github.com/paulmach/orb/planar"

	"github.com/katalvlaran/roadgrid/graph"
)

// euclidean returns the straight-line distance heuristic towards target.
// It never exceeds the true remaining cost on an 8-connected grid whose
// steps cost 1 and √2, and it satisfies h(u) ≤ w(u,v) + h(v).
func euclidean(target graph.Node) heuristic {
	tp := orb.Point{float64(target.X), float64(target.Y)}
	return func(n graph.Node) float64 {
		return planar.Distance(orb.Point{float64(n.X), float64(n.Y)}, tp)
	}
}
