package search

import (
	"fmt"
	"math"

	"github.com/katalvlaran/roadgrid/graph"
)

// FindPath computes a route from start to target on g with the given
// strategy.
//
// Validation, in order:
//  1. g must be non-nil (ErrNilGraph) and have nodes (ErrEmptyGraph).
//  2. Options must be valid (ErrNilContext).
//  3. strategy must be supported (ErrUnknownStrategy).
//  4. start and target must be nodes (ErrStartNotFound, ErrTargetNotFound).
//
// An unreachable target yields Result{Found: false} and a nil error. When
// start == target every strategy returns the single-node path with cost 0.
// A done context aborts the search and its error is returned unwrapped.
func FindPath(g *graph.Graph, start, target graph.Node, strategy Strategy, opts ...Option) (*Result, error) {
	if g == nil {
		return nil, ErrNilGraph
	}
	if g.NodeCount() == 0 {
		return nil, ErrEmptyGraph
	}
	o := DefaultOptions()
	for _, opt := range opts {
		opt(&o)
	}
	if o.err != nil {
		return nil, o.err
	}
	if !strategy.Valid() {
		return nil, fmt.Errorf("%w: %v", ErrUnknownStrategy, strategy)
	}
	if !g.Has(start) {
		return nil, fmt.Errorf("%w: %v", ErrStartNotFound, start)
	}
	if !g.Has(target) {
		return nil, fmt.Errorf("%w: %v", ErrTargetNotFound, target)
	}

	switch strategy {
	case BFS:
		return runBFS(g, start, target, o)
	case AStar:
		return runBestFirst(g, start, target, o, AStar, euclidean(target))
	default:
		return runBestFirst(g, start, target, o, Dijkstra, zeroHeuristic)
	}
}

// reconstruct rebuilds the start → target path from prev, mapping a broken
// chain to ErrInconsistentState.
func reconstruct(prev *graph.Predecessors, start, target graph.Node) (graph.Path, error) {
	path, err := prev.PathTo(start, target)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrInconsistentState, err)
	}
	return path, nil
}

// unreachable is the result for a target the search never settled.
func unreachable(s Strategy, settled int) *Result {
	return &Result{Strategy: s, Settled: settled}
}

// infinity is the initial distance of every node but the start.
var infinity = math.Inf(1)
