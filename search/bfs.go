package search

import (
	"fmt"

	"github.com/katalvlaran/roadgrid/graph"
)

// walker holds the mutable state of one BFS run.
type walker struct {
	g       *graph.Graph
	opts    Options
	visited []bool
	prev    *graph.Predecessors
	queue   []graph.Node
	settled int
}

// runBFS searches level by level and stops when target is dequeued.
func runBFS(g *graph.Graph, start, target graph.Node, o Options) (*Result, error) {
	w := &walker{
		g:       g,
		opts:    o,
		visited: make([]bool, g.Len()),
		prev:    graph.NewPredecessors(g),
		queue:   make([]graph.Node, 0, 64),
	}
	w.enqueue(start)

	found, err := w.loop(target)
	if err != nil {
		return nil, err
	}
	if !found {
		return unreachable(BFS, w.settled), nil
	}

	path, err := reconstruct(w.prev, start, target)
	if err != nil {
		return nil, err
	}
	cost, err := g.PathWeight(path)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrInconsistentState, err)
	}

	return &Result{
		Strategy: BFS,
		Path:     path,
		Cost:     cost,
		Hops:     path.Hops(),
		Settled:  w.settled,
		Found:    true,
	}, nil
}

// enqueue marks n visited and appends it to the frontier.
func (w *walker) enqueue(n graph.Node) {
	w.visited[w.g.Index(n)] = true
	w.queue = append(w.queue, n)
}

// loop drains the queue until target is dequeued, the queue empties or the
// context is done.
func (w *walker) loop(target graph.Node) (bool, error) {
	for head := 0; head < len(w.queue); head++ {
		// cancellation check (once per dequeue)
		select {
		case <-w.opts.Ctx.Done():
			return false, w.opts.Ctx.Err()
		default:
		}

		cur := w.queue[head]
		w.settled++
		w.opts.OnSettle(cur)
		if cur == target {
			return true, nil
		}
		for _, e := range w.g.Edges(cur) {
			if w.visited[w.g.Index(e.To)] {
				continue
			}
			w.prev.Set(e.To, cur)
			w.enqueue(e.To)
		}
	}
	return false, nil
}
