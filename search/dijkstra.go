package search

import (
	"container/heap"

	"github.com/katalvlaran/roadgrid/graph"
)

// heuristic estimates the remaining cost from a node to the target.
type heuristic func(graph.Node) float64

// zeroHeuristic turns best-first search into plain Dijkstra.
func zeroHeuristic(graph.Node) float64 { return 0 }

// runner holds the mutable state of one Dijkstra or A* run.
type runner struct {
	g       *graph.Graph
	opts    Options
	h       heuristic
	dist    []float64 // best known g-cost per cell index
	done    []bool    // settled (closed) cells
	prev    *graph.Predecessors
	pq      nodePQ
	seq     uint64
	settled int
}

// runBestFirst runs Dijkstra (h ≡ 0) or A* from start and stops when target
// is popped.
func runBestFirst(g *graph.Graph, start, target graph.Node, o Options, s Strategy, h heuristic) (*Result, error) {
	r := &runner{
		g:    g,
		opts: o,
		h:    h,
		dist: make([]float64, g.Len()),
		done: make([]bool, g.Len()),
		prev: graph.NewPredecessors(g),
		pq:   make(nodePQ, 0, 64),
	}
	for i := range r.dist {
		r.dist[i] = infinity
	}

	found, err := r.process(start, target)
	if err != nil {
		return nil, err
	}
	if !found {
		return unreachable(s, r.settled), nil
	}

	path, err := reconstruct(r.prev, start, target)
	if err != nil {
		return nil, err
	}

	return &Result{
		Strategy: s,
		Path:     path,
		Cost:     r.dist[g.Index(target)],
		Hops:     path.Hops(),
		Settled:  r.settled,
		Found:    true,
	}, nil
}

// push enqueues cell idx with priority prio, stamping the next sequence
// number.
func (r *runner) push(idx int, prio float64) {
	heap.Push(&r.pq, pqItem{idx: int32(idx), prio: prio, seq: r.seq})
	r.seq++
}

// process pops the lowest-priority cell until the target is settled or the
// heap is empty.
func (r *runner) process(start, target graph.Node) (bool, error) {
	si, ti := r.g.Index(start), r.g.Index(target)
	r.dist[si] = 0
	r.push(si, r.h(start))

	for r.pq.Len() > 0 {
		select {
		case <-r.opts.Ctx.Done():
			return false, r.opts.Ctx.Err()
		default:
		}

		item := heap.Pop(&r.pq).(pqItem)
		u := int(item.idx)
		if r.done[u] {
			continue // stale entry
		}
		r.done[u] = true
		r.settled++

		node := r.g.NodeAt(u)
		r.opts.OnSettle(node)
		if u == ti {
			return true, nil
		}
		r.relax(u, node)
	}
	return false, nil
}

// relax improves neighbors of the settled node u with strict < and pushes a
// fresh heap entry for each improvement (lazy decrease-key).
func (r *runner) relax(u int, node graph.Node) {
	for _, e := range r.g.Edges(node) {
		v := r.g.Index(e.To)
		if r.done[v] {
			continue
		}
		nd := r.dist[u] + e.Weight
		if nd >= r.dist[v] {
			continue
		}
		r.dist[v] = nd
		r.prev.Set(e.To, node)
		r.push(v, nd+r.h(e.To))
	}
}
