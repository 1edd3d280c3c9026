package graph

import "fmt"

// noPredecessor marks a cell without a recorded predecessor.
const noPredecessor = -1

// Predecessors is a flat predecessor map Node → Node sized to the raster.
// Each search owns one; it is not safe for concurrent use.
type Predecessors struct {
	g    *Graph
	prev []int32
}

// NewPredecessors returns an empty predecessor map for g.
// Complexity: O(W×H).
func NewPredecessors(g *Graph) *Predecessors {
	prev := make([]int32, g.Len())
	for i := range prev {
		prev[i] = noPredecessor
	}
	return &Predecessors{g: g, prev: prev}
}

// Set records parent as the predecessor of child, replacing any earlier
// value. Both must be nodes of the graph.
func (p *Predecessors) Set(child, parent Node) {
	p.prev[p.g.Index(child)] = int32(p.g.Index(parent))
}

// Get returns child's predecessor and true, or false if none is recorded
// (or child is not a node of the graph).
func (p *Predecessors) Get(child Node) (Node, bool) {
	if !p.g.Has(child) {
		return Node{}, false
	}
	pi := p.prev[p.g.Index(child)]
	if pi == noPredecessor {
		return Node{}, false
	}
	return p.g.NodeAt(int(pi)), true
}

// PathTo walks predecessor links back from target until a node with no
// predecessor is reached, then returns the chain in start→target order.
//
// The walk must end at start; otherwise, or if the chain is longer than the
// graph has nodes (a cycle), PathTo returns ErrBrokenChain. A target with no
// predecessor yields the single-node path [target] when target == start.
// Complexity: O(path length).
func (p *Predecessors) PathTo(start, target Node) (Path, error) {
	if !p.g.Has(target) {
		return nil, fmt.Errorf("%w: target %v is not a node", ErrBrokenChain, target)
	}
	var rev Path
	for cur := target; ; {
		rev = append(rev, cur)
		if len(rev) > p.g.NodeCount() {
			return nil, fmt.Errorf("%w: cycle through %v", ErrBrokenChain, cur)
		}
		parent, ok := p.Get(cur)
		if !ok {
			break
		}
		cur = parent
	}
	if last := rev[len(rev)-1]; last != start {
		return nil, fmt.Errorf("%w: chain from %v ends at %v, want %v", ErrBrokenChain, target, last, start)
	}
	// reverse to get start → target
	for i, j := 0, len(rev)-1; i < j; i, j = i+1, j-1 {
		rev[i], rev[j] = rev[j], rev[i]
	}

	return rev, nil
}
