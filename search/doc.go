// Package search finds shortest routes on a road graph built by package graph.
//
// Overview:
//
//   - FindPath runs one of three interchangeable strategies between two nodes
//     and returns a Result holding the path, its total weight, its hop count
//     and the number of nodes the search settled.
//   - Strategies are picked directly (BFS, Dijkstra, AStar) or derived from an
//     urgency Tier via StrategyFor: routine calls get BFS, standard calls get
//     Dijkstra, urgent calls get A*.
//   - "No path" is an ordinary outcome (Result.Found == false), never an error.
//
// Strategies:
//
//   - BFS: FIFO frontier, nodes marked visited when enqueued, stop when the
//     target is dequeued. Minimises the number of hops; weights are ignored
//     while searching and summed afterwards for Result.Cost.
//   - Dijkstra: min-heap keyed by distance with lazy deletion. Stale and
//     already-settled entries are dropped when popped. Relaxation is strict
//     (<) and the search stops as soon as the target is popped.
//   - AStar: Dijkstra ordered by f = g + h, where h is the straight-line
//     (Euclidean) distance to the target. On 8-connected grids with weights
//     1 and √2 the heuristic never overestimates and is consistent, so A*
//     returns a path of the same total weight as Dijkstra while settling no
//     more nodes.
//
// Determinism:
//
//	Neighbors are scanned in the graph's fixed edge order, and heap entries
//	with equal priority pop in push order (a monotonic sequence number breaks
//	ties). Equal inputs therefore always yield the same path.
//
// Complexity:
//
//   - BFS:      O(V + E) time, O(W×H) memory.
//   - Dijkstra: O((V + E) log V) time, O(W×H + E) memory (lazy heap).
//   - AStar:    same bounds as Dijkstra; usually far fewer settled nodes.
//
// Errors:
//
//   - ErrConfiguration family (ErrNilGraph, ErrEmptyGraph, ErrStartNotFound,
//     ErrTargetNotFound, ErrUnknownStrategy, ErrUnknownTier, ErrNilContext):
//     invalid input, detected before any search work.
//   - ErrInconsistentState: the predecessor chain could not be rebuilt. It
//     wraps graph.ErrBrokenChain and signals a defect, not bad input.
//   - context errors: returned as-is when WithContext's context is done.
//
// Concurrency:
//
//	Every call owns its distance, predecessor and settled arrays, so any
//	number of searches may share one graph concurrently.
package search
