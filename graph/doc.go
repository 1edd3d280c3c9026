// Package graph builds and queries the weighted road graph derived from a
// passability grid.
//
// Overview:
//
//   - Node is a plain (X, Y) value; two nodes are equal iff their
//     coordinates are equal. There is no node identity beyond coordinates.
//   - Build turns every traversable cell into a Node and connects it to each
//     traversable 8-neighbor with a directed Edge: weight 1.0 for axis-aligned
//     steps (OrthogonalWeight) and √2 for diagonal steps (DiagonalWeight).
//   - Adjacency is stored in compressed sparse rows indexed by the row-major
//     cell index y*Width + x, so lookups are O(1) slice reads with no hashing
//     and memory is bounded by the raster size.
//   - Edge order per node follows grid.Offsets(), which makes every traversal
//     over the graph reproducible.
//   - Predecessors is the flat predecessor map shared by the search
//     strategies; PathTo rebuilds a start→target Path from it.
//
// Thread safety:
//
//   - A Graph is immutable after Build and may be read from many goroutines.
//   - Predecessors is per-search state and is not safe for concurrent use.
//
// Complexity:
//
//   - Build:                  O(W×H×8) time, O(W×H + E) memory.
//   - Node / Has / Edges:     O(1).
//   - ShortestPathUnweighted: O(V + E).
//
// Errors:
//
//   - ErrNilGrid:      Build called with a nil grid.
//   - ErrInvalidPath:  PathWeight found a node or step that is not in the graph.
//   - ErrBrokenChain:  a predecessor chain does not lead back to the start.
package graph
