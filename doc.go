// Package roadgrid turns a raster map into a routable road network and plans
// emergency-response routes across it.
//
// A map (an image or an ASCII file) is classified into a grid of road and
// obstacle cells, the road cells become nodes of an 8-connected weighted
// graph, and each incident is reached from a depot with the search strategy
// its urgency tier selects: BFS for routine calls, Dijkstra for standard
// ones and A* for urgent ones.
//
// Packages:
//
//	grid/      - dense W×H passability grid, neighbor offsets, 8-connected components
//	classify/  - image and ASCII map decoding into a grid (brightness threshold)
//	graph/     - immutable road graph: nodes, edges (1 or √2), paths, predecessors
//	search/    - FindPath with BFS, Dijkstra and A*; tiers, strategies, results
//	dispatch/  - incident registry (R-tree) and the depot dispatcher
//	geoexport/ - routes as orb geometries and GeoJSON feature collections
//	config/    - TOML configuration: threshold, routing, depot, logging, incidents
//	cmd/roadgrid, internal/cli - the roadgrid command line (route, stats, dispatch)
//
// Quick ASCII example:
//
//	. . #        (0,0) → (1,1) → (1,2)
//	. . #        cost 1 + √2 ≈ 2.414
//	# . .
//
// See examples/ for a full dispatch shift and each package's Example tests
// for smaller snippets.
//
//	go install github.com/katalvlaran/roadgrid/cmd/roadgrid@latest
package roadgrid
