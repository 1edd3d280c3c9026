// Package dispatch runs the emergency workflow on top of the road graph:
// incidents are reported at road cells, the registry answers "which open
// incident is nearest to this point", and the dispatcher routes a responder
// from the service depot to an incident with the strategy its tier calls for.
//
// Registry:
//
//   - Incidents get a random UUID and a report sequence number.
//   - Open incidents live in an R-tree (github.com/dhconnelly/rtreego); a
//     resolved incident leaves the tree but stays queryable by ID.
//   - Nearest picks the smallest straight-line distance; equal distances go
//     to the incident reported first.
//   - All methods are safe for concurrent use.
//
// Dispatcher:
//
//   - Resolve(id) routes depot → incident with search.StrategyFor(tier),
//     unless a fixed strategy was configured, and marks the incident resolved
//     only when a route exists. An unreachable incident stays open.
//   - DispatchNearest resolves the open incident nearest to a point.
//   - DispatchAll works through every open incident, most urgent first,
//     in report order within a tier.
//
// Errors:
//
//   - ErrOffRoad   – a depot or incident location that is not a road node.
//   - ErrNoDepot   – routing requested before a depot was set.
//   - ErrNotFound  – unknown incident ID.
//   - ErrResolved  – the incident was already resolved.
//   - ErrNoIncidents – DispatchNearest found nothing open.
package dispatch
