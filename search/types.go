package search

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/katalvlaran/roadgrid/graph"
)

// ErrConfiguration is the root of every input-validation error of FindPath,
// ParseTier and ParseStrategy. Test with errors.Is.
var ErrConfiguration = errors.New("search: invalid configuration")

// Configuration errors.
var (
	// ErrNilGraph indicates a nil *graph.Graph.
	ErrNilGraph = fmt.Errorf("%w: graph is nil", ErrConfiguration)

	// ErrEmptyGraph indicates a graph without nodes.
	ErrEmptyGraph = fmt.Errorf("%w: graph has no nodes", ErrConfiguration)

	// ErrStartNotFound indicates a start point that is not a node (off the
	// raster or on an obstacle).
	ErrStartNotFound = fmt.Errorf("%w: start is not a node", ErrConfiguration)

	// ErrTargetNotFound indicates a target point that is not a node.
	ErrTargetNotFound = fmt.Errorf("%w: target is not a node", ErrConfiguration)

	// ErrUnknownStrategy indicates a Strategy value or name outside the
	// supported set.
	ErrUnknownStrategy = fmt.Errorf("%w: unknown strategy", ErrConfiguration)

	// ErrUnknownTier indicates a tier name ParseTier does not recognise.
	ErrUnknownTier = fmt.Errorf("%w: unknown tier", ErrConfiguration)

	// ErrNilContext indicates WithContext(nil).
	ErrNilContext = fmt.Errorf("%w: context is nil", ErrConfiguration)
)

// ErrInconsistentState reports a predecessor chain that does not lead back
// to the start node. It wraps graph.ErrBrokenChain.
var ErrInconsistentState = errors.New("search: inconsistent search state")

// Strategy selects a search algorithm.
type Strategy int

const (
	// BFS minimises hop count.
	BFS Strategy = iota
	// Dijkstra minimises total weight.
	Dijkstra
	// AStar minimises total weight, guided by a straight-line heuristic.
	AStar
)

// String returns the short lower-case name accepted by ParseStrategy.
func (s Strategy) String() string {
	switch s {
	case BFS:
		return "bfs"
	case Dijkstra:
		return "dijkstra"
	case AStar:
		return "astar"
	default:
		return fmt.Sprintf("strategy(%d)", int(s))
	}
}

// DisplayName returns the human-readable algorithm name used in reports.
func (s Strategy) DisplayName() string {
	switch s {
	case BFS:
		return "BFS Algorithm"
	case Dijkstra:
		return "Dijkstra's Algorithm"
	case AStar:
		return "A* Algorithm"
	default:
		return "Unknown Algorithm"
	}
}

// Valid reports whether s is one of the supported strategies.
func (s Strategy) Valid() bool {
	return s >= BFS && s <= AStar
}

// ParseStrategy parses a strategy name, case-insensitively: "bfs",
// "dijkstra", "astar" or "a*".
func ParseStrategy(name string) (Strategy, error) {
	switch strings.ToLower(strings.TrimSpace(name)) {
	case "bfs":
		return BFS, nil
	case "dijkstra":
		return Dijkstra, nil
	case "astar", "a*":
		return AStar, nil
	}
	return 0, fmt.Errorf("%w: %q", ErrUnknownStrategy, name)
}

// MarshalText implements encoding.TextMarshaler.
func (s Strategy) MarshalText() ([]byte, error) {
	if !s.Valid() {
		return nil, fmt.Errorf("%w: %d", ErrUnknownStrategy, int(s))
	}
	return []byte(s.String()), nil
}

// UnmarshalText implements encoding.TextUnmarshaler via ParseStrategy.
func (s *Strategy) UnmarshalText(text []byte) error {
	v, err := ParseStrategy(string(text))
	if err != nil {
		return err
	}
	*s = v
	return nil
}

// Tier is the urgency of a routing request. Larger values are more urgent.
type Tier int

const (
	// TierRoutine is a non-urgent request.
	TierRoutine Tier = iota
	// TierStandard is the default urgency.
	TierStandard
	// TierUrgent is a life-critical request.
	TierUrgent
)

// String returns the lower-case tier name accepted by ParseTier.
func (t Tier) String() string {
	switch t {
	case TierRoutine:
		return "routine"
	case TierStandard:
		return "standard"
	case TierUrgent:
		return "urgent"
	default:
		return fmt.Sprintf("tier(%d)", int(t))
	}
}

// ParseTier parses "routine", "standard" or "urgent", case-insensitively.
func ParseTier(name string) (Tier, error) {
	switch strings.ToLower(strings.TrimSpace(name)) {
	case "routine":
		return TierRoutine, nil
	case "standard":
		return TierStandard, nil
	case "urgent":
		return TierUrgent, nil
	}
	return 0, fmt.Errorf("%w: %q", ErrUnknownTier, name)
}

// MarshalText implements encoding.TextMarshaler.
func (t Tier) MarshalText() ([]byte, error) {
	return []byte(t.String()), nil
}

// UnmarshalText implements encoding.TextUnmarshaler via ParseTier.
func (t *Tier) UnmarshalText(text []byte) error {
	v, err := ParseTier(string(text))
	if err != nil {
		return err
	}
	*t = v
	return nil
}

// StrategyFor maps an urgency tier to its search strategy: routine → BFS,
// standard → Dijkstra, urgent → AStar. Any other value falls back to
// Dijkstra.
func StrategyFor(t Tier) Strategy {
	switch t {
	case TierRoutine:
		return BFS
	case TierUrgent:
		return AStar
	default:
		return Dijkstra
	}
}

// Result is the outcome of one FindPath call.
type Result struct {
	// Strategy is the algorithm that produced the result.
	Strategy Strategy
	// Path runs start → target; nil when Found is false.
	Path graph.Path
	// Cost is the total edge weight of Path (0 when Found is false).
	Cost float64
	// Hops is len(Path)-1.
	Hops int
	// Settled counts the nodes dequeued and expanded by the search.
	Settled int
	// Found reports whether target is reachable from start.
	Found bool
}

// Options configures a FindPath call.
//
// Ctx      – checked once per dequeue; cancellation aborts the search.
// OnSettle – called with every node the search settles, in settle order.
type Options struct {
	Ctx      context.Context
	OnSettle func(graph.Node)

	err error // first invalid option, reported by FindPath
}

// Option is a functional option for FindPath.
type Option func(*Options)

// DefaultOptions returns a background context and a no-op settle hook.
func DefaultOptions() Options {
	return Options{
		Ctx:      context.Background(),
		OnSettle: func(graph.Node) {},
	}
}

// WithContext sets the context used for cooperative cancellation.
// A nil ctx is recorded as ErrNilContext.
func WithContext(ctx context.Context) Option {
	return func(o *Options) {
		if ctx == nil {
			o.err = ErrNilContext
			return
		}
		o.Ctx = ctx
	}
}

// WithOnSettle registers fn to observe settled nodes. nil restores the no-op.
func WithOnSettle(fn func(graph.Node)) Option {
	return func(o *Options) {
		if fn == nil {
			fn = func(graph.Node) {}
		}
		o.OnSettle = fn
	}
}
