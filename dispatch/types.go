package dispatch

import (
	"errors"
	"time"

	"github.com/charmbracelet/log"

	"github.com/katalvlaran/roadgrid/graph"
	"github.com/katalvlaran/roadgrid/search"
)

// Sentinel errors for the dispatch workflow.
var (
	// ErrOffRoad indicates a location that is not a node of the road graph.
	ErrOffRoad = errors.New("dispatch: location is not on a road")

	// ErrNoDepot indicates routing was requested before a depot was set.
	ErrNoDepot = errors.New("dispatch: no depot configured")

	// ErrNotFound indicates an unknown incident ID.
	ErrNotFound = errors.New("dispatch: incident not found")

	// ErrResolved indicates an operation on an already resolved incident.
	ErrResolved = errors.New("dispatch: incident already resolved")

	// ErrNoIncidents indicates there is no open incident to dispatch.
	ErrNoIncidents = errors.New("dispatch: no open incidents")

	// ErrNilGraph indicates NewDispatcher was given a nil graph.
	ErrNilGraph = errors.New("dispatch: graph is nil")
)

// Incident is a reported emergency at a road cell.
type Incident struct {
	ID          string
	Location    graph.Node
	Tier        search.Tier
	Description string
	Resolved    bool
	ReportedAt  time.Time
	ResolvedAt  time.Time

	seq uint64 // report order, breaks distance and urgency ties
}

// Assignment is the outcome of routing a responder to one incident.
type Assignment struct {
	// Incident is the state after the attempt (Resolved set on success).
	Incident Incident
	// Result is the route from the depot; Result.Found is false when the
	// incident is unreachable.
	Result *search.Result
}

// Options configures a Dispatcher.
type Options struct {
	Depot    *graph.Node
	Logger   *log.Logger
	Strategy *search.Strategy // fixed strategy; nil means search.StrategyFor(tier)
	Search   []search.Option

	err error
}

// Option is a functional option for NewDispatcher.
type Option func(*Options)

// DefaultOptions returns empty options: no depot, tier-based strategies and
// a nil Logger, which NewDispatcher replaces with a discarding one.
func DefaultOptions() Options {
	return Options{}
}

// WithDepot sets the service depot all routes start from.
func WithDepot(n graph.Node) Option {
	return func(o *Options) {
		o.Depot = &n
	}
}

// WithLogger sets the logger. nil keeps the discarding logger.
func WithLogger(l *log.Logger) Option {
	return func(o *Options) {
		o.Logger = l
	}
}

// WithStrategy routes every incident with s instead of the tier's strategy.
// An unsupported s is recorded and reported by NewDispatcher.
func WithStrategy(s search.Strategy) Option {
	return func(o *Options) {
		if !s.Valid() {
			o.err = search.ErrUnknownStrategy
			return
		}
		o.Strategy = &s
	}
}

// WithSearchOptions passes extra options (context hooks, settle observers)
// to every search.
func WithSearchOptions(opts ...search.Option) Option {
	return func(o *Options) {
		o.Search = append(o.Search, opts...)
	}
}
