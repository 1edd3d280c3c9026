package dispatch

import (
	"context"
	"fmt"
	"io"

	"github.com/charmbracelet/log"

	"github.com/katalvlaran/roadgrid/graph"
	"github.com/katalvlaran/roadgrid/search"
)

// Dispatcher routes responders from a depot to incidents in a Registry.
// It is safe for concurrent use when the depot is not changed concurrently
// with routing.
type Dispatcher struct {
	g     *graph.Graph
	reg   *Registry
	opts  Options
	log   *log.Logger
	depot *graph.Node
}

// NewDispatcher binds a graph and a registry. A nil registry gets a fresh one.
// Returns ErrNilGraph, ErrOffRoad for a depot off the road network, or the
// error recorded by an invalid option.
func NewDispatcher(g *graph.Graph, reg *Registry, opts ...Option) (*Dispatcher, error) {
	if g == nil {
		return nil, ErrNilGraph
	}
	o := DefaultOptions()
	for _, opt := range opts {
		opt(&o)
	}
	if o.err != nil {
		return nil, o.err
	}
	if reg == nil {
		reg = NewRegistry()
	}
	logger := o.Logger
	if logger == nil {
		logger = log.New(io.Discard)
	}

	d := &Dispatcher{g: g, reg: reg, opts: o, log: logger}
	if o.Depot != nil {
		if err := d.SetDepot(*o.Depot); err != nil {
			return nil, err
		}
	}
	return d, nil
}

// Registry returns the underlying registry.
func (d *Dispatcher) Registry() *Registry { return d.reg }

// Depot returns the depot and whether one is set.
func (d *Dispatcher) Depot() (graph.Node, bool) {
	if d.depot == nil {
		return graph.Node{}, false
	}
	return *d.depot, true
}

// SetDepot moves the depot. It must be a road node.
func (d *Dispatcher) SetDepot(n graph.Node) error {
	if !d.g.Has(n) {
		return fmt.Errorf("%w: depot %v", ErrOffRoad, n)
	}
	d.depot = &n
	d.log.Debug("depot set", "at", n)
	return nil
}

// Report registers an incident at (x, y). It must be a road node.
func (d *Dispatcher) Report(x, y int, tier search.Tier, description string) (Incident, error) {
	n, ok := d.g.Node(x, y)
	if !ok {
		return Incident{}, fmt.Errorf("%w: incident at (%d, %d)", ErrOffRoad, x, y)
	}
	inc := d.reg.Add(n, tier, description)
	d.log.Info("incident reported", "id", inc.ID, "at", n, "tier", tier)
	return inc, nil
}

// strategyFor picks the configured fixed strategy or the tier's default.
func (d *Dispatcher) strategyFor(t search.Tier) search.Strategy {
	if d.opts.Strategy != nil {
		return *d.opts.Strategy
	}
	return search.StrategyFor(t)
}

// Resolve routes from the depot to incident id and marks it resolved when a
// route exists. An unreachable incident is returned unresolved with
// Result.Found == false and a nil error.
func (d *Dispatcher) Resolve(ctx context.Context, id string) (*Assignment, error) {
	if d.depot == nil {
		return nil, ErrNoDepot
	}
	inc, ok := d.reg.Get(id)
	if !ok {
		return nil, fmt.Errorf("%w: %s", ErrNotFound, id)
	}
	if inc.Resolved {
		return nil, fmt.Errorf("%w: %s", ErrResolved, id)
	}

	st := d.strategyFor(inc.Tier)
	opts := append([]search.Option{search.WithContext(ctx)}, d.opts.Search...)
	res, err := search.FindPath(d.g, *d.depot, inc.Location, st, opts...)
	if err != nil {
		return nil, fmt.Errorf("dispatch: route to %s: %w", id, err)
	}
	if !res.Found {
		d.log.Warn("incident unreachable", "id", id, "at", inc.Location, "algorithm", st.DisplayName())
		return &Assignment{Incident: inc, Result: res}, nil
	}

	inc, err = d.reg.MarkResolved(id)
	if err != nil {
		return nil, err
	}
	d.log.Info("incident resolved",
		"id", id,
		"algorithm", st.DisplayName(),
		"cost", res.Cost,
		"hops", res.Hops,
		"settled", res.Settled,
	)
	return &Assignment{Incident: inc, Result: res}, nil
}

// DispatchNearest resolves the open incident nearest to from. Returns
// ErrNoIncidents when nothing is open.
func (d *Dispatcher) DispatchNearest(ctx context.Context, from graph.Node) (*Assignment, error) {
	inc, ok := d.reg.Nearest(from)
	if !ok {
		return nil, ErrNoIncidents
	}
	d.log.Debug("nearest incident", "from", from, "id", inc.ID, "at", inc.Location)
	return d.Resolve(ctx, inc.ID)
}

// DispatchAll routes to every open incident, most urgent first. Unreachable
// incidents stay open and appear with Result.Found == false. It stops at the
// first error and returns the assignments made so far.
func (d *Dispatcher) DispatchAll(ctx context.Context) ([]Assignment, error) {
	if d.depot == nil {
		return nil, ErrNoDepot
	}
	open := d.reg.Open()
	out := make([]Assignment, 0, len(open))
	for _, inc := range open {
		a, err := d.Resolve(ctx, inc.ID)
		if err != nil {
			return out, err
		}
		out = append(out, *a)
	}
	return out, nil
}
