package dispatch

import (
	"fmt"
	"math"
	"sort"
	"sync"
	"time"

	"github.com/dhconnelly/rtreego"
	"github.com/google/uuid"

	"github.com/katalvlaran/roadgrid/graph"
	"github.com/katalvlaran/roadgrid/search"
)

// cellHalf is the half side of the square indexed for each incident.
// Incidents sit on integer cells, so squares of side 0.5 never overlap.
const cellHalf = 0.25

// record is the R-tree entry for one open incident.
type record struct {
	inc  *Incident
	rect rtreego.Rect
}

// Bounds implements rtreego.Spatial.
func (r *record) Bounds() rtreego.Rect {
	return r.rect
}

// Registry stores incidents and indexes the open ones spatially.
type Registry struct {
	mu    sync.RWMutex
	tree  *rtreego.Rtree
	byID  map[string]*record
	order []*record
	seq   uint64
	now   func() time.Time
}

// NewRegistry returns an empty registry.
func NewRegistry() *Registry {
	return &Registry{
		tree: rtreego.NewTree(2, 25, 50),
		byID: make(map[string]*record),
		now:  time.Now,
	}
}

// SetClock replaces the time source used for report and resolve stamps.
func (r *Registry) SetClock(now func() time.Time) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.now = now
}

func point(n graph.Node) rtreego.Point {
	return rtreego.Point{float64(n.X), float64(n.Y)}
}

// Add records a new open incident and returns a copy of it.
// Complexity: O(log N) amortised.
func (r *Registry) Add(loc graph.Node, tier search.Tier, description string) Incident {
	r.mu.Lock()
	defer r.mu.Unlock()

	inc := &Incident{
		ID:          uuid.NewString(),
		Location:    loc,
		Tier:        tier,
		Description: description,
		ReportedAt:  r.now(),
		seq:         r.seq,
	}
	r.seq++

	rec := &record{inc: inc, rect: point(loc).ToRect(cellHalf)}
	r.byID[inc.ID] = rec
	r.order = append(r.order, rec)
	r.tree.Insert(rec)

	return *inc
}

// Get returns the incident with the given ID.
func (r *Registry) Get(id string) (Incident, bool) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	rec, ok := r.byID[id]
	if !ok {
		return Incident{}, false
	}
	return *rec.inc, true
}

// MarkResolved flags the incident resolved and drops it from the spatial
// index. Returns ErrNotFound or ErrResolved.
func (r *Registry) MarkResolved(id string) (Incident, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	rec, ok := r.byID[id]
	if !ok {
		return Incident{}, fmt.Errorf("%w: %s", ErrNotFound, id)
	}
	if rec.inc.Resolved {
		return *rec.inc, fmt.Errorf("%w: %s", ErrResolved, id)
	}
	rec.inc.Resolved = true
	rec.inc.ResolvedAt = r.now()
	r.tree.Delete(rec)

	return *rec.inc, nil
}

// Nearest returns the open incident closest to p by straight-line distance,
// or false when none is open. Equal distances go to the earliest report.
func (r *Registry) Nearest(p graph.Node) (Incident, bool) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	q := point(p)
	hit := r.tree.NearestNeighbor(q)
	if hit == nil {
		return Incident{}, false
	}
	// The tree ranks by distance to the indexed square; re-rank the
	// candidates within reach by distance to the cell itself.
	radius := distance(p, hit.(*record).inc.Location) + 2*cellHalf
	var best *Incident
	bestDist := math.Inf(1)
	for _, obj := range r.tree.SearchIntersect(q.ToRect(radius)) {
		inc := obj.(*record).inc
		d := distance(p, inc.Location)
		if d < bestDist || (d == bestDist && inc.seq < best.seq) {
			best, bestDist = inc, d
		}
	}

	return *best, true
}

func distance(a, b graph.Node) float64 {
	return math.Hypot(float64(a.X-b.X), float64(a.Y-b.Y))
}

// Open returns the open incidents, most urgent tier first and in report
// order within a tier.
func (r *Registry) Open() []Incident {
	r.mu.RLock()
	defer r.mu.RUnlock()

	out := make([]Incident, 0, r.tree.Size())
	for _, rec := range r.order {
		if !rec.inc.Resolved {
			out = append(out, *rec.inc)
		}
	}
	sort.SliceStable(out, func(i, j int) bool {
		return out[i].Tier > out[j].Tier
	})
	return out
}

// All returns every incident in report order.
func (r *Registry) All() []Incident {
	r.mu.RLock()
	defer r.mu.RUnlock()

	out := make([]Incident, len(r.order))
	for i, rec := range r.order {
		out[i] = *rec.inc
	}
	return out
}

// Len returns the total number of incidents.
func (r *Registry) Len() int {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return len(r.order)
}

// OpenCount returns the number of open incidents.
func (r *Registry) OpenCount() int {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return r.tree.Size()
}
