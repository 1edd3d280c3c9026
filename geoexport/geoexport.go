package geoexport

import (
	"errors"
	"fmt"
	"io"

	"github.com/paulmach/orb"
	"github.com/paulmach/orb/geojson"
	"github.com/paulmach/orb/planar"

	"github.com/katalvlaran/roadgrid/graph"
	"github.com/katalvlaran/roadgrid/search"
)

// Sentinel errors for export.
var (
	// ErrEmptyPath indicates a path without nodes.
	ErrEmptyPath = errors.New("geoexport: path is empty")
	// ErrNoRoute indicates a search result with Found == false or a nil result.
	ErrNoRoute = errors.New("geoexport: result has no route")
)

// Feature roles.
const (
	RoleRoute  = "route"
	RoleStart  = "start"
	RoleTarget = "target"
)

// Point maps a node to its planar point.
func Point(n graph.Node) orb.Point {
	return orb.Point{float64(n.X), float64(n.Y)}
}

// LineString converts p to a planar polyline, one vertex per node.
func LineString(p graph.Path) orb.LineString {
	ls := make(orb.LineString, len(p))
	for i, n := range p {
		ls[i] = Point(n)
	}
	return ls
}

// Length returns the planar length of p (0 for fewer than two nodes).
func Length(p graph.Path) float64 {
	return planar.Length(LineString(p))
}

// FeatureCollection builds the GeoJSON collection for p. props are copied
// onto the route feature; p must not be empty.
func FeatureCollection(p graph.Path, props geojson.Properties) (*geojson.FeatureCollection, error) {
	if len(p) == 0 {
		return nil, ErrEmptyPath
	}

	route := geojson.NewFeature(LineString(p))
	if props != nil {
		route.Properties = props.Clone()
	}
	route.Properties["role"] = RoleRoute
	route.Properties["hops"] = p.Hops()
	route.Properties["length"] = Length(p)

	start := geojson.NewFeature(Point(p.Start()))
	start.Properties["role"] = RoleStart
	target := geojson.NewFeature(Point(p.Target()))
	target.Properties["role"] = RoleTarget

	return geojson.NewFeatureCollection().Append(route).Append(start).Append(target), nil
}

// FromResult exports a search result, tagging the route with the strategy,
// its display name, the cost and the settled-node count.
func FromResult(res *search.Result) (*geojson.FeatureCollection, error) {
	if res == nil || !res.Found {
		return nil, ErrNoRoute
	}
	return FeatureCollection(res.Path, geojson.Properties{
		"strategy":  res.Strategy.String(),
		"algorithm": res.Strategy.DisplayName(),
		"cost":      res.Cost,
		"settled":   res.Settled,
	})
}

// Write encodes fc as JSON followed by a newline.
func Write(w io.Writer, fc *geojson.FeatureCollection) error {
	data, err := fc.MarshalJSON()
	if err != nil {
		return fmt.Errorf("geoexport: marshal: %w", err)
	}
	data = append(data, '\n')
	if _, err = w.Write(data); err != nil {
		return fmt.Errorf("geoexport: write: %w", err)
	}
	return nil
}
