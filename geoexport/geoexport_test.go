package geoexport_test

import (
	"bytes"
	"math"
	"testing"

	"github.com/paulmach/orb"
	"github.com/paulmach/orb/geojson"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/roadgrid/geoexport"
	"github.com/katalvlaran/roadgrid/graph"
	"github.com/katalvlaran/roadgrid/grid"
	"github.com/katalvlaran/roadgrid/search"
)

func openGraph(t *testing.T, w, h int) *graph.Graph {
	t.Helper()
	cells := make([]bool, w*h)
	for i := range cells {
		cells[i] = true
	}
	gr, err := grid.New(w, h, cells)
	require.NoError(t, err)
	g, err := graph.Build(gr)
	require.NoError(t, err)
	return g
}

func TestLength(t *testing.T) {
	p := graph.Path{{X: 0, Y: 0}, {X: 1, Y: 1}, {X: 2, Y: 1}, {X: 2, Y: 2}}
	assert.InDelta(t, 2+math.Sqrt2, geoexport.Length(p), 1e-12)
	assert.Zero(t, geoexport.Length(graph.Path{{X: 4, Y: 4}}))
	assert.Equal(t, orb.LineString{{0, 0}, {1, 1}, {2, 1}, {2, 2}}, geoexport.LineString(p))
}

// TestLength_MatchesCost checks planar length against search cost on every
// strategy.
func TestLength_MatchesCost(t *testing.T) {
	g := openGraph(t, 12, 7)
	for _, st := range []search.Strategy{search.BFS, search.Dijkstra, search.AStar} {
		res, err := search.FindPath(g, graph.Node{X: 0, Y: 6}, graph.Node{X: 11, Y: 0}, st)
		require.NoError(t, err)
		require.True(t, res.Found)
		assert.InDelta(t, res.Cost, geoexport.Length(res.Path), 1e-9, st)
	}
}

func TestFeatureCollection(t *testing.T) {
	p := graph.Path{{X: 0, Y: 0}, {X: 1, Y: 0}, {X: 2, Y: 1}}
	fc, err := geoexport.FeatureCollection(p, geojson.Properties{"incident": "abc"})
	require.NoError(t, err)
	require.Len(t, fc.Features, 3)

	route := fc.Features[0]
	assert.Equal(t, geoexport.RoleRoute, route.Properties.MustString("role"))
	assert.Equal(t, "abc", route.Properties.MustString("incident"))
	assert.Equal(t, 2, route.Properties.MustInt("hops"))
	assert.InDelta(t, 1+math.Sqrt2, route.Properties.MustFloat64("length"), 1e-12)
	assert.Equal(t, orb.LineString{{0, 0}, {1, 0}, {2, 1}}, route.Geometry)

	assert.Equal(t, geoexport.RoleStart, fc.Features[1].Properties.MustString("role"))
	assert.Equal(t, orb.Point{0, 0}, fc.Features[1].Geometry)
	assert.Equal(t, geoexport.RoleTarget, fc.Features[2].Properties.MustString("role"))
	assert.Equal(t, orb.Point{2, 1}, fc.Features[2].Geometry)

	_, err = geoexport.FeatureCollection(nil, nil)
	assert.ErrorIs(t, err, geoexport.ErrEmptyPath)
}

// TestFromResult_Write encodes a search result and decodes it back with orb.
func TestFromResult_Write(t *testing.T) {
	g := openGraph(t, 3, 3)
	res, err := search.FindPath(g, graph.Node{}, graph.Node{X: 2, Y: 2}, search.AStar)
	require.NoError(t, err)

	fc, err := geoexport.FromResult(res)
	require.NoError(t, err)

	var buf bytes.Buffer
	require.NoError(t, geoexport.Write(&buf, fc))
	assert.Equal(t, byte('\n'), buf.Bytes()[buf.Len()-1])

	back, err := geojson.UnmarshalFeatureCollection(buf.Bytes())
	require.NoError(t, err)
	require.Len(t, back.Features, 3)
	props := back.Features[0].Properties
	assert.Equal(t, "astar", props.MustString("strategy"))
	assert.Equal(t, "A* Algorithm", props.MustString("algorithm"))
	assert.InDelta(t, 2*math.Sqrt2, props.MustFloat64("cost"), 1e-12)

	_, err = geoexport.FromResult(&search.Result{Strategy: search.BFS})
	assert.ErrorIs(t, err, geoexport.ErrNoRoute)
	_, err = geoexport.FromResult(nil)
	assert.ErrorIs(t, err, geoexport.ErrNoRoute)
}
