// Package geoexport renders routes as planar geometry and GeoJSON for
// external viewers.
//
// Cell (x, y) maps to the planar point [x, y]. Raster rows grow downward, so
// viewers that assume a y-up axis show the map mirrored vertically.
//
// Because every step of a route is an axis-aligned unit or a unit diagonal,
// the planar length of a route equals its graph weight up to rounding.
//
// Output layout of FeatureCollection:
//
//   - one LineString feature, "role" = "route", carrying the caller's
//     properties plus "hops" and "length";
//   - one Point feature, "role" = "start";
//   - one Point feature, "role" = "target".
//
// Errors:
//
//   - ErrEmptyPath if the path has no nodes.
//   - ErrNoRoute if FromResult is given a result without a path.
package geoexport
