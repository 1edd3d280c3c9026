// Package classify turns rasters into grid.Grid passability maps.
//
// It is the boundary between image handling and the routing core: decoding
// is the caller's job (register the image formats you need), classification
// is a per-pixel brightness test.
//
//   - FromImage: a pixel is road when the mean of its 8-bit R, G and B
//     channels is strictly greater than the threshold (default 200), so
//     light pixels are streets and dark pixels are buildings.
//   - FromText: ASCII maps, '.' is road and '#' is obstacle. Used by tests
//     and the CLI for hand-written maps.
package classify
