// Package grid holds the passability grid that feeds graph construction.
//
// What:
//
//   - Grid is an immutable W×H raster of booleans, true = traversable ("road").
//   - Cells are stored row-major; Index(x,y) = y*Width + x.
//   - ConnectedComponents labels 8-connected road regions, a cheap way to
//     know in advance whether two cells can reach each other at all.
//
// Why:
//
//   - The pixel classifier produces a Grid once per raster and never touches
//     it again; every later stage (graph.Build, search) only reads it.
//
// Complexity:
//
//   - New / From2D:         O(W×H) time and memory (defensive copy).
//   - At / InBounds / Index: O(1).
//   - ConnectedComponents:  O(W×H×8) time, O(W×H) memory.
//
// Errors:
//
//   - ErrEmptyGrid: zero width or height.
//   - ErrNonRectangular: rows of differing lengths.
//   - ErrSizeMismatch: flat cell slice does not hold Width×Height values.
package grid
