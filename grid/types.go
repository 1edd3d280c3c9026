package grid

import "errors"

// Sentinel errors for grid construction.
var (
	// ErrEmptyGrid indicates the input has no rows or no columns.
	ErrEmptyGrid = errors.New("grid: input grid must have at least one row and one column")
	// ErrNonRectangular indicates rows of differing lengths.
	ErrNonRectangular = errors.New("grid: all rows must have the same length")
	// ErrSizeMismatch indicates a flat cell slice whose length is not Width×Height.
	ErrSizeMismatch = errors.New("grid: cell count does not match width×height")
)

// offsets8 lists the eight neighbor offsets in row-major scan order.
// graph.Build relies on the same order for deterministic adjacency.
var offsets8 = [8][2]int{
	{-1, -1}, {0, -1}, {1, -1},
	{-1, 0}, {1, 0},
	{-1, 1}, {0, 1}, {1, 1},
}

// Offsets returns the eight neighbor offsets (dx, dy) in the canonical
// row-major order: the row above left to right, then left and right, then
// the row below left to right.
func Offsets() [8][2]int {
	return offsets8
}

// Grid is a read-only passability raster. It is immutable once built.
type Grid struct {
	width, height int
	cells         []bool // row-major, len = width*height
	passable      int    // number of true cells, cached at construction
}
