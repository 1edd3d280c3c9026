package grid

import "strings"

// New builds a Grid of the given size from a row-major slice of cells.
// The slice is copied, so later changes by the caller are not observed.
// Returns ErrEmptyGrid for non-positive dimensions and ErrSizeMismatch
// when len(cells) != width*height.
// Complexity: O(W×H).
func New(width, height int, cells []bool) (*Grid, error) {
	if width <= 0 || height <= 0 {
		return nil, ErrEmptyGrid
	}
	if len(cells) != width*height {
		return nil, ErrSizeMismatch
	}
	g := &Grid{
		width:  width,
		height: height,
		cells:  make([]bool, len(cells)),
	}
	copy(g.cells, cells)
	for _, c := range g.cells {
		if c {
			g.passable++
		}
	}

	return g, nil
}

// From2D builds a Grid from rows[y][x]. All rows must have the same,
// non-zero length.
// Returns ErrEmptyGrid or ErrNonRectangular on malformed input.
func From2D(rows [][]bool) (*Grid, error) {
	if len(rows) == 0 || len(rows[0]) == 0 {
		return nil, ErrEmptyGrid
	}
	h, w := len(rows), len(rows[0])
	cells := make([]bool, 0, w*h)
	for _, row := range rows {
		if len(row) != w {
			return nil, ErrNonRectangular
		}
		cells = append(cells, row...)
	}

	return New(w, h, cells)
}

// Width returns the number of columns.
func (g *Grid) Width() int { return g.width }

// Height returns the number of rows.
func (g *Grid) Height() int { return g.height }

// Len returns Width×Height.
func (g *Grid) Len() int { return len(g.cells) }

// Passable returns how many cells are traversable.
func (g *Grid) Passable() int { return g.passable }

// InBounds reports whether (x,y) lies within the grid boundaries.
// Complexity: O(1).
func (g *Grid) InBounds(x, y int) bool {
	return x >= 0 && x < g.width && y >= 0 && y < g.height
}

// At reports whether (x,y) is traversable. Out-of-bounds cells are not.
// Complexity: O(1).
func (g *Grid) At(x, y int) bool {
	if !g.InBounds(x, y) {
		return false
	}
	return g.cells[y*g.width+x]
}

// Index maps (x,y) to a row-major index: y*Width + x.
// The caller must ensure (x,y) is in bounds.
func (g *Grid) Index(x, y int) int {
	return y*g.width + x
}

// Coordinate converts a row-major index back to (x,y).
func (g *Grid) Coordinate(idx int) (x, y int) {
	return idx % g.width, idx / g.width
}

// String renders the grid with '.' for road and '#' for obstacle,
// one line per row. Handy in test failure messages.
func (g *Grid) String() string {
	var b strings.Builder
	b.Grow((g.width + 1) * g.height)
	for y := 0; y < g.height; y++ {
		for x := 0; x < g.width; x++ {
			if g.cells[y*g.width+x] {
				b.WriteByte('.')
			} else {
				b.WriteByte('#')
			}
		}
		b.WriteByte('\n')
	}
	return b.String()
}
