package classify

import (
	"bufio"
	"fmt"
	"image"
	"image/color"
	"io"
	"strings"

	"github.com/katalvlaran/roadgrid/grid"
)

// FromImage classifies every pixel of img into road or obstacle.
// Grid coordinates are relative to img.Bounds().Min, so (0,0) is always the
// top-left pixel.
// Returns ErrNilImage, an ErrBadThreshold option violation, or
// grid.ErrEmptyGrid for a zero-sized image.
// Complexity: O(W×H).
func FromImage(img image.Image, opts ...Option) (*grid.Grid, error) {
	if img == nil {
		return nil, ErrNilImage
	}
	o := DefaultOptions()
	for _, opt := range opts {
		opt(&o)
	}
	if o.err != nil {
		return nil, o.err
	}

	b := img.Bounds()
	w, h := b.Dx(), b.Dy()
	if w <= 0 || h <= 0 {
		return nil, grid.ErrEmptyGrid
	}
	cells := make([]bool, w*h)
	for y := 0; y < h; y++ {
		for x := 0; x < w; x++ {
			cells[y*w+x] = Brightness(img.At(b.Min.X+x, b.Min.Y+y)) > o.Threshold
		}
	}

	return grid.New(w, h, cells)
}

// Brightness returns the integer mean of the non-premultiplied 8-bit red,
// green and blue channels of c. Alpha is ignored.
func Brightness(c color.Color) int {
	n := color.NRGBAModel.Convert(c).(color.NRGBA)
	return (int(n.R) + int(n.G) + int(n.B)) / 3
}

// FromText reads an ASCII map: one line per row, '.' for road, '#' for
// obstacle. Trailing blank lines and '\r' line endings are tolerated.
// Returns ErrBadSymbol for any other character and the grid errors for
// empty or ragged maps.
func FromText(r io.Reader) (*grid.Grid, error) {
	var rows [][]bool
	sc := bufio.NewScanner(r)
	line := 0
	for sc.Scan() {
		line++
		text := strings.TrimRight(sc.Text(), "\r")
		if text == "" {
			continue
		}
		row := make([]bool, len(text))
		for x, ch := range []byte(text) {
			switch ch {
			case '.':
				row[x] = true
			case '#':
			default:
				return nil, fmt.Errorf("%w: %q at line %d column %d", ErrBadSymbol, ch, line, x+1)
			}
		}
		rows = append(rows, row)
	}
	if err := sc.Err(); err != nil {
		return nil, fmt.Errorf("classify: read map: %w", err)
	}

	return grid.From2D(rows)
}
