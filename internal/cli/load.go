package cli

import (
	"context"
	"fmt"
	"image"
	_ "image/gif"
	_ "image/jpeg"
	_ "image/png"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	_ "golang.org/x/image/bmp"

	"github.com/katalvlaran/roadgrid/classify"
	"github.com/katalvlaran/roadgrid/graph"
	"github.com/katalvlaran/roadgrid/grid"
)

// textExts are map extensions read as ASCII instead of images.
var textExts = map[string]bool{".txt": true, ".map": true}

// loadGrid reads a map file. Text maps use '.'/'#'; everything else is
// decoded as an image and classified with threshold.
func loadGrid(path string, threshold int) (*grid.Grid, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	if textExts[strings.ToLower(filepath.Ext(path))] {
		gr, err := classify.FromText(f)
		if err != nil {
			return nil, fmt.Errorf("%s: %w", path, err)
		}
		return gr, nil
	}

	img, format, err := image.Decode(f)
	if err != nil {
		return nil, fmt.Errorf("decode %s: %w", path, err)
	}
	gr, err := classify.FromImage(img, classify.WithThreshold(threshold))
	if err != nil {
		return nil, fmt.Errorf("classify %s (%s): %w", path, format, err)
	}
	return gr, nil
}

// loadGraph loads a map and builds its graph, logging sizes at debug level.
func loadGraph(ctx context.Context, path string, threshold int) (*grid.Grid, *graph.Graph, error) {
	logger := loggerFromContext(ctx)
	prog := newProgress(logger)

	gr, err := loadGrid(path, threshold)
	if err != nil {
		return nil, nil, err
	}
	g, err := graph.Build(gr)
	if err != nil {
		return nil, nil, err
	}
	prog.done("graph built", "width", g.Width(), "height", g.Height(), "nodes", g.NodeCount(), "edges", g.EdgeCount())
	return gr, g, nil
}

// parsePoint parses "x,y".
func parsePoint(s string) (graph.Node, error) {
	xs, ys, ok := strings.Cut(s, ",")
	if !ok {
		return graph.Node{}, fmt.Errorf("invalid point %q: want x,y", s)
	}
	x, err := strconv.Atoi(strings.TrimSpace(xs))
	if err != nil {
		return graph.Node{}, fmt.Errorf("invalid point %q: %w", s, err)
	}
	y, err := strconv.Atoi(strings.TrimSpace(ys))
	if err != nil {
		return graph.Node{}, fmt.Errorf("invalid point %q: %w", s, err)
	}
	return graph.Node{X: x, Y: y}, nil
}
