package graph

import (
	"errors"
	"fmt"
	"math"
)

// Edge weights produced by Build. No other values occur.
const (
	// OrthogonalWeight is the cost of a horizontal or vertical step.
	OrthogonalWeight = 1.0
	// DiagonalWeight is the cost of a diagonal step.
	DiagonalWeight = math.Sqrt2
)

// Sentinel errors for graph operations.
var (
	// ErrNilGrid indicates Build was given a nil grid.
	ErrNilGrid = errors.New("graph: grid is nil")

	// ErrInvalidPath indicates a path that is empty, leaves the graph, or
	// steps between nodes that are not adjacent.
	ErrInvalidPath = errors.New("graph: invalid path")

	// ErrBrokenChain indicates a predecessor chain that does not end at the
	// expected start node. It points to a bug in the code that filled the
	// chain, never to bad caller input.
	ErrBrokenChain = errors.New("graph: predecessor chain does not reach start")
)

// Node is a traversable cell. Nodes compare by coordinates.
type Node struct {
	X, Y int
}

// String renders the node as "(x, y)".
func (n Node) String() string {
	return fmt.Sprintf("(%d, %d)", n.X, n.Y)
}

// Edge is a directed connection From → To with a positive Weight.
type Edge struct {
	From   Node
	To     Node
	Weight float64
}

// String renders the edge as "(x1, y1) -> (x2, y2) (w)".
func (e Edge) String() string {
	return fmt.Sprintf("%v -> %v (%g)", e.From, e.To, e.Weight)
}

// Path is an ordered start→target node sequence in which consecutive nodes
// are joined by graph edges. A valid Path is never empty.
type Path []Node

// Start returns the first node. The path must not be empty.
func (p Path) Start() Node { return p[0] }

// Target returns the last node. The path must not be empty.
func (p Path) Target() Node { return p[len(p)-1] }

// Hops returns the number of edges traversed, len(p)-1 (0 for an empty path).
func (p Path) Hops() int {
	if len(p) == 0 {
		return 0
	}
	return len(p) - 1
}
