package geoexport_test

import (
	"fmt"

	"github.com/katalvlaran/roadgrid/geoexport"
	"github.com/katalvlaran/roadgrid/graph"
)

func ExampleLineString() {
	p := graph.Path{{X: 0, Y: 0}, {X: 1, Y: 1}, {X: 1, Y: 2}}
	fmt.Println(geoexport.LineString(p))
	fmt.Printf("%.4f\n", geoexport.Length(p))
	// Output:
	// [[0 0] [1 1] [1 2]]
	// 2.4142
}
