package builder_test

import (
	"fmt"

	"github.com/katalvlaran/lvroute/builder"
)

// ExampleBuildGraph composes a 2×3 grid fixture with constant weights.
func ExampleBuildGraph() {
	g, err := builder.BuildGraph(nil,
		[]builder.BuilderOption{builder.WithConstantWeight(2)},
		builder.Grid(2, 3),
	)
	if err != nil {
		fmt.Println("error:", err)
		return
	}
	w, _ := g.GetEdge(builder.GridID(0, 0), builder.GridID(0, 1))
	fmt.Println(g.NodeCount(), g.EdgeCount(), w)
	// Output:
	// 6 14 2
}
