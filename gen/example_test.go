package gen_test

import (
	"fmt"

	"github.com/katalvlaran/triest/gen"
)

// ExampleBuild composes a triangle, a path and a self-loop.
func ExampleBuild() {
	edges, err := gen.Build(nil, gen.Cycle(3), gen.Path(3), gen.Loops(1))
	if err != nil {
		fmt.Println(err)
		return
	}
	for _, e := range edges {
		fmt.Print(e.U, "-", e.V, " ")
	}
	fmt.Println()

	// Output:
	// 0-1 1-2 2-0 3-4 4-5 6-6
}

// ExampleBuild_error shows the sentinel wrapping.
func ExampleBuild_error() {
	_, err := gen.Build(nil, gen.Wheel(3))
	fmt.Println(err)

	// Output:
	// Build: Wheel: n=3 < min=4: gen: parameter too small
}
