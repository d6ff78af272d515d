package grid_test

import (
	"fmt"

	"github.com/cwbudde/algo-gamma/grid"
)

func ExampleMerge() {
	lo := []float64{1, 2, 3}
	hi := []float64{2, 3, 4}

	x, _ := grid.Merge(lo, hi)
	fmt.Println(x)
	// Output:
	// [1 2 3 4]
}

func ExampleMergeMidpoints() {
	lo := []float64{1, 2}
	hi := []float64{2, 3}

	x, _ := grid.MergeMidpoints(lo, hi)
	fmt.Println(x)
	// Output:
	// [1 1.5 2 2.5 3]
}

func ExampleTrapezoidBins() {
	// Boundary points for three bins and a curve sampled on them.
	x := []float64{1, 2, 3, 4}
	f := []float64{4, 2, 1, 0.5}

	perBin, _ := grid.TrapezoidBins(x, f)
	fmt.Println(perBin)
	// Output:
	// [3 1.5 0.75]
}
