package msm_test

import (
	"fmt"

	"github.com/SilverMM/enspara/msm"
	"github.com/SilverMM/enspara/ragged"
)

// Example demonstrates the whole estimation pipeline: ragged label
// sequences → transition counts → row-stochastic matrix.
func Example() {
	assigns, _ := ragged.New([][]int{
		{0, 0, 1, 1, 0},
		{1, 1, 0},
	})

	counts, _ := msm.Count(assigns, 2, msm.WithLag(1))
	for _, e := range counts.Pairs() {
		fmt.Printf("count[%d][%d] = %g\n", e.Row, e.Col, e.Count)
	}

	probs, _ := msm.Estimate(counts)
	fmt.Printf("P[1][0] = %.2g\n", probs.At(1, 0))

	// Output:
	// count[0][0] = 1
	// count[0][1] = 1
	// count[1][0] = 2
	// count[1][1] = 2
	// P[1][0] = 0.5
}

// ExampleEstimate_reversible shows detailed-balance enforcement via
// count symmetrization.
func ExampleEstimate_reversible() {
	assigns, _ := ragged.New([][]int{{0, 1, 1, 0, 0, 1}})

	counts, _ := msm.Count(assigns, 2)
	probs, _ := msm.Estimate(counts, msm.WithReversible())

	fmt.Printf("P[0][1] = %.3f\n", probs.At(0, 1))
	fmt.Printf("P[1][0] = %.3f\n", probs.At(1, 0))

	// Output:
	// P[0][1] = 0.600
	// P[1][0] = 0.600
}
