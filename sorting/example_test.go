package sorting_test

import (
	"fmt"

	"github.com/katalvlaran/stepviz/sorting"
)

// ExampleBubble traces bubble sort and inspects the terminal step.
func ExampleBubble() {
	steps := sorting.Bubble([]int{5, 3, 8, 1, 9})

	final := steps[len(steps)-1]
	fmt.Println(final.Array)
	fmt.Println(final.Message)
	// Output:
	// [1 3 5 8 9]
	// array is sorted
}

// ExampleCompute selects an algorithm by method name.
func ExampleCompute() {
	steps, err := sorting.Compute([]int{4, 2, 7, 1}, sorting.WithMethod(sorting.MethodQuick))
	if err != nil {
		fmt.Println("error:", err)
		return
	}

	fmt.Println(steps[0].Message)
	fmt.Println(steps[len(steps)-1].Array)
	// Output:
	// initial array
	// [1 2 4 7]
}
