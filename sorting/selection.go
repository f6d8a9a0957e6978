package sorting

import (
	"fmt"

	"github.com/katalvlaran/stepviz/step"
)

// Selection traces selection sort over input.
//
// Emission, for each position i in [0, n-2]: one step per candidate
// comparison while scanning [i+1, n-1] for the minimum, a step announcing
// each new minimum, a swap step when the minimum is not already at i, and a
// step settling position i. The final index is marked sorted after the loop.
//
// Complexity: O(n²) comparisons, each emitted as a step.
func Selection(input []int) []step.ArrayStep {
	t := newTracer(input)
	t.record("initial array")

	n := len(t.work)
	for i := 0; i < n-1; i++ {
		min := i
		for j := i + 1; j < n; j++ {
			t.record(fmt.Sprintf("comparing a[%d]=%d with current minimum a[%d]=%d", j, t.work[j], min, t.work[min]), j, min)
			if t.work[j] < t.work[min] {
				min = j
				t.record(fmt.Sprintf("new minimum a[%d]=%d", j, t.work[j]), j)
			}
		}
		if min != i {
			t.swap(i, min)
			t.record(fmt.Sprintf("swapped minimum %d into position %d", t.work[i], i), i, min)
		}
		t.markSorted(i)
		t.record(fmt.Sprintf("position %d holds %d and is sorted", i, t.work[i]), i)
	}

	t.markSortedRange(0, n-1)
	t.record("array is sorted")
	return t.steps
}
