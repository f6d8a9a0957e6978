// Package sorting provides step traces for five classic sorting algorithms
// over small integer arrays.
//
// Every stepper shares the same contract: the first step is the unmodified
// input with no highlights, the last step marks every index sorted, the
// caller's slice is never mutated, and re-invocation with identical input
// reproduces an identical trace.
package sorting

import (
	"fmt"

	"github.com/katalvlaran/stepviz/step"
)

// Bubble traces bubble sort over input.
//
// Emission, per pass over the unsorted prefix: one step per adjacent
// comparison, a post-swap step whenever the pair is exchanged, and a
// pass-closing step settling the last unsorted element. The run terminates
// after the first pass with zero swaps; one final step marks all remaining
// indices sorted.
//
// Complexity: O(n²) comparisons, each emitted as a step.
func Bubble(input []int) []step.ArrayStep {
	t := newTracer(input)
	t.record("initial array")

	limit := len(t.work) // length of the still-unsorted prefix
	swapped := true
	for swapped && limit > 1 {
		swapped = false
		for j := 0; j < limit-1; j++ {
			t.record(fmt.Sprintf("comparing a[%d]=%d and a[%d]=%d", j, t.work[j], j+1, t.work[j+1]), j, j+1)
			if t.work[j] > t.work[j+1] {
				t.swap(j, j+1)
				swapped = true
				t.record(fmt.Sprintf("swapped a[%d]=%d and a[%d]=%d", j, t.work[j], j+1, t.work[j+1]), j, j+1)
			}
		}
		t.markSorted(limit - 1)
		t.record(fmt.Sprintf("pass complete: a[%d]=%d is in final position", limit-1, t.work[limit-1]))
		limit--
	}

	// A swap-free pass proves the whole remaining prefix is ordered.
	t.markSortedRange(0, limit-1)
	t.record("array is sorted")
	return t.steps
}
