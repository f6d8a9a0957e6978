package sorting

import (
	"fmt"

	"github.com/katalvlaran/stepviz/step"
)

// Insertion traces insertion sort over input.
//
// Emission: element 0 is marked sorted first. For each i in [1, n-1]: a step
// picking a[i], then for every leftward shift while the scanned element
// exceeds the picked value one step before and one after the shift, and a
// final step placing the picked value and marking the prefix [0..i] sorted.
//
// Complexity: O(n²) shifts in the worst case, each emitted as two steps.
func Insertion(input []int) []step.ArrayStep {
	t := newTracer(input)
	t.record("initial array")

	n := len(t.work)
	if n == 0 {
		t.record("array is sorted")
		return t.steps
	}
	t.markSorted(0)
	t.record(fmt.Sprintf("a[0]=%d forms the initial sorted prefix", t.work[0]), 0)

	for i := 1; i < n; i++ {
		key := t.work[i]
		t.record(fmt.Sprintf("picking a[%d]=%d for insertion", i, key), i)
		j := i - 1
		for j >= 0 && t.work[j] > key {
			t.record(fmt.Sprintf("a[%d]=%d exceeds %d; shifting it right", j, t.work[j], key), j, j+1)
			t.work[j+1] = t.work[j]
			t.record(fmt.Sprintf("shifted %d to position %d", t.work[j+1], j+1), j, j+1)
			j--
		}
		t.work[j+1] = key
		t.markSortedRange(0, i)
		t.record(fmt.Sprintf("placed %d at position %d; prefix [0..%d] is sorted", key, j+1, i), j+1)
	}
	return t.steps
}
