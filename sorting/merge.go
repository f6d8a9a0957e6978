package sorting

import (
	"fmt"

	"github.com/katalvlaran/stepviz/step"
)

// Merge traces top-down merge sort over input.
//
// Steps emit in chronological execution order: a left recursion's steps
// precede its sibling right recursion's, matching a depth-first
// left-then-right traversal of the recursion tree. Each recursion emits a
// split step; each merge emits one step per comparison, one per write-back
// placement, and one closing the merged subrange. One final step marks the
// whole array sorted.
//
// Complexity: O(n log n) comparisons, each emitted as a step.
func Merge(input []int) []step.ArrayStep {
	t := newTracer(input)
	t.record("initial array")

	if n := len(t.work); n > 0 {
		t.mergeSort(0, n-1)
	}
	t.markSortedRange(0, len(t.work)-1)
	t.record("array is sorted")
	return t.steps
}

// mergeSort splits [lo..hi], recurses left then right, and merges.
// Subranges of size <= 1 emit nothing.
func (t *tracer) mergeSort(lo, hi int) {
	if lo >= hi {
		return
	}
	mid := lo + (hi-lo)/2
	t.record(fmt.Sprintf("splitting [%d..%d] into [%d..%d] and [%d..%d]", lo, hi, lo, mid, mid+1, hi), indexRange(lo, hi)...)
	t.mergeSort(lo, mid)
	t.mergeSort(mid+1, hi)
	t.merge(lo, mid, hi)
}

// merge combines the two sorted halves [lo..mid] and [mid+1..hi] in place.
// The halves are copied out first, so every write-back lands on the shared
// working array and is snapshotted immediately.
func (t *tracer) merge(lo, mid, hi int) {
	left := append([]int(nil), t.work[lo:mid+1]...)
	right := append([]int(nil), t.work[mid+1:hi+1]...)

	i, j, k := 0, 0, lo
	for i < len(left) && j < len(right) {
		t.record(fmt.Sprintf("comparing %d (left) with %d (right)", left[i], right[j]), k)
		if left[i] <= right[j] {
			t.work[k] = left[i]
			i++
		} else {
			t.work[k] = right[j]
			j++
		}
		t.record(fmt.Sprintf("placed %d at position %d", t.work[k], k), k)
		k++
	}
	for ; i < len(left); i++ {
		t.work[k] = left[i]
		t.record(fmt.Sprintf("placed %d at position %d", t.work[k], k), k)
		k++
	}
	for ; j < len(right); j++ {
		t.work[k] = right[j]
		t.record(fmt.Sprintf("placed %d at position %d", t.work[k], k), k)
		k++
	}
	t.record(fmt.Sprintf("merged [%d..%d]", lo, hi), indexRange(lo, hi)...)
}
