package sorting

import (
	"fmt"

	"github.com/katalvlaran/stepviz/step"
)

// Quick traces quick sort (Lomuto partition, last element as pivot) over
// input.
//
// Steps emit in chronological execution order, depth-first left-then-right.
// Partitioning emits one step per comparison against the pivot, a before and
// an after step per swap, and a step when the pivot lands in its final
// position. Single-element subranges emit one base-case step; empty
// subranges emit nothing. A closing step marks the whole array sorted.
//
// Complexity: O(n²) comparisons in the worst case, each emitted as a step.
func Quick(input []int) []step.ArrayStep {
	t := newTracer(input)
	t.record("initial array")

	if n := len(t.work); n > 0 {
		t.quickSort(0, n-1)
	}
	t.record("array is sorted")
	return t.steps
}

// quickSort partitions [lo..hi] and recurses left, then right.
func (t *tracer) quickSort(lo, hi int) {
	if lo > hi {
		return
	}
	if lo == hi {
		t.markSorted(lo)
		t.record(fmt.Sprintf("single element a[%d]=%d is in final position", lo, t.work[lo]), lo)
		return
	}
	p := t.partition(lo, hi)
	t.quickSort(lo, p-1)
	t.quickSort(p+1, hi)
}

// partition applies the Lomuto scheme with a[hi] as pivot and returns the
// pivot's final index, marking it sorted.
func (t *tracer) partition(lo, hi int) int {
	pivot := t.work[hi]
	t.recordPivot(fmt.Sprintf("partitioning [%d..%d] around pivot a[%d]=%d", lo, hi, hi, pivot), hi, indexRange(lo, hi)...)

	i := lo - 1
	for j := lo; j < hi; j++ {
		t.recordPivot(fmt.Sprintf("comparing a[%d]=%d with pivot %d", j, t.work[j], pivot), hi, j, hi)
		if t.work[j] < pivot {
			i++
			if i != j {
				t.recordPivot(fmt.Sprintf("swapping a[%d]=%d with a[%d]=%d", i, t.work[i], j, t.work[j]), hi, i, j)
				t.swap(i, j)
				t.recordPivot(fmt.Sprintf("swapped: a[%d]=%d, a[%d]=%d", i, t.work[i], j, t.work[j]), hi, i, j)
			}
		}
	}

	dest := i + 1
	if dest != hi {
		t.recordPivot(fmt.Sprintf("swapping pivot %d into position %d", pivot, dest), hi, dest, hi)
		t.swap(dest, hi)
		t.recordPivot(fmt.Sprintf("swapped: a[%d]=%d, a[%d]=%d", dest, t.work[dest], hi, t.work[hi]), hi, dest, hi)
	}
	t.markSorted(dest)
	t.recordPivot(fmt.Sprintf("pivot %d landed in final position %d", pivot, dest), dest, dest)
	return dest
}
