// Shared step-recording state for the sorting steppers.
//
// Snapshot discipline: record clones the working array and the sorted set on
// every emission, so later mutation of the tracer can never retroactively
// alter an already-emitted step.

package sorting

import (
	"fmt"

	"github.com/katalvlaran/stepviz/step"
)

// tracer owns one run's working array, sorted-index set, and output trace.
// Each stepper invocation builds its own tracer; nothing survives the call.
type tracer struct {
	work   []int
	sorted map[int]struct{}
	steps  []step.ArrayStep
}

// newTracer copies input so the caller's slice is never mutated.
func newTracer(input []int) *tracer {
	return &tracer{
		work:   append([]int(nil), input...),
		sorted: make(map[int]struct{}, len(input)),
	}
}

// record emits a snapshot of the current working state.
func (t *tracer) record(msg string, highlight ...int) {
	t.recordPivot(msg, step.None, highlight...)
}

// recordPivot emits a snapshot carrying a pivot index (quick sort).
func (t *tracer) recordPivot(msg string, pivot int, highlight ...int) {
	t.steps = append(t.steps, step.ArrayStep{
		Array:      step.CopyInts(t.work),
		Highlight:  step.CopyInts(highlight),
		Pivot:      pivot,
		Sorted:     step.IndexSet(t.sorted),
		Target:     step.None,
		FoundIndex: step.None,
		Low:        step.None,
		High:       step.None,
		Mid:        step.None,
		Message:    msg,
	})
}

// markSorted adds the given indices to the sorted set.
func (t *tracer) markSorted(idx ...int) {
	for _, i := range idx {
		t.sorted[i] = struct{}{}
	}
}

// markSortedRange adds every index in [lo, hi] to the sorted set.
func (t *tracer) markSortedRange(lo, hi int) {
	for i := lo; i <= hi; i++ {
		t.sorted[i] = struct{}{}
	}
}

// swap exchanges two working-array elements without emitting a step.
func (t *tracer) swap(i, j int) {
	t.work[i], t.work[j] = t.work[j], t.work[i]
}

// indexRange lists every index in [lo, hi], for whole-subrange highlights.
func indexRange(lo, hi int) []int {
	if hi < lo {
		return nil
	}
	out := make([]int, 0, hi-lo+1)
	for i := lo; i <= hi; i++ {
		out = append(out, i)
	}
	return out
}

func errUnknown(method string) error {
	return fmt.Errorf("%w: %q", ErrUnknownMethod, method)
}
