// Package searching provides step traces for linear and binary search over
// small integer arrays.
//
// Both steppers share the array-stepper contract: the first step is the
// unmodified input with no highlights, the last step either carries the
// found index or states not-found, the caller's slice is never mutated, and
// identical input reproduces an identical trace.
package searching

import (
	"fmt"

	"github.com/katalvlaran/stepviz/step"
)

// Linear traces a left-to-right scan for target.
//
// Emission: one step per index scanned, each stating match or mismatch; the
// scan stops at the first match; a final step restates found or not-found.
//
// Complexity: O(n) comparisons, each emitted as a step.
func Linear(input []int, target int) []step.ArrayStep {
	p := newProbe(input, target)
	p.record(fmt.Sprintf("searching for %d", target))

	for i, v := range p.work {
		if v == target {
			p.found = i
			p.record(fmt.Sprintf("a[%d]=%d matches the target", i, v), i)
			break
		}
		p.record(fmt.Sprintf("a[%d]=%d does not match %d", i, v, target), i)
	}

	if p.found == step.None {
		p.record(fmt.Sprintf("target %d not found", target))
	} else {
		p.record(fmt.Sprintf("target %d found at index %d", target, p.found), p.found)
	}
	return p.steps
}
