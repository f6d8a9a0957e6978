package searching

import (
	"fmt"

	"github.com/katalvlaran/stepviz/step"
)

// Binary traces binary search for target over an ascending input.
//
// The input must already be sorted ascending: that is the caller's
// responsibility (the validation layer presorts), and Binary does not
// re-sort. Each iteration emits a step showing the current [low, high]
// bounds with the computed mid, a step focused on the mid comparison, then a
// step for the branch taken (equal found-and-stop, less raises low, greater
// lowers high) and, when the loop continues, a step showing the new bounds.
// If low exceeds high without a match a final not-found step is emitted.
//
// Complexity: O(log n) iterations, each emitting three or four steps.
func Binary(input []int, target int) []step.ArrayStep {
	p := newProbe(input, target)
	p.record(fmt.Sprintf("searching for %d in a sorted array", target))

	p.low, p.high = 0, len(p.work)-1
	for p.low <= p.high {
		p.mid = p.low + (p.high-p.low)/2
		p.record(fmt.Sprintf("searching [%d..%d], mid = %d", p.low, p.high, p.mid), p.low, p.mid, p.high)
		p.record(fmt.Sprintf("comparing a[%d]=%d with target %d", p.mid, p.work[p.mid], target), p.mid)

		switch v := p.work[p.mid]; {
		case v == target:
			p.found = p.mid
			p.record(fmt.Sprintf("a[%d] equals the target; found at index %d", p.mid, p.mid), p.mid)
			return p.steps
		case v < target:
			p.low = p.mid + 1
			p.record(fmt.Sprintf("a[%d]=%d is below the target; raising low to %d", p.mid, v, p.low), p.mid)
		default:
			p.high = p.mid - 1
			p.record(fmt.Sprintf("a[%d]=%d is above the target; lowering high to %d", p.mid, v, p.high), p.mid)
		}

		if p.low <= p.high {
			p.record(fmt.Sprintf("new bounds [%d..%d]", p.low, p.high), p.low, p.high)
		}
	}

	p.mid = step.None
	p.record(fmt.Sprintf("target %d not found: low exceeded high", target))
	return p.steps
}
