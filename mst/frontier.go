// The frontier priority structure used by Prim's stepper.

package mst

import (
	"container/heap"
	"sort"

	"github.com/katalvlaran/stepviz/core"
)

// Frontier holds the candidate edges crossing from the visited set to the
// unvisited set, ordered by ascending weight with ties broken by insertion
// sequence, so extraction order is deterministic and traces reproduce.
//
// At most one candidate is queued per unvisited target node: InsertOrImprove
// replaces a queued candidate only on strictly lower weight. When a parallel
// edge to the same target arrives with an equal weight, the incumbent is
// retained; which edge object survives an equal-weight tie is
// implementation-defined and callers must not rely on it.
type Frontier struct {
	items    frontierHeap
	byTarget map[int]*frontierItem
	nextSeq  int
}

// frontierItem pairs a candidate edge with its insertion sequence number and
// its current heap position.
type frontierItem struct {
	edge  core.Edge
	seq   int
	index int
}

// NewFrontier returns an empty Frontier.
func NewFrontier() *Frontier {
	return &Frontier{byTarget: make(map[int]*frontierItem)}
}

// InsertOrImprove queues e, keyed by its Target endpoint. If no candidate
// currently targets e.Target the edge is inserted; if one exists with a
// strictly greater weight it is replaced in place; otherwise nothing
// happens.
// Complexity: O(log n).
func (f *Frontier) InsertOrImprove(e core.Edge) {
	if it, ok := f.byTarget[e.Target]; ok {
		if e.Weight < it.edge.Weight {
			it.edge = e
			heap.Fix(&f.items, it.index)
		}
		return
	}
	it := &frontierItem{edge: e, seq: f.nextSeq}
	f.nextSeq++
	f.byTarget[e.Target] = it
	heap.Push(&f.items, it)
}

// ExtractMin removes and returns the lowest-weight candidate; ok is false
// when the frontier is empty.
// Complexity: O(log n).
func (f *Frontier) ExtractMin() (e core.Edge, ok bool) {
	if f.items.Len() == 0 {
		return core.Edge{}, false
	}
	it := heap.Pop(&f.items).(*frontierItem)
	delete(f.byTarget, it.edge.Target)
	return it.edge, true
}

// IsEmpty reports whether no candidates are queued.
func (f *Frontier) IsEmpty() bool { return f.items.Len() == 0 }

// Len returns the number of queued candidates.
func (f *Frontier) Len() int { return f.items.Len() }

// PeekAll returns the queued candidates in extraction order without
// mutating the frontier. The slice is a fresh copy, safe to embed in a step.
// Complexity: O(n log n).
func (f *Frontier) PeekAll() []core.Edge {
	items := append([]*frontierItem(nil), f.items...)
	sort.Slice(items, func(i, j int) bool {
		if items[i].edge.Weight != items[j].edge.Weight {
			return items[i].edge.Weight < items[j].edge.Weight
		}
		return items[i].seq < items[j].seq
	})
	out := make([]core.Edge, 0, len(items))
	for _, it := range items {
		out = append(out, it.edge)
	}
	return out
}

// frontierHeap implements heap.Interface over frontier items, ordered by
// weight, then by insertion sequence for stability.
type frontierHeap []*frontierItem

func (h frontierHeap) Len() int { return len(h) }

func (h frontierHeap) Less(i, j int) bool {
	if h[i].edge.Weight != h[j].edge.Weight {
		return h[i].edge.Weight < h[j].edge.Weight
	}
	return h[i].seq < h[j].seq
}

func (h frontierHeap) Swap(i, j int) {
	h[i], h[j] = h[j], h[i]
	h[i].index = i
	h[j].index = j
}

func (h *frontierHeap) Push(x interface{}) {
	it := x.(*frontierItem)
	it.index = len(*h)
	*h = append(*h, it)
}

func (h *frontierHeap) Pop() interface{} {
	old := *h
	n := len(old)
	it := old[n-1]
	old[n-1] = nil
	it.index = -1
	*h = old[:n-1]
	return it
}
