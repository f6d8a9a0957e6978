// Package step defines the immutable snapshot types emitted by every
// stepper, plus the copy helpers that enforce snapshot discipline.
//
// The two snapshot shapes form a tagged variant: ArrayStep and GraphStep
// both satisfy Step, and a consumer switches exhaustively on Kind() rather
// than sniffing structure. Snapshots carry semantic roles only (highlighted,
// sorted, candidate); mapping roles to colors belongs to the renderer.
package step

import (
	"sort"

	"github.com/katalvlaran/stepviz/core"
	"github.com/katalvlaran/stepviz/dsu"
)

// Kind discriminates the two snapshot shapes.
type Kind uint8

const (
	// KindArray tags snapshots produced by sorting and searching steppers.
	KindArray Kind = iota + 1

	// KindGraph tags snapshots produced by the MST steppers.
	KindGraph
)

// None marks an unset index or value field on a snapshot (indices are
// non-negative and array values live in [1,100], so -1 is never ambiguous).
const None = -1

// Step is the common face of both snapshot shapes.
type Step interface {
	// Kind reports which concrete snapshot this is.
	Kind() Kind

	// Text returns the human-readable description of this instant.
	Text() string
}

// ArrayStep is one recorded instant of a sorting or searching run.
// Every field is an independent value copy: later mutation of the stepper's
// working array never retroactively alters an emitted ArrayStep.
type ArrayStep struct {
	// Array is the full array state at this instant.
	Array []int

	// Highlight lists the indices under comparison or movement.
	Highlight []int

	// Pivot is the current pivot index (quick sort), or None.
	Pivot int

	// Sorted lists, in ascending order, the indices known to be in final
	// position.
	Sorted []int

	// Target is the value being searched, or None for sorts.
	Target int

	// FoundIndex is where Target was located, or None.
	FoundIndex int

	// Low, High, and Mid are the current binary-search bounds, or None.
	Low, High, Mid int

	// Message describes this instant.
	Message string
}

// Kind implements Step.
func (ArrayStep) Kind() Kind { return KindArray }

// Text implements Step.
func (s ArrayStep) Text() string { return s.Message }

// GraphStep is one recorded instant of an MST run.
// Node and edge slices are deep copies of the input graph's collections, so
// a consumer may hold a GraphStep indefinitely while the caller mutates the
// original graph.
type GraphStep struct {
	// Nodes is the full node set at this instant, in graph insertion order.
	Nodes []core.Node

	// Edges is the full edge set at this instant, in graph insertion order.
	Edges []core.Edge

	// MSTEdges lists, in acceptance order, the edges confirmed part of the
	// spanning tree so far.
	MSTEdges []core.Edge

	// HighlightedNodes lists node IDs that are visually significant now.
	HighlightedNodes []int

	// HighlightedEdges lists edge IDs that are visually significant now.
	HighlightedEdges []string

	// CandidateEdge is the edge under consideration, if any.
	CandidateEdge *core.Edge

	// StartNodeID is Prim's persistent start node, or None.
	StartNodeID int

	// DSU is a value snapshot of Kruskal's union-find state, if any.
	DSU *dsu.Snapshot

	// Cost is the running total weight of MSTEdges.
	Cost int

	// Message describes this instant.
	Message string
}

// Kind implements Step.
func (GraphStep) Kind() Kind { return KindGraph }

// Text implements Step.
func (s GraphStep) Text() string { return s.Message }

// CopyInts returns an independent copy of src (nil-safe).
func CopyInts(src []int) []int {
	if src == nil {
		return nil
	}
	return append([]int(nil), src...)
}

// CopyStrings returns an independent copy of src (nil-safe).
func CopyStrings(src []string) []string {
	if src == nil {
		return nil
	}
	return append([]string(nil), src...)
}

// CopyNodes returns an independent copy of src (nil-safe).
func CopyNodes(src []core.Node) []core.Node {
	if src == nil {
		return nil
	}
	return append([]core.Node(nil), src...)
}

// CopyEdges returns an independent copy of src (nil-safe).
func CopyEdges(src []core.Edge) []core.Edge {
	if src == nil {
		return nil
	}
	return append([]core.Edge(nil), src...)
}

// IndexSet flattens an index set into an ascending slice, giving snapshots
// a deterministic representation regardless of map iteration order.
func IndexSet(set map[int]struct{}) []int {
	if len(set) == 0 {
		return nil
	}
	out := make([]int, 0, len(set))
	for i := range set {
		out = append(out, i)
	}
	sort.Ints(out)
	return out
}
