package mst

import (
	"fmt"

	"github.com/katalvlaran/stepviz/core"
	"github.com/katalvlaran/stepviz/dsu"
	"github.com/katalvlaran/stepviz/step"
)

// Kruskal traces Kruskal's algorithm over the graph.
//
// Emission: the initial state; a step showing all edges stably sorted by
// ascending weight (insertion order breaks ties); a step after union-find
// initialization; then, for every edge in sorted order, a considering step,
// a connectivity-check step carrying a union-find snapshot, and either an
// acceptance step (roots differed; snapshot reflects the union) or a
// would-form-a-cycle skip step. The terminal step reports cost and edge
// count; a disconnected input yields a clearly labeled spanning forest, not
// an error. A graph with zero nodes yields a single terminal step.
//
// Every edge is processed, including those after the tree is complete, so
// the trace shows each rejection.
//
// Complexity: O(E log E + α(V)·E); every edge decision is emitted as steps.
func Kruskal(g *core.Graph) ([]step.GraphStep, error) {
	if g == nil {
		return nil, ErrNilGraph
	}

	w := &kruskalWalker{
		nodes: g.Nodes(),
		edges: g.Edges(),
	}
	if len(w.nodes) == 0 {
		w.record("graph has no nodes; nothing to span", nil, nil, nil)
		return w.steps, nil
	}

	w.record(
		fmt.Sprintf("initial graph: %d node(s), %d edge(s)", len(w.nodes), len(w.edges)),
		nil, nil, nil,
	)

	sorted := sortEdgesStable(w.edges)
	w.record(
		fmt.Sprintf("sorted %d edge(s) by ascending weight", len(sorted)),
		nil, nil, edgeIDs(sorted),
	)

	ids := make([]int, 0, len(w.nodes))
	for _, n := range w.nodes {
		ids = append(ids, n.ID)
	}
	w.uf = dsu.New(ids)
	initSnap := w.uf.Snapshot()
	w.record("initialized union-find: every node is its own component", nil, &initSnap, nil)

	for _, e := range sorted {
		w.record(
			fmt.Sprintf("considering edge %s (%d-%d, w=%d)", e.ID, e.Source, e.Target, e.Weight),
			&e, nil, nil,
		)

		rootS, err := w.uf.Find(e.Source)
		if err != nil {
			return nil, err
		}
		rootT, err := w.uf.Find(e.Target)
		if err != nil {
			return nil, err
		}
		checkSnap := w.uf.Snapshot()
		w.record(
			fmt.Sprintf("checking connectivity: root(%d)=%d, root(%d)=%d", e.Source, rootS, e.Target, rootT),
			&e, &checkSnap, nil,
		)

		if rootS != rootT {
			if _, err = w.uf.Union(e.Source, e.Target); err != nil {
				return nil, err
			}
			w.mst = append(w.mst, e)
			w.cost += e.Weight
			mergedSnap := w.uf.Snapshot()
			w.record(
				fmt.Sprintf("accepted edge %s (%d-%d, w=%d); tree cost is now %d", e.ID, e.Source, e.Target, e.Weight, w.cost),
				&e, &mergedSnap, edgeIDs(w.mst),
			)
		} else {
			w.record(
				fmt.Sprintf("skipped edge %s: joining %d and %d would form a cycle", e.ID, e.Source, e.Target),
				&e, &checkSnap, edgeIDs(w.mst),
			)
		}
	}

	finalSnap := w.uf.Snapshot()
	if components := len(w.nodes) - len(w.mst); components > 1 {
		w.record(
			fmt.Sprintf("produced a spanning forest of %d component(s): %d edge(s), total cost %d",
				components, len(w.mst), w.cost),
			nil, &finalSnap, edgeIDs(w.mst),
		)
	} else {
		w.record(
			fmt.Sprintf("minimum spanning tree complete: %d edge(s), total cost %d", len(w.mst), w.cost),
			nil, &finalSnap, edgeIDs(w.mst),
		)
	}
	return w.steps, nil
}

// kruskalWalker owns one Kruskal run's mutable state, including the run's
// private union-find instance.
type kruskalWalker struct {
	nodes []core.Node
	edges []core.Edge
	uf    *dsu.DSU
	mst   []core.Edge
	cost  int
	steps []step.GraphStep
}

// record emits a snapshot of the current walk state. Candidate edges and
// union-find snapshots are copied so each step owns its own values.
func (w *kruskalWalker) record(msg string, candidate *core.Edge, snap *dsu.Snapshot, highlightEdges []string) {
	var cand *core.Edge
	if candidate != nil {
		c := *candidate
		cand = &c
	}
	var ufState *dsu.Snapshot
	if snap != nil {
		s := *snap
		ufState = &s
	}
	var hn []int
	if cand != nil {
		hn = []int{cand.Source, cand.Target}
	}
	w.steps = append(w.steps, step.GraphStep{
		Nodes:            step.CopyNodes(w.nodes),
		Edges:            step.CopyEdges(w.edges),
		MSTEdges:         step.CopyEdges(w.mst),
		HighlightedNodes: hn,
		HighlightedEdges: step.CopyStrings(highlightEdges),
		CandidateEdge:    cand,
		StartNodeID:      step.None,
		DSU:              ufState,
		Cost:             w.cost,
		Message:          msg,
	})
}

// edgeIDs lists edge IDs in slice order.
func edgeIDs(edges []core.Edge) []string {
	ids := make([]string, 0, len(edges))
	for _, e := range edges {
		ids = append(ids, e.ID)
	}
	return ids
}
