// Package mst provides replayable step traces for Prim's and Kruskal's
// minimum-spanning-tree algorithms over an undirected, weighted *core.Graph.
//
// Both steppers treat the input graph as read-only: every emitted step
// embeds value copies of the node and edge collections, so later mutation of
// the caller's graph cannot corrupt previously emitted steps.
package mst

import (
	"fmt"
	"sort"

	"github.com/katalvlaran/stepviz/core"
	"github.com/katalvlaran/stepviz/step"
)

// Prim traces Prim's algorithm growing from startID.
//
// If startID is absent from the graph, the graph's first node (insertion
// order) is used instead. A graph with zero nodes yields a single terminal
// step describing the condition; it is a reportable outcome, not an error.
// A disconnected graph terminates with fewer nodes visited than exist, which
// the terminal step states explicitly.
//
// Candidate edges are re-oriented before queueing so that Target is always
// the endpoint outside the tree; direction is an artifact, never semantic.
//
// Emission: a step showing the seeded frontier; per iteration either a skip
// step (stale candidate into the tree) or an acceptance step followed by a
// frontier-refresh step; a terminal step reporting cost and edge count.
//
// Complexity: O(E log V); every frontier event is emitted as a step.
func Prim(g *core.Graph, startID int) ([]step.GraphStep, error) {
	if g == nil {
		return nil, ErrNilGraph
	}

	w := &primWalker{
		nodes:    g.Nodes(),
		edges:    g.Edges(),
		visited:  make(map[int]struct{}),
		frontier: NewFrontier(),
		start:    step.None,
	}
	if len(w.nodes) == 0 {
		w.record("graph has no nodes; nothing to span", nil, nil)
		return w.steps, nil
	}

	start := startID
	if !g.HasNode(start) {
		start = w.nodes[0].ID
	}
	w.start = start

	// Seed: visit the start node and queue its incident edges.
	w.visited[start] = struct{}{}
	for _, e := range g.IncidentEdges(start) {
		e = orient(e, start)
		if !w.seen(e.Target) {
			w.frontier.InsertOrImprove(e)
		}
	}
	w.record(
		fmt.Sprintf("starting from node %d; frontier seeded with %d candidate edge(s)", start, w.frontier.Len()),
		nil, w.frontierIDs(),
	)

	total := len(w.nodes)
	for !w.frontier.IsEmpty() && len(w.visited) < total {
		e, _ := w.frontier.ExtractMin()
		if w.seen(e.Target) {
			// Stale candidate: its far endpoint joined the tree since it
			// was queued.
			w.record(
				fmt.Sprintf("skipping edge %s (%d-%d, w=%d): node %d is already in the tree", e.ID, e.Source, e.Target, e.Weight, e.Target),
				&e, w.mstIDs(),
			)
			continue
		}

		w.visited[e.Target] = struct{}{}
		w.mst = append(w.mst, e)
		w.cost += e.Weight
		w.record(
			fmt.Sprintf("accepted edge %s (%d-%d, w=%d); tree cost is now %d", e.ID, e.Source, e.Target, e.Weight, w.cost),
			&e, w.mstIDs(),
		)

		// Rescan the newly visited node to feed the frontier.
		for _, ne := range g.IncidentEdges(e.Target) {
			ne = orient(ne, e.Target)
			if !w.seen(ne.Target) {
				w.frontier.InsertOrImprove(ne)
			}
		}
		w.record(
			fmt.Sprintf("rescanned node %d; frontier holds %d candidate edge(s)", e.Target, w.frontier.Len()),
			nil, w.frontierIDs(),
		)
	}

	if len(w.visited) < total {
		w.record(
			fmt.Sprintf("stopped after reaching %d of %d nodes: graph is disconnected; %d edge(s), total cost %d",
				len(w.visited), total, len(w.mst), w.cost),
			nil, w.mstIDs(),
		)
	} else {
		w.record(
			fmt.Sprintf("minimum spanning tree complete: %d edge(s), total cost %d", len(w.mst), w.cost),
			nil, w.mstIDs(),
		)
	}
	return w.steps, nil
}

// primWalker owns one Prim run's mutable state. Each invocation constructs
// its own walker and frontier; nothing survives the call.
type primWalker struct {
	nodes    []core.Node
	edges    []core.Edge
	visited  map[int]struct{}
	frontier *Frontier
	mst      []core.Edge
	cost     int
	start    int
	steps    []step.GraphStep
}

func (w *primWalker) seen(id int) bool {
	_, ok := w.visited[id]
	return ok
}

// record emits a snapshot of the current walk state. The candidate edge, if
// any, is copied so the step owns its own value.
func (w *primWalker) record(msg string, candidate *core.Edge, highlightEdges []string) {
	var cand *core.Edge
	if candidate != nil {
		c := *candidate
		cand = &c
	}
	w.steps = append(w.steps, step.GraphStep{
		Nodes:            step.CopyNodes(w.nodes),
		Edges:            step.CopyEdges(w.edges),
		MSTEdges:         step.CopyEdges(w.mst),
		HighlightedNodes: step.IndexSet(w.visited),
		HighlightedEdges: step.CopyStrings(highlightEdges),
		CandidateEdge:    cand,
		StartNodeID:      w.start,
		Cost:             w.cost,
		Message:          msg,
	})
}

// frontierIDs lists queued candidate edge IDs in extraction order.
func (w *primWalker) frontierIDs() []string {
	queued := w.frontier.PeekAll()
	ids := make([]string, 0, len(queued))
	for _, e := range queued {
		ids = append(ids, e.ID)
	}
	return ids
}

// mstIDs lists accepted edge IDs in acceptance order.
func (w *primWalker) mstIDs() []string {
	ids := make([]string, 0, len(w.mst))
	for _, e := range w.mst {
		ids = append(ids, e.ID)
	}
	return ids
}

// sortEdgesStable orders edges ascending by weight, preserving the original
// insertion order among equal weights.
func sortEdgesStable(edges []core.Edge) []core.Edge {
	out := append([]core.Edge(nil), edges...)
	sort.SliceStable(out, func(i, j int) bool {
		return out[i].Weight < out[j].Weight
	})
	return out
}
