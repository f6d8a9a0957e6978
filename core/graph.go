// Graph mutation, query, and cloning methods.
//
// Determinism:
//   - Nodes() and Edges() return insertion order, never map order.
//   - AddEdge assigns a fresh UUID when the caller leaves Edge.ID empty.
//
// Concurrency:
//   - Write methods take the write lock; accessors take the read lock and
//     return value copies, so callers can never alias internal storage.

package core

import (
	"fmt"

	"github.com/google/uuid"
)

// AddNode registers n in the graph.
// Returns ErrNilGraph, ErrBadNodeID for a negative ID, or ErrDuplicateNode
// if the ID is already present.
// Complexity: O(1).
func (g *Graph) AddNode(n Node) error {
	if g == nil {
		return ErrNilGraph
	}
	if n.ID < 0 {
		return fmt.Errorf("%w: %d", ErrBadNodeID, n.ID)
	}
	g.mu.Lock()
	defer g.mu.Unlock()
	if _, exists := g.nodes[n.ID]; exists {
		return fmt.Errorf("%w: %d", ErrDuplicateNode, n.ID)
	}
	g.nodes[n.ID] = n
	g.nodeOrder = append(g.nodeOrder, n.ID)
	return nil
}

// AddEdge registers e and returns its ID.
// When e.ID is empty a fresh UUID is assigned. Both endpoints must already
// be registered (ErrEndpointNotFound) and the weight must be positive
// (ErrBadWeight); a reused ID yields ErrDuplicateEdge.
// Complexity: O(1).
func (g *Graph) AddEdge(e Edge) (string, error) {
	if g == nil {
		return "", ErrNilGraph
	}
	if e.Weight <= 0 {
		return "", fmt.Errorf("%w: %d", ErrBadWeight, e.Weight)
	}
	g.mu.Lock()
	defer g.mu.Unlock()
	if _, ok := g.nodes[e.Source]; !ok {
		return "", fmt.Errorf("%w: source %d", ErrEndpointNotFound, e.Source)
	}
	if _, ok := g.nodes[e.Target]; !ok {
		return "", fmt.Errorf("%w: target %d", ErrEndpointNotFound, e.Target)
	}
	if e.ID == "" {
		e.ID = uuid.NewString()
	}
	if _, exists := g.edges[e.ID]; exists {
		return "", fmt.Errorf("%w: %q", ErrDuplicateEdge, e.ID)
	}
	g.edges[e.ID] = e
	g.edgeOrder = append(g.edgeOrder, e.ID)
	return e.ID, nil
}

// HasNode reports whether id is registered.
// Complexity: O(1).
func (g *Graph) HasNode(id int) bool {
	if g == nil {
		return false
	}
	g.mu.RLock()
	defer g.mu.RUnlock()
	_, ok := g.nodes[id]
	return ok
}

// Node returns the node with the given id and whether it exists.
// Complexity: O(1).
func (g *Graph) Node(id int) (Node, bool) {
	if g == nil {
		return Node{}, false
	}
	g.mu.RLock()
	defer g.mu.RUnlock()
	n, ok := g.nodes[id]
	return n, ok
}

// NodeCount returns the number of registered nodes.
func (g *Graph) NodeCount() int {
	if g == nil {
		return 0
	}
	g.mu.RLock()
	defer g.mu.RUnlock()
	return len(g.nodes)
}

// EdgeCount returns the number of registered edges.
func (g *Graph) EdgeCount() int {
	if g == nil {
		return 0
	}
	g.mu.RLock()
	defer g.mu.RUnlock()
	return len(g.edges)
}

// Nodes returns value copies of all nodes in insertion order.
// Complexity: O(V).
func (g *Graph) Nodes() []Node {
	if g == nil {
		return nil
	}
	g.mu.RLock()
	defer g.mu.RUnlock()
	out := make([]Node, 0, len(g.nodeOrder))
	for _, id := range g.nodeOrder {
		out = append(out, g.nodes[id])
	}
	return out
}

// Edges returns value copies of all edges in insertion order.
// Complexity: O(E).
func (g *Graph) Edges() []Edge {
	if g == nil {
		return nil
	}
	g.mu.RLock()
	defer g.mu.RUnlock()
	out := make([]Edge, 0, len(g.edgeOrder))
	for _, id := range g.edgeOrder {
		out = append(out, g.edges[id])
	}
	return out
}

// IncidentEdges returns, in insertion order, every edge with id as either
// endpoint. Unknown ids yield an empty slice: incidence of a node that does
// not exist is trivially empty.
// Complexity: O(E).
func (g *Graph) IncidentEdges(id int) []Edge {
	if g == nil {
		return nil
	}
	g.mu.RLock()
	defer g.mu.RUnlock()
	var out []Edge
	for _, eid := range g.edgeOrder {
		e := g.edges[eid]
		if e.Source == id || e.Target == id {
			out = append(out, e)
		}
	}
	return out
}

// Clone returns a deep copy of the graph. Later mutation of either graph
// never affects the other.
// Complexity: O(V + E).
func (g *Graph) Clone() *Graph {
	if g == nil {
		return nil
	}
	g.mu.RLock()
	defer g.mu.RUnlock()
	c := NewGraph()
	c.nodeOrder = append([]int(nil), g.nodeOrder...)
	c.edgeOrder = append([]string(nil), g.edgeOrder...)
	for id, n := range g.nodes {
		c.nodes[id] = n
	}
	for id, e := range g.edges {
		c.edges[id] = e
	}
	return c
}
