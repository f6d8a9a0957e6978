// Package dsu implements a disjoint-set union (union-find) over node IDs,
// with full path compression, union by rank, and value-copy snapshots
// suitable for embedding in step traces.
//
// A DSU is constructed from the finite ID set of one graph and owned by a
// single stepper invocation. IDs absent at construction are a contract
// violation and fail loudly with ErrUnknownNode.
package dsu

import (
	"errors"
	"fmt"
)

// ErrUnknownNode indicates an ID that was not part of the DSU's construction.
// This can never occur for a correctly built graph, so callers should treat
// it as a programming error rather than a recoverable condition.
var ErrUnknownNode = errors.New("dsu: unknown node id")

// DSU tracks disjoint sets of node IDs.
// Each ID starts as its own singleton set with rank 0.
type DSU struct {
	parent map[int]int
	rank   map[int]int
}

// Snapshot is a value copy of a DSU's internal state at one instant.
// A node is a root iff Parent[id] == id. Mutating the DSU after Snapshot()
// never alters a previously returned Snapshot.
type Snapshot struct {
	Parent map[int]int
	Rank   map[int]int
}

// New constructs a DSU in which every given ID forms its own singleton set.
// Complexity: O(len(ids)).
func New(ids []int) *DSU {
	d := &DSU{
		parent: make(map[int]int, len(ids)),
		rank:   make(map[int]int, len(ids)),
	}
	for _, id := range ids {
		d.parent[id] = id
		d.rank[id] = 0
	}
	return d
}

// Find returns the root of the set containing id, applying full path
// compression: after the call every node on the walked path, id included,
// points directly at the root. A second Find on the same id therefore
// performs no further restructuring.
// Returns ErrUnknownNode (wrapped with the offending id) for foreign ids.
// Complexity: near O(1) amortized (inverse Ackermann).
func (d *DSU) Find(id int) (int, error) {
	if _, ok := d.parent[id]; !ok {
		return 0, fmt.Errorf("%w: %d", ErrUnknownNode, id)
	}
	// First pass: locate the root.
	root := id
	for d.parent[root] != root {
		root = d.parent[root]
	}
	// Second pass: repoint every node on the path at the root.
	for d.parent[id] != root {
		id, d.parent[id] = d.parent[id], root
	}
	return root, nil
}

// Union merges the sets containing x and y using union by rank and reports
// whether a merge happened (false when both already share a root). On a rank
// tie the surviving root is x's root and its rank grows by one.
// Returns ErrUnknownNode if either id was not part of construction.
func (d *DSU) Union(x, y int) (bool, error) {
	rootX, err := d.Find(x)
	if err != nil {
		return false, err
	}
	rootY, err := d.Find(y)
	if err != nil {
		return false, err
	}
	if rootX == rootY {
		return false, nil
	}
	switch {
	case d.rank[rootX] < d.rank[rootY]:
		d.parent[rootX] = rootY
	case d.rank[rootX] > d.rank[rootY]:
		d.parent[rootY] = rootX
	default:
		d.parent[rootY] = rootX
		d.rank[rootX]++
	}
	return true, nil
}

// Snapshot returns a value copy of the parent and rank maps.
// Complexity: O(V).
func (d *DSU) Snapshot() Snapshot {
	s := Snapshot{
		Parent: make(map[int]int, len(d.parent)),
		Rank:   make(map[int]int, len(d.rank)),
	}
	for id, p := range d.parent {
		s.Parent[id] = p
	}
	for id, r := range d.rank {
		s.Rank[id] = r
	}
	return s
}

// Size returns the number of IDs tracked by the DSU.
func (d *DSU) Size() int { return len(d.parent) }
