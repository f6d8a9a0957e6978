// Package core defines the Node, Edge, and Graph types shared by every
// stepper, and provides thread-safe primitives for building, querying,
// and cloning graphs.
//
// This file declares Node, Edge, Graph, sentinel errors, and the NewGraph
// constructor.
package core

import (
	"errors"
	"sync"
)

// Sentinel errors for core graph operations.
var (
	// ErrNilGraph indicates a method was invoked on a nil *Graph.
	ErrNilGraph = errors.New("core: graph is nil")

	// ErrBadNodeID indicates a node with a negative ID was supplied.
	ErrBadNodeID = errors.New("core: node ID must be non-negative")

	// ErrDuplicateNode indicates a node with an already-registered ID.
	ErrDuplicateNode = errors.New("core: duplicate node ID")

	// ErrDuplicateEdge indicates an edge with an already-registered ID.
	ErrDuplicateEdge = errors.New("core: duplicate edge ID")

	// ErrNodeNotFound indicates an operation referenced a non-existent node.
	ErrNodeNotFound = errors.New("core: node not found")

	// ErrEndpointNotFound indicates an edge referencing an unregistered node.
	ErrEndpointNotFound = errors.New("core: edge endpoint not found")

	// ErrBadWeight indicates a non-positive edge weight.
	ErrBadWeight = errors.New("core: edge weight must be positive")
)

// Node is a graph vertex.
//
// ID uniquely identifies the Node within its Graph and is the only field
// algorithms depend on. X and Y are presentational coordinates: steppers
// carry them through every snapshot untouched so a renderer can place the
// node, but they never influence algorithm behavior.
type Node struct {
	// ID is the unique, non-negative identifier of this node.
	ID int

	// X is the horizontal presentation coordinate.
	X float64

	// Y is the vertical presentation coordinate.
	Y float64
}

// Edge is a logically undirected connection between two nodes.
//
// Source and Target are an artifact of construction, not a direction:
// (Source,Target) and (Target,Source) name the same connection. Steppers
// may re-orient the pair when queueing a candidate (each documents where),
// and must never treat the orientation as semantic.
type Edge struct {
	// ID uniquely identifies this edge within its Graph.
	ID string

	// Source is one endpoint's node ID.
	Source int

	// Target is the other endpoint's node ID.
	Target int

	// Weight is the positive cost of the edge.
	Weight int
}

// Other returns the endpoint of e opposite to id.
// If id is neither endpoint, Other returns Target.
func (e Edge) Other(id int) int {
	if e.Target == id {
		return e.Source
	}
	return e.Target
}

// Graph is the in-memory model consumed by the graph steppers.
//
// Nodes and edges are kept in insertion order so that every derived
// sequence (seed order, stable weight sorts, fallback start nodes) is
// deterministic across runs. All accessors are guarded by a single RWMutex,
// so independent stepper invocations may read one Graph concurrently.
type Graph struct {
	mu sync.RWMutex

	nodes     map[int]Node
	nodeOrder []int

	edges     map[string]Edge
	edgeOrder []string
}

// NewGraph creates an empty Graph.
// Complexity: O(1).
func NewGraph() *Graph {
	return &Graph{
		nodes: make(map[int]Node),
		edges: make(map[string]Edge),
	}
}
