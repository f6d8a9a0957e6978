package mst

import (
	"errors"
	"fmt"

	"github.com/katalvlaran/stepviz/core"
	"github.com/katalvlaran/stepviz/step"
)

// Sentinel errors for MST trace generation.
var (
	// ErrNilGraph indicates a nil *core.Graph was passed to a stepper.
	// Degenerate but non-nil graphs never error; they yield terminal steps.
	ErrNilGraph = errors.New("mst: graph is nil")

	// ErrUnknownMethod is returned by Compute for an unrecognized method.
	ErrUnknownMethod = errors.New("mst: unknown method")
)

// MethodPrim selects Prim's algorithm (grow from a start node by frontier).
const MethodPrim = "prim"

// MethodKruskal selects Kruskal's algorithm (sorted edges over union-find).
const MethodKruskal = "kruskal"

// Methods returns the supported method names in presentation order.
func Methods() []string {
	return []string{MethodPrim, MethodKruskal}
}

// Options configures which MST stepper Compute runs and, for Prim, which
// start node to grow from.
type Options struct {
	// Method is MethodPrim or MethodKruskal.
	Method string

	// Start is Prim's start node ID; ignored by Kruskal. When the node is
	// absent from the graph, Prim falls back to the graph's first node.
	Start int
}

// Option configures Options via functional arguments.
type Option func(*Options)

// WithMethod returns an Option that sets the algorithm Method.
func WithMethod(m string) Option {
	return func(o *Options) { o.Method = m }
}

// WithStart returns an Option that sets Prim's start node.
func WithStart(id int) Option {
	return func(o *Options) { o.Start = id }
}

// DefaultOptions returns Options selecting Kruskal.
func DefaultOptions() Options {
	return Options{Method: MethodKruskal, Start: step.None}
}

// Compute dispatches to the stepper named by the options.
func Compute(g *core.Graph, opts ...Option) ([]step.GraphStep, error) {
	o := DefaultOptions()
	for _, opt := range opts {
		opt(&o)
	}
	switch o.Method {
	case MethodKruskal:
		return Kruskal(g)
	case MethodPrim:
		return Prim(g, o.Start)
	default:
		return nil, fmt.Errorf("%w: %q", ErrUnknownMethod, o.Method)
	}
}

// orient returns e with Source forced to from, flipping the endpoint pair if
// needed. Edges are logically undirected; the steppers re-orient candidates
// so that Target is always the endpoint outside the tree.
func orient(e core.Edge, from int) core.Edge {
	if e.Target == from {
		e.Source, e.Target = e.Target, e.Source
	}
	return e
}
