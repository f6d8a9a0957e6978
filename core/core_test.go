package core_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/stepviz/core"
)

// buildSquare constructs a 4-node cycle with explicit edge IDs.
func buildSquare(t *testing.T) *core.Graph {
	t.Helper()
	g := core.NewGraph()
	for i := 0; i < 4; i++ {
		require.NoError(t, g.AddNode(core.Node{ID: i, X: float64(i * 10), Y: 5}))
	}
	for i, e := range []core.Edge{
		{ID: "e0", Source: 0, Target: 1, Weight: 4},
		{ID: "e1", Source: 1, Target: 2, Weight: 2},
		{ID: "e2", Source: 2, Target: 3, Weight: 5},
		{ID: "e3", Source: 3, Target: 0, Weight: 3},
	} {
		id, err := g.AddEdge(e)
		require.NoError(t, err, "edge %d", i)
		require.Equal(t, e.ID, id)
	}
	return g
}

func TestAddNode_Validation(t *testing.T) {
	g := core.NewGraph()

	// Negative IDs are rejected.
	assert.ErrorIs(t, g.AddNode(core.Node{ID: -1}), core.ErrBadNodeID)

	// First registration succeeds, re-registration is a duplicate.
	assert.NoError(t, g.AddNode(core.Node{ID: 7}))
	assert.ErrorIs(t, g.AddNode(core.Node{ID: 7}), core.ErrDuplicateNode)

	// Nil receiver fails loudly rather than panicking.
	var nilGraph *core.Graph
	assert.ErrorIs(t, nilGraph.AddNode(core.Node{ID: 0}), core.ErrNilGraph)
}

func TestAddEdge_Validation(t *testing.T) {
	g := core.NewGraph()
	require.NoError(t, g.AddNode(core.Node{ID: 0}))
	require.NoError(t, g.AddNode(core.Node{ID: 1}))

	// Weights must be positive.
	_, err := g.AddEdge(core.Edge{Source: 0, Target: 1, Weight: 0})
	assert.ErrorIs(t, err, core.ErrBadWeight)

	// Both endpoints must exist.
	_, err = g.AddEdge(core.Edge{Source: 0, Target: 9, Weight: 1})
	assert.ErrorIs(t, err, core.ErrEndpointNotFound)
	_, err = g.AddEdge(core.Edge{Source: 9, Target: 1, Weight: 1})
	assert.ErrorIs(t, err, core.ErrEndpointNotFound)

	// Explicit IDs must be unique.
	_, err = g.AddEdge(core.Edge{ID: "x", Source: 0, Target: 1, Weight: 1})
	require.NoError(t, err)
	_, err = g.AddEdge(core.Edge{ID: "x", Source: 1, Target: 0, Weight: 2})
	assert.ErrorIs(t, err, core.ErrDuplicateEdge)
}

func TestAddEdge_AssignsUUID(t *testing.T) {
	g := core.NewGraph()
	require.NoError(t, g.AddNode(core.Node{ID: 0}))
	require.NoError(t, g.AddNode(core.Node{ID: 1}))

	a, err := g.AddEdge(core.Edge{Source: 0, Target: 1, Weight: 1})
	require.NoError(t, err)
	b, err := g.AddEdge(core.Edge{Source: 1, Target: 0, Weight: 2})
	require.NoError(t, err)

	assert.NotEmpty(t, a)
	assert.NotEmpty(t, b)
	assert.NotEqual(t, a, b)
}

func TestNodesAndEdges_InsertionOrder(t *testing.T) {
	g := buildSquare(t)

	nodes := g.Nodes()
	require.Len(t, nodes, 4)
	for i, n := range nodes {
		assert.Equal(t, i, n.ID)
		// Presentational coordinates survive untouched.
		assert.Equal(t, float64(i*10), n.X)
		assert.Equal(t, 5.0, n.Y)
	}

	edges := g.Edges()
	require.Len(t, edges, 4)
	assert.Equal(t, []string{"e0", "e1", "e2", "e3"}, idsOf(edges))
}

func TestIncidentEdges(t *testing.T) {
	g := buildSquare(t)

	assert.Equal(t, []string{"e0", "e3"}, idsOf(g.IncidentEdges(0)))
	assert.Equal(t, []string{"e1", "e2"}, idsOf(g.IncidentEdges(2)))
	assert.Empty(t, g.IncidentEdges(42))
}

func TestClone_Independence(t *testing.T) {
	g := buildSquare(t)
	c := g.Clone()

	require.NoError(t, c.AddNode(core.Node{ID: 99}))
	_, err := c.AddEdge(core.Edge{ID: "extra", Source: 99, Target: 0, Weight: 1})
	require.NoError(t, err)

	// The original graph never sees the clone's mutations.
	assert.Equal(t, 4, g.NodeCount())
	assert.Equal(t, 4, g.EdgeCount())
	assert.False(t, g.HasNode(99))
	assert.Equal(t, 5, c.NodeCount())
}

func TestEdgeOther(t *testing.T) {
	e := core.Edge{ID: "e", Source: 3, Target: 8, Weight: 1}
	assert.Equal(t, 8, e.Other(3))
	assert.Equal(t, 3, e.Other(8))
}

func idsOf(edges []core.Edge) []string {
	out := make([]string, 0, len(edges))
	for _, e := range edges {
		out = append(out, e.ID)
	}
	return out
}
