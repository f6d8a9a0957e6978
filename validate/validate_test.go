package validate_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/stepviz/core"
	"github.com/katalvlaran/stepviz/validate"
)

func TestArray(t *testing.T) {
	assert.NoError(t, validate.Array([]int{5, 3, 8, 1, 9}))

	cases := map[string][]int{
		"nil":           nil,
		"too short":     {1, 2, 3, 4},
		"value too low": {0, 2, 3, 4, 5},
		"value too big": {1, 2, 3, 4, 101},
	}
	for name, values := range cases {
		t.Run(name, func(t *testing.T) {
			assert.ErrorIs(t, validate.Array(values), validate.ErrInvalidInput)
		})
	}

	long := make([]int, 51)
	for i := range long {
		long[i] = 1
	}
	assert.ErrorIs(t, validate.Array(long), validate.ErrInvalidInput)
}

func TestSearch(t *testing.T) {
	assert.NoError(t, validate.Search([]int{1, 3, 5, 7, 9}, 7))

	assert.ErrorIs(t, validate.Search([]int{1, 3, 5, 7, 9}, 0), validate.ErrInvalidInput)
	assert.ErrorIs(t, validate.Search([]int{1, 3, 5, 7, 9}, 101), validate.ErrInvalidInput)
	assert.ErrorIs(t, validate.Search([]int{1, 3}, 2), validate.ErrInvalidInput)
}

func TestGraph(t *testing.T) {
	g := core.NewGraph()
	require.NoError(t, g.AddNode(core.Node{ID: 0}))
	require.NoError(t, g.AddNode(core.Node{ID: 1}))
	_, err := g.AddEdge(core.Edge{ID: "e01", Source: 0, Target: 1, Weight: 3})
	require.NoError(t, err)

	assert.NoError(t, validate.Graph(g))

	assert.ErrorIs(t, validate.Graph(nil), validate.ErrInvalidInput)
	assert.ErrorIs(t, validate.Graph(core.NewGraph()), validate.ErrInvalidInput)
}
