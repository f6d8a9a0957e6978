package step_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/stepviz/core"
	"github.com/katalvlaran/stepviz/step"
)

func TestStep_KindDispatch(t *testing.T) {
	steps := []step.Step{
		step.ArrayStep{Message: "comparing"},
		step.GraphStep{Message: "considering"},
	}

	assert.Equal(t, step.KindArray, steps[0].Kind())
	assert.Equal(t, step.KindGraph, steps[1].Kind())
	assert.Equal(t, "comparing", steps[0].Text())
	assert.Equal(t, "considering", steps[1].Text())
}

func TestCopyHelpers_Independence(t *testing.T) {
	ints := []int{1, 2, 3}
	gotInts := step.CopyInts(ints)
	ints[0] = 99
	assert.Equal(t, []int{1, 2, 3}, gotInts)

	strs := []string{"a", "b"}
	gotStrs := step.CopyStrings(strs)
	strs[0] = "z"
	assert.Equal(t, []string{"a", "b"}, gotStrs)

	nodes := []core.Node{{ID: 1}, {ID: 2}}
	gotNodes := step.CopyNodes(nodes)
	nodes[0].ID = 99
	assert.Equal(t, 1, gotNodes[0].ID)

	edges := []core.Edge{{ID: "e0", Weight: 5}}
	gotEdges := step.CopyEdges(edges)
	edges[0].Weight = 99
	assert.Equal(t, 5, gotEdges[0].Weight)
}

func TestCopyHelpers_NilSafe(t *testing.T) {
	assert.Nil(t, step.CopyInts(nil))
	assert.Nil(t, step.CopyStrings(nil))
	assert.Nil(t, step.CopyNodes(nil))
	assert.Nil(t, step.CopyEdges(nil))
}

func TestIndexSet_SortedAndDeterministic(t *testing.T) {
	set := map[int]struct{}{7: {}, 1: {}, 4: {}}

	first := step.IndexSet(set)
	require.Equal(t, []int{1, 4, 7}, first)

	// Same result regardless of map iteration order.
	for i := 0; i < 10; i++ {
		assert.Equal(t, first, step.IndexSet(set))
	}

	assert.Nil(t, step.IndexSet(nil))
	assert.Nil(t, step.IndexSet(map[int]struct{}{}))
}
