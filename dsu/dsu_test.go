package dsu_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/stepviz/dsu"
)

func TestNew_Singletons(t *testing.T) {
	d := dsu.New([]int{0, 1, 2})

	assert.Equal(t, 3, d.Size())
	for _, id := range []int{0, 1, 2} {
		root, err := d.Find(id)
		require.NoError(t, err)
		assert.Equal(t, id, root, "every id starts as its own root")
	}
}

func TestFind_UnknownID(t *testing.T) {
	d := dsu.New([]int{0, 1})

	_, err := d.Find(5)
	assert.ErrorIs(t, err, dsu.ErrUnknownNode)

	_, err = d.Union(0, 5)
	assert.ErrorIs(t, err, dsu.ErrUnknownNode)
}

func TestUnion_ByRank(t *testing.T) {
	d := dsu.New([]int{0, 1, 2, 3})

	merged, err := d.Union(0, 1)
	require.NoError(t, err)
	assert.True(t, merged)

	// Same-set union is a no-op.
	merged, err = d.Union(0, 1)
	require.NoError(t, err)
	assert.False(t, merged)

	// After any union the two ids share a root.
	_, err = d.Union(2, 3)
	require.NoError(t, err)
	_, err = d.Union(0, 2)
	require.NoError(t, err)
	r0, err := d.Find(0)
	require.NoError(t, err)
	r3, err := d.Find(3)
	require.NoError(t, err)
	assert.Equal(t, r0, r3)
}

func TestFind_PathCompressionAndIdempotence(t *testing.T) {
	d := dsu.New([]int{0, 1, 2, 3})

	// Build a two-level tree: {0,1} and {2,3} merged under a common root, so
	// node 3 sits two hops from it.
	_, err := d.Union(0, 1)
	require.NoError(t, err)
	_, err = d.Union(2, 3)
	require.NoError(t, err)
	_, err = d.Union(0, 2)
	require.NoError(t, err)

	root, err := d.Find(3)
	require.NoError(t, err)

	// Full compression: 3's parent now points directly at the root.
	after := d.Snapshot()
	assert.Equal(t, root, after.Parent[3])

	// A second Find returns the same root and restructures nothing.
	again, err := d.Find(3)
	require.NoError(t, err)
	assert.Equal(t, root, again)
	assert.Equal(t, after, d.Snapshot())
}

func TestSnapshot_IsValueCopy(t *testing.T) {
	d := dsu.New([]int{0, 1})

	before := d.Snapshot()
	_, err := d.Union(0, 1)
	require.NoError(t, err)

	// The pre-union snapshot still shows two singleton roots.
	assert.Equal(t, 0, before.Parent[0])
	assert.Equal(t, 1, before.Parent[1])

	after := d.Snapshot()
	assert.NotEqual(t, before.Parent, after.Parent)
}
