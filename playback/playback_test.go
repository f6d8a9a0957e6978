package playback_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/stepviz/playback"
	"github.com/katalvlaran/stepviz/sorting"
	"github.com/katalvlaran/stepviz/step"
)

func TestPlayer_WalksForwardAndBack(t *testing.T) {
	p := playback.New([]string{"a", "b", "c"})

	cur, ok := p.Current()
	require.True(t, ok)
	assert.Equal(t, "a", cur)
	assert.Equal(t, 0, p.Index())
	assert.False(t, p.Done())

	cur, ok = p.Next()
	require.True(t, ok)
	assert.Equal(t, "b", cur)

	cur, ok = p.Next()
	require.True(t, ok)
	assert.Equal(t, "c", cur)
	assert.True(t, p.Done())

	// Past the end the cursor stays put.
	_, ok = p.Next()
	assert.False(t, ok)
	assert.Equal(t, 2, p.Index())

	cur, ok = p.Prev()
	require.True(t, ok)
	assert.Equal(t, "b", cur)
}

func TestPlayer_PrevAtStart(t *testing.T) {
	p := playback.New([]int{10, 20})

	_, ok := p.Prev()
	assert.False(t, ok)
	assert.Equal(t, 0, p.Index())
}

func TestPlayer_Seek(t *testing.T) {
	p := playback.New([]int{10, 20, 30})

	require.NoError(t, p.Seek(2))
	cur, ok := p.Current()
	require.True(t, ok)
	assert.Equal(t, 30, cur)

	// Seeking backwards is as valid as seeking forwards.
	require.NoError(t, p.Seek(0))
	assert.Equal(t, 0, p.Index())

	assert.ErrorIs(t, p.Seek(-1), playback.ErrOutOfRange)
	assert.ErrorIs(t, p.Seek(3), playback.ErrOutOfRange)
	assert.Equal(t, 0, p.Index(), "failed seek must not move the cursor")
}

func TestPlayer_RewindAndEnd(t *testing.T) {
	p := playback.New([]int{1, 2, 3, 4})

	p.End()
	assert.Equal(t, 3, p.Index())
	assert.True(t, p.Done())

	p.Rewind()
	assert.Equal(t, 0, p.Index())
	assert.False(t, p.Done())
}

func TestPlayer_EmptyTrace(t *testing.T) {
	p := playback.New[string](nil)

	assert.Equal(t, 0, p.Len())
	assert.True(t, p.Done())

	_, ok := p.Current()
	assert.False(t, ok)
	_, ok = p.Next()
	assert.False(t, ok)
	_, ok = p.Prev()
	assert.False(t, ok)

	p.End()
	p.Rewind()
	assert.Equal(t, 0, p.Index())
}

func TestPlayer_SeekIsStateless(t *testing.T) {
	steps := sorting.Bubble([]int{5, 3, 8, 1, 9})

	p := playback.New(steps)
	require.NoError(t, p.Seek(p.Len() - 1))
	direct, _ := p.Current()

	// Walking there step by step yields the identical snapshot.
	p.Rewind()
	var walked step.ArrayStep
	walked, _ = p.Current()
	for {
		next, ok := p.Next()
		if !ok {
			break
		}
		walked = next
	}
	assert.Equal(t, direct, walked)
}
