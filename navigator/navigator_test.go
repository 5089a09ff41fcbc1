package navigator_test

import (
	"testing"

	"github.com/katalvlaran/sparsegrid/gridpoint"
	"github.com/katalvlaran/sparsegrid/navigator"
	"github.com/katalvlaran/sparsegrid/storage"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// fullTree1D stores all 1D points up to level n, optionally with both anchors.
func fullTree1D(t *testing.T, n uint32, boundary bool) *storage.Storage {
	t.Helper()
	s, err := storage.New(1)
	require.NoError(t, err)
	if boundary {
		for i := uint32(0); i <= 1; i++ {
			_, err = s.Insert(gridpoint.NewFrom([]uint32{0}, []uint32{i}))
			require.NoError(t, err)
		}
	}
	for l := uint32(1); l <= n; l++ {
		for i := uint32(1); i < 1<<l; i += 2 {
			_, err = s.Insert(gridpoint.NewFrom([]uint32{l}, []uint32{i}))
			require.NoError(t, err)
		}
	}

	return s
}

func pos(n *navigator.Navigator, d int) [2]uint32 {
	l, i := n.Get(d)
	return [2]uint32{l, i}
}

// TestDescendAscend walks down and back up the tree.
func TestDescendAscend(t *testing.T) {
	n := navigator.New(fullTree1D(t, 3, false))
	assert.Equal(t, [2]uint32{1, 1}, pos(n, 0)) // starts at the root

	n.LeftChild(0)
	assert.Equal(t, [2]uint32{2, 1}, pos(n, 0))
	n.RightChild(0)
	assert.Equal(t, [2]uint32{3, 3}, pos(n, 0))
	n.Up(0)
	assert.Equal(t, [2]uint32{2, 1}, pos(n, 0))
	n.Up(0)
	assert.Equal(t, [2]uint32{1, 1}, pos(n, 0))
	n.Up(0)
	assert.Equal(t, [2]uint32{0, 1}, pos(n, 0)) // above the root: right anchor
	assert.Panics(t, func() { n.Up(0) })         // level 0 has no parent
}

// TestSeqAndHint checks existence-driven leaf detection.
func TestSeqAndHint(t *testing.T) {
	n := navigator.New(fullTree1D(t, 2, false))

	seq, ok := n.Seq()
	require.True(t, ok)
	assert.Equal(t, 0, seq)
	assert.False(t, n.Hint(0)) // root has children

	n.LeftChild(0)
	assert.True(t, n.Hint(0)) // level 2 is the finest
	n.LeftChild(0)
	_, ok = n.Seq()
	assert.False(t, ok) // off the grid, no sequence number
	assert.False(t, n.Exists())
}

// TestSteps enumerates siblings of one level.
func TestSteps(t *testing.T) {
	n := navigator.New(fullTree1D(t, 3, false))
	n.LeftChild(0)
	n.LeftChild(0) // (3,1)

	var seen []uint32
	for n.Exists() {
		_, i := n.Get(0)
		seen = append(seen, i)
		n.StepRight(0)
	}
	assert.Equal(t, []uint32{1, 3, 5, 7}, seen)

	n.StepLeft(0)
	assert.Equal(t, [2]uint32{3, 7}, pos(n, 0))
}

// TestLevelZero covers the boundary anchors and the resets.
func TestLevelZero(t *testing.T) {
	n := navigator.New(fullTree1D(t, 1, true))

	n.LeftLevelZero(0)
	seq, ok := n.Seq()
	require.True(t, ok)
	assert.Equal(t, 0, seq)
	assert.False(t, n.Hint(0)) // the root exists

	n.RightLevelZero(0)
	seq, ok = n.Seq()
	require.True(t, ok)
	assert.Equal(t, 1, seq)

	n.Top(0)
	assert.Equal(t, [2]uint32{1, 1}, pos(n, 0))
	assert.True(t, n.Hint(0))

	n.ResetToLevelZero()
	assert.Equal(t, [2]uint32{0, 0}, pos(n, 0))
	n.ResetToLevelOne()
	assert.Equal(t, [2]uint32{1, 1}, pos(n, 0))

	anchorOnly, err := storage.New(1)
	require.NoError(t, err)
	_, err = anchorOnly.Insert(gridpoint.NewFrom([]uint32{0}, []uint32{0}))
	require.NoError(t, err)
	m := navigator.New(anchorOnly)
	m.LeftLevelZero(0)
	assert.True(t, m.Hint(0)) // no level-1 root below the anchor
}

// TestProbePreservesPosition ensures child probes do not move the cursor.
func TestProbePreservesPosition(t *testing.T) {
	s, err := storage.New(2)
	require.NoError(t, err)
	for _, p := range []gridpoint.Point{
		gridpoint.NewFrom([]uint32{1, 1}, []uint32{1, 1}),
		gridpoint.NewFrom([]uint32{1, 2}, []uint32{1, 3}),
	} {
		_, err = s.Insert(p)
		require.NoError(t, err)
	}
	n := navigator.New(s)

	assert.False(t, n.HasLeftChild(1))
	assert.True(t, n.HasRightChild(1))
	assert.False(t, n.Hint(1))
	assert.True(t, n.Hint(0))
	assert.Equal(t, [2]uint32{1, 1}, pos(n, 1))

	n.MoveTo(gridpoint.NewFrom([]uint32{1, 2}, []uint32{1, 3}))
	assert.True(t, n.Point().Equal(gridpoint.NewFrom([]uint32{1, 2}, []uint32{1, 3})))
	assert.Same(t, s, n.Storage())
	assert.Equal(t, 2, n.Dim())
}
