package sweep_test

import (
	"errors"
	"testing"

	"github.com/katalvlaran/sparsegrid/gridpoint"
	"github.com/katalvlaran/sparsegrid/navigator"
	"github.com/katalvlaran/sparsegrid/storage"
	"github.com/katalvlaran/sparsegrid/sweep"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// regular stores the regular sparse grid of the given level; with boundary
// the trapezoid rule counts level 0 as level 1.
func regular(t *testing.T, dim int, level uint32, boundary bool) *storage.Storage {
	t.Helper()
	s, err := storage.New(dim)
	require.NoError(t, err)

	minLevel := uint32(1)
	if boundary {
		minLevel = 0
	}
	budget := int(level) + dim - 1
	p := gridpoint.New(dim)
	var rec func(d, used int)
	rec = func(d, used int) {
		if d == dim {
			_, err := s.Insert(p)
			require.NoError(t, err)
			return
		}
		for l := minLevel; int(max(l, 1))+used <= budget-(dim-d-1); l++ {
			if l == 0 {
				for i := uint32(0); i <= 1; i++ {
					p.Set(d, 0, i)
					rec(d+1, used+1)
				}
				continue
			}
			for i := uint32(1); i < 1<<l; i += 2 {
				p.Set(d, l, i)
				rec(d+1, used+int(l))
			}
		}
	}
	rec(0, 0)

	return s
}

// visitPole marks every stored point of the pole below nav, restoring nav.
func visitPole(result []float64, nav *navigator.Navigator, dim int) {
	seq, ok := nav.Seq()
	if !ok {
		return
	}
	result[seq]++
	if nav.Hint(dim) {
		return
	}
	nav.LeftChild(dim)
	visitPole(result, nav, dim)
	nav.StepRight(dim)
	visitPole(result, nav, dim)
	nav.Up(dim)
}

var marker = sweep.FuncOf(func(_, result []float64, nav *navigator.Navigator, dim int) error {
	visitPole(result, nav, dim)
	return nil
})

var boundaryMarker = sweep.FuncOf(func(_, result []float64, nav *navigator.Navigator, dim int) error {
	if seq, ok := nav.Seq(); ok {
		result[seq]++ // left anchor
	}
	nav.RightLevelZero(dim)
	if seq, ok := nav.Seq(); ok {
		result[seq]++
	}
	nav.Top(dim)
	visitPole(result, nav, dim)
	nav.LeftLevelZero(dim)
	return nil
})

// TestSweep1DVisitsEveryPointOnce checks pole enumeration on regular grids.
func TestSweep1DVisitsEveryPointOnce(t *testing.T) {
	for dim := 1; dim <= 4; dim++ {
		s := regular(t, dim, 4, false)
		sw := sweep.New(s, marker)
		for d := 0; d < dim; d++ {
			result := make([]float64, s.Size())
			require.NoError(t, sw.Sweep1D(make([]float64, s.Size()), result, d))
			for seq, c := range result {
				require.Equal(t, 1.0, c, "dim=%d d=%d point %v", dim, d, s.Point(seq))
			}
		}
	}
}

// TestSweep1DBoundaryVisitsEveryPointOnce does the same with level-0 anchors.
func TestSweep1DBoundaryVisitsEveryPointOnce(t *testing.T) {
	for dim := 1; dim <= 3; dim++ {
		s := regular(t, dim, 3, true)
		sw := sweep.New(s, boundaryMarker)
		for d := 0; d < dim; d++ {
			result := make([]float64, s.Size())
			require.NoError(t, sw.Sweep1DBoundary(make([]float64, s.Size()), result, d))
			for seq, c := range result {
				require.Equal(t, 1.0, c, "dim=%d d=%d point %v", dim, d, s.Point(seq))
			}
		}
	}
}

// TestPoleRootsAndOrder records the pole roots handed to the Func.
func TestPoleRootsAndOrder(t *testing.T) {
	s := regular(t, 2, 2, false) // (1,1)x(1,1), (2,*)x(1,1), (1,1)x(2,*)
	var roots []string
	fn := sweep.FuncOf(func(_, _ []float64, nav *navigator.Navigator, dim int) error {
		roots = append(roots, nav.Point().String())
		return nil
	})
	n := s.Size()
	require.NoError(t, sweep.New(s, fn).Sweep1D(make([]float64, n), make([]float64, n), 0))

	assert.Equal(t, []string{"[(1,1) (1,1)]", "[(1,1) (2,1)]", "[(1,1) (2,3)]"}, roots)
}

// TestSweepValidation covers size and dimension preconditions.
func TestSweepValidation(t *testing.T) {
	s := regular(t, 2, 2, false)
	sw := sweep.New(s, marker)
	n := s.Size()

	err := sw.Sweep1D(make([]float64, n-1), make([]float64, n), 0)
	require.ErrorIs(t, err, sweep.ErrVectorSize)
	err = sw.Sweep1DBoundary(make([]float64, n), make([]float64, n+1), 0)
	require.ErrorIs(t, err, sweep.ErrVectorSize)
	err = sw.Sweep1D(make([]float64, n), make([]float64, n), 2)
	require.ErrorIs(t, err, sweep.ErrBadDim)
	err = sw.Sweep1D(make([]float64, n), make([]float64, n), -1)
	require.ErrorIs(t, err, sweep.ErrBadDim)
	assert.Same(t, s, sw.Storage())
}

// TestFuncErrorAborts ensures the first Func error stops the pass.
func TestFuncErrorAborts(t *testing.T) {
	s := regular(t, 2, 3, false)
	boom := errors.New("boom")
	calls := 0
	fn := sweep.FuncOf(func(_, _ []float64, _ *navigator.Navigator, _ int) error {
		calls++
		return boom
	})
	n := s.Size()
	err := sweep.New(s, fn).Sweep1D(make([]float64, n), make([]float64, n), 1)

	require.ErrorIs(t, err, boom)
	assert.Equal(t, 1, calls)
}

// TestEmptyGrid is a no-op.
func TestEmptyGrid(t *testing.T) {
	s, err := storage.New(2)
	require.NoError(t, err)
	sw := sweep.New(s, marker)
	require.NoError(t, sw.Sweep1D(nil, nil, 0))
	require.NoError(t, sw.Sweep1DBoundary(nil, nil, 1))
}
