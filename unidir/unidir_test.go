package unidir_test

import (
	"errors"
	"sync"
	"testing"

	"github.com/katalvlaran/sparsegrid/unidir"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gonum.org/v1/gonum/floats"
)

// scale returns a pass multiplying by factor[dim]; a diagonal stand-in for a sweep.
func scale(factor []float64) unidir.Pass {
	return func(source, result []float64, dim int) error {
		for k := range source {
			result[k] = factor[dim] * source[k]
		}
		return nil
	}
}

// TestTransformOrder records the dimensions a transform visits.
func TestTransformOrder(t *testing.T) {
	var got []int
	pass := func(source, result []float64, dim int) error {
		got = append(got, dim)
		assert.Equal(t, &source[0], &result[0]) // in place
		return nil
	}
	vec := []float64{1}

	require.NoError(t, unidir.Transform(vec, 3, nil, pass))
	assert.Equal(t, []int{0, 1, 2}, got)

	got = nil
	require.NoError(t, unidir.Transform(vec, 3, unidir.ReverseOrder(3), pass))
	assert.Equal(t, []int{2, 1, 0}, got)
}

// TestTransformBadOrder rejects non-permutations.
func TestTransformBadOrder(t *testing.T) {
	pass := func(_, _ []float64, _ int) error { return nil }
	for _, order := range [][]int{{0, 0}, {0}, {0, 2}, {-1, 0}} {
		err := unidir.Transform([]float64{1}, 2, order, pass)
		require.ErrorIs(t, err, unidir.ErrBadOrder, "%v", order)
	}
}

// TestTransformPropagatesError wraps the failing dimension.
func TestTransformPropagatesError(t *testing.T) {
	boom := errors.New("boom")
	pass := func(_, _ []float64, dim int) error {
		if dim == 1 {
			return boom
		}
		return nil
	}
	err := unidir.Transform([]float64{1}, 2, nil, pass)
	require.ErrorIs(t, err, boom)
	assert.Contains(t, err.Error(), "dim=1")
}

// TestUpDownSeparable checks the recursion against the tensor product Π(a_d + b_d).
func TestUpDownSeparable(t *testing.T) {
	a := []float64{2, 3, 5}
	b := []float64{7, 11, 13}
	alpha := []float64{1, -2, 0.5}

	for dims := 1; dims <= 3; dims++ {
		want := 1.0
		for d := 0; d < dims; d++ {
			want *= a[d] + b[d]
		}
		result := make([]float64, len(alpha))
		op := unidir.UpDown{Dims: dims, Up: scale(a), Down: scale(b)}
		require.NoError(t, op.Apply(alpha, result))

		expected := make([]float64, len(alpha))
		floats.ScaleTo(expected, want, alpha)
		assert.True(t, floats.EqualApprox(expected, result, 1e-12), "dims=%d: %v", dims, result)
	}
}

// TestUpDownSizeMismatch rejects vectors of different length.
func TestUpDownSizeMismatch(t *testing.T) {
	op := unidir.UpDown{Dims: 1, Up: scale([]float64{1}), Down: scale([]float64{1})}
	require.ErrorIs(t, op.Apply(make([]float64, 2), make([]float64, 3)), unidir.ErrVectorSize)
}

// TestOneOpDimWeightedSum checks Σ_k c_k Π_d (…) with the special pair in dim k.
func TestOneOpDimWeightedSum(t *testing.T) {
	up, down := []float64{1, 2, 3}, []float64{4, 5, 6}       // regular dims
	upOp, downOp := []float64{7, 8, 9}, []float64{10, 11, 12} // operator dim
	coefs := []float64{0.5, 0, 2}                             // middle term skipped
	alpha := []float64{1, 2}

	want := 0.0
	for k := 0; k < 3; k++ {
		term := 1.0
		for d := 0; d < 3; d++ {
			if d == k {
				term *= upOp[d] + downOp[d]
			} else {
				term *= up[d] + down[d]
			}
		}
		want += coefs[k] * term
	}

	for _, parallel := range []int{0, 4} {
		op := unidir.OneOpDim{
			Dims: 3, Up: scale(up), Down: scale(down), UpOp: scale(upOp), DownOp: scale(downOp),
			Coefs: coefs, Parallel: parallel,
		}
		result := []float64{99, 99} // overwritten
		require.NoError(t, op.Apply(alpha, result))
		assert.InDelta(t, want*1, result[0], 1e-9, "parallel=%d", parallel)
		assert.InDelta(t, want*2, result[1], 1e-9, "parallel=%d", parallel)
	}
}

// TestOneOpDimErrors covers coefficient validation and failing tasks.
func TestOneOpDimErrors(t *testing.T) {
	one := scale([]float64{1, 1})
	op := unidir.OneOpDim{Dims: 2, Up: one, Down: one, UpOp: one, DownOp: one, Coefs: []float64{1}}
	require.ErrorIs(t, op.Apply([]float64{1}, []float64{0}), unidir.ErrBadCoefs)

	boom := errors.New("boom")
	var mu sync.Mutex
	calls := 0
	failing := func(_, _ []float64, _ int) error {
		mu.Lock()
		calls++
		mu.Unlock()
		return boom
	}
	op = unidir.OneOpDim{Dims: 2, Up: one, Down: one, UpOp: failing, DownOp: one, Parallel: 2}
	err := op.Apply([]float64{1}, []float64{0})
	require.ErrorIs(t, err, boom)
	assert.Positive(t, calls)
}
