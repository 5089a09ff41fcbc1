// SPDX-License-Identifier: MIT

package matrix

import (
	"fmt"
	"math"
)

// MatVec returns y = m·x.
//
// Errors: ErrNilMatrix, ErrDimensionMismatch.
// Complexity: O(r·c).
func MatVec(m Matrix, x []float64) ([]float64, error) {
	if err := ValidateNotNil(m); err != nil {
		return nil, fmt.Errorf("MatVec: %w", err)
	}
	if err := ValidateVecLen(x, m.Cols()); err != nil {
		return nil, fmt.Errorf("MatVec: %w", err)
	}
	y := make([]float64, m.Rows())
	if d, ok := m.(*Dense); ok {
		for i := 0; i < d.r; i++ {
			row := d.data[i*d.c : (i+1)*d.c]
			var s float64
			for j, v := range row {
				s += v * x[j]
			}
			y[i] = s
		}

		return y, nil
	}
	for i := 0; i < m.Rows(); i++ {
		var s float64
		for j := 0; j < m.Cols(); j++ {
			v, _ := m.At(i, j)
			s += v * x[j]
		}
		y[i] = s
	}

	return y, nil
}

// Transpose returns a new Dense holding mᵀ.
func Transpose(m Matrix) (*Dense, error) {
	if err := ValidateNotNil(m); err != nil {
		return nil, fmt.Errorf("Transpose: %w", err)
	}
	t, err := NewDense(m.Cols(), m.Rows())
	if err != nil {
		return nil, fmt.Errorf("Transpose: %w", err)
	}
	for i := 0; i < m.Rows(); i++ {
		for j := 0; j < m.Cols(); j++ {
			v, _ := m.At(i, j)
			t.data[j*t.c+i] = v
		}
	}

	return t, nil
}

// MaxAbsDiff returns max |a[i,j] - b[i,j]|.
//
// Errors: ErrNilMatrix, ErrDimensionMismatch.
func MaxAbsDiff(a, b Matrix) (float64, error) {
	if err := ValidateNotNil(a); err != nil {
		return 0, fmt.Errorf("MaxAbsDiff: %w", err)
	}
	if err := ValidateNotNil(b); err != nil {
		return 0, fmt.Errorf("MaxAbsDiff: %w", err)
	}
	if err := ValidateSameShape(a, b); err != nil {
		return 0, fmt.Errorf("MaxAbsDiff: %w", err)
	}
	var worst float64
	for i := 0; i < a.Rows(); i++ {
		for j := 0; j < a.Cols(); j++ {
			x, _ := a.At(i, j)
			y, _ := b.At(i, j)
			worst = math.Max(worst, math.Abs(x-y))
		}
	}

	return worst, nil
}
