package operation

import (
	"fmt"

	"github.com/katalvlaran/sparsegrid/matrix"
)

// Assemble materializes op as an n×n matrix by applying it to the unit
// vectors. It costs n Mult calls and is meant for tests and diagnostics.
func Assemble(op Operator, n int) (*matrix.Dense, error) {
	m, err := matrix.NewDense(n, n)
	if err != nil {
		return nil, fmt.Errorf("Assemble: %w", err)
	}
	e := make([]float64, n)
	col := make([]float64, n)
	for j := 0; j < n; j++ {
		e[j] = 1
		if err = op.Mult(e, col); err != nil {
			return nil, fmt.Errorf("Assemble: column %d: %w", j, err)
		}
		e[j] = 0
		if err = m.SetCol(j, col); err != nil {
			return nil, fmt.Errorf("Assemble: %w", err)
		}
	}

	return m, nil
}
