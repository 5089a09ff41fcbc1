package unidir

import (
	"fmt"

	"gonum.org/v1/gonum/floats"
)

// UpDown applies the separable operator built from one up/down pass pair
// per dimension.
type UpDown struct {
	Dims int
	Up   Pass
	Down Pass
}

// Apply writes the operator applied to alpha into result.
func (u UpDown) Apply(alpha, result []float64) error {
	if len(alpha) != len(result) {
		return fmt.Errorf("UpDown.Apply: %w", ErrVectorSize)
	}
	pick := func(int) (Pass, Pass) { return u.Up, u.Down }

	return updown(alpha, result, u.Dims-1, pick)
}

// updown is the binary recursion over the dimension index. pick returns the
// up and down pass to use in a dimension.
//
// Implementation:
//   - dim > 0: result = updown(up_dim(alpha), dim-1) + down_dim(updown(alpha, dim-1)).
//   - dim = 0: result = up_0(alpha) + down_0(alpha).
//
// Every temporary is private to its branch.
func updown(alpha, result []float64, dim int, pick func(int) (Pass, Pass)) error {
	up, down := pick(dim)
	n := len(alpha)
	if dim == 0 {
		if err := up(alpha, result, dim); err != nil {
			return fmt.Errorf("up(dim=%d): %w", dim, err)
		}
		temp := make([]float64, n)
		if err := down(alpha, temp, dim); err != nil {
			return fmt.Errorf("down(dim=%d): %w", dim, err)
		}
		floats.Add(result, temp)

		return nil
	}

	// 1. Up branch: up in dim, then recurse.
	temp := make([]float64, n)
	if err := up(alpha, temp, dim); err != nil {
		return fmt.Errorf("up(dim=%d): %w", dim, err)
	}
	if err := updown(temp, result, dim-1, pick); err != nil {
		return err
	}

	// 2. Down branch: recurse, then down in dim.
	if err := updown(alpha, temp, dim-1, pick); err != nil {
		return err
	}
	downResult := make([]float64, n)
	if err := down(temp, downResult, dim); err != nil {
		return fmt.Errorf("down(dim=%d): %w", dim, err)
	}
	floats.Add(result, downResult)

	return nil
}
