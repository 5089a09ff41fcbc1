package unidir

import "fmt"

// Transform applies pass once per dimension to vec, in place. order lists the
// dimensions in application order; nil means 0..dims-1. The pass may read
// and write the same slice.
func Transform(vec []float64, dims int, order []int, pass Pass) error {
	if order == nil {
		order = NaturalOrder(dims)
	} else if err := ValidateOrder(order, dims); err != nil {
		return fmt.Errorf("Transform: %w", err)
	}
	for _, d := range order {
		if err := pass(vec, vec, d); err != nil {
			return fmt.Errorf("Transform(dim=%d): %w", d, err)
		}
	}

	return nil
}

// NaturalOrder returns [0, 1, ..., dims-1].
func NaturalOrder(dims int) []int {
	order := make([]int, dims)
	for d := range order {
		order[d] = d
	}

	return order
}

// ReverseOrder returns [dims-1, ..., 1, 0].
func ReverseOrder(dims int) []int {
	order := make([]int, dims)
	for d := range order {
		order[d] = dims - 1 - d
	}

	return order
}

// ValidateOrder reports ErrBadOrder unless order is a permutation of [0, dims).
func ValidateOrder(order []int, dims int) error {
	if len(order) != dims {
		return ErrBadOrder
	}
	seen := make([]bool, dims)
	for _, d := range order {
		if d < 0 || d >= dims || seen[d] {
			return ErrBadOrder
		}
		seen[d] = true
	}

	return nil
}
