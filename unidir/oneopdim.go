package unidir

import (
	"fmt"

	"golang.org/x/sync/errgroup"
	"gonum.org/v1/gonum/floats"
)

// OneOpDim applies Σ_k c_k·A_k where A_k is the separable operator using
// UpOp/DownOp in dimension k and Up/Down everywhere else.
type OneOpDim struct {
	Dims   int
	Up     Pass
	Down   Pass
	UpOp   Pass
	DownOp Pass

	// Coefs weights the term of each operator dimension; nil means all 1.
	// Terms with a zero weight are skipped.
	Coefs []float64

	// Parallel bounds the number of terms computed concurrently; values
	// below 2 run the terms sequentially.
	Parallel int
}

// Apply writes Σ_k c_k·A_k(alpha) into result.
func (o OneOpDim) Apply(alpha, result []float64) error {
	if len(alpha) != len(result) {
		return fmt.Errorf("OneOpDim.Apply: %w", ErrVectorSize)
	}
	if o.Coefs != nil && len(o.Coefs) != o.Dims {
		return fmt.Errorf("OneOpDim.Apply: %d coefs for %d dims: %w", len(o.Coefs), o.Dims, ErrBadCoefs)
	}

	terms := make([][]float64, o.Dims)
	var g errgroup.Group
	if o.Parallel > 1 {
		g.SetLimit(o.Parallel)
	}
	for k := 0; k < o.Dims; k++ {
		if o.coef(k) == 0 {
			continue
		}
		terms[k] = make([]float64, len(alpha))
		run := func() error { return o.ApplyDim(alpha, terms[k], k) }
		if o.Parallel > 1 {
			g.Go(run)
			continue
		}
		if err := run(); err != nil {
			return err
		}
	}
	if err := g.Wait(); err != nil {
		return err
	}

	// Merge in dimension order so the sum does not depend on scheduling.
	clear(result)
	for k, term := range terms {
		if term != nil {
			floats.AddScaled(result, o.coef(k), term)
		}
	}

	return nil
}

// ApplyDim writes the single term A_opDim(alpha) into result, unweighted.
func (o OneOpDim) ApplyDim(alpha, result []float64, opDim int) error {
	pick := func(dim int) (Pass, Pass) {
		if dim == opDim {
			return o.UpOp, o.DownOp
		}
		return o.Up, o.Down
	}
	if err := updown(alpha, result, o.Dims-1, pick); err != nil {
		return fmt.Errorf("OneOpDim(op=%d): %w", opDim, err)
	}

	return nil
}

func (o OneOpDim) coef(k int) float64 {
	if o.Coefs == nil {
		return 1
	}

	return o.Coefs[k]
}
