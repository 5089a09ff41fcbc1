package operation

import (
	"math"

	"github.com/katalvlaran/sparsegrid/grid"
	"github.com/katalvlaran/sparsegrid/navigator"
	"github.com/katalvlaran/sparsegrid/sweep"
)

// Stiffness (φ'φ') functors of the linear basis. Derivatives of coarser hats
// are constant on the support of finer ones, so inside the tree only the
// diagonal 2^(l+1) survives; the anchors couple through [[1, -1], [-1, 1]].
// Results are scaled by 1/width.

var (
	_ sweep.Func = gradientDown{}
	_ sweep.Func = gradientUp{}
	_ sweep.Func = gradientDownBoundary{}
	_ sweep.Func = gradientUpBoundary{}
)

type gradientDown struct{ box *grid.BoundingBox }

func (f gradientDown) Apply(source, result []float64, nav *navigator.Navigator, dim int) error {
	f.rec(source, result, nav, dim, 1/f.box.Width(dim))
	return nil
}

func (f gradientDown) rec(source, result []float64, nav *navigator.Navigator, dim int, scale float64) {
	seq, _ := nav.Seq()
	l, _ := nav.Get(dim)
	result[seq] = scale * math.Ldexp(source[seq], int(l)+1)
	children(nav, dim, func(bool) { f.rec(source, result, nav, dim, scale) })
}

type gradientUp struct{}

func (f gradientUp) Apply(_, result []float64, nav *navigator.Navigator, dim int) error {
	f.rec(result, nav, dim)
	return nil
}

func (f gradientUp) rec(result []float64, nav *navigator.Navigator, dim int) {
	seq, _ := nav.Seq()
	result[seq] = 0
	children(nav, dim, func(bool) { f.rec(result, nav, dim) })
}

type gradientDownBoundary struct{ box *grid.BoundingBox }

func (f gradientDownBoundary) Apply(source, result []float64, nav *navigator.Navigator, dim int) error {
	scale := 1 / f.box.Width(dim)
	iv := f.box.Interval(dim)

	seqL, _ := nav.Seq()
	left := source[seqL]
	result[seqL] = 0
	if !iv.DirichletLeft {
		result[seqL] = scale * left
	}

	nav.RightLevelZero(dim)
	if seqR, ok := nav.Seq(); ok {
		result[seqR] = 0
		if !iv.DirichletRight {
			result[seqR] = scale * (source[seqR] - left)
		}
	}

	nav.Top(dim)
	if nav.Exists() {
		gradientDown{box: f.box}.rec(source, result, nav, dim, scale)
	}
	nav.LeftLevelZero(dim)

	return nil
}

type gradientUpBoundary struct{ box *grid.BoundingBox }

func (f gradientUpBoundary) Apply(source, result []float64, nav *navigator.Navigator, dim int) error {
	iv := f.box.Interval(dim)
	seqL, _ := nav.Seq()

	var right float64
	nav.RightLevelZero(dim)
	if seqR, ok := nav.Seq(); ok {
		right = source[seqR]
		result[seqR] = 0
	}
	result[seqL] = 0
	if !iv.DirichletLeft {
		result[seqL] = -right / f.box.Width(dim)
	}

	nav.Top(dim)
	if nav.Exists() {
		gradientUp{}.rec(result, nav, dim)
	}
	nav.LeftLevelZero(dim)

	return nil
}
