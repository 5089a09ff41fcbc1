package operation

import (
	"math"

	"github.com/katalvlaran/sparsegrid/grid"
	"github.com/katalvlaran/sparsegrid/navigator"
	"github.com/katalvlaran/sparsegrid/sweep"
)

// Mass (φφ) functors of the linear basis. Results are scaled by the width
// of the swept dimension.
//
// Down (pre-order) adds the contribution of every ancestor and of the node
// itself: fl and fr are the values of Σ_{ancestors} α_b φ_b at the support
// ends. Up (post-order) adds the contribution of every strict descendant:
// fl and fr return the subtree's integral against the linear functions that
// are 1 at the left, resp. right, support end and 0 at the other.

var (
	_ sweep.Func = phiPhiDown{}
	_ sweep.Func = phiPhiUp{}
	_ sweep.Func = phiPhiDownBoundary{}
	_ sweep.Func = phiPhiUpBoundary{}
)

func levelWidth(l uint32) float64 { return math.Ldexp(1, -int(l)) }

type phiPhiDown struct{ box *grid.BoundingBox }

func (f phiPhiDown) Apply(source, result []float64, nav *navigator.Navigator, dim int) error {
	f.rec(source, result, nav, dim, 0, 0)
	return nil
}

func (f phiPhiDown) rec(source, result []float64, nav *navigator.Navigator, dim int, fl, fr float64) {
	seq, _ := nav.Seq()
	l, _ := nav.Get(dim)
	h := levelWidth(l)
	alpha := source[seq]
	fm := (fl+fr)/2 + alpha
	result[seq] = f.box.Width(dim) * (h*(fl+fr)/2 + 2.0/3.0*h*alpha)
	children(nav, dim, func(left bool) {
		if left {
			f.rec(source, result, nav, dim, fl, fm)
		} else {
			f.rec(source, result, nav, dim, fm, fr)
		}
	})
}

type phiPhiUp struct{ box *grid.BoundingBox }

func (f phiPhiUp) Apply(source, result []float64, nav *navigator.Navigator, dim int) error {
	f.rec(source, result, nav, dim)
	return nil
}

// rec returns the subtree integrals against the left and right end functions.
func (f phiPhiUp) rec(source, result []float64, nav *navigator.Navigator, dim int) (fl, fr float64) {
	seq, _ := nav.Seq()
	l, _ := nav.Get(dim)
	var fml, fmr float64
	children(nav, dim, func(left bool) {
		if left {
			var cl float64
			cl, fml = f.rec(source, result, nav, dim)
			fl += cl
		} else {
			var cr float64
			fmr, cr = f.rec(source, result, nav, dim)
			fr += cr
		}
	})
	fm := fml + fmr
	result[seq] = f.box.Width(dim) * fm

	own := source[seq] * levelWidth(l) / 2
	fl += fm/2 + own
	fr += fm/2 + own

	return fl, fr
}

// phiPhiDownBoundary adds the anchor block [[1/3, 1/6], [1/6, 1/3]] (lower
// part) and runs the tree down between the anchor values.
type phiPhiDownBoundary struct{ box *grid.BoundingBox }

func (f phiPhiDownBoundary) Apply(source, result []float64, nav *navigator.Navigator, dim int) error {
	q := f.box.Width(dim)
	iv := f.box.Interval(dim)

	seqL, _ := nav.Seq()
	left := source[seqL]
	result[seqL] = 0
	if !iv.DirichletLeft {
		result[seqL] = q * left / 3
	}

	var right float64
	nav.RightLevelZero(dim)
	if seqR, ok := nav.Seq(); ok {
		right = source[seqR]
		result[seqR] = 0
		if !iv.DirichletRight {
			result[seqR] = q * (right/3 + left/6)
		}
	}

	nav.Top(dim)
	if nav.Exists() {
		phiPhiDown{box: f.box}.rec(source, result, nav, dim, left, right)
	}
	nav.LeftLevelZero(dim)

	return nil
}

// phiPhiUpBoundary collects the tree into the anchors and adds the upper
// anchor coupling.
type phiPhiUpBoundary struct{ box *grid.BoundingBox }

func (f phiPhiUpBoundary) Apply(source, result []float64, nav *navigator.Navigator, dim int) error {
	q := f.box.Width(dim)
	iv := f.box.Interval(dim)
	seqL, _ := nav.Seq()

	var fl, fr float64
	nav.Top(dim)
	if nav.Exists() {
		fl, fr = phiPhiUp{box: f.box}.rec(source, result, nav, dim)
	}

	var right float64
	nav.RightLevelZero(dim)
	seqR, hasRight := nav.Seq()
	if hasRight {
		right = source[seqR]
		result[seqR] = 0
		if !iv.DirichletRight {
			result[seqR] = q * fr
		}
	}
	result[seqL] = 0
	if !iv.DirichletLeft {
		result[seqL] = q * (fl + right/6)
	}
	nav.LeftLevelZero(dim)

	return nil
}
