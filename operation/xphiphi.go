package operation

import (
	"fmt"

	"github.com/katalvlaran/sparsegrid/grid"
	"github.com/katalvlaran/sparsegrid/navigator"
	"github.com/katalvlaran/sparsegrid/sweep"
)

// x-weighted mass (∫ x φ φ) functors of the linear basis, in physical
// coordinates x = left + width·y. For a hat with physical centre m and
// half-width h:
//
//	∫ x φ_a (linear with end values fl, fr) = m·h·(fl+fr)/2 + (fr-fl)·h²/12
//	∫ x φ_a φ_a                             = m·2h/3
//
// The up direction carries the subtree moments S1 = Σ α_b ∫ x φ_b and
// S2 = Σ α_b ∫ x² φ_b; on the left half of the support of a, φ_a is
// (x-(m-h))/h, on the right half ((m+h)-x)/h.

var (
	_ sweep.Func = xPhiPhiDown{}
	_ sweep.Func = xPhiPhiUp{}
	_ sweep.Func = xPhiPhiDownBoundary{}
	_ sweep.Func = xPhiPhiUpBoundary{}
)

// physical returns the centre and half-width of the current node of dim.
func physical(box *grid.BoundingBox, nav *navigator.Navigator, dim int) (m, h float64) {
	l, i := nav.Get(dim)
	hu := levelWidth(l)
	q := box.Width(dim)

	return box.Offset(dim) + q*float64(i)*hu, q * hu
}

type xPhiPhiDown struct{ box *grid.BoundingBox }

func (f xPhiPhiDown) Apply(source, result []float64, nav *navigator.Navigator, dim int) error {
	f.rec(source, result, nav, dim, 0, 0)
	return nil
}

func (f xPhiPhiDown) rec(source, result []float64, nav *navigator.Navigator, dim int, fl, fr float64) {
	seq, _ := nav.Seq()
	m, h := physical(f.box, nav, dim)
	alpha := source[seq]
	result[seq] = m*h*(fl+fr)/2 + (fr-fl)*h*h/12 + alpha*m*2*h/3
	fm := (fl+fr)/2 + alpha
	children(nav, dim, func(left bool) {
		if left {
			f.rec(source, result, nav, dim, fl, fm)
		} else {
			f.rec(source, result, nav, dim, fm, fr)
		}
	})
}

type xPhiPhiUp struct{ box *grid.BoundingBox }

func (f xPhiPhiUp) Apply(source, result []float64, nav *navigator.Navigator, dim int) error {
	f.rec(source, result, nav, dim)
	return nil
}

// rec returns the moments S1, S2 of the subtree including the node itself.
func (f xPhiPhiUp) rec(source, result []float64, nav *navigator.Navigator, dim int) (s1, s2 float64) {
	seq, _ := nav.Seq()
	m, h := physical(f.box, nav, dim)
	var acc float64
	children(nav, dim, func(left bool) {
		c1, c2 := f.rec(source, result, nav, dim)
		if left {
			acc += (c2 - (m-h)*c1) / h
		} else {
			acc += ((m+h)*c1 - c2) / h
		}
		s1 += c1
		s2 += c2
	})
	result[seq] = acc

	alpha := source[seq]
	s1 += alpha * m * h
	s2 += alpha * h * (m*m + h*h/6)

	return s1, s2
}

// checkDirichlet reports ErrBoundaryNotImplemented unless both ends of dim
// carry Dirichlet conditions.
func checkDirichlet(box *grid.BoundingBox, dim int) error {
	iv := box.Interval(dim)
	if !iv.DirichletLeft || !iv.DirichletRight {
		return fmt.Errorf("x-weighted mass, dim %d: %w", dim, ErrBoundaryNotImplemented)
	}

	return nil
}

type xPhiPhiDownBoundary struct{ box *grid.BoundingBox }

func (f xPhiPhiDownBoundary) Apply(source, result []float64, nav *navigator.Navigator, dim int) error {
	if err := checkDirichlet(f.box, dim); err != nil {
		return err
	}
	seqL, _ := nav.Seq()
	left := source[seqL]
	result[seqL] = 0

	var right float64
	nav.RightLevelZero(dim)
	if seqR, ok := nav.Seq(); ok {
		right = source[seqR]
		result[seqR] = 0
	}

	nav.Top(dim)
	if nav.Exists() {
		xPhiPhiDown{box: f.box}.rec(source, result, nav, dim, left, right)
	}
	nav.LeftLevelZero(dim)

	return nil
}

type xPhiPhiUpBoundary struct{ box *grid.BoundingBox }

func (f xPhiPhiUpBoundary) Apply(source, result []float64, nav *navigator.Navigator, dim int) error {
	if err := checkDirichlet(f.box, dim); err != nil {
		return err
	}
	seqL, _ := nav.Seq()
	result[seqL] = 0
	nav.RightLevelZero(dim)
	if seqR, ok := nav.Seq(); ok {
		result[seqR] = 0
	}

	nav.Top(dim)
	if nav.Exists() {
		xPhiPhiUp{box: f.box}.rec(source, result, nav, dim)
	}
	nav.LeftLevelZero(dim)

	return nil
}
