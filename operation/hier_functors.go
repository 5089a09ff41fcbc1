package operation

import (
	"github.com/katalvlaran/sparsegrid/gridpoint"
	"github.com/katalvlaran/sparsegrid/navigator"
	"github.com/katalvlaran/sparsegrid/sweep"
)

// Hierarchisation functors. fl and fr are the values of the coarser
// interpolant at the ends of the current node's support. Hierarchisation
// finishes both subtrees before overwriting the node (post-order), so the
// transform works in place; dehierarchisation writes the node first
// (pre-order).

var (
	_ sweep.Func = hierLinear{}
	_ sweep.Func = dehierLinear{}
	_ sweep.Func = boundaryTransform{}
	_ sweep.Func = hierModLinear{}
	_ sweep.Func = dehierModLinear{}
)

// treeFunc is a pole recursion started from the level-1 root with the
// interpolant values at 0 and 1.
type treeFunc interface {
	rec(source, result []float64, nav *navigator.Navigator, dim int, fl, fr float64)
}

// children runs visit on the stored children of the current node, left
// first, passing which side the child is on.
func children(nav *navigator.Navigator, dim int, visit func(left bool)) {
	if nav.Hint(dim) {
		return
	}
	nav.LeftChild(dim)
	if nav.Exists() {
		visit(true)
	}
	nav.StepRight(dim)
	if nav.Exists() {
		visit(false)
	}
	nav.Up(dim)
}

type hierLinear struct{}

func (f hierLinear) Apply(source, result []float64, nav *navigator.Navigator, dim int) error {
	f.rec(source, result, nav, dim, 0, 0)
	return nil
}

func (f hierLinear) rec(source, result []float64, nav *navigator.Navigator, dim int, fl, fr float64) {
	seq, _ := nav.Seq()
	fm := source[seq]
	children(nav, dim, func(left bool) {
		if left {
			f.rec(source, result, nav, dim, fl, fm)
		} else {
			f.rec(source, result, nav, dim, fm, fr)
		}
	})
	result[seq] = fm - (fl+fr)/2
}

type dehierLinear struct{}

func (f dehierLinear) Apply(source, result []float64, nav *navigator.Navigator, dim int) error {
	f.rec(source, result, nav, dim, 0, 0)
	return nil
}

func (f dehierLinear) rec(source, result []float64, nav *navigator.Navigator, dim int, fl, fr float64) {
	seq, _ := nav.Seq()
	fm := (fl+fr)/2 + source[seq]
	result[seq] = fm
	children(nav, dim, func(left bool) {
		if left {
			f.rec(source, result, nav, dim, fl, fm)
		} else {
			f.rec(source, result, nav, dim, fm, fr)
		}
	})
}

// boundaryTransform handles the two level-0 anchors of a pole and runs the
// tree recursion between them. Anchor values are the same in nodal and
// hierarchical form. A missing right anchor counts as 0.
type boundaryTransform struct {
	tree treeFunc
}

func (f boundaryTransform) Apply(source, result []float64, nav *navigator.Navigator, dim int) error {
	seqL, _ := nav.Seq()
	left := source[seqL]
	result[seqL] = left

	var right float64
	nav.RightLevelZero(dim)
	if seqR, ok := nav.Seq(); ok {
		right = source[seqR]
		result[seqR] = right
	}

	nav.Top(dim)
	if nav.Exists() {
		f.tree.rec(source, result, nav, dim, left, right)
	}
	nav.LeftLevelZero(dim)

	return nil
}

// modChildEnds returns the interpolant values handed to the left and right
// child of (l, i). The constant level-1 function and the extrapolated
// outermost functions of each level change the values at the support ends.
func modChildEnds(l gridpoint.Level, i gridpoint.Index, fl, fm, fr float64) (leftEnd, rightEnd float64) {
	leftEnd, rightEnd = fl, fr
	switch {
	case l == 1:
		leftEnd, rightEnd = fm, fm
	case i == 1:
		leftEnd = 2*fm - fr
	case gridpoint.IsRightBoundary(l, i):
		rightEnd = 2*fm - fl
	}

	return leftEnd, rightEnd
}

type hierModLinear struct{}

func (f hierModLinear) Apply(source, result []float64, nav *navigator.Navigator, dim int) error {
	f.rec(source, result, nav, dim, 0, 0)
	return nil
}

func (f hierModLinear) rec(source, result []float64, nav *navigator.Navigator, dim int, fl, fr float64) {
	seq, _ := nav.Seq()
	l, i := nav.Get(dim)
	fm := source[seq]
	leftEnd, rightEnd := modChildEnds(l, i, fl, fm, fr)
	children(nav, dim, func(left bool) {
		if left {
			f.rec(source, result, nav, dim, leftEnd, fm)
		} else {
			f.rec(source, result, nav, dim, fm, rightEnd)
		}
	})
	result[seq] = fm - (fl+fr)/2
}

type dehierModLinear struct{}

func (f dehierModLinear) Apply(source, result []float64, nav *navigator.Navigator, dim int) error {
	f.rec(source, result, nav, dim, 0, 0)
	return nil
}

func (f dehierModLinear) rec(source, result []float64, nav *navigator.Navigator, dim int, fl, fr float64) {
	seq, _ := nav.Seq()
	l, i := nav.Get(dim)
	fm := (fl+fr)/2 + source[seq]
	result[seq] = fm
	leftEnd, rightEnd := modChildEnds(l, i, fl, fm, fr)
	children(nav, dim, func(left bool) {
		if left {
			f.rec(source, result, nav, dim, leftEnd, fm)
		} else {
			f.rec(source, result, nav, dim, fm, rightEnd)
		}
	})
}
