package sweep

import (
	"errors"
	"fmt"

	"github.com/katalvlaran/sparsegrid/navigator"
	"github.com/katalvlaran/sparsegrid/storage"
)

var (
	// ErrVectorSize indicates a coefficient vector whose length is not the grid size.
	ErrVectorSize = errors.New("sweep: vector length does not match grid size")

	// ErrBadDim indicates a sweep dimension outside [0, Dim()).
	ErrBadDim = errors.New("sweep: dimension out of range")
)

// Func is a dimension-local operator. Apply is called once per pole with nav
// positioned at the pole root; it reads source, writes result at the points
// of the pole and must leave nav where it found it.
type Func interface {
	Apply(source, result []float64, nav *navigator.Navigator, dim int) error
}

// FuncOf adapts a plain function to Func.
type FuncOf func(source, result []float64, nav *navigator.Navigator, dim int) error

// Apply calls f.
func (f FuncOf) Apply(source, result []float64, nav *navigator.Navigator, dim int) error {
	return f(source, result, nav, dim)
}

// Sweep binds a Func to a grid.
type Sweep struct {
	fn Func
	st *storage.Storage
}

// New returns a sweep of fn over st.
func New(st *storage.Storage, fn Func) *Sweep {
	return &Sweep{fn: fn, st: st}
}

// Storage returns the swept grid.
func (s *Sweep) Storage() *storage.Storage { return s.st }

// Sweep1D applies the Func to every pole along dim, each pole rooted at the
// level-1 root of dim. For grids without boundary points.
func (s *Sweep) Sweep1D(source, result []float64, dim int) error {
	if err := s.validate(source, result, dim); err != nil {
		return fmt.Errorf("Sweep.Sweep1D(dim=%d): %w", dim, err)
	}
	nav := navigator.New(s.st)
	nav.ResetToLevelOne()
	if !nav.Exists() {
		return nil
	}
	w := newWalker(s.fn, nav, source, result, dim, false)

	return w.poles(len(w.others))
}

// Sweep1DBoundary applies the Func to every pole along dim, each pole rooted
// at the left anchor (0, 0) of dim. The other dimensions are enumerated
// anchors first, then their trees.
func (s *Sweep) Sweep1DBoundary(source, result []float64, dim int) error {
	if err := s.validate(source, result, dim); err != nil {
		return fmt.Errorf("Sweep.Sweep1DBoundary(dim=%d): %w", dim, err)
	}
	nav := navigator.New(s.st)
	nav.ResetToLevelZero()
	if !nav.Exists() {
		return nil
	}
	w := newWalker(s.fn, nav, source, result, dim, true)

	return w.poles(len(w.others))
}

func (s *Sweep) validate(source, result []float64, dim int) error {
	if dim < 0 || dim >= s.st.Dim() {
		return ErrBadDim
	}
	n := s.st.Size()
	if len(source) != n || len(result) != n {
		return ErrVectorSize
	}

	return nil
}

// walker enumerates poles. others lists the non-swept dimensions; poles(r)
// enumerates dimensions others[0..r-1] below the current position.
type walker struct {
	fn       Func
	nav      *navigator.Navigator
	source   []float64
	result   []float64
	dim      int
	others   []int
	boundary bool
}

func newWalker(fn Func, nav *navigator.Navigator, source, result []float64, dim int, boundary bool) *walker {
	others := make([]int, 0, nav.Dim()-1)
	for d := 0; d < nav.Dim(); d++ {
		if d != dim {
			others = append(others, d)
		}
	}

	return &walker{fn: fn, nav: nav, source: source, result: result, dim: dim, others: others, boundary: boundary}
}

func (w *walker) poles(r int) error {
	if r == 0 {
		return w.fn.Apply(w.source, w.result, w.nav, w.dim)
	}
	d := w.others[r-1]
	if !w.boundary {
		return w.tree(d, r)
	}

	// 1. Anchors of d have no structural parent: visit them directly.
	w.nav.LeftLevelZero(d)
	if w.nav.Exists() {
		if err := w.poles(r - 1); err != nil {
			return err
		}
	}
	w.nav.RightLevelZero(d)
	if w.nav.Exists() {
		if err := w.poles(r - 1); err != nil {
			return err
		}
	}

	// 2. Then the tree of d.
	w.nav.Top(d)
	if w.nav.Exists() {
		if err := w.tree(d, r); err != nil {
			return err
		}
	}
	w.nav.LeftLevelZero(d)

	return nil
}

// tree visits the current value of d and its subtree, enumerating the
// remaining dimensions at every node.
func (w *walker) tree(d, r int) error {
	if err := w.poles(r - 1); err != nil {
		return err
	}
	if w.nav.Hint(d) {
		return nil
	}

	w.nav.LeftChild(d)
	if w.nav.Exists() {
		if err := w.tree(d, r); err != nil {
			return err
		}
	}
	w.nav.StepRight(d)
	if w.nav.Exists() {
		if err := w.tree(d, r); err != nil {
			return err
		}
	}
	w.nav.Up(d)

	return nil
}
