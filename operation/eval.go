package operation

import (
	"fmt"
	"math"

	"github.com/katalvlaran/sparsegrid/basis"
	"github.com/katalvlaran/sparsegrid/grid"
	"github.com/katalvlaran/sparsegrid/gridpoint"
)

// Eval evaluates the function represented by hierarchical surpluses.
//
// Per dimension only the chain of nodes whose support contains the
// coordinate can contribute, one per level, plus the two anchors on
// boundary grids. Eval descends those chains dimension by dimension and
// stops a chain at the first node that is not stored, which is exact on
// grids that hold every hierarchical ancestor of their points.
type Eval struct {
	g        *grid.Grid
	basis    basis.Basis
	boundary bool
}

func newEval(g *grid.Grid, b basis.Basis) *Eval {
	return &Eval{g: g, basis: b, boundary: g.Type().HasBoundary()}
}

// Eval returns Σ_k alpha[k]·φ_k(x) for x in physical coordinates.
func (e *Eval) Eval(alpha, x []float64) (float64, error) {
	if len(alpha) != e.g.Size() {
		return 0, fmt.Errorf("Eval.Eval: len %d, grid %d: %w", len(alpha), e.g.Size(), ErrVectorSize)
	}
	dim := e.g.Dim()
	if len(x) != dim {
		return 0, fmt.Errorf("Eval.Eval: point of dim %d, grid %d: %w", len(x), dim, ErrOutOfDomain)
	}
	y := make([]float64, dim)
	e.g.BoundingBox().ToUnit(x, y)
	for d, v := range y {
		if math.IsNaN(v) || v < 0 || v > 1 {
			return 0, fmt.Errorf("Eval.Eval: x[%d]=%g: %w", d, x[d], ErrOutOfDomain)
		}
	}

	return e.evalUnit(alpha, y), nil
}

// evalUnit evaluates at y in the unit cube; len(alpha) is already checked.
func (e *Eval) evalUnit(alpha, y []float64) float64 {
	dim := len(y)
	p := gridpoint.New(dim)
	if e.boundary {
		for d := 0; d < dim; d++ {
			p.Put(d, 0, 0)
		}
	}
	var key []byte

	var rec func(d int, weight float64) float64
	rec = func(d int, weight float64) float64 {
		var sum float64
		visit := func(l gridpoint.Level, i gridpoint.Index) bool {
			p.Put(d, l, i)
			key = p.AppendKey(key[:0])
			seq, ok := e.g.Storage().FindKey(key)
			if !ok {
				return false
			}
			w := weight * e.basis.Eval(l, i, y[d])
			if w != 0 {
				if d == dim-1 {
					sum += w * alpha[seq]
				} else {
					sum += rec(d+1, w)
				}
			}

			return true
		}

		if e.boundary {
			visit(0, 0)
			visit(0, 1)
		}
		for l := gridpoint.Level(1); l <= gridpoint.MaxLevel; l++ {
			if !visit(l, chainIndex(l, y[d])) {
				break
			}
		}
		// restore the minimal node so deeper dimensions probe from it
		if e.boundary {
			p.Put(d, 0, 0)
		} else {
			p.Put(d, 1, 1)
		}

		return sum
	}

	return rec(0, 1)
}

// chainIndex returns the odd index of level l whose support contains y.
func chainIndex(l gridpoint.Level, y float64) gridpoint.Index {
	n := uint64(1) << l
	i := uint64(math.Floor(y*float64(n))) | 1
	if i >= n {
		i = n - 1
	}

	return gridpoint.Index(i)
}
