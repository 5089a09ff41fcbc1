package operation_test

import (
	"math"
	"math/rand/v2"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/sparsegrid/basis"
	"github.com/katalvlaran/sparsegrid/grid"
	"github.com/katalvlaran/sparsegrid/gridpoint"
	"github.com/katalvlaran/sparsegrid/matrix"
)

const tol = 1e-12

// regular builds a regular grid of type t on box (nil: unit cube).
func regular(t *testing.T, typ grid.Type, dim, level int, box *grid.BoundingBox) *grid.Grid {
	t.Helper()
	g, err := grid.New(typ, dim, grid.WithBoundingBox(box))
	require.NoError(t, err)
	require.NoError(t, g.Regular(level))

	return g
}

// nodalOf samples f at the physical coordinates of every grid point.
func nodalOf(g *grid.Grid, f func(x []float64) float64) []float64 {
	out := make([]float64, g.Size())
	x := make([]float64, g.Dim())
	for seq, p := range g.Storage().Points() {
		g.BoundingBox().FromUnit(p.Coordinates(), x)
		out[seq] = f(x)
	}

	return out
}

func randomVector(n int, seed uint64) []float64 {
	rng := rand.New(rand.NewPCG(seed, 7))
	v := make([]float64, n)
	for k := range v {
		v[k] = 2*rng.Float64() - 1
	}

	return v
}

// kind selects a one-dimensional bilinear form for the reference matrices.
type kind int

const (
	kindMass kind = iota
	kindStiffness
	kindXMass
)

// integral1D integrates the one-dimensional form of (la, ia) and (lb, ib)
// on interval iv with Simpson's rule per cell of level fine, which is exact
// for the piecewise cubic integrands involved. Rows of Dirichlet anchors are
// zero.
func integral1D(k kind, iv grid.Interval, fine uint32, la, ia, lb, ib uint32) float64 {
	if la == 0 && ((ia == 0 && iv.DirichletLeft) || (ia == 1 && iv.DirichletRight)) {
		return 0
	}
	var b basis.Linear
	q := iv.Width()
	cells := 1 << fine
	hc := 1 / float64(cells)
	var sum float64
	for c := 0; c < cells; c++ {
		y0, y1 := float64(c)*hc, float64(c+1)*hc
		ym := (y0 + y1) / 2
		switch k {
		case kindStiffness:
			da := (b.Eval(la, ia, y1) - b.Eval(la, ia, y0)) / hc
			db := (b.Eval(lb, ib, y1) - b.Eval(lb, ib, y0)) / hc
			sum += da * db * hc / q
		default:
			w := func(y float64) float64 {
				v := b.Eval(la, ia, y) * b.Eval(lb, ib, y)
				if k == kindXMass {
					v *= iv.Left + q*y
				}
				return v
			}
			sum += q * hc / 6 * (w(y0) + 4*w(ym) + w(y1))
		}
	}

	return sum
}

// reference assembles Σ_k coefs[k]·(k-th tensor term) where the k-th term
// uses op in dimension k and the mass everywhere else. With op == kindMass
// and coefs nil it is the plain tensor mass matrix.
func reference(t *testing.T, g *grid.Grid, op kind, coefs []float64) *matrix.Dense {
	t.Helper()
	pts := g.Storage().Points()
	n := len(pts)
	fine := uint32(g.Storage().MaxLevel()) + 1
	box := g.BoundingBox()
	m, err := matrix.NewDense(n, n)
	require.NoError(t, err)

	terms := []int{-1}
	if op != kindMass {
		terms = terms[:0]
		for d := 0; d < g.Dim(); d++ {
			terms = append(terms, d)
		}
	}
	for r, pr := range pts {
		for c, pc := range pts {
			var v float64
			for _, opDim := range terms {
				w := 1.0
				if opDim >= 0 && coefs != nil {
					w = coefs[opDim]
				}
				for d := 0; d < g.Dim() && w != 0; d++ {
					k := kindMass
					if d == opDim {
						k = op
					}
					lr, ir := pr.Get(d)
					lc, ic := pc.Get(d)
					w *= integral1D(k, box.Interval(d), fine, lr, ir, lc, ic)
				}
				v += w
			}
			require.NoError(t, m.Set(r, c, v))
		}
	}

	return m
}

// requireMatrixNear compares two matrices entrywise with tolerance eps.
func requireMatrixNear(t *testing.T, want, got *matrix.Dense, eps float64) {
	t.Helper()
	diff, err := matrix.MaxAbsDiff(want, got)
	require.NoError(t, err)
	require.LessOrEqual(t, diff, eps, "max |want-got| = %g", diff)
}

func point(levels []gridpoint.Level, indices []gridpoint.Index) gridpoint.Point {
	return gridpoint.NewFrom(levels, indices)
}

func approxEqual(a, b, eps float64) bool {
	return math.Abs(a-b) <= eps*math.Max(1, math.Max(math.Abs(a), math.Abs(b)))
}
