package operation

import (
	"fmt"
	"math/rand/v2"

	"github.com/katalvlaran/sparsegrid/basis"
	"github.com/katalvlaran/sparsegrid/grid"
)

// Quadrature integrates the represented function over the bounding box
// exactly: Σ_k alpha[k]·Π_d ∫φ_{k,d} scaled by the box volume.
type Quadrature struct {
	g     *grid.Grid
	basis basis.Basis
}

func newQuadrature(g *grid.Grid, b basis.Basis) *Quadrature {
	return &Quadrature{g: g, basis: b}
}

// Integrate returns the integral of the function with surpluses alpha.
func (q *Quadrature) Integrate(alpha []float64) (float64, error) {
	st := q.g.Storage()
	if len(alpha) != st.Size() {
		return 0, fmt.Errorf("Quadrature.Integrate: len %d, grid %d: %w", len(alpha), st.Size(), ErrVectorSize)
	}
	var sum float64
	for seq, p := range st.Points() {
		w := alpha[seq]
		for d := 0; d < p.Dim() && w != 0; d++ {
			w *= q.basis.Integral(p.Get(d))
		}
		sum += w
	}

	return sum * q.g.BoundingBox().Volume(), nil
}

// QuadratureMC estimates the integral by averaging point evaluations at
// uniformly distributed samples. Each call reseeds its generator, so
// repeated calls with the same options return the same estimate.
type QuadratureMC struct {
	eval    *Eval
	box     *grid.BoundingBox
	samples int
	seed    uint64
}

func newQuadratureMC(e *Eval, box *grid.BoundingBox, o Options) *QuadratureMC {
	return &QuadratureMC{eval: e, box: box, samples: o.samples, seed: o.seed}
}

// Integrate returns the Monte Carlo estimate of the integral of the
// function with surpluses alpha.
func (q *QuadratureMC) Integrate(alpha []float64) (float64, error) {
	if len(alpha) != q.eval.g.Size() {
		return 0, fmt.Errorf("QuadratureMC.Integrate: len %d, grid %d: %w", len(alpha), q.eval.g.Size(), ErrVectorSize)
	}
	rng := rand.New(rand.NewPCG(q.seed, q.seed^0x9e3779b97f4a7c15))
	dim := q.box.Dim()
	y := make([]float64, dim)
	var sum float64
	for range q.samples {
		for d := range y {
			y[d] = rng.Float64()
		}
		sum += q.eval.evalUnit(alpha, y)
	}

	return sum / float64(q.samples) * q.box.Volume(), nil
}
