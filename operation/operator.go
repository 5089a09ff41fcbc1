package operation

import (
	"fmt"

	"github.com/go-logr/logr"
	metrics "github.com/rcrowley/go-metrics"

	"github.com/katalvlaran/sparsegrid/grid"
	"github.com/katalvlaran/sparsegrid/sweep"
	"github.com/katalvlaran/sparsegrid/unidir"
)

// Operator applies a fixed bilinear form's matrix to a coefficient vector.
type Operator interface {
	// Mult writes the matrix applied to alpha into result. Both are sized to
	// the grid and must not overlap; result is fully overwritten.
	Mult(alpha, result []float64) error
}

// composed is an Operator backed by a unidir composer.
type composed struct {
	name  string
	g     *grid.Grid
	apply func(alpha, result []float64) error
	log   logr.Logger
	timer metrics.Timer
}

var _ Operator = (*composed)(nil)

// Mult implements Operator.
func (c *composed) Mult(alpha, result []float64) error {
	n := c.g.Size()
	if len(alpha) != n || len(result) != n {
		return fmt.Errorf("%s.Mult: len %d/%d, grid %d: %w", c.name, len(alpha), len(result), n, ErrVectorSize)
	}
	c.log.V(4).Info("mult", "op", c.name, "grid", c.g.Type().String(), "size", n)

	return timed(c.timer, func() error {
		if err := c.apply(alpha, result); err != nil {
			return fmt.Errorf("%s.Mult: %w", c.name, err)
		}
		return nil
	})
}

// passes turns an up/down functor pair into sweep passes over g.
func passes(g *grid.Grid, up, down sweep.Func) (unidir.Pass, unidir.Pass) {
	su, sd := sweep.New(g.Storage(), up), sweep.New(g.Storage(), down)
	if g.Type().HasBoundary() {
		return su.Sweep1DBoundary, sd.Sweep1DBoundary
	}

	return su.Sweep1D, sd.Sweep1D
}

func newComposed(name string, g *grid.Grid, apply func(alpha, result []float64) error, o Options) *composed {
	o.log.V(1).Info("operator created", "op", name, "grid", g.Type().String(), "dim", g.Dim(), "size", g.Size())

	return &composed{
		name:  name,
		g:     g,
		apply: apply,
		log:   o.log,
		timer: metrics.GetOrRegisterTimer(timerName(name, g.Type().String(), "mult"), o.registry),
	}
}

// massFuncs returns the mass up/down functors for g's type.
func massFuncs(g *grid.Grid) (up, down sweep.Func) {
	box := g.BoundingBox()
	if g.Type().HasBoundary() {
		return phiPhiUpBoundary{box: box}, phiPhiDownBoundary{box: box}
	}

	return phiPhiUp{box: box}, phiPhiDown{box: box}
}

func newMass(g *grid.Grid, o Options) *composed {
	mu, md := massFuncs(g)
	up, down := passes(g, mu, md)
	ud := unidir.UpDown{Dims: g.Dim(), Up: up, Down: down}

	return newComposed("mass", g, ud.Apply, o)
}

func newLaplace(g *grid.Grid, o Options) (*composed, error) {
	box := g.BoundingBox()
	var gradUp, gradDown sweep.Func = gradientUp{}, gradientDown{box: box}
	if g.Type().HasBoundary() {
		gradUp, gradDown = gradientUpBoundary{box: box}, gradientDownBoundary{box: box}
	}
	op, err := oneOpDim(g, gradUp, gradDown, o)
	if err != nil {
		return nil, fmt.Errorf("NewLaplace(%v): %w", g.Type(), err)
	}

	return newComposed("laplace", g, op.Apply, o), nil
}

func newXWeightedMass(g *grid.Grid, o Options) (*composed, error) {
	box := g.BoundingBox()
	var xUp, xDown sweep.Func = xPhiPhiUp{box: box}, xPhiPhiDown{box: box}
	if g.Type().HasBoundary() {
		xUp, xDown = xPhiPhiUpBoundary{box: box}, xPhiPhiDownBoundary{box: box}
	}
	op, err := oneOpDim(g, xUp, xDown, o)
	if err != nil {
		return nil, fmt.Errorf("NewXWeightedMass(%v): %w", g.Type(), err)
	}

	return newComposed("xweightedmass", g, op.Apply, o), nil
}

// oneOpDim builds the composer with the mass pair in regular dimensions
// and the given pair in the operator dimension.
func oneOpDim(g *grid.Grid, opUp, opDown sweep.Func, o Options) (unidir.OneOpDim, error) {
	if o.coefs != nil && len(o.coefs) != g.Dim() {
		return unidir.OneOpDim{}, unidir.ErrBadCoefs
	}
	mu, md := massFuncs(g)
	up, down := passes(g, mu, md)
	upOp, downOp := passes(g, opUp, opDown)

	return unidir.OneOpDim{
		Dims: g.Dim(), Up: up, Down: down, UpOp: upOp, DownOp: downOp,
		Coefs: o.coefs, Parallel: o.parallel,
	}, nil
}
