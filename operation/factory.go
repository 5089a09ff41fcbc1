package operation

import (
	"fmt"

	"github.com/katalvlaran/sparsegrid/basis"
	"github.com/katalvlaran/sparsegrid/grid"
	"github.com/katalvlaran/sparsegrid/sweep"
)

// The factories resolve the grid type once. Operations keep a reference to
// the grid and assume it is not modified while they are in use.

// NewHierarchisation returns the sweep hierarchisation for g's type.
func NewHierarchisation(g *grid.Grid, opts ...Option) (*SweepHierarchisation, error) {
	if g == nil {
		return nil, fmt.Errorf("NewHierarchisation: %w", ErrNilGrid)
	}
	o := gatherOptions(opts)

	var hier, dehier sweep.Func
	switch g.Type() {
	case grid.Linear:
		hier, dehier = hierLinear{}, dehierLinear{}
	case grid.LinearBoundary:
		hier, dehier = boundaryTransform{tree: hierLinear{}}, boundaryTransform{tree: dehierLinear{}}
	case grid.ModLinear:
		hier, dehier = hierModLinear{}, dehierModLinear{}
	default:
		return nil, fmt.Errorf("NewHierarchisation(%v): %w", g.Type(), ErrUnsupportedGridType)
	}
	h, err := newSweepHierarchisation(g, hier, dehier, o)
	if err != nil {
		return nil, err
	}
	o.log.V(1).Info("hierarchisation created", "grid", g.Type().String(), "dim", g.Dim(), "order", h.order)

	return h, nil
}

// NewStencilHierarchisation records the hierarchisation of g. Only the
// linear types are supported.
func NewStencilHierarchisation(g *grid.Grid, opts ...Option) (*StencilHierarchisation, error) {
	if g == nil {
		return nil, fmt.Errorf("NewStencilHierarchisation: %w", ErrNilGrid)
	}
	switch g.Type() {
	case grid.Linear, grid.LinearBoundary:
	default:
		return nil, fmt.Errorf("NewStencilHierarchisation(%v): %w", g.Type(), ErrUnsupportedGridType)
	}

	return newStencilHierarchisation(g, gatherOptions(opts))
}

func basisOf(t grid.Type) (basis.Basis, bool) {
	switch t {
	case grid.Linear, grid.LinearBoundary:
		return basis.Linear{}, true
	case grid.ModLinear:
		return basis.ModLinear{}, true
	}

	return nil, false
}

// NewEval returns the evaluation for g's basis.
func NewEval(g *grid.Grid) (*Eval, error) {
	if g == nil {
		return nil, fmt.Errorf("NewEval: %w", ErrNilGrid)
	}
	b, ok := basisOf(g.Type())
	if !ok {
		return nil, fmt.Errorf("NewEval(%v): %w", g.Type(), ErrUnsupportedGridType)
	}

	return newEval(g, b), nil
}

// NewQuadrature returns the exact quadrature for g's basis.
func NewQuadrature(g *grid.Grid) (*Quadrature, error) {
	if g == nil {
		return nil, fmt.Errorf("NewQuadrature: %w", ErrNilGrid)
	}
	b, ok := basisOf(g.Type())
	if !ok {
		return nil, fmt.Errorf("NewQuadrature(%v): %w", g.Type(), ErrUnsupportedGridType)
	}

	return newQuadrature(g, b), nil
}

// NewQuadratureMC returns a Monte Carlo quadrature; see WithSamples and
// WithSeed.
func NewQuadratureMC(g *grid.Grid, opts ...Option) (*QuadratureMC, error) {
	e, err := NewEval(g)
	if err != nil {
		return nil, fmt.Errorf("NewQuadratureMC: %w", err)
	}

	return newQuadratureMC(e, g.BoundingBox(), gatherOptions(opts)), nil
}

// linearOnly rejects grid types without bilinear form functors.
func linearOnly(call string, g *grid.Grid) error {
	if g == nil {
		return fmt.Errorf("%s: %w", call, ErrNilGrid)
	}
	switch g.Type() {
	case grid.Linear, grid.LinearBoundary:
		return nil
	}

	return fmt.Errorf("%s(%v): %w", call, g.Type(), ErrUnsupportedGridType)
}

// NewMass returns the L2 mass matrix operator (φ_i, φ_j).
func NewMass(g *grid.Grid, opts ...Option) (Operator, error) {
	if err := linearOnly("NewMass", g); err != nil {
		return nil, err
	}

	return newMass(g, gatherOptions(opts)), nil
}

// NewLaplace returns the stiffness operator Σ_k c_k (∂_k φ_i, ∂_k φ_j);
// WithCoefficients sets c, default all 1.
func NewLaplace(g *grid.Grid, opts ...Option) (Operator, error) {
	if err := linearOnly("NewLaplace", g); err != nil {
		return nil, err
	}

	op, err := newLaplace(g, gatherOptions(opts))
	if err != nil {
		return nil, err
	}

	return op, nil
}

// NewXWeightedMass returns Σ_k c_k (x_k φ_i, φ_j). On boundary grids every
// dimension with a nonzero weight must have Dirichlet conditions at both
// ends; Mult reports ErrBoundaryNotImplemented otherwise.
func NewXWeightedMass(g *grid.Grid, opts ...Option) (Operator, error) {
	if err := linearOnly("NewXWeightedMass", g); err != nil {
		return nil, err
	}

	op, err := newXWeightedMass(g, gatherOptions(opts))
	if err != nil {
		return nil, err
	}

	return op, nil
}
