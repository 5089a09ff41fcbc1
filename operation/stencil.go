package operation

import (
	"fmt"

	"github.com/go-logr/logr"

	"github.com/katalvlaran/sparsegrid/grid"
	"github.com/katalvlaran/sparsegrid/navigator"
	"github.com/katalvlaran/sparsegrid/sweep"
	"github.com/katalvlaran/sparsegrid/unidir"
)

// StencilEntry is one step of a recorded transform:
// alpha[Surplus] += Weight·alpha[Neighbor].
type StencilEntry struct {
	Surplus  int
	Neighbor int
	Weight   float64
}

// StencilHierarchisation records the linear hierarchisation of a fixed grid
// as a list of entries and replays it on vectors. Replaying the list
// backwards with negated weights dehierarchises.
type StencilHierarchisation struct {
	g       *grid.Grid
	entries []StencilEntry
	log     logr.Logger
}

var _ Hierarchisation = (*StencilHierarchisation)(nil)

func newStencilHierarchisation(g *grid.Grid, o Options) (*StencilHierarchisation, error) {
	order := o.order
	if order == nil {
		order = unidir.NaturalOrder(g.Dim())
	} else if err := unidir.ValidateOrder(order, g.Dim()); err != nil {
		return nil, fmt.Errorf("NewStencilHierarchisation(%v): %w", g.Type(), err)
	}

	s := &StencilHierarchisation{g: g, log: o.log}
	rec := &stencilRecorder{entries: &s.entries}
	var fn sweep.Func = rec
	if g.Type().HasBoundary() {
		fn = stencilBoundary{rec: rec}
	}
	sw := sweep.New(g.Storage(), fn)
	pass := unidir.Pass(sw.Sweep1D)
	if g.Type().HasBoundary() {
		pass = sw.Sweep1DBoundary
	}
	// The recorder ignores vector contents; the sweep only checks sizes.
	dummy := make([]float64, g.Size())
	if err := unidir.Transform(dummy, g.Dim(), order, pass); err != nil {
		return nil, fmt.Errorf("NewStencilHierarchisation(%v): %w", g.Type(), err)
	}
	o.log.V(1).Info("stencil recorded", "grid", g.Type().String(), "size", g.Size(), "entries", len(s.entries))

	return s, nil
}

// Entries returns a copy of the recorded stencil.
func (s *StencilHierarchisation) Entries() []StencilEntry {
	return append([]StencilEntry(nil), s.entries...)
}

// Hierarchise implements Hierarchisation.
func (s *StencilHierarchisation) Hierarchise(nodal []float64) error {
	if len(nodal) != s.g.Size() {
		return fmt.Errorf("StencilHierarchisation.Hierarchise: %w", ErrVectorSize)
	}
	for _, e := range s.entries {
		nodal[e.Surplus] += e.Weight * nodal[e.Neighbor]
	}

	return nil
}

// Dehierarchise implements Hierarchisation.
func (s *StencilHierarchisation) Dehierarchise(alpha []float64) error {
	if len(alpha) != s.g.Size() {
		return fmt.Errorf("StencilHierarchisation.Dehierarchise: %w", ErrVectorSize)
	}
	for k := len(s.entries) - 1; k >= 0; k-- {
		e := s.entries[k]
		alpha[e.Surplus] -= e.Weight * alpha[e.Neighbor]
	}

	return nil
}

// stencilRecorder appends, per node and after its subtrees, one entry per
// stored hierarchical neighbor. -1 marks a neighbor on the domain boundary
// of a grid without anchors.
type stencilRecorder struct {
	entries *[]StencilEntry
}

func (r *stencilRecorder) Apply(_, _ []float64, nav *navigator.Navigator, dim int) error {
	r.rec(nav, dim, -1, -1)
	return nil
}

func (r *stencilRecorder) rec(nav *navigator.Navigator, dim, left, right int) {
	seq, _ := nav.Seq()
	children(nav, dim, func(isLeft bool) {
		if isLeft {
			r.rec(nav, dim, left, seq)
		} else {
			r.rec(nav, dim, seq, right)
		}
	})
	if left >= 0 {
		*r.entries = append(*r.entries, StencilEntry{Surplus: seq, Neighbor: left, Weight: -0.5})
	}
	if right >= 0 {
		*r.entries = append(*r.entries, StencilEntry{Surplus: seq, Neighbor: right, Weight: -0.5})
	}
}

// stencilBoundary starts the recorder between the two anchors of a pole.
type stencilBoundary struct {
	rec *stencilRecorder
}

func (b stencilBoundary) Apply(_, _ []float64, nav *navigator.Navigator, dim int) error {
	left, _ := nav.Seq()
	right := -1
	nav.RightLevelZero(dim)
	if seq, ok := nav.Seq(); ok {
		right = seq
	}
	nav.Top(dim)
	if nav.Exists() {
		b.rec.rec(nav, dim, left, right)
	}
	nav.LeftLevelZero(dim)

	return nil
}
