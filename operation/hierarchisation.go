package operation

import (
	"fmt"

	"github.com/go-logr/logr"
	metrics "github.com/rcrowley/go-metrics"

	"github.com/katalvlaran/sparsegrid/grid"
	"github.com/katalvlaran/sparsegrid/sweep"
	"github.com/katalvlaran/sparsegrid/unidir"
)

// Hierarchisation converts coefficient vectors in place between nodal
// values and hierarchical surpluses. Both vectors are sized to the grid.
type Hierarchisation interface {
	// Hierarchise turns nodal values into surpluses.
	Hierarchise(nodal []float64) error
	// Dehierarchise turns surpluses into nodal values.
	Dehierarchise(alpha []float64) error
}

// SweepHierarchisation is the sweep-based Hierarchisation: one pass per
// dimension in a fixed order.
type SweepHierarchisation struct {
	g        *grid.Grid
	hier     *sweep.Sweep
	dehier   *sweep.Sweep
	boundary bool
	order    []int
	log      logr.Logger
	tHier    metrics.Timer
	tDehier  metrics.Timer
}

var _ Hierarchisation = (*SweepHierarchisation)(nil)

func newSweepHierarchisation(g *grid.Grid, hier, dehier sweep.Func, o Options) (*SweepHierarchisation, error) {
	order := o.order
	if order == nil {
		order = unidir.NaturalOrder(g.Dim())
	} else if err := unidir.ValidateOrder(order, g.Dim()); err != nil {
		return nil, fmt.Errorf("NewHierarchisation(%v): %w", g.Type(), err)
	}
	name := g.Type().String()

	return &SweepHierarchisation{
		g:        g,
		hier:     sweep.New(g.Storage(), hier),
		dehier:   sweep.New(g.Storage(), dehier),
		boundary: g.Type().HasBoundary(),
		order:    order,
		log:      o.log,
		tHier:    metrics.GetOrRegisterTimer(timerName("hierarchisation", name, "hierarchise"), o.registry),
		tDehier:  metrics.GetOrRegisterTimer(timerName("hierarchisation", name, "dehierarchise"), o.registry),
	}, nil
}

// Order returns the order in which dimensions are swept.
func (h *SweepHierarchisation) Order() []int { return append([]int(nil), h.order...) }

// Hierarchise implements Hierarchisation.
func (h *SweepHierarchisation) Hierarchise(nodal []float64) error {
	return timed(h.tHier, func() error {
		return h.transform("Hierarchise", nodal, h.hier)
	})
}

// Dehierarchise implements Hierarchisation. Passes run in the reverse of
// the hierarchisation order.
func (h *SweepHierarchisation) Dehierarchise(alpha []float64) error {
	return timed(h.tDehier, func() error {
		return h.transform("Dehierarchise", alpha, h.dehier)
	})
}

func (h *SweepHierarchisation) transform(call string, vec []float64, sw *sweep.Sweep) error {
	if len(vec) != h.g.Size() {
		return fmt.Errorf("Hierarchisation.%s: len %d, grid %d: %w", call, len(vec), h.g.Size(), ErrVectorSize)
	}
	pass := unidir.Pass(sw.Sweep1D)
	if h.boundary {
		pass = sw.Sweep1DBoundary
	}
	order := h.order
	if call == "Dehierarchise" {
		order = reversed(order)
	}
	h.log.V(4).Info("transform", "call", call, "grid", h.g.Type().String(), "size", len(vec))
	if err := unidir.Transform(vec, h.g.Dim(), order, pass); err != nil {
		return fmt.Errorf("Hierarchisation.%s: %w", call, err)
	}

	return nil
}

func reversed(order []int) []int {
	r := make([]int, len(order))
	for k, d := range order {
		r[len(order)-1-k] = d
	}

	return r
}
