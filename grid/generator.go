package grid

import (
	"cmp"
	"fmt"
	"math"
	"slices"

	"github.com/katalvlaran/sparsegrid/gridpoint"
	"github.com/katalvlaran/sparsegrid/storage"
)

var childSteps = []func(gridpoint.Level, gridpoint.Index) (gridpoint.Level, gridpoint.Index){
	gridpoint.LeftChild, gridpoint.RightChild,
}

// Regular inserts the regular sparse grid of the given level: every point
// with Σ_k l_k <= level+d-1. On boundary types level 0 counts as level 1
// in that sum (trapezoid rule), so anchors are added wherever a level-1
// point of the same pole is.
//
// Points are inserted in a fixed order: dimension 0 outermost, levels
// ascending, indices ascending, anchors before level 1.
func (g *Grid) Regular(level int) error {
	if level < 1 || level > int(gridpoint.MaxLevel) {
		return fmt.Errorf("Grid.Regular(%d): %w", level, ErrBadLevel)
	}
	dim := g.Dim()
	budget := level + dim - 1
	boundary := g.typ.HasBoundary()
	p := gridpoint.New(dim)

	var rec func(d, used int) error
	rec = func(d, used int) error {
		if d == dim {
			_, err := g.st.Insert(p)
			return err
		}
		// remaining dimensions need at least one unit of budget each
		limit := budget - used - (dim - d - 1)
		if boundary {
			for i := gridpoint.Index(0); i <= 1; i++ {
				p.Set(d, 0, i)
				if err := rec(d+1, used+1); err != nil {
					return err
				}
			}
		}
		for l := 1; l <= limit; l++ {
			for i := gridpoint.Index(1); i < 1<<l; i += 2 {
				p.Set(d, gridpoint.Level(l), i)
				if err := rec(d+1, used+l); err != nil {
					return err
				}
			}
		}

		return nil
	}
	if err := rec(0, 0); err != nil {
		return fmt.Errorf("Grid.Regular(%d): %w", level, err)
	}
	g.log.V(1).Info("generated regular grid", "type", g.typ.String(), "dim", dim, "level", level, "size", g.Size())

	return nil
}

// Refine inserts both children of every selected point in every dimension,
// together with any missing hierarchical ancestors of those children (and,
// on boundary types, their level-0 anchors). Children beyond
// gridpoint.MaxLevel are skipped. It returns the number of points added;
// new points get sequence numbers after the existing ones.
func (g *Grid) Refine(seqs ...int) (int, error) {
	before := g.Size()
	for _, seq := range seqs {
		if seq < 0 || seq >= before {
			return 0, fmt.Errorf("Grid.Refine(%d): %w", seq, storage.ErrOutOfRange)
		}
	}
	for _, seq := range seqs {
		p := g.st.Point(seq)
		for d := 0; d < g.Dim(); d++ {
			l, i := p.Get(d)
			if l >= gridpoint.MaxLevel {
				continue
			}
			for _, step := range childSteps {
				c := p.Clone()
				cl, ci := step(l, i)
				c.Set(d, cl, ci)
				if err := g.insertClosed(c); err != nil {
					return g.Size() - before, fmt.Errorf("Grid.Refine(%d): %w", seq, err)
				}
			}
		}
	}
	added := g.Size() - before
	g.log.V(1).Info("refined grid", "selected", len(seqs), "added", added, "size", g.Size())

	return added, nil
}

// insertClosed inserts p after all of its ancestors.
func (g *Grid) insertClosed(p gridpoint.Point) error {
	if g.st.Contains(p) {
		return nil
	}
	for d := 0; d < g.Dim(); d++ {
		l, i := p.Get(d)
		switch {
		case l >= 2:
			q := p.Clone()
			pl, pi := gridpoint.Parent(l, i)
			q.Set(d, pl, pi)
			if err := g.insertClosed(q); err != nil {
				return err
			}
		case l == 1 && g.typ.HasBoundary():
			for a := gridpoint.Index(0); a <= 1; a++ {
				q := p.Clone()
				q.Set(d, 0, a)
				if err := g.insertClosed(q); err != nil {
					return err
				}
			}
		}
	}
	_, err := g.st.Insert(p)

	return err
}

// RefineBySurplus refines the n refinable points with the largest absolute
// surplus; ties go to the smaller sequence number. A point is refinable if
// some child in some dimension is missing. It returns the number of points
// added.
func (g *Grid) RefineBySurplus(alpha []float64, n int) (int, error) {
	if len(alpha) != g.Size() {
		return 0, fmt.Errorf("Grid.RefineBySurplus: %w", ErrVectorSize)
	}
	candidates := make([]int, 0, len(alpha))
	for seq := range alpha {
		if g.refinable(seq) {
			candidates = append(candidates, seq)
		}
	}
	slices.SortStableFunc(candidates, func(a, b int) int {
		return cmp.Compare(math.Abs(alpha[b]), math.Abs(alpha[a]))
	})
	if n < len(candidates) {
		candidates = candidates[:n]
	}

	return g.Refine(candidates...)
}

func (g *Grid) refinable(seq int) bool {
	p := g.st.Point(seq)
	for d := 0; d < g.Dim(); d++ {
		l, i := p.Get(d)
		if l >= gridpoint.MaxLevel {
			continue
		}
		for _, step := range childSteps {
			c := p.Clone()
			cl, ci := step(l, i)
			c.Set(d, cl, ci)
			if !g.st.Contains(c) {
				return true
			}
		}
	}

	return false
}
