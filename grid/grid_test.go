package grid_test

import (
	"math"
	"testing"

	"github.com/go-logr/logr/testr"
	"github.com/katalvlaran/sparsegrid/grid"
	"github.com/katalvlaran/sparsegrid/gridpoint"
	"github.com/katalvlaran/sparsegrid/storage"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// requireDownwardClosed asserts every stored point has its ancestors stored.
func requireDownwardClosed(t *testing.T, g *grid.Grid) {
	t.Helper()
	st := g.Storage()
	for _, p := range st.Points() {
		for d := 0; d < st.Dim(); d++ {
			l, i := p.Get(d)
			q := p.Clone()
			switch {
			case l >= 2:
				pl, pi := gridpoint.Parent(l, i)
				q.Set(d, pl, pi)
				require.True(t, st.Contains(q), "parent of %v in dim %d", p, d)
			case l == 1 && g.Type().HasBoundary():
				q.Set(d, 0, 0)
				require.True(t, st.Contains(q), "left anchor of %v in dim %d", p, d)
				q.Set(d, 0, 1)
				require.True(t, st.Contains(q), "right anchor of %v in dim %d", p, d)
			}
		}
	}
}

// TestParseType covers names and the alias.
func TestParseType(t *testing.T) {
	for name, want := range map[string]grid.Type{
		"linear":                  grid.Linear,
		"linearBoundary":          grid.LinearBoundary,
		"linearTrapezoidBoundary": grid.LinearBoundary,
		"modlinear":               grid.ModLinear,
	} {
		got, err := grid.ParseType(name)
		require.NoError(t, err)
		assert.Equal(t, want, got)
	}
	_, err := grid.ParseType("prewavelet")
	require.ErrorIs(t, err, grid.ErrUnknownType)

	assert.Equal(t, "linearBoundary", grid.LinearBoundary.String())
	assert.Equal(t, "Type(42)", grid.Type(42).String())
	assert.True(t, grid.LinearBoundary.HasBoundary())
	assert.False(t, grid.ModLinear.HasBoundary())
}

// TestNewValidation covers construction errors.
func TestNewValidation(t *testing.T) {
	_, err := grid.New(grid.Type(9), 2)
	require.ErrorIs(t, err, grid.ErrUnknownType)
	_, err = grid.New(grid.Linear, 0)
	require.ErrorIs(t, err, grid.ErrBadDimension)
	_, err = grid.New(grid.Linear, 2, grid.WithBoundingBox(grid.NewBoundingBox(3)))
	require.ErrorIs(t, err, grid.ErrBadDimension)
	_, err = grid.NewNamed("nope", 1)
	require.ErrorIs(t, err, grid.ErrUnknownType)

	g, err := grid.NewNamed("modlinear", 2)
	require.NoError(t, err)
	assert.Equal(t, grid.ModLinear, g.Type())
	assert.True(t, g.BoundingBox().IsUnit())
	assert.Equal(t, 0, g.Size())
}

// TestRegularSizes checks point counts of regular grids.
func TestRegularSizes(t *testing.T) {
	cases := []struct {
		typ   grid.Type
		dim   int
		level int
		want  int
	}{
		{grid.Linear, 1, 2, 3},
		{grid.Linear, 1, 5, 31},
		{grid.Linear, 2, 2, 5},
		{grid.Linear, 2, 3, 17},
		{grid.Linear, 3, 3, 31},
		{grid.LinearBoundary, 1, 2, 5},
		{grid.LinearBoundary, 1, 4, 17},
		{grid.LinearBoundary, 2, 2, 21},
		{grid.ModLinear, 2, 3, 17},
	}
	for _, c := range cases {
		g, err := grid.New(c.typ, c.dim, grid.WithLogger(testr.New(t)))
		require.NoError(t, err)
		require.NoError(t, g.Regular(c.level))
		assert.Equal(t, c.want, g.Size(), "%v d=%d n=%d", c.typ, c.dim, c.level)
		requireDownwardClosed(t, g)
	}
}

// TestRegularOrder checks the deterministic insertion order in 1D.
func TestRegularOrder(t *testing.T) {
	g, err := grid.New(grid.LinearBoundary, 1)
	require.NoError(t, err)
	require.NoError(t, g.Regular(2))

	var xs []float64
	for _, p := range g.Storage().Points() {
		xs = append(xs, p.Coordinate(0))
	}
	assert.Equal(t, []float64{0, 1, 0.5, 0.25, 0.75}, xs)

	err = g.Regular(0)
	require.ErrorIs(t, err, grid.ErrBadLevel)
}

// TestRefineKeepsClosure refines a point whose new children need ancestors.
func TestRefineKeepsClosure(t *testing.T) {
	g, err := grid.New(grid.Linear, 2)
	require.NoError(t, err)
	for _, p := range []gridpoint.Point{
		gridpoint.NewFrom([]uint32{1, 1}, []uint32{1, 1}),
		gridpoint.NewFrom([]uint32{2, 1}, []uint32{1, 1}),
	} {
		_, err = g.Storage().Insert(p)
		require.NoError(t, err)
	}

	added, err := g.Refine(1)
	require.NoError(t, err)
	// (3,1),(3,3) in dim 0; (2,1)x(2,1), (2,1)x(2,3) in dim 1, plus their
	// missing dim-0 parents (1,1)x(2,1) and (1,1)x(2,3).
	assert.Equal(t, 6, added)
	assert.Equal(t, 8, g.Size())
	requireDownwardClosed(t, g)

	_, err = g.Refine(100)
	require.ErrorIs(t, err, storage.ErrOutOfRange)
}

// TestRefineBoundaryAddsAnchors refines on a boundary grid.
func TestRefineBoundaryAddsAnchors(t *testing.T) {
	g, err := grid.New(grid.LinearBoundary, 2)
	require.NoError(t, err)
	require.NoError(t, g.Regular(1))
	require.Equal(t, 9, g.Size()) // 3x3 full grid

	root, ok := g.Storage().Find(gridpoint.New(2))
	require.True(t, ok)
	added, err := g.Refine(root)
	require.NoError(t, err)
	// four children; (2,*)x(1,1) also needs (2,*)x(0,0) and (2,*)x(0,1), same in the other dim.
	assert.Equal(t, 12, added)
	requireDownwardClosed(t, g)
}

// TestRefineBySurplus refines the largest surplus among refinable points.
func TestRefineBySurplus(t *testing.T) {
	g, err := grid.New(grid.Linear, 1)
	require.NoError(t, err)
	require.NoError(t, g.Regular(2)) // x = .5, .25, .75

	added, err := g.RefineBySurplus([]float64{100, -5, 0.2}, 1)
	require.NoError(t, err)
	assert.Equal(t, 2, added) // the root is not refinable, (2,1) wins
	assert.True(t, g.Storage().Contains(gridpoint.NewFrom([]uint32{3}, []uint32{1})))
	assert.False(t, g.Storage().Contains(gridpoint.NewFrom([]uint32{3}, []uint32{5})))

	_, err = g.RefineBySurplus([]float64{1}, 1)
	require.ErrorIs(t, err, grid.ErrVectorSize)
}

// TestBoundingBox covers validation and coordinate mapping.
func TestBoundingBox(t *testing.T) {
	_, err := grid.NewBoundingBoxFrom([]grid.Interval{{Left: 1, Right: 1}})
	require.ErrorIs(t, err, grid.ErrBadInterval)
	_, err = grid.NewBoundingBoxFrom([]grid.Interval{{Left: 0, Right: math.Inf(1)}})
	require.ErrorIs(t, err, grid.ErrBadInterval)
	_, err = grid.NewBoundingBoxFrom(nil)
	require.ErrorIs(t, err, grid.ErrBadDimension)

	box, err := grid.NewBoundingBoxFrom([]grid.Interval{
		{Left: -1, Right: 3, DirichletLeft: true},
		{Left: 2, Right: 2.5},
	})
	require.NoError(t, err)
	assert.Equal(t, 4.0, box.Width(0))
	assert.Equal(t, 2.0, box.Offset(1))
	assert.Equal(t, 2.0, box.Volume())
	assert.False(t, box.IsUnit())
	assert.True(t, box.Interval(0).DirichletLeft)
	assert.Equal(t, "[-1, 3] x [2, 2.5]", box.String())

	x := make([]float64, 2)
	box.FromUnit([]float64{0.5, 0.5}, x)
	assert.Equal(t, []float64{1, 2.25}, x)
	y := make([]float64, 2)
	box.ToUnit(x, y)
	assert.Equal(t, []float64{0.5, 0.5}, y)
}
