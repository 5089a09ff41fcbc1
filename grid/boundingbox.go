package grid

import (
	"fmt"
	"math"
	"strings"
)

// Interval is the physical extent of one dimension.
type Interval struct {
	Left, Right float64

	// DirichletLeft/DirichletRight mark interval ends with homogeneous
	// Dirichlet conditions: operators zero the rows of the anchors there.
	DirichletLeft, DirichletRight bool
}

// Width returns Right - Left.
func (iv Interval) Width() float64 { return iv.Right - iv.Left }

// BoundingBox maps the unit cube onto the physical domain: x = Left + Width·y
// in every dimension.
type BoundingBox struct {
	intervals []Interval
}

// NewBoundingBox returns the unit cube of dimension dim.
func NewBoundingBox(dim int) *BoundingBox {
	b := &BoundingBox{intervals: make([]Interval, dim)}
	for d := range b.intervals {
		b.intervals[d] = Interval{Left: 0, Right: 1}
	}

	return b
}

// NewBoundingBoxFrom validates and copies the given intervals.
func NewBoundingBoxFrom(intervals []Interval) (*BoundingBox, error) {
	if len(intervals) == 0 {
		return nil, fmt.Errorf("NewBoundingBoxFrom: %w", ErrBadDimension)
	}
	for d, iv := range intervals {
		if math.IsNaN(iv.Left) || math.IsInf(iv.Left, 0) ||
			math.IsNaN(iv.Right) || math.IsInf(iv.Right, 0) || !(iv.Right > iv.Left) {
			return nil, fmt.Errorf("NewBoundingBoxFrom: dim %d [%g, %g]: %w", d, iv.Left, iv.Right, ErrBadInterval)
		}
	}
	b := &BoundingBox{intervals: make([]Interval, len(intervals))}
	copy(b.intervals, intervals)

	return b, nil
}

// Dim returns the number of dimensions.
func (b *BoundingBox) Dim() int { return len(b.intervals) }

// Interval returns the interval of dimension d.
func (b *BoundingBox) Interval(d int) Interval { return b.intervals[d] }

// Width returns the extent of dimension d.
func (b *BoundingBox) Width(d int) float64 { return b.intervals[d].Width() }

// Offset returns the left end of dimension d.
func (b *BoundingBox) Offset(d int) float64 { return b.intervals[d].Left }

// Volume returns the product of all widths.
func (b *BoundingBox) Volume() float64 {
	v := 1.0
	for _, iv := range b.intervals {
		v *= iv.Width()
	}

	return v
}

// IsUnit reports whether b is the unit cube.
func (b *BoundingBox) IsUnit() bool {
	for _, iv := range b.intervals {
		if iv.Left != 0 || iv.Right != 1 {
			return false
		}
	}

	return true
}

// ToUnit maps physical coordinates x into the unit cube, writing into y.
func (b *BoundingBox) ToUnit(x, y []float64) {
	for d, iv := range b.intervals {
		y[d] = (x[d] - iv.Left) / iv.Width()
	}
}

// FromUnit maps unit-cube coordinates y into the physical domain.
func (b *BoundingBox) FromUnit(y, x []float64) {
	for d, iv := range b.intervals {
		x[d] = iv.Left + iv.Width()*y[d]
	}
}

// String renders b as "[l0, r0] x [l1, r1] ...".
func (b *BoundingBox) String() string {
	parts := make([]string, len(b.intervals))
	for d, iv := range b.intervals {
		parts[d] = fmt.Sprintf("[%g, %g]", iv.Left, iv.Right)
	}

	return strings.Join(parts, " x ")
}
