package gridpoint

import (
	"encoding/binary"
	"fmt"
	"strings"
)

// Point is one sparse grid point: a (level, index) pair per dimension.
// The zero Point has dimension 0; use New to create one.
type Point struct {
	levels  []Level
	indices []Index
}

// New returns a d-dimensional point with every dimension at the level-1
// root (1, 1).
func New(dim int) Point {
	p := Point{levels: make([]Level, dim), indices: make([]Index, dim)}
	for d := 0; d < dim; d++ {
		p.levels[d], p.indices[d] = 1, 1
	}

	return p
}

// NewFrom builds a point from parallel level and index slices.
// Panics if the lengths differ or any pair is invalid.
func NewFrom(levels []Level, indices []Index) Point {
	if len(levels) != len(indices) {
		panic("gridpoint: NewFrom: levels and indices differ in length")
	}
	p := Point{levels: make([]Level, len(levels)), indices: make([]Index, len(indices))}
	for d := range levels {
		p.Set(d, levels[d], indices[d])
	}

	return p
}

// Dim returns the number of dimensions.
func (p Point) Dim() int { return len(p.levels) }

// Get returns the (level, index) pair of dimension d.
func (p Point) Get(d int) (Level, Index) { return p.levels[d], p.indices[d] }

// Level returns the level of dimension d.
func (p Point) Level(d int) Level { return p.levels[d] }

// Index returns the index of dimension d.
func (p Point) Index(d int) Index { return p.indices[d] }

// Set overwrites dimension d. Panics on an invalid pair.
func (p Point) Set(d int, l Level, i Index) {
	mustValid(l, i)
	p.levels[d], p.indices[d] = l, i
}

// Put overwrites dimension d without validation. Cursors use it: a step
// past the last sibling yields a pair that simply is not in any storage.
func (p Point) Put(d int, l Level, i Index) {
	p.levels[d], p.indices[d] = l, i
}

// Clone returns a deep copy of p.
func (p Point) Clone() Point {
	c := Point{levels: make([]Level, len(p.levels)), indices: make([]Index, len(p.indices))}
	copy(c.levels, p.levels)
	copy(c.indices, p.indices)

	return c
}

// CopyFrom overwrites p with q. Both must have the same dimension.
func (p Point) CopyFrom(q Point) {
	copy(p.levels, q.levels)
	copy(p.indices, q.indices)
}

// Equal reports whether p and q name the same grid point.
func (p Point) Equal(q Point) bool {
	if len(p.levels) != len(q.levels) {
		return false
	}
	for d := range p.levels {
		if p.levels[d] != q.levels[d] || p.indices[d] != q.indices[d] {
			return false
		}
	}

	return true
}

// IsBoundary reports whether dimension d sits on a level-0 anchor.
func (p Point) IsBoundary(d int) bool { return p.levels[d] == 0 }

// IsInner reports whether no dimension sits on the domain boundary.
func (p Point) IsInner() bool {
	for d := range p.levels {
		if p.levels[d] == 0 {
			return false
		}
	}

	return true
}

// LevelSum returns |l|_1, the sum of levels over all dimensions.
func (p Point) LevelSum() int {
	s := 0
	for _, l := range p.levels {
		s += int(l)
	}

	return s
}

// MaxLevel returns the largest level over all dimensions.
func (p Point) MaxLevel() Level {
	var m Level
	for _, l := range p.levels {
		if l > m {
			m = l
		}
	}

	return m
}

// Coordinate returns the unit-cube position of dimension d.
func (p Point) Coordinate(d int) float64 {
	return Coordinate(p.levels[d], p.indices[d])
}

// Coordinates returns the unit-cube position of p.
func (p Point) Coordinates() []float64 {
	x := make([]float64, len(p.levels))
	for d := range x {
		x[d] = p.Coordinate(d)
	}

	return x
}

// AppendKey appends the hash key of p to dst and returns the extended
// slice. The key covers every dimension: changing any single pair yields
// a different key.
func (p Point) AppendKey(dst []byte) []byte {
	for d := range p.levels {
		dst = binary.LittleEndian.AppendUint32(dst, p.levels[d])
		dst = binary.LittleEndian.AppendUint32(dst, p.indices[d])
	}

	return dst
}

// Key returns the hash key of p as a string.
func (p Point) Key() string {
	return string(p.AppendKey(make([]byte, 0, 8*len(p.levels))))
}

// String renders p as "[(l0,i0) (l1,i1) ...]".
func (p Point) String() string {
	var sb strings.Builder
	sb.WriteByte('[')
	for d := range p.levels {
		if d > 0 {
			sb.WriteByte(' ')
		}
		fmt.Fprintf(&sb, "(%d,%d)", p.levels[d], p.indices[d])
	}
	sb.WriteByte(']')

	return sb.String()
}
