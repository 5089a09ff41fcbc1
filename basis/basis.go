// Package basis evaluates and integrates the one-dimensional reference
// functions of the supported grid types on the unit interval.
package basis

import (
	"math"

	"github.com/katalvlaran/sparsegrid/gridpoint"
)

// Basis is a family of one-dimensional functions indexed by (level, index).
type Basis interface {
	// Eval returns φ_{l,i}(x) for x in [0, 1].
	Eval(l gridpoint.Level, i gridpoint.Index, x float64) float64
	// Integral returns ∫_0^1 φ_{l,i}(x) dx.
	Integral(l gridpoint.Level, i gridpoint.Index) float64
}

// Linear is the hat basis φ_{l,i}(x) = max(0, 1-|2^l·x-i|). On level 0 the
// anchors are 1-x (index 0) and x (index 1).
type Linear struct{}

// Eval implements Basis.
func (Linear) Eval(l gridpoint.Level, i gridpoint.Index, x float64) float64 {
	if l == 0 {
		if i == 0 {
			return 1 - x
		}
		return x
	}

	return math.Max(0, 1-math.Abs(math.Ldexp(x, int(l))-float64(i)))
}

// Integral implements Basis.
func (Linear) Integral(l gridpoint.Level, _ gridpoint.Index) float64 {
	if l == 0 {
		return 0.5
	}

	return math.Ldexp(1, -int(l))
}

// ModLinear is the hat basis with the outermost function of each level
// extrapolated linearly to the boundary: φ_{1,1} = 1, the leftmost function
// of level l >= 2 is max(0, 2-2^l·x) and the rightmost max(0, 2^l·x-i+1).
type ModLinear struct{}

// Eval implements Basis.
func (ModLinear) Eval(l gridpoint.Level, i gridpoint.Index, x float64) float64 {
	if l == 1 {
		return 1
	}
	s := math.Ldexp(x, int(l))
	switch {
	case i == 1:
		return math.Max(0, 2-s)
	case gridpoint.IsRightBoundary(l, i):
		return math.Max(0, s-float64(i)+1)
	}

	return math.Max(0, 1-math.Abs(s-float64(i)))
}

// Integral implements Basis.
func (ModLinear) Integral(l gridpoint.Level, i gridpoint.Index) float64 {
	if l == 1 {
		return 1
	}
	if i == 1 || gridpoint.IsRightBoundary(l, i) {
		return math.Ldexp(1, 1-int(l))
	}

	return math.Ldexp(1, -int(l))
}
