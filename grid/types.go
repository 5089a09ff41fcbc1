package grid

import "fmt"

// Type identifies the basis family of a grid.
type Type int

const (
	// Linear is the piecewise linear hat basis without boundary points.
	Linear Type = iota
	// LinearBoundary adds the level-0 boundary anchors (trapezoid boundary).
	LinearBoundary
	// ModLinear is the linear basis with the outermost functions of each
	// level extrapolated linearly towards the boundary; no boundary points.
	ModLinear
)

var typeNames = map[Type]string{
	Linear:         "linear",
	LinearBoundary: "linearBoundary",
	ModLinear:      "modlinear",
}

// String returns the canonical name of t.
func (t Type) String() string {
	if s, ok := typeNames[t]; ok {
		return s
	}

	return fmt.Sprintf("Type(%d)", int(t))
}

// HasBoundary reports whether grids of type t store level-0 anchors.
func (t Type) HasBoundary() bool { return t == LinearBoundary }

// ParseType resolves a grid type name. "linearTrapezoidBoundary" is accepted
// as an alias of "linearBoundary".
func ParseType(name string) (Type, error) {
	switch name {
	case "linear":
		return Linear, nil
	case "linearBoundary", "linearTrapezoidBoundary":
		return LinearBoundary, nil
	case "modlinear":
		return ModLinear, nil
	}

	return 0, fmt.Errorf("ParseType(%q): %w", name, ErrUnknownType)
}
