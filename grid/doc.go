// Package grid ties a Storage to its basis type and physical domain, and
// generates and refines the point sets operators run on.
//
// What:
//
//   - Type names the basis family of a grid ("linear", "linearBoundary",
//     "modlinear"). Boundary types carry level-0 anchor points.
//   - BoundingBox maps the unit cube onto the physical domain, one Interval
//     per dimension, and records Dirichlet flags per interval end.
//   - Regular fills a grid with the regular sparse grid of a level; Refine
//     adds the children of selected points and every missing ancestor so the
//     grid stays downward closed.
//
// Options:
//
//   - WithBoundingBox(box)   physical domain (default: unit cube, no Dirichlet ends).
//   - WithLogger(logger)     logr sink for generation and refinement (default: discard).
//
// Errors:
//
//   - ErrUnknownType      unknown grid type name.
//   - ErrBadDimension     non-positive dimension or a box of another dimension.
//   - ErrBadInterval      interval with Right <= Left or a non-finite end.
//   - ErrBadLevel         regular level outside [1, gridpoint.MaxLevel].
//   - ErrVectorSize       surplus vector length differs from the grid size.
package grid

import "errors"

var (
	// ErrUnknownType indicates an unrecognized grid type name.
	ErrUnknownType = errors.New("grid: unknown grid type")

	// ErrBadDimension indicates a non-positive or mismatching dimension.
	ErrBadDimension = errors.New("grid: bad dimension")

	// ErrBadInterval indicates an empty or non-finite bounding box interval.
	ErrBadInterval = errors.New("grid: bad bounding box interval")

	// ErrBadLevel indicates a regular grid level out of range.
	ErrBadLevel = errors.New("grid: bad level")

	// ErrVectorSize indicates a coefficient vector that does not match the grid size.
	ErrVectorSize = errors.New("grid: vector length does not match grid size")
)
