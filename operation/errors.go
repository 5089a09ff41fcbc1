package operation

import "errors"

var (
	// ErrUnsupportedGridType is returned by factories for grid types without
	// an implementation of the requested operation.
	ErrUnsupportedGridType = errors.New("operation: unsupported grid type")

	// ErrBoundaryNotImplemented signals a boundary condition combination that
	// has no numerical treatment yet (non-Dirichlet ends of the x-weighted mass).
	ErrBoundaryNotImplemented = errors.New("operation: not yet implemented for non-Dirichlet boundaries")

	// ErrVectorSize indicates a coefficient vector whose length is not the grid size.
	ErrVectorSize = errors.New("operation: vector length does not match grid size")

	// ErrOutOfDomain indicates an evaluation point outside the bounding box.
	ErrOutOfDomain = errors.New("operation: point outside the domain")

	// ErrNilGrid indicates a nil grid passed to a factory.
	ErrNilGrid = errors.New("operation: grid is nil")
)
