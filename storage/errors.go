package storage

import "errors"

var (
	// ErrBadDimension is returned by New for a non-positive dimension.
	ErrBadDimension = errors.New("storage: dimension must be > 0")

	// ErrDimensionMismatch indicates a point whose dimension differs from the storage's.
	ErrDimensionMismatch = errors.New("storage: dimension mismatch")

	// ErrInvalidPoint indicates an illegal (level, index) pair in some dimension.
	ErrInvalidPoint = errors.New("storage: invalid grid point")

	// ErrOutOfRange indicates a sequence number outside [0, Size()).
	ErrOutOfRange = errors.New("storage: sequence number out of range")
)
