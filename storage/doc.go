// Package storage holds the grid points of a sparse grid: a hash map from the
// full multi-index of a point to a dense sequence number, and the reverse
// array from sequence number back to the point.
//
// What:
//
//   - Insert is idempotent and assigns the next free sequence number.
//   - Find is an O(1) amortized lookup; absence is a normal outcome and is how
//     the navigator detects leaves.
//   - Point is the O(1) reverse lookup used to index coefficient vectors.
//   - Delete removes points and renumbers the survivors densely, keeping
//     their relative order.
//
// Why:
//
//   - Storage is the single source of truth for "does this computed point
//     exist". No parent/child pointers are cached, so refinement and
//     coarsening never invalidate anything but sequence numbers.
//
// Concurrency:
//
//   - All methods are safe for concurrent use. A grid is read-only while an
//     operator sweeps it; mutation happens between operator applications.
//
// Complexity:
//
//   - Insert, Find, Point: O(d) for hashing the key.
//   - Delete: O(N·d).
//
// Errors:
//
//   - ErrBadDimension       dimension of a new storage is not positive.
//   - ErrDimensionMismatch  inserted point has another dimension.
//   - ErrInvalidPoint       inserted point holds an illegal (level, index) pair.
//   - ErrOutOfRange         Delete got a sequence number outside [0, Size()).
package storage
