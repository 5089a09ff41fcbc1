// Package gridpoint implements the multi-index codec of a sparse grid: the
// (level, index) arithmetic of the implicit dyadic binary tree in every
// dimension, and Point, the d-tuple of such pairs that names one grid point.
//
// What:
//
//   - Level 0 holds the two boundary points of a dimension: index 0 sits at
//     the left end, index 1 at the right end.
//   - For level ≥ 1 the index is odd and lies in [1, 2^level-1]; the point
//     sits at index·2^-level inside the dimension's extent.
//   - Children of (l, i) are (l+1, 2i-1) and (l+1, 2i+1); its parent is
//     (l-1, (i>>1)|1). The parent of every level-1 point is the right
//     boundary anchor (0, 1); level 0 has no parent.
//
// Why:
//
//   - The tree is never materialized. Navigation is pure integer arithmetic
//     and storage.Storage is the only source of truth for whether a computed
//     point exists, so refinement can never leave dangling pointers behind.
//
// Complexity:
//
//   - Every codec function: O(1) time, no allocation.
//   - Point.AppendKey: O(d), appends 8·d bytes.
//
// Errors:
//
//   - Parent on a level-0 pair and Set with an invalid pair panic: both are
//     contract violations of the caller, never runtime conditions.
package gridpoint
