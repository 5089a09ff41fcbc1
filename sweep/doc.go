// Package sweep runs a dimension-local operator over every pole of a sparse
// grid.
//
// What:
//
//   - A pole is the set of grid points that agree in every dimension but one.
//     Along that dimension the pole is a binary tree (plus the two level-0
//     anchors on boundary grids).
//   - Sweep enumerates all poles for a chosen dimension by walking the trees
//     of the other dimensions, positions a navigator at the root of each pole
//     and hands it to a Func. The Func recurses down the pole on its own,
//     threading accumulators through the recursion.
//   - Sweep1D starts each pole at the level-1 root; Sweep1DBoundary starts it
//     at the left level-0 anchor (0, 0).
//
// Ordering:
//
//   - The Func decides the order inside a pole: distribute from parent to
//     children before descending (down shape) or aggregate after both child
//     subtrees returned (up shape). The sweep itself visits each pole once,
//     so one pass costs O(N) for N grid points.
//
// Concurrency:
//
//   - Sweep and every Func in this module hold no mutable state; a fresh
//     navigator is created per call. Passes over distinct dimensions writing
//     distinct result vectors can run concurrently on the same grid.
//
// Errors:
//
//   - ErrVectorSize  source or result length differs from the grid size.
//   - ErrBadDim      dimension outside [0, Dim()).
//   - any error returned by the Func aborts the pass; result is then
//     partially written.
package sweep
