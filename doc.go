// Package sparsegrid is a toolkit for functions represented on sparse grids:
// multi-resolution, hierarchical piecewise linear bases on a box, used for
// interpolation, quadrature and matrix-free application of differential
// operators.
//
// 🚀 What is sparsegrid?
//
//	A small, allocation-conscious library that brings together:
//		• Codec: the implicit dyadic tree of (level, index) pairs per dimension
//		• Storage: a hash-indexed point store with dense sequence numbers
//		• Navigator: a cursor moving through the tree of any dimension
//		• Sweep: one dimension-wise pass of a local functor over every pole
//		• Composer: transforms and the up/down recursion for bilinear forms
//		• Operations: hierarchisation, mass, Laplace, x-weighted mass,
//		  evaluation and quadrature for linear, linearBoundary and modlinear grids
//
// ✨ Why choose sparsegrid?
//
//   - No matrices: operators apply in O(grid size · d) per Mult
//   - Deterministic: parallel operator terms merge in a fixed order
//   - Observable: logr logging and go-metrics timers on every operation
//
// Under the hood, everything is organized in subpackages:
//
//	gridpoint/  (level, index) codec and the Point tuple
//	storage/    point ↔ sequence number store
//	navigator/  tree moves over a Storage
//	sweep/      the single recursion pattern every functor runs in
//	unidir/     per-dimension pass composition (transform, up/down, one-op-dim)
//	grid/       grid types, bounding box, regular generation and refinement
//	basis/      1D basis evaluation and integrals
//	operation/  concrete operations and the grid-type factories
//	matrix/     dense matrices for assembled operators
//
// Quick example:
//
//	g, _ := grid.New(grid.LinearBoundary, 2)
//	_ = g.Regular(4)
//	h, _ := operation.NewHierarchisation(g)
//	_ = h.Hierarchise(values) // nodal values → surpluses, in place
//
// See the package docs of operation for options and errors.
package sparsegrid
