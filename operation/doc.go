// Package operation implements the concrete sparse grid operations on top of
// the sweep engine: hierarchisation, matrix-free bilinear forms, evaluation
// and quadrature, dispatched on the grid type.
//
// What:
//
//   - Hierarchisation: in-place nodal ↔ hierarchical transforms for linear,
//     linearBoundary and modlinear grids (one sweep per dimension), and a
//     stencil variant that records the transform as (surplus, neighbor,
//     weight) triples and replays it.
//   - Operator: matrix-free Mult for the L2 mass matrix, the Laplacian and
//     the x-weighted mass Σ_k c_k ∫ x_k φ_i φ_j, composed with the
//     unidirectional principle from dimension-local up/down functors.
//   - Eval, Quadrature and QuadratureMC on hierarchical surpluses.
//   - Assemble materializes any Operator into a matrix.Dense.
//
// Why:
//
//   - A grid type tag is resolved once, in the factory functions. Sweeps and
//     composers stay generic over the local functor.
//
// Options:
//
//   - WithLogger(logger)          logr sink (default: discard); V(1) construction, V(4) per call.
//   - WithMetrics(registry)       go-metrics registry for call timers (default: metrics.DefaultRegistry).
//   - WithDimensionOrder(order)   order of hierarchisation passes (default: 0..d-1).
//   - WithCoefficients(c)         per-dimension weights of Laplace and x-weighted terms.
//   - WithParallelism(n)          concurrent operator-dimension terms (default: 1).
//   - WithSamples(n), WithSeed(s) Monte Carlo quadrature controls.
//
// Errors:
//
//   - ErrUnsupportedGridType      no implementation for the grid type (construction time).
//   - ErrBoundaryNotImplemented   boundary condition combination without an implementation.
//   - ErrVectorSize               coefficient vector length differs from the grid size.
//   - ErrOutOfDomain              evaluation point outside the bounding box.
//   - ErrNilGrid                  nil grid passed to a factory.
package operation
