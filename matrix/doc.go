// SPDX-License-Identifier: MIT

// Package matrix provides the small dense linear algebra surface used to
// materialize and inspect sparse grid operators.
//
// What:
//
//   - Dense: row-major float64 matrix with safe accessors (At/Set return
//     errors instead of panicking).
//   - MatVec, Transpose, MaxAbsDiff and a symmetry check for comparing an
//     assembled operator against a reference.
//   - Validators: ValidateNotNil, ValidateSquare, ValidateSameShape,
//     ValidateVecLen, ValidateSymmetric.
//
// Why:
//
//   - Operators in this module are matrix-free. A dense view is needed only
//     for diagnostics and tests (operation.Assemble), so this package stays
//     deliberately small.
//
// Complexity:
//
//   - NewDense: O(r·c); At/Set: O(1); MatVec: O(r·c); ValidateSymmetric: O(n²).
//
// Errors:
//
//   - ErrInvalidDimensions  non-positive shape.
//   - ErrOutOfRange         index outside the matrix.
//   - ErrDimensionMismatch  incompatible shapes or vector length.
//   - ErrNilMatrix          nil matrix or vector argument.
//   - ErrAsymmetry          matrix not symmetric within eps.
//   - ErrNaNInf             non-finite value passed to Set.
package matrix
