// Package unidir composes one-dimensional sweep passes into d-dimensional
// operators without assembling a matrix (the unidirectional principle).
//
// What:
//
//   - Transform applies one pass per dimension, in place, each pass feeding
//     the next. Hierarchisation and dehierarchisation are transforms.
//   - UpDown applies a fully separable bilinear form. For dimension d it sums
//     two branches: an up pass in d followed by the recursion over d-1, and
//     the recursion over d-1 followed by a down pass in d. At d = 0 both
//     passes run on the input and are summed. Up passes run first, which is
//     exact on downward-closed grids.
//   - OneOpDim is the same recursion with a special up/down pair in one
//     operator dimension, summed over all operator dimensions with optional
//     coefficients. Laplace-type operators have this shape.
//
// Complexity:
//
//   - Transform: d passes, O(d·N).
//   - UpDown: 2^d passes of O(N) each, plus O(d·N) temporary memory.
//   - OneOpDim: d times UpDown; terms may run as parallel tasks.
//
// Errors:
//
//   - ErrBadOrder  Transform order is not a permutation of the dimensions.
//   - ErrBadCoefs  coefficient count differs from the dimension count.
//   - any pass error aborts the composed application.
package unidir

import "errors"

var (
	// ErrBadOrder indicates a dimension order that is not a permutation of [0, dim).
	ErrBadOrder = errors.New("unidir: dimension order is not a permutation")

	// ErrBadCoefs indicates a coefficient vector whose length is not the dimension count.
	ErrBadCoefs = errors.New("unidir: coefficient count does not match dimension")

	// ErrVectorSize indicates alpha and result of different lengths.
	ErrVectorSize = errors.New("unidir: alpha and result differ in length")
)

// Pass is one dimension-local operator application, typically a method
// value such as (*sweep.Sweep).Sweep1D.
type Pass func(source, result []float64, dim int) error
