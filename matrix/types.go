// SPDX-License-Identifier: MIT

// Package matrix: element constraint and the read/write matrix surface.
// Errors live in errors.go; the concrete storage lives in dense.go.
package matrix

import "golang.org/x/exp/constraints"

// Number is the element constraint for every matrix in this package.
// Integer and floating-point element types are both allowed; only the float
// types can hold non-finite values (see IsFinite).
type Number interface {
	constraints.Integer | constraints.Float
}

// Matrix is a two-dimensional mutable array of T values.
// Consumers (e.g. the hungarian solver) accept this interface and copy the
// contents into a *Dense they own.
//
// Complexity notes: all methods are expected O(1).
type Matrix[T Number] interface {
	// Rows returns the number of rows in the matrix.
	Rows() int

	// Cols returns the number of columns in the matrix.
	Cols() int

	// At retrieves the element at position (i, j).
	// Returns ErrOutOfRange if i<0, i>=Rows(), j<0 or j>=Cols().
	At(i, j int) (T, error)

	// Set assigns the value v at position (i, j).
	// Returns ErrOutOfRange if indices are invalid.
	Set(i, j int, v T) error
}
