// SPDX-License-Identifier: MIT
// Package cmatrix: sentinel error set.
// All public operations return these sentinels (possibly wrapped with
// operation context via fmt.Errorf("op: %w", ErrX)); callers match them
// with errors.Is. Panics are reserved for programmer errors.

package cmatrix

import "errors"

var (
	// ErrNilMatrix indicates that a nil *Dense was passed where a matrix
	// is required.
	ErrNilMatrix = errors.New("cmatrix: nil matrix")

	// ErrBadShape is returned when requested dimensions are non-positive.
	ErrBadShape = errors.New("cmatrix: dimensions must be > 0")

	// ErrRagged is returned by FromRows when input rows differ in length.
	ErrRagged = errors.New("cmatrix: ragged rows")

	// ErrOutOfRange indicates a row or column index outside valid bounds.
	// Public indexers (At/Set) return this, they never panic.
	ErrOutOfRange = errors.New("cmatrix: index out of range")

	// ErrDimensionMismatch indicates incompatible dimensions between
	// operands: elementwise ops on unequal shapes, block assemblies with
	// unaligned edges, or a vector whose length differs from the matrix
	// dimension.
	ErrDimensionMismatch = errors.New("cmatrix: dimension mismatch")

	// ErrNonSquare signals that a square matrix was required.
	ErrNonSquare = errors.New("cmatrix: matrix is not square")

	// ErrOddDimension signals that an even dimension 2n was required.
	ErrOddDimension = errors.New("cmatrix: dimension must be even")

	// ErrAsymmetry signals that a matrix expected to be symmetric
	// (A[i][j] == A[j][i], no conjugation) violated symmetry within the
	// configured epsilon.
	ErrAsymmetry = errors.New("cmatrix: matrix is not symmetric within eps")

	// ErrBadPermutation is returned when a mode relabeling is not a
	// permutation of 0..n-1.
	ErrBadPermutation = errors.New("cmatrix: not a permutation of modes")

	// ErrNilSource is returned by randomized builders when the random
	// source is nil.
	ErrNilSource = errors.New("cmatrix: nil random source")
)
