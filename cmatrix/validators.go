// SPDX-License-Identifier: MIT
// Package cmatrix: canonical validation checks.
// Evaluator entry points delegate every shape/nil/symmetry guard here so
// that call sites stay minimal and error behavior stays uniform. All
// checks are pure and deterministic; each returns a plain sentinel
// (wrapped with a validator tag) that callers match via errors.Is.

package cmatrix

import (
	"fmt"
	"math/cmplx"
)

// DefaultEpsilon is the non-negative tolerance used by symmetry checks
// when the caller does not override it.
const DefaultEpsilon = 1e-9

// validatorErrorf tags a sentinel with the validator that raised it.
func validatorErrorf(tag string, err error) error {
	return fmt.Errorf("%s: %w", tag, err)
}

// ValidateNotNil ensures the matrix reference is non-nil.
func ValidateNotNil(m *Dense) error {
	if m == nil {
		return validatorErrorf("ValidateNotNil", ErrNilMatrix)
	}

	return nil
}

// ValidateSquare checks that m is square. Assumes m is non-nil.
func ValidateSquare(m *Dense) error {
	if m.r != m.c {
		return validatorErrorf("ValidateSquare", ErrNonSquare)
	}

	return nil
}

// ValidateEvenDim checks that a square matrix has even dimension 2n.
// Assumes m is non-nil and square.
func ValidateEvenDim(m *Dense) error {
	if m.r%2 != 0 {
		return validatorErrorf("ValidateEvenDim", ErrOddDimension)
	}

	return nil
}

// ValidateSymmetric checks A[i][j] == A[j][i] (plain symmetry, no
// conjugation) within eps on the upper triangle. A negative eps falls
// back to DefaultEpsilon. Assumes m is non-nil and square.
// Complexity: O(n²).
func ValidateSymmetric(m *Dense, eps float64) error {
	if eps < 0 {
		eps = DefaultEpsilon
	}
	for i := 0; i < m.r; i++ {
		for j := i + 1; j < m.c; j++ {
			if cmplx.Abs(m.data[i*m.c+j]-m.data[j*m.c+i]) > eps {
				return validatorErrorf("ValidateSymmetric", ErrAsymmetry)
			}
		}
	}

	return nil
}

// ValidateVecLen checks that v has exactly want elements.
// Used for diagonal weight vectors accompanying a 2n×2n matrix.
func ValidateVecLen(v []complex128, want int) error {
	if len(v) != want {
		return validatorErrorf("ValidateVecLen", ErrDimensionMismatch)
	}

	return nil
}

// ValidateAdjacency runs the full evaluator-facing chain:
// non-nil → square → even dimension → symmetric within eps.
func ValidateAdjacency(m *Dense, eps float64) error {
	if err := ValidateNotNil(m); err != nil {
		return err
	}
	if err := ValidateSquare(m); err != nil {
		return err
	}
	if err := ValidateEvenDim(m); err != nil {
		return err
	}

	return ValidateSymmetric(m, eps)
}
