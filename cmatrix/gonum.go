// SPDX-License-Identifier: MIT
// Package cmatrix: gonum interop.
// Callers already living in gonum's mat world can hand any mat.CMatrix
// to the evaluators through FromCMatrix, and export results back with
// ToCDense. The bridge copies; the two representations never alias.

package cmatrix

import (
	"fmt"

	"gonum.org/v1/gonum/mat"
)

// FromCMatrix copies a gonum complex matrix into a Dense.
// Returns ErrNilMatrix for a nil input and ErrBadShape for an empty one.
func FromCMatrix(a mat.CMatrix) (*Dense, error) {
	if a == nil {
		return nil, fmt.Errorf("FromCMatrix: %w", ErrNilMatrix)
	}
	r, c := a.Dims()
	if r == 0 || c == 0 {
		return nil, fmt.Errorf("FromCMatrix: %w", ErrBadShape)
	}
	m := &Dense{r: r, c: c, data: make([]complex128, r*c)}
	for i := 0; i < r; i++ {
		for j := 0; j < c; j++ {
			m.data[i*c+j] = a.At(i, j)
		}
	}

	return m, nil
}

// ToCDense copies m into a freshly allocated gonum mat.CDense.
func ToCDense(m *Dense) (*mat.CDense, error) {
	if err := ValidateNotNil(m); err != nil {
		return nil, fmt.Errorf("ToCDense: %w", err)
	}
	cp := make([]complex128, len(m.data))
	copy(cp, m.data)

	return mat.NewCDense(m.r, m.c, cp), nil
}
