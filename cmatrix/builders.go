// SPDX-License-Identifier: MIT
// Package cmatrix: deterministic matrix builders.
// These produce the structured and randomized matrices the montrealer
// identities are exercised on: all-ones blocks, Haar-style random
// unitaries, Hermitized/symmetrized blocks, full adjacency assemblies,
// diagonal congruences and mode relabelings. Randomized builders take an
// explicit source so fixtures replay exactly from a seed.

package cmatrix

import (
	"fmt"
	"math"
	"math/cmplx"
	"math/rand/v2"

	exprand "golang.org/x/exp/rand"
	"gonum.org/v1/gonum/cmplxs"
	"gonum.org/v1/gonum/stat/distuv"
)

// Ones returns an n×n matrix with every entry equal to 1.
func Ones(n int) (*Dense, error) {
	m, err := NewDense(n, n)
	if err != nil {
		return nil, fmt.Errorf("Ones: %w", err)
	}
	for i := range m.data {
		m.data[i] = 1
	}

	return m, nil
}

// Zeros returns an n×n matrix of zeros.
func Zeros(n int) (*Dense, error) {
	m, err := NewDense(n, n)
	if err != nil {
		return nil, fmt.Errorf("Zeros: %w", err)
	}

	return m, nil
}

// AssembleBlocks builds the 2×2 block matrix
//
//	[ tl  tr ]
//	[ bl  br ]
//
// from four dense blocks. Block edges must align: tl/tr and bl/br share
// row counts, tl/bl and tr/br share column counts.
// Returns ErrDimensionMismatch otherwise.
func AssembleBlocks(tl, tr, bl, br *Dense) (*Dense, error) {
	for _, b := range []*Dense{tl, tr, bl, br} {
		if err := ValidateNotNil(b); err != nil {
			return nil, fmt.Errorf("AssembleBlocks: %w", err)
		}
	}
	if tl.r != tr.r || bl.r != br.r || tl.c != bl.c || tr.c != br.c {
		return nil, fmt.Errorf("AssembleBlocks: %w", ErrDimensionMismatch)
	}

	rows, cols := tl.r+bl.r, tl.c+tr.c
	m := &Dense{r: rows, c: cols, data: make([]complex128, rows*cols)}
	for i := 0; i < tl.r; i++ {
		copy(m.data[i*cols:], tl.data[i*tl.c:(i+1)*tl.c])
		copy(m.data[i*cols+tl.c:], tr.data[i*tr.c:(i+1)*tr.c])
	}
	for i := 0; i < bl.r; i++ {
		row := (tl.r + i) * cols
		copy(m.data[row:], bl.data[i*bl.c:(i+1)*bl.c])
		copy(m.data[row+bl.c:], br.data[i*br.c:(i+1)*br.c])
	}

	return m, nil
}

// Hermitize returns u + u† — a Hermitian matrix for any square u.
func Hermitize(u *Dense) (*Dense, error) {
	if err := ValidateNotNil(u); err != nil {
		return nil, fmt.Errorf("Hermitize: %w", err)
	}
	if err := ValidateSquare(u); err != nil {
		return nil, fmt.Errorf("Hermitize: %w", err)
	}

	return u.Add(u.ConjTranspose())
}

// Symmetrize returns u + uᵀ — a complex symmetric matrix for any square u.
func Symmetrize(u *Dense) (*Dense, error) {
	if err := ValidateNotNil(u); err != nil {
		return nil, fmt.Errorf("Symmetrize: %w", err)
	}
	if err := ValidateSquare(u); err != nil {
		return nil, fmt.Errorf("Symmetrize: %w", err)
	}

	return u.Add(u.Transpose())
}

// ScaleCongruence applies the diagonal congruence D·A·Dᵀ with
// D = diag(d): out[i][j] = d[i]·d[j]·a[i][j]. The montrealer of a
// congruence-scaled adjacency with d = (γ, conj(γ)) equals the original
// montrealer times ∏|γ_k|².
// Returns ErrDimensionMismatch when len(d) differs from the dimension.
func ScaleCongruence(a *Dense, d []complex128) (*Dense, error) {
	if err := ValidateNotNil(a); err != nil {
		return nil, fmt.Errorf("ScaleCongruence: %w", err)
	}
	if err := ValidateSquare(a); err != nil {
		return nil, fmt.Errorf("ScaleCongruence: %w", err)
	}
	if err := ValidateVecLen(d, a.r); err != nil {
		return nil, fmt.Errorf("ScaleCongruence: %w", err)
	}

	out := a.Clone()
	for i := 0; i < a.r; i++ {
		for j := 0; j < a.c; j++ {
			out.data[i*a.c+j] *= d[i] * d[j]
		}
	}

	return out, nil
}

// PermuteModes relabels the n mode classes of a 2n×2n adjacency by perm,
// moving entry (i, j) to (p(i), p(j)) where p acts identically on the
// left half 0..n-1 and the right half n..2n-1. The montrealer is
// invariant under this relabeling.
// Returns ErrBadPermutation when perm is not a permutation of 0..n-1.
func PermuteModes(a *Dense, perm []int) (*Dense, error) {
	if err := ValidateNotNil(a); err != nil {
		return nil, fmt.Errorf("PermuteModes: %w", err)
	}
	if err := ValidateSquare(a); err != nil {
		return nil, fmt.Errorf("PermuteModes: %w", err)
	}
	if err := ValidateEvenDim(a); err != nil {
		return nil, fmt.Errorf("PermuteModes: %w", err)
	}
	n := a.r / 2
	if len(perm) != n {
		return nil, fmt.Errorf("PermuteModes: %w", ErrBadPermutation)
	}
	seen := make([]bool, n)
	for _, p := range perm {
		if p < 0 || p >= n || seen[p] {
			return nil, fmt.Errorf("PermuteModes: %w", ErrBadPermutation)
		}
		seen[p] = true
	}

	// full index map over both halves
	full := make([]int, 2*n)
	for k, p := range perm {
		full[k] = p
		full[k+n] = p + n
	}

	out := &Dense{r: a.r, c: a.c, data: make([]complex128, len(a.data))}
	for i := 0; i < a.r; i++ {
		for j := 0; j < a.c; j++ {
			out.data[full[i]*a.c+full[j]] = a.data[i*a.c+j]
		}
	}

	return out, nil
}

// RandomUnitary samples an n×n unitary by orthonormalizing the rows of a
// complex Gaussian (Ginibre) matrix with modified Gram–Schmidt; for a
// Gaussian start this yields a Haar-style unitary. Sampling is fully
// determined by src.
func RandomUnitary(n int, src rand.Source) (*Dense, error) {
	if n <= 0 {
		return nil, fmt.Errorf("RandomUnitary: %w", ErrBadShape)
	}
	if src == nil {
		return nil, fmt.Errorf("RandomUnitary: %w", ErrNilSource)
	}

	// distuv draws from an x/exp/rand source; seed one from src so the
	// samples stay fully determined by the caller's seed.
	normal := distuv.Normal{Mu: 0, Sigma: 1, Src: exprand.NewSource(src.Uint64())}
	m := &Dense{r: n, c: n, data: make([]complex128, n*n)}
	for i := range m.data {
		m.data[i] = complex(normal.Rand(), normal.Rand())
	}

	// Modified Gram–Schmidt over rows (rows are contiguous in storage).
	for j := 0; j < n; j++ {
		rowJ := m.data[j*n : (j+1)*n]
		for k := 0; k < j; k++ {
			rowK := m.data[k*n : (k+1)*n]
			cmplxs.AddScaled(rowJ, -cdot(rowK, rowJ), rowK)
		}
		norm := math.Sqrt(real(cdot(rowJ, rowJ)))
		// A Gaussian row is dependent on its predecessors with
		// probability zero; a zero norm means a broken source.
		if norm == 0 {
			return nil, fmt.Errorf("RandomUnitary: %w", ErrNilSource)
		}
		cmplxs.Scale(complex(1/norm, 0), rowJ)
	}

	return m, nil
}

// cdot is the conjugated inner product ⟨a, b⟩ = Σ conj(a_i)·b_i.
func cdot(a, b []complex128) complex128 {
	var s complex128
	for i := range a {
		s += cmplx.Conj(a[i]) * b[i]
	}

	return s
}

// RandomAdjacency samples the 2n×2n complex symmetric adjacency of a
// pure Gaussian state in block form
//
//	[ conj(um)  un  ]
//	[ unᵀ       um  ]
//
// where un = u + u† (Hermitian) and um = v + vᵀ (symmetric) for
// independent random unitaries u, v. The result is symmetric by
// construction and is the canonical randomized input for
// fast-vs-reference agreement checks.
func RandomAdjacency(n int, src rand.Source) (*Dense, error) {
	u, err := RandomUnitary(n, src)
	if err != nil {
		return nil, fmt.Errorf("RandomAdjacency: %w", err)
	}
	v, err := RandomUnitary(n, src)
	if err != nil {
		return nil, fmt.Errorf("RandomAdjacency: %w", err)
	}
	un, err := Hermitize(u)
	if err != nil {
		return nil, fmt.Errorf("RandomAdjacency: %w", err)
	}
	um, err := Symmetrize(v)
	if err != nil {
		return nil, fmt.Errorf("RandomAdjacency: %w", err)
	}

	return AssembleBlocks(um.Conj(), un, un.Transpose(), um)
}
