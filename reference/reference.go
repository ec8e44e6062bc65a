package reference

import (
	"fmt"
	"iter"

	"github.com/qphoton/montrealer/cmatrix"
	"github.com/qphoton/montrealer/walks"
)

// Mtl computes the montrealer of a 2n×2n complex symmetric matrix by
// summing ∏ A[u][v] over every closed walk from walks.RPMP.
// Validation mirrors the fast evaluator: non-nil, square, even
// dimension, symmetric within cmatrix.DefaultEpsilon.
func Mtl(a *cmatrix.Dense) (complex128, error) {
	if err := cmatrix.ValidateAdjacency(a, cmatrix.DefaultEpsilon); err != nil {
		return 0, fmt.Errorf("reference.Mtl: %w", err)
	}
	seq, err := walks.RPMP(a.Rows())
	if err != nil {
		return 0, fmt.Errorf("reference.Mtl: %w", err)
	}

	return accumulate(seq, a.Raw(), a.Rows(), nil), nil
}

// Lmtl computes the loop montrealer by summing over walks.RSPM, with
// self-pairs (i, i) weighted by zeta[i] and chain pairs by A[u][v].
// A nil zeta defaults to the diagonal of A; an all-zero zeta annihilates
// every open walk, reducing Lmtl exactly to Mtl.
// Returns cmatrix.ErrDimensionMismatch when len(zeta) differs from 2n.
func Lmtl(a *cmatrix.Dense, zeta []complex128) (complex128, error) {
	if err := cmatrix.ValidateAdjacency(a, cmatrix.DefaultEpsilon); err != nil {
		return 0, fmt.Errorf("reference.Lmtl: %w", err)
	}
	if zeta == nil {
		zeta = a.Diagonal()
	} else if err := cmatrix.ValidateVecLen(zeta, a.Rows()); err != nil {
		return 0, fmt.Errorf("reference.Lmtl: %w", err)
	}
	seq, err := walks.RSPM(a.Rows())
	if err != nil {
		return 0, fmt.Errorf("reference.Lmtl: %w", err)
	}

	return accumulate(seq, a.Raw(), a.Rows(), zeta), nil
}

// accumulate sums the product weight of every walk in seq. zeta supplies
// self-pair weights; it is nil for the loop-free family.
func accumulate(seq iter.Seq[walks.Walk], data []complex128, dim int, zeta []complex128) complex128 {
	var sum complex128
	for w := range seq {
		term := complex128(1)
		for _, p := range w {
			if p.IsLoop() {
				term *= zeta[p.U]
			} else {
				term *= data[p.U*dim+p.V]
			}
		}
		sum += term
	}

	return sum
}
