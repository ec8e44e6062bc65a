package montrealer

import (
	"fmt"

	"github.com/qphoton/montrealer/cmatrix"
)

// Lmtl computes the loop montrealer of a 2n×2n complex symmetric matrix
// with diagonal weight vector zeta, without enumerating walks.
//
// The closed-walk part equals Mtl(a). The open walks — chains through
// all n classes with a zeta-weighted self-pair at each endpoint — are
// summed by the same subset DP as Mtl, run over all n classes with zeta
// supplying the endpoint weights; each chain and its reversal carry
// equal weight on a symmetric matrix, so the directed sum is halved.
//
// A nil zeta defaults to the diagonal of a. An all-zero zeta annihilates
// every open walk, so Lmtl(a, zeros) == Mtl(a) exactly.
// Returns cmatrix.ErrDimensionMismatch when len(zeta) != 2n, plus the
// shared input validation of Mtl.
//
// Time complexity:   O(n²·2ⁿ)
// Memory complexity: O(n·2ⁿ)
func Lmtl(a *cmatrix.Dense, zeta []complex128, opts ...Option) (complex128, error) {
	o := gatherOptions(opts)
	if err := validateInput(a, o); err != nil {
		return 0, fmt.Errorf("montrealer.Lmtl: %w", err)
	}
	if zeta == nil {
		zeta = a.Diagonal()
	} else if err := cmatrix.ValidateVecLen(zeta, a.Rows()); err != nil {
		return 0, fmt.Errorf("montrealer.Lmtl: %w", err)
	}

	data := a.Raw()

	return closedSum(data, a.Rows()) + openSum(data, zeta, a.Rows()), nil
}

// openSum accumulates the open-walk contribution: over every directed
// chain ordering of the n classes, the product of endpoint zeta weights
// and transfer entries, halved to de-duplicate chain reversals.
// Class s occupies bit s; entry choice c ∈ {0,1} selects index s or
// s+n, the chain continuing from the mirror.
func openSum(data, zeta []complex128, dim int) complex128 {
	n := dim / 2
	words := 1 << n
	width := 2 * n
	f := make([][]complex128, words)
	for mask := 1; mask < words; mask++ {
		f[mask] = make([]complex128, width)
	}

	// Base: self-pair one copy of the first class, leave on its mirror.
	for s := 0; s < n; s++ {
		f[1<<s][s*2] = zeta[s]
		f[1<<s][s*2+1] = zeta[s+n]
	}

	for mask := 1; mask < words; mask++ {
		row := f[mask]
		for r := 0; r < n; r++ {
			if mask&(1<<r) == 0 {
				continue
			}
			for c := 0; c < 2; c++ {
				v := row[r*2+c]
				if v == 0 {
					continue
				}
				out := r + n
				if c == 1 {
					out = r
				}
				base := out * dim
				for s := 0; s < n; s++ {
					if mask&(1<<s) != 0 {
						continue
					}
					next := f[mask|1<<s]
					next[s*2] += v * data[base+s]
					next[s*2+1] += v * data[base+s+n]
				}
			}
		}
	}

	// Terminate every full chain on the self-pair of its final exit.
	full := words - 1
	var total complex128
	for r := 0; r < n; r++ {
		for c := 0; c < 2; c++ {
			out := r + n
			if c == 1 {
				out = r
			}
			total += f[full][r*2+c] * zeta[out]
		}
	}

	return total / 2
}
