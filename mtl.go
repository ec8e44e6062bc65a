package montrealer

import (
	"fmt"

	"github.com/qphoton/montrealer/cmatrix"
)

// Mtl computes the montrealer of a 2n×2n complex symmetric matrix
// without enumerating walks.
//
// A closed Y-alternating walk is a cyclic order of the n mode classes
// anchored at class 0 plus an entry/exit representative choice per
// class, so the sum over walks factorizes into a sum over Hamiltonian
// orderings with 2-state transfer weights. Mtl evaluates it with a
// subset-bitmask dynamic program over the classes, the Held–Karp
// recurrence shape: dp[mask][last][choice] accumulates the partial
// products of every ordering of mask ending in (last, choice).
//
// Time complexity:   O(n²·2ⁿ)
// Memory complexity: O(n·2ⁿ)
//
// Practical ceiling is n ≈ 16; past that, memory dominates. Input
// validation rejects nil, non-square, odd-dimension and asymmetric
// matrices with the cmatrix sentinels; WithoutValidation skips the
// symmetry scan, WithEpsilon adjusts its tolerance.
func Mtl(a *cmatrix.Dense, opts ...Option) (complex128, error) {
	o := gatherOptions(opts)
	if err := validateInput(a, o); err != nil {
		return 0, fmt.Errorf("montrealer.Mtl: %w", err)
	}

	return closedSum(a.Raw(), a.Rows()), nil
}

// validateInput runs the boundary checks shared by Mtl and Lmtl.
func validateInput(a *cmatrix.Dense, o options) error {
	if o.skipValidate {
		if err := cmatrix.ValidateNotNil(a); err != nil {
			return err
		}
		if err := cmatrix.ValidateSquare(a); err != nil {
			return err
		}

		return cmatrix.ValidateEvenDim(a)
	}

	return cmatrix.ValidateAdjacency(a, o.eps)
}

// closedSum is the loop-free kernel: the weighted sum over all closed
// walks of ∏ A[u][v], computed by forward DP over class subsets.
// data is the row-major backing slice of a dim×dim matrix, dim = 2n.
//
// Class r (1 ≤ r < n) occupies bit r-1; class 0 is the fixed anchor
// entering on index 0 and closing on index n. The representative choice
// c ∈ {0,1} selects entry index r (c=0) or r+n (c=1), with the exit on
// the mirror.
func closedSum(data []complex128, dim int) complex128 {
	n := dim / 2
	if n == 1 {
		// Single-pair walk (0, 1).
		return data[1]
	}

	m := n - 1
	words := 1 << m
	width := 2 * m
	f := make([][]complex128, words)
	for mask := 1; mask < words; mask++ {
		f[mask] = make([]complex128, width)
	}

	// Base: leave the anchor through index 0 into any first class.
	for r := 1; r < n; r++ {
		f[1<<(r-1)][(r-1)*2] = data[r]     // enter left copy:  A[0][r]
		f[1<<(r-1)][(r-1)*2+1] = data[r+n] // enter right copy: A[0][r+n]
	}

	// Forward relaxation: all transitions into a mask come from strictly
	// smaller masks, so ascending order finalizes each row before use.
	for mask := 1; mask < words; mask++ {
		row := f[mask]
		for r := 1; r < n; r++ {
			if mask&(1<<(r-1)) == 0 {
				continue
			}
			for c := 0; c < 2; c++ {
				v := row[(r-1)*2+c]
				if v == 0 {
					continue
				}
				out := r + n
				if c == 1 {
					out = r
				}
				base := out * dim
				for s := 1; s < n; s++ {
					if mask&(1<<(s-1)) != 0 {
						continue
					}
					next := f[mask|1<<(s-1)]
					next[(s-1)*2] += v * data[base+s]
					next[(s-1)*2+1] += v * data[base+s+n]
				}
			}
		}
	}

	// Close every full ordering back into the anchor's right copy, n.
	full := words - 1
	var total complex128
	for r := 1; r < n; r++ {
		for c := 0; c < 2; c++ {
			out := r + n
			if c == 1 {
				out = r
			}
			total += f[full][(r-1)*2+c] * data[out*dim+n]
		}
	}

	return total
}
