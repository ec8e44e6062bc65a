// Package montrealer computes the montrealer and loop montrealer of
// complex symmetric adjacency matrices, the combinatorial quantities that
// govern photon-number cumulants in Gaussian boson sampling.
//
// The montrealer of a 2n×2n symmetric matrix A sums the weight
// ∏ A[u][v] over every Y-alternating closed walk without loops: a perfect
// matching of the 2n mode indices that chains through all n mode classes
// and closes back on itself, never pairing a mode with its own mirror
// (index i and i+n refer to the same class). The loop montrealer relaxes
// the family to walks carrying a self-pair at each endpoint, weighted by
// a diagonal vector zeta.
//
// Package layout:
//
//	montrealer  — Mtl and Lmtl, fast evaluators via a subset-bitmask
//	              dynamic program over mode classes: O(n²·2ⁿ) time,
//	              O(n·2ⁿ) memory, no walk enumeration.
//	cmatrix/    — dense complex matrices, validators, fixture builders,
//	              and a gonum mat.CDense bridge.
//	walks/      — lazy enumerators of the walk families (RPMP, RSPM),
//	              structural validation and closed-form counts.
//	reference/  — brute-force evaluators summing over the enumerated
//	              walks; ground truth for cross-checks, never for
//	              production-scale inputs.
//
// All operations are pure, synchronous and deterministic: the same input
// always produces the same scalar. Walk counts grow as a double
// factorial, so the enumerating reference path is practical only for
// small n (n ≲ 8); the fast evaluators remain usable up to n ≈ 16,
// mirroring the usual bitmask-DP budget.
//
// Closed-form identities, useful as sanity oracles:
//
//	Mtl(ones(2n))          == (2n-2)!!
//	Lmtl(ones(2n), ones)   == (n+1)·(2n-2)!!
//	Mtl(block-diagonal A)  == 0
//	Mtl(D·A·Dᵀ)            == Mtl(A)·∏|γ_k|²   for D = diag(γ, conj(γ))
package montrealer
