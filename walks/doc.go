// Package walks enumerates the restricted perfect-matching families the
// montrealer is defined over.
//
// Mode indices 0..2n-1 split into a left half 0..n-1 and a right half
// n..2n-1; index i and its mirror i+n label the same mode class. A walk
// is an ordered sequence of index pairs. The closed family (RPMP) holds
// every Y-alternating closed walk without loops:
//
//   - no pair matches a mode with its own mirror,
//   - consecutive pairs hand off through exactly one shared mode class,
//   - the final pair closes the walk back to the starting class,
//   - every index is used exactly once.
//
// The open family added by RSPM carries a self-pair (i, i) at each
// endpoint of an otherwise alternating chain through all n classes.
//
// Cardinalities are double-factorial: RPMP emits (2n-2)!! walks and RSPM
// emits (n+1)·(2n-2)!!, so full enumeration explodes quickly past n ≈ 8.
// Both enumerators are lazy iter.Seq values: restartable, deterministic
// in emission order, and safe to abandon mid-iteration.
package walks
