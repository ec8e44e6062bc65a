package walks

import "iter"

// RPMP returns the lazy sequence of all Y-alternating closed walks
// without loops over the mode indices 0..size-1, for size = 2n.
// Exactly (2n-2)!! walks are emitted, in a deterministic order; the
// sequence is restartable and may be abandoned early.
//
// Every walk starts its first pair at index 0 and closes its last pair
// on the mirror index n, fixing one canonical traversal per matching.
// Returns ErrInvalidSize when size is odd or smaller than 2.
//
// Derivation: a walk is a cyclic order of the n mode classes anchored at
// class 0, plus an independent entry/exit representative choice per
// remaining class. Enumeration is recursive backtracking over the
// unvisited classes: (n-1)!·2ⁿ⁻¹ leaves, O(n) work per emitted walk.
func RPMP(size int) (iter.Seq[Walk], error) {
	if size < 2 || size%2 != 0 {
		return nil, ErrInvalidSize
	}
	n := size / 2

	return func(yield func(Walk) bool) {
		// The 2-mode family degenerates to the single pair (0, 1).
		if n == 1 {
			yield(Walk{{U: 0, V: 1}})

			return
		}
		emitClosed(n, yield)
	}, nil
}

// emitClosed backtracks over class orderings and representative choices,
// yielding each completed walk. Reports false once the consumer stops.
func emitClosed(n int, yield func(Walk) bool) bool {
	used := make([]bool, n)
	used[0] = true
	pairs := make(Walk, 0, n)

	var rec func(pendingOut, remaining int) bool
	rec = func(pendingOut, remaining int) bool {
		if remaining == 0 {
			// Close the cycle back into class 0 through its right copy.
			w := make(Walk, len(pairs)+1)
			copy(w, pairs)
			w[len(pairs)] = Pair{U: pendingOut, V: n}

			return yield(w)
		}
		for r := 1; r < n; r++ {
			if used[r] {
				continue
			}
			used[r] = true
			for c := 0; c < 2; c++ {
				in, out := classEnds(r, c, n)
				pairs = append(pairs, Pair{U: pendingOut, V: in})
				ok := rec(out, remaining-1)
				pairs = pairs[:len(pairs)-1]
				if !ok {
					used[r] = false

					return false
				}
			}
			used[r] = false
		}

		return true
	}

	// Anchor: the walk leaves class 0 through its left copy, index 0.
	return rec(0, n-1)
}
