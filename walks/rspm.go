package walks

import "iter"

// RSPM returns the lazy sequence of restricted single perfect matchings
// over the mode indices 0..size-1: every closed walk from RPMP plus
// every open walk carrying a self-pair at each endpoint. For size = 2n
// exactly (n+1)·(2n-2)!! matchings are emitted — (2n-2)!! closed and
// n·(2n-2)!! open. Same laziness, determinism and error contract as
// RPMP.
//
// An open walk replaces the cyclic closure by two loop edges: the chain
// starts at the mirror of a self-paired index, threads through all n
// classes, and terminates on the mirror self-pair of its final entry.
// Reversal of an open chain reproduces the same matching, so chains are
// emitted only with their lower endpoint class first.
func RSPM(size int) (iter.Seq[Walk], error) {
	if size < 2 || size%2 != 0 {
		return nil, ErrInvalidSize
	}
	n := size / 2

	return func(yield func(Walk) bool) {
		if n == 1 {
			if !yield(Walk{{U: 0, V: 1}}) {
				return
			}
			yield(Walk{{U: 0, V: 0}, {U: 1, V: 1}})

			return
		}
		if !emitClosed(n, yield) {
			return
		}
		emitOpen(n, yield)
	}, nil
}

// emitOpen backtracks over linear class orderings with endpoint
// self-pairs. The first class of the chain is always the smaller
// endpoint, de-duplicating chain reversals.
func emitOpen(n int, yield func(Walk) bool) bool {
	used := make([]bool, n)
	pairs := make(Walk, 0, n+1)

	var first int
	var rec func(pendingOut, remaining int) bool
	rec = func(pendingOut, remaining int) bool {
		for s := 0; s < n; s++ {
			if used[s] {
				continue
			}
			// Endpoint ordering: the terminal class must exceed the first.
			if remaining == 1 && s < first {
				continue
			}
			used[s] = true
			for c := 0; c < 2; c++ {
				in, out := classEnds(s, c, n)
				if remaining == 1 {
					// Terminal class: enter on in, self-pair its mirror.
					pairs = append(pairs, Pair{U: pendingOut, V: in}, Pair{U: out, V: out})
					w := pairs.Clone()
					pairs = pairs[:len(pairs)-2]
					if !yield(w) {
						used[s] = false

						return false
					}

					continue
				}
				pairs = append(pairs, Pair{U: pendingOut, V: in})
				ok := rec(out, remaining-1)
				pairs = pairs[:len(pairs)-1]
				if !ok {
					used[s] = false

					return false
				}
			}
			used[s] = false
		}

		return true
	}

	for first = 0; first < n-1; first++ {
		used[first] = true
		for c := 0; c < 2; c++ {
			// Self-pair one copy of the first class, leave on its mirror.
			self, out := classEnds(first, c, n)
			pairs = append(pairs, Pair{U: self, V: self})
			ok := rec(out, n-1)
			pairs = pairs[:0]
			if !ok {
				return false
			}
		}
		used[first] = false
	}

	return true
}
