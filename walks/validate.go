package walks

import "fmt"

// Validate checks that w is a structurally sound walk over the mode
// indices 0..size-1, either closed (RPMP family) or open with endpoint
// self-pairs (RSPM family). The invariants enforced:
//
//   - every index appears exactly once (self-pairs consume one index),
//   - no non-loop pair matches an index with its own mirror,
//   - consecutive pairs hand off through the mirror of the previous
//     exit, so each hop shares exactly one mode class,
//   - closed walks return to the mirror of their starting index; open
//     walks terminate on the self-pair of the final entry's mirror.
//
// The degenerate 2-mode walks {(0,1)} and {(0,0),(1,1)} are valid by
// definition. Returns ErrInvalidSize or a wrapped ErrInvalidWalk.
func Validate(w Walk, size int) error {
	if size < 2 || size%2 != 0 {
		return ErrInvalidSize
	}
	n := size / 2

	// Coverage: each mode index consumed exactly once.
	seen := make([]bool, size)
	count := 0
	mark := func(i int) error {
		if i < 0 || i >= size {
			return fmt.Errorf("index %d outside 0..%d: %w", i, size-1, ErrInvalidWalk)
		}
		if seen[i] {
			return fmt.Errorf("index %d used twice: %w", i, ErrInvalidWalk)
		}
		seen[i] = true
		count++

		return nil
	}
	for _, p := range w {
		if err := mark(p.U); err != nil {
			return err
		}
		if !p.IsLoop() {
			if err := mark(p.V); err != nil {
				return err
			}
		}
	}
	if count != size {
		return fmt.Errorf("covers %d of %d indices: %w", count, size, ErrInvalidWalk)
	}

	if n == 1 {
		// Coverage above already pins the two degenerate shapes.
		return nil
	}
	if w[0].IsLoop() {
		return validateOpen(w, n)
	}

	return validateClosed(w, n)
}

// validateClosed walks the chain of a loop-free closed walk.
func validateClosed(w Walk, n int) error {
	if len(w) != n {
		return fmt.Errorf("closed walk has %d pairs, want %d: %w", len(w), n, ErrInvalidWalk)
	}
	start := w[0].U
	current := start
	for i, p := range w {
		if p.IsLoop() {
			return fmt.Errorf("pair %d is a loop in a closed walk: %w", i, ErrInvalidWalk)
		}
		if Reduce(p.U, n) == Reduce(p.V, n) {
			return fmt.Errorf("pair %d matches a mode with its mirror: %w", i, ErrInvalidWalk)
		}
		if p.U != current {
			return fmt.Errorf("pair %d starts at %d, want hand-off %d: %w", i, p.U, current, ErrInvalidWalk)
		}
		current = mirror(p.V, n)
	}
	if current != start {
		return fmt.Errorf("walk ends at %d, does not close on %d: %w", current, start, ErrInvalidWalk)
	}

	return nil
}

// validateOpen walks the chain between the two endpoint self-pairs.
func validateOpen(w Walk, n int) error {
	if len(w) != n+1 {
		return fmt.Errorf("open walk has %d pairs, want %d: %w", len(w), n+1, ErrInvalidWalk)
	}
	last := w[len(w)-1]
	if !last.IsLoop() {
		return fmt.Errorf("open walk must terminate on a self-pair: %w", ErrInvalidWalk)
	}
	current := mirror(w[0].U, n)
	for i, p := range w[1 : len(w)-1] {
		if p.IsLoop() {
			return fmt.Errorf("chain pair %d is a loop: %w", i+1, ErrInvalidWalk)
		}
		if Reduce(p.U, n) == Reduce(p.V, n) {
			return fmt.Errorf("chain pair %d matches a mode with its mirror: %w", i+1, ErrInvalidWalk)
		}
		if p.U != current {
			return fmt.Errorf("chain pair %d starts at %d, want hand-off %d: %w", i+1, p.U, current, ErrInvalidWalk)
		}
		current = mirror(p.V, n)
	}
	if last.U != current {
		return fmt.Errorf("terminal self-pair at %d, want %d: %w", last.U, current, ErrInvalidWalk)
	}

	return nil
}
