package walks

import "errors"

var (
	// ErrInvalidSize is returned when a mode index range is odd or has
	// fewer than 2 elements; walk families are defined over 2n modes.
	ErrInvalidSize = errors.New("walks: mode count must be even and at least 2")

	// ErrInvalidWalk is returned by Validate when a walk breaks one of
	// the structural invariants (coverage, mirror pairing, alternation
	// hand-off, closure). The wrapping message names the violation.
	ErrInvalidWalk = errors.New("walks: invalid walk structure")
)
