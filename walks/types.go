package walks

// Pair is a single matched pair of mode indices. A pair with U == V is a
// self-pair (loop edge); those appear only at the endpoints of open
// walks in the RSPM family.
type Pair struct {
	U, V int
}

// IsLoop reports whether the pair matches a mode index with itself.
func (p Pair) IsLoop() bool { return p.U == p.V }

// Walk is an ordered sequence of pairs forming one Y-alternating walk.
// Enumerators emit freshly allocated walks; callers may retain them.
type Walk []Pair

// Clone returns an independent copy of the walk.
func (w Walk) Clone() Walk {
	cp := make(Walk, len(w))
	copy(cp, w)

	return cp
}

// Reduce maps a mode index to its class: i for the left half, i-n for
// the right half. Two indices with equal reduced value mirror each other.
func Reduce(i, n int) int {
	if i >= n {
		return i - n
	}

	return i
}

// mirror returns the partner index of i in the opposite half.
func mirror(i, n int) int {
	if i >= n {
		return i - n
	}

	return i + n
}

// classEnds resolves the entry and exit index of class r under the
// representative choice c: c == 0 enters on the left copy r and exits on
// the right copy r+n, c == 1 the other way around.
func classEnds(r, c, n int) (in, out int) {
	if c == 0 {
		return r, r + n
	}

	return r + n, r
}
