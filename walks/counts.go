package walks

// DoubleFactorial returns k!! — the product of the positive integers of
// k's parity up to k. By convention k!! = 1 for k <= 0. The result
// overflows uint64 beyond 33!!; callers sizing enumerations stay far
// below that.
func DoubleFactorial(k int) uint64 {
	v := uint64(1)
	for ; k > 1; k -= 2 {
		v *= uint64(k)
	}

	return v
}

// CountRPMP returns the closed-form cardinality of RPMP(size): (2n-2)!!
// for size = 2n. Returns ErrInvalidSize on an odd or too-small size.
func CountRPMP(size int) (uint64, error) {
	if size < 2 || size%2 != 0 {
		return 0, ErrInvalidSize
	}

	return DoubleFactorial(size - 2), nil
}

// CountRSPM returns the closed-form cardinality of RSPM(size):
// (n+1)·(2n-2)!! for size = 2n — the closed family plus n·(2n-2)!! open
// walks. Returns ErrInvalidSize on an odd or too-small size.
func CountRSPM(size int) (uint64, error) {
	if size < 2 || size%2 != 0 {
		return 0, ErrInvalidSize
	}
	n := uint64(size / 2)

	return (n + 1) * DoubleFactorial(size-2), nil
}
