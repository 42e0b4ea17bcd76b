package bitops

// The portable implementations. They avoid math/bits entirely so they can be
// used as a reference for the intrinsic versions.

func leadingZeroCountGeneric(x uint64) int {
	if x == 0 {
		return 64
	}
	c := 0
	for ; x&(0xff<<(64-8)) == 0; c += 8 {
		x <<= 8
	}
	for ; x&(1<<(64-1)) == 0; c++ {
		x <<= 1
	}
	return c
}

func trailingZeroCountGeneric(x uint64) int {
	if x == 0 {
		return 64
	}
	// x & -x isolates the lowest set bit.
	return 63 - leadingZeroCountGeneric(x&-x)
}

func shiftLeft128HighGeneric(hi, lo uint64, shift uint) uint64 {
	shift &= 63
	if shift == 0 {
		// lo >> 64 would be 0 in Go, but keep the branch so the intent is
		// obvious next to the other implementation.
		return hi
	}
	return hi<<shift | lo>>(64-shift)
}
