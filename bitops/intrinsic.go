package bitops

import "math/bits"

func leadingZeroCountIntrinsic(x uint64) int {
	return bits.LeadingZeros64(x)
}

func trailingZeroCountIntrinsic(x uint64) int {
	return bits.TrailingZeros64(x)
}

func shiftLeft128HighIntrinsic(hi, lo uint64, shift uint) uint64 {
	shift &= 63
	// Go defines lo >> 64 == 0, so shift == 0 needs no special case.
	return hi<<shift | lo>>(64-shift)
}
