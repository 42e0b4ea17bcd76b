//go:build !purego

package bitops

const implementation = "intrinsic"

// LeadingZeroCount returns the number of zero bits before the most
// significant set bit of x. It returns 64 for x == 0.
func LeadingZeroCount(x uint64) int { return leadingZeroCountIntrinsic(x) }

// LeadingZeroCountNonZero is LeadingZeroCount for x != 0.
func LeadingZeroCountNonZero(x uint64) int {
	if debug && x == 0 {
		panic("bitops: LeadingZeroCountNonZero(0)")
	}
	return leadingZeroCountIntrinsic(x)
}

// TrailingZeroCount returns the number of zero bits after the least
// significant set bit of x. It returns 64 for x == 0.
func TrailingZeroCount(x uint64) int { return trailingZeroCountIntrinsic(x) }

// TrailingZeroCountNonZero is TrailingZeroCount for x != 0.
func TrailingZeroCountNonZero(x uint64) int {
	if debug && x == 0 {
		panic("bitops: TrailingZeroCountNonZero(0)")
	}
	return trailingZeroCountIntrinsic(x)
}

// ShiftLeft128High treats (hi, lo) as a 128-bit unsigned integer and returns
// the upper 64 bits of that value shifted left by shift bits, where
// 0 <= shift < 64.
func ShiftLeft128High(hi, lo uint64, shift uint) uint64 {
	if debug && shift >= 64 {
		panic("bitops: ShiftLeft128High shift out of range")
	}
	return shiftLeft128HighIntrinsic(hi, lo, shift)
}
