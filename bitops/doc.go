/*
Package bitops provides the 64-bit word primitives needed by limb-based
multi-precision arithmetic: leading and trailing zero counts, and the high
word of a 128-bit left shift.

	LeadingZeroCount(x uint64) int
	LeadingZeroCountNonZero(x uint64) int
	TrailingZeroCount(x uint64) int
	TrailingZeroCountNonZero(x uint64) int
	ShiftLeft128High(hi, lo uint64, shift uint) uint64

By default the functions are backed by math/bits, which the compiler lowers
to single instructions on most targets. Building with the 'purego' tag
selects the portable implementation instead. Both are always compiled into
the test binary so they can be checked against each other.

The NonZero variants have an undefined result for x == 0. Building with the
'bitopsdebug' tag turns that (and an out of range shift) into a panic.
*/
package bitops
