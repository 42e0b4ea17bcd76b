package bitops

import (
	"math/bits"
	"math/rand"
	"testing"

	"github.com/stretchr/testify/require"
)

var edgeWords = []uint64{
	0, 1, 2, 3, 0x80, 0xFF, 0x100,
	0x7FFFFFFF, 0x80000000, 0xFFFFFFFF, 0x100000000,
	0x7FFFFFFFFFFFFFFF, 0x8000000000000000, 0xFFFFFFFFFFFFFFFF,
	0x8000000000000001, 0x0000000100000001, 0x00F0000000000000,
}

func randomWords(n int) []uint64 {
	rng := rand.New(rand.NewSource(1))
	out := make([]uint64, 0, n)
	for i := 0; i < n; i++ {
		// Spread the bit lengths out, otherwise nearly every word has its top
		// bit set.
		out = append(out, rng.Uint64()>>uint(rng.Intn(64)))
	}
	return out
}

func TestLeadingZeroCount(t *testing.T) {
	for _, tc := range []struct {
		in  uint64
		out int
	}{
		{0, 64},
		{1, 63},
		{0xFF, 56},
		{0x8000000000000000, 0},
		{0xFFFFFFFFFFFFFFFF, 0},
		{0x00000000FFFFFFFF, 32},
	} {
		require.Equal(t, tc.out, LeadingZeroCount(tc.in), "%#x", tc.in)
		require.Equal(t, tc.out, leadingZeroCountGeneric(tc.in), "%#x", tc.in)
		require.Equal(t, tc.out, leadingZeroCountIntrinsic(tc.in), "%#x", tc.in)
		if tc.in != 0 {
			require.Equal(t, tc.out, LeadingZeroCountNonZero(tc.in), "%#x", tc.in)
		}
	}
}

func TestTrailingZeroCount(t *testing.T) {
	for _, tc := range []struct {
		in  uint64
		out int
	}{
		{0, 64},
		{1, 0},
		{2, 1},
		{0x100, 8},
		{0x8000000000000000, 63},
		{0xFFFFFFFF00000000, 32},
	} {
		require.Equal(t, tc.out, TrailingZeroCount(tc.in), "%#x", tc.in)
		require.Equal(t, tc.out, trailingZeroCountGeneric(tc.in), "%#x", tc.in)
		require.Equal(t, tc.out, trailingZeroCountIntrinsic(tc.in), "%#x", tc.in)
		if tc.in != 0 {
			require.Equal(t, tc.out, TrailingZeroCountNonZero(tc.in), "%#x", tc.in)
		}
	}
}

func TestZeroCountsAgainstMathBits(t *testing.T) {
	words := append(randomWords(20000), edgeWords...)
	for _, x := range words {
		lz, tz := bits.LeadingZeros64(x), bits.TrailingZeros64(x)
		require.Equal(t, lz, LeadingZeroCount(x), "%#x", x)
		require.Equal(t, lz, leadingZeroCountGeneric(x), "%#x", x)
		require.Equal(t, tz, TrailingZeroCount(x), "%#x", x)
		require.Equal(t, tz, trailingZeroCountGeneric(x), "%#x", x)
	}
}

func TestShiftLeft128High(t *testing.T) {
	for _, tc := range []struct {
		hi, lo uint64
		shift  uint
		out    uint64
	}{
		{0, 0, 0, 0},
		{1, 0, 0, 1},
		{0, 0x8000000000000000, 1, 1},
		{0, 0xFFFFFFFFFFFFFFFF, 63, 0x7FFFFFFFFFFFFFFF},
		{0x1, 0x8000000000000000, 1, 0x3},
		{0xFFFFFFFFFFFFFFFF, 0, 4, 0xFFFFFFFFFFFFFFF0},
		{0x0123456789ABCDEF, 0xFEDCBA9876543210, 16, 0x456789ABCDEFFEDC},
	} {
		require.Equal(t, tc.out, ShiftLeft128High(tc.hi, tc.lo, tc.shift), "(%#x:%#x)<<%d", tc.hi, tc.lo, tc.shift)
		require.Equal(t, tc.out, shiftLeft128HighGeneric(tc.hi, tc.lo, tc.shift))
		require.Equal(t, tc.out, shiftLeft128HighIntrinsic(tc.hi, tc.lo, tc.shift))
	}
}

func TestShiftLeft128HighRandom(t *testing.T) {
	rng := rand.New(rand.NewSource(2))
	for i := 0; i < 20000; i++ {
		hi, lo := rng.Uint64(), rng.Uint64()
		shift := uint(rng.Intn(64))

		// (hi:lo) << shift, upper word, computed with the two-word shift
		// identity the long way round:
		expected := hi << shift
		if shift > 0 {
			expected |= lo >> (64 - shift)
		}
		require.Equal(t, expected, ShiftLeft128High(hi, lo, shift))
		require.Equal(t, expected, shiftLeft128HighGeneric(hi, lo, shift))
	}
}

func TestImplementation(t *testing.T) {
	impl := Implementation()
	require.Contains(t, []string{"intrinsic", "generic"}, impl)
	require.NotEmpty(t, CPU().String())
}

func TestFeaturesString(t *testing.T) {
	require.Equal(t, "none", Features{}.String())
	require.Equal(t, "BMI1,POPCNT", Features{BMI1: true, POPCNT: true}.String())
}

var BenchIntResult int
var BenchUint64Result uint64

func BenchmarkLeadingZeroCount(b *testing.B) {
	for i := 0; i < b.N; i++ {
		BenchIntResult = LeadingZeroCount(uint64(i) | 1)
	}
}

func BenchmarkLeadingZeroCountGeneric(b *testing.B) {
	for i := 0; i < b.N; i++ {
		BenchIntResult = leadingZeroCountGeneric(uint64(i) | 1)
	}
}

func BenchmarkShiftLeft128High(b *testing.B) {
	for i := 0; i < b.N; i++ {
		BenchUint64Result = ShiftLeft128High(uint64(i), 0xFEDCBA9876543210, uint(i)&63)
	}
}
