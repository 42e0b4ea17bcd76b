package bignum

import (
	"math"
	"math/big"

	"github.com/shabbyrobe/go-bignum/bitops"
)

func IntFrom64(v int64) Int {
	if v < 0 {
		return Int{neg: true, abs: nat{uint64(-v)}}
	} else if v == 0 {
		return Int{}
	}
	return Int{abs: nat{uint64(v)}}
}

func IntFrom32(v int32) Int { return IntFrom64(int64(v)) }
func IntFrom16(v int16) Int { return IntFrom64(int64(v)) }
func IntFrom8(v int8) Int   { return IntFrom64(int64(v)) }
func IntFromInt(v int) Int  { return IntFrom64(int64(v)) }

func IntFromU64(v uint64) Int {
	if v == 0 {
		return Int{}
	}
	return Int{abs: nat{v}}
}

// IntFromLimbs creates an Int from a magnitude given as 64-bit limbs, least
// significant first, and a sign. The limbs are copied. neg is ignored if the
// magnitude is zero.
func IntFromLimbs(neg bool, limbs []uint64) Int {
	return makeInt(neg, nat(nil).set(limbs))
}

// Limbs returns a copy of the magnitude of x as 64-bit limbs, least
// significant first. Limbs of 0 is empty.
func (x Int) Limbs() []uint64 {
	return nat(nil).set(x.abs)
}

// IntFromBigInt creates an Int from a big.Int. The conversion is always exact.
func IntFromBigInt(v *big.Int) Int {
	words := v.Bits()
	var abs nat

	switch intSize {
	case 64:
		abs = abs.make(len(words))
		for i, w := range words {
			abs[i] = uint64(w)
		}

	case 32:
		abs = abs.make((len(words) + 1) / 2)
		for i, w := range words {
			abs[i/2] |= uint64(w) << (32 * uint(i%2))
		}

	default:
		panic("bignum: unsupported bit size")
	}

	return makeInt(v.Sign() < 0, abs)
}

// IntoBigInt copies this Int into a big.Int, allowing you to retain and
// recycle memory.
func (x Int) IntoBigInt(b *big.Int) {
	var words []big.Word

	switch intSize {
	case 64:
		words = make([]big.Word, len(x.abs))
		for i, w := range x.abs {
			words[i] = big.Word(w)
		}

	case 32:
		words = make([]big.Word, len(x.abs)*2)
		for i, w := range x.abs {
			words[2*i] = big.Word(w & 0xFFFFFFFF)
			words[2*i+1] = big.Word(w >> 32)
		}

	default:
		panic("bignum: unsupported bit size")
	}

	b.SetBits(words)
	if x.neg {
		b.Neg(b)
	}
}

// AsBigInt allocates a new big.Int and copies this Int into it.
func (x Int) AsBigInt() (b *big.Int) {
	b = new(big.Int)
	x.IntoBigInt(b)
	return b
}

// AsUint64 returns the least significant 64 bits of the magnitude of x. The
// sign is ignored. See IsUint64() if you want to check before you convert.
func (x Int) AsUint64() uint64 {
	if len(x.abs) == 0 {
		return 0
	}
	return x.abs[0]
}

// IsUint64 reports whether x can be represented as a uint64.
func (x Int) IsUint64() bool {
	return !x.neg && len(x.abs) <= 1
}

// AsInt64 truncates the Int to fit in an int64. Out of range values keep
// their sign: a positive x gives the low 63 bits of its magnitude, and a
// negative x gives -1 minus the low 63 bits of |x|-1. See IsInt64() if you
// want to check before you convert.
func (x Int) AsInt64() int64 {
	lo := x.AsUint64()
	if x.neg {
		// lo may be 0 when |x| is a multiple of 2**64; lo-1 wraps to all ones.
		return -1 - int64((lo-1)&maxInt64)
	}
	return int64(lo & maxInt64)
}

// IsInt64 reports whether x can be represented as an int64.
func (x Int) IsInt64() bool {
	if len(x.abs) == 0 {
		return true
	} else if len(x.abs) > 1 {
		return false
	}
	if x.neg {
		return x.abs[0] <= 1<<63
	}
	return x.abs[0] <= maxInt64
}

// IntFromFloat32 creates an Int from a float32. See IntFromFloat64.
func IntFromFloat32(f float32) (out Int, inRange bool) {
	return IntFromFloat64(float64(f))
}

// IntFromFloat64 creates an Int from a float64.
//
// Any fractional portion will be truncated towards zero.
//
// Every finite float64 is in range. NaN and ±Inf return 0 and inRange is set
// to false.
func IntFromFloat64(f float64) (out Int, inRange bool) {
	if math.IsNaN(f) || math.IsInf(f, 0) {
		return out, false
	}

	neg := f < 0
	if neg {
		f = -f
	}
	if f < 1 {
		return out, true
	}
	if f < wrapUint64Float {
		return makeInt(neg, nat{uint64(f)}), true
	}

	// f >= 2**64, so it is an integer: mant * 2**(exp-53) with exp > 64.
	frac, exp := math.Frexp(f)
	mant := uint64(math.Ldexp(frac, 53))

	var abs nat
	abs = abs.lsh(nat{mant}, uint(exp-53))
	return makeInt(neg, abs), true
}

// AsFloat64 returns the float64 nearest to x, rounding ties to even. Values
// too large in magnitude for a float64 return ±Inf.
func (x Int) AsFloat64() float64 {
	top, exp := x.topBits()
	f := math.Ldexp(float64(top), exp)
	if x.neg {
		f = -f
	}
	return f
}

// AsFloat32 returns the float32 nearest to x, rounding ties to even. Values
// too large in magnitude for a float32 return ±Inf.
func (x Int) AsFloat32() float32 {
	top, exp := x.topBits()

	// The uint64 to float32 conversion rounds once; scaling by a power of two
	// afterwards is exact unless it overflows.
	f := math.Ldexp(float64(float32(top)), exp)
	if f >= maxFloat32Overflow {
		f = math.Inf(1)
	}
	if x.neg {
		f = -f
	}
	return float32(f)
}

// topBits returns the most significant 64 bits of the magnitude of x, with
// the lowest bit set if any bit below them is set, and the power of two that
// scales them back to x. Rounding the result to 53 or 24 bits of mantissa
// then gives the same answer as rounding x itself.
func (x Int) topBits() (top uint64, exp int) {
	n := len(x.abs)
	if n == 0 {
		return 0, 0
	} else if n == 1 {
		return x.abs[0], 0
	}

	hi, lo := x.abs[n-1], x.abs[n-2]
	s := uint(bitops.LeadingZeroCountNonZero(hi))
	top = hi<<s | lo>>(64-s)

	sticky := lo<<s != 0
	for i := n - 3; !sticky && i >= 0; i-- {
		sticky = x.abs[i] != 0
	}
	if sticky {
		top |= 1
	}

	return top, (n-1)*limbBits - int(s)
}
