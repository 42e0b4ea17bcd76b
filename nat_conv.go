package bignum

import (
	"math"

	"github.com/shabbyrobe/go-bignum/bitops"
)

// Digit alphabets. Bases up to 36 use lowercase letters on output and accept
// either case on input. Bases 37 to MaxBase need both cases, upper first.
const (
	lowerDigits = "0123456789abcdefghijklmnopqrstuvwxyz"
	upperDigits = "0123456789ABCDEFGHIJKLMNOPQRSTUVWXYZ"
	wideDigits  = "0123456789ABCDEFGHIJKLMNOPQRSTUVWXYZabcdefghijklmnopqrstuvwxyz"
)

func validBase(base int) bool { return base >= 2 && base <= MaxBase }

func digitsFor(base int, upper bool) string {
	switch {
	case base > 36:
		return wideDigits
	case upper:
		return upperDigits
	default:
		return lowerDigits
	}
}

// digitValue returns the value of the digit ch in base, or MaxBase+1 if ch is
// not a digit at all.
func digitValue(ch byte, base int) uint64 {
	switch {
	case '0' <= ch && ch <= '9':
		return uint64(ch - '0')
	case 'a' <= ch && ch <= 'z':
		if base > 36 {
			return uint64(ch-'a') + 36
		}
		return uint64(ch-'a') + 10
	case 'A' <= ch && ch <= 'Z':
		return uint64(ch-'A') + 10
	}
	return MaxBase + 1
}

// maxPow returns (b**n, n) such that b**n is the largest power of b that
// fits in a limb.
func maxPow(b uint64) (p uint64, n int) {
	p, n = b, 1
	for max := uint64(maxUint64) / b; p <= max; {
		p *= b
		n++
	}
	return p, n
}

func powW(b uint64, n int) (p uint64) {
	p = 1
	for ; n > 0; n-- {
		p *= b
	}
	return p
}

// scan converts the digit string s in the given base to a nat. It does not
// handle signs or prefixes. It returns the offset of the first invalid digit,
// or -1.
func (z nat) scan(s string, base int) (nat, int) {
	b := uint64(base)
	bb, ndigits := maxPow(b)

	z = z[:0]
	var acc uint64
	var n int
	for i := 0; i < len(s); i++ {
		d := digitValue(s[i], base)
		if d >= b {
			return z[:0], i
		}
		acc = acc*b + d
		n++
		if n == ndigits {
			z = z.mulAddWW(z, bb, acc)
			acc, n = 0, 0
		}
	}
	if n > 0 {
		z = z.mulAddWW(z, powW(b, n), acc)
	}

	return z.norm(), -1
}

// itoa returns the digits of x in the given base, with a leading '-' if neg
// is set. It panics with ErrInvalidBase if the base is out of range.
func (x nat) itoa(neg bool, base int, upper bool) []byte {
	if !validBase(base) {
		panic(ErrInvalidBase)
	}
	if len(x) == 0 {
		return []byte("0")
	}

	digits := digitsFor(base, upper)

	// Over-estimate the number of digits; the unused head is sliced off.
	i := int(float64(x.bitLen())/math.Log2(float64(base))) + 2
	if neg {
		i++
	}
	s := make([]byte, i)

	b := uint64(base)
	if b&(b-1) == 0 {
		// Power of two: each digit is a fixed number of bits, which may
		// straddle two limbs.
		shift := uint(bitops.TrailingZeroCountNonZero(b))
		mask := b - 1
		w := x[0]
		nbits := uint(limbBits)

		for k := 1; k < len(x); k++ {
			for nbits >= shift {
				i--
				s[i] = digits[w&mask]
				w >>= shift
				nbits -= shift
			}

			if nbits == 0 {
				w = x[k]
				nbits = limbBits
			} else {
				w |= x[k] << nbits
				i--
				s[i] = digits[w&mask]

				w = x[k] >> (shift - nbits)
				nbits = limbBits - (shift - nbits)
			}
		}

		for w != 0 {
			i--
			s[i] = digits[w&mask]
			w >>= shift
		}

	} else {
		// Divide by the largest power of the base that fits a limb and
		// convert each remainder to ndigits digits, leading zeros included,
		// except for the most significant chunk.
		bb, ndigits := maxPow(b)
		q := nat(nil).set(x)
		for len(q) > 0 {
			var r uint64
			q, r = q.divW(q, bb)
			if len(q) == 0 {
				for r != 0 {
					i--
					s[i] = digits[r%b]
					r /= b
				}
			} else {
				for j := 0; j < ndigits; j++ {
					i--
					s[i] = digits[r%b]
					r /= b
				}
			}
		}
	}

	if neg {
		i--
		s[i] = '-'
	}
	return s[i:]
}
