package bignum

import (
	"math/bits"

	"github.com/shabbyrobe/go-bignum/bitops"
)

// Elementary operations on limb vectors. Unless stated otherwise, z, x and y
// must have the same length (x may be longer, the extra limbs are ignored),
// and z may be the same slice as x or y.

// addVV sets z = x + y and returns the carry.
func addVV(z, x, y []uint64) (c uint64) {
	for i := range z {
		z[i], c = bits.Add64(x[i], y[i], c)
	}
	return c
}

// subVV sets z = x - y and returns the borrow.
func subVV(z, x, y []uint64) (c uint64) {
	for i := range z {
		z[i], c = bits.Sub64(x[i], y[i], c)
	}
	return c
}

// addVW sets z = x + y and returns the carry.
func addVW(z, x []uint64, y uint64) (c uint64) {
	c = y
	for i := range z {
		z[i], c = bits.Add64(x[i], c, 0)
	}
	return c
}

// subVW sets z = x - y and returns the borrow.
func subVW(z, x []uint64, y uint64) (c uint64) {
	c = y
	for i := range z {
		z[i], c = bits.Sub64(x[i], c, 0)
	}
	return c
}

// shlVU sets z = x << s for 0 <= s < 64 and returns the bits shifted out of
// the top limb.
func shlVU(z, x []uint64, s uint) (c uint64) {
	n := len(z)
	if n == 0 {
		return 0
	}
	if s == 0 {
		copy(z, x)
		return 0
	}
	c = bitops.ShiftLeft128High(0, x[n-1], s)
	for i := n - 1; i > 0; i-- {
		z[i] = bitops.ShiftLeft128High(x[i], x[i-1], s)
	}
	z[0] = x[0] << s
	return c
}

// shrVU sets z = x >> s for 0 <= s < 64 and returns the bits shifted out of
// the bottom limb, in the high bits of c.
func shrVU(z, x []uint64, s uint) (c uint64) {
	n := len(z)
	if n == 0 {
		return 0
	}
	if s == 0 {
		copy(z, x)
		return 0
	}
	c = x[0] << (limbBits - s)
	for i := 0; i < n-1; i++ {
		// (x[i+1]:x[i]) << (64-s), high word, is x[i] >> s with the low bits
		// of x[i+1] moved in on top.
		z[i] = bitops.ShiftLeft128High(x[i+1], x[i], limbBits-s)
	}
	z[n-1] = x[n-1] >> s
	return c
}

// mulAddVWW sets z = x*y + r and returns the carry.
func mulAddVWW(z, x []uint64, y, r uint64) (c uint64) {
	c = r
	for i := range z {
		hi, lo := bits.Mul64(x[i], y)
		var cc uint64
		z[i], cc = bits.Add64(lo, c, 0)
		c = hi + cc
	}
	return c
}

// addMulVVW sets z = z + x*y and returns the carry.
func addMulVVW(z, x []uint64, y uint64) (c uint64) {
	for i := range z {
		hi, lo := bits.Mul64(x[i], y)
		var cc uint64
		lo, cc = bits.Add64(lo, z[i], 0)
		hi += cc
		z[i], cc = bits.Add64(lo, c, 0)
		c = hi + cc
	}
	return c
}

// divWVW sets z = (xn:x) / y and returns the remainder. xn must be < y.
func divWVW(z []uint64, xn uint64, x []uint64, y uint64) (r uint64) {
	r = xn
	for i := len(z) - 1; i >= 0; i-- {
		z[i], r = bits.Div64(r, x[i], y)
	}
	return r
}

func greaterThan(x1, x2, y1, y2 uint64) bool {
	return x1 > y1 || (x1 == y1 && x2 > y2)
}
