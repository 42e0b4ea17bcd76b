package bignum

import (
	"github.com/shabbyrobe/go-bignum/bitops"
)

// nat is an unsigned magnitude as a sequence of 64-bit limbs, least
// significant first.
//
// A nat is normalised when it has no most-significant zero limbs; zero is the
// empty nat. Every method that produces a nat returns it normalised.
//
// Methods take the destination as the receiver (z) and return the result,
// which may or may not share z's backing array. Passing a nil z always
// allocates. A nat that is reachable from an Int must never be passed as z.
type nat []uint64

func (z nat) norm() nat {
	i := len(z)
	for i > 0 && z[i-1] == 0 {
		i--
	}
	return z[0:i]
}

func (z nat) make(n int) nat {
	if n <= cap(z) {
		return z[:n]
	}
	if n == 1 {
		return make(nat, 1)
	}
	const headroom = 4
	return make(nat, n, n+headroom)
}

func (z nat) clear() {
	for i := range z {
		z[i] = 0
	}
}

func (z nat) setUint64(x uint64) nat {
	if x == 0 {
		return z[:0]
	}
	z = z.make(1)
	z[0] = x
	return z
}

func (z nat) set(x nat) nat {
	z = z.make(len(x))
	copy(z, x)
	return z
}

// alias reports whether x and y share the same backing array.
func alias(x, y nat) bool {
	return cap(x) > 0 && cap(y) > 0 && &x[0:cap(x)][cap(x)-1] == &y[0:cap(y)][cap(y)-1]
}

func (x nat) isZero() bool { return len(x) == 0 }

// cmp compares magnitudes: limb count first, then limbs from the most
// significant down.
func (x nat) cmp(y nat) (r int) {
	m, n := len(x), len(y)
	if m != n || m == 0 {
		switch {
		case m < n:
			r = -1
		case m > n:
			r = 1
		}
		return r
	}

	i := m - 1
	for i > 0 && x[i] == y[i] {
		i--
	}
	switch {
	case x[i] < y[i]:
		r = -1
	case x[i] > y[i]:
		r = 1
	}
	return r
}

func (z nat) add(x, y nat) nat {
	m, n := len(x), len(y)

	switch {
	case m < n:
		return z.add(y, x)
	case m == 0:
		return z[:0]
	case n == 0:
		return z.set(x)
	}

	z = z.make(m + 1)
	c := addVV(z[:n], x[:n], y[:n])
	if m > n {
		c = addVW(z[n:m], x[n:], c)
	}
	z[m] = c

	return z.norm()
}

// sub sets z = x - y. It panics if x < y; callers compare first.
func (z nat) sub(x, y nat) nat {
	m, n := len(x), len(y)

	switch {
	case m < n:
		panic("bignum: nat underflow")
	case m == 0:
		return z[:0]
	case n == 0:
		return z.set(x)
	}

	z = z.make(m)
	c := subVV(z[:n], x[:n], y[:n])
	if m > n {
		c = subVW(z[n:], x[n:], c)
	}
	if c != 0 {
		panic("bignum: nat underflow")
	}

	return z.norm()
}

// mulAddWW sets z = x*y + r.
func (z nat) mulAddWW(x nat, y, r uint64) nat {
	m := len(x)
	if m == 0 || y == 0 {
		return z.setUint64(r)
	}

	z = z.make(m + 1)
	z[m] = mulAddVWW(z[0:m], x, y, r)

	return z.norm()
}

// mul sets z = x*y using the schoolbook method. The product has at most
// len(x)+len(y) limbs.
func (z nat) mul(x, y nat) nat {
	m, n := len(x), len(y)

	switch {
	case m < n:
		return z.mul(y, x)
	case m == 0 || n == 0:
		return z[:0]
	case n == 1:
		return z.mulAddWW(x, y[0], 0)
	}

	if alias(z, x) || alias(z, y) {
		z = nil
	}

	z = z.make(m + n)
	z.clear()
	for i, d := range y {
		if d != 0 {
			z[m+i] = addMulVVW(z[i:i+m], x, d)
		}
	}

	return z.norm()
}

// lsh sets z = x << s.
func (z nat) lsh(x nat, s uint) nat {
	m := len(x)
	if m == 0 {
		return z[:0]
	}

	n := m + int(s/limbBits)
	z = z.make(n + 1)
	z[n] = shlVU(z[n-m:n], x, s%limbBits)
	z[0 : n-m].clear()

	return z.norm()
}

// rsh sets z = x >> s.
func (z nat) rsh(x nat, s uint) nat {
	m := len(x)
	n := m - int(s/limbBits)
	if n <= 0 {
		return z[:0]
	}

	z = z.make(n)
	shrVU(z, x[m-n:], s%limbBits)

	return z.norm()
}

func (x nat) bitLen() int {
	if i := len(x) - 1; i >= 0 {
		return i*limbBits + (limbBits - bitops.LeadingZeroCountNonZero(x[i]))
	}
	return 0
}

// trailingZeroBits returns the number of consecutive least significant zero
// bits of x. It returns 0 for x == 0.
func (x nat) trailingZeroBits() uint {
	for i, w := range x {
		if w != 0 {
			return uint(i)*limbBits + uint(bitops.TrailingZeroCountNonZero(w))
		}
	}
	return 0
}

func (x nat) bit(i uint) uint {
	j := i / limbBits
	if j >= uint(len(x)) {
		return 0
	}
	return uint(x[j] >> (i % limbBits) & 1)
}

// pow sets z = x**e by left-to-right binary exponentiation.
func (z nat) pow(x nat, e uint64) nat {
	if e == 0 {
		return z.setUint64(1)
	}
	if len(x) == 0 || e == 1 {
		return z.set(x)
	}
	if alias(z, x) {
		z = nil
	}

	// x is a power of two: a shift is enough.
	if tz := x.trailingZeroBits(); int(tz) == x.bitLen()-1 {
		if uint64(tz) <= uint64(^uint(0))/e {
			return z.lsh(natOne, uint(tz)*uint(e))
		}
	}

	z = z.set(x)
	var tmp nat
	for i := limbBits - 2 - bitops.LeadingZeroCountNonZero(e); i >= 0; i-- {
		tmp = tmp.mul(z, z)
		z, tmp = tmp, z
		if e>>uint(i)&1 != 0 {
			tmp = tmp.mul(z, x)
			z, tmp = tmp, z
		}
	}

	return z
}

// sqrt sets z = floor(sqrt(x)).
func (z nat) sqrt(x nat) nat {
	if x.cmp(natOne) <= 0 {
		return z.set(x)
	}
	if alias(z, x) {
		z = nil
	}

	// Start with a value known to be too large and repeat
	// z = floor((z + floor(x/z)) / 2) until it stops getting smaller. If x is
	// one less than a perfect square the sequence oscillates between the
	// answer and answer+1, which the >= check also catches.
	var z1, z2, r nat
	z1 = z1.lsh(natOne, uint(x.bitLen()+1)/2)
	for {
		z2, r = z2.div(r, x, z1)
		z2 = z2.add(z2, z1)
		z2 = z2.rsh(z2, 1)
		if z2.cmp(z1) >= 0 {
			return z.set(z1)
		}
		z1, z2 = z2, z1
	}
}
