package bignum

// Int is an arbitrary-precision signed integer. The zero value is 0.
//
// Int is a value type: pure operations never modify their operands and return
// a new Int. The *Assign methods replace the receiver's value and return the
// receiver. The limb buffer inside an Int is never written to once the Int has
// been returned, so an Int may be copied by assignment and shared freely.
type Int struct {
	neg bool // false when abs is empty
	abs nat
}

func makeInt(neg bool, abs nat) Int {
	abs = abs.norm()
	if len(abs) == 0 {
		return Int{}
	}
	return Int{neg: neg, abs: abs}
}

func (x Int) IsZero() bool { return len(x.abs) == 0 }

// Sign returns -1 if x < 0, 0 if x == 0 and +1 if x > 0.
func (x Int) Sign() int {
	if len(x.abs) == 0 {
		return 0
	} else if x.neg {
		return -1
	}
	return 1
}

// IsEven reports whether the least significant bit of x is clear. Zero is even.
func (x Int) IsEven() bool { return len(x.abs) == 0 || x.abs[0]&1 == 0 }

// IsOdd reports whether the least significant bit of x is set.
func (x Int) IsOdd() bool { return len(x.abs) > 0 && x.abs[0]&1 == 1 }

// Clone returns a copy of x that shares no memory with it.
func (x Int) Clone() Int {
	return Int{neg: x.neg, abs: nat(nil).set(x.abs)}
}

// Set copies x into z and returns z.
func (z *Int) Set(x Int) *Int {
	*z = x.Clone()
	return z
}

// Take moves src's value into z without copying the limbs and leaves src as
// zero. It returns z.
func (z *Int) Take(src *Int) *Int {
	if z != src {
		*z, *src = *src, Int{}
	}
	return z
}

func (x Int) Neg() Int {
	if len(x.abs) == 0 {
		return x
	}
	return Int{neg: !x.neg, abs: x.abs}
}

func (x Int) Abs() Int {
	return Int{abs: x.abs}
}

func (x Int) Add(y Int) Int {
	neg := x.neg
	var abs nat
	if x.neg == y.neg {
		// x + y == x + y
		// (-x) + (-y) == -(x + y)
		abs = abs.add(x.abs, y.abs)
	} else {
		// x + (-y) == x - y == -(y - x)
		// (-x) + y == y - x == -(x - y)
		if x.abs.cmp(y.abs) >= 0 {
			abs = abs.sub(x.abs, y.abs)
		} else {
			neg = !neg
			abs = abs.sub(y.abs, x.abs)
		}
	}
	return makeInt(neg, abs)
}

func (x Int) Sub(y Int) Int {
	neg := x.neg
	var abs nat
	if x.neg != y.neg {
		// x - (-y) == x + y
		// (-x) - y == -(x + y)
		abs = abs.add(x.abs, y.abs)
	} else {
		// x - y == x - y == -(y - x)
		// (-x) - (-y) == y - x == -(x - y)
		if x.abs.cmp(y.abs) >= 0 {
			abs = abs.sub(x.abs, y.abs)
		} else {
			neg = !neg
			abs = abs.sub(y.abs, x.abs)
		}
	}
	return makeInt(neg, abs)
}

func (x Int) Mul(y Int) Int {
	var abs nat
	abs = abs.mul(x.abs, y.abs)
	return makeInt(x.neg != y.neg, abs)
}

func (x Int) Inc() Int { return x.Add(oneInt) }
func (x Int) Dec() Int { return x.Sub(oneInt) }

// QuoRem returns the quotient q and remainder r for y != 0. If y == 0, it
// panics with ErrDivisionByZero.
//
// QuoRem implements T-division and modulus (like Go):
//
//	q = x/y      with the result truncated to zero
//	r = x - y*q
//
// The remainder has the sign of x. See DivMod for the variant whose remainder
// has the sign of y.
func (x Int) QuoRem(y Int) (q, r Int) {
	var qabs, rabs nat
	qabs, rabs = qabs.div(rabs, x.abs, y.abs)
	return makeInt(x.neg != y.neg, qabs), makeInt(x.neg, rabs)
}

// Quo returns the quotient x/y for y != 0, truncated toward zero. If y == 0,
// it panics with ErrDivisionByZero.
func (x Int) Quo(y Int) Int {
	q, _ := x.QuoRem(y)
	return q
}

// Rem returns the truncated remainder x - y*x.Quo(y), which has the sign of x.
func (x Int) Rem(y Int) Int {
	_, r := x.QuoRem(y)
	return r
}

// DivMod returns the quotient and remainder of floored division, where the
// remainder m is zero or has the sign of y:
//
//	q = floor(x/y)
//	m = x - y*q
//
// If y == 0, it panics with ErrDivisionByZero.
func (x Int) DivMod(y Int) (q, m Int) {
	q, m = x.QuoRem(y)
	if len(m.abs) > 0 && m.neg != y.neg {
		q = q.Dec()
		m = m.Add(y)
	}
	return q, m
}

// Div returns floor(x/y). Note that this differs from Quo when the signs of x
// and y differ and the division is inexact.
func (x Int) Div(y Int) Int {
	q, _ := x.DivMod(y)
	return q
}

// Mod returns x modulo y. The result is zero or has the same sign as y, which
// differs from Go's % operator (see Rem for that).
//
// Mod panics with ErrDivisionByZero if y == 0.
func (x Int) Mod(y Int) Int {
	_, m := x.DivMod(y)
	return m
}

// Pow returns x**exp. Pow(0) is 1 for every x, including 0.
func (x Int) Pow(exp uint64) Int {
	if exp == 0 {
		return oneInt
	}
	var abs nat
	abs = abs.pow(x.abs, exp)
	return makeInt(x.neg && exp&1 == 1, abs)
}

// Sqrt returns floor(sqrt(x)). It panics with ErrNegativeSqrt if x < 0.
func (x Int) Sqrt() Int {
	if x.neg {
		panic(ErrNegativeSqrt)
	}
	var abs nat
	abs = abs.sqrt(x.abs)
	return makeInt(false, abs)
}

// Lsh returns x << n, applied to the magnitude: the sign of x is kept.
func (x Int) Lsh(n uint) Int {
	var abs nat
	abs = abs.lsh(x.abs, n)
	return makeInt(x.neg, abs)
}

// Rsh returns x >> n, applied to the magnitude: the sign of x is kept, so the
// result is truncated toward zero rather than floored.
func (x Int) Rsh(n uint) Int {
	var abs nat
	abs = abs.rsh(x.abs, n)
	return makeInt(x.neg, abs)
}

// BitLen returns the length of the magnitude of x in bits. BitLen of 0 is 0.
func (x Int) BitLen() int { return x.abs.bitLen() }

// TrailingZeros returns the number of consecutive least significant zero bits
// of the magnitude of x. It returns 0 for x == 0.
func (x Int) TrailingZeros() uint { return x.abs.trailingZeroBits() }

// Bit returns the value of bit i of the magnitude of x.
func (x Int) Bit(i uint) uint { return x.abs.bit(i) }

// AddAssign sets z = z + y and returns z.
func (z *Int) AddAssign(y Int) *Int {
	*z = z.Add(y)
	return z
}

// SubAssign sets z = z - y and returns z.
func (z *Int) SubAssign(y Int) *Int {
	*z = z.Sub(y)
	return z
}

// MulAssign sets z = z * y and returns z.
func (z *Int) MulAssign(y Int) *Int {
	*z = z.Mul(y)
	return z
}

// QuoAssign sets z = z.Quo(y) and returns z. It panics with
// ErrDivisionByZero if y == 0, in which case z is left unchanged.
func (z *Int) QuoAssign(y Int) *Int {
	*z = z.Quo(y)
	return z
}

// ModAssign sets z = z.Mod(y) and returns z. It panics with
// ErrDivisionByZero if y == 0, in which case z is left unchanged.
func (z *Int) ModAssign(y Int) *Int {
	*z = z.Mod(y)
	return z
}

// Cmp compares x to y and returns:
//
//	-1 if x <  y
//	 0 if x == y
//	+1 if x >  y
//
func (x Int) Cmp(y Int) (r int) {
	switch {
	case x.neg == y.neg:
		r = x.abs.cmp(y.abs)
		if x.neg {
			r = -r
		}
	case x.neg:
		r = -1
	default:
		r = 1
	}
	return r
}

// CmpAbs compares the magnitudes of x and y.
func (x Int) CmpAbs(y Int) int { return x.abs.cmp(y.abs) }

func (x Int) Equal(y Int) bool            { return x.Cmp(y) == 0 }
func (x Int) NotEqual(y Int) bool         { return x.Cmp(y) != 0 }
func (x Int) LessThan(y Int) bool         { return x.Cmp(y) < 0 }
func (x Int) LessOrEqualTo(y Int) bool    { return x.Cmp(y) <= 0 }
func (x Int) GreaterThan(y Int) bool      { return x.Cmp(y) > 0 }
func (x Int) GreaterOrEqualTo(y Int) bool { return x.Cmp(y) >= 0 }
