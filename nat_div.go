package bignum

import (
	"math/bits"

	"github.com/shabbyrobe/go-bignum/bitops"
)

// div returns q = u / v and r = u % v, truncated. z and z2 are scratch space
// for q and r respectively. It panics with ErrDivisionByZero if v == 0.
func (z nat) div(z2, u, v nat) (q, r nat) {
	if len(v) == 0 {
		panic(ErrDivisionByZero)
	}

	if u.cmp(v) < 0 {
		q = z[:0]
		r = z2.set(u)
		return q, r
	}

	if len(v) == 1 {
		var r2 uint64
		q, r2 = z.divW(u, v[0])
		r = z2.setUint64(r2)
		return q, r
	}

	if alias(z, u) || alias(z, v) {
		z = nil
	}
	if alias(z2, u) || alias(z2, v) {
		z2 = nil
	}
	return z.divLarge(z2, u, v)
}

// divW returns q = x / y and r = x % y for a single limb divisor.
func (z nat) divW(x nat, y uint64) (q nat, r uint64) {
	m := len(x)
	switch {
	case y == 0:
		panic(ErrDivisionByZero)
	case y == 1:
		q = z.set(x)
		return q, 0
	case m == 0:
		q = z[:0]
		return q, 0
	}

	z = z.make(m)
	r = divWVW(z, 0, x, y)
	q = z.norm()
	return q, r
}

// divLarge implements Knuth's Algorithm D (TAOCP vol. 2, 4.3.1) for
// len(vIn) >= 2 and uIn >= vIn. z and u2 must not alias uIn or vIn.
func (z nat) divLarge(u2, uIn, vIn nat) (q, r nat) {
	n := len(vIn)
	m := len(uIn) - n

	// D1. Normalise so the divisor's top limb has its high bit set; the
	// dividend gets the same shift and an extra limb for the overflow.
	shift := uint(bitops.LeadingZeroCountNonZero(vIn[n-1]))
	v := nat(nil).make(n)
	shlVU(v, vIn, shift)

	u := u2.make(len(uIn) + 1)
	u[len(uIn)] = shlVU(u[0:len(uIn)], uIn, shift)

	q = z.make(m + 1)
	qhatv := nat(nil).make(n + 1)

	vn1, vn2 := v[n-1], v[n-2]
	for j := m; j >= 0; j-- {
		// D3. Estimate qhat from the top two limbs of the running remainder
		// and the top limb of the divisor, then correct it with the second
		// limb. After correction qhat is at most one too large.
		qhat := uint64(maxUint64)
		if ujn := u[j+n]; ujn != vn1 {
			var rhat uint64
			qhat, rhat = bits.Div64(ujn, u[j+n-1], vn1)

			x1, x2 := bits.Mul64(qhat, vn2)
			ujn2 := u[j+n-2]
			for greaterThan(x1, x2, rhat, ujn2) {
				qhat--
				prevRhat := rhat
				rhat += vn1
				if rhat < prevRhat {
					break // rhat overflowed, so qhat*vn2 can no longer exceed it
				}
				x1, x2 = bits.Mul64(qhat, vn2)
			}
		}

		// D4. Multiply and subtract.
		qhatv[n] = mulAddVWW(qhatv[0:n], v, qhat, 0)
		c := subVV(u[j:j+len(qhatv)], u[j:], qhatv)

		// D5, D6. qhat was one too large: add the divisor back.
		if c != 0 {
			c := addVV(u[j:j+n], u[j:], v)
			u[j+n] += c
			qhat--
		}

		q[j] = qhat
	}

	q = q.norm()

	// D8. Unnormalise the remainder.
	shrVU(u, u, shift)
	r = u.norm()

	return q, r
}
