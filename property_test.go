package bignum

import (
	"testing"

	"github.com/leanovate/gopter"
	"github.com/leanovate/gopter/gen"
	"github.com/leanovate/gopter/prop"
)

// genInt builds signed Ints from a random limb slice. Limb counts are bounded
// by the MaxSize of the test parameters.
func genInt() gopter.Gen {
	return gopter.CombineGens(gen.Bool(), gen.SliceOf(gen.UInt64())).Map(func(v []interface{}) Int {
		return IntFromLimbs(v[0].(bool), v[1].([]uint64))
	})
}

func genNonZeroInt() gopter.Gen {
	return genInt().Map(func(v Int) Int {
		if v.IsZero() {
			return oneInt
		}
		return v
	})
}

func propertyParams() *gopter.TestParameters {
	parameters := gopter.DefaultTestParameters()
	parameters.MinSuccessfulTests = 300
	parameters.MaxSize = 8
	return parameters
}

func TestIntArithmeticProperties(t *testing.T) {
	properties := gopter.NewProperties(propertyParams())

	properties.Property("addition is commutative", prop.ForAll(
		func(a, b Int) bool {
			return a.Add(b).Equal(b.Add(a))
		},
		genInt(), genInt(),
	))

	properties.Property("multiplication is commutative", prop.ForAll(
		func(a, b Int) bool {
			return a.Mul(b).Equal(b.Mul(a))
		},
		genInt(), genInt(),
	))

	properties.Property("addition is associative", prop.ForAll(
		func(a, b, c Int) bool {
			return a.Add(b).Add(c).Equal(a.Add(b.Add(c)))
		},
		genInt(), genInt(), genInt(),
	))

	properties.Property("multiplication distributes over addition", prop.ForAll(
		func(a, b, c Int) bool {
			return a.Mul(b.Add(c)).Equal(a.Mul(b).Add(a.Mul(c)))
		},
		genInt(), genInt(), genInt(),
	))

	properties.Property("a + -a is canonical zero", prop.ForAll(
		func(a Int) bool {
			z := a.Add(a.Neg())
			return z.IsZero() && z.Sign() == 0 && checkCanonical(z) == nil
		},
		genInt(),
	))

	properties.Property("a - b + b == a", prop.ForAll(
		func(a, b Int) bool {
			return a.Sub(b).Add(b).Equal(a)
		},
		genInt(), genInt(),
	))

	properties.Property("abs is never negative", prop.ForAll(
		func(a Int) bool {
			return a.Abs().Sign() >= 0 && a.Abs().CmpAbs(a) == 0
		},
		genInt(),
	))

	properties.Property("parity survives negation", prop.ForAll(
		func(a Int) bool {
			return a.IsEven() == a.Neg().IsEven() && a.IsEven() != a.IsOdd()
		},
		genInt(),
	))

	properties.Property("shifts invert", prop.ForAll(
		func(a Int, n uint) bool {
			return a.Lsh(n).Rsh(n).Equal(a)
		},
		genInt(), gen.UIntRange(0, 300),
	))

	properties.Property("AsInt64 keeps the sign of negative values", prop.ForAll(
		func(a Int) bool {
			v := a.AsInt64()
			if a.IsInt64() && IntFrom64(v).Cmp(a) != 0 {
				return false
			}
			return (a.Sign() < 0) == (v < 0)
		},
		genInt(),
	))

	properties.TestingRun(t)
}

func TestIntDivisionProperties(t *testing.T) {
	properties := gopter.NewProperties(propertyParams())

	properties.Property("truncated: q*b + r == a, |r| < |b|, sign(r) follows a", prop.ForAll(
		func(a, b Int) bool {
			q, r := a.QuoRem(b)
			if !q.Mul(b).Add(r).Equal(a) {
				return false
			}
			if r.CmpAbs(b) >= 0 {
				return false
			}
			return r.IsZero() || r.Sign() == a.Sign()
		},
		genInt(), genNonZeroInt(),
	))

	properties.Property("floored: q*b + m == a, |m| < |b|, sign(m) follows b", prop.ForAll(
		func(a, b Int) bool {
			q, m := a.DivMod(b)
			if !q.Mul(b).Add(m).Equal(a) {
				return false
			}
			if m.CmpAbs(b) >= 0 {
				return false
			}
			return m.IsZero() || m.Sign() == b.Sign()
		},
		genInt(), genNonZeroInt(),
	))

	properties.Property("single results match the pairs", prop.ForAll(
		func(a, b Int) bool {
			q, r := a.QuoRem(b)
			d, m := a.DivMod(b)
			return q.Equal(a.Quo(b)) && r.Equal(a.Rem(b)) &&
				d.Equal(a.Div(b)) && m.Equal(a.Mod(b))
		},
		genInt(), genNonZeroInt(),
	))

	properties.Property("(a*b)/b == a", prop.ForAll(
		func(a, b Int) bool {
			q, r := a.Mul(b).QuoRem(b)
			return q.Equal(a) && r.IsZero()
		},
		genInt(), genNonZeroInt(),
	))

	properties.TestingRun(t)
}

func TestIntSqrtProperties(t *testing.T) {
	properties := gopter.NewProperties(propertyParams())

	properties.Property("s*s <= a < (s+1)*(s+1)", prop.ForAll(
		func(a Int) bool {
			a = a.Abs()
			s := a.Sqrt()
			s1 := s.Inc()
			return s.Mul(s).LessOrEqualTo(a) && s1.Mul(s1).GreaterThan(a)
		},
		genInt(),
	))

	properties.TestingRun(t)
}

func TestIntTextProperties(t *testing.T) {
	properties := gopter.NewProperties(propertyParams())

	properties.Property("text round trips in every base", prop.ForAll(
		func(a Int, base int) bool {
			back, err := IntFromString(a.Text(base), base)
			return err == nil && back.Equal(a) && checkCanonical(back) == nil
		},
		genInt(), gen.IntRange(2, MaxBase),
	))

	properties.Property("binary round trips", prop.ForAll(
		func(a Int) bool {
			bts, err := a.MarshalBinary()
			if err != nil {
				return false
			}
			var back Int
			return back.UnmarshalBinary(bts) == nil && back.Equal(a)
		},
		genInt(),
	))

	properties.Property("big.Int round trips", prop.ForAll(
		func(a Int) bool {
			b := a.AsBigInt()
			return b.String() == a.String() && IntFromBigInt(b).Equal(a)
		},
		genInt(),
	))

	properties.TestingRun(t)
}
