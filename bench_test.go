package bignum

import (
	"fmt"
	"math/big"
	"testing"
)

var (
	BenchBigIntResult *big.Int
	BenchBoolResult   bool
	BenchFloatResult  float64
	BenchIntResult    int
	BenchStringResult string
	BenchBignumResult Int
)

// benchSizes are operand sizes in limbs.
var benchSizes = []int{1, 2, 4, 16, 64}

func benchOperands(limbs int) (Int, Int) {
	a := IntFromLimbs(false, repeatLimb(0x9e3779b97f4a7c15, limbs))
	b := IntFromLimbs(true, repeatLimb(0xc2b2ae3d27d4eb4f, limbs))
	return a, b
}

func repeatLimb(v uint64, n int) []uint64 {
	out := make([]uint64, n)
	for i := range out {
		out[i] = v + uint64(i)
	}
	return out
}

func BenchmarkIntAdd(b *testing.B) {
	for _, n := range benchSizes {
		x, y := benchOperands(n)
		b.Run(fmt.Sprintf("bignum/%d", n), func(b *testing.B) {
			for i := 0; i < b.N; i++ {
				BenchBignumResult = x.Add(y)
			}
		})
		bx, by := x.AsBigInt(), y.AsBigInt()
		b.Run(fmt.Sprintf("big/%d", n), func(b *testing.B) {
			for i := 0; i < b.N; i++ {
				BenchBigIntResult = new(big.Int).Add(bx, by)
			}
		})
	}
}

func BenchmarkIntMul(b *testing.B) {
	for _, n := range benchSizes {
		x, y := benchOperands(n)
		b.Run(fmt.Sprintf("bignum/%d", n), func(b *testing.B) {
			for i := 0; i < b.N; i++ {
				BenchBignumResult = x.Mul(y)
			}
		})
		bx, by := x.AsBigInt(), y.AsBigInt()
		b.Run(fmt.Sprintf("big/%d", n), func(b *testing.B) {
			for i := 0; i < b.N; i++ {
				BenchBigIntResult = new(big.Int).Mul(bx, by)
			}
		})
	}
}

func BenchmarkIntQuo(b *testing.B) {
	for _, n := range benchSizes {
		x, _ := benchOperands(n * 2)
		_, y := benchOperands(n)
		b.Run(fmt.Sprintf("bignum/%d", n), func(b *testing.B) {
			for i := 0; i < b.N; i++ {
				BenchBignumResult = x.Quo(y)
			}
		})
		bx, by := x.AsBigInt(), y.AsBigInt()
		b.Run(fmt.Sprintf("big/%d", n), func(b *testing.B) {
			for i := 0; i < b.N; i++ {
				BenchBigIntResult = new(big.Int).Quo(bx, by)
			}
		})
	}
}

func BenchmarkIntCmp(b *testing.B) {
	b.Run("equal", func(b *testing.B) {
		x, _ := benchOperands(4)
		y := x.Clone()
		for i := 0; i < b.N; i++ {
			BenchIntResult = x.Cmp(y)
		}
	})
	b.Run("lessthan", func(b *testing.B) {
		x, y := benchOperands(4)
		for i := 0; i < b.N; i++ {
			BenchBoolResult = y.LessThan(x)
		}
	})
}

func BenchmarkIntSqrt(b *testing.B) {
	for _, n := range benchSizes {
		x, _ := benchOperands(n)
		b.Run(fmt.Sprintf("%d", n), func(b *testing.B) {
			for i := 0; i < b.N; i++ {
				BenchBignumResult = x.Sqrt()
			}
		})
	}
}

func BenchmarkIntString(b *testing.B) {
	for _, n := range benchSizes {
		x, _ := benchOperands(n)
		b.Run(fmt.Sprintf("bignum/%d", n), func(b *testing.B) {
			for i := 0; i < b.N; i++ {
				BenchStringResult = x.String()
			}
		})
		bx := x.AsBigInt()
		b.Run(fmt.Sprintf("big/%d", n), func(b *testing.B) {
			for i := 0; i < b.N; i++ {
				BenchStringResult = bx.String()
			}
		})
	}
}

func BenchmarkIntFromString(b *testing.B) {
	x, _ := benchOperands(16)
	s := x.String()
	for i := 0; i < b.N; i++ {
		BenchBignumResult, _ = IntFromString(s, 10)
	}
}

func BenchmarkIntAsFloat64(b *testing.B) {
	x, _ := benchOperands(4)
	for i := 0; i < b.N; i++ {
		BenchFloatResult = x.AsFloat64()
	}
}

func BenchmarkIntFromBigInt(b *testing.B) {
	x, _ := benchOperands(4)
	bx := x.AsBigInt()
	for i := 0; i < b.N; i++ {
		BenchBignumResult = IntFromBigInt(bx)
	}
}

func BenchmarkIntAsBigInt(b *testing.B) {
	x, _ := benchOperands(4)
	for i := 0; i < b.N; i++ {
		BenchBigIntResult = x.AsBigInt()
	}
}
