package bignum

import (
	"math"
)

const (
	limbBits = 64
	intSize  = 32 << (^uint(0) >> 63) // 32 or 64

	// MaxBase is the largest base accepted by IntFromString and Text.
	MaxBase = 62

	maxUint64 = math.MaxUint64
	maxInt64  = math.MaxInt64

	// wrapUint64Float is 1 << 64:
	wrapUint64Float = 0x1p64

	// maxFloat32Overflow is the smallest power of two a float32 can't hold.
	maxFloat32Overflow = 0x1p128
)

var (
	natOne = nat{1}

	oneInt = Int{abs: natOne}
)
