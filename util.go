package bignum

type RandSource interface {
	Uint64() uint64
}

// RandInt generates a non-negative random integer of at most limbs 64-bit
// limbs from an external source. The result may have fewer limbs if the most
// significant ones come out as zero.
func RandInt(source RandSource, limbs int) (out Int) {
	if limbs <= 0 {
		return out
	}
	var abs nat
	abs = abs.make(limbs)
	for i := range abs {
		abs[i] = source.Uint64()
	}
	return makeInt(false, abs)
}

// Difference subtracts the smaller of a and b from the larger, which is
// the absolute value of a - b.
func Difference(a, b Int) Int {
	if a.Cmp(b) >= 0 {
		return a.Sub(b)
	}
	return b.Sub(a)
}

func Larger(a, b Int) Int {
	if a.Cmp(b) < 0 {
		return b
	}
	return a
}

func Smaller(a, b Int) Int {
	if a.Cmp(b) > 0 {
		return b
	}
	return a
}
