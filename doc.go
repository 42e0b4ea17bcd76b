/*
Package bignum provides an arbitrary-precision signed integer type (Int),
built on 64-bit limbs and used as a value type. It covers arithmetic
(Add, Sub, Mul, Pow, Sqrt, shifts and both truncated and floored division),
comparison, conversion to and from native integers, floats, big.Int and text
in bases 2 to 62. There is no GCD, modular exponentiation or bitwise logic.

Int is a value type; all operations return new values. The *Assign methods
are the exception: they replace the receiver's value and return the receiver
so calls can be chained. An Int never shares a buffer that it writes to, so
plain assignment copies safely.

Simple example:

	i1 := IntFromU64(math.MaxUint64)
	i2 := IntFromU64(math.MaxUint64)
	fmt.Println(i1.Mul(i2))
	// Output: 340282366920938463426481119284349108225

Int can be created from a variety of sources:

	IntFrom64(v int64) Int
	IntFrom32(v int32) Int
	IntFrom16(v int16) Int
	IntFrom8(v int8) Int
	IntFromInt(v int) Int
	IntFromU64(v uint64) Int
	IntFromLimbs(neg bool, limbs []uint64) Int
	IntFromString(s string, base int) (out Int, err error)
	IntFromBigInt(v *big.Int) Int
	IntFromFloat32(f float32) (out Int, inRange bool)
	IntFromFloat64(f float64) (out Int, inRange bool)

Division comes in two flavours. Quo, Rem and QuoRem truncate towards zero like
Go's / and % operators. Div, Mod and DivMod floor, so Mod always has the sign
of the divisor. Division by zero panics with ErrDivisionByZero.

Int supports the following formatting and marshalling interfaces:

	- fmt.Formatter
	- fmt.Stringer
	- json.Marshaler
	- json.Unmarshaler
	- encoding.TextMarshaler
	- encoding.TextUnmarshaler
	- encoding.BinaryMarshaler
	- encoding.BinaryUnmarshaler

The word-level primitives the arithmetic is built on live in the bitops
subpackage. Build with the purego tag to use the portable implementations.
*/
package bignum
