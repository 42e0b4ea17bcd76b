package bignum

import (
	"fmt"
)

var _ fmt.Formatter = Int{}

// Format implements fmt.Formatter. It accepts the formats 'b' (binary), 'o'
// (octal with 0 prefix), 'O' (octal with 0o prefix), 'd' (decimal), 'x'
// (lowercase hexadecimal) and 'X' (uppercase hexadecimal). 's' and 'v' are
// treated as 'd'.
//
// The '#' flag adds the 0b, 0 or 0x/0X prefix; '+' and ' ' control the sign,
// and width, precision, '-' and '0' work as they do for Go's integer types.
func (x Int) Format(s fmt.State, ch rune) {
	var base int
	switch ch {
	case 'b':
		base = 2
	case 'o', 'O':
		base = 8
	case 'd', 's', 'v':
		base = 10
	case 'x', 'X':
		base = 16
	default:
		fmt.Fprintf(s, "%%!%c(bignum.Int=%s)", ch, x.String())
		return
	}

	sign := ""
	switch {
	case x.neg:
		sign = "-"
	case s.Flag('+'):
		sign = "+"
	case s.Flag(' '):
		sign = " "
	}

	prefix := ""
	if s.Flag('#') {
		switch ch {
		case 'b':
			prefix = "0b"
		case 'o':
			prefix = "0"
		case 'x':
			prefix = "0x"
		case 'X':
			prefix = "0X"
		}
	}
	if ch == 'O' {
		prefix = "0o"
	}

	digits := x.abs.itoa(false, base, ch == 'X')

	var zeros int
	precision, precisionSet := s.Precision()
	if precisionSet {
		if len(digits) < precision {
			zeros = precision - len(digits)
		} else if len(x.abs) == 0 && precision == 0 {
			return // print nothing if zero value (x == 0) and zero precision ("." or ".0")
		}
	}

	length := len(sign) + len(prefix) + zeros + len(digits)
	if width, ok := s.Width(); ok && length < width {
		switch d := width - length; {
		case s.Flag('-'):
			writeMultiple(s, sign, 1)
			writeMultiple(s, prefix, 1)
			writeMultiple(s, "0", zeros)
			s.Write(digits)
			writeMultiple(s, " ", d)
			return

		case s.Flag('0') && !precisionSet:
			zeros = d

		default:
			writeMultiple(s, " ", d)
		}
	}

	writeMultiple(s, sign, 1)
	writeMultiple(s, prefix, 1)
	writeMultiple(s, "0", zeros)
	s.Write(digits)
}

func writeMultiple(s fmt.State, text string, count int) {
	if len(text) > 0 {
		b := []byte(text)
		for ; count > 0; count-- {
			s.Write(b)
		}
	}
}

func (x Int) MarshalText() ([]byte, error) {
	return x.abs.itoa(x.neg, 10, false), nil
}

func (x *Int) UnmarshalText(bts []byte) (err error) {
	v, err := IntFromString(string(bts), 10)
	if err != nil {
		return err
	}
	*x = v
	return nil
}

func (x Int) MarshalJSON() ([]byte, error) {
	return []byte(`"` + x.String() + `"`), nil
}

// UnmarshalJSON accepts a quoted decimal string or a bare JSON number without
// a fraction or exponent. A JSON null leaves x unchanged.
func (x *Int) UnmarshalJSON(bts []byte) (err error) {
	if string(bts) == "null" {
		return nil
	}
	if len(bts) > 0 && bts[0] == '"' {
		ln := len(bts)
		if ln < 2 || bts[ln-1] != '"' {
			return Error.New("invalid JSON %q", string(bts))
		}
		bts = bts[1 : ln-1]
	}

	v, err := IntFromString(string(bts), 10)
	if err != nil {
		return err
	}
	*x = v
	return nil
}

// MarshalBinary encodes x as the big-endian bytes of abs(x)<<1 | sign, where
// sign is 1 for negative numbers. Zero encodes as a single zero byte.
func (x Int) MarshalBinary() ([]byte, error) {
	var v nat
	v = v.lsh(x.abs, 1)
	if x.neg {
		v[0] |= 1
	}

	n := (v.bitLen() + 7) / 8
	if n == 0 {
		return []byte{0}, nil
	}

	out := make([]byte, n)
	for i := 0; i < n; i++ {
		out[n-1-i] = byte(v[i/8] >> (8 * uint(i%8)))
	}
	return out, nil
}

// UnmarshalBinary decodes the format produced by MarshalBinary. It returns
// ErrInvalidEncoding if bts is empty.
func (x *Int) UnmarshalBinary(bts []byte) error {
	if len(bts) == 0 {
		return ErrInvalidEncoding
	}

	n := len(bts)
	var v nat
	v = v.make((n + 7) / 8)
	v.clear()
	for i := 0; i < n; i++ {
		v[i/8] |= uint64(bts[n-1-i]) << (8 * uint(i%8))
	}
	v = v.norm()

	neg := len(v) > 0 && v[0]&1 == 1
	var abs nat
	abs = abs.rsh(v, 1)
	*x = makeInt(neg, abs)
	return nil
}
