package bignum

// IntFromString creates an Int from a string in the given base.
//
// The base must be 0 or between 2 and MaxBase. An optional '+' or '-' may
// precede the digits. For base 0 the base is taken from the prefix: "0x" or
// "0X" selects 16, "0b" or "0B" selects 2, "0o" or "0O" selects 8, a "0"
// followed by more digits selects 8, and anything else is decimal. No prefix is
// accepted when the base is given explicitly.
//
// For bases up to 36, letters may be upper or lower case. For bases 37 to 62,
// upper case letters are the digits 10 to 35 and lower case letters are 36 to
// 61.
//
// Whitespace and underscores are not permitted. On failure the returned error
// wraps a *ParseError and the Int is zero.
func IntFromString(s string, base int) (out Int, err error) {
	if base != 0 && !validBase(base) {
		return out, parseError(s, base, -1, "invalid base")
	}

	i := 0
	neg := false
	if len(s) > 0 && (s[0] == '+' || s[0] == '-') {
		neg = s[0] == '-'
		i++
	}

	if base == 0 {
		base = 10
		if i+1 < len(s) && s[i] == '0' {
			switch s[i+1] {
			case 'x', 'X':
				base, i = 16, i+2
			case 'b', 'B':
				base, i = 2, i+2
			case 'o', 'O':
				base, i = 8, i+2
			default:
				base, i = 8, i+1
			}
		}
	}

	if i >= len(s) {
		return out, parseError(s, base, i, "no digits")
	}

	var abs nat
	abs, bad := abs.scan(s[i:], base)
	if bad >= 0 {
		return out, parseError(s, base, i+bad, "invalid digit")
	}
	return makeInt(neg, abs), nil
}

// MustIntFromString is like IntFromString but panics if s can not be parsed.
// It simplifies safe initialisation of Int values from literals.
func MustIntFromString(s string, base int) Int {
	out, err := IntFromString(s, base)
	if err != nil {
		panic(err)
	}
	return out
}

// Text returns the string representation of x in the given base, which must
// be between 2 and MaxBase. Bases up to 36 use lower case letters; larger
// bases use the digits 0-9, A-Z, a-z. Text panics with ErrInvalidBase if the
// base is out of range.
func (x Int) Text(base int) string {
	return string(x.abs.itoa(x.neg, base, false))
}

// Append appends the string representation of x, as generated by
// x.Text(base), to dst and returns the extended buffer.
func (x Int) Append(dst []byte, base int) []byte {
	return append(dst, x.abs.itoa(x.neg, base, false)...)
}

func (x Int) String() string {
	return x.Text(10)
}
