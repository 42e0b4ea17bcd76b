package bignum

import (
	"fmt"

	"github.com/zeebo/errs"
)

// Error is the class of every error returned, or panicked with, by this
// package. Use Error.Has(err) to test for it.
var Error = errs.Class("bignum")

// These are used as panic values for precondition violations; they are never
// returned.
var (
	ErrDivisionByZero = Error.New("division by zero")
	ErrNegativeSqrt   = Error.New("square root of negative number")
	ErrInvalidBase    = Error.New("invalid base")
)

// ErrInvalidEncoding is returned by UnmarshalBinary.
var ErrInvalidEncoding = Error.New("invalid binary encoding")

// ParseError is returned (wrapped in the Error class) when text can not be
// parsed as an Int. Use errors.As to retrieve it.
type ParseError struct {
	Input  string
	Base   int
	Offset int // Byte offset of the offending character, or -1.
	Reason string
}

func (e *ParseError) Error() string {
	if e.Offset >= 0 {
		return fmt.Sprintf("cannot parse %q in base %d: %s at offset %d", e.Input, e.Base, e.Reason, e.Offset)
	}
	return fmt.Sprintf("cannot parse %q in base %d: %s", e.Input, e.Base, e.Reason)
}

func parseError(input string, base, offset int, reason string) error {
	return Error.Wrap(&ParseError{Input: input, Base: base, Offset: offset, Reason: reason})
}
