package multiparse

import (
	intconv "github.com/relab/multiparse/internal/strconv"
)

// Integer is the set of fixed-width integer types a value can be parsed into.
type Integer = intconv.Integer

// Text is the set of types that provide read-only access to a string.
// Byte slices are never modified.
type Text interface {
	~string | ~[]byte
}

// Parse interprets s as an integer of type T.
//
// Surrounding white space is ignored and letters are matched without regard
// to case. The radix is detected from the prefix as described by DetectRadix.
// A leading sign is accepted for decimal values only, and '-' only when T
// is signed.
//
// The returned error, if any, is a *NumError wrapping ErrEmpty,
// ErrInvalidDigit or ErrOverflow.
func Parse[T Integer, S Text](s S) (T, error) {
	return parse[T]("Parse", string(s))
}

// MustParse is like Parse but panics if s cannot be parsed.
// It simplifies initialization of package-level variables.
func MustParse[T Integer, S Text](s S) T {
	v, err := parse[T]("MustParse", string(s))
	if err != nil {
		panic(err)
	}
	return v
}

func parse[T Integer](fn, input string) (T, error) {
	radix, digits := DetectRadix(input)
	if digits == "" {
		return 0, &NumError{Func: fn, Input: input, Radix: radix, Err: ErrEmpty}
	}
	if radix != Decimal && (digits[0] == '-' || digits[0] == '+') {
		// signed literals are only accepted in decimal notation
		return 0, &NumError{Func: fn, Input: input, Radix: radix, Err: ErrInvalidDigit}
	}
	if digits[0] == '+' && !intconv.Signed[T]() {
		// strconv accepts a plus sign for signed types only
		digits = digits[1:]
		if digits == "" {
			return 0, &NumError{Func: fn, Input: input, Radix: radix, Err: ErrInvalidDigit}
		}
	}
	v, err := intconv.ParseInteger[T](digits, radix.Base())
	if err != nil {
		return 0, &NumError{Func: fn, Input: input, Radix: radix, Err: classify(err)}
	}
	return v, nil
}
