package multiparse

import (
	intconv "github.com/relab/multiparse/internal/strconv"
)

// Format returns v written in radix r, including the radix prefix.
// Negative values are always written in decimal, since Parse accepts a
// sign only on decimal values. Format panics if r is not a supported radix.
//
// For every v of type T, Parse[T](Format(v, r)) returns v.
func Format[T Integer](v T, r Radix) string {
	if !r.valid() {
		panic("multiparse: unsupported radix " + r.String())
	}
	if v < 0 || r == Decimal {
		return intconv.FormatInteger(v, 10)
	}
	return r.Prefix() + intconv.FormatInteger(v, r.Base())
}
