package multiparse

import (
	"strconv"
	"strings"
)

// Radix is the numeric base used to interpret a digit sequence.
type Radix int

// Supported radixes. The value of each constant is its base.
const (
	Binary      Radix = 2
	Octal       Radix = 8
	Decimal     Radix = 10
	Hexadecimal Radix = 16
)

// Base returns the numeric base of r.
func (r Radix) Base() int {
	return int(r)
}

// Prefix returns the literal prefix that selects r.
// Decimal has no prefix.
func (r Radix) Prefix() string {
	switch r {
	case Binary:
		return "0b"
	case Octal:
		return "0o"
	case Hexadecimal:
		return "0x"
	}
	return ""
}

func (r Radix) String() string {
	switch r {
	case Binary:
		return "binary"
	case Octal:
		return "octal"
	case Decimal:
		return "decimal"
	case Hexadecimal:
		return "hexadecimal"
	}
	return "Radix(" + strconv.Itoa(int(r)) + ")"
}

func (r Radix) valid() bool {
	switch r {
	case Binary, Octal, Decimal, Hexadecimal:
		return true
	}
	return false
}

// prefixed lists the radixes selected by a prefix, in match order.
var prefixed = [...]Radix{Binary, Octal, Hexadecimal}

// DetectRadix normalizes s and returns the radix selected by its prefix
// together with the digit sequence that follows the prefix.
// Without a recognized prefix the radix is Decimal and the digit sequence
// is the whole normalized value. At most one prefix is stripped.
func DetectRadix[S Text](s S) (Radix, string) {
	value := normalize(string(s))
	for _, r := range prefixed {
		if digits, ok := strings.CutPrefix(value, r.Prefix()); ok {
			return r, digits
		}
	}
	return Decimal, value
}

// normalize trims surrounding white space and lower-cases ASCII letters.
func normalize(s string) string {
	return strings.Map(toLowerASCII, strings.TrimSpace(s))
}

func toLowerASCII(r rune) rune {
	if 'A' <= r && r <= 'Z' {
		return r + ('a' - 'A')
	}
	return r
}
