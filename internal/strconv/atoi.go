package strconv

import (
	"reflect"
	"strconv"
)

type Integer interface {
	~int | ~int8 | ~int16 | ~int32 | ~int64 | ~uint | ~uint8 | ~uint16 | ~uint32 | ~uint64 | ~uintptr
}

// Signed reports whether T is a signed integer type.
func Signed[T Integer]() bool {
	var x T
	x = ^x // -1 if T is signed, 0xff..ff if T is unsigned
	return x == x>>1
}

// BitSize returns the width of T in bits.
func BitSize[T Integer]() int {
	var x T
	return reflect.TypeOf(x).Bits()
}

// ParseInteger parses a string s in the given base and returns
// a value of type T. T must be an integer type (signed or unsigned).
// The base argument must be between 2 and 36, or be 0.
//
// Errors are the *strconv.NumError values returned by the strconv package,
// with ErrRange reported for values outside the range of T.
//
// Inspired by discussion in issue https://github.com/golang/go/issues/76223.
func ParseInteger[T Integer](s string, base int) (res T, err error) {
	if Signed[T]() {
		var i int64
		i, err = strconv.ParseInt(s, base, BitSize[T]())
		res = T(i)
	} else {
		var u uint64
		u, err = strconv.ParseUint(s, base, BitSize[T]())
		res = T(u)
	}
	return
}

// FormatInteger returns the string representation of v in the given base,
// for 2 <= base <= 36. Digits above 9 use lower-case letters.
func FormatInteger[T Integer](v T, base int) string {
	if Signed[T]() {
		return strconv.FormatInt(int64(v), base)
	}
	return strconv.FormatUint(uint64(v), base)
}
