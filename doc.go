// Package multiparse parses textual integers written in binary, octal,
// decimal or hexadecimal notation into fixed-width Go integer types.
//
// The radix is selected from a two-character prefix after leading and
// trailing white space is trimmed and letters are lower-cased:
//
//	0b  binary       "0b1010"
//	0o  octal        "0o755"
//	0x  hexadecimal  "0xFF"
//	    decimal      "-42"
//
// Only decimal values may carry a sign. The target type is chosen with a
// type argument, and values outside its range are rejected:
//
//	mode, err := multiparse.Parse[uint16]("0o755")
//	b, err := multiparse.Parse[uint8]("0xFFF") // errors.Is(err, multiparse.ErrOverflow)
//
// All functions are pure and safe for concurrent use.
package multiparse
