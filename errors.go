package multiparse

import (
	"errors"
	"strconv"
)

// ErrInvalidDigit is reported when the digit sequence contains a character
// that is not a digit of the selected radix.
var ErrInvalidDigit = errors.New("invalid digit")

// ErrEmpty is reported when there are no digits to parse, either because the
// input is blank or because nothing follows the prefix.
var ErrEmpty = errors.New("empty digit sequence")

// ErrOverflow is reported when the value lies outside the range of the
// target type, above its maximum or below its minimum.
var ErrOverflow = errors.New("value out of range")

// NumError records a failed conversion.
// Err is one of ErrInvalidDigit, ErrEmpty or ErrOverflow.
type NumError struct {
	Func  string // the failing function (Parse, ParseList, ...)
	Input string // the input as given, before normalization
	Radix Radix  // the radix selected from the input
	Err   error
}

func (e *NumError) Error() string {
	return "multiparse." + e.Func + ": parsing " + strconv.Quote(e.Input) + " as " + e.Radix.String() + ": " + e.Err.Error()
}

func (e *NumError) Unwrap() error {
	return e.Err
}

// classify maps errors returned by the strconv package onto the sentinel errors.
func classify(err error) error {
	if errors.Is(err, strconv.ErrRange) {
		return ErrOverflow
	}
	return ErrInvalidDigit
}
