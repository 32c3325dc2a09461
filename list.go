package multiparse

import (
	"errors"
	"fmt"
	"strings"
)

// ErrEmptySeparator is returned by ParseList when sep is empty.
var ErrEmptySeparator = errors.New("multiparse: empty separator")

// ParseList splits s around each instance of sep and parses every element
// with Parse. Elements may use different radixes, e.g. "0x10, 0b11, 7".
// A blank s yields an empty slice. An empty sep is rejected with
// ErrEmptySeparator.
//
// On failure the error identifies the offending element and wraps its
// *NumError.
func ParseList[T Integer, S Text](s S, sep string) ([]T, error) {
	if sep == "" {
		return nil, ErrEmptySeparator
	}
	input := string(s)
	if strings.TrimSpace(input) == "" {
		return []T{}, nil
	}
	parts := strings.Split(input, sep)
	out := make([]T, len(parts))
	for i, p := range parts {
		v, err := parse[T]("ParseList", p)
		if err != nil {
			return nil, fmt.Errorf("element %d: %w", i, err)
		}
		out[i] = v
	}
	return out, nil
}
