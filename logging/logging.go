package logging

import (
	"fmt"
	"log/slog"
	"time"
)

// the log entry used in slog with correct types and json mapping
type LogEntry struct {
	Time  time.Time `json:"time"`
	Level string    `json:"level"`
	Msg   string    `json:"msg"`
	Err   string    `json:"err"`
	Field string    `json:"field"`
	Input string    `json:"input"`
	Radix string    `json:"radix"`
}

// enum: used to get type safety on fields when logging
const (
	KeyErr   string = "err"
	KeyField string = "field"
	KeyInput string = "input"
	KeyRadix string = "radix"
)

// Err returns an attribute holding the error message.
func Err(err error) slog.Attr {
	if err == nil {
		return slog.String(KeyErr, "")
	}
	return slog.String(KeyErr, err.Error())
}

// Field returns an attribute naming the metadata key or field being parsed.
func Field(name string) slog.Attr {
	return slog.String(KeyField, name)
}

// Input returns an attribute holding the raw text that was parsed.
func Input(input string) slog.Attr {
	return slog.String(KeyInput, input)
}

// Radix returns an attribute holding the radix selected for the input.
func Radix(radix fmt.Stringer) slog.Attr {
	return slog.String(KeyRadix, radix.String())
}
