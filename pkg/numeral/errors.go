package numeral

import (
	"errors"
	"fmt"
)

const (
	// MinValue is the smallest encodable integer.
	MinValue = 1
	// MaxValue is the largest encodable integer.
	MaxValue = 3999
)

// Sentinel errors matched through errors.Is.
var (
	ErrOutOfRange    = errors.New("value out of representable range")
	ErrInvalidSymbol = errors.New("invalid numeral symbol")
	ErrMalformed     = errors.New("malformed numeral")
	ErrEmpty         = errors.New("empty numeral")
)

// RangeError reports an integer that cannot be written as a numeral.
type RangeError struct {
	Value int
}

func (e *RangeError) Error() string {
	return fmt.Sprintf("integer must be >%d and <%d, got %d", MinValue-1, MaxValue+1, e.Value)
}

// Unwrap returns ErrOutOfRange.
func (e *RangeError) Unwrap() error { return ErrOutOfRange }

// InvalidSymbolError reports the first character that is not a numeral letter.
type InvalidSymbolError struct {
	Symbol rune
	Offset int
}

func (e *InvalidSymbolError) Error() string {
	return fmt.Sprintf("%q is not a valid Roman numeral", e.Symbol)
}

// Unwrap returns ErrInvalidSymbol.
func (e *InvalidSymbolError) Unwrap() error { return ErrInvalidSymbol }

// MalformedError reports a symbol-valid numeral that is not canonical.
// Canonical is empty when the decoded value has no numeral form.
type MalformedError struct {
	Input     string
	Value     int
	Canonical string
}

func (e *MalformedError) Error() string {
	if e.Canonical == "" {
		return fmt.Sprintf("%s is not a well-formed numeral (decodes to %d)", e.Input, e.Value)
	}
	return fmt.Sprintf("%s is not a well-formed numeral, did you mean %s?", e.Input, e.Canonical)
}

// Unwrap returns ErrMalformed.
func (e *MalformedError) Unwrap() error { return ErrMalformed }
