package numeral

import (
	"errors"
	"math"
	"strconv"
	"strings"
)

// Kind classifies raw input.
type Kind int

const (
	// KindNumber is decimal input to be encoded.
	KindNumber Kind = iota
	// KindNumeral is anything else, to be decoded.
	KindNumeral
)

func (k Kind) String() string {
	switch k {
	case KindNumber:
		return "number"
	case KindNumeral:
		return "numeral"
	default:
		return "unknown"
	}
}

// Value is raw input classified as a number or a numeral.
type Value struct {
	kind    Kind
	number  int
	numeral string
}

// ParseValue classifies s. Surrounding whitespace is ignored. An optional
// sign followed only by ASCII digits is a number, everything else is a
// numeral. Numbers too large for int saturate so that encoding them fails
// with *RangeError.
func ParseValue(s string) Value {
	s = strings.TrimSpace(s)
	if !isInteger(s) {
		return Value{kind: KindNumeral, numeral: s}
	}

	n, err := strconv.Atoi(s)
	if err != nil && errors.Is(err, strconv.ErrRange) {
		n = math.MaxInt
		if s[0] == '-' {
			n = math.MinInt
		}
	}
	return Value{kind: KindNumber, number: n}
}

// Kind reports how the input was classified.
func (v Value) Kind() Kind { return v.kind }

// Number returns the parsed integer; valid only for KindNumber.
func (v Value) Number() int { return v.number }

// Numeral returns the trimmed input; valid only for KindNumeral.
func (v Value) Numeral() string { return v.numeral }

func isInteger(s string) bool {
	if s == "" {
		return false
	}
	if s[0] == '+' || s[0] == '-' {
		s = s[1:]
	}
	if s == "" {
		return false
	}
	for i := 0; i < len(s); i++ {
		if s[i] < '0' || s[i] > '9' {
			return false
		}
	}
	return true
}
