// Package convert wires the numeral codec to user input for the CLI and the
// HTTP service.
package convert

import (
	"fmt"
	"strconv"

	"github.com/leapstack-labs/roman/pkg/numeral"
	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

// Result is the outcome of a single conversion.
type Result struct {
	Input  string `json:"input"`
	Kind   string `json:"kind"`
	Output string `json:"output"`
}

// Row is one line of a conversion table.
type Row struct {
	Number  int    `json:"number"`
	Numeral string `json:"numeral"`
}

// Converter dispatches input to the encoder or the decoder.
type Converter struct {
	strict   bool
	foldCase bool
}

// Option configures a Converter.
type Option func(*Converter)

// WithStrict rejects non-canonical numerals.
func WithStrict(strict bool) Option {
	return func(c *Converter) { c.strict = strict }
}

// WithFoldCase accepts lower- and mixed-case numerals.
func WithFoldCase(fold bool) Option {
	return func(c *Converter) { c.foldCase = fold }
}

// New creates a Converter. The zero configuration matches numeral.Decode:
// lenient and case-sensitive.
func New(opts ...Option) *Converter {
	c := &Converter{}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// Convert encodes input when it is an integer and decodes it otherwise.
func (c *Converter) Convert(input string) (Result, error) {
	v := numeral.ParseValue(input)
	res := Result{Input: input, Kind: v.Kind().String()}

	switch v.Kind() {
	case numeral.KindNumber:
		s, err := numeral.Encode(v.Number())
		if err != nil {
			return res, err
		}
		res.Output = s
	default:
		n, err := c.decode(v.Numeral())
		if err != nil {
			return res, err
		}
		res.Output = strconv.Itoa(n)
	}
	return res, nil
}

func (c *Converter) decode(s string) (int, error) {
	if c.foldCase {
		// Casers are stateful and not safe to share across goroutines.
		s = cases.Upper(language.Und).String(s)
	}
	if c.strict {
		return numeral.DecodeStrict(s)
	}
	return numeral.Decode(s)
}

// Table returns rows for every integer in [start, end].
func (c *Converter) Table(start, end int) ([]Row, error) {
	if start < numeral.MinValue || start > numeral.MaxValue {
		return nil, &numeral.RangeError{Value: start}
	}
	if end < numeral.MinValue || end > numeral.MaxValue {
		return nil, &numeral.RangeError{Value: end}
	}
	if end < start {
		return nil, fmt.Errorf("table end %d is before start %d", end, start)
	}

	rows := make([]Row, 0, end-start+1)
	for n := start; n <= end; n++ {
		rows = append(rows, Row{Number: n, Numeral: numeral.MustEncode(n)})
	}
	return rows, nil
}
