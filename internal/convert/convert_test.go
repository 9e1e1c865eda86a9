package convert

import (
	"sync"
	"testing"

	"github.com/leapstack-labs/roman/pkg/numeral"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestConverter_Convert(t *testing.T) {
	tests := []struct {
		name    string
		opts    []Option
		input   string
		want    Result
		wantErr error
	}{
		{
			name:  "integer encodes",
			input: "1224",
			want:  Result{Input: "1224", Kind: "number", Output: "MCCXXIV"},
		},
		{
			name:  "numeral decodes",
			input: "MMMCMXCIX",
			want:  Result{Input: "MMMCMXCIX", Kind: "numeral", Output: "3999"},
		},
		{
			name:    "zero is out of range",
			input:   "0",
			wantErr: numeral.ErrOutOfRange,
		},
		{
			name:    "negative is out of range",
			input:   "-1",
			wantErr: numeral.ErrOutOfRange,
		},
		{
			name:    "unknown symbol",
			input:   "IIZ",
			wantErr: numeral.ErrInvalidSymbol,
		},
		{
			name:    "lower case rejected by default",
			input:   "xiv",
			wantErr: numeral.ErrInvalidSymbol,
		},
		{
			name:  "lower case folded",
			opts:  []Option{WithFoldCase(true)},
			input: "xiv",
			want:  Result{Input: "xiv", Kind: "numeral", Output: "14"},
		},
		{
			name:  "lenient accepts IIII",
			input: "IIII",
			want:  Result{Input: "IIII", Kind: "numeral", Output: "4"},
		},
		{
			name:    "strict rejects IIII",
			opts:    []Option{WithStrict(true)},
			input:   "IIII",
			wantErr: numeral.ErrMalformed,
		},
		{
			name:    "float falls through to decoder",
			input:   "3.5",
			wantErr: numeral.ErrInvalidSymbol,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := New(tt.opts...).Convert(tt.input)
			if tt.wantErr != nil {
				assert.ErrorIs(t, err, tt.wantErr)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestConverter_ConcurrentUse(t *testing.T) {
	c := New(WithFoldCase(true))

	var wg sync.WaitGroup
	for i := 0; i < 16; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for n := 1; n < 200; n++ {
				res, err := c.Convert(numeral.MustEncode(n))
				if assert.NoError(t, err) {
					assert.Equal(t, "numeral", res.Kind)
				}
			}
		}()
	}
	wg.Wait()
}

func TestConverter_Table(t *testing.T) {
	c := New()

	rows, err := c.Table(1, 5)
	require.NoError(t, err)
	assert.Equal(t, []Row{
		{1, "I"}, {2, "II"}, {3, "III"}, {4, "IV"}, {5, "V"},
	}, rows)

	_, err = c.Table(0, 5)
	assert.ErrorIs(t, err, numeral.ErrOutOfRange)

	_, err = c.Table(1, 4000)
	assert.ErrorIs(t, err, numeral.ErrOutOfRange)

	_, err = c.Table(10, 5)
	assert.Error(t, err)
}
