package numeral

import "strings"

// Encode returns the canonical numeral for n. It fails with *RangeError
// unless 0 < n < 4000.
func Encode(n int) (string, error) {
	if n < MinValue || n > MaxValue {
		return "", &RangeError{Value: n}
	}

	// Collect digits least significant first, then emit in reverse.
	var digits [4]int
	count := 0
	for ; n > 0; n /= 10 {
		digits[count] = n % 10
		count++
	}

	var b strings.Builder
	for pos := count - 1; pos >= 0; pos-- {
		small := letterAt(2 * pos)
		mid := letterAt(2*pos + 1)
		large := letterAt(2*pos + 2)
		encodeDigit(&b, digits[pos], small, mid, large)
	}
	return b.String(), nil
}

// MustEncode is like Encode but panics on error. Intended for constants and tests.
func MustEncode(n int) string {
	s, err := Encode(n)
	if err != nil {
		panic(err)
	}
	return s
}

func encodeDigit(b *strings.Builder, d int, small, mid, large byte) {
	switch {
	case d <= 3:
		for range d {
			b.WriteByte(small)
		}
	case d == 4:
		b.WriteByte(small)
		b.WriteByte(mid)
	case d <= 8:
		b.WriteByte(mid)
		for range d - 5 {
			b.WriteByte(small)
		}
	default:
		b.WriteByte(small)
		b.WriteByte(large)
	}
}
