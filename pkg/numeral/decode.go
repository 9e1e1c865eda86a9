package numeral

import "unicode/utf8"

// Decode returns the integer represented by s.
//
// Only symbol membership is validated: the first unknown character yields
// *InvalidSymbolError. Ordering and repetition are not checked, so
// non-canonical input is summed pairwise like any other. Use DecodeStrict
// to reject it.
func Decode(s string) (int, error) {
	if s == "" {
		return 0, ErrEmpty
	}
	if err := validateSymbols(s); err != nil {
		return 0, err
	}

	total := 0
	for i := 0; i < len(s); i++ {
		v := values[s[i]]
		if i+1 < len(s) && v < values[s[i+1]] {
			total -= v
			continue
		}
		total += v
	}
	return total, nil
}

// DecodeStrict decodes s and requires it to be the canonical numeral of its
// value. Non-canonical input fails with *MalformedError.
func DecodeStrict(s string) (int, error) {
	n, err := Decode(s)
	if err != nil {
		return 0, err
	}
	canonical, err := Encode(n)
	if err != nil {
		return 0, &MalformedError{Input: s, Value: n}
	}
	if canonical != s {
		return 0, &MalformedError{Input: s, Value: n, Canonical: canonical}
	}
	return n, nil
}

// IsCanonical reports whether s is a canonical numeral.
func IsCanonical(s string) bool {
	_, err := DecodeStrict(s)
	return err == nil
}

func validateSymbols(s string) error {
	for i, r := range s {
		if r >= utf8.RuneSelf || values[byte(r)] == 0 {
			return &InvalidSymbolError{Symbol: r, Offset: i}
		}
	}
	return nil
}
