// Package numeral converts between integers and Roman numerals.
//
// # Encoding
//
// Encode turns an integer in [1, 3999] into its canonical numeral using
// subtractive notation:
//
//	s, err := numeral.Encode(1224) // "MCCXXIV"
//
// # Decoding
//
// Decode is lenient: it checks that every character is a known symbol and
// then sums symbol values pairwise, subtracting a symbol that is smaller
// than its successor. Symbol-valid but non-canonical input such as "IIII"
// is decoded rather than rejected. DecodeStrict additionally requires the
// input to be the canonical form of its value:
//
//	n, err := numeral.Decode("MMMCMXCIX")      // 3999
//	_, err = numeral.DecodeStrict("IIII")      // *MalformedError
//
// # Dispatch
//
// ParseValue classifies raw user input as a number or a numeral up front, so
// callers never rely on a failed integer parse to pick a direction.
//
// All functions are pure and safe for concurrent use.
package numeral
