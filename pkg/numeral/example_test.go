package numeral_test

import (
	"fmt"

	"github.com/leapstack-labs/roman/pkg/numeral"
)

func ExampleEncode() {
	s, _ := numeral.Encode(1224)
	fmt.Println(s)
	// Output: MCCXXIV
}

func ExampleDecode() {
	n, _ := numeral.Decode("MMMCMXCIX")
	fmt.Println(n)
	// Output: 3999
}

func ExampleDecode_invalidSymbol() {
	_, err := numeral.Decode("IIZ")
	fmt.Println(err)
	// Output: 'Z' is not a valid Roman numeral
}
