package numeral

// Symbol is a single Roman numeral letter with its value.
type Symbol struct {
	Letter byte
	Value  int
}

// symbols is ordered by value; even indexes are powers of ten.
var symbols = [...]Symbol{
	{'I', 1},
	{'V', 5},
	{'X', 10},
	{'L', 50},
	{'C', 100},
	{'D', 500},
	{'M', 1000},
}

// values maps a letter to its value, zero for unknown bytes.
var values = func() [256]int {
	var v [256]int
	for _, s := range symbols {
		v[s.Letter] = s.Value
	}
	return v
}()

// Symbols returns a copy of the letter table in ascending value order.
func Symbols() []Symbol {
	out := make([]Symbol, len(symbols))
	copy(out, symbols[:])
	return out
}

// ValueOf returns the value of a single letter and whether it is known.
func ValueOf(letter byte) (int, bool) {
	v := values[letter]
	return v, v != 0
}

// letterAt returns the table letter at index i, clamping past the top to M.
func letterAt(i int) byte {
	if i >= len(symbols) {
		return symbols[len(symbols)-1].Letter
	}
	return symbols[i].Letter
}
