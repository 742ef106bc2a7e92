package affinecipher

import (
	"path/filepath"
	"runtime"
)

// fixturesDir returns the path to the fixtures directory (works regardless of test cwd).
func fixturesDir() string {
	_, f, _, _ := runtime.Caller(0)
	return filepath.Join(filepath.Dir(f), "..", "..", "fixtures")
}

// abcTable is the three-symbol alphabet used throughout the tests.
func abcTable() *SymbolTable {
	return NewSymbolTable(map[int]rune{0: 'a', 1: 'b', 2: 'c'})
}

// latinAlphabet returns a-z, space, '.' and ',' (29 symbols, prime modulus).
func latinAlphabet() map[int]rune {
	symbols := []rune("abcdefghijklmnopqrstuvwxyz .,")
	alphabet := make(map[int]rune, len(symbols))
	for i, r := range symbols {
		alphabet[i] = r
	}
	return alphabet
}

// coprimes returns every a in [1, m) with gcd(a, m) == 1.
func coprimes(m int) []int {
	var out []int
	for a := 1; a < m; a++ {
		if GCD(a, m) == 1 {
			out = append(out, a)
		}
	}
	return out
}
