package affinecipher

import "sort"

// SymbolTable is the bidirectional mapping between alphabet symbols and their codes.
// It is immutable after construction.
type SymbolTable struct {
	codes        []int // ascending
	codeToSymbol map[int]rune
	symbolToCode map[rune]int
}

// NewSymbolTable builds a table from an alphabet of code → symbol entries.
//
// Codes are visited in ascending order, so when two codes share a symbol the higher code
// wins the reverse mapping. An empty alphabet yields a table with modulus 0.
func NewSymbolTable(alphabet map[int]rune) *SymbolTable {
	codes := make([]int, 0, len(alphabet))
	for code := range alphabet {
		codes = append(codes, code)
	}
	sort.Ints(codes)

	t := &SymbolTable{
		codes:        codes,
		codeToSymbol: make(map[int]rune, len(codes)),
		symbolToCode: make(map[rune]int, len(codes)),
	}
	for _, code := range codes {
		symbol := alphabet[code]
		t.codeToSymbol[code] = symbol
		t.symbolToCode[symbol] = code
	}
	return t
}

// Modulus returns the number of entries in the table.
func (t *SymbolTable) Modulus() int {
	return len(t.codes)
}

// CodeOf returns the code assigned to symbol.
func (t *SymbolTable) CodeOf(symbol rune) (int, bool) {
	code, ok := t.symbolToCode[symbol]
	return code, ok
}

// SymbolOf returns the symbol assigned to code.
func (t *SymbolTable) SymbolOf(code int) (rune, bool) {
	symbol, ok := t.codeToSymbol[code]
	return symbol, ok
}

// Codes returns the codes in ascending order.
func (t *SymbolTable) Codes() []int {
	out := make([]int, len(t.codes))
	copy(out, t.codes)
	return out
}

// Symbols returns the symbols ordered by their codes.
func (t *SymbolTable) Symbols() []rune {
	out := make([]rune, len(t.codes))
	for i, code := range t.codes {
		out[i] = t.codeToSymbol[code]
	}
	return out
}
