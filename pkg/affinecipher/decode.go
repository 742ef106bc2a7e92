package affinecipher

import "strings"

// Placeholder is emitted when a decoded code has no symbol in the table.
const Placeholder = '?'

// Decode applies the inverse affine transform X = (Y - b) * inverse mod m to every
// ciphertext rune found in table. Runes outside the table are copied unchanged, so the
// output has the same number of runes as the input.
//
// a is not needed by the arithmetic once its inverse is known; it is kept so callers pass
// the full key.
func Decode(table *SymbolTable, b, a, inverse int, ciphertext string) string {
	return transform(table, ciphertext, func(y, m int) int {
		return Mod((Mod(y, m)-Mod(b, m))*Mod(inverse, m), m)
	})
}

// Encode applies the forward transform Y = a*X + b mod m, with the same pass-through
// rules as Decode.
func Encode(table *SymbolTable, b, a int, plaintext string) string {
	return transform(table, plaintext, func(x, m int) int {
		return Mod(Mod(a, m)*Mod(x, m)+Mod(b, m), m)
	})
}

// transform maps every table rune in text through fn. fn reduces each operand of a
// product into [0, m) first, so codes may be any non-negative int without wrapping.
func transform(table *SymbolTable, text string, fn func(code, m int) int) string {
	m := table.Modulus()

	var sb strings.Builder
	sb.Grow(len(text))
	for _, c := range text {
		code, ok := table.CodeOf(c)
		if !ok {
			sb.WriteRune(c)
			continue
		}
		symbol, ok := table.SymbolOf(fn(code, m))
		if !ok {
			symbol = Placeholder
		}
		sb.WriteRune(symbol)
	}
	return sb.String()
}
