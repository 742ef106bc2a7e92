// Package affinecipher recovers the key of a monoalphabetic affine substitution cipher
// (x → a·x + b mod m) from a handful of known plaintext/ciphertext symbol pairs, and
// decodes messages with the recovered key.
//
// The modulus m is the size of the alphabet. The shift b is supplied by the caller; the
// multiplicative key a is found by exhaustive search over [1, m), constrained by every
// usable known pair. The smallest matching a wins, so a successful recovery is a
// plausible key, not a provably unique one.
//
// # Quick Start
//
//	import "github.com/mahdiidarabi/affine-decrypt/pkg/affinecipher"
//
//	client := affinecipher.NewClient()
//
//	result, err := client.Decrypt(ctx, "config.json")
//	if err != nil {
//	    log.Fatal(err)
//	}
//
//	fmt.Printf("a=%d inverse=%d plaintext=%q\n", result.Key.A, result.Key.Inverse, result.Plaintext)
//
// # In-memory configuration
//
//	cfg := &affinecipher.Config{
//	    Alphabet:   map[int]rune{0: 'a', 1: 'b', 2: 'c'},
//	    B:          1,
//	    KnownPairs: map[rune]rune{'a': 'b', 'b': 'a'},
//	    Ciphertext: "bac",
//	}
//	result, err := affinecipher.NewClient().DecryptConfig(ctx, cfg)
//
// # Progress
//
// The search reports "candidates tried" through a ProgressFunc. It carries no semantic
// weight and never changes the result:
//
//	client := affinecipher.NewClient().WithProgress(func(tried, total int) {
//	    fmt.Printf("\r%d/%d", tried, total)
//	})
//
// # Custom Strategies
//
// Implement the Strategy interface to replace the exhaustive search:
//
//	type MyStrategy struct{}
//
//	func (s *MyStrategy) Search(ctx context.Context, table *SymbolTable, b int, pairs []Pair, progress ProgressFunc) (int, error) {
//	    // Your custom search logic
//	}
//
//	func (s *MyStrategy) Name() string {
//	    return "MyCustomStrategy"
//	}
//
//	client := affinecipher.NewClient().WithStrategy(&MyStrategy{})
package affinecipher
