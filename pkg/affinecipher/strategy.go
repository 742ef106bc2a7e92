package affinecipher

import "context"

// MinKnownPairs is the minimum number of usable known pairs needed to attempt recovery.
// It is a heuristic floor against spurious fits in small moduli, not a uniqueness guarantee.
const MinKnownPairs = 2

// Pair is one piece of evidence in code space: plaintext code X encrypts to Y.
type Pair struct {
	X int
	Y int
}

// Key is a recovered multiplicative key and its inverse modulo the alphabet size.
type Key struct {
	A       int
	Inverse int
}

// ProgressFunc receives the number of candidates tried so far and the total number of
// candidates. Calls are monotonically increasing in tried.
type ProgressFunc func(tried, total int)

// Strategy defines the interface for key search strategies.
// Implement this interface to replace the default exhaustive search.
type Strategy interface {
	// Search returns the multiplicative key a satisfying every pair, ErrKeyNotFound when
	// none does, or ctx.Err() when cancelled. pairs has already been filtered against
	// table and b is already reduced into [0, modulus).
	Search(ctx context.Context, table *SymbolTable, b int, pairs []Pair, progress ProgressFunc) (int, error)

	// Name returns a human-readable name for this strategy.
	Name() string
}
