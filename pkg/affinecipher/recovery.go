package affinecipher

import (
	"context"
	"fmt"
	"sort"
)

// ExhaustiveStrategy tries every candidate a in [1, m) in ascending order and returns the
// first one that satisfies all known pairs.
type ExhaustiveStrategy struct{}

// NewExhaustiveStrategy creates the default search strategy.
func NewExhaustiveStrategy() *ExhaustiveStrategy {
	return &ExhaustiveStrategy{}
}

// Name returns the name of this strategy.
func (s *ExhaustiveStrategy) Name() string {
	return "Exhaustive"
}

// Search implements the Strategy interface.
func (s *ExhaustiveStrategy) Search(ctx context.Context, table *SymbolTable, b int, pairs []Pair, progress ProgressFunc) (int, error) {
	m := table.Modulus()
	total := m - 1
	if total < 0 {
		total = 0
	}
	if progress == nil {
		progress = func(int, int) {}
	}

	progress(0, total)
	for a := 1; a < m; a++ {
		select {
		case <-ctx.Done():
			return 0, ctx.Err()
		default:
		}

		matched := satisfiesAll(a, b, m, pairs)
		progress(a, total)
		if matched {
			return a, nil
		}
	}
	return 0, fmt.Errorf("%w: no a in [1, %d) satisfies %d known pairs", ErrKeyNotFound, m, len(pairs))
}

// satisfiesAll reports whether (a*X + b) mod m == Y for every pair. a and b are already
// in [0, m); X is reduced before the product so large codes cannot overflow.
func satisfiesAll(a, b, m int, pairs []Pair) bool {
	for _, p := range pairs {
		if Mod(a*Mod(p.X, m)+b, m) != p.Y {
			return false
		}
	}
	return true
}

// FilterEvidence converts known symbol pairs into code pairs, dropping any pair whose
// plaintext or ciphertext symbol is not in table. The result is sorted by (X, Y).
func FilterEvidence(table *SymbolTable, knownPairs map[rune]rune) []Pair {
	pairs := make([]Pair, 0, len(knownPairs))
	for plain, cipher := range knownPairs {
		x, ok := table.CodeOf(plain)
		if !ok {
			continue
		}
		y, ok := table.CodeOf(cipher)
		if !ok {
			continue
		}
		pairs = append(pairs, Pair{X: x, Y: y})
	}
	sort.Slice(pairs, func(i, j int) bool {
		if pairs[i].X != pairs[j].X {
			return pairs[i].X < pairs[j].X
		}
		return pairs[i].Y < pairs[j].Y
	})
	return pairs
}

// RecoverKey recovers the multiplicative key a from known symbol pairs using the
// exhaustive strategy.
//
// Returns ErrInsufficientEvidence for an empty table or fewer than MinKnownPairs usable
// pairs, and ErrKeyNotFound when the search is exhausted.
func RecoverKey(ctx context.Context, table *SymbolTable, b int, knownPairs map[rune]rune, progress ProgressFunc) (int, error) {
	return recoverWith(ctx, NewExhaustiveStrategy(), table, b, FilterEvidence(table, knownPairs), progress)
}

func recoverWith(ctx context.Context, strategy Strategy, table *SymbolTable, b int, pairs []Pair, progress ProgressFunc) (int, error) {
	m := table.Modulus()
	if m == 0 {
		return 0, fmt.Errorf("%w: empty alphabet", ErrInsufficientEvidence)
	}
	if len(pairs) < MinKnownPairs {
		return 0, fmt.Errorf("%w: %d usable known pairs, need at least %d", ErrInsufficientEvidence, len(pairs), MinKnownPairs)
	}
	return strategy.Search(ctx, table, Mod(b, m), pairs, progress)
}

// CountCandidates returns how many a in [1, m) satisfy every pair. A value above 1 means
// the evidence does not pin down a unique key.
func CountCandidates(table *SymbolTable, b int, pairs []Pair) int {
	m := table.Modulus()
	if m == 0 {
		return 0
	}
	b = Mod(b, m)

	n := 0
	for a := 1; a < m; a++ {
		if satisfiesAll(a, b, m, pairs) {
			n++
		}
	}
	return n
}
