package affinecipher

import (
	"encoding/hex"
	"sort"
	"strconv"
	"strings"

	"golang.org/x/crypto/blake2b"
)

// Config is the input of one decryption run.
type Config struct {
	Alphabet   map[int]rune  // code → symbol
	B          int           // shift, reduced modulo the alphabet size before use
	KnownPairs map[rune]rune // plaintext symbol → observed ciphertext symbol
	Ciphertext string
}

// Result contains the outcome of a successful decryption run.
type Result struct {
	Modulus    int    // Alphabet size
	B          int    // Shift reduced into [0, Modulus)
	Key        Key    // Recovered key and its inverse
	Evidence   int    // Number of usable known pairs
	Candidates int    // Number of keys consistent with the evidence (> 1 means ambiguous)
	Strategy   string // Name of the strategy that found the key
	Ciphertext string
	Plaintext  string
}

// Validate checks the preconditions the core relies on.
func (c *Config) Validate() error {
	if len(c.Alphabet) == 0 {
		return ErrEmptyAlphabet
	}
	return nil
}

// Fingerprint returns a short BLAKE2b-256 digest of a canonical encoding of the config.
// Two configs with the same content have the same fingerprint regardless of map order.
func (c *Config) Fingerprint() string {
	var sb strings.Builder

	codes := make([]int, 0, len(c.Alphabet))
	for code := range c.Alphabet {
		codes = append(codes, code)
	}
	sort.Ints(codes)
	sb.WriteString("table")
	for _, code := range codes {
		sb.WriteByte('|')
		sb.WriteString(strconv.Itoa(code))
		sb.WriteByte('=')
		sb.WriteString(strconv.QuoteRune(c.Alphabet[code]))
	}

	sb.WriteString("\nb=")
	sb.WriteString(strconv.Itoa(c.B))

	plains := make([]rune, 0, len(c.KnownPairs))
	for p := range c.KnownPairs {
		plains = append(plains, p)
	}
	sort.Slice(plains, func(i, j int) bool { return plains[i] < plains[j] })
	sb.WriteString("\npairs")
	for _, p := range plains {
		sb.WriteByte('|')
		sb.WriteString(strconv.QuoteRune(p))
		sb.WriteByte('>')
		sb.WriteString(strconv.QuoteRune(c.KnownPairs[p]))
	}

	sb.WriteString("\nciphertext=")
	sb.WriteString(strconv.Quote(c.Ciphertext))

	sum := blake2b.Sum256([]byte(sb.String()))
	return hex.EncodeToString(sum[:8])
}
