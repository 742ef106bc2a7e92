package affinecipher

import (
	"context"
	"fmt"
	"io"

	"github.com/sirupsen/logrus"
)

// Client provides a high-level API for the recover-then-decode pipeline.
type Client struct {
	strategy Strategy
	parser   ConfigParser
	log      logrus.FieldLogger
	progress ProgressFunc
}

// NewClient creates a new client with default settings. Logging is discarded until a
// logger is set with WithLogger.
func NewClient() *Client {
	quiet := logrus.New()
	quiet.SetOutput(io.Discard)

	return &Client{
		strategy: NewExhaustiveStrategy(),
		parser:   &JSONParser{},
		log:      quiet,
	}
}

// WithStrategy sets a custom search strategy.
func (c *Client) WithStrategy(strategy Strategy) *Client {
	c.strategy = strategy
	return c
}

// WithParser sets a custom configuration parser.
func (c *Client) WithParser(parser ConfigParser) *Client {
	c.parser = parser
	return c
}

// WithLogger sets the logger used for pipeline stages.
func (c *Client) WithLogger(log logrus.FieldLogger) *Client {
	c.log = log
	return c
}

// WithProgress sets the callback that receives search progress.
func (c *Client) WithProgress(progress ProgressFunc) *Client {
	c.progress = progress
	return c
}

// Decrypt loads a configuration from source and runs DecryptConfig on it.
func (c *Client) Decrypt(ctx context.Context, source string) (*Result, error) {
	cfg, err := c.parser.ParseConfig(source)
	if err != nil {
		return nil, fmt.Errorf("failed to parse config: %w", err)
	}
	return c.DecryptConfig(ctx, cfg)
}

// DecryptConfig recovers the key from cfg's known pairs and decodes its ciphertext.
//
// On any failure the result is nil; partial plaintext is never returned.
func (c *Client) DecryptConfig(ctx context.Context, cfg *Config) (*Result, error) {
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid config: %w", err)
	}

	table := NewSymbolTable(cfg.Alphabet)
	m := table.Modulus()
	b := Mod(cfg.B, m)
	pairs := FilterEvidence(table, cfg.KnownPairs)

	log := c.log.WithFields(logrus.Fields{
		"modulus":  m,
		"b":        b,
		"evidence": len(pairs),
		"strategy": c.strategy.Name(),
	})
	if dropped := len(cfg.KnownPairs) - len(pairs); dropped > 0 {
		log.WithField("dropped", dropped).Warn("Known pairs reference symbols outside the alphabet")
	}

	log.Info("Starting key search")
	a, err := recoverWith(ctx, c.strategy, table, b, pairs, c.progress)
	if err != nil {
		log.WithError(err).Error("Key search failed")
		return nil, fmt.Errorf("failed to recover key: %w", err)
	}

	inverse, err := MultiplicativeInverse(a, m)
	if err != nil {
		log.WithError(err).WithField("a", a).Error("Recovered key is not invertible")
		return nil, fmt.Errorf("failed to invert key: %w", err)
	}
	log = log.WithFields(logrus.Fields{"a": a, "inverse": inverse})

	candidates := CountCandidates(table, b, pairs)
	if candidates > 1 {
		log.WithField("candidates", candidates).Warn("Evidence is consistent with more than one key; using the smallest")
	}

	log.Info("Decoding message")
	plaintext := Decode(table, b, a, inverse, cfg.Ciphertext)

	return &Result{
		Modulus:    m,
		B:          b,
		Key:        Key{A: a, Inverse: inverse},
		Evidence:   len(pairs),
		Candidates: candidates,
		Strategy:   c.strategy.Name(),
		Ciphertext: cfg.Ciphertext,
		Plaintext:  plaintext,
	}, nil
}
