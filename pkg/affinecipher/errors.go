package affinecipher

import (
	"errors"
	"fmt"
)

var (
	// ErrInsufficientEvidence is returned when fewer than MinKnownPairs usable known pairs
	// remain after filtering, or when the alphabet is empty.
	ErrInsufficientEvidence = errors.New("insufficient evidence")

	// ErrKeyNotFound is returned when no candidate a satisfies every known pair.
	ErrKeyNotFound = errors.New("key not found")

	// ErrNoInverseExists is returned when a value has no multiplicative inverse for a modulus.
	ErrNoInverseExists = errors.New("no multiplicative inverse exists")

	// ErrEmptyAlphabet is returned by Config.Validate for a configuration with no symbols.
	// It wraps ErrInsufficientEvidence.
	ErrEmptyAlphabet = fmt.Errorf("%w: empty alphabet", ErrInsufficientEvidence)
)
