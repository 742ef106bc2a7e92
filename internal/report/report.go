package report

import (
	"errors"
	"fmt"
	"io"
	"strings"
	"text/tabwriter"

	"github.com/mahdiidarabi/affine-decrypt/pkg/affinecipher"
)

const ruleWidth = 60

func rule(w io.Writer, title string) {
	pad := ruleWidth - len(title) - 2
	if pad < 0 {
		pad = 0
	}
	left := pad / 2
	fmt.Fprintf(w, "%s %s %s\n", strings.Repeat("─", left), title, strings.Repeat("─", pad-left))
}

// Header prints the run banner.
func Header(w io.Writer, cfg *affinecipher.Config) {
	rule(w, "Affine decryption started")
	fmt.Fprintf(w, "Symbols: %d  |  b: %d  |  config: %s\n\n", len(cfg.Alphabet), cfg.B, cfg.Fingerprint())
}

// Success prints the recovered key and the decoded message.
func Success(w io.Writer, result *affinecipher.Result) {
	tw := tabwriter.NewWriter(w, 0, 0, 2, ' ', 0)
	fmt.Fprintf(tw, "Modulus\t%d\n", result.Modulus)
	fmt.Fprintf(tw, "Reduced b\t%d\n", result.B)
	fmt.Fprintf(tw, "Key a\t%d\n", result.Key.A)
	fmt.Fprintf(tw, "Inverse of a\t%d\n", result.Key.Inverse)
	fmt.Fprintf(tw, "Known pairs used\t%d\n", result.Evidence)
	if result.Candidates > 1 {
		fmt.Fprintf(tw, "Consistent keys\t%d (smallest chosen)\n", result.Candidates)
	}
	fmt.Fprintf(tw, "Strategy\t%s\n", result.Strategy)
	fmt.Fprintf(tw, "\t\n")
	fmt.Fprintf(tw, "Ciphertext\t%s\n", result.Ciphertext)
	fmt.Fprintf(tw, "Plaintext\t%s\n", result.Plaintext)
	tw.Flush()

	fmt.Fprintln(w)
	rule(w, "Done")
}

// Failure prints why the run produced no plaintext.
func Failure(w io.Writer, err error) {
	fmt.Fprintf(w, "Error: %v\n", err)
	switch {
	case errors.Is(err, affinecipher.ErrInsufficientEvidence):
		fmt.Fprintf(w, "Hint: provide at least %d known pairs whose symbols are both in the table.\n", affinecipher.MinKnownPairs)
	case errors.Is(err, affinecipher.ErrKeyNotFound):
		fmt.Fprintln(w, "Hint: no key fits every known pair; check the pairs and the value of b.")
	case errors.Is(err, affinecipher.ErrNoInverseExists):
		fmt.Fprintln(w, "Hint: the key shares a factor with the alphabet size.")
	}
	rule(w, "Aborted")
}
