package report

import (
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/sirupsen/logrus"
	"golang.org/x/term"
)

const barWidth = 30

// IsTerminal reports whether w is a terminal.
func IsTerminal(w io.Writer) bool {
	f, ok := w.(*os.File)
	return ok && term.IsTerminal(int(f.Fd()))
}

// Progress renders key search progress. On a terminal it redraws a single line;
// otherwise it logs a debug line every tenth of the search.
type Progress struct {
	out         io.Writer
	log         logrus.FieldLogger
	interactive bool
	drawn       bool
	nextLog     int
}

// NewProgress creates a renderer writing to out. interactive selects the redrawn line.
func NewProgress(out io.Writer, log logrus.FieldLogger, interactive bool) *Progress {
	return &Progress{out: out, log: log, interactive: interactive}
}

// Update receives one progress event. It has the affinecipher.ProgressFunc signature.
func (p *Progress) Update(tried, total int) {
	if p.interactive {
		fmt.Fprintf(p.out, "\r%s Trying key %d/%d", bar(tried, total), tried, total)
		p.drawn = true
		return
	}

	if tried < p.nextLog && tried != total {
		return
	}
	p.log.WithFields(logrus.Fields{"tried": tried, "total": total}).Debug("Key search progress")
	step := total / 10
	if step < 1 {
		step = 1
	}
	p.nextLog = tried + step
}

// Done terminates the progress line, if one was drawn.
func (p *Progress) Done() {
	if p.drawn {
		fmt.Fprintln(p.out)
		p.drawn = false
	}
}

func bar(tried, total int) string {
	filled := barWidth
	if total > 0 {
		filled = tried * barWidth / total
	}
	if filled > barWidth {
		filled = barWidth
	}
	return "[" + strings.Repeat("#", filled) + strings.Repeat("-", barWidth-filled) + "]"
}
