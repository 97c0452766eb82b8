package diag

import (
	"io"

	"github.com/dashaw92/LoxV1/internal/term"
)

// Reporter is the error sink handed to the scanner. It records every
// diagnostic and, when constructed with a writer, echoes each one in the
// line-tagged form the CLI prints. Reporting never affects scanning.
type Reporter struct {
	w     io.Writer
	diags []Diagnostic
}

// NewReporter returns a Reporter writing to w. A nil writer collects
// silently.
func NewReporter(w io.Writer) *Reporter {
	return &Reporter{w: w}
}

// Error records a diagnostic at the given 1-based line.
func (r *Reporter) Error(line int, message string) {
	r.diags = append(r.diags, Diagnostic{Pos: Pos{Line: line}, Msg: message})
	if r.w != nil {
		term.Wprintf(r.w, "[Line %d] Error: %s\n", line, message)
	}
}

// Diagnostics returns everything reported so far, in order.
func (r *Reporter) Diagnostics() []Diagnostic { return r.diags }

func (r *Reporter) HasErrors() bool { return len(r.diags) > 0 }

// Reset clears recorded diagnostics so the Reporter can serve another
// scan. The REPL reuses one Reporter across input lines.
func (r *Reporter) Reset() { r.diags = r.diags[:0] }
