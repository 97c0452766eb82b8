package diag

import "fmt"

// Pos marks a 1-based line location in a source buffer. The scanner does
// not track columns, so a line is the finest position available.
type Pos struct{ Line int }

// Diagnostic is a front-end message tagged with its source line.
type Diagnostic struct {
	Pos Pos
	Msg string
}

func (d Diagnostic) Error() string {
	if d.Pos.Line == 0 {
		return d.Msg
	}
	return fmt.Sprintf("line %d: %s", d.Pos.Line, d.Msg)
}
