package version

import "fmt"

const (
	major = 0
	minor = 1
	patch = 0

	// stage names the current milestone: the lexical stage is the only
	// compiled stage so far.
	stage = "scanner"
)

// String returns the human-readable version line printed by `lox version`.
func String() string {
	return fmt.Sprintf("lox %d.%d.%d (%s)", major, minor, patch, stage)
}
