package main

import (
	"os"

	"github.com/dashaw92/LoxV1/internal/diag"
	"github.com/dashaw92/LoxV1/internal/scanner"
	"github.com/dashaw92/LoxV1/internal/term"
)

/* ---------- run (script file) ---------- */

func cmdRun(path string) int {
	data, err := os.ReadFile(path)
	if err != nil {
		term.Eprintf("read %s: %v\n", path, err)
		return 1
	}

	errs := diag.NewReporter(os.Stderr)
	toks := scanner.New(string(data), errs).ScanTokens()
	printTokens(toks)

	if errs.HasErrors() {
		return 65
	}
	return 0
}
