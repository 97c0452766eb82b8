package main

import (
	"errors"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/peterh/liner"

	"github.com/dashaw92/LoxV1/internal/diag"
	"github.com/dashaw92/LoxV1/internal/scanner"
	"github.com/dashaw92/LoxV1/internal/term"
	"github.com/dashaw92/LoxV1/internal/version"
)

const (
	historyFile = ".lox_history"
	prompt      = "> "
)

/* ---------- repl (one scan per input line) ---------- */

func cmdRepl() int {
	term.Printf("%s\nCtrl+C cancels input, Ctrl+D exits. Type /quit to exit.\n", version.String())

	home, _ := os.UserHomeDir()
	histPath := filepath.Join(home, historyFile)

	ln := liner.NewLiner()
	defer ln.Close()
	ln.SetCtrlCAborts(true)

	if f, err := os.Open(histPath); err == nil {
		_, _ = ln.ReadHistory(f)
		_ = f.Close()
	}
	defer func() {
		if f, err := os.Create(histPath); err == nil {
			_, _ = ln.WriteHistory(f)
			_ = f.Close()
		}
	}()

	errs := diag.NewReporter(os.Stderr)
	for {
		line, err := ln.Prompt(prompt)
		if errors.Is(err, io.EOF) {
			term.Println()
			return 0
		}
		if errors.Is(err, liner.ErrPromptAborted) {
			continue
		}
		if err != nil {
			term.Eprintf("read input: %v\n", err)
			return 1
		}

		code := strings.TrimSpace(line)
		if code == "/quit" {
			return 0
		}
		if code != "" {
			ln.AppendHistory(line)
		}

		// Every line gets a fresh scanner; no state carries over between
		// lines except the shared reporter, which is cleared first.
		errs.Reset()
		printTokens(scanner.New(code, errs).ScanTokens())
	}
}
