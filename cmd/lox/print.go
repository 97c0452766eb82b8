package main

import (
	"strings"

	"github.com/dashaw92/LoxV1/internal/scanner"
	"github.com/dashaw92/LoxV1/internal/term"
)

// printTokens dumps one token per line: line number, kind, lexeme and,
// when present, the parsed literal. Long lexemes are truncated.
func printTokens(toks []scanner.Token) {
	var b strings.Builder
	for _, t := range toks {
		lex := t.Lexeme
		if len(lex) > 40 {
			lex = lex[:37] + "..."
		}
		switch {
		case t.Literal != nil:
			term.Bprintf(&b, "%d  %-10s  %q  %v\n", t.Line, t.Kind, lex, t.Literal)
		case lex == "":
			term.Bprintf(&b, "%d  %-10s\n", t.Line, t.Kind)
		default:
			term.Bprintf(&b, "%d  %-10s  %q\n", t.Line, t.Kind, lex)
		}
	}
	term.Printf("%s", b.String())
}
