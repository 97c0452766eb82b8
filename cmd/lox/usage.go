package main

import "github.com/dashaw92/LoxV1/internal/term"

func usage() {
	term.Eprintln("lox — Lox front end (scanner stage)")
	term.Eprintln("")
	term.Eprintln("Usage:")
	term.Eprintln("  lox [command] [args]")
	term.Eprintln("")
	term.Eprintln("Commands:")
	term.Eprintln("  version              Print version")
	term.Eprintln("  help                 Show this help")
	term.Eprintln("  run <script.lox>     Scan a script and print its tokens")
	term.Eprintln("  repl                 Read lines from stdin, scanning each independently")
	term.Eprintln("")
	term.Eprintln("Notes:")
	term.Eprintln("  - With no command, lox starts the REPL.")
	term.Eprintln("  - In the REPL, /quit (surrounding whitespace ignored) exits without scanning.")
	term.Eprintln("  - Lexical errors are reported per line on stderr; scanning always continues.")
}
