package main

import (
	"flag"
	"os"

	"github.com/dashaw92/LoxV1/internal/term"
	"github.com/dashaw92/LoxV1/internal/version"
)

/* ---------- main ---------- */

func main() {
	flag.Usage = usage
	if len(os.Args) < 2 {
		// Bare `lox` drops into the REPL, same as `lox repl`.
		os.Exit(cmdRepl())
	}
	switch os.Args[1] {
	case "version", "--version", "-v":
		term.Printf("%s\n", version.String())
	case "help", "--help", "-h":
		usage()
	case "run":
		if len(os.Args) != 3 {
			term.Eprintln("usage: lox run <script.lox>")
			os.Exit(2)
		}
		os.Exit(cmdRun(os.Args[2]))
	case "repl":
		os.Exit(cmdRepl())
	default:
		term.Eprintf("unknown command: %s\n\n", os.Args[1])
		usage()
		os.Exit(2)
	}
}
