// Package term holds print helpers that deliberately drop the (n, err)
// results from fmt so call sites stay clean under error-return linting.
package term

import (
	"fmt"
	"io"
	"os"
	"strings"
)

func Printf(format string, a ...any)  { _, _ = fmt.Printf(format, a...) }
func Println(a ...any)                { _, _ = fmt.Println(a...) }
func Eprintf(format string, a ...any) { _, _ = fmt.Fprintf(os.Stderr, format, a...) }
func Eprintln(a ...any)               { _, _ = fmt.Fprintln(os.Stderr, a...) }

// Wprintf writes formatted text to any io.Writer.
func Wprintf(w io.Writer, format string, a ...any) { _, _ = fmt.Fprintf(w, format, a...) }

// Bprintf appends formatted text to a strings.Builder.
func Bprintf(b *strings.Builder, format string, a ...any) { _, _ = fmt.Fprintf(b, format, a...) }
