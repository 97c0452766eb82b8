package diag

import (
	_ "embed"
	"encoding/json"
	"sync"
)

//go:embed codes.json
var codesJSON []byte

// CodeEntry is a single diagnostic code definition.
type CodeEntry struct {
	ID    string `json:"id"`    // e.g., "LXE0001"
	Title string `json:"title"` // the message text, e.g. "Unexpected char."
	Help  string `json:"help"`  // optional help text
}

// Registry is the catalog format. Only the lexer section exists today;
// grow sections here as later front-end stages land.
type Registry struct {
	Lexer map[string]CodeEntry `json:"lexer"`
}

var (
	regOnce sync.Once
	reg     Registry
	regErr  error
)

func load() error {
	regOnce.Do(func() {
		if len(codesJSON) == 0 {
			return // empty catalog is allowed
		}
		regErr = json.Unmarshal(codesJSON, &reg)
	})
	return regErr
}

// LookupLexer returns the lexer code entry for key.
func LookupLexer(key string) (CodeEntry, bool) {
	if err := load(); err != nil {
		return CodeEntry{}, false
	}
	if reg.Lexer == nil {
		return CodeEntry{}, false
	}
	ce, ok := reg.Lexer[key]
	return ce, ok
}

// MustLookupLexer returns the entry for key if present, otherwise a
// synthesized placeholder. Use this when a stable code is wanted even if
// the catalog is temporarily missing an entry.
func MustLookupLexer(key, defaultID, defaultTitle string) CodeEntry {
	if ce, ok := LookupLexer(key); ok {
		return ce
	}
	return CodeEntry{ID: defaultID, Title: defaultTitle}
}
