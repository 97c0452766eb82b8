package scanner

import "fmt"

// TokKind enumerates the token kinds produced by the scanner.
type TokKind int

const (
	// Special
	TokEOF TokKind = iota

	// Single-char punctuation/operators
	TokLParen    // (
	TokRParen    // )
	TokLBrace    // {
	TokRBrace    // }
	TokComma     // ,
	TokPeriod    // .
	TokMinus     // -
	TokPlus      // +
	TokSemicolon // ;
	TokSlash     // /
	TokStar      // *

	// One-or-two-char operators
	TokBang   // !
	TokBangEq // !=
	TokEq     // =
	TokEqEq   // ==
	TokLt     // <
	TokLtEq   // <=
	TokGt     // >
	TokGtEq   // >=

	// Literals/identifiers
	TokIdent
	TokString
	TokNumber

	// Keywords
	TokAnd
	TokClass
	TokElse
	TokFalse
	TokFn
	TokFor
	TokIf
	TokNull
	TokOr
	TokPrint
	TokRet
	TokSuper
	TokSelf
	TokTrue
	TokVar
	TokWhile
)

var kindNames = map[TokKind]string{
	TokEOF:       "EOF",
	TokLParen:    "(",
	TokRParen:    ")",
	TokLBrace:    "{",
	TokRBrace:    "}",
	TokComma:     ",",
	TokPeriod:    ".",
	TokMinus:     "-",
	TokPlus:      "+",
	TokSemicolon: ";",
	TokSlash:     "/",
	TokStar:      "*",
	TokBang:      "!",
	TokBangEq:    "!=",
	TokEq:        "=",
	TokEqEq:      "==",
	TokLt:        "<",
	TokLtEq:      "<=",
	TokGt:        ">",
	TokGtEq:      ">=",
	TokIdent:     "identifier",
	TokString:    "string",
	TokNumber:    "number",
	TokAnd:       "and",
	TokClass:     "class",
	TokElse:      "else",
	TokFalse:     "False",
	TokFn:        "fn",
	TokFor:       "for",
	TokIf:        "if",
	TokNull:      "null",
	TokOr:        "or",
	TokPrint:     "print",
	TokRet:       "ret",
	TokSuper:     "super",
	TokSelf:      "self",
	TokTrue:      "True",
	TokVar:       "var",
	TokWhile:     "while",
}

func (k TokKind) String() string {
	if s, ok := kindNames[k]; ok {
		return s
	}
	return fmt.Sprintf("TokKind(%d)", int(k))
}

// keywords maps reserved words to their token kinds. True and False are
// intentionally proper cased; the lowercase spellings are plain identifiers.
var keywords = map[string]TokKind{
	"and":   TokAnd,
	"class": TokClass,
	"else":  TokElse,
	"for":   TokFor,
	"fn":    TokFn,
	"if":    TokIf,
	"null":  TokNull,
	"or":    TokOr,
	"print": TokPrint,
	"ret":   TokRet,
	"super": TokSuper,
	"self":  TokSelf,
	"var":   TokVar,
	"while": TokWhile,
	"True":  TokTrue,
	"False": TokFalse,
}

// Token is a single lexeme with its source line.
// Literal is nil except for number (float64), string (string) and
// True/False (bool) tokens. Lexeme is the exact source substring that
// produced the token; it is empty only for EOF.
type Token struct {
	Kind    TokKind
	Lexeme  string
	Literal any
	Line    int
}

func (t Token) String() string {
	if t.Literal != nil {
		return fmt.Sprintf("%d: %s %q %v", t.Line, t.Kind, t.Lexeme, t.Literal)
	}
	if t.Lexeme == "" {
		return fmt.Sprintf("%d: %s", t.Line, t.Kind)
	}
	return fmt.Sprintf("%d: %s %q", t.Line, t.Kind, t.Lexeme)
}
