package internal

import "fmt"

// tokenType enumerates every lexical category the scanner can emit.
type tokenType int

const (
	tkEOF tokenType = iota - 1

	// Single-character tokens.
	tkLeftParen
	tkRightParen
	tkLeftBrace
	tkRightBrace
	tkComma
	tkDot
	tkMinus
	tkPlus
	tkSemicolon
	tkSlash
	tkStar

	// One or two character tokens.
	tkBang
	tkBangEqual
	tkEqual
	tkEqualEqual
	tkGreater
	tkGreaterEqual
	tkLess
	tkLessEqual

	// Literals.
	tkIdentifier
	tkString
	tkNumber

	// Keywords.
	tkAnd
	tkClass
	tkElse
	tkFalse
	tkFun
	tkFor
	tkIf
	tkNil
	tkOr
	tkPrint
	tkReturn
	tkSuper
	tkThis
	tkTrue
	tkVar
	tkWhile
	tkBreak
	tkContinue
)

var tokenNames = map[tokenType]string{
	tkEOF:          "EOF",
	tkLeftParen:    "(",
	tkRightParen:   ")",
	tkLeftBrace:    "{",
	tkRightBrace:   "}",
	tkComma:        ",",
	tkDot:          ".",
	tkMinus:        "-",
	tkPlus:         "+",
	tkSemicolon:    ";",
	tkSlash:        "/",
	tkStar:         "*",
	tkBang:         "!",
	tkBangEqual:    "!=",
	tkEqual:        "=",
	tkEqualEqual:   "==",
	tkGreater:      ">",
	tkGreaterEqual: ">=",
	tkLess:         "<",
	tkLessEqual:    "<=",
	tkIdentifier:   "IDENTIFIER",
	tkString:       "STRING",
	tkNumber:       "NUMBER",
	tkAnd:          "and",
	tkClass:        "class",
	tkElse:         "else",
	tkFalse:        "false",
	tkFun:          "fun",
	tkFor:          "for",
	tkIf:           "if",
	tkNil:          "nil",
	tkOr:           "or",
	tkPrint:        "print",
	tkReturn:       "return",
	tkSuper:        "super",
	tkThis:         "this",
	tkTrue:         "true",
	tkVar:          "var",
	tkWhile:        "while",
	tkBreak:        "break",
	tkContinue:     "continue",
}

var keywords = map[string]tokenType{
	"and":      tkAnd,
	"class":    tkClass,
	"else":     tkElse,
	"false":    tkFalse,
	"fun":      tkFun,
	"for":      tkFor,
	"if":       tkIf,
	"nil":      tkNil,
	"or":       tkOr,
	"print":    tkPrint,
	"return":   tkReturn,
	"super":    tkSuper,
	"this":     tkThis,
	"true":     tkTrue,
	"var":      tkVar,
	"while":    tkWhile,
	"break":    tkBreak,
	"continue": tkContinue,
}

// token is an immutable unit produced by the lexer and consumed by the parser.
//
// literal holds the scanned Go value for STRING/NUMBER tokens (string or
// Number); it is nil for every other kind.
type token struct {
	kind    tokenType
	lexeme  string
	literal interface{}
	line    int
}

func (t *token) String() string {
	return fmt.Sprintf("%s %q", tokenNames[t.kind], t.lexeme)
}
