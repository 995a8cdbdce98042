package internal

import (
	"strings"
	"testing"
)

func scanOK(t *testing.T, source string) []token {
	t.Helper()
	state := newInterpreterState(&strings.Builder{}, nil)
	tokens := newLexer(source, state).scan()
	if state.hadError {
		t.Fatalf("unexpected lex error for %q", source)
	}
	return tokens
}

func kinds(tokens []token) []tokenType {
	out := make([]tokenType, len(tokens))
	for i, tok := range tokens {
		out[i] = tok.kind
	}
	return out
}

func TestLexerSingleAndDoubleCharTokens(t *testing.T) {
	tokens := scanOK(t, "(){};,.+-*/ != == <= >= < > = !")
	got := kinds(tokens)
	want := []tokenType{
		tkLeftParen, tkRightParen, tkLeftBrace, tkRightBrace, tkSemicolon,
		tkComma, tkDot, tkPlus, tkMinus, tkStar, tkSlash,
		tkBangEqual, tkEqualEqual, tkLessEqual, tkGreaterEqual,
		tkLess, tkGreater, tkEqual, tkBang, tkEOF,
	}
	if len(got) != len(want) {
		t.Fatalf("got %d tokens, want %d: %v", len(got), len(want), got)
	}
	for i := range want {
		if got[i] != want[i] {
			t.Errorf("token %d: got %v want %v", i, got[i], want[i])
		}
	}
}

func TestLexerSkipsLineAndBlockComments(t *testing.T) {
	tokens := scanOK(t, "1 // a comment\n+ /* block\ncomment */ 2")
	got := kinds(tokens)
	want := []tokenType{tkNumber, tkPlus, tkNumber, tkEOF}
	if len(got) != len(want) {
		t.Fatalf("got %v", got)
	}
	for i := range want {
		if got[i] != want[i] {
			t.Errorf("token %d: got %v want %v", i, got[i], want[i])
		}
	}
}

func TestLexerKeywordsVsIdentifiers(t *testing.T) {
	tokens := scanOK(t, "class clazz fun function")
	got := kinds(tokens)
	want := []tokenType{tkClass, tkIdentifier, tkFun, tkIdentifier, tkEOF}
	for i := range want {
		if got[i] != want[i] {
			t.Errorf("token %d: got %v want %v", i, got[i], want[i])
		}
	}
}

func TestLexerNumberLiterals(t *testing.T) {
	tokens := scanOK(t, "42 3.14")
	n0 := tokens[0].literal.(Number)
	if !n0.isInt || n0.i != 42 {
		t.Errorf("got %v", n0)
	}
	n1 := tokens[1].literal.(Number)
	if n1.isInt || n1.f != 3.14 {
		t.Errorf("got %v", n1)
	}
}

func TestLexerUnterminatedStringReportsError(t *testing.T) {
	state := newInterpreterState(&strings.Builder{}, nil)
	newLexer(`"unterminated`, state).scan()
	if !state.hadError {
		t.Fatalf("expected a lex error")
	}
}
