package internal

import (
	"fmt"
	"io"
)

// interpreterState is the error channel shared by the lexer, parser,
// resolver and evaluator for one run (spec.md §6.3, §7). It also owns
// the side-table the resolver fills in and the evaluator consumes.
type interpreterState struct {
	out io.Writer

	hadError        bool
	hadRuntimeError bool

	diag *Diag

	tokens []token
	stmts  []stmt

	// depths is the resolution side-table (spec.md §3.9), keyed by the
	// identity of a Variable/Assign/This/Super expression node.
	depths map[expr]int
}

func newInterpreterState(out io.Writer, diag *Diag) *interpreterState {
	return &interpreterState{out: out, diag: diag, depths: make(map[expr]int)}
}

func (s *interpreterState) reset() {
	s.hadError = false
	s.hadRuntimeError = false
}

// reportError implements the §6.3 wire format:
//   [line N] Error<where>: <message>
func (s *interpreterState) reportError(line int, where, message string) {
	fmt.Fprintf(s.out, "[line %d] Error%s: %s\n", line, where, message)
	s.hadError = true
}

// errorAtToken reports a static error located at tok, choosing " at end"
// for EOF and " at '<lexeme>'" otherwise (spec.md §6.3).
func (s *interpreterState) errorAtToken(tok *token, message string) {
	if tok.kind == tkEOF {
		s.reportError(tok.line, " at end", message)
		return
	}
	s.reportError(tok.line, " at '"+tok.lexeme+"'", message)
}

// runtimeErr raises the given message as a runtime error (spec.md §7.3).
// It panics with *runtimeError; the evaluator's top-level loop recovers
// it, reports it, and stops the current program without killing the
// process.
func (s *interpreterState) runtimeErr(tok *token, message string) {
	if s.diag != nil {
		s.diag.Warnf("runtime error: %s", message)
	}
	panic(&runtimeError{tok: tok, message: message})
}

// runtimeError is the structured runtime error carrying the offending
// token for line info (spec.md §7.3).
type runtimeError struct {
	tok     *token
	message string
}

func (e *runtimeError) Error() string { return e.message }

// reportRuntimeError writes a runtime error to the error channel and
// marks hadRuntimeError (spec.md §6.3).
func (s *interpreterState) reportRuntimeError(err *runtimeError) {
	fmt.Fprintf(s.out, "%s\n[line %d]\n", err.message, err.tok.line)
	s.hadRuntimeError = true
}

func (s *interpreterState) depthOf(e expr) (int, bool) {
	d, ok := s.depths[e]
	return d, ok
}
