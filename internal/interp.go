package internal

import "io"

// Run is the public entry point used by cmd/lox and by tests: it drives
// the whole pipeline — lex, parse, resolve, evaluate — against one
// source string, sharing a single interpreterState and interpreter
// across calls so a REPL session keeps its globals and closures alive
// between lines (spec.md §6.1, §8.1). Grounded on the teacher's
// RunSourceWithPrinter (internal/exec.go).
type Run struct {
	state *interpreterState
	interp *interpreter
	debug  bool
}

// NewRun builds a fresh session writing errors to errOut and print
// output through printer. diag receives internal trace output when
// debug is true (SPEC_FULL.md §13's -debug flag).
func NewRun(errOut io.Writer, printer Printer, diag *Diag, debug bool) *Run {
	state := newInterpreterState(errOut, diag)
	interp := newInterpreter(state, printer)
	return &Run{state: state, interp: interp, debug: debug}
}

// Source runs one chunk of source text through the full pipeline. It
// never evaluates a chunk that failed to lex, parse or resolve
// (spec.md §4.2's "no evaluation if any static error"), and it resets
// the two error flags at the start of every call so a REPL's next line
// isn't poisoned by the previous one's failure (spec.md §6.3, §8.1).
func (run *Run) Source(source string) {
	run.state.reset()

	lx := newLexer(source, run.state)
	tokens := lx.scan()

	p := newParser(tokens, run.state)
	stmts := p.parse()

	if run.state.hadError {
		return
	}

	res := newResolver(run.state)
	res.resolveAll(stmts)

	if run.state.hadError {
		return
	}

	if run.debug && run.state.diag != nil {
		run.state.diag.Tracef("ast:\n%s", printStmts(stmts))
		for _, d := range depthReport(run.state, stmts) {
			run.state.diag.Tracef("%s", d)
		}
	}

	run.interp.interpret(stmts)
}

// HadError reports whether the most recent Source call produced a
// static (lex/parse/resolve) error.
func (run *Run) HadError() bool { return run.state.hadError }

// HadRuntimeError reports whether the most recent Source call produced
// a runtime error (spec.md §6.2's exit code 70 path).
func (run *Run) HadRuntimeError() bool { return run.state.hadRuntimeError }
