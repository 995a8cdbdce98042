package internal

import (
	"strings"
	"testing"
)

// testPrinter captures print-statement output line by line, mirroring
// the teacher's testPrinter in internal/exec_test.go.
type testPrinter struct {
	lines []string
}

func (p *testPrinter) Print(s string) { p.lines = append(p.lines, s) }

func (p *testPrinter) joined() string { return strings.Join(p.lines, "\n") }

// runSource runs source through a fresh Run and returns the printed
// lines, the error-channel text (static and runtime errors together)
// and the Run itself, so a test can also check the error flags.
func runSource(source string) (printed string, errOut string, run *Run) {
	tp := &testPrinter{}
	var errBuf strings.Builder
	run = NewRun(&errBuf, tp, nil, false)
	run.Source(source)
	return tp.joined(), errBuf.String(), run
}

// checkExpression evaluates `print <expr>;` and asserts the printed
// result equals want.
func checkExpression(t *testing.T, expr, want string) {
	t.Helper()
	got, errOut, run := runSource("print " + expr + ";")
	if errOut != "" {
		t.Fatalf("expr %q: unexpected error output: %s", expr, errOut)
	}
	if run.HadError() || run.HadRuntimeError() {
		t.Fatalf("expr %q: unexpected error flag set", expr)
	}
	if got != want {
		t.Errorf("expr %q: got %q, want %q", expr, got, want)
	}
}

// checkStatements runs code, then prints resultExpr and asserts it
// equals want.
func checkStatements(t *testing.T, code, resultExpr, want string) {
	t.Helper()
	got, errOut, run := runSource(code + "\nprint " + resultExpr + ";")
	if errOut != "" {
		t.Fatalf("code %q: unexpected error output: %s", code, errOut)
	}
	if run.HadError() || run.HadRuntimeError() {
		t.Fatalf("code %q: unexpected error flag set", code)
	}
	if got != want {
		t.Errorf("code %q: %s got %q, want %q", code, resultExpr, got, want)
	}
}
