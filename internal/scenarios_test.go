package internal

import (
	"strings"
	"testing"
)

// runProgram runs a multi-statement program and returns its printed
// lines joined by newline, matching the one-print-per-line convention.
func runProgram(t *testing.T, source string) string {
	t.Helper()
	printed, errOut, run := runSource(source)
	if errOut != "" {
		t.Fatalf("unexpected error output: %s", errOut)
	}
	if run.HadError() || run.HadRuntimeError() {
		t.Fatalf("unexpected error flag for program:\n%s", source)
	}
	return printed
}

func TestScenarioArithmeticPrecedence(t *testing.T) {
	got := runProgram(t, `print (1 + 2) * -3;`)
	if got != "-9" {
		t.Errorf("got %q", got)
	}
}

func TestScenarioClosureCapturesByReference(t *testing.T) {
	got := runProgram(t, `
fun makeCounter() { var i = 0; fun c() { i = i + 1; return i; } return c; }
var c = makeCounter(); print c(); print c(); print c();
`)
	if got != strings.Join([]string{"1", "2", "3"}, "\n") {
		t.Errorf("got %q", got)
	}
}

func TestScenarioForLoopContinueRunsIncrement(t *testing.T) {
	got := runProgram(t, `
for (var i = 0; i < 5; i = i + 1) { if (i == 2) continue; print i; }
`)
	if got != strings.Join([]string{"0", "1", "3", "4"}, "\n") {
		t.Errorf("got %q", got)
	}
}

func TestScenarioInheritanceAndSuper(t *testing.T) {
	got := runProgram(t, `
class A { greet() { print "A"; } }
class B < A { greet() { super.greet(); print "B"; } }
B().greet();
`)
	if got != strings.Join([]string{"A", "B"}, "\n") {
		t.Errorf("got %q", got)
	}
}

func TestScenarioInitializerReturnsInstance(t *testing.T) {
	got := runProgram(t, `
class P { init(x) { this.x = x; } }
var p = P(7); print p.x;
`)
	if got != "7" {
		t.Errorf("got %q", got)
	}
}

func TestScenarioRuntimeErrorStopsExecution(t *testing.T) {
	_, errOut, run := runSource(`print 1 + "a";`)
	if !run.HadRuntimeError() {
		t.Fatalf("expected a runtime error")
	}
	if !strings.Contains(errOut, "Operands must be two numbers or two strings.") {
		t.Errorf("unexpected error output: %q", errOut)
	}
}
