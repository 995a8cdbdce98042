package internal

import (
	"strings"
	"testing"
)

func TestArithmeticAndPrecedence(t *testing.T) {
	checkExpression(t, "1 + 2 * 3", "7")
	checkExpression(t, "(1 + 2) * 3", "9")
	checkExpression(t, "10 / 4", "2.5")
	checkExpression(t, "7 / 2", "3.5")
	checkExpression(t, "-5 + 2", "-3")
	checkExpression(t, `"a" + "b"`, "ab")
	checkExpression(t, "1 == 1.0", "true")
	checkExpression(t, "2 < 3", "true")
	checkExpression(t, "!false", "true")
	checkExpression(t, "!0", "false")
	checkExpression(t, `!""`, "false")
	checkExpression(t, "!nil", "true")
}

// Integer arithmetic that overflows int64 promotes to float64 rather
// than wrapping (SPEC_FULL.md §12, Open Question (b)).
func TestIntegerOverflowPromotesToFloat(t *testing.T) {
	checkExpression(t, "9223372036854775807 + 1", "9223372036854775808")
}

func TestClosureCapturesByReference(t *testing.T) {
	checkStatements(t, `
fun makeCounter() {
  var count = 0;
  fun counter() {
    count = count + 1;
    return count;
  }
  return counter;
}
var c = makeCounter();
c();
c();
var last = c();
`, "last", "3")
}

// A continue inside a for-loop still runs the increment before the
// next condition test (spec.md §4.6).
func TestForLoopContinueRunsIncrement(t *testing.T) {
	checkStatements(t, `
var sum = 0;
for (var i = 0; i < 10; i = i + 1) {
  if (i == 5) continue;
  sum = sum + i;
}
`, "sum", "40")
}

func TestBreakStopsLoopImmediately(t *testing.T) {
	checkStatements(t, `
var sum = 0;
for (var i = 0; i < 10; i = i + 1) {
  if (i == 5) break;
  sum = sum + i;
}
`, "sum", "10")
}

func TestInheritanceAndSuper(t *testing.T) {
	checkStatements(t, `
class Animal {
  speak() {
    return "...";
  }
}
class Dog < Animal {
  speak() {
    return "Woof, " + super.speak();
  }
}
var result = Dog().speak();
`, "result", "Woof, ...")
}

func TestInitializerReturnsInstanceNotOwnReturn(t *testing.T) {
	checkStatements(t, `
class Box {
  init(contents) {
    this.contents = contents;
  }
}
var b = Box("marbles");
`, "b.contents", "marbles")
}

func TestInitializerExplicitReturnStillYieldsInstance(t *testing.T) {
	checkStatements(t, `
class Guard {
  init(x) {
    this.x = x;
    if (x > 0) return;
    this.x = -1;
  }
}
var g = Guard(5);
`, "g.x", "5")
}

func TestRuntimeErrorStopsExecutionButKeepsSessionAlive(t *testing.T) {
	_, errOut, run := runSource(`
print "before";
print 1 + "two";
print "after";
`)
	if !run.HadRuntimeError() {
		t.Fatalf("expected a runtime error, errOut=%q", errOut)
	}
	if strings.Contains(errOut, "after") {
		t.Fatalf("statement after the failing one should not have run: %q", errOut)
	}
	if !strings.Contains(errOut, "Operands must be two numbers or two strings.") {
		t.Fatalf("unexpected error message: %q", errOut)
	}

	// The session itself survives a runtime error: the next call to
	// Source resets the flags and runs normally (spec.md §8.1).
	printed, errOut2, run2 := func() (string, string, *Run) {
		tp := &testPrinter{}
		var errBuf strings.Builder
		run2 := run
		run2.state.out = &errBuf
		run2.interp.printer = tp
		run2.Source(`print "recovered";`)
		return tp.joined(), errBuf.String(), run2
	}()
	if errOut2 != "" {
		t.Fatalf("unexpected error after recovery: %q", errOut2)
	}
	if run2.HadRuntimeError() {
		t.Fatalf("runtime error flag should have reset")
	}
	if printed != "recovered" {
		t.Fatalf("got %q", printed)
	}
}

func TestFieldsShadowMethods(t *testing.T) {
	checkStatements(t, `
class C {
  greet() { return "method"; }
}
var c = C();
c.greet = "field";
`, "c.greet", "field")
}

func TestFunctionStringification(t *testing.T) {
	checkStatements(t, `
fun greet() {}
`, "greet", "<fn greet>")
}

func TestFunctionWithNoReturnYieldsNil(t *testing.T) {
	checkStatements(t, `
fun nothing() {}
var result = nothing();
`, "result", "nil")
}
