package internal

import "testing"

func TestStringNatives(t *testing.T) {
	checkExpression(t, `toLower("ABC")`, "abc")
	checkExpression(t, `toUpper("abc")`, "ABC")
	checkExpression(t, `chr(65)`, "A")
	checkExpression(t, `ord("A")`, "65")
	checkExpression(t, `asNumber("3.5")`, "3.5")
	checkExpression(t, `asNumber("not a number")`, "nil")
}

func TestEnvNatives(t *testing.T) {
	checkStatements(t, `
setEnv("LOX_TEST_VAR", "hi");
var v = getEnv("LOX_TEST_VAR");
`, "v", "hi")
}

func TestClockReturnsANumber(t *testing.T) {
	printed, errOut, run := runSource(`
var before = clock();
var after = clock();
print after >= before;
`)
	if errOut != "" || run.HadError() || run.HadRuntimeError() {
		t.Fatalf("unexpected error: %q", errOut)
	}
	if printed != "true" {
		t.Errorf("expected clock() calls to be monotonic, got %q", printed)
	}
}
