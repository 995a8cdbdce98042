package internal

import (
	"strings"
	"testing"
)

func resolveOK(t *testing.T, source string) (*interpreterState, []stmt) {
	t.Helper()
	state := newInterpreterState(&strings.Builder{}, nil)
	tokens := newLexer(source, state).scan()
	stmts := newParser(tokens, state).parse()
	if state.hadError {
		t.Fatalf("unexpected parse error for %q", source)
	}
	newResolver(state).resolveAll(stmts)
	return state, stmts
}

func TestResolverAssignsLocalDepth(t *testing.T) {
	state, stmts := resolveOK(t, `
{
  var a = 1;
  {
    print a;
  }
}
`)
	outerBlock := stmts[0].(*blockStmt)
	innerBlock := outerBlock.statements[1].(*blockStmt)
	printExpr := innerBlock.statements[0].(*printStmt).expression.(*variableExpr)
	depth, ok := state.depthOf(printExpr)
	if !ok || depth != 1 {
		t.Fatalf("expected depth 1 for a read one scope up, got %d ok=%v", depth, ok)
	}
}

func TestResolverLeavesGlobalsUnrecorded(t *testing.T) {
	state, stmts := resolveOK(t, `
var a = 1;
print a;
`)
	printExpr := stmts[1].(*printStmt).expression.(*variableExpr)
	if _, ok := state.depthOf(printExpr); ok {
		t.Fatalf("global reads should not be recorded in the side-table")
	}
}

func TestResolverRejectsReturnOutsideFunction(t *testing.T) {
	state := newInterpreterState(&strings.Builder{}, nil)
	tokens := newLexer("return 1;", state).scan()
	stmts := newParser(tokens, state).parse()
	newResolver(state).resolveAll(stmts)
	if !state.hadError {
		t.Fatalf("expected a static error for return at top level")
	}
}

func TestResolverRejectsDuplicateLocalDeclaration(t *testing.T) {
	state := newInterpreterState(&strings.Builder{}, nil)
	tokens := newLexer("{ var a = 1; var a = 2; }", state).scan()
	stmts := newParser(tokens, state).parse()
	newResolver(state).resolveAll(stmts)
	if !state.hadError {
		t.Fatalf("expected a static error for a duplicate local declaration")
	}
}

func TestResolverRejectsSelfInheritingClass(t *testing.T) {
	state := newInterpreterState(&strings.Builder{}, nil)
	tokens := newLexer("class A < A {}", state).scan()
	stmts := newParser(tokens, state).parse()
	newResolver(state).resolveAll(stmts)
	if !state.hadError {
		t.Fatalf("expected a static error for a class inheriting from itself")
	}
}

func TestResolverRejectsThisOutsideClass(t *testing.T) {
	state := newInterpreterState(&strings.Builder{}, nil)
	tokens := newLexer("print this;", state).scan()
	stmts := newParser(tokens, state).parse()
	newResolver(state).resolveAll(stmts)
	if !state.hadError {
		t.Fatalf("expected a static error for 'this' outside a class")
	}
}

func TestResolverRejectsBreakOutsideLoop(t *testing.T) {
	state := newInterpreterState(&strings.Builder{}, nil)
	tokens := newLexer("break;", state).scan()
	stmts := newParser(tokens, state).parse()
	newResolver(state).resolveAll(stmts)
	if !state.hadError {
		t.Fatalf("expected a static error for 'break' outside a loop")
	}
}
