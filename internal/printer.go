package internal

import "fmt"

// astPrinter renders statements as a Lisp-like s-expression string.
// Grounded on the teacher's stringVisitor (internal/reader.go);
// exercised by the -debug CLI flag (SPEC_FULL.md §13) and by tests that
// want a cheap way to assert on parser shape.
type astPrinter struct{}

func printStmts(stmts []stmt) string {
	p := astPrinter{}
	out := ""
	for _, s := range stmts {
		out += fmt.Sprintf("%v\n", s.accept(p))
	}
	return out
}

func (p astPrinter) visitExpressionStmt(s *expressionStmt) interface{} {
	return s.expression.accept(p)
}

func (p astPrinter) visitPrintStmt(s *printStmt) interface{} {
	return fmt.Sprintf("(print %v)", s.expression.accept(p))
}

func (p astPrinter) visitVarStmt(s *varStmt) interface{} {
	if s.initializer == nil {
		return fmt.Sprintf("(var %s)", s.name.lexeme)
	}
	return fmt.Sprintf("(var %s %v)", s.name.lexeme, s.initializer.accept(p))
}

func (p astPrinter) visitBlockStmt(s *blockStmt) interface{} {
	out := "(block"
	for _, st := range s.statements {
		out += fmt.Sprintf(" %v", st.accept(p))
	}
	return out + ")"
}

func (p astPrinter) visitIfStmt(s *ifStmt) interface{} {
	out := fmt.Sprintf("(if %v %v", s.condition.accept(p), s.thenBranch.accept(p))
	if s.elseBranch != nil {
		out += fmt.Sprintf(" %v", s.elseBranch.accept(p))
	}
	return out + ")"
}

func (p astPrinter) visitWhileStmt(s *whileStmt) interface{} {
	out := fmt.Sprintf("(while %v %v", s.condition.accept(p), s.body.accept(p))
	if s.increment != nil {
		out += fmt.Sprintf(" :increment %v", s.increment.accept(p))
	}
	return out + ")"
}

func (p astPrinter) visitFunctionStmt(s *functionStmt) interface{} {
	out := "(fun " + s.name.lexeme + " ("
	for i, param := range s.params {
		if i > 0 {
			out += " "
		}
		out += param.lexeme
	}
	out += ")"
	for _, st := range s.body {
		out += fmt.Sprintf(" %v", st.accept(p))
	}
	return out + ")"
}

func (p astPrinter) visitReturnStmt(s *returnStmt) interface{} {
	if s.value == nil {
		return "(return)"
	}
	return fmt.Sprintf("(return %v)", s.value.accept(p))
}

func (p astPrinter) visitBreakStmt(s *breakStmt) interface{}       { return "(break)" }
func (p astPrinter) visitContinueStmt(s *continueStmt) interface{} { return "(continue)" }

func (p astPrinter) visitClassStmt(s *classStmt) interface{} {
	out := "(class " + s.name.lexeme
	if s.superclass != nil {
		out += " < " + s.superclass.name.lexeme
	}
	for _, m := range s.methods {
		out += fmt.Sprintf(" %v", m.accept(p))
	}
	return out + ")"
}

func (p astPrinter) visitLiteralExpr(e *literalExpr) interface{} {
	if e.value == nil {
		return "nil"
	}
	return fmt.Sprintf("%v", e.value)
}

func (p astPrinter) visitGroupingExpr(e *groupingExpr) interface{} {
	return fmt.Sprintf("(group %v)", e.inner.accept(p))
}

func (p astPrinter) visitUnaryExpr(e *unaryExpr) interface{} {
	return fmt.Sprintf("(%s %v)", e.operator.lexeme, e.right.accept(p))
}

func (p astPrinter) visitBinaryExpr(e *binaryExpr) interface{} {
	return fmt.Sprintf("(%s %v %v)", e.operator.lexeme, e.left.accept(p), e.right.accept(p))
}

func (p astPrinter) visitLogicalExpr(e *logicalExpr) interface{} {
	return fmt.Sprintf("(%s %v %v)", e.operator.lexeme, e.left.accept(p), e.right.accept(p))
}

func (p astPrinter) visitVariableExpr(e *variableExpr) interface{} { return e.name.lexeme }

func (p astPrinter) visitAssignExpr(e *assignExpr) interface{} {
	return fmt.Sprintf("(set! %s %v)", e.name.lexeme, e.value.accept(p))
}

func (p astPrinter) visitCallExpr(e *callExpr) interface{} {
	out := fmt.Sprintf("(call %v", e.callee.accept(p))
	for _, a := range e.arguments {
		out += fmt.Sprintf(" %v", a.accept(p))
	}
	return out + ")"
}

func (p astPrinter) visitGetExpr(e *getExpr) interface{} {
	return fmt.Sprintf("(get %v %s)", e.object.accept(p), e.name.lexeme)
}

func (p astPrinter) visitSetExpr(e *setExpr) interface{} {
	return fmt.Sprintf("(set %v %s %v)", e.object.accept(p), e.name.lexeme, e.value.accept(p))
}

func (p astPrinter) visitThisExpr(e *thisExpr) interface{} { return "this" }

func (p astPrinter) visitSuperExpr(e *superExpr) interface{} {
	return fmt.Sprintf("(super %s)", e.method.lexeme)
}
