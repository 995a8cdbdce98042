package internal

// expr is any expression AST node. Nodes are immutable once built by the
// parser; the resolver and evaluator only borrow them.
type expr interface {
	accept(exprVisitor) interface{}
}

type exprVisitor interface {
	visitLiteralExpr(e *literalExpr) interface{}
	visitGroupingExpr(e *groupingExpr) interface{}
	visitUnaryExpr(e *unaryExpr) interface{}
	visitBinaryExpr(e *binaryExpr) interface{}
	visitLogicalExpr(e *logicalExpr) interface{}
	visitVariableExpr(e *variableExpr) interface{}
	visitAssignExpr(e *assignExpr) interface{}
	visitCallExpr(e *callExpr) interface{}
	visitGetExpr(e *getExpr) interface{}
	visitSetExpr(e *setExpr) interface{}
	visitThisExpr(e *thisExpr) interface{}
	visitSuperExpr(e *superExpr) interface{}
}

type literalExpr struct {
	value interface{}
}

func (e *literalExpr) accept(v exprVisitor) interface{} { return v.visitLiteralExpr(e) }

type groupingExpr struct {
	inner expr
}

func (e *groupingExpr) accept(v exprVisitor) interface{} { return v.visitGroupingExpr(e) }

type unaryExpr struct {
	operator *token
	right    expr
}

func (e *unaryExpr) accept(v exprVisitor) interface{} { return v.visitUnaryExpr(e) }

type binaryExpr struct {
	left     expr
	operator *token
	right    expr
}

func (e *binaryExpr) accept(v exprVisitor) interface{} { return v.visitBinaryExpr(e) }

type logicalExpr struct {
	left     expr
	operator *token
	right    expr
}

func (e *logicalExpr) accept(v exprVisitor) interface{} { return v.visitLogicalExpr(e) }

type variableExpr struct {
	name *token
}

func (e *variableExpr) accept(v exprVisitor) interface{} { return v.visitVariableExpr(e) }

type assignExpr struct {
	name  *token
	value expr
}

func (e *assignExpr) accept(v exprVisitor) interface{} { return v.visitAssignExpr(e) }

type callExpr struct {
	callee      expr
	closingParen *token
	arguments   []expr
}

func (e *callExpr) accept(v exprVisitor) interface{} { return v.visitCallExpr(e) }

type getExpr struct {
	object expr
	name   *token
}

func (e *getExpr) accept(v exprVisitor) interface{} { return v.visitGetExpr(e) }

type setExpr struct {
	object expr
	name   *token
	value  expr
}

func (e *setExpr) accept(v exprVisitor) interface{} { return v.visitSetExpr(e) }

type thisExpr struct {
	keyword *token
}

func (e *thisExpr) accept(v exprVisitor) interface{} { return v.visitThisExpr(e) }

type superExpr struct {
	keyword *token
	method  *token
}

func (e *superExpr) accept(v exprVisitor) interface{} { return v.visitSuperExpr(e) }
