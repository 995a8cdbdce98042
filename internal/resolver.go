package internal

// resolver is the static pre-evaluation walk described in spec.md §4.2.
// It annotates every Variable/Assign/This/Super node with a lexical hop
// count into interpreterState.depths, and rejects programs that violate
// a static rule (duplicate local declaration, read-before-define,
// return/this/super/break/continue outside their required context, a
// class inheriting from itself).
type resolver struct {
	state *interpreterState

	scopes []map[string]bool // false = declared, true = defined

	currentFunction functionType
	currentClass    classType
	loopDepth       int
}

type functionType int

const (
	ftNone functionType = iota
	ftFunction
	ftMethod
	ftInitializer
)

type classType int

const (
	ctNone classType = iota
	ctClass
	ctSubclass
)

func newResolver(state *interpreterState) *resolver {
	return &resolver{state: state}
}

func (r *resolver) resolveAll(stmts []stmt) {
	for _, s := range stmts {
		r.resolveStmt(s)
	}
}

func (r *resolver) resolveStmt(s stmt) { s.accept(r) }
func (r *resolver) resolveExpr(e expr) { e.accept(r) }

func (r *resolver) beginScope() { r.scopes = append(r.scopes, make(map[string]bool)) }
func (r *resolver) endScope()   { r.scopes = r.scopes[:len(r.scopes)-1] }

func (r *resolver) declare(name *token) {
	if len(r.scopes) == 0 {
		return
	}
	scope := r.scopes[len(r.scopes)-1]
	if _, ok := scope[name.lexeme]; ok {
		r.state.errorAtToken(name, "Already a variable with this name in this scope.")
	}
	scope[name.lexeme] = false
}

func (r *resolver) define(name *token) {
	if len(r.scopes) == 0 {
		return
	}
	r.scopes[len(r.scopes)-1][name.lexeme] = true
}

// resolveLocal walks the scope stack from the innermost scope outward;
// the first scope containing the name determines the depth recorded in
// the side-table (spec.md §4.2).
func (r *resolver) resolveLocal(e expr, name *token) {
	for i := len(r.scopes) - 1; i >= 0; i-- {
		if _, ok := r.scopes[i][name.lexeme]; ok {
			r.state.depths[e] = len(r.scopes) - 1 - i
			return
		}
	}
	// Not found in any local scope: treated as a global, not recorded.
}

func (r *resolver) resolveFunction(fn *functionStmt, kind functionType) {
	enclosingFunction := r.currentFunction
	r.currentFunction = kind
	defer func() { r.currentFunction = enclosingFunction }()

	r.beginScope()
	defer r.endScope()
	for _, p := range fn.params {
		r.declare(p)
		r.define(p)
	}
	r.resolveAll(fn.body)
}

// --- stmtVisitor ---

func (r *resolver) visitBlockStmt(s *blockStmt) interface{} {
	r.beginScope()
	r.resolveAll(s.statements)
	r.endScope()
	return nil
}

func (r *resolver) visitVarStmt(s *varStmt) interface{} {
	r.declare(s.name)
	if s.initializer != nil {
		r.resolveExpr(s.initializer)
	}
	r.define(s.name)
	return nil
}

func (r *resolver) visitFunctionStmt(s *functionStmt) interface{} {
	r.declare(s.name)
	r.define(s.name)
	r.resolveFunction(s, ftFunction)
	return nil
}

func (r *resolver) visitExpressionStmt(s *expressionStmt) interface{} {
	r.resolveExpr(s.expression)
	return nil
}

func (r *resolver) visitPrintStmt(s *printStmt) interface{} {
	r.resolveExpr(s.expression)
	return nil
}

func (r *resolver) visitIfStmt(s *ifStmt) interface{} {
	r.resolveExpr(s.condition)
	r.resolveStmt(s.thenBranch)
	if s.elseBranch != nil {
		r.resolveStmt(s.elseBranch)
	}
	return nil
}

func (r *resolver) visitWhileStmt(s *whileStmt) interface{} {
	r.resolveExpr(s.condition)
	r.loopDepth++
	r.resolveStmt(s.body)
	r.loopDepth--
	if s.increment != nil {
		r.resolveExpr(s.increment)
	}
	return nil
}

func (r *resolver) visitReturnStmt(s *returnStmt) interface{} {
	if r.currentFunction == ftNone {
		r.state.errorAtToken(s.keyword, "Can't return from top-level code.")
	}
	if s.value != nil {
		if r.currentFunction == ftInitializer {
			r.state.errorAtToken(s.keyword, "Can't return a value from an initializer.")
		}
		r.resolveExpr(s.value)
	}
	return nil
}

func (r *resolver) visitBreakStmt(s *breakStmt) interface{} {
	if r.loopDepth == 0 {
		r.state.errorAtToken(s.keyword, "Can't use 'break' outside of a loop.")
	}
	return nil
}

func (r *resolver) visitContinueStmt(s *continueStmt) interface{} {
	if r.loopDepth == 0 {
		r.state.errorAtToken(s.keyword, "Can't use 'continue' outside of a loop.")
	}
	return nil
}

func (r *resolver) visitClassStmt(s *classStmt) interface{} {
	enclosingClass := r.currentClass
	r.currentClass = ctClass
	defer func() { r.currentClass = enclosingClass }()

	r.declare(s.name)
	r.define(s.name)

	if s.superclass != nil {
		if s.superclass.name.lexeme == s.name.lexeme {
			r.state.errorAtToken(s.superclass.name, "A class can't inherit from itself.")
		}
		r.currentClass = ctSubclass
		r.resolveExpr(s.superclass)

		r.beginScope()
		r.scopes[len(r.scopes)-1]["super"] = true
		defer r.endScope()
	}

	r.beginScope()
	r.scopes[len(r.scopes)-1]["this"] = true
	defer r.endScope()

	for _, method := range s.methods {
		kind := ftMethod
		if method.name.lexeme == "init" {
			kind = ftInitializer
		}
		r.resolveFunction(method, kind)
	}

	return nil
}

// --- exprVisitor ---

func (r *resolver) visitVariableExpr(e *variableExpr) interface{} {
	if len(r.scopes) > 0 {
		if defined, ok := r.scopes[len(r.scopes)-1][e.name.lexeme]; ok && !defined {
			r.state.errorAtToken(e.name, "Can't read local variable in its own initializer.")
		}
	}
	r.resolveLocal(e, e.name)
	return nil
}

func (r *resolver) visitAssignExpr(e *assignExpr) interface{} {
	r.resolveExpr(e.value)
	r.resolveLocal(e, e.name)
	return nil
}

func (r *resolver) visitBinaryExpr(e *binaryExpr) interface{} {
	r.resolveExpr(e.left)
	r.resolveExpr(e.right)
	return nil
}

func (r *resolver) visitLogicalExpr(e *logicalExpr) interface{} {
	r.resolveExpr(e.left)
	r.resolveExpr(e.right)
	return nil
}

func (r *resolver) visitCallExpr(e *callExpr) interface{} {
	r.resolveExpr(e.callee)
	for _, a := range e.arguments {
		r.resolveExpr(a)
	}
	return nil
}

func (r *resolver) visitGetExpr(e *getExpr) interface{} {
	r.resolveExpr(e.object)
	return nil
}

func (r *resolver) visitSetExpr(e *setExpr) interface{} {
	r.resolveExpr(e.value)
	r.resolveExpr(e.object)
	return nil
}

func (r *resolver) visitThisExpr(e *thisExpr) interface{} {
	if r.currentClass == ctNone {
		r.state.errorAtToken(e.keyword, "Can't use 'this' outside of a class.")
		return nil
	}
	r.resolveLocal(e, e.keyword)
	return nil
}

func (r *resolver) visitSuperExpr(e *superExpr) interface{} {
	if r.currentClass == ctNone {
		r.state.errorAtToken(e.keyword, "Can't use 'super' outside of a class.")
	} else if r.currentClass != ctSubclass {
		r.state.errorAtToken(e.keyword, "Can't use 'super' in a class with no superclass.")
	}
	r.resolveLocal(e, e.keyword)
	return nil
}

func (r *resolver) visitGroupingExpr(e *groupingExpr) interface{} {
	r.resolveExpr(e.inner)
	return nil
}

func (r *resolver) visitLiteralExpr(e *literalExpr) interface{} { return nil }

func (r *resolver) visitUnaryExpr(e *unaryExpr) interface{} {
	r.resolveExpr(e.right)
	return nil
}
