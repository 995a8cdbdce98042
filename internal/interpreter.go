package internal

// Printer is the thin contract the evaluator's `print` statement writes
// through, kept separate from interpreterState.out (the §6.3 error
// channel) so tests can capture program output without touching stderr
// formatting. Grounded on the teacher's IPrinter.
type Printer interface {
	Print(s string)
}

// interpreter is the tree-walking evaluator (spec.md §4.4). It owns the
// global environment, the movable "current" environment, and consults
// interpreterState's resolver side-table for every variable use.
type interpreter struct {
	state   *interpreterState
	globals *env
	env     *env
	printer Printer

	// callToken is the closing-paren token of the call expression
	// currently in progress, used so native functions have a token to
	// attach to a runtime error (they have no AST node of their own).
	callToken *token
}

func newInterpreter(state *interpreterState, printer Printer) *interpreter {
	globals := newEnv(state, nil)
	in := &interpreter{state: state, globals: globals, env: globals, printer: printer}
	defineGlobals(in)
	return in
}

// interpret runs stmts in order, stopping at the first runtime error
// (spec.md §4.4, §7.3). It never lets a runtime error escape to the
// caller; it reports it through the shared error channel instead.
func (in *interpreter) interpret(stmts []stmt) {
	defer func() {
		if r := recover(); r != nil {
			if rerr, ok := r.(*runtimeError); ok {
				in.state.reportRuntimeError(rerr)
				return
			}
			panic(r)
		}
	}()
	for _, s := range stmts {
		in.execute(s)
	}
}

func (in *interpreter) execute(s stmt) interface{} { return s.accept(in) }
func (in *interpreter) eval(e expr) interface{}     { return e.accept(in) }

func (in *interpreter) executeBlock(stmts []stmt, blockEnv *env) {
	previous := in.env
	defer func() { in.env = previous }()
	in.env = blockEnv
	for _, s := range stmts {
		in.execute(s)
	}
}

func (in *interpreter) lookUpVariable(name *token, e expr) interface{} {
	if depth, ok := in.state.depthOf(e); ok {
		return in.env.getAt(depth, name.lexeme)
	}
	return in.globals.get(name)
}

// --- stmtVisitor ---

func (in *interpreter) visitExpressionStmt(s *expressionStmt) interface{} {
	in.eval(s.expression)
	return nil
}

func (in *interpreter) visitPrintStmt(s *printStmt) interface{} {
	value := in.eval(s.expression)
	in.printer.Print(stringify(value))
	return nil
}

func (in *interpreter) visitVarStmt(s *varStmt) interface{} {
	var value interface{}
	if s.initializer != nil {
		value = in.eval(s.initializer)
	}
	in.env.define(s.name.lexeme, value)
	return nil
}

func (in *interpreter) visitBlockStmt(s *blockStmt) interface{} {
	in.executeBlock(s.statements, newEnv(in.state, in.env))
	return nil
}

func (in *interpreter) visitIfStmt(s *ifStmt) interface{} {
	if truthy(in.eval(s.condition)) {
		in.execute(s.thenBranch)
	} else if s.elseBranch != nil {
		in.execute(s.elseBranch)
	}
	return nil
}

// visitWhileStmt drives both `while` and a desugared `for` (spec.md
// §4.6): a `continue` inside the body still runs the increment before
// the next condition test; a `break` exits the loop immediately without
// running it.
func (in *interpreter) visitWhileStmt(s *whileStmt) interface{} {
	for truthy(in.eval(s.condition)) {
		if !in.runLoopBody(s) {
			break
		}
	}
	return nil
}

// runLoopBody executes one iteration of s.body, honoring break/continue.
// It returns false when the loop should stop.
func (in *interpreter) runLoopBody(s *whileStmt) (keepGoing bool) {
	keepGoing = true
	func() {
		defer func() {
			if r := recover(); r != nil {
				switch r.(type) {
				case continueSignal:
					if s.increment != nil {
						in.eval(s.increment)
					}
				case breakSignal:
					keepGoing = false
				default:
					panic(r)
				}
			} else if s.increment != nil {
				in.eval(s.increment)
			}
		}()
		in.execute(s.body)
	}()
	return keepGoing
}

func (in *interpreter) visitFunctionStmt(s *functionStmt) interface{} {
	fn := &function{declaration: s, closure: in.env, isInitializer: false}
	in.env.define(s.name.lexeme, fn)
	return nil
}

func (in *interpreter) visitReturnStmt(s *returnStmt) interface{} {
	var value interface{}
	if s.value != nil {
		value = in.eval(s.value)
	}
	panic(&returnSignal{value: value})
}

func (in *interpreter) visitBreakStmt(s *breakStmt) interface{} {
	panic(breakSignal{})
}

func (in *interpreter) visitContinueStmt(s *continueStmt) interface{} {
	panic(continueSignal{})
}

func (in *interpreter) visitClassStmt(s *classStmt) interface{} {
	var superclass *class
	if s.superclass != nil {
		sc := in.eval(s.superclass)
		c, ok := sc.(*class)
		if !ok {
			in.state.runtimeErr(s.superclass.name, "Superclass must be a class.")
		}
		superclass = c
	}

	in.env.define(s.name.lexeme, nil)

	methodEnv := in.env
	if superclass != nil {
		methodEnv = newEnv(in.state, in.env)
		methodEnv.define("super", superclass)
	}

	methods := make(map[string]*function, len(s.methods))
	for _, m := range s.methods {
		methods[m.name.lexeme] = &function{
			declaration:   m,
			closure:       methodEnv,
			isInitializer: m.name.lexeme == "init",
		}
	}

	cls := &class{name: s.name.lexeme, superclass: superclass, methods: methods}
	in.env.assign(s.name, cls)
	return nil
}

// --- exprVisitor ---

func (in *interpreter) visitLiteralExpr(e *literalExpr) interface{} { return e.value }

func (in *interpreter) visitGroupingExpr(e *groupingExpr) interface{} { return in.eval(e.inner) }

func (in *interpreter) visitUnaryExpr(e *unaryExpr) interface{} {
	right := in.eval(e.right)
	switch e.operator.kind {
	case tkBang:
		return !truthy(right)
	case tkMinus:
		n := in.requireNumber(e.operator, right)
		return n.negate()
	}
	return nil
}

func (in *interpreter) visitBinaryExpr(e *binaryExpr) interface{} {
	left := in.eval(e.left)
	right := in.eval(e.right)

	switch e.operator.kind {
	case tkEqualEqual:
		return equalValues(left, right)
	case tkBangEqual:
		return !equalValues(left, right)
	case tkPlus:
		if ls, ok := left.(string); ok {
			rs, ok := right.(string)
			if !ok {
				in.state.runtimeErr(e.operator, "Operands must be two numbers or two strings.")
			}
			return ls + rs
		}
		ln, lok := left.(Number)
		rn, rok := right.(Number)
		if !lok || !rok {
			in.state.runtimeErr(e.operator, "Operands must be two numbers or two strings.")
		}
		return ln.add(rn)
	case tkMinus:
		ln, rn := in.requireNumbers(e.operator, left, right)
		return ln.sub(rn)
	case tkStar:
		ln, rn := in.requireNumbers(e.operator, left, right)
		return ln.mul(rn)
	case tkSlash:
		ln, rn := in.requireNumbers(e.operator, left, right)
		if rn.float() == 0 {
			in.state.runtimeErr(e.operator, "Division by zero.")
		}
		return ln.div(rn)
	case tkGreater:
		ln, rn := in.requireNumbers(e.operator, left, right)
		return ln.compare(rn) > 0
	case tkGreaterEqual:
		ln, rn := in.requireNumbers(e.operator, left, right)
		return ln.compare(rn) >= 0
	case tkLess:
		ln, rn := in.requireNumbers(e.operator, left, right)
		return ln.compare(rn) < 0
	case tkLessEqual:
		ln, rn := in.requireNumbers(e.operator, left, right)
		return ln.compare(rn) <= 0
	}
	return nil
}

func (in *interpreter) requireNumber(tok *token, v interface{}) Number {
	n, ok := v.(Number)
	if !ok {
		in.state.runtimeErr(tok, "Operand must be a number.")
	}
	return n
}

func (in *interpreter) requireNumbers(tok *token, a, b interface{}) (Number, Number) {
	an, aok := a.(Number)
	bn, bok := b.(Number)
	if !aok || !bok {
		in.state.runtimeErr(tok, "Operands must be numbers.")
	}
	return an, bn
}

func (in *interpreter) visitLogicalExpr(e *logicalExpr) interface{} {
	left := in.eval(e.left)
	if e.operator.kind == tkOr {
		if truthy(left) {
			return left
		}
		return in.eval(e.right)
	}
	// tkAnd
	if !truthy(left) {
		return left
	}
	return in.eval(e.right)
}

func (in *interpreter) visitVariableExpr(e *variableExpr) interface{} {
	return in.lookUpVariable(e.name, e)
}

func (in *interpreter) visitAssignExpr(e *assignExpr) interface{} {
	value := in.eval(e.value)
	if depth, ok := in.state.depthOf(e); ok {
		in.env.assignAt(depth, e.name.lexeme, value)
	} else {
		in.globals.assign(e.name, value)
	}
	return value
}

func (in *interpreter) visitCallExpr(e *callExpr) interface{} {
	calleeVal := in.eval(e.callee)

	args := make([]interface{}, len(e.arguments))
	for i, a := range e.arguments {
		args[i] = in.eval(a)
	}

	fn, ok := calleeVal.(callable)
	if !ok {
		in.state.runtimeErr(e.closingParen, "Can only call functions and classes.")
	}

	if len(args) != fn.arity() {
		in.state.runtimeErr(e.closingParen, "Expected call with a different number of arguments.")
	}

	previousCallToken := in.callToken
	in.callToken = e.closingParen
	defer func() { in.callToken = previousCallToken }()

	return fn.call(in, args)
}

func (in *interpreter) visitGetExpr(e *getExpr) interface{} {
	objVal := in.eval(e.object)
	obj, ok := objVal.(*instance)
	if !ok {
		in.state.runtimeErr(e.name, "Only instances have properties.")
	}
	value, found := obj.get(e.name)
	if !found {
		in.state.runtimeErr(e.name, "Undefined property '"+e.name.lexeme+"'.")
	}
	return value
}

func (in *interpreter) visitSetExpr(e *setExpr) interface{} {
	objVal := in.eval(e.object)
	obj, ok := objVal.(*instance)
	if !ok {
		in.state.runtimeErr(e.name, "Only instances have fields.")
	}
	value := in.eval(e.value)
	obj.set(e.name, value)
	return value
}

func (in *interpreter) visitThisExpr(e *thisExpr) interface{} {
	return in.lookUpVariable(e.keyword, e)
}

// visitSuperExpr looks up `super` at its resolved depth to get the
// superclass, `this` at depth-1 for the instance, finds the method on
// the superclass chain and binds it (spec.md §4.5).
func (in *interpreter) visitSuperExpr(e *superExpr) interface{} {
	depth := in.state.depths[e]
	superclassVal := in.env.getAt(depth, "super")
	superclass := superclassVal.(*class)

	instanceVal := in.env.getAt(depth-1, "this")
	obj := instanceVal.(*instance)

	method := superclass.findMethod(e.method.lexeme)
	if method == nil {
		in.state.runtimeErr(e.method, "Undefined property '"+e.method.lexeme+"'.")
	}
	return method.bind(obj)
}
