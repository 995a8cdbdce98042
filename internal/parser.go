package internal

// parser is a one-token-lookahead recursive-descent parser implementing
// the grammar in spec.md §4.1, with panic-mode error recovery: a parse
// error discards tokens until the next statement boundary and parsing
// resumes, so one malformed statement doesn't suppress the rest.
type parser struct {
	tokens  []token
	current int
	state   *interpreterState

	loopDepth int
}

func newParser(tokens []token, state *interpreterState) *parser {
	return &parser{tokens: tokens, state: state}
}

const maxArgs = 255

// parseError unwinds parseDeclaration back to synchronize(); it carries no
// payload because the error itself was already reported when raised.
type parseError struct{}

func (p *parser) parse() []stmt {
	var stmts []stmt
	for !p.isAtEnd() {
		if s := p.parseDeclaration(); s != nil {
			stmts = append(stmts, s)
		}
	}
	return stmts
}

func (p *parser) parseDeclaration() (s stmt) {
	defer func() {
		if r := recover(); r != nil {
			if _, ok := r.(parseError); ok {
				p.synchronize()
				s = nil
				return
			}
			panic(r)
		}
	}()
	return p.declaration()
}

func (p *parser) declaration() stmt {
	switch {
	case p.match(tkClass):
		return p.classDecl()
	case p.match(tkFun):
		return p.function("function")
	case p.match(tkVar):
		return p.varDecl()
	default:
		return p.statement()
	}
}

func (p *parser) classDecl() stmt {
	name := p.consume(tkIdentifier, "Expect class name.")

	var superclass *variableExpr
	if p.match(tkLess) {
		p.consume(tkIdentifier, "Expect superclass name.")
		superclass = &variableExpr{name: p.previous()}
	}

	p.consume(tkLeftBrace, "Expect '{' before class body.")

	var methods []*functionStmt
	for !p.check(tkRightBrace) && !p.isAtEnd() {
		methods = append(methods, p.function("method"))
	}

	p.consume(tkRightBrace, "Expect '}' after class body.")

	return &classStmt{name: name, superclass: superclass, methods: methods}
}

func (p *parser) function(kind string) *functionStmt {
	name := p.consume(tkIdentifier, "Expect "+kind+" name.")
	p.consume(tkLeftParen, "Expect '(' after "+kind+" name.")

	var params []*token
	if !p.check(tkRightParen) {
		for {
			if len(params) >= maxArgs {
				p.errorAtCurrent("Can't have more than 255 parameters.")
			}
			params = append(params, p.consume(tkIdentifier, "Expect parameter name."))
			if !p.match(tkComma) {
				break
			}
		}
	}
	p.consume(tkRightParen, "Expect ')' after parameters.")

	p.consume(tkLeftBrace, "Expect '{' before "+kind+" body.")
	body := p.block()

	return &functionStmt{name: name, params: params, body: body}
}

func (p *parser) varDecl() stmt {
	name := p.consume(tkIdentifier, "Expect variable name.")

	var initializer expr
	if p.match(tkEqual) {
		initializer = p.expression()
	}

	p.consume(tkSemicolon, "Expect ';' after variable declaration.")
	return &varStmt{name: name, initializer: initializer}
}

func (p *parser) statement() stmt {
	switch {
	case p.match(tkFor):
		return p.forStmt()
	case p.match(tkIf):
		return p.ifStmt()
	case p.match(tkPrint):
		return p.printStmt()
	case p.match(tkReturn):
		return p.returnStmt()
	case p.match(tkBreak):
		return p.breakStmt()
	case p.match(tkContinue):
		return p.continueStmt()
	case p.match(tkWhile):
		return p.whileStmt()
	case p.match(tkLeftBrace):
		return &blockStmt{statements: p.block()}
	default:
		return p.expressionStmt()
	}
}

// forStmt desugars `for (init; cond; incr) body` into
// `{ init; while (cond) body }`, with incr stored only in the while
// node's increment field; the evaluator runs it after each iteration,
// including one ended by `continue` (spec.md §4.1). A missing cond
// becomes `true`.
func (p *parser) forStmt() stmt {
	p.consume(tkLeftParen, "Expect '(' after 'for'.")

	var initializer stmt
	switch {
	case p.match(tkSemicolon):
		initializer = nil
	case p.match(tkVar):
		initializer = p.varDecl()
	default:
		initializer = p.expressionStmt()
	}

	var condition expr
	if !p.check(tkSemicolon) {
		condition = p.expression()
	}
	p.consume(tkSemicolon, "Expect ';' after loop condition.")

	var increment expr
	if !p.check(tkRightParen) {
		increment = p.expression()
	}
	p.consume(tkRightParen, "Expect ')' after for clauses.")

	p.loopDepth++
	body := p.statement()
	p.loopDepth--

	if condition == nil {
		condition = &literalExpr{value: true}
	}

	loop := &whileStmt{condition: condition, body: body, increment: increment}

	if initializer == nil {
		return loop
	}
	return &blockStmt{statements: []stmt{initializer, loop}}
}

func (p *parser) ifStmt() stmt {
	p.consume(tkLeftParen, "Expect '(' after 'if'.")
	condition := p.expression()
	p.consume(tkRightParen, "Expect ')' after if condition.")

	thenBranch := p.statement()
	var elseBranch stmt
	if p.match(tkElse) {
		elseBranch = p.statement()
	}
	return &ifStmt{condition: condition, thenBranch: thenBranch, elseBranch: elseBranch}
}

func (p *parser) printStmt() stmt {
	value := p.expression()
	p.consume(tkSemicolon, "Expect ';' after value.")
	return &printStmt{expression: value}
}

func (p *parser) returnStmt() stmt {
	keyword := p.previous()
	var value expr
	if !p.check(tkSemicolon) {
		value = p.expression()
	}
	p.consume(tkSemicolon, "Expect ';' after return value.")
	return &returnStmt{keyword: keyword, value: value}
}

func (p *parser) breakStmt() stmt {
	keyword := p.previous()
	if p.loopDepth == 0 {
		p.errorAt(keyword, "Can't use 'break' outside of a loop.")
	}
	p.consume(tkSemicolon, "Expect ';' after 'break'.")
	return &breakStmt{keyword: keyword}
}

func (p *parser) continueStmt() stmt {
	keyword := p.previous()
	if p.loopDepth == 0 {
		p.errorAt(keyword, "Can't use 'continue' outside of a loop.")
	}
	p.consume(tkSemicolon, "Expect ';' after 'continue'.")
	return &continueStmt{keyword: keyword}
}

func (p *parser) whileStmt() stmt {
	p.consume(tkLeftParen, "Expect '(' after 'while'.")
	condition := p.expression()
	p.consume(tkRightParen, "Expect ')' after condition.")

	p.loopDepth++
	body := p.statement()
	p.loopDepth--

	return &whileStmt{condition: condition, body: body}
}

func (p *parser) block() []stmt {
	var stmts []stmt
	for !p.check(tkRightBrace) && !p.isAtEnd() {
		if s := p.parseDeclaration(); s != nil {
			stmts = append(stmts, s)
		}
	}
	p.consume(tkRightBrace, "Expect '}' after block.")
	return stmts
}

func (p *parser) expressionStmt() stmt {
	e := p.expression()
	p.consume(tkSemicolon, "Expect ';' after expression.")
	return &expressionStmt{expression: e}
}

func (p *parser) expression() expr {
	return p.assignment()
}

// assignment reparses its LHS: Variable -> Assign, Get -> Set, anything
// else is a soft "Invalid assignment target." error that does not enter
// panic mode (spec.md §4.1).
func (p *parser) assignment() expr {
	e := p.or()

	if p.match(tkEqual) {
		equals := p.previous()
		value := p.assignment()

		switch target := e.(type) {
		case *variableExpr:
			return &assignExpr{name: target.name, value: value}
		case *getExpr:
			return &setExpr{object: target.object, name: target.name, value: value}
		default:
			p.errorAt(equals, "Invalid assignment target.")
			return e
		}
	}

	return e
}

func (p *parser) or() expr {
	e := p.and()
	for p.match(tkOr) {
		operator := p.previous()
		right := p.and()
		e = &logicalExpr{left: e, operator: operator, right: right}
	}
	return e
}

func (p *parser) and() expr {
	e := p.equality()
	for p.match(tkAnd) {
		operator := p.previous()
		right := p.equality()
		e = &logicalExpr{left: e, operator: operator, right: right}
	}
	return e
}

func (p *parser) equality() expr {
	e := p.comparison()
	for p.match(tkBangEqual, tkEqualEqual) {
		operator := p.previous()
		right := p.comparison()
		e = &binaryExpr{left: e, operator: operator, right: right}
	}
	return e
}

func (p *parser) comparison() expr {
	e := p.term()
	for p.match(tkGreater, tkGreaterEqual, tkLess, tkLessEqual) {
		operator := p.previous()
		right := p.term()
		e = &binaryExpr{left: e, operator: operator, right: right}
	}
	return e
}

func (p *parser) term() expr {
	e := p.factor()
	for p.match(tkMinus, tkPlus) {
		operator := p.previous()
		right := p.factor()
		e = &binaryExpr{left: e, operator: operator, right: right}
	}
	return e
}

func (p *parser) factor() expr {
	e := p.unary()
	for p.match(tkSlash, tkStar) {
		operator := p.previous()
		right := p.unary()
		e = &binaryExpr{left: e, operator: operator, right: right}
	}
	return e
}

func (p *parser) unary() expr {
	if p.match(tkBang, tkMinus) {
		operator := p.previous()
		right := p.unary()
		return &unaryExpr{operator: operator, right: right}
	}
	return p.call()
}

func (p *parser) call() expr {
	e := p.primary()
	for {
		switch {
		case p.match(tkLeftParen):
			e = p.finishCall(e)
		case p.match(tkDot):
			name := p.consume(tkIdentifier, "Expect property name after '.'.")
			e = &getExpr{object: e, name: name}
		default:
			return e
		}
	}
}

func (p *parser) finishCall(callee expr) expr {
	var args []expr
	if !p.check(tkRightParen) {
		for {
			if len(args) >= maxArgs {
				p.errorAtCurrent("Can't have more than 255 arguments.")
			}
			args = append(args, p.expression())
			if !p.match(tkComma) {
				break
			}
		}
	}
	closingParen := p.consume(tkRightParen, "Expect ')' after arguments.")
	return &callExpr{callee: callee, closingParen: closingParen, arguments: args}
}

func (p *parser) primary() expr {
	switch {
	case p.match(tkFalse):
		return &literalExpr{value: false}
	case p.match(tkTrue):
		return &literalExpr{value: true}
	case p.match(tkNil):
		return &literalExpr{value: nil}
	case p.match(tkNumber, tkString):
		return &literalExpr{value: p.previous().literal}
	case p.match(tkSuper):
		keyword := p.previous()
		p.consume(tkDot, "Expect '.' after 'super'.")
		method := p.consume(tkIdentifier, "Expect superclass method name.")
		return &superExpr{keyword: keyword, method: method}
	case p.match(tkThis):
		return &thisExpr{keyword: p.previous()}
	case p.match(tkIdentifier):
		return &variableExpr{name: p.previous()}
	case p.match(tkLeftParen):
		e := p.expression()
		p.consume(tkRightParen, "Expect ')' after expression.")
		return &groupingExpr{inner: e}
	}

	p.errorAtCurrent("Expect expression.")
	panic(parseError{})
}

// --- token-stream primitives ---

func (p *parser) match(kinds ...tokenType) bool {
	for _, k := range kinds {
		if p.check(k) {
			p.advance()
			return true
		}
	}
	return false
}

func (p *parser) check(kind tokenType) bool {
	if p.isAtEnd() {
		return kind == tkEOF
	}
	return p.peek().kind == kind
}

func (p *parser) advance() *token {
	if !p.isAtEnd() {
		p.current++
	}
	return p.previous()
}

func (p *parser) consume(kind tokenType, message string) *token {
	if p.check(kind) {
		return p.advance()
	}
	p.errorAtCurrent(message)
	panic(parseError{})
}

func (p *parser) peek() *token { return &p.tokens[p.current] }

func (p *parser) previous() *token { return &p.tokens[p.current-1] }

func (p *parser) isAtEnd() bool { return p.peek().kind == tkEOF }

func (p *parser) errorAtCurrent(message string) {
	p.state.errorAtToken(p.peek(), message)
}

func (p *parser) errorAt(tok *token, message string) {
	p.state.errorAtToken(tok, message)
}

// synchronize discards tokens until the next statement boundary: a
// semicolon or a keyword that starts a statement (spec.md §4.1, §7.1).
func (p *parser) synchronize() {
	for !p.isAtEnd() {
		if p.previous().kind == tkSemicolon {
			return
		}
		switch p.peek().kind {
		case tkClass, tkFun, tkVar, tkFor, tkIf, tkWhile, tkPrint, tkReturn:
			return
		}
		p.advance()
	}
}
