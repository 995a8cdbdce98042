package internal

// Control-flow signals (spec.md §5, §9 "Control-flow via thrown
// signals"). return/break/continue unwind the Go call stack via panic;
// they are never errors and the resolver (internal/resolver.go)
// guarantees each one is caught by a matching construct before the
// evaluator ever sees one escape.

type returnSignal struct {
	value interface{}
}

type breakSignal struct{}

type continueSignal struct{}
