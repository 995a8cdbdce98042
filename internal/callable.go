package internal

// callable is the capability set shared by user functions, native
// functions and classes (spec.md §9 "Dynamic type erasure").
type callable interface {
	arity() int
	call(in *interpreter, args []interface{}) interface{}
	String() string
}

// nativeFn wraps a Go closure as a callable with a fixed arity
// (spec.md §4.9). callFn may itself call in.state.runtimeErr to report a
// bad argument.
type nativeFn struct {
	name       string
	arityValue int
	callFn     func(in *interpreter, args []interface{}) interface{}
}

func (n *nativeFn) arity() int { return n.arityValue }

func (n *nativeFn) call(in *interpreter, args []interface{}) interface{} {
	return n.callFn(in, args)
}

func (n *nativeFn) String() string { return "<native fn: " + n.name + ">" }
