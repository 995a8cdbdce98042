package internal

// function is a user-defined function or method (spec.md §3.6). Its
// closure pointer is fixed at declaration time and never mutated
// (spec.md §3.10).
type function struct {
	declaration   *functionStmt
	closure       *env
	isInitializer bool
}

func (f *function) arity() int { return len(f.declaration.params) }

func (f *function) call(in *interpreter, args []interface{}) (result interface{}) {
	callEnv := newEnv(in.state, f.closure)
	for i, param := range f.declaration.params {
		callEnv.define(param.lexeme, args[i])
	}

	defer func() {
		if r := recover(); r != nil {
			ret, isReturn := r.(*returnSignal)
			if !isReturn {
				panic(r)
			}
			if f.isInitializer {
				result = f.closure.getAt(0, "this")
				return
			}
			result = ret.value
		}
	}()

	in.executeBlock(f.declaration.body, callEnv)

	if f.isInitializer {
		return f.closure.getAt(0, "this")
	}
	return nil
}

// bind fabricates a new environment child of the method's closure that
// defines `this`, and returns a new function sharing everything else
// (spec.md §3.6, §4.7).
func (f *function) bind(obj *instance) *function {
	bound := newEnv(f.closure.state, f.closure)
	bound.define("this", obj)
	return &function{
		declaration:   f.declaration,
		closure:       bound,
		isInitializer: f.isInitializer,
	}
}

func (f *function) String() string {
	if f.declaration.name == nil {
		return "<fn anonymous>"
	}
	return "<fn " + f.declaration.name.lexeme + ">"
}
