package internal

// class is a runtime class object (spec.md §3.7): single inheritance,
// method lookup walks the superclass chain, and a method named "init"
// is the initializer.
type class struct {
	name       string
	superclass *class
	methods    map[string]*function
}

func (c *class) findMethod(name string) *function {
	if m, ok := c.methods[name]; ok {
		return m
	}
	if c.superclass != nil {
		return c.superclass.findMethod(name)
	}
	return nil
}

// arity is the arity of init, or 0 if the class has none (spec.md §4.8).
func (c *class) arity() int {
	if init := c.findMethod("init"); init != nil {
		return init.arity()
	}
	return 0
}

// call allocates a new instance, runs its bound init (if any) and
// returns the instance — never the initializer's own return value
// (spec.md §3.7, §4.8).
func (c *class) call(in *interpreter, args []interface{}) interface{} {
	obj := &instance{class: c, fields: make(map[string]interface{})}
	if init := c.findMethod("init"); init != nil {
		init.bind(obj).call(in, args)
	}
	return obj
}

func (c *class) String() string { return c.name }
