package reed

// Env is a binding context that resolves word references during
// evaluation. Environments form a lexical chain via parent.
type Env struct {
	parent *Env
	values map[string]Value
}

func NewEnv(parent *Env) *Env {
	return &Env{parent: parent, values: make(map[string]Value)}
}

// Get resolves a word through the chain. The second result distinguishes
// unbound words from words bound to void.
func (e *Env) Get(name string) (Value, bool) {
	for env := e; env != nil; env = env.parent {
		if val, ok := env.values[name]; ok {
			return val, true
		}
	}
	return Value{}, false
}

// Define binds a word in this environment, shadowing any outer binding.
func (e *Env) Define(name string, val Value) {
	e.values[name] = val
}

// Set stores through the nearest existing binding, defining here when the
// word is unbound anywhere in the chain.
func (e *Env) Set(name string, val Value) {
	for env := e; env != nil; env = env.parent {
		if _, ok := env.values[name]; ok {
			env.values[name] = val
			return
		}
	}
	e.values[name] = val
}

// Names lists the words bound directly in this environment.
func (e *Env) Names() []string {
	names := make([]string, 0, len(e.values))
	for name := range e.values {
		names = append(names, name)
	}
	return names
}
