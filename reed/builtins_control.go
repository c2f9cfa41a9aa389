package reed

// Branching, loops, and the enfix branch operators. Loops share one result
// convention: break yields void, a completed loop yields its last body
// value, and a loop whose body produced nothing (or never ran) yields blank
// so that a void result always means "broken out of".

func registerControl(e *Engine) {
	e.Register("break", NewAction(e.breakAction))
	e.Register("continue", NewAction(e.continueAction))
	e.Register("halt", NewAction(e.haltAction))
	e.Register("throw", NewAction(e.throwAction))

	e.RegisterNative("if", []Param{
		param("condition", ParamNormal),
		param("branch", ParamNormal),
	}, func(f *Frame) (DispatchResult, error) {
		if !f.Arg(0).Truthy() {
			f.SetOut(NewVoid())
			return DispatchCompleted, nil
		}
		result, err := branch(f, f.Arg(1))
		if err != nil {
			return DispatchCompleted, err
		}
		f.SetOut(result)
		return DispatchCompleted, nil
	})

	e.RegisterNative("either", []Param{
		param("condition", ParamNormal),
		param("true-branch", ParamNormal),
		param("false-branch", ParamNormal),
	}, func(f *Frame) (DispatchResult, error) {
		chosen := f.Arg(1)
		if !f.Arg(0).Truthy() {
			chosen = f.Arg(2)
		}
		result, err := branch(f, chosen)
		if err != nil {
			return DispatchCompleted, err
		}
		f.SetOut(result)
		return DispatchCompleted, nil
	})

	e.RegisterNative("while", []Param{
		typedParam("condition", ParamNormal, KindBlock),
		typedParam("body", ParamNormal, KindBlock),
	}, func(f *Frame) (DispatchResult, error) {
		last := NewBlank()
		for {
			cond, err := f.EvalBlock(f.Arg(0), nil)
			if err != nil {
				return DispatchCompleted, err
			}
			if !cond.Truthy() {
				f.SetOut(last)
				return DispatchCompleted, nil
			}
			val, broke, err := f.LoopBody(f.Arg(1), nil)
			if err != nil {
				return DispatchCompleted, err
			}
			if broke {
				f.SetOut(NewVoid())
				return DispatchCompleted, nil
			}
			last = loopIterationResult(val)
		}
	})

	e.RegisterNative("until", []Param{
		typedParam("body", ParamNormal, KindBlock),
	}, func(f *Frame) (DispatchResult, error) {
		for {
			val, broke, err := f.LoopBody(f.Arg(0), nil)
			if err != nil {
				return DispatchCompleted, err
			}
			if broke {
				f.SetOut(NewVoid())
				return DispatchCompleted, nil
			}
			if val.Truthy() {
				f.SetOut(val)
				return DispatchCompleted, nil
			}
		}
	})

	e.RegisterNative("repeat", []Param{
		typedParam("word", ParamHardQuote, KindWord),
		typedParam("count", ParamNormal, KindInteger),
		typedParam("body", ParamNormal, KindBlock),
	}, func(f *Frame) (DispatchResult, error) {
		name := f.Arg(0).Name()
		env := NewEnv(f.Env())
		last := NewBlank()
		for i := int64(1); i <= f.Arg(1).Int(); i++ {
			env.Define(name, NewInteger(i))
			val, broke, err := f.LoopBody(f.Arg(2), env)
			if err != nil {
				return DispatchCompleted, err
			}
			if broke {
				f.SetOut(NewVoid())
				return DispatchCompleted, nil
			}
			last = loopIterationResult(val)
		}
		f.SetOut(last)
		return DispatchCompleted, nil
	})

	e.RegisterNative("for-each", []Param{
		typedParam("word", ParamHardQuote, KindWord),
		typedParam("data", ParamNormal, KindBlock),
		typedParam("body", ParamNormal, KindBlock),
	}, func(f *Frame) (DispatchResult, error) {
		name := f.Arg(0).Name()
		env := NewEnv(f.Env())
		last := NewBlank()
		for _, item := range f.Arg(1).List() {
			env.Define(name, item)
			val, broke, err := f.LoopBody(f.Arg(2), env)
			if err != nil {
				return DispatchCompleted, err
			}
			if broke {
				f.SetOut(NewVoid())
				return DispatchCompleted, nil
			}
			last = loopIterationResult(val)
		}
		f.SetOut(last)
		return DispatchCompleted, nil
	})

	then := e.RegisterNative("then", []Param{
		param("optional", ParamNormal),
		param("branch", ParamNormal),
	}, func(f *Frame) (DispatchResult, error) {
		if f.Arg(0).IsVoid() {
			f.SetOut(NewVoid())
			return DispatchCompleted, nil
		}
		result, err := branch(f, f.Arg(1))
		if err != nil {
			return DispatchCompleted, err
		}
		f.SetOut(result)
		return DispatchCompleted, nil
	})
	then.Enfix = true
	then.DefersLookback = true

	elseAct := e.RegisterNative("else", []Param{
		{Name: "optional", Class: ParamNormal, Types: AnyType, Endable: true},
		param("branch", ParamNormal),
	}, func(f *Frame) (DispatchResult, error) {
		if !f.Arg(0).IsVoid() {
			f.SetOut(f.Arg(0))
			return DispatchCompleted, nil
		}
		result, err := branch(f, f.Arg(1))
		if err != nil {
			return DispatchCompleted, err
		}
		f.SetOut(result)
		return DispatchCompleted, nil
	})
	elseAct.Enfix = true
	elseAct.DefersLookback = true

	e.RegisterNative("catch", []Param{
		typedParam("body", ParamNormal, KindBlock),
	}, func(f *Frame) (DispatchResult, error) {
		result, err := f.EvalBlock(f.Arg(0), nil)
		if err != nil {
			if v, ok := CatchThrow(err, f.Engine().throwAction); ok {
				f.SetOut(v)
				return DispatchCompleted, nil
			}
			return DispatchCompleted, err
		}
		f.SetOut(result)
		return DispatchCompleted, nil
	})
}

// loopIterationResult folds one body evaluation into the loop's running
// result. Iterations that produce nothing reset to blank rather than carry
// a void, which is reserved for break.
func loopIterationResult(val Value) Value {
	if val.IsVoid() {
		return NewBlank()
	}
	return val
}
