package reed

import "fmt"

// param builds a parameter accepting any value.
func param(name string, class ParamClass) Param {
	return Param{Name: name, Class: class, Types: AnyType}
}

// typedParam builds a parameter restricted to the given kinds.
func typedParam(name string, class ParamClass, kinds ...ValueKind) Param {
	return Param{Name: name, Class: class, Types: TypesOf(kinds...)}
}

// branch evaluates a branch value: blocks run, anything else stands for
// itself. Branches that produce nothing yield void.
func branch(f *Frame, v Value) (Value, error) {
	if v.Kind() == KindBlock || v.Kind() == KindGroup {
		return f.EvalBlock(v, nil)
	}
	return v, nil
}

func registerCore(e *Engine) {
	e.Register("true", NewLogic(true))
	e.Register("false", NewLogic(false))

	e.RegisterNative("set", []Param{
		typedParam("word", ParamNormal, KindWord, KindLitWord),
		param("value", ParamNormal),
	}, func(f *Frame) (DispatchResult, error) {
		f.Env().Set(f.Arg(0).Name(), f.Arg(1))
		f.SetOut(f.Arg(1))
		return DispatchCompleted, nil
	})

	e.RegisterNative("get", []Param{
		typedParam("word", ParamNormal, KindWord, KindLitWord),
		{Name: "any", Class: ParamRefinement},
	}, func(f *Frame) (DispatchResult, error) {
		name := f.Arg(0).Name()
		val, ok := f.Env().Get(name)
		if !ok {
			if f.RefinementUsed(1) {
				f.SetOut(NewVoid())
				return DispatchCompleted, nil
			}
			return DispatchCompleted, f.errorf("%s word is not bound to a value", name)
		}
		f.SetOut(val)
		return DispatchCompleted, nil
	})

	e.RegisterNative("quote", []Param{
		param("value", ParamHardQuote),
	}, func(f *Frame) (DispatchResult, error) {
		f.SetOut(f.Arg(0))
		return DispatchCompleted, nil
	})

	e.RegisterNative("do", []Param{
		param("value", ParamNormal),
	}, func(f *Frame) (DispatchResult, error) {
		arg := f.Arg(0)
		switch arg.Kind() {
		case KindBlock, KindGroup:
			result, err := f.EvalBlock(arg, nil)
			if err != nil {
				return DispatchCompleted, err
			}
			f.SetOut(result)
		case KindText:
			block, err := f.Engine().Load(arg.Text())
			if err != nil {
				return DispatchCompleted, err
			}
			result, err := f.EvalBlock(block, nil)
			if err != nil {
				return DispatchCompleted, err
			}
			f.SetOut(result)
		default:
			f.SetOut(arg)
		}
		return DispatchCompleted, nil
	})

	e.RegisterNative("reduce", []Param{
		typedParam("block", ParamNormal, KindBlock),
	}, func(f *Frame) (DispatchResult, error) {
		vals, err := f.reduceArray(f.Arg(0).Series(), f.Env())
		if err != nil {
			return DispatchCompleted, err
		}
		f.SetOut(NewBlock(vals))
		return DispatchCompleted, nil
	})

	e.RegisterNative("print", []Param{
		param("value", ParamNormal),
	}, func(f *Frame) (DispatchResult, error) {
		arg := f.Arg(0)
		var text string
		if arg.Kind() == KindBlock {
			vals, err := f.reduceArray(arg.Series(), f.Env())
			if err != nil {
				return DispatchCompleted, err
			}
			for i, v := range vals {
				if i > 0 {
					text += " "
				}
				text += v.Form()
			}
		} else {
			text = arg.Form()
		}
		fmt.Fprintln(f.Engine().Output(), text)
		f.SetOut(NewVoid())
		return DispatchCompleted, nil
	})

	e.RegisterNative("probe", []Param{
		param("value", ParamNormal),
	}, func(f *Frame) (DispatchResult, error) {
		fmt.Fprintln(f.Engine().Output(), f.Arg(0).Mold())
		f.SetOut(f.Arg(0))
		return DispatchCompleted, nil
	})

	e.RegisterNative("type-of", []Param{
		param("value", ParamNormal),
	}, func(f *Frame) (DispatchResult, error) {
		f.SetOut(NewWord(kindName(f.Arg(0).Kind())))
		return DispatchCompleted, nil
	})

	e.RegisterNative("object", []Param{
		typedParam("spec", ParamNormal, KindBlock),
	}, func(f *Frame) (DispatchResult, error) {
		env := NewEnv(f.Env())
		if _, err := f.EvalBlock(f.Arg(0), env); err != nil {
			return DispatchCompleted, err
		}
		f.SetOut(NewObject(env))
		return DispatchCompleted, nil
	})

	e.RegisterNative("func", []Param{
		typedParam("spec", ParamHardQuote, KindBlock),
		typedParam("body", ParamHardQuote, KindBlock),
	}, func(f *Frame) (DispatchResult, error) {
		act, err := makeFunc(f, f.Arg(0), f.Arg(1))
		if err != nil {
			return DispatchCompleted, err
		}
		f.SetOut(NewAction(act))
		return DispatchCompleted, nil
	})

	e.RegisterNative("does", []Param{
		typedParam("body", ParamHardQuote, KindBlock),
	}, func(f *Frame) (DispatchResult, error) {
		act, err := makeFunc(f, NewBlock(nil), f.Arg(0))
		if err != nil {
			return DispatchCompleted, err
		}
		f.SetOut(NewAction(act))
		return DispatchCompleted, nil
	})

	e.RegisterNative("enfix", []Param{
		typedParam("action", ParamNormal, KindAction),
	}, func(f *Frame) (DispatchResult, error) {
		act := f.Arg(0).Action()
		if act.firstConsuming() == nil {
			return DispatchCompleted, f.errorf("enfix requires an action that takes arguments")
		}
		variant := *act
		variant.Enfix = true
		f.SetOut(NewAction(&variant))
		return DispatchCompleted, nil
	})

	e.RegisterNative("specialize", []Param{
		typedParam("action", ParamNormal, KindAction, KindWord),
		typedParam("def", ParamNormal, KindBlock),
	}, func(f *Frame) (DispatchResult, error) {
		target := f.Arg(0)
		if target.Kind() == KindWord {
			gotten, ok := f.Env().Get(target.Name())
			if !ok {
				return DispatchCompleted, f.errorf("%s word is not bound to a value", target.Name())
			}
			target = gotten
		}
		act := target.Action()
		if act == nil {
			return DispatchCompleted, f.errorf("specialize requires an action, not %s", kindName(target.Kind()))
		}
		env := NewEnv(f.Env())
		if _, err := f.EvalBlock(f.Arg(1), env); err != nil {
			return DispatchCompleted, err
		}
		specialized, err := Specialize(act, env.values)
		if err != nil {
			return DispatchCompleted, err
		}
		f.SetOut(NewAction(specialized))
		return DispatchCompleted, nil
	})

	e.RegisterNative("take", []Param{
		typedParam("source", ParamNormal, KindVarargs),
	}, func(f *Frame) (DispatchResult, error) {
		val, err := f.Arg(0).Varargs().Take(f)
		if err != nil {
			return DispatchCompleted, err
		}
		f.SetOut(val)
		return DispatchCompleted, nil
	})

	comment := e.RegisterNative("comment", []Param{
		param("discarded", ParamHardQuote),
	}, func(f *Frame) (DispatchResult, error) {
		return DispatchInvisible, nil
	})
	comment.Invisible = true

	elide := e.RegisterNative("elide", []Param{
		param("discarded", ParamNormal),
	}, func(f *Frame) (DispatchResult, error) {
		return DispatchInvisible, nil
	})
	elide.Invisible = true
}
