package reed

// newReturnAction makes the per-call RETURN capability seeded into a user
// function's return slot. Its identity is the tag the function's body
// runner catches, so each call returns to exactly its own frame.
func newReturnAction() *Action {
	act := &Action{
		Name: "return",
		Params: []Param{
			{Name: "value", Class: ParamNormal, Endable: true},
		},
	}
	act.Dispatch = func(f *Frame) (DispatchResult, error) {
		return DispatchCompleted, ThrowFrom(act, f.Arg(0))
	}
	return act
}

// typeSetFromBlock reads a spec block of datatype words (`[integer! word!]`)
// into a constraint set.
func typeSetFromBlock(f *Frame, block Value) (TypeSet, error) {
	var ts TypeSet
	for _, v := range block.List() {
		if v.kind != KindWord {
			return 0, f.errorf("type spec allows datatype words only, not %s", kindName(v.kind))
		}
		k, ok := kindFromName(v.Name())
		if !ok {
			return 0, f.errorf("%s is not a datatype name", v.Name())
		}
		ts |= TypesOf(k)
	}
	return ts, nil
}

func kindFromName(name string) (ValueKind, bool) {
	for k := KindVoid; k <= KindVarargs; k++ {
		if kindName(k) == name {
			return k, true
		}
	}
	return 0, false
}

// makeFunc builds a user function: the spec block names the formals, the
// body runs in a child of the definition environment with the fulfilled
// arguments bound.
//
// Spec notation: `word` a normal arg, `:word` hard quote, `'word` soft
// quote, `/ref` a refinement, `<local>` starts locals, and the tags
// `<tight>`, `<end>`, `<...>` modify the following formal. A block after a
// formal constrains its types; a string is documentation and is skipped.
func makeFunc(f *Frame, spec, body Value) (*Action, error) {
	params := []Param{{Name: "return", Class: ParamReturn}}
	returnIdx := 0

	var pendingTight, pendingEnd, pendingVariadic bool
	inLocals := false

	addParam := func(name string, class ParamClass) {
		if inLocals {
			params = append(params, Param{Name: name, Class: ParamLocal})
			return
		}
		if pendingVariadic {
			class = ParamVariadic
		} else if pendingTight && class == ParamNormal {
			class = ParamTight
		}
		params = append(params, Param{
			Name:    name,
			Class:   class,
			Endable: pendingEnd,
		})
		pendingTight, pendingEnd, pendingVariadic = false, false, false
	}

	for _, v := range spec.List() {
		switch v.kind {
		case KindWord:
			addParam(v.Name(), ParamNormal)
		case KindGetWord:
			addParam(v.Name(), ParamHardQuote)
		case KindLitWord:
			addParam(v.Name(), ParamSoftQuote)
		case KindRefinement:
			if inLocals {
				return nil, f.errorf("refinement /%s not allowed after <local>", v.Name())
			}
			params = append(params, Param{Name: v.Name(), Class: ParamRefinement})
		case KindTag:
			switch v.Text() {
			case "local":
				inLocals = true
			case "tight":
				pendingTight = true
			case "end":
				pendingEnd = true
			case "...":
				pendingVariadic = true
			default:
				return nil, f.errorf("unknown spec tag <%s>", v.Text())
			}
		case KindBlock:
			if len(params) == 1 {
				return nil, f.errorf("type block in spec needs a preceding formal")
			}
			ts, err := typeSetFromBlock(f, v)
			if err != nil {
				return nil, err
			}
			params[len(params)-1].Types = ts
		case KindText:
			// documentation string
		default:
			return nil, f.errorf("invalid item in function spec: %s", v.Mold())
		}
	}

	defEnv := f.env
	act := &Action{Name: "", Params: params, Body: body}
	act.Dispatch = func(call *Frame) (DispatchResult, error) {
		callEnv := NewEnv(defEnv)
		for i := range params {
			p := &params[i]
			switch p.Class {
			case ParamReturn:
				callEnv.Define("return", call.args[i])
			default:
				callEnv.Define(p.Name, call.args[i])
			}
		}
		result, err := call.EvalBlock(body, callEnv)
		if err != nil {
			ret := call.args[returnIdx].Action()
			if v, ok := CatchThrow(err, ret); ok {
				call.SetOut(v)
				return DispatchCompleted, nil
			}
			return DispatchCompleted, err
		}
		call.SetOut(result)
		return DispatchCompleted, nil
	}
	return act, nil
}
