package reed

// Arithmetic and comparison natives. Each operation exists twice: a prefix
// form (add, subtract, ...) and an enfix symbol form whose right argument is
// Tight, so chained infix arithmetic evaluates left to right.

type mathOp struct {
	name   string
	symbol string
	intOp  func(a, b int64) (Value, error)
	decOp  func(a, b float64) (Value, error)
}

func registerMath(e *Engine) {
	ops := []mathOp{
		{
			name: "add", symbol: "+",
			intOp: func(a, b int64) (Value, error) { return NewInteger(a + b), nil },
			decOp: func(a, b float64) (Value, error) { return NewDecimal(a + b), nil },
		},
		{
			name: "subtract", symbol: "-",
			intOp: func(a, b int64) (Value, error) { return NewInteger(a - b), nil },
			decOp: func(a, b float64) (Value, error) { return NewDecimal(a - b), nil },
		},
		{
			name: "multiply", symbol: "*",
			intOp: func(a, b int64) (Value, error) { return NewInteger(a * b), nil },
			decOp: func(a, b float64) (Value, error) { return NewDecimal(a * b), nil },
		},
		{
			name: "divide", symbol: "/",
			intOp: func(a, b int64) (Value, error) {
				if b == 0 {
					return Value{}, &RuntimeError{Message: "divide by zero"}
				}
				if a%b == 0 {
					return NewInteger(a / b), nil
				}
				return NewDecimal(float64(a) / float64(b)), nil
			},
			decOp: func(a, b float64) (Value, error) {
				if b == 0 {
					return Value{}, &RuntimeError{Message: "divide by zero"}
				}
				return NewDecimal(a / b), nil
			},
		},
	}

	for _, op := range ops {
		dispatch := mathDispatcher(op)
		e.RegisterNative(op.name, []Param{
			typedParam("value1", ParamNormal, KindInteger, KindDecimal),
			typedParam("value2", ParamNormal, KindInteger, KindDecimal),
		}, dispatch)
		enfix := e.RegisterNative(op.symbol, []Param{
			typedParam("value1", ParamNormal, KindInteger, KindDecimal),
			typedParam("value2", ParamTight, KindInteger, KindDecimal),
		}, dispatch)
		enfix.Enfix = true
	}

	cmps := []struct {
		symbol string
		want   func(cmp int) bool
	}{
		{"=", func(c int) bool { return c == 0 }},
		{"<>", func(c int) bool { return c != 0 }},
		{"<", func(c int) bool { return c < 0 }},
		{">", func(c int) bool { return c > 0 }},
		{"<=", func(c int) bool { return c <= 0 }},
		{">=", func(c int) bool { return c >= 0 }},
	}
	for _, cmp := range cmps {
		want := cmp.want
		symbol := cmp.symbol
		enfix := e.RegisterNative(symbol, []Param{
			param("value1", ParamNormal),
			param("value2", ParamTight),
		}, func(f *Frame) (DispatchResult, error) {
			a, b := f.Arg(0), f.Arg(1)
			if symbol == "=" || symbol == "<>" {
				eq := 1
				if a.Equal(b) {
					eq = 0
				}
				f.SetOut(NewLogic(want(eq)))
				return DispatchCompleted, nil
			}
			c, err := orderValues(f, a, b)
			if err != nil {
				return DispatchCompleted, err
			}
			f.SetOut(NewLogic(want(c)))
			return DispatchCompleted, nil
		})
		enfix.Enfix = true
	}

	and := e.RegisterNative("and", []Param{
		param("value1", ParamNormal),
		param("value2", ParamNormal),
	}, func(f *Frame) (DispatchResult, error) {
		f.SetOut(NewLogic(f.Arg(0).Truthy() && f.Arg(1).Truthy()))
		return DispatchCompleted, nil
	})
	and.Enfix = true
	and.DefersLookback = true

	or := e.RegisterNative("or", []Param{
		param("value1", ParamNormal),
		param("value2", ParamNormal),
	}, func(f *Frame) (DispatchResult, error) {
		f.SetOut(NewLogic(f.Arg(0).Truthy() || f.Arg(1).Truthy()))
		return DispatchCompleted, nil
	})
	or.Enfix = true
	or.DefersLookback = true

	e.RegisterNative("not", []Param{
		param("value", ParamNormal),
	}, func(f *Frame) (DispatchResult, error) {
		f.SetOut(NewLogic(!f.Arg(0).Truthy()))
		return DispatchCompleted, nil
	})
}

func mathDispatcher(op mathOp) Dispatcher {
	return func(f *Frame) (DispatchResult, error) {
		a, b := f.Arg(0), f.Arg(1)
		var result Value
		var err error
		if a.Kind() == KindInteger && b.Kind() == KindInteger {
			result, err = op.intOp(a.Int(), b.Int())
		} else {
			result, err = op.decOp(a.Dec(), b.Dec())
		}
		if err != nil {
			return DispatchCompleted, err
		}
		f.SetOut(result)
		return DispatchCompleted, nil
	}
}

// orderValues compares two values for the ordering operators: numerics by
// magnitude, text lexicographically.
func orderValues(f *Frame, a, b Value) (int, error) {
	switch {
	case isNumeric(a.Kind()) && isNumeric(b.Kind()):
		ad, bd := a.Dec(), b.Dec()
		switch {
		case ad < bd:
			return -1, nil
		case ad > bd:
			return 1, nil
		}
		return 0, nil
	case a.Kind() == KindText && b.Kind() == KindText:
		at, bt := a.Text(), b.Text()
		switch {
		case at < bt:
			return -1, nil
		case at > bt:
			return 1, nil
		}
		return 0, nil
	}
	return 0, f.errorf("cannot compare %s with %s", kindName(a.Kind()), kindName(b.Kind()))
}
