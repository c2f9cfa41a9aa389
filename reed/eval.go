package reed

// evalState replaces the goto labels of a classic single-function
// evaluator: the run loop drives exactly this state set, with no extra
// passes over the input.
type evalState int

const (
	stNewExpression evalState = iota
	stReevaluate
	stProcessAction
	stPostSwitch
	stFinished
)

// run is the evaluator: it consumes terms from the frame's cursor and
// leaves the final result in the output cell. With toEnd set it loops until
// the array is exhausted; otherwise it performs a single evaluation step
// (which still includes enfix continuation and invisibles).
func (f *Frame) run() error {
	if err := f.enterLevel(); err != nil {
		return err
	}
	defer f.leaveLevel()

	var current Value
	st := stNewExpression
	if f.postSwitch {
		// Deferred-lookback re-entry: the output cell holds the pending
		// left-hand value; jump straight to the lookahead decision.
		st = stPostSwitch
	}

	for st != stFinished {
		var err error
		switch st {
		case stNewExpression:
			current, st, err = f.startExpression()
		case stReevaluate:
			st, err = f.evalCurrent(current)
		case stProcessAction:
			st, err = f.processAction()
			if st == stReevaluate {
				current = f.reeval
			}
		case stPostSwitch:
			st, err = f.lookahead()
		}
		if err != nil {
			return err
		}
	}
	return nil
}

// startExpression begins a new evaluation unit: it polls for cancellation,
// charges the step quota, marks the output stale (preserving its value for
// invisibles), and settles quote-priority contests before classification.
func (f *Frame) startExpression() (Value, evalState, error) {
	if err := f.exec.ctx.Err(); err != nil {
		return Value{}, stFinished, ThrowFrom(f.exec.engine.haltAction, NewVoid())
	}
	f.exec.steps++
	if quota := f.exec.engine.config.StepQuota; quota > 0 && f.exec.steps > quota {
		return Value{}, stFinished, f.errorf("step quota exceeded (limit %d)", quota)
	}
	if f.atEnd() {
		return Value{}, stFinished, nil
	}

	f.outStale = true
	f.unevaluated = false
	current := f.take()

	// An enfix operator ahead that hard-quotes its left argument claims the
	// current term before evaluation, unless the current term is itself a
	// prefix action that quotes its own first argument, in which case the
	// local quote wins.
	if next := f.at(); next.kind == KindWord {
		if gotten, ok := f.lookup(next.Name()); ok {
			if act := gotten.Action(); act != nil && act.Enfix && act.quotesFirst() {
				if !f.forwardQuotePriority(current) {
					f.out = current
					f.unevaluated = true
					f.outStale = false
					f.take() // the operator word
					f.beginAction(act, next.Name(), true)
					return current, stProcessAction, nil
				}
			}
		}
	}

	return current, stReevaluate, nil
}

// forwardQuotePriority reports whether the current term out-prioritizes a
// backward-quoting enfix operator that follows it.
func (f *Frame) forwardQuotePriority(current Value) bool {
	switch current.kind {
	case KindWord:
		gotten, ok := f.lookup(current.Name())
		if !ok {
			return false
		}
		act := gotten.Action()
		return act != nil && !act.Enfix && act.quotesFirst()
	case KindAction:
		act := current.Action()
		return !act.Enfix && act.quotesFirst()
	default:
		return false
	}
}

// evalCurrent is the classification switch: every term is inert, a lookup,
// an assignment, a sub-expression, or the start of an action invocation.
func (f *Frame) evalCurrent(current Value) (evalState, error) {
	switch current.kind {
	case KindWord:
		val, ok := f.lookup(current.Name())
		if !ok {
			return stFinished, f.errorf("%s word is not bound to a value", current.Name())
		}
		if act := val.Action(); act != nil {
			// An enfix action in prefix position sees end on its left.
			f.beginAction(act, current.Name(), act.Enfix)
			return stProcessAction, nil
		}
		f.out = val
		f.outStale = false
		return stPostSwitch, nil

	case KindSetWord:
		if f.atEnd() || f.at().kind == KindBar {
			return stFinished, f.errorf("%s: needs a value to assign", current.Name())
		}
		val, err := f.subStep(stepOpts{})
		if err != nil {
			return stFinished, err
		}
		if val.IsEnd() {
			return stFinished, f.errorf("%s: needs a value to assign", current.Name())
		}
		f.env.Set(current.Name(), val)
		f.out = val
		f.outStale = false
		return stPostSwitch, nil

	case KindGetWord:
		val, ok := f.lookup(current.Name())
		if !ok {
			return stFinished, f.errorf(":%s word is not bound to a value", current.Name())
		}
		f.out = val // no dispatch, and void is fine
		f.outStale = false
		return stPostSwitch, nil

	case KindLitWord:
		f.out = NewWord(current.Name())
		f.outStale = false
		f.unevaluated = true
		return stPostSwitch, nil

	case KindGroup:
		val, err := f.doArray(current.Series(), f.env)
		if err != nil {
			return stFinished, err
		}
		f.out = val
		f.outStale = false
		return stPostSwitch, nil

	case KindPath:
		return f.evalPath(current)

	case KindSetPath:
		if f.atEnd() || f.at().kind == KindBar {
			return stFinished, f.errorf("%s: needs a value to assign", current.Mold())
		}
		val, err := f.subStep(stepOpts{})
		if err != nil {
			return stFinished, err
		}
		if val.IsEnd() {
			return stFinished, f.errorf("%s: needs a value to assign", current.Mold())
		}
		if err := f.storePath(current, val); err != nil {
			return stFinished, err
		}
		f.out = val
		f.outStale = false
		return stPostSwitch, nil

	case KindAction:
		act := current.Action()
		f.beginAction(act, act.label(), act.Enfix)
		return stProcessAction, nil

	case KindBar:
		// Expression barrier: contributes nothing; run-to-end moves on and
		// argument fulfillment treats it as end-of-input.
		return stPostSwitch, nil

	case KindVoid:
		return stFinished, f.errorf("void cells cannot be evaluated")

	case KindEnd:
		return stFinished, nil

	default:
		// Inert value: copied verbatim, marked unevaluated for quoting
		// consumers downstream.
		f.out = current
		f.outStale = false
		f.unevaluated = true
		return stPostSwitch, nil
	}
}

// stepOpts parameterizes one child evaluation step.
type stepOpts struct {
	noLookahead bool   // tight argument: no enfix continuation
	fulfilling  *Param // the parent parameter this step fills, if any
	postSwitch  bool   // re-enter at the lookahead decision
	preload     Value  // output cell preload for postSwitch re-entry
}

// subStep evaluates exactly one expression unit from this frame's cursor in
// a child frame, advancing the shared cursor past what was consumed. An end
// result means the step found only invisibles (or nothing).
func (f *Frame) subStep(opts stepOpts) (Value, error) {
	child := f.child()
	child.noLookahead = opts.noLookahead
	child.fulfilling = opts.fulfilling
	if opts.postSwitch {
		child.postSwitch = true
		child.out = opts.preload
	}
	err := child.run()
	f.idx = child.idx
	child.dead = true
	if err != nil {
		return Value{}, err
	}
	if child.outStale {
		return endValue(), nil
	}
	return child.out, nil
}

// doArray runs a nested array to completion in a child frame. An empty
// array, or one producing no output, yields void. A single inert element
// is an allowed fast path that skips frame setup.
func (f *Frame) doArray(arr *Array, env *Env) (Value, error) {
	if arr.Len() == 1 && arr.At(0).anyInert() {
		return arr.At(0), nil
	}
	child := &Frame{exec: f.exec, parent: f, arr: arr, env: env, toEnd: true}
	err := child.run()
	child.dead = true
	if err != nil {
		return Value{}, err
	}
	// Staleness is a per-step notion; at completion only a cell nothing
	// ever wrote to (still the end marker) reads as no value. A trailing
	// barrier or invisible leaves the last real result in place.
	if child.out.IsEnd() {
		return NewVoid(), nil
	}
	return child.out, nil
}

// EvalBlock evaluates a block or group to completion. A nil env evaluates
// in the frame's own binding context. This is the entry point natives use
// for branches and loop bodies.
func (f *Frame) EvalBlock(block Value, env *Env) (Value, error) {
	ser := block.Series()
	if ser == nil {
		return Value{}, f.errorf("cannot evaluate %s as a block", kindName(block.kind))
	}
	if env == nil {
		env = f.env
	}
	return f.doArray(ser, env)
}

// reduceArray evaluates each expression of an array in order, collecting
// one value per step. Steps that contribute no output (invisibles) add
// nothing.
func (f *Frame) reduceArray(arr *Array, env *Env) ([]Value, error) {
	child := &Frame{exec: f.exec, parent: f, arr: arr, env: env}
	defer func() { child.dead = true }()
	var vals []Value
	for !child.atEnd() {
		child.out = Value{}
		child.outStale = true
		if err := child.run(); err != nil {
			return nil, err
		}
		if !child.outStale {
			vals = append(vals, child.out)
		}
	}
	return vals, nil
}
