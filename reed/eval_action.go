package reed

// beginAction arms the frame for invoking act. The refinement request
// stack, when the invocation came through a path, is installed afterwards
// by evalPath.
func (f *Frame) beginAction(act *Action, label string, enfixLeft bool) {
	f.action = act
	f.label = label
	f.args = make([]Value, len(act.Params))
	f.argIdx = 0
	f.refine = refineOrdinary
	f.refineSlot = -1
	f.refineArgN = 0
	f.refines = nil
	f.deferred = nil
	f.enfixLeft = enfixLeft
	f.redoPhase = nil
}

// endAction clears invocation state and expires any variadic handles that
// alias this frame's feed.
func (f *Frame) endAction() {
	for _, arg := range f.args {
		if va := arg.Varargs(); va != nil && va.frame == f {
			va.frame = nil
		}
	}
	f.action = nil
	f.args = nil
	f.refines = nil
	f.deferred = nil
}

// processAction is the invocation sub-algorithm: bind each parameter in
// order, run a pickup pass for out-of-order refinements, then dispatch and
// classify the result.
func (f *Frame) processAction() (evalState, error) {
	act := f.action

	// BindOrdinary: param, arg slot, and exemplar slot advance in lockstep.
	for i := range act.Params {
		f.argIdx = i
		if err := f.fulfillParam(i); err != nil {
			f.endAction()
			return stFinished, err
		}
	}

	// Pickup: refinements named out of order get a second walk, rewinding
	// to the recorded parameter positions.
	if err := f.runPickups(); err != nil {
		f.endAction()
		return stFinished, err
	}

	// A lookback argument deferred past the last consuming parameter still
	// needs its finalization; the operator itself stays pending in the
	// stream for the caller's lookahead to claim.
	if d := f.deferred; d != nil {
		f.deferred = nil
		f.refine = d.refine
		f.refineSlot = d.refineSlot
		if err := f.finalizeArg(d.argIdx, d.param); err != nil {
			f.endAction()
			return stFinished, err
		}
	}

	return f.dispatchAction(act)
}

// fulfillParam binds one parameter at index i during the ordinary pass.
func (f *Frame) fulfillParam(i int) error {
	act := f.action
	param := &act.Params[i]
	special := endValue()
	if act.Exemplar != nil {
		special = act.Exemplar[i]
	}

	switch param.Class {
	case ParamRefinement:
		f.refineArgN = 0
		if !special.IsEnd() {
			// Specialization fixed this refinement on or off.
			if special.Truthy() {
				f.args[i] = NewLogic(true)
				f.refine = refineUsed
				f.refineSlot = i
			} else {
				f.args[i] = NewLogic(false)
				f.refine = refineUnused
			}
			return nil
		}
		if len(f.refines) > 0 && f.refines[0].name == param.Name {
			// Lucky: the next-expected refinement is on top of the request
			// stack, so it consumes in order.
			f.refines = f.refines[1:]
			f.args[i] = NewLogic(true)
			f.refine = refineUsed
			f.refineSlot = i
			return nil
		}
		for j := range f.refines {
			if f.refines[j].name == param.Name {
				// Present but out of order: record the position and defer
				// this group to the pickup pass.
				f.refines[j].paramIdx = i
				f.args[i] = NewLogic(true)
				f.refine = refineSkipping
				return nil
			}
		}
		f.args[i] = NewLogic(false)
		f.refine = refineUnused
		return nil

	case ParamLocal:
		// Never filled from the callsite; not type-checked against it.
		f.args[i] = NewVoid()
		return nil

	case ParamReturn:
		f.args[i] = NewAction(newReturnAction())
		return nil

	case ParamVariadic:
		switch f.refine {
		case refineUnused:
			f.args[i] = NewVoid()
			return nil
		case refineSkipping:
			f.args[i] = endValue()
			return nil
		}
		if !special.IsEnd() {
			f.args[i] = special
			return nil
		}
		// Installs a live handle onto this frame's feed; the callee pulls
		// zero or more evaluations during its own execution.
		f.args[i] = NewVarargs(&Varargs{frame: f, param: param})
		return nil

	default:
		if f.refine == refineUnused {
			// Unused-refinement args fill with void and short-circuit their
			// own fulfillment.
			f.args[i] = NewVoid()
			return f.finalizeArg(i, param)
		}
		if f.refine == refineSkipping {
			f.args[i] = endValue() // placeholder until the pickup pass
			return nil
		}
		if f.refine == refineUsed {
			f.refineArgN++
		}
		if !special.IsEnd() {
			f.args[i] = special
			return f.finalizeArg(i, param)
		}
		if f.deferred != nil {
			// About to consume another argument, so the expression that
			// deferred wasn't finished: give the pending operator its
			// second chance first.
			if err := f.resumeDeferred(); err != nil {
				return err
			}
		}
		if err := f.consumeArg(i, param); err != nil {
			return err
		}
		if d := f.deferred; d != nil && d.argIdx == i {
			return nil // finalization waits until the deferral resolves
		}
		return f.finalizeArg(i, param)
	}
}

// consumeArg fills slot i from the callsite: from the output cell when this
// is a lookback (enfix) first argument, otherwise by evaluating or quoting
// the next term per the parameter class.
func (f *Frame) consumeArg(i int, param *Param) error {
	if f.enfixLeft && param.consumes() {
		f.enfixLeft = false
		if f.outStale || f.out.IsEnd() {
			f.args[i] = endValue() // end on the left; finalize decides
		} else {
			f.args[i] = f.out
		}
		f.outStale = true
		return nil
	}

	if f.atEnd() || f.at().kind == KindBar {
		f.args[i] = endValue() // end or barrier: "no value" if endable
		return nil
	}

	switch param.Class {
	case ParamNormal:
		v, err := f.subStep(stepOpts{fulfilling: param})
		if err != nil {
			return err
		}
		f.args[i] = v

	case ParamTight:
		v, err := f.subStep(stepOpts{noLookahead: true, fulfilling: param})
		if err != nil {
			return err
		}
		f.args[i] = v

	case ParamHardQuote:
		f.args[i] = f.take()

	case ParamSoftQuote:
		v := f.take()
		switch v.kind {
		case KindGroup:
			evaled, err := f.doArray(v.Series(), f.env)
			if err != nil {
				return err
			}
			f.args[i] = evaled
		case KindGetWord:
			fetched, ok := f.lookup(v.Name())
			if !ok {
				return f.errorf(":%s word is not bound to a value", v.Name())
			}
			f.args[i] = fetched
		default:
			f.args[i] = v
		}
	}
	return nil
}

// finalizeArg type-checks a filled slot and applies refinement revocation:
// if the first argument of a refinement's group is void the whole group
// must be void, and the refinement reads as unused; partial revocation is
// an error.
func (f *Frame) finalizeArg(i int, param *Param) error {
	v := f.args[i]

	if v.IsEnd() {
		if !param.Endable {
			return f.errorf("%s is missing its %s argument", f.action.label(), param.Name)
		}
		v = NewVoid()
		f.args[i] = v
	}

	switch f.refine {
	case refineUsed:
		if v.IsVoid() {
			if f.refineArgN == 1 {
				// Revocation: the refinement reads as unused from here on.
				f.args[f.refineSlot] = NewLogic(false)
				f.refine = refineRevoking
			} else {
				return f.errorf("cannot revoke just part of refinement /%s of %s",
					f.action.Params[f.refineSlot].Name, f.action.label())
			}
		}
	case refineRevoking:
		if !v.IsVoid() {
			return f.errorf("cannot revoke just part of refinement /%s of %s",
				f.action.Params[f.refineSlot].Name, f.action.label())
		}
	case refineUnused:
		return nil // void filler, nothing to check
	}

	if v.IsVoid() {
		return nil
	}
	if !param.typeCheck(v) {
		return f.errorf("%s does not allow %s for its %s argument",
			f.action.label(), kindName(v.kind), param.Name)
	}
	return nil
}

// runPickups performs the second pass over refinements that were requested
// out of order. Every request must have been claimed by the ordinary walk;
// an unclaimed request names a refinement the action does not have.
func (f *Frame) runPickups() error {
	if len(f.refines) == 0 {
		return nil
	}
	requests := f.refines
	f.refines = nil
	for _, req := range requests {
		if req.paramIdx < 0 {
			return f.errorf("%s has no refinement called /%s", f.action.label(), req.name)
		}
	}
	for _, req := range requests {
		f.refine = refineUsed
		f.refineSlot = req.paramIdx
		f.refineArgN = 0
		for j := req.paramIdx + 1; j < len(f.action.Params); j++ {
			param := &f.action.Params[j]
			if param.Class == ParamRefinement {
				break
			}
			if param.Class == ParamLocal || param.Class == ParamReturn {
				continue // already seeded
			}
			f.argIdx = j
			if param.Class == ParamVariadic {
				f.args[j] = NewVarargs(&Varargs{frame: f, param: param})
				continue
			}
			f.refineArgN++
			if f.deferred != nil {
				if err := f.resumeDeferred(); err != nil {
					return err
				}
			}
			if err := f.consumeArg(j, param); err != nil {
				return err
			}
			if d := f.deferred; d != nil && d.argIdx == j {
				continue
			}
			if err := f.finalizeArg(j, param); err != nil {
				return err
			}
		}
	}
	return nil
}

// resumeDeferred re-enters evaluation at the lookahead decision for the one
// argument an enfix operator postponed, feeding the held value back as the
// operator's left-hand side.
func (f *Frame) resumeDeferred() error {
	d := f.deferred
	v, err := f.subStep(stepOpts{
		fulfilling: d.param,
		postSwitch: true,
		preload:    f.args[d.argIdx],
	})
	f.deferred = nil
	if err != nil {
		return err
	}
	if !v.IsEnd() {
		f.args[d.argIdx] = v
	}
	saveRefine, saveSlot, saveN := f.refine, f.refineSlot, f.refineArgN
	f.refine, f.refineSlot = d.refine, d.refineSlot
	f.refineArgN = 1 // deferred slots are only ever a group's first argument
	err = f.finalizeArg(d.argIdx, d.param)
	f.refine, f.refineSlot, f.refineArgN = saveRefine, saveSlot, saveN
	return err
}

// dispatchAction runs the dispatcher and classifies its result, looping for
// redo requests and handing reevaluation back to the main state machine.
func (f *Frame) dispatchAction(act *Action) (evalState, error) {
	savedOut, savedStale := f.out, f.outStale

	dispatcher := act.Dispatch
	for {
		f.outStale = false
		res, err := dispatcher(f)
		if err != nil {
			f.endAction()
			return stFinished, err
		}
		switch res {
		case DispatchCompleted:
			f.endAction()
			return stPostSwitch, nil

		case DispatchInvisible:
			f.out, f.outStale = savedOut, savedStale
			f.endAction()
			return stPostSwitch, nil

		case DispatchRedo:
			// Re-run the same bound arguments against another phase,
			// re-checking types against the new paramlist.
			phase := f.redoPhase
			f.redoPhase = nil
			if phase == nil {
				f.endAction()
				return stFinished, f.errorf("%s requested redo without a phase", act.label())
			}
			if len(phase.Params) != len(f.args) {
				f.endAction()
				return stFinished, f.errorf("%s redo phase arity mismatch", act.label())
			}
			for i := range phase.Params {
				param := &phase.Params[i]
				if !param.consumes() || f.args[i].IsVoid() {
					continue
				}
				if !param.typeCheck(f.args[i]) {
					f.endAction()
					return stFinished, f.errorf("%s does not allow %s for its %s argument",
						phase.label(), kindName(f.args[i].kind), param.Name)
				}
			}
			act = phase
			dispatcher = act.Dispatch

		case DispatchReevaluate:
			f.endAction()
			return stReevaluate, nil

		default:
			f.endAction()
			return stFinished, f.errorf("%s returned an unknown dispatch result", act.label())
		}
	}
}
