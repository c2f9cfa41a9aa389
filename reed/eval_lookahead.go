package reed

// lookahead is the post-evaluation decision point. Before an evaluation
// step can be considered finished, the evaluator peeks one term: a word
// resolving to an enfix action claims the value already sitting in the
// output cell as its left argument, unless the context forbids lookahead
// or the operator prefers to defer.
//
// Only words dispatch enfix; anything else starts a new expression (or
// finishes the step).
func (f *Frame) lookahead() (evalState, error) {
	if f.atEnd() {
		return stFinished, nil
	}

	next := f.at()
	if next.kind != KindWord {
		return f.continueOrFinish()
	}
	gotten, ok := f.lookup(next.Name())
	if !ok {
		return f.continueOrFinish()
	}
	act := gotten.Action()
	if act == nil || !act.Enfix {
		return f.continueOrFinish()
	}

	if act.quotesFirst() {
		// A left-quoting enfix operator had its chance before this value
		// was evaluated; too late now, it starts a new expression (and may
		// error there if its left is not endable).
		return f.continueOrFinish()
	}

	if f.noLookahead && !act.Invisible {
		// Tight argument context: the infix operator binds at the caller's
		// level instead. Invisibles still get processed here, since the
		// step isn't really over until they are cleared.
		return stFinished, nil
	}

	if act.DefersLookback && f.fulfilling != nil && f.parent != nil &&
		f.parent.deferred == nil && !f.fulfilling.Endable {
		// The operator prefers to wait: record the pending argument in the
		// parent's single deferral slot and leave the operator in the
		// stream. If the parent re-enters and the slot is already taken,
		// this condition fails and the operator binds eagerly; only one
		// chance to defer per slot.
		f.parent.deferred = &deferredArg{
			argIdx:     f.parent.argIdx,
			param:      f.fulfilling,
			refine:     f.parent.refine,
			refineSlot: f.parent.refineSlot,
		}
		return stFinished, nil
	}

	// Lookback: the already-computed value becomes the operator's first
	// argument.
	f.take()
	f.beginAction(act, next.Name(), true)
	return stProcessAction, nil
}

// continueOrFinish decides whether the run loop keeps going: always when
// output is still stale (an invisible ran and the expression has not yet
// produced its contributor), and in run-to-end mode while input remains.
func (f *Frame) continueOrFinish() (evalState, error) {
	if f.outStale && !f.atEnd() {
		return stNewExpression, nil
	}
	if f.toEnd && !f.atEnd() {
		return stNewExpression, nil
	}
	return stFinished, nil
}
