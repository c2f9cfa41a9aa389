package reed

// evalPath resolves a path term. A head that looks up to an action turns
// the remaining segments into refinement requests and transfers to
// invocation; otherwise the segments pick through blocks and objects, and
// a picked action (an object's method) is invoked with no refinements.
func (f *Frame) evalPath(path Value) (evalState, error) {
	segs := path.List()
	if len(segs) == 0 {
		return stFinished, f.errorf("empty path")
	}
	head := segs[0]
	if head.kind != KindWord {
		return stFinished, f.errorf("path must start with a word, not %s", kindName(head.kind))
	}
	val, ok := f.lookup(head.Name())
	if !ok {
		return stFinished, f.errorf("%s word is not bound to a value", head.Name())
	}

	if act := val.Action(); act != nil {
		// Refinement-style call: push the names in callsite order; the
		// fulfillment walk consumes in-order requests directly and defers
		// the rest to the pickup pass.
		requests := make([]refineRequest, 0, len(segs)-1)
		for _, seg := range segs[1:] {
			if seg.kind != KindWord {
				return stFinished, f.errorf("refinement in %s must be a word, not %s",
					path.Mold(), kindName(seg.kind))
			}
			requests = append(requests, refineRequest{name: seg.Name(), paramIdx: -1})
		}
		f.beginAction(act, head.Name(), act.Enfix)
		f.refines = requests
		return stProcessAction, nil
	}

	for _, seg := range segs[1:] {
		picker, err := f.resolvePicker(seg)
		if err != nil {
			return stFinished, err
		}
		val, err = f.pick(val, picker)
		if err != nil {
			return stFinished, err
		}
	}

	if act := val.Action(); act != nil {
		f.beginAction(act, path.Mold(), act.Enfix)
		return stProcessAction, nil
	}
	f.out = val
	f.outStale = false
	return stPostSwitch, nil
}

// resolvePicker turns a path segment into a concrete picker: groups
// evaluate, everything else is used literally.
func (f *Frame) resolvePicker(seg Value) (Value, error) {
	if seg.kind == KindGroup {
		return f.doArray(seg.Series(), f.env)
	}
	return seg, nil
}

// pick indexes one step into a container: blocks by 1-based integer,
// objects by word. Out-of-range and absent fields yield void, not errors.
func (f *Frame) pick(container, picker Value) (Value, error) {
	switch container.kind {
	case KindBlock, KindGroup:
		if picker.kind != KindInteger {
			return Value{}, f.errorf("block paths pick by integer, not %s", kindName(picker.kind))
		}
		idx := picker.Int()
		ser := container.Series()
		if idx < 1 || idx > int64(ser.Len()) {
			return NewVoid(), nil
		}
		return ser.At(int(idx - 1)), nil
	case KindObject:
		if picker.kind != KindWord {
			return Value{}, f.errorf("object paths pick by word, not %s", kindName(picker.kind))
		}
		v, ok := container.Object().Get(picker.Name())
		if !ok {
			return NewVoid(), nil
		}
		return v, nil
	default:
		return Value{}, f.errorf("cannot pick into a %s", kindName(container.kind))
	}
}

// storePath writes through a set-path: the last segment picks the slot,
// everything before it navigates.
func (f *Frame) storePath(path Value, val Value) error {
	segs := path.List()
	if len(segs) < 2 {
		return f.errorf("set-path needs at least two segments")
	}
	head := segs[0]
	if head.kind != KindWord {
		return f.errorf("set-path must start with a word, not %s", kindName(head.kind))
	}
	container, ok := f.lookup(head.Name())
	if !ok {
		return f.errorf("%s word is not bound to a value", head.Name())
	}
	for _, seg := range segs[1 : len(segs)-1] {
		picker, err := f.resolvePicker(seg)
		if err != nil {
			return err
		}
		container, err = f.pick(container, picker)
		if err != nil {
			return err
		}
	}
	last, err := f.resolvePicker(segs[len(segs)-1])
	if err != nil {
		return err
	}
	switch container.kind {
	case KindBlock, KindGroup:
		if last.kind != KindInteger {
			return f.errorf("block paths pick by integer, not %s", kindName(last.kind))
		}
		ser := container.Series()
		idx := last.Int()
		if idx < 1 || idx > int64(ser.Len()) {
			return f.errorf("set-path index %d out of range for block of %d", idx, ser.Len())
		}
		ser.vals[idx-1] = val
		return nil
	case KindObject:
		if last.kind != KindWord {
			return f.errorf("object paths pick by word, not %s", kindName(last.kind))
		}
		container.Object().Set(last.Name(), val)
		return nil
	default:
		return f.errorf("cannot store into a %s", kindName(container.kind))
	}
}
