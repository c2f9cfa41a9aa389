package reed

// Varargs is a live handle onto an action frame's feed. It is installed at
// bind time without consuming anything; the callee pulls evaluations on
// demand during its own execution.
type Varargs struct {
	frame *Frame
	param *Param
}

// Take pulls one more value from the feed. An exhausted source (or an
// expression barrier) yields void rather than an error, unless the handle's
// frame has already been destroyed, which is an error condition.
func (va *Varargs) Take(f *Frame) (Value, error) {
	src := va.frame
	if src == nil || src.dead {
		return Value{}, f.errorf("varargs frame is no longer live")
	}
	if src.atEnd() || src.at().kind == KindBar {
		return NewVoid(), nil
	}
	v, err := src.subStep(stepOpts{})
	if err != nil {
		return Value{}, err
	}
	if v.IsEnd() {
		return NewVoid(), nil
	}
	return v, nil
}

// Tail reports whether the feed has nothing more to give.
func (va *Varargs) Tail() bool {
	src := va.frame
	return src == nil || src.dead || src.atEnd() || src.at().kind == KindBar
}
