package reed

func (v Value) Kind() ValueKind { return v.kind }

func (v Value) IsEnd() bool  { return v.kind == KindEnd }
func (v Value) IsVoid() bool { return v.kind == KindVoid }

func (v Value) Logic() bool {
	if v.kind == KindLogic {
		return v.data.(bool)
	}
	return false
}

func (v Value) Int() int64 {
	switch v.kind {
	case KindInteger:
		return v.data.(int64)
	case KindDecimal:
		return int64(v.data.(float64))
	default:
		return 0
	}
}

func (v Value) Dec() float64 {
	switch v.kind {
	case KindDecimal:
		return v.data.(float64)
	case KindInteger:
		return float64(v.data.(int64))
	default:
		return 0
	}
}

func (v Value) Text() string {
	switch v.kind {
	case KindText, KindTag:
		return v.data.(string)
	default:
		return ""
	}
}

// Name reports the spelling of any word-flavored value.
func (v Value) Name() string {
	switch v.kind {
	case KindWord, KindSetWord, KindGetWord, KindLitWord, KindRefinement:
		return v.data.(string)
	default:
		return ""
	}
}

func (v Value) Series() *Array {
	switch v.kind {
	case KindBlock, KindGroup, KindPath, KindSetPath:
		return v.data.(*Array)
	default:
		return nil
	}
}

func (v Value) List() []Value {
	if ser := v.Series(); ser != nil {
		return ser.vals
	}
	return nil
}

func (v Value) Object() *Env {
	if v.kind != KindObject {
		return nil
	}
	return v.data.(*Env)
}

func (v Value) Action() *Action {
	if v.kind != KindAction {
		return nil
	}
	return v.data.(*Action)
}

func (v Value) Varargs() *Varargs {
	if v.kind != KindVarargs {
		return nil
	}
	return v.data.(*Varargs)
}

// Truthy reports conditional truth: every value is truthy except logic
// false, blank, and void.
func (v Value) Truthy() bool {
	switch v.kind {
	case KindLogic:
		return v.data.(bool)
	case KindVoid, KindBlank, KindEnd:
		return false
	default:
		return true
	}
}

// anyInert reports whether the value evaluates to itself.
func (v Value) anyInert() bool {
	switch v.kind {
	case KindBlank, KindLogic, KindInteger, KindDecimal, KindText, KindTag,
		KindBlock, KindObject:
		return true
	default:
		return false
	}
}
