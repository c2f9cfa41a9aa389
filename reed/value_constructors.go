package reed

func NewVoid() Value             { return Value{kind: KindVoid} }
func NewBlank() Value            { return Value{kind: KindBlank} }
func NewLogic(b bool) Value      { return Value{kind: KindLogic, data: b} }
func NewInteger(i int64) Value   { return Value{kind: KindInteger, data: i} }
func NewDecimal(f float64) Value { return Value{kind: KindDecimal, data: f} }
func NewText(s string) Value     { return Value{kind: KindText, data: s} }
func NewTag(s string) Value      { return Value{kind: KindTag, data: s} }
func NewWord(name string) Value  { return Value{kind: KindWord, data: name} }
func NewSetWord(name string) Value {
	return Value{kind: KindSetWord, data: name}
}
func NewGetWord(name string) Value {
	return Value{kind: KindGetWord, data: name}
}
func NewLitWord(name string) Value {
	return Value{kind: KindLitWord, data: name}
}
func NewRefinement(name string) Value {
	return Value{kind: KindRefinement, data: name}
}
func NewBar() Value { return Value{kind: KindBar} }

func NewBlock(vals []Value) Value {
	return Value{kind: KindBlock, data: newArray(vals)}
}
func NewGroup(vals []Value) Value {
	return Value{kind: KindGroup, data: newArray(vals)}
}
func NewPath(segments []Value) Value {
	return Value{kind: KindPath, data: newArray(segments)}
}
func NewSetPath(segments []Value) Value {
	return Value{kind: KindSetPath, data: newArray(segments)}
}

func NewObject(env *Env) Value       { return Value{kind: KindObject, data: env} }
func NewAction(act *Action) Value    { return Value{kind: KindAction, data: act} }
func NewVarargs(va *Varargs) Value   { return Value{kind: KindVarargs, data: va} }
func newBlockFromArray(a *Array) Value {
	return Value{kind: KindBlock, data: a}
}

// endValue marks "no value here at all": unfilled exemplar slots and
// exhausted cursors. It is not a user-visible datatype.
func endValue() Value { return Value{kind: KindEnd} }
