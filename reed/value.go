package reed

// ValueKind is the type tag of a Value. The tag always determines which
// shape of payload is valid; KindEnd is a distinguished marker used by the
// evaluator and specialization exemplars, never a nil pointer.
type ValueKind int

const (
	KindEnd ValueKind = iota
	KindVoid
	KindBlank
	KindLogic
	KindInteger
	KindDecimal
	KindText
	KindTag
	KindWord
	KindSetWord
	KindGetWord
	KindLitWord
	KindRefinement
	KindBar
	KindBlock
	KindGroup
	KindPath
	KindSetPath
	KindObject
	KindAction
	KindVarargs
)

// Value is the universal runtime carrier: a small tagged cell copied by
// value. Series payloads (blocks, groups, paths) share their backing Array.
type Value struct {
	kind ValueKind
	data any
}

// Array owns an ordered sequence of Values. During evaluation the input
// array is read-only; only variadic consumption advances cursor state.
type Array struct {
	vals []Value
}

func newArray(vals []Value) *Array {
	return &Array{vals: vals}
}

func (a *Array) Len() int {
	return len(a.vals)
}

func (a *Array) At(i int) Value {
	if i < 0 || i >= len(a.vals) {
		return Value{kind: KindEnd}
	}
	return a.vals[i]
}

func (a *Array) Values() []Value {
	return a.vals
}
