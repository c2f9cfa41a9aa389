package reed

// ParamClass is the argument convention of one formal parameter.
type ParamClass int

const (
	// ParamNormal evaluates one sub-expression and participates in enfix
	// lookahead while doing so.
	ParamNormal ParamClass = iota

	// ParamTight evaluates one sub-expression with lookahead suppressed,
	// so infix operators bind locally first: `square 1 + 2` with a tight
	// argument reads as `(square 1) + 2`.
	ParamTight

	// ParamHardQuote takes the next term literally, unevaluated.
	ParamHardQuote

	// ParamSoftQuote takes the next term literally unless it is a group or
	// get-word, which evaluate once.
	ParamSoftQuote

	// ParamRefinement is a named optional switch gating a following run of
	// arguments.
	ParamRefinement

	// ParamLocal is never filled from the callsite; it is seeded void.
	ParamLocal

	// ParamReturn is seeded with a per-call RETURN action.
	ParamReturn

	// ParamVariadic does not consume at bind time; the argument is a live
	// handle the callee pulls further evaluations through.
	ParamVariadic
)

// TypeSet is a bitset of accepted ValueKinds for one parameter.
type TypeSet uint32

// AnyType accepts every datatype.
const AnyType = TypeSet(0)

func TypesOf(kinds ...ValueKind) TypeSet {
	var ts TypeSet
	for _, k := range kinds {
		ts |= 1 << uint(k)
	}
	return ts
}

func (ts TypeSet) Has(k ValueKind) bool {
	if ts == AnyType {
		return true
	}
	return ts&(1<<uint(k)) != 0
}

// Param describes one formal argument of an Action. Immutable once the
// Action is created.
type Param struct {
	Name    string
	Class   ParamClass
	Types   TypeSet
	Endable bool
}

// consumes reports whether the parameter takes material from the callsite.
func (p *Param) consumes() bool {
	switch p.Class {
	case ParamNormal, ParamTight, ParamHardQuote, ParamSoftQuote:
		return true
	default:
		return false
	}
}

// typeCheck validates a filled argument slot against the constraint set.
// Void arguments are handled by finalization (endability and refinement
// revocation), not here.
func (p *Param) typeCheck(v Value) bool {
	return p.Types.Has(v.kind)
}
