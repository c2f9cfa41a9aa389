package reed

// DispatchResult classifies what an Action's dispatcher asks the evaluator
// to do after it runs. Thrown values travel on the error channel instead.
type DispatchResult int

const (
	// DispatchCompleted: the ordinary case, the result is in the frame's
	// output cell.
	DispatchCompleted DispatchResult = iota

	// DispatchInvisible: the call contributed no output; the surrounding
	// expression's in-progress result must be left undisturbed.
	DispatchInvisible

	// DispatchRedo re-runs the same bound arguments against the dispatcher
	// phase left in the frame (function composition/hijacking).
	DispatchRedo

	// DispatchReevaluate feeds the frame's reevaluation cell back through
	// the evaluator as if freshly read from the input stream.
	DispatchReevaluate
)

// Dispatcher is the native implementation of an Action. It reads fulfilled
// arguments from the frame and writes its result to the frame's output cell.
type Dispatcher func(f *Frame) (DispatchResult, error)

// Action is an invocable unit: an ordered paramlist, a dispatcher, and an
// optional specialization exemplar. Actions are identity-comparable; that
// identity is the tag on non-local control signals.
type Action struct {
	Name     string
	Params   []Param
	Dispatch Dispatcher

	// Exemplar, when non-nil, runs parallel to Params; slots other than
	// KindEnd are pre-filled and the callsite cannot override them.
	Exemplar []Value

	// Enfix actions are invoked by appearing after their first argument.
	Enfix bool

	// DefersLookback postpones this enfix operator's left-hand binding by
	// one step when an argument-fulfillment context one level up would
	// otherwise lose the pending value.
	DefersLookback bool

	// Invisible actions never disturb the surrounding expression's output.
	Invisible bool

	// Body holds the block of a user function (diagnostics and reflection).
	Body Value
}

// NewNative builds an Action around a Go dispatcher.
func NewNative(name string, params []Param, d Dispatcher) *Action {
	return &Action{Name: name, Params: params, Dispatch: d}
}

// firstConsuming locates the first parameter filled from the callsite,
// the one an enfix invocation takes from the left.
func (a *Action) firstConsuming() *Param {
	for i := range a.Params {
		if a.Params[i].consumes() {
			return &a.Params[i]
		}
	}
	return nil
}

// quotesFirst reports whether the action takes its first callsite argument
// literally, which affects quote-priority contests in lookahead.
func (a *Action) quotesFirst() bool {
	first := a.firstConsuming()
	return first != nil && (first.Class == ParamHardQuote || first.Class == ParamSoftQuote)
}

func (a *Action) label() string {
	if a.Name != "" {
		return a.Name
	}
	return "anonymous"
}
