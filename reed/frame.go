package reed

// Execution carries the per-run bookkeeping shared by every Frame of one
// top-level evaluation: quotas, cancellation, and the recursion guard.
type Execution struct {
	engine *Engine
	ctx    doneChecker
	steps  int
	depth  int
}

// doneChecker is the slice of context.Context the evaluator needs; it is
// polled at each new-expression boundary, never mid-expression.
type doneChecker interface {
	Err() error
}

// refineMode tracks which refinement (if any) currently gates argument
// consumption during fulfillment.
type refineMode int

const (
	refineOrdinary refineMode = iota // plain positional argument
	refineUsed                       // consuming args gated by an active refinement
	refineUnused                     // refinement absent: args fill with void
	refineSkipping                   // out-of-order refinement, filled by pickup pass
	refineRevoking                   // group's first arg was void; the rest must be
)

// refineRequest is one refinement named at the callsite (via path), waiting
// to be claimed by the paramlist walk. paramIdx records where the pickup
// pass must rewind to; -1 means unclaimed.
type refineRequest struct {
	name     string
	paramIdx int
}

// deferredArg is the single slot recording an argument an infix operator
// has postponed judgment on. Captured by value: slot index plus the gating
// state, never a pointer offset.
type deferredArg struct {
	argIdx     int
	param      *Param
	refine     refineMode
	refineSlot int
}

// Frame is the state record for one in-progress evaluation step or call.
// Frames are created per call and per sub-expression recursion, mirroring
// native recursion one-to-one, and destroyed on return or unwind.
type Frame struct {
	exec   *Execution
	parent *Frame

	// Cursor: the input array, position, and binding context.
	arr *Array
	idx int
	env *Env

	// Output cell. outStale means no expression has contributed output
	// yet at this position (the invisibles protocol); unevaluated marks
	// inert literals for downstream quoting consumers.
	out         Value
	outStale    bool
	unevaluated bool

	// Mode flags for this activation.
	toEnd       bool // run until the array is exhausted
	noLookahead bool // tight argument: suppress enfix lookahead
	postSwitch  bool // re-entry giving a deferred enfix its second chance

	// Argument fulfillment: when this frame is itself filling a slot of a
	// parent action frame, fulfilling names that parameter.
	fulfilling *Param

	// Invocation state for the callee, valid while action != nil. argIdx
	// walks Params, args, and the exemplar in lockstep.
	action     *Action
	label      string
	args       []Value
	argIdx     int
	refine     refineMode
	refineSlot int
	refineArgN int // consuming args seen in the current refinement group
	refines    []refineRequest
	deferred   *deferredArg
	enfixLeft  bool // first consuming param takes the output cell (lookback)

	// Dispatcher mailboxes for DispatchRedo and DispatchReevaluate.
	redoPhase *Action
	reeval    Value

	// dead marks the frame expired; variadic handles alias live frames and
	// must fail rather than read past this.
	dead bool
}

func (f *Frame) child() *Frame {
	return &Frame{
		exec:   f.exec,
		parent: f,
		arr:    f.arr,
		idx:    f.idx,
		env:    f.env,
	}
}

// atEnd reports cursor exhaustion; a pending barrier counts as end.
func (f *Frame) atEnd() bool {
	return f.arr == nil || f.idx >= f.arr.Len()
}

// at returns the next term without consuming it.
func (f *Frame) at() Value {
	if f.atEnd() {
		return endValue()
	}
	return f.arr.At(f.idx)
}

// take consumes and returns the next term.
func (f *Frame) take() Value {
	v := f.at()
	if !v.IsEnd() {
		f.idx++
	}
	return v
}

// lookup resolves a word through the frame's binding context.
func (f *Frame) lookup(name string) (Value, bool) {
	return f.env.Get(name)
}

// Arg reads a fulfilled argument slot; dispatchers index their own
// paramlist.
func (f *Frame) Arg(i int) Value {
	if i < 0 || i >= len(f.args) {
		return NewVoid()
	}
	return f.args[i]
}

// RefinementUsed reports whether the refinement parameter at slot i was
// requested at the callsite (and not revoked).
func (f *Frame) RefinementUsed(i int) bool {
	return f.Arg(i).Truthy()
}

// Env exposes the frame's binding context to dispatchers.
func (f *Frame) Env() *Env { return f.env }

// Engine exposes the owning engine to dispatchers.
func (f *Frame) Engine() *Engine { return f.exec.engine }

// SetOut writes the dispatcher's result into the output cell.
func (f *Frame) SetOut(v Value) { f.out = v }

// SetReevaluate loads the cell DispatchReevaluate feeds back through the
// evaluator.
func (f *Frame) SetReevaluate(v Value) { f.reeval = v }

// SetRedoPhase loads the dispatcher DispatchRedo re-runs the frame with.
func (f *Frame) SetRedoPhase(a *Action) { f.redoPhase = a }

// enterLevel enforces the recursion bound shared across all frames of the
// execution.
func (f *Frame) enterLevel() error {
	f.exec.depth++
	if limit := f.exec.engine.config.RecursionLimit; limit > 0 && f.exec.depth > limit {
		return f.errorf("recursion depth exceeded (limit %d)", limit)
	}
	return nil
}

func (f *Frame) leaveLevel() {
	f.exec.depth--
}
