package reed

import (
	"context"
	"io"
	"os"
)

// Config controls evaluator execution bounds and output plumbing.
type Config struct {
	// StepQuota bounds how many expression evaluations one Do may perform.
	// Zero means the default; negative disables the quota.
	StepQuota int

	// RecursionLimit bounds frame nesting depth. Zero means the default;
	// negative disables the limit.
	RecursionLimit int

	// Output receives what print and probe write. Defaults to os.Stdout.
	Output io.Writer
}

// Engine evaluates Reed programs with deterministic limits. An Engine holds
// the root binding context, so definitions persist across Do calls; that is
// what the REPL relies on.
type Engine struct {
	config Config
	root   *Env

	// Control-signal identities. Loops catch break/continue, catch catches
	// throw, Do catches halt; everything else re-propagates unchanged.
	breakAction    *Action
	continueAction *Action
	throwAction    *Action
	haltAction     *Action
}

// NewEngine constructs an Engine with sane defaults and registers the core
// natives.
func NewEngine(cfg Config) *Engine {
	if cfg.StepQuota == 0 {
		cfg.StepQuota = 100000
	}
	if cfg.RecursionLimit == 0 {
		cfg.RecursionLimit = 256
	}
	if cfg.Output == nil {
		cfg.Output = os.Stdout
	}

	engine := &Engine{
		config: cfg,
		root:   NewEnv(nil),
	}

	engine.breakAction = newSignalAction("break")
	engine.continueAction = newSignalAction("continue")
	engine.haltAction = newSignalAction("halt")
	engine.throwAction = newThrowNative()

	registerCore(engine)
	registerMath(engine)
	registerControl(engine)

	return engine
}

// Root exposes the engine's top-level binding context. Hosts use it to
// inspect or pre-seed globals.
func (e *Engine) Root() *Env { return e.root }

// Output exposes the configured writer to dispatchers.
func (e *Engine) Output() io.Writer { return e.config.Output }

// Register binds a value in the root context.
func (e *Engine) Register(name string, v Value) {
	e.root.Define(name, v)
}

// RegisterNative builds an Action around a Go dispatcher and binds it in
// the root context.
func (e *Engine) RegisterNative(name string, params []Param, d Dispatcher) *Action {
	act := NewNative(name, params, d)
	e.root.Define(name, NewAction(act))
	return act
}

// Load scans source text into a block of values. Nothing is evaluated.
func (e *Engine) Load(source string) (Value, error) {
	vals, err := scanSource(source)
	if err != nil {
		return Value{}, err
	}
	return NewBlock(vals), nil
}

// Do evaluates a block to completion in the root context. A block producing
// no output (empty, or all invisibles) yields void. Uncaught throws and
// cancellation surface as *RuntimeError.
func (e *Engine) Do(ctx context.Context, block Value) (Value, error) {
	ser := block.Series()
	if ser == nil {
		return Value{}, &RuntimeError{Message: "Do requires a block"}
	}
	if ctx == nil {
		ctx = context.Background()
	}

	exec := &Execution{engine: e, ctx: ctx}
	frame := &Frame{exec: exec, arr: ser, env: e.root, toEnd: true}
	err := frame.run()
	frame.dead = true
	if err != nil {
		return Value{}, e.surface(err)
	}
	if frame.out.IsEnd() {
		return NewVoid(), nil
	}
	return frame.out, nil
}

// Run scans and evaluates source text in one call.
func (e *Engine) Run(ctx context.Context, source string) (Value, error) {
	block, err := e.Load(source)
	if err != nil {
		return Value{}, err
	}
	return e.Do(ctx, block)
}

// surface converts escapes of the throw channel at the top level into hard
// errors; hard errors pass through as-is.
func (e *Engine) surface(err error) error {
	if _, ok := CatchThrow(err, e.haltAction); ok {
		return &RuntimeError{Message: "halted"}
	}
	if sig, ok := err.(*throwSignal); ok {
		return &RuntimeError{Message: sig.Error()}
	}
	return err
}

// newSignalAction builds a zero-argument native whose only job is to throw
// its own identity. break, continue and halt are all this shape.
func newSignalAction(name string) *Action {
	var act *Action
	act = NewNative(name, nil, func(f *Frame) (DispatchResult, error) {
		return DispatchCompleted, ThrowFrom(act, NewVoid())
	})
	return act
}

// newThrowNative builds throw: it carries its argument on the signal so
// catch can hand it back.
func newThrowNative() *Action {
	var act *Action
	act = NewNative("throw", []Param{
		{Name: "value", Class: ParamNormal, Types: AnyType},
	}, func(f *Frame) (DispatchResult, error) {
		return DispatchCompleted, ThrowFrom(act, f.Arg(0))
	})
	return act
}

// LoopBody evaluates a loop body and translates the loop control signals:
// break stops the loop (broke true, the loop's result is void), continue
// ends just this iteration with a void result. Other errors, including
// foreign throws, propagate.
func (f *Frame) LoopBody(body Value, env *Env) (Value, bool, error) {
	result, err := f.EvalBlock(body, env)
	if err != nil {
		eng := f.exec.engine
		if _, ok := CatchThrow(err, eng.breakAction); ok {
			return Value{}, true, nil
		}
		if _, ok := CatchThrow(err, eng.continueAction); ok {
			return NewVoid(), false, nil
		}
		return Value{}, false, err
	}
	return result, false, nil
}
