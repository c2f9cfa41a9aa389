package reed

import "fmt"

// throwSignal is a propagating non-local control value: BREAK, CONTINUE,
// RETURN, and user THROW are all one of these, tagged by the identity of
// the Action that initiated it. A throwSignal is not a hard error; frames
// that do not recognize the tag must re-propagate it unchanged.
type throwSignal struct {
	id  *Action
	arg Value
}

func (t *throwSignal) Error() string {
	return fmt.Sprintf("no catch for throw (from %s)", t.id.label())
}

// ThrowFrom builds the control signal for an action identity.
func ThrowFrom(id *Action, arg Value) error {
	return &throwSignal{id: id, arg: arg}
}

// CatchThrow intercepts a signal tagged with the given identity, returning
// the thrown argument. Any other error, including signals with foreign
// tags, passes through untouched.
func CatchThrow(err error, id *Action) (Value, bool) {
	sig, ok := err.(*throwSignal)
	if !ok || sig.id != id {
		return Value{}, false
	}
	return sig.arg, true
}

// isThrow reports whether an error is non-local control rather than a hard
// error.
func isThrow(err error) bool {
	_, ok := err.(*throwSignal)
	return ok
}
