package reed

// Specialize builds a partially applied variant of an action. Filled slots
// are fixed values the callsite cannot override; refinement slots take a
// logic to force the refinement on or off. The fulfillment walk applies the
// exemplar through the same lockstep cursor it uses for ordinary binding.
func Specialize(act *Action, fills map[string]Value) (*Action, error) {
	exemplar := make([]Value, len(act.Params))
	for i := range exemplar {
		exemplar[i] = endValue()
	}
	if act.Exemplar != nil {
		copy(exemplar, act.Exemplar)
	}
	for name, v := range fills {
		idx := -1
		for i := range act.Params {
			if act.Params[i].Name == name {
				idx = i
				break
			}
		}
		if idx < 0 {
			return nil, &RuntimeError{
				Message: "cannot specialize " + act.label() + ": no parameter called " + name,
			}
		}
		param := &act.Params[idx]
		switch param.Class {
		case ParamLocal, ParamReturn:
			return nil, &RuntimeError{
				Message: "cannot specialize " + act.label() + ": " + name + " is not callsite-filled",
			}
		case ParamRefinement:
			exemplar[idx] = NewLogic(v.Truthy())
		default:
			exemplar[idx] = v
		}
	}
	return &Action{
		Name:           act.Name,
		Params:         act.Params,
		Dispatch:       act.Dispatch,
		Exemplar:       exemplar,
		Enfix:          act.Enfix,
		DefersLookback: act.DefersLookback,
		Invisible:      act.Invisible,
		Body:           act.Body,
	}, nil
}
