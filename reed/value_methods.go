package reed

import (
	"fmt"
	"strconv"
	"strings"
)

// Equal compares by value. Series compare element-wise, objects and actions
// by identity.
func (v Value) Equal(other Value) bool {
	if v.kind != other.kind {
		// Integer/decimal comparisons coerce, as the arithmetic natives do.
		if isNumeric(v.kind) && isNumeric(other.kind) {
			return v.Dec() == other.Dec()
		}
		return false
	}
	switch v.kind {
	case KindEnd, KindVoid, KindBlank, KindBar:
		return true
	case KindLogic:
		return v.data.(bool) == other.data.(bool)
	case KindInteger:
		return v.data.(int64) == other.data.(int64)
	case KindDecimal:
		return v.data.(float64) == other.data.(float64)
	case KindText, KindTag:
		return v.data.(string) == other.data.(string)
	case KindWord, KindSetWord, KindGetWord, KindLitWord, KindRefinement:
		return v.data.(string) == other.data.(string)
	case KindBlock, KindGroup, KindPath, KindSetPath:
		a, b := v.List(), other.List()
		if len(a) != len(b) {
			return false
		}
		for i := range a {
			if !a[i].Equal(b[i]) {
				return false
			}
		}
		return true
	case KindObject:
		return v.data.(*Env) == other.data.(*Env)
	case KindAction:
		return v.data.(*Action) == other.data.(*Action)
	case KindVarargs:
		return v.data.(*Varargs) == other.data.(*Varargs)
	default:
		return false
	}
}

func isNumeric(k ValueKind) bool {
	return k == KindInteger || k == KindDecimal
}

// Mold renders a value in loadable notation (the inverse of scanning).
func (v Value) Mold() string {
	switch v.kind {
	case KindEnd:
		return "~end~"
	case KindVoid:
		return "~void~"
	case KindBlank:
		return "_"
	case KindLogic:
		if v.data.(bool) {
			return "true"
		}
		return "false"
	case KindInteger:
		return strconv.FormatInt(v.data.(int64), 10)
	case KindDecimal:
		return strconv.FormatFloat(v.data.(float64), 'g', -1, 64)
	case KindText:
		return strconv.Quote(v.data.(string))
	case KindTag:
		return "<" + v.data.(string) + ">"
	case KindWord:
		return v.data.(string)
	case KindSetWord:
		return v.data.(string) + ":"
	case KindGetWord:
		return ":" + v.data.(string)
	case KindLitWord:
		return "'" + v.data.(string)
	case KindRefinement:
		return "/" + v.data.(string)
	case KindBar:
		return "|"
	case KindBlock:
		return "[" + moldList(v.List(), " ") + "]"
	case KindGroup:
		return "(" + moldList(v.List(), " ") + ")"
	case KindPath:
		return moldList(v.List(), "/")
	case KindSetPath:
		return moldList(v.List(), "/") + ":"
	case KindObject:
		return "object!"
	case KindAction:
		act := v.data.(*Action)
		if act.Name != "" {
			return fmt.Sprintf("action!(%s)", act.Name)
		}
		return "action!"
	case KindVarargs:
		return "varargs!"
	default:
		return "?"
	}
}

// Form renders a value for human output: strings lose their quotes, the
// rest molds.
func (v Value) Form() string {
	if v.kind == KindText {
		return v.data.(string)
	}
	return v.Mold()
}

func (v Value) String() string {
	return v.Mold()
}

func moldList(vals []Value, sep string) string {
	parts := make([]string, len(vals))
	for i, v := range vals {
		parts[i] = v.Mold()
	}
	return strings.Join(parts, sep)
}

func kindName(k ValueKind) string {
	switch k {
	case KindEnd:
		return "end!"
	case KindVoid:
		return "void!"
	case KindBlank:
		return "blank!"
	case KindLogic:
		return "logic!"
	case KindInteger:
		return "integer!"
	case KindDecimal:
		return "decimal!"
	case KindText:
		return "text!"
	case KindTag:
		return "tag!"
	case KindWord:
		return "word!"
	case KindSetWord:
		return "set-word!"
	case KindGetWord:
		return "get-word!"
	case KindLitWord:
		return "lit-word!"
	case KindRefinement:
		return "refinement!"
	case KindBar:
		return "bar!"
	case KindBlock:
		return "block!"
	case KindGroup:
		return "group!"
	case KindPath:
		return "path!"
	case KindSetPath:
		return "set-path!"
	case KindObject:
		return "object!"
	case KindAction:
		return "action!"
	case KindVarargs:
		return "varargs!"
	default:
		return "unknown!"
	}
}
