package reed

import (
	"strings"
	"testing"
)

func TestVariadicTakesEvaluations(t *testing.T) {
	// Each take pulls one full expression from the callsite feed.
	result := evalOne(t, "vpair: func [<...> vals] [reduce [take vals take vals]] vpair 1 + 2 9")
	wantMold(t, result, "[3 9]")
}

func TestVariadicExhaustionIsVoid(t *testing.T) {
	if !evalOne(t, "vfirst: func [<...> vals] [take vals] vfirst").IsVoid() {
		t.Fatalf("take from an exhausted feed should be void")
	}
}

func TestVariadicStopsAtBarrier(t *testing.T) {
	result := evalOne(t, "vboth: func [<...> vals] [reduce [take vals take vals]] do [vboth 1 |]")
	wantMold(t, result, "[1 ~void~]")
}

func TestVariadicMixesWithOrdinaryParams(t *testing.T) {
	result := evalOne(t, "vf: func [first <...> rest] [reduce [first take rest]] vf 10 20")
	wantMold(t, result, "[10 20]")
}

func TestVariadicExpiredFrameErrors(t *testing.T) {
	err := evalErr(t, "vgrab: func [<...> vals] [vals] v: vgrab 1 take v")
	if !strings.Contains(err.Error(), "varargs frame is no longer live") {
		t.Fatalf("unexpected error: %v", err)
	}
}
