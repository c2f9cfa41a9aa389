package reed

import (
	"strings"
	"testing"
)

func TestFuncBasics(t *testing.T) {
	wantInt(t, evalOne(t, "double: func [x] [x * 2] double 21"), 42)
	wantInt(t, evalOne(t, "sum3: func [a b c] [a + b + c] sum3 1 2 3"), 6)
}

func TestDoes(t *testing.T) {
	wantInt(t, evalOne(t, "answer: does [42] answer"), 42)
}

func TestFuncLocals(t *testing.T) {
	// Locals start void and do not leak into the caller's context.
	wantInt(t, evalOne(t, "f: func [x <local> tmp] [tmp: x + 1 tmp] f 9"), 10)
	evalErr(t, "f: func [x <local> tmp] [tmp: 1 tmp] f 0 tmp")
}

func TestFuncClosesOverDefinitionContext(t *testing.T) {
	wantInt(t, evalOne(t, "n: 100 addn: func [x] [x + n] addn 1"), 101)
}

func TestReturn(t *testing.T) {
	wantInt(t, evalOne(t, "f: func [x] [return x + 1 99] f 1"), 2)
	if !evalOne(t, "f: func [] [return] f").IsVoid() {
		t.Fatalf("bare return should yield void")
	}
}

func TestReturnUnwindsOnlyItsOwnFrame(t *testing.T) {
	// The inner function's return must not return from the outer one.
	wantInt(t, evalOne(t, `
		inner: func [] [return 1]
		outer: func [] [inner 2]
		outer
	`), 2)
}

func TestHardQuoteParameter(t *testing.T) {
	result := evalOne(t, "grab: func [:w] [w] grab unevaluated-word")
	if result.Kind() != KindWord || result.Name() != "unevaluated-word" {
		t.Fatalf("expected the literal word, got %s", result.Mold())
	}
}

func TestSoftQuoteParameter(t *testing.T) {
	// Soft quoting takes words literally but evaluates groups.
	result := evalOne(t, "grab: func ['w] [w] grab some-word")
	if result.Kind() != KindWord || result.Name() != "some-word" {
		t.Fatalf("expected the literal word, got %s", result.Mold())
	}
	wantInt(t, evalOne(t, "grab: func ['w] [w] grab (1 + 2)"), 3)
}

func TestEndableParameter(t *testing.T) {
	if !evalOne(t, "f: func [<end> x] [x] f").IsVoid() {
		t.Fatalf("endable parameter at end should fill with void")
	}
	wantInt(t, evalOne(t, "f: func [<end> x] [x] f 5"), 5)
}

func TestMissingArgumentErrors(t *testing.T) {
	err := evalErr(t, "f: func [x] [x] f")
	if !strings.Contains(err.Error(), "missing its x argument") {
		t.Fatalf("unexpected error: %v", err)
	}
}

func TestTypeConstraint(t *testing.T) {
	wantInt(t, evalOne(t, "f: func [x [integer!]] [x] f 5"), 5)
	err := evalErr(t, `f: func [x [integer!]] [x] f "nope"`)
	if !strings.Contains(err.Error(), "does not allow text! for its x argument") {
		t.Fatalf("unexpected error: %v", err)
	}
}

func TestRefinementUnused(t *testing.T) {
	// Unused refinement reads as false and its argument as void.
	wantInt(t, evalOne(t, "f: func [a /b c] [either b [c] [a]] f 1"), 1)
}

func TestRefinementUsed(t *testing.T) {
	wantInt(t, evalOne(t, "f: func [a /b c] [either b [c] [a]] f/b 1 2"), 2)
}

func TestRefinementOrderIndependence(t *testing.T) {
	src := "f: func [a /b x /c y] [reduce [a b x c y]] "
	wantMold(t, evalOne(t, src+"f/b/c 1 8 9"), "[1 true 8 true 9]")
	// Out of order: arguments still arrive in callsite refinement order,
	// with the second pass picking up the skipped slots.
	wantMold(t, evalOne(t, src+"f/c/b 1 8 9"), "[1 true 9 true 8]")
}

func TestUnknownRefinementErrors(t *testing.T) {
	err := evalErr(t, "f: func [a /b c] [a] f/nope 1 2")
	if !strings.Contains(err.Error(), "has no refinement called /nope") {
		t.Fatalf("unexpected error: %v", err)
	}
}

func TestRefinementRevocation(t *testing.T) {
	// A void first argument revokes the refinement entirely.
	wantInt(t, evalOne(t, "f: func [a /b c] [either b [c] [a]] f/b 1 ()"), 1)
}

func TestPartialRevocationErrors(t *testing.T) {
	err := evalErr(t, "f: func [/b c d] [b] f/b () 2")
	if !strings.Contains(err.Error(), "revoke just part of refinement /b") {
		t.Fatalf("unexpected error: %v", err)
	}
	err = evalErr(t, "f: func [/b c d] [b] f/b 1 ()")
	if !strings.Contains(err.Error(), "revoke just part of refinement /b") {
		t.Fatalf("unexpected error: %v", err)
	}
}

func TestZeroRefinementPathDispatch(t *testing.T) {
	// A path with no refinements behaves exactly like a plain word call.
	wantInt(t, evalOne(t, "o: object [f: func [x] [x + 1]] o/f 4"), 5)
}

func TestObjectFieldAccess(t *testing.T) {
	wantInt(t, evalOne(t, "o: object [a: 1 b: 2] o/a"), 1)
	wantInt(t, evalOne(t, "o: object [inner: object [deep: 7]] o/inner/deep"), 7)
}

func TestBlockPicking(t *testing.T) {
	wantInt(t, evalOne(t, "blk: [10 20 30] blk/2"), 20)
	if !evalOne(t, "blk: [10] blk/5").IsVoid() {
		t.Fatalf("out-of-range pick should be void")
	}
}

func TestPathGroupPicker(t *testing.T) {
	wantInt(t, evalOne(t, "blk: [10 20 30] i: 3 blk/(i)"), 30)
}

func TestSetPath(t *testing.T) {
	wantInt(t, evalOne(t, "o: object [a: 1] o/a: 5 o/a"), 5)
	wantMold(t, evalOne(t, "blk: [1 2 3] blk/2: 9 blk"), "[1 9 3]")
}

func TestObjectMissingFieldIsVoid(t *testing.T) {
	if !evalOne(t, "o: object [a: 1] o/missing").IsVoid() {
		t.Fatalf("missing object field should pick void")
	}
}
