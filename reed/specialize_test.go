package reed

import (
	"strings"
	"testing"
)

func TestSpecializePositional(t *testing.T) {
	wantInt(t, evalOne(t, "add5: specialize :add [value1: 5] add5 10"), 15)
}

func TestSpecializeAllSlots(t *testing.T) {
	wantInt(t, evalOne(t, "seven: specialize :add [value1: 3 value2: 4] seven"), 7)
}

func TestSpecializeRefinementOn(t *testing.T) {
	src := "f: func [a /b c] [either b [c] [a]] fb: specialize :f [b: true] "
	wantInt(t, evalOne(t, src+"fb 1 2"), 2)
}

func TestSpecializeRefinementOff(t *testing.T) {
	// A forced-off refinement voids its group without consuming anything.
	src := "f: func [a /b c] [either b [c] [a]] fn: specialize :f [b: false] "
	wantInt(t, evalOne(t, src+"fn 1"), 1)
}

func TestSpecializeUserFunction(t *testing.T) {
	wantInt(t, evalOne(t, "f: func [x y] [x - y] dec: specialize :f [y: 1] dec 10"), 9)
}

func TestSpecializeByWord(t *testing.T) {
	wantInt(t, evalOne(t, "inc: specialize 'add [value2: 1] inc 41"), 42)
}

func TestSpecializeUnknownParameter(t *testing.T) {
	err := evalErr(t, "specialize :add [nope: 1]")
	if !strings.Contains(err.Error(), "no parameter called nope") {
		t.Fatalf("unexpected error: %v", err)
	}
}

func TestSpecializeGo(t *testing.T) {
	engine := NewEngine(Config{})
	val, _ := engine.Root().Get("add")
	spec, err := Specialize(val.Action(), map[string]Value{"value1": NewInteger(2)})
	if err != nil {
		t.Fatalf("specialize failed: %v", err)
	}
	engine.Register("add2", NewAction(spec))
	wantInt(t, mustRun(t, engine, "add2 3"), 5)
}
