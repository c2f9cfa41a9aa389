package reed

import (
	"bytes"
	"context"
	"strings"
	"testing"
)

func evalOne(t *testing.T, src string) Value {
	t.Helper()
	engine := NewEngine(Config{})
	result, err := engine.Run(context.Background(), src)
	if err != nil {
		t.Fatalf("eval %q failed: %v", src, err)
	}
	return result
}

func mustRun(t *testing.T, engine *Engine, src string) Value {
	t.Helper()
	result, err := engine.Run(context.Background(), src)
	if err != nil {
		t.Fatalf("eval %q failed: %v", src, err)
	}
	return result
}

func evalErr(t *testing.T, src string) error {
	t.Helper()
	engine := NewEngine(Config{})
	_, err := engine.Run(context.Background(), src)
	if err == nil {
		t.Fatalf("eval %q: expected an error", src)
	}
	return err
}

func wantInt(t *testing.T, v Value, n int64) {
	t.Helper()
	if v.Kind() != KindInteger || v.Int() != n {
		t.Fatalf("expected %d, got %s", n, v.Mold())
	}
}

func wantLogic(t *testing.T, v Value, b bool) {
	t.Helper()
	if v.Kind() != KindLogic || v.Logic() != b {
		t.Fatalf("expected %v, got %s", b, v.Mold())
	}
}

func wantMold(t *testing.T, v Value, mold string) {
	t.Helper()
	if v.Mold() != mold {
		t.Fatalf("expected %s, got %s", mold, v.Mold())
	}
}

func TestEvalLiterals(t *testing.T) {
	wantInt(t, evalOne(t, "42"), 42)
	wantMold(t, evalOne(t, "3.5"), "3.5")
	wantMold(t, evalOne(t, `"hello"`), `"hello"`)
	wantMold(t, evalOne(t, "<tag>"), "<tag>")
	wantMold(t, evalOne(t, "[1 2 3]"), "[1 2 3]")
	if evalOne(t, "_").Kind() != KindBlank {
		t.Fatalf("expected blank")
	}
}

func TestEvalSequenceYieldsLast(t *testing.T) {
	wantInt(t, evalOne(t, "1 2 3"), 3)
}

func TestSetWordAndLookup(t *testing.T) {
	wantInt(t, evalOne(t, "x: 5 x"), 5)
	wantInt(t, evalOne(t, "x: y: 7 x"), 7)
}

func TestSetWordConsumesFullExpression(t *testing.T) {
	wantInt(t, evalOne(t, "x: 1 + 2 x"), 3)
}

func TestSetWordMissingValue(t *testing.T) {
	err := evalErr(t, "x:")
	if !strings.Contains(err.Error(), "needs a value") {
		t.Fatalf("unexpected error: %v", err)
	}
}

func TestGetWordFetchesWithoutDispatch(t *testing.T) {
	result := evalOne(t, "f: func [] [99] :f")
	if result.Action() == nil {
		t.Fatalf("expected the action itself, got %s", result.Mold())
	}
}

func TestLitWordYieldsWord(t *testing.T) {
	result := evalOne(t, "'foo")
	if result.Kind() != KindWord || result.Name() != "foo" {
		t.Fatalf("expected the word foo, got %s", result.Mold())
	}
}

func TestUnboundWordErrors(t *testing.T) {
	err := evalErr(t, "no-such-word")
	if !strings.Contains(err.Error(), "not bound") {
		t.Fatalf("unexpected error: %v", err)
	}
}

func TestGroupEvaluates(t *testing.T) {
	wantInt(t, evalOne(t, "(1 + 2)"), 3)
}

func TestEmptyGroupIsVoid(t *testing.T) {
	if !evalOne(t, "()").IsVoid() {
		t.Fatalf("expected void from an empty group")
	}
}

func TestBlockIsInert(t *testing.T) {
	wantMold(t, evalOne(t, "[1 + 2]"), "[1 + 2]")
}

func TestDoEvaluatesBlock(t *testing.T) {
	wantInt(t, evalOne(t, "do [1 + 2]"), 3)
	wantInt(t, evalOne(t, `do "5 + 5"`), 10)
	wantInt(t, evalOne(t, "do 7"), 7)
}

func TestReduce(t *testing.T) {
	wantMold(t, evalOne(t, "reduce [1 + 2 3 * 4]"), "[3 12]")
}

func TestQuote(t *testing.T) {
	result := evalOne(t, "quote foo")
	if result.Kind() != KindWord || result.Name() != "foo" {
		t.Fatalf("expected the word foo, got %s", result.Mold())
	}
	wantMold(t, evalOne(t, "quote (1 + 2)"), "(1 + 2)")
}

func TestTypeOf(t *testing.T) {
	result := evalOne(t, "type-of 5")
	if result.Kind() != KindWord || result.Name() != "integer!" {
		t.Fatalf("unexpected type-of result: %s", result.Mold())
	}
}

func TestSetAndGet(t *testing.T) {
	wantInt(t, evalOne(t, "set 'x 9 x"), 9)
	wantInt(t, evalOne(t, "x: 4 get 'x"), 4)
	if !evalOne(t, "get/any 'never-set").IsVoid() {
		t.Fatalf("expected void from get/any of an unbound word")
	}
	evalErr(t, "get 'never-set")
}

func TestPrintWritesToOutput(t *testing.T) {
	var buf bytes.Buffer
	engine := NewEngine(Config{Output: &buf})
	if _, err := engine.Run(context.Background(), `print [1 + 1 "x"]`); err != nil {
		t.Fatalf("eval failed: %v", err)
	}
	if buf.String() != "2 x\n" {
		t.Fatalf("unexpected print output: %q", buf.String())
	}
}

func TestProbePassesValueThrough(t *testing.T) {
	var buf bytes.Buffer
	engine := NewEngine(Config{Output: &buf})
	result, err := engine.Run(context.Background(), "probe 1 + 2")
	if err != nil {
		t.Fatalf("eval failed: %v", err)
	}
	wantInt(t, result, 3)
	if buf.String() != "3\n" {
		t.Fatalf("probe should show the full infix result: %q", buf.String())
	}
}

func TestCommentIsInvisible(t *testing.T) {
	wantInt(t, evalOne(t, `comment "ignored" 5`), 5)
	wantInt(t, evalOne(t, `5 comment "trailing"`), 5)
	wantInt(t, evalOne(t, `1 + 2 comment "after"`), 3)
}

func TestElideIsInvisible(t *testing.T) {
	wantInt(t, evalOne(t, "x: 0 elide (x: 9) x"), 9)
	wantInt(t, evalOne(t, "elide 1 2"), 2)
}

func TestInvisibleMidExpression(t *testing.T) {
	// The argument step retriggers past the invisible to find the real
	// value.
	wantInt(t, evalOne(t, `add comment "gap" 1 2`), 3)
}

func TestExpressionBarrier(t *testing.T) {
	wantInt(t, evalOne(t, "1 + 2 | 5"), 5)
	err := evalErr(t, "add 1 | 2")
	if !strings.Contains(err.Error(), "missing its value2 argument") {
		t.Fatalf("unexpected error: %v", err)
	}
}

func TestEmptyProgramIsVoid(t *testing.T) {
	if !evalOne(t, "").IsVoid() {
		t.Fatalf("expected void from an empty program")
	}
	if !evalOne(t, "; only a comment").IsVoid() {
		t.Fatalf("expected void from a comment-only program")
	}
}
