package reed

import (
	"strings"
	"testing"
)

func scanOne(t *testing.T, src string) Value {
	t.Helper()
	vals, err := scanSource(src)
	if err != nil {
		t.Fatalf("scan %q failed: %v", src, err)
	}
	if len(vals) != 1 {
		t.Fatalf("scan %q: expected one value, got %d", src, len(vals))
	}
	return vals[0]
}

func scanKind(t *testing.T, src string, kind ValueKind) Value {
	t.Helper()
	v := scanOne(t, src)
	if v.Kind() != kind {
		t.Fatalf("scan %q: expected %s, got %s", src, kindName(kind), kindName(v.Kind()))
	}
	return v
}

func TestScanNumbers(t *testing.T) {
	wantInt(t, scanKind(t, "42", KindInteger), 42)
	wantInt(t, scanKind(t, "-7", KindInteger), -7)
	wantInt(t, scanKind(t, "+3", KindInteger), 3)
	v := scanKind(t, "1.5", KindDecimal)
	if v.Dec() != 1.5 {
		t.Fatalf("expected 1.5, got %v", v.Dec())
	}
	scanKind(t, "-2.25", KindDecimal)
}

func TestScanWordFlavors(t *testing.T) {
	if scanKind(t, "foo", KindWord).Name() != "foo" {
		t.Fatalf("bad word")
	}
	if scanKind(t, "foo:", KindSetWord).Name() != "foo" {
		t.Fatalf("bad set-word")
	}
	if scanKind(t, ":foo", KindGetWord).Name() != "foo" {
		t.Fatalf("bad get-word")
	}
	if scanKind(t, "'foo", KindLitWord).Name() != "foo" {
		t.Fatalf("bad lit-word")
	}
	if scanKind(t, "/ref", KindRefinement).Name() != "ref" {
		t.Fatalf("bad refinement")
	}
}

func TestScanOperatorWords(t *testing.T) {
	for _, op := range []string{"+", "-", "*", "=", "<=", ">=", "<>", "<", ">"} {
		if scanKind(t, op, KindWord).Name() != op {
			t.Fatalf("operator %q should scan as a word", op)
		}
	}
	if scanKind(t, "/", KindWord).Name() != "/" {
		t.Fatalf("bare slash should scan as a word")
	}
}

func TestScanTagVersusComparison(t *testing.T) {
	v := scanKind(t, "<local>", KindTag)
	if v.Text() != "local" {
		t.Fatalf("bad tag payload: %q", v.Text())
	}
	vals, err := scanSource("1 <= 2")
	if err != nil {
		t.Fatalf("scan failed: %v", err)
	}
	if len(vals) != 3 || vals[1].Kind() != KindWord || vals[1].Name() != "<=" {
		t.Fatalf("1 <= 2 should scan as three values with <= a word")
	}
}

func TestScanStructural(t *testing.T) {
	scanKind(t, "_", KindBlank)
	scanKind(t, "|", KindBar)
	wantMold(t, scanKind(t, "[1 [2 3] (4)]", KindBlock), "[1 [2 3] (4)]")
	wantMold(t, scanKind(t, "(a b)", KindGroup), "(a b)")
}

func TestScanPaths(t *testing.T) {
	wantMold(t, scanKind(t, "a/b/c", KindPath), "a/b/c")
	wantMold(t, scanKind(t, "blk/2", KindPath), "blk/2")
	wantMold(t, scanKind(t, "blk/(i)", KindPath), "blk/(i)")
	wantMold(t, scanKind(t, "o/a:", KindSetPath), "o/a:")
}

func TestScanString(t *testing.T) {
	v := scanKind(t, `"hello world"`, KindText)
	if v.Text() != "hello world" {
		t.Fatalf("bad string: %q", v.Text())
	}
	v = scanKind(t, `"a^/b^-c^"d^^"`, KindText)
	if v.Text() != "a\nb\tc\"d^" {
		t.Fatalf("bad escapes: %q", v.Text())
	}
}

func TestScanComments(t *testing.T) {
	vals, err := scanSource("1 ; rest of line\n2")
	if err != nil {
		t.Fatalf("scan failed: %v", err)
	}
	if len(vals) != 2 {
		t.Fatalf("expected two values, got %d", len(vals))
	}
}

func TestScanErrors(t *testing.T) {
	cases := []struct {
		src  string
		want string
	}{
		{`"open`, "unterminated string"},
		{"<open", "unterminated tag"},
		{"[1 2", "unexpected end of input"},
		{"1 2]", "unexpected"},
		{`"bad ^x"`, "unknown string escape"},
	}
	for _, tc := range cases {
		_, err := scanSource(tc.src)
		if err == nil {
			t.Fatalf("scan %q: expected an error", tc.src)
		}
		if !strings.Contains(err.Error(), tc.want) {
			t.Fatalf("scan %q: error %v does not mention %q", tc.src, err, tc.want)
		}
	}
}

func TestScanMoldRoundTrip(t *testing.T) {
	sources := []string{
		"[x: 10 if x > 5 [print \"big\"]]",
		"[f/b/c 1 2 3]",
		"[a: 'word :getter /ref <tag> _ |]",
	}
	for _, src := range sources {
		v := scanOne(t, src)
		again := scanOne(t, v.Mold())
		if !v.Equal(again) {
			t.Fatalf("mold round trip changed %s into %s", v.Mold(), again.Mold())
		}
	}
}
