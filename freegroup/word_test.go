package freegroup

import (
	"testing"
)

func TestParse(t *testing.T) {
	cases := []struct {
		expr string
		want Word
	}{
		{"", Word{}},
		{"abAB", Word{1, 2, -1, -2}},
		{"[1,2,-1,-2]", Word{1, 2, -1, -2}},
		{"aA", Word{}},
		{"abBA", Word{}},
		{"a^3", Word{1, 1, 1}},
		{"a^-2", Word{-1, -1}},
		{"(ab)^2", Word{1, 2, 1, 2}},
		{"(ab)^-1", Word{-2, -1}},
		{"ab*cd", Word{1, 2, 3, 4}},
		{"aba^-1*[2,-1]", Word{1, 2, -1, 2, -1}},
		{"  abc  ", Word{1, 2, 3}},
		{"[-3,-2,-1]", Word{-3, -2, -1}},
	}
	for _, c := range cases {
		got, err := Parse(c.expr)
		if err != nil {
			t.Fatalf("Parse(%q): %v", c.expr, err)
		}
		if !got.Equal(c.want) {
			t.Fatalf("Parse(%q) = %v, want %v", c.expr, got, c.want)
		}
	}
}

func TestParseRejects(t *testing.T) {
	for _, expr := range []string{"ab1", "[1,0]", "a^", "(ab", "a**b"} {
		if _, err := Parse(expr); err == nil {
			t.Fatalf("Parse(%q) unexpectedly succeeded", expr)
		}
	}
}

func TestStringRoundTrip(t *testing.T) {
	for _, expr := range []string{"abAB", "aabbbAB", "xyzXYZ"} {
		w := MustParse(expr)
		if w.String() != expr {
			t.Fatalf("String() = %q, want %q", w.String(), expr)
		}
	}
}

func TestCyclicReduce(t *testing.T) {
	w := MustParse("Baba")
	cr := w.CyclicReduce()
	if !cr.Equal(MustParse("ab")) {
		t.Fatalf("CyclicReduce = %v", cr)
	}
	if !w.Equal(MustParse("Baba")) {
		t.Fatal("CyclicReduce modified its receiver")
	}
	if got := MustParse("ab").CyclicReduce(); !got.Equal(MustParse("ab")) {
		t.Fatalf("CyclicReduce of reduced word = %v", got)
	}
}

func TestMaxRoot(t *testing.T) {
	cases := []struct {
		expr     string
		wantRoot string
		wantN    int
	}{
		{"", "", 0},
		{"a", "a", 1},
		{"aaa", "a", 3},
		{"abab", "ab", 2},
		{"ababa", "ababa", 1},
		{"b(ab)^3B", "ba", 3}, // conjugating prefix cancels under free reduction
		{"c*(ab)^2*C", "cabC", 2},
	}
	for _, c := range cases {
		root, n := MustParse(c.expr).MaxRoot()
		if !root.Equal(MustParse(c.wantRoot)) || n != c.wantN {
			t.Fatalf("MaxRoot(%q) = (%v, %d), want (%q, %d)", c.expr, root, n, c.wantRoot, c.wantN)
		}
	}
}

func TestDegree(t *testing.T) {
	if d := MustParse("abab").Degree(); d != 2 {
		t.Fatalf("Degree(abab) = %d", d)
	}
	if d := MustParse("abAB").Degree(); d != 1 {
		t.Fatalf("Degree(abAB) = %d", d)
	}
	if d := (Word{}).Degree(); d != 0 {
		t.Fatalf("Degree(empty) = %d", d)
	}
}

func TestIsConjugateInto(t *testing.T) {
	cases := []struct {
		u, v string
		want bool
	}{
		{"", "ab", true},
		{"abab", "Bab", false},
		{"B*abab*b", "ab", true}, // conjugate of (ab)^2
		{"BABA", "ab", true},     // negative power
		{"aba", "ab", false},     // length not a multiple
		{"bcbc", "bc", true},
		{"abab", "ba", true}, // rotation of (ab)^2
		{"ab", "abab", false},
	}
	for _, c := range cases {
		if got := IsConjugateInto(MustParse(c.u), MustParse(c.v)); got != c.want {
			t.Fatalf("IsConjugateInto(%q, %q) = %v, want %v", c.u, c.v, got, c.want)
		}
	}
}

func TestGAPString(t *testing.T) {
	if s := MustParse("abAB").GAPString("f"); s != "f.1*f.2*f.1^-1*f.2^-1" {
		t.Fatalf("GAPString = %q", s)
	}
	if s := MustParse("aab").GAPString("f"); s != "f.1^2*f.2" {
		t.Fatalf("GAPString = %q", s)
	}
	if s := (Word{}).GAPString("f"); s != "One(f)" {
		t.Fatalf("GAPString(empty) = %q", s)
	}
}

func TestCanonicalRotation(t *testing.T) {
	a := MustParse("abab").CanonicalRotation()
	b := MustParse("B*abab*b").CanonicalRotation() // conjugate
	c := MustParse("ABAB").CanonicalRotation()     // inverse
	if !a.Equal(b) || !a.Equal(c) {
		t.Fatalf("CanonicalRotation mismatch: %v %v %v", a, b, c)
	}
}

func TestEnumerateWords(t *testing.T) {
	words := EnumerateWords(2, 1, 2)
	// 2r words of length 1, 2r*(2r-1) of length 2.
	want := 4 + 4*3
	if len(words) != want {
		t.Fatalf("got %d words, want %d", len(words), want)
	}
	seen := map[string]bool{}
	for _, w := range words {
		if len(w) < 1 || len(w) > 2 {
			t.Fatalf("word %v out of range", w)
		}
		key := w.String()
		if seen[key] {
			t.Fatalf("duplicate word %q", key)
		}
		seen[key] = true
	}
}

func TestExpSum(t *testing.T) {
	w := MustParse("a*b*a*B*a*b^3")
	if got := w.ExpSum(1); got != 3 {
		t.Fatalf("ExpSum(1) = %d, want 3", got)
	}
	if got := w.ExpSum(2); got != 3 {
		t.Fatalf("ExpSum(2) = %d, want 3", got)
	}
	if got := MustParse("abAB").ExpSum(1); got != 0 {
		t.Fatalf("commutator ExpSum(1) = %d, want 0", got)
	}
}
