package automatic

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/cashenchris/onerelatorgroups/freegroup"
)

func TestDefaultGenerators(t *testing.T) {
	got := DefaultGenerators(2)
	want := []string{"B", "A", "a", "b"}
	if len(got) != len(want) {
		t.Fatalf("got %v", got)
	}
	for i := range want {
		if got[i] != want[i] {
			t.Fatalf("got %v, want %v", got, want)
		}
	}
}

func TestWriteRWSFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "rws")
	if err := WriteRWSFile(path, DefaultGenerators(2), []string{"abAB"}); err != nil {
		t.Fatal(err)
	}
	raw, err := os.ReadFile(path)
	if err != nil {
		t.Fatal(err)
	}
	content := string(raw)
	for _, want := range []string{
		`isRWS := true`,
		`ordering := "shortlex"`,
		`generatorOrder := [B,A,a,b]`,
		`inverses := [b,a,A,B]`,
		`[a*b*A*B,IdWord]`,
	} {
		if !strings.Contains(content, want) {
			t.Fatalf("rws file missing %q:\n%s", want, content)
		}
	}
}

func TestParseReducedWord(t *testing.T) {
	cases := []struct {
		out  string
		want string
	}{
		{"reduced word = a*b*A;\n", "abA"},
		{"reduced word = a^3*B;\n", "aaaB"},
		{"reduced word = IdWord;\n", ""},
	}
	for _, c := range cases {
		got, err := parseReducedWord(c.out)
		if err != nil {
			t.Fatalf("parseReducedWord(%q): %v", c.out, err)
		}
		if got != c.want {
			t.Fatalf("parseReducedWord(%q) = %q, want %q", c.out, got, c.want)
		}
	}
	if _, err := parseReducedWord("no terminator"); err == nil {
		t.Fatal("expected error for unterminated output")
	}
}

// primeStructure drops the files Girth checks for so no subprocess runs.
func primeStructure(t *testing.T, dir string, relator freegroup.Word) {
	t.Helper()
	base := "OneRelatorGroup-" + relator.String()
	for _, name := range []string{base, base + ".diff1"} {
		if err := os.WriteFile(filepath.Join(dir, name), []byte("stub"), 0644); err != nil {
			t.Fatal(err)
		}
	}
}

func TestGirthShortRelator(t *testing.T) {
	// |R| = 4 stops the search at length 2 before any reduction happens.
	r := freegroup.MustParse("abab")
	dir := t.TempDir()
	primeStructure(t, dir, r)

	girth, u, v, err := Girth(r, Opts{Dir: dir, Reduce: func(w string) (string, error) {
		return w, nil
	}})
	if err != nil {
		t.Fatal(err)
	}
	if girth != 4 || u != "abab" || v != "" {
		t.Fatalf("got (%d, %q, %q)", girth, u, v)
	}
}

func TestGirthEvenCycle(t *testing.T) {
	r := freegroup.MustParse("aabbab")
	dir := t.TempDir()
	primeStructure(t, dir, r)

	normalForms := map[string]string{"BA": "ab"}
	girth, u, v, err := Girth(r, Opts{Dir: dir, Reduce: func(w string) (string, error) {
		if nf, ok := normalForms[w]; ok {
			return nf, nil
		}
		return w, nil
	}})
	if err != nil {
		t.Fatal(err)
	}
	if girth != 4 || u != "BA" || v != "ab" {
		t.Fatalf("got (%d, %q, %q)", girth, u, v)
	}
}

func TestGirthOddCycle(t *testing.T) {
	r := freegroup.MustParse("aabbab")
	dir := t.TempDir()
	primeStructure(t, dir, r)

	normalForms := map[string]string{"aa": "a"}
	girth, u, v, err := Girth(r, Opts{Dir: dir, Reduce: func(w string) (string, error) {
		if nf, ok := normalForms[w]; ok {
			return nf, nil
		}
		return w, nil
	}})
	if err != nil {
		t.Fatal(err)
	}
	if girth != 3 || u != "aa" || v != "a" {
		t.Fatalf("got (%d, %q, %q)", girth, u, v)
	}
}

func TestGirthEmptyRelator(t *testing.T) {
	if _, _, _, err := Girth(freegroup.Word{}, Opts{}); err == nil {
		t.Fatal("expected error for empty relator")
	}
}
