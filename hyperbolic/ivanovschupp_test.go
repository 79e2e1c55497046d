package hyperbolic

import (
	"testing"

	"github.com/cashenchris/onerelatorgroups/freegroup"
	"github.com/cashenchris/onerelatorgroups/onerel"
)

var ivanovSchuppCases = []struct {
	relator string
	want    onerel.Answer
	tag     string
}{
	{"", onerel.Yes, "free"},
	{"a", onerel.Yes, "free"},
	{"aa", onerel.Yes, "torsion"},
	{"abaCBC", onerel.No, "Thm3(1)"},
	{"ababcbc", onerel.Yes, "Thm3(1)"},
	{"abbAbcBC", onerel.Yes, "Thm3(2)"},
	{"bcBCCBAcbCBcbCBabc", onerel.No, "Thm3(2a)"},
	{"acaacacaacacaacbAAB", onerel.No, "Thm3(2b)"},
	{"ababbacb", onerel.Yes, "Thm3(3)"},
	{"ababaccBCbccBCbb", onerel.No, "Thm3(3a)"},
	{"abaBcbCCBcbCCbaccBCbccBCbb", onerel.No, "Thm3(3b)"},
	{"abaccBCbbaBcbCCb", onerel.No, "Thm3(3c)"},
	{"abaBcbCCbaBcbCCBcbCCb", onerel.No, "Thm3(3d)"},
	{"ababbcBCbcBCbcBCBAcbCB", onerel.Yes, "Thm3(4)"},
	{"ababbcBCBAcbCB", onerel.No, "Thm3(4a)"},
	{"ababbcBCbcBCBAcbCB", onerel.No, "Thm3(4b)"},
	{"ababcabccabcbcbcbcabcbcbcbcbc", onerel.Yes, "Thm4"},
	{"abacabcabCbc", onerel.No, "Thm4(3)"},
	{"ababcBCababccc", onerel.Maybe, ""},
	{"aaaaabbbbbccccc", onerel.Maybe, ""},
}

func TestIvanovSchupp(t *testing.T) {
	for _, c := range ivanovSchuppCases {
		ans, tag, err := IvanovSchupp(freegroup.MustParse(c.relator))
		if err != nil {
			t.Fatalf("IvanovSchupp(%q): %v", c.relator, err)
		}
		if ans != c.want || tag != c.tag {
			t.Fatalf("IvanovSchupp(%q) = (%v, %q), want (%v, %q)", c.relator, ans, tag, c.want, c.tag)
		}
	}
}

func TestIvanovSchuppRejectsUnreduced(t *testing.T) {
	if _, _, err := IvanovSchupp(freegroup.MustParse("B*ab*b")); err == nil {
		t.Fatal("expected error for non-cyclically-reduced relator")
	}
}

// The Boolean answer is a conjugacy invariant, so rotating the relator
// must not change it (the tag may).
func TestIvanovSchuppRotationInvariant(t *testing.T) {
	for _, c := range ivanovSchuppCases {
		r := freegroup.MustParse(c.relator)
		for i := 0; i < len(r); i += 3 {
			ans, _, err := IvanovSchupp(r.Rotate(i))
			if err != nil {
				t.Fatalf("IvanovSchupp(%q rotated by %d): %v", c.relator, i, err)
			}
			if ans != c.want {
				t.Fatalf("IvanovSchupp(%q rotated by %d) = %v, want %v", c.relator, i, ans, c.want)
			}
		}
	}
}
