package smallcancellation

import (
	"math/big"
	"testing"

	"github.com/cashenchris/onerelatorgroups/freegroup"
)

func TestCprimeBound(t *testing.T) {
	cases := []struct {
		expr string
		want *big.Rat
	}{
		{"abABcdCD", big.NewRat(1, 8)}, // genus-2 surface relator
		{"abAB", big.NewRat(1, 4)},     // genus-1: every letter pair is distinct
		{"abab", big.NewRat(1, 1)},     // proper power: whole relator is a piece
	}
	for _, c := range cases {
		got := CprimeBound(freegroup.MustParse(c.expr))
		if got == nil || got.Cmp(c.want) != 0 {
			t.Fatalf("CprimeBound(%q) = %v, want %v", c.expr, got, c.want)
		}
	}
	if CprimeBound(freegroup.Word{}) != nil {
		t.Fatal("CprimeBound of empty relator should be nil")
	}
}

func TestSixth(t *testing.T) {
	if !Sixth(big.NewRat(1, 8)) {
		t.Fatal("1/8 satisfies C'(1/6)")
	}
	if Sixth(big.NewRat(1, 6)) {
		t.Fatal("the bound must be strict")
	}
	if Sixth(nil) {
		t.Fatal("nil bound certifies nothing")
	}
}

func TestIsMetricHyperbolic(t *testing.T) {
	if !IsMetricHyperbolic(freegroup.MustParse("abABcdCD")) {
		t.Fatal("genus-2 surface relator is C'(1/6)")
	}
	if IsMetricHyperbolic(freegroup.MustParse("abAB")) {
		t.Fatal("genus-1 relator is only C'(1/4)")
	}
}
