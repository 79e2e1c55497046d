package hyperbolic

import (
	"math/big"
	"testing"

	"github.com/cashenchris/onerelatorgroups/freegroup"
)

func TestBlufsteinMinianTprime(t *testing.T) {
	cases := []struct {
		relator string
		want    bool
	}{
		{"aaaababaBAbbbAb", true},
		{"DCabFEcdBAef", false},
	}
	for _, c := range cases {
		got, err := BlufsteinMinianTprime(freegroup.MustParse(c.relator))
		if err != nil {
			t.Fatalf("BlufsteinMinianTprime(%q): %v", c.relator, err)
		}
		if got != c.want {
			t.Fatalf("BlufsteinMinianTprime(%q) = %v, want %v", c.relator, got, c.want)
		}
	}
}

func TestBlufsteinMinianTprimeRejectsUnreduced(t *testing.T) {
	if _, err := BlufsteinMinianTprime(freegroup.MustParse("B*ab*b")); err == nil {
		t.Fatal("expected error for non-cyclically-reduced relator")
	}
}

func TestBlufsteinMinianBound(t *testing.T) {
	// The C'(1/4) gate short-circuits before the T' computation.
	ok, err := BlufsteinMinian(freegroup.MustParse("aaaababaBAbbbAb"), big.NewRat(1, 4))
	if err != nil {
		t.Fatal(err)
	}
	if ok {
		t.Fatal("bound 1/4 must fail the strict C'(1/4) gate")
	}

	ok, err = BlufsteinMinian(freegroup.MustParse("aaaababaBAbbbAb"), nil)
	if err != nil {
		t.Fatal(err)
	}
	if !ok {
		t.Fatal("reference relator satisfies the Blufstein-Minian condition")
	}
}
