package sapirspakulova

import (
	"math/big"
	"testing"

	"github.com/pkg/errors"

	"github.com/cashenchris/onerelatorgroups/freegroup"
	"github.com/cashenchris/onerelatorgroups/onerel"
)

func TestCondition(t *testing.T) {
	cases := []struct {
		relator string
		want    onerel.Answer
	}{
		{"[1,2,-1,-2,-2]", onerel.Yes}, // BS(1,2)
		{"[1,2,2,-1,-2,-2,-2]", onerel.No},
		{"aab", onerel.Yes},
		{"aabb", onerel.Yes},
		{"a*b*a*B", onerel.Yes},
		{"a", onerel.Yes},
	}
	for _, tc := range cases {
		got, err := Condition(freegroup.MustParse(tc.relator))
		if err != nil {
			t.Fatalf("Condition(%s): %v", tc.relator, err)
		}
		if got != tc.want {
			t.Fatalf("Condition(%s) = %v, want %v", tc.relator, got, tc.want)
		}
	}
}

func TestConditionCommutatorRelator(t *testing.T) {
	for _, expr := range []string{"abAB", ""} {
		_, err := Condition(freegroup.MustParse(expr))
		if !errors.Is(err, onerel.ErrCommutatorRelator) {
			t.Fatalf("Condition(%q) err = %v, want ErrCommutatorRelator", expr, err)
		}
	}
}

func TestConditionRejectsUnreduced(t *testing.T) {
	_, err := Condition(freegroup.MustParse("B*ab*b"))
	if !errors.Is(err, onerel.ErrNotCyclicallyReduced) {
		t.Fatalf("err = %v, want ErrNotCyclicallyReduced", err)
	}
}

func rv(xs ...int64) ratVec {
	v := make(ratVec, len(xs))
	for i, x := range xs {
		v[i] = new(big.Rat).SetInt64(x)
	}
	return v
}

func TestOriginInHull(t *testing.T) {
	cases := []struct {
		pts  []ratVec
		want bool
	}{
		{[]ratVec{rv(-1), rv(1)}, true},
		{[]ratVec{rv(1), rv(2)}, false},
		{[]ratVec{rv(1, 0), rv(0, 1), rv(-1, -1)}, true},
		{[]ratVec{rv(1, 0), rv(0, 1)}, false},
		{[]ratVec{rv(0, 0)}, true},
		{nil, false},
	}
	for i, tc := range cases {
		if got := originInHull(tc.pts); got != tc.want {
			t.Fatalf("case %d: originInHull = %v, want %v", i, got, tc.want)
		}
	}
}

func TestSimpleEdges(t *testing.T) {
	a := latticePoint{0, 0}
	b := latticePoint{1, 0}
	c := latticePoint{1, 1}
	// Edges a-b, b-a (duplicate up to direction), b-c.
	simple := simpleEdges([]latticePoint{a, b, b, a, b, c})
	if len(simple) != 1 || !simple[0][0].equal(b) || !simple[0][1].equal(c) {
		t.Fatalf("simpleEdges = %v, want the single edge b-c", simple)
	}
}
