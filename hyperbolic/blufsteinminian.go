package hyperbolic

import (
	"math/big"

	"github.com/cashenchris/onerelatorgroups/freegroup"
	"github.com/cashenchris/onerelatorgroups/onerel"
	"github.com/cashenchris/onerelatorgroups/smallcancellation"
	"github.com/cashenchris/onerelatorgroups/whitehead"
)

// BlufsteinMinian reports whether the one-relator group satisfies the
// Blufstein-Minian hyperbolicity condition: the presentation is C'(1/4)
// and satisfies their T' condition.  Pass a precomputed C' bound to avoid
// recomputing it, or nil to compute it here.
func BlufsteinMinian(relator freegroup.Word, cprime *big.Rat) (bool, error) {
	if cprime == nil {
		cprime = smallcancellation.CprimeBound(relator)
	}
	if cprime == nil || cprime.Cmp(big.NewRat(1, 4)) >= 0 {
		return false, nil
	}
	return BlufsteinMinianTprime(relator)
}

// A turn is a literal two-letter occurrence in the doubled relator (dir +1)
// or doubled inverse relator (dir -1), realizing one edge of a Whitehead
// graph 3-cycle.
type turn struct {
	pos int
	dir int
}

// BlufsteinMinianTprime reports whether the relator satisfies the
// Blufstein-Minian T' condition: every interior tripod is strictly shorter
// than half the relator.
//
// For each 3-cycle (i,j,k) of the reduced Whitehead graph, every
// combination of turns realizing the three edges is a candidate interior
// tripod whose length is the sum of the three pairwise overlaps between
// consecutive legs.  An infinite overlap means the two occurrences abut
// with no interior, so that combination is excluded rather than compared.
func BlufsteinMinianTprime(relator freegroup.Word) (bool, error) {
	if !relator.IsCyclicallyReduced() {
		return false, onerel.ErrNotCyclicallyReduced
	}
	n := len(relator)
	rr := append(append(freegroup.Word{}, relator...), relator...)
	inv := relator.Inverse()
	ii := append(append(freegroup.Word{}, inv...), inv...)

	g := whitehead.NewGraph(relator.Rank(), relator)
	for _, tri := range g.ThreeCycles() {
		i, j, k := tri[0], tri[1], tri[2]
		first := findTurns(rr, ii, n, -j, i)
		second := findTurns(rr, ii, n, -k, j)
		third := findTurns(rr, ii, n, -i, k)
		for _, f := range first {
			for _, s := range second {
				for _, t := range third {
					fs, ok1 := overlap(rr, ii, n, f, s)
					st, ok2 := overlap(rr, ii, n, s, t)
					tf, ok3 := overlap(rr, ii, n, t, f)
					if ok1 && ok2 && ok3 && 2*(fs+st+tf) >= n {
						return false, nil
					}
				}
			}
		}
	}
	return true, nil
}

// findTurns lists the positions where the two-letter word (x, y) occurs in
// the doubled relator or the doubled inverse relator.
func findTurns(rr, ii freegroup.Word, n, x, y int) []turn {
	var turns []turn
	for h := 0; h < n; h++ {
		if rr[h] == x && rr[h+1] == y {
			turns = append(turns, turn{h, 1})
		}
	}
	for h := 0; h < n; h++ {
		if ii[h] == x && ii[h+1] == y {
			turns = append(turns, turn{h, -1})
		}
	}
	return turns
}

// overlap returns the length of the maximal common piece between the legs
// leaving turns a and b, as the longest common prefix of two cyclic
// suffixes selected by the orientation pair.  finite=false marks the two
// occurrences as abutting with zero gap, which excludes the tripod.
func overlap(rr, ii freegroup.Word, n int, a, b turn) (length int, finite bool) {
	switch {
	case a.dir == 1 && b.dir == 1:
		return commonPrefix(ii[n-a.pos-1:], rr[b.pos+1:]), true
	case a.dir == -1 && b.dir == 1:
		if n-a.pos == b.pos {
			return 0, false
		}
		return commonPrefix(rr[n-a.pos-1:], rr[b.pos+1:]), true
	case a.dir == 1 && b.dir == -1:
		if n-a.pos == b.pos {
			return 0, false
		}
		return commonPrefix(ii[n-a.pos-1:], ii[b.pos+1:]), true
	default:
		return commonPrefix(rr[n-a.pos-1:], ii[b.pos+1:]), true
	}
}

func commonPrefix(u, v freegroup.Word) int {
	n := len(u)
	if len(v) < n {
		n = len(v)
	}
	for i := 0; i < n; i++ {
		if u[i] != v[i] {
			return i
		}
	}
	return n
}
