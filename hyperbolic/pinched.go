// Package hyperbolic decides hyperbolicity of one-relator groups by a
// cascade of sufficient criteria.
package hyperbolic

import (
	"github.com/cashenchris/onerelatorgroups/freegroup"
)

// IsCyclicallyPinched reports whether some cyclic rotation of the relator
// splits as u·v with u and v over disjoint generator sub-alphabets, which
// witnesses an amalgam or HNN splitting of the group.  On success it
// returns the degrees (maximal-root exponents) of the two pieces; the
// first disjoint split found wins, since any split suffices.
//
// The relator should be cyclically reduced.
func IsCyclicallyPinched(relator freegroup.Word) (degPrefix, degSuffix int, pinched bool) {
	n := len(relator)
	if n == 0 {
		return 0, 0, false
	}
	rr := append(append(freegroup.Word{}, relator...), relator...)

	for start := 0; start < n; start++ {
		for L := 1; L < n; L++ {
			prefix := rr[start : start+L]
			suffix := rr[start+L : start+n]
			if !disjointAlphabets(prefix, suffix) {
				continue
			}
			return prefix.Degree(), suffix.Degree(), true
		}
	}
	return 0, 0, false
}

func disjointAlphabets(u, v freegroup.Word) bool {
	seen := map[int]bool{}
	for _, x := range u {
		if x < 0 {
			x = -x
		}
		seen[x] = true
	}
	for _, x := range v {
		if x < 0 {
			x = -x
		}
		if seen[x] {
			return false
		}
	}
	return true
}
