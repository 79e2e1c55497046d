// Package smallcancellation computes metric small cancellation bounds for
// symmetrized one-relator presentations.
package smallcancellation

import (
	"math/big"

	"github.com/cashenchris/onerelatorgroups/freegroup"
)

// A piece is a common prefix of two distinct occurrences in the symmetrized
// closure of the relator set: every cyclic rotation of every relator and of
// every inverse relator, indexed by position.  Rotations at distinct
// positions count as distinct occurrences even when equal as words, so for
// a proper power every subword is a piece.

// MaxPieceLength returns the length of the longest piece of the
// symmetrized closure of the given cyclically reduced relators.
func MaxPieceLength(relators ...freegroup.Word) int {
	var rots []freegroup.Word
	for _, r := range relators {
		for i := 0; i < len(r); i++ {
			rots = append(rots, r.Rotate(i))
		}
		inv := r.Inverse()
		for i := 0; i < len(inv); i++ {
			rots = append(rots, inv.Rotate(i))
		}
	}

	max := 0
	for i := 0; i < len(rots); i++ {
		for j := i + 1; j < len(rots); j++ {
			if lcp := commonPrefix(rots[i], rots[j]); lcp > max {
				max = lcp
			}
		}
	}
	return max
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

// CprimeBound returns the least λ such that the presentation satisfies
// C'(μ) for all μ > λ: the max piece length over the min relator length,
// as an exact rational.  Returns nil if no relator is nonempty.
func CprimeBound(relators ...freegroup.Word) *big.Rat {
	minLen := 0
	for _, r := range relators {
		if len(r) > 0 && (minLen == 0 || len(r) < minLen) {
			minLen = len(r)
		}
	}
	if minLen == 0 {
		return nil
	}
	return big.NewRat(int64(MaxPieceLength(relators...)), int64(minLen))
}

// Sixth reports whether the given C' bound certifies C'(1/6), which
// implies hyperbolicity.
func Sixth(bound *big.Rat) bool {
	return bound != nil && bound.Cmp(big.NewRat(1, 6)) < 0
}

// IsMetricHyperbolic reports whether the presentation with the given
// cyclically reduced relators is C'(1/6).
func IsMetricHyperbolic(relators ...freegroup.Word) bool {
	return Sixth(CprimeBound(relators...))
}
