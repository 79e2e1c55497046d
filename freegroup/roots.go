package freegroup

// MaxRoot returns the maximal root z of w and the exponent n such that
// w == z^n.  For the empty word it returns (empty, 0).
//
// Writing w = u c u^-1 with c cyclically reduced, c is a power of a unique
// primitive word z0 of minimal period, and the maximal root is u z0 u^-1.
func (w Word) MaxRoot() (Word, int) {
	if len(w) == 0 {
		return Word{}, 0
	}
	u, c := w.conjDecompose()
	p := smallestPeriod(c)
	n := len(c) / p
	root := Mul(u, c[:p:p], u.Inverse())
	return root, n
}

// Degree returns the exponent of w over its maximal root, i.e. the n
// with w == z^n and z primitive.  Degree is 0 only for the empty word,
// and w represents torsion in the one-relator quotient iff Degree > 1.
func (w Word) Degree() int {
	_, n := w.MaxRoot()
	return n
}

// smallestPeriod returns the least p dividing len(c) such that c is a
// concatenation of len(c)/p copies of its length-p prefix.
func smallestPeriod(c Word) int {
	n := len(c)
	for p := 1; p <= n/2; p++ {
		if n%p != 0 {
			continue
		}
		periodic := true
		for i := p; i < n; i++ {
			if c[i] != c[i-p] {
				periodic = false
				break
			}
		}
		if periodic {
			return p
		}
	}
	return n
}

// IsConjugateInto reports whether u is conjugate to some power of v,
// i.e. whether u is conjugate into the cyclic subgroup generated by v.
func IsConjugateInto(u, v Word) bool {
	cu := u.CyclicReduce()
	cv := v.CyclicReduce()
	if len(cu) == 0 {
		return true
	}
	if len(cv) == 0 || len(cu)%len(cv) != 0 {
		return false
	}
	k := len(cu) / len(cv)

	// cv is cyclically reduced, so its powers are reduced concatenations.
	pow := make(Word, 0, len(cu))
	for i := 0; i < k; i++ {
		pow = append(pow, cv...)
	}
	return cu.IsRotationOf(pow) || cu.IsRotationOf(pow.Inverse())
}
