package hyperbolic

import (
	"github.com/emirpasic/gods/trees/redblacktree"

	"github.com/cashenchris/onerelatorgroups/freegroup"
	"github.com/cashenchris/onerelatorgroups/onerel"
)

// Ivanov-Schupp case tags.
const (
	TagThm3_1  = "Thm3(1)"
	TagThm3_2  = "Thm3(2)"
	TagThm3_2a = "Thm3(2a)"
	TagThm3_2b = "Thm3(2b)"
	TagThm3_3  = "Thm3(3)"
	TagThm3_3a = "Thm3(3a)"
	TagThm3_3b = "Thm3(3b)"
	TagThm3_3c = "Thm3(3c)"
	TagThm3_3d = "Thm3(3d)"
	TagThm3_4  = "Thm3(4)"
	TagThm3_4a = "Thm3(4a)"
	TagThm3_4b = "Thm3(4b)"
	TagThm4    = "Thm4"
	TagThm4_3  = "Thm4(3)"
)

// IvanovSchupp checks hyperbolicity of the one-relator group defined by the
// given cyclically reduced relator against the criteria of Ivanov and
// Schupp.  The returned tag names the deciding theorem case; a Maybe answer
// carries no tag and means the criteria are silent.
//
// For each generator a in ascending order the classifier inspects how often
// a or a^-1 occurs in the relator.  Counts 1..3 always decide (Theorem 3);
// counts of 4 or more decide only when all occurrences share one sign and
// the words between consecutive occurrences are pairwise distinct
// (Theorem 4), and otherwise fall through to the next generator.
func IvanovSchupp(relator freegroup.Word) (onerel.Answer, string, error) {
	if len(relator) == 0 {
		return onerel.Yes, onerel.ReasonFree, nil
	}
	if !relator.IsCyclicallyReduced() {
		return onerel.Maybe, "", onerel.ErrNotCyclicallyReduced
	}
	if relator.Degree() > 1 { // one-relator groups with torsion are hyperbolic
		return onerel.Yes, onerel.ReasonTorsion, nil
	}

	for a := 1; a <= relator.Rank(); a++ {
		acount := relator.Count(a) + relator.Count(-a)
		switch {
		case acount == 0:
			continue
		case acount == 1: // relator is primitive
			return onerel.Yes, onerel.ReasonFree, nil
		case acount == 2:
			ans, tag := classifyTwoOccurrences(relator, a)
			return ans, tag, nil
		case acount == 3:
			ans, tag := classifyThreeOccurrences(relator, a)
			return ans, tag, nil
		default:
			if ans, tag, applies := classifyThm4(relator, a); applies {
				return ans, tag, nil
			}
		}
	}
	return onerel.Maybe, "", nil
}

// classifyTwoOccurrences handles a generator occurring exactly twice
// (Theorem 3, cases 1 and 2).
func classifyTwoOccurrences(relator freegroup.Word, a int) (onerel.Answer, string) {
	therel := relator
	if therel.Count(a) == 0 {
		therel = relator.Inverse()
	}
	therel = therel.Rotate(therel.IndexOf(a))
	rest := therel[1:]

	if rest.Count(a) > 0 { // second occurrence is a: R = a B a C
		nexta := 1 + rest.IndexOf(a)
		B := therel[1:nexta]
		C := therel[nexta+1:]
		if freegroup.Mul(B, C.Inverse()).Degree() > 1 {
			return onerel.No, TagThm3_1
		}
		return onerel.Yes, TagThm3_1
	}

	// Second occurrence is a^-1: R = a B a^-1 C.
	nexta := 1 + rest.IndexOf(-a)
	B := therel[1:nexta]
	C := therel[nexta+1:]
	if B.Degree() > 1 && C.Degree() > 1 {
		return onerel.No, TagThm3_2b
	}
	// At most one of B, C is a proper power here, which reduces the full
	// case (2a) test to a pair of conjugacy-into checks.
	if freegroup.IsConjugateInto(B, C) || freegroup.IsConjugateInto(C, B) {
		return onerel.No, TagThm3_2a
	}
	return onerel.Yes, TagThm3_2
}

// classifyThreeOccurrences handles a generator occurring three times
// (Theorem 3, cases 3 and 4).
func classifyThreeOccurrences(relator freegroup.Word, a int) (onerel.Answer, string) {
	therel := relator
	if therel.Count(-a) > therel.Count(a) {
		therel = relator.Inverse()
	}

	if therel.Count(-a) > 0 {
		// Case 4: R contains a twice and a^-1 once.  Rotate so the word
		// starts at an a with the a^-1 outside the two a-occurrences.
		firsta := therel.IndexOf(a)
		seconda := 1 + firsta + therel[1+firsta:].IndexOf(a)
		nega := therel.IndexOf(-a)
		if nega > seconda || nega < firsta {
			therel = therel.Rotate(firsta)
		} else {
			therel = therel.Rotate(seconda)
		}
		firsta = therel.IndexOf(a)
		seconda = 1 + firsta + therel[1+firsta:].IndexOf(a)
		nega = therel.IndexOf(-a)

		B := therel[1+firsta : seconda]
		C := therel[1+seconda : nega]
		D := therel[1+nega:]
		Z1, n1 := freegroup.Mul(B.Inverse(), C, B).MaxRoot()
		Z2, n2 := D.MaxRoot()
		if Z2.Equal(Z1.Inverse()) {
			Z2 = Z1
			n2 = -n2
		}
		if Z1.Equal(Z2) || len(Z1) == 0 || len(Z2) == 0 {
			switch {
			case abs(n1) == abs(n2):
				return onerel.No, TagThm3_4a
			case n1 == -2*n2 || n2 == -2*n1:
				return onerel.No, TagThm3_4b
			}
		}
		return onerel.Yes, TagThm3_4
	}

	// Case 3: R = a B a C a D with no a^-1.
	therel = therel.Rotate(therel.IndexOf(a))
	seconda := 1 + therel[1:].IndexOf(a)
	thirda := 1 + seconda + therel[1+seconda:].IndexOf(a)
	B := therel[1:seconda]
	C := therel[1+seconda : thirda]
	D := therel[1+thirda:]
	Z1, n1 := freegroup.Mul(C, B.Inverse()).MaxRoot()
	Z2, n2 := freegroup.Mul(D, B.Inverse()).MaxRoot()
	if Z2.Equal(Z1.Inverse()) {
		Z2 = Z1
		n2 = -n2
	}
	if Z1.Equal(Z2) || len(Z1) == 0 || len(Z2) == 0 {
		switch {
		case (n1 == 0 && abs(n2) > 1) || (n2 == 0 && abs(n1) > 1):
			return onerel.No, TagThm3_3a
		case abs(n1) == abs(n2) && abs(n1) > 1:
			return onerel.No, TagThm3_3b
		case n1 != 0 && n1 == -n2:
			return onerel.No, TagThm3_3c
		case n1 != 0 && (n1 == 2*n2 || n2 == 2*n1):
			return onerel.No, TagThm3_3d
		}
	}
	return onerel.Yes, TagThm3_3
}

// classifyThm4 handles a generator occurring four or more times.  Theorem 4
// requires all occurrences to have the same sign and the words between
// consecutive occurrences to be pairwise distinct; otherwise it is silent
// and the classifier moves on to the next generator.
func classifyThm4(relator freegroup.Word, a int) (ans onerel.Answer, tag string, applies bool) {
	therel := relator
	if therel.Count(a) == 0 {
		therel = relator.Inverse()
	}
	if therel.Count(a) == 0 || therel.Count(-a) > 0 {
		return onerel.Maybe, "", false
	}

	rot := therel.Rotate(therel.IndexOf(a))

	// Split into the pieces between consecutive a-occurrences.
	var T []freegroup.Word
	cur := freegroup.Word{}
	for i := 1; i < len(rot); i++ {
		if rot[i] == a {
			T = append(T, cur)
			cur = freegroup.Word{}
		} else {
			cur = append(cur, rot[i])
		}
	}
	T = append(T, cur)

	distinct := redblacktree.NewWith(wordComparator)
	for _, t := range T {
		distinct.Put(t, struct{}{})
	}
	if distinct.Size() != len(T) {
		return onerel.Maybe, "", false
	}

	if rot.Count(a) > 4 {
		return onerel.Yes, TagThm4, true
	}
	for i := 0; i < 4; i++ {
		alt := freegroup.Mul(T[i%4], T[(i+1)%4].Inverse(), T[(i+2)%4], T[(i+3)%4].Inverse())
		if len(alt) == 0 {
			return onerel.No, TagThm4_3, true
		}
	}
	return onerel.Yes, TagThm4, true
}

func wordComparator(a, b interface{}) int {
	wa := a.(freegroup.Word)
	wb := b.(freegroup.Word)
	for i, x := range wa {
		if i >= len(wb) {
			return 1
		}
		if x != wb[i] {
			return x - wb[i]
		}
	}
	if len(wa) < len(wb) {
		return -1
	}
	return 0
}

func abs(n int) int {
	if n < 0 {
		return -n
	}
	return n
}
