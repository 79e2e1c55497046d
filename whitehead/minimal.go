package whitehead

import (
	"github.com/cashenchris/onerelatorgroups/freegroup"
)

// MinimalRepresentative returns a word of minimal length in the orbit of w
// under Aut(F) and conjugation, found by greedy descent over Whitehead
// automorphisms of the second type.
//
// By Whitehead's theorem the descent cannot get stuck above the minimum:
// whenever a shorter word exists in the orbit, some single automorphism
// already shortens the cyclic word.  Each descent step tries all
// 2*rank * 2^(2*rank-2) automorphisms, so this is only practical in
// small rank.
func MinimalRepresentative(w freegroup.Word) freegroup.Word {
	cur := w.CyclicReduce()
	rank := cur.Rank()
	if rank == 0 {
		return cur
	}

	for {
		shorter := false
		for a := -rank; a <= rank && !shorter; a++ {
			if a == 0 {
				continue
			}
			others := lettersExcluding(rank, a)
			for mask := 0; mask < 1<<len(others); mask++ {
				img := applyAut(cur, a, others, mask).CyclicReduce()
				if len(img) < len(cur) {
					cur = img
					shorter = true
					break
				}
			}
		}
		if !shorter {
			return cur
		}
	}
}

// lettersExcluding lists the letters ±1..±rank other than a and -a.
func lettersExcluding(rank, a int) []int {
	letters := make([]int, 0, 2*rank-2)
	for x := -rank; x <= rank; x++ {
		if x == 0 || x == a || x == -a {
			continue
		}
		letters = append(letters, x)
	}
	return letters
}

// applyAut applies the Whitehead automorphism determined by multiplier a
// and the letter subset A = {others[i] : mask bit i set} ∪ {a}:
// a maps to itself, and any other letter x maps to
// [a if -x ∈ A] x [a^-1 if x ∈ A].
func applyAut(w freegroup.Word, a int, others []int, mask int) freegroup.Word {
	inA := func(x int) bool {
		if x == a {
			return true
		}
		for i, o := range others {
			if o == x {
				return mask&(1<<i) != 0
			}
		}
		return false
	}

	img := make([]int, 0, 3*len(w))
	for _, x := range w {
		if x == a || x == -a {
			img = append(img, x)
			continue
		}
		if inA(-x) {
			img = append(img, a)
		}
		img = append(img, x)
		if inA(x) {
			img = append(img, -a)
		}
	}
	return freegroup.Reduce(img)
}
