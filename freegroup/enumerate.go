package freegroup

// EnumerateWords returns all freely reduced words over the first rank
// generators with length in [minLen, maxLen], in depth-first order.
//
// The count grows as (2*rank)*(2*rank-1)^(n-1) per length n, so keep
// maxLen small.
func EnumerateWords(rank, minLen, maxLen int) []Word {
	if rank < 1 || maxLen < minLen || maxLen < 0 {
		return nil
	}
	if minLen < 0 {
		minLen = 0
	}

	var out []Word
	if minLen == 0 {
		out = append(out, Word{})
	}

	stack := make(Word, 0, maxLen)
	var extend func()
	extend = func() {
		if len(stack) == maxLen {
			return
		}
		for x := -rank; x <= rank; x++ {
			if x == 0 {
				continue
			}
			if n := len(stack); n > 0 && stack[n-1] == -x {
				continue
			}
			stack = append(stack, x)
			if len(stack) >= minLen {
				w := make(Word, len(stack))
				copy(w, stack)
				out = append(out, w)
			}
			extend()
			stack = stack[:len(stack)-1]
		}
	}
	extend()
	return out
}
