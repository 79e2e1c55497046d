// Package freegroup implements words in a finite-rank free group.
//
// A Word is a freely reduced sequence of letters.  Letter k > 0 is the k-th
// generator and letter -k is its inverse, so the rank-2 commutator is
// Word{1, 2, -1, -2}.  Zero is never a letter.
package freegroup

import (
	"fmt"
	"strings"

	"github.com/cashenchris/onerelatorgroups/onerel"
)

// Word is a freely reduced word over a free basis.
//
// All constructors and operations in this package maintain free reduction,
// so adjacent letters k, -k never appear.
type Word []int

// Reduce freely reduces the given letter sequence.
//
// The input slice is not modified.
func Reduce(letters []int) Word {
	w := make(Word, 0, len(letters))
	for _, x := range letters {
		if n := len(w); n > 0 && w[n-1] == -x {
			w = w[:n-1]
		} else {
			w = append(w, x)
		}
	}
	return w
}

// FromLetters validates the given letter sequence and freely reduces it.
func FromLetters(letters []int) (Word, error) {
	for _, x := range letters {
		if x == 0 {
			return nil, onerel.ErrBadLetter
		}
	}
	return Reduce(letters), nil
}

func (w Word) Len() int {
	return len(w)
}

func (w Word) Equal(v Word) bool {
	if len(w) != len(v) {
		return false
	}
	for i, x := range w {
		if x != v[i] {
			return false
		}
	}
	return true
}

// Inverse returns the group inverse of w.
func (w Word) Inverse() Word {
	inv := make(Word, len(w))
	for i, x := range w {
		inv[len(w)-1-i] = -x
	}
	return inv
}

// Mul returns the freely reduced product of the given words.
func Mul(words ...Word) Word {
	total := 0
	for _, w := range words {
		total += len(w)
	}
	prod := make(Word, 0, total)
	for _, w := range words {
		for _, x := range w {
			if n := len(prod); n > 0 && prod[n-1] == -x {
				prod = prod[:n-1]
			} else {
				prod = append(prod, x)
			}
		}
	}
	return prod
}

// Pow returns w raised to the n-th power (n may be negative or zero).
func (w Word) Pow(n int) Word {
	base := w
	if n < 0 {
		base = w.Inverse()
		n = -n
	}
	pow := Word{}
	for i := 0; i < n; i++ {
		pow = Mul(pow, base)
	}
	return pow
}

// IsCyclicallyReduced reports whether the first and last letters of w are
// not inverse to each other.
func (w Word) IsCyclicallyReduced() bool {
	return len(w) == 0 || w[0] != -w[len(w)-1]
}

// CyclicReduce returns the cyclic reduction of w.
func (w Word) CyclicReduce() Word {
	i, j := 0, len(w)
	for i < j && w[i] == -w[j-1] {
		i++
		j--
	}
	cr := make(Word, j-i)
	copy(cr, w[i:j])
	return cr
}

// conjDecompose splits w as u c u^-1 with c cyclically reduced,
// returning u and c.
func (w Word) conjDecompose() (u, c Word) {
	i, j := 0, len(w)
	for i < j && w[i] == -w[j-1] {
		i++
		j--
	}
	return w[:i:i], w[i:j:j]
}

// Rotate returns the cyclic rotation of w starting at index i.
// w must be cyclically reduced.
func (w Word) Rotate(i int) Word {
	n := len(w)
	if n == 0 {
		return Word{}
	}
	i = ((i % n) + n) % n
	rot := make(Word, 0, n)
	rot = append(rot, w[i:]...)
	rot = append(rot, w[:i]...)
	return rot
}

// IsRotationOf reports whether w is a cyclic rotation of v.
func (w Word) IsRotationOf(v Word) bool {
	if len(w) != len(v) {
		return false
	}
	n := len(w)
	if n == 0 {
		return true
	}
outer:
	for i := 0; i < n; i++ {
		for j := 0; j < n; j++ {
			if v[(i+j)%n] != w[j] {
				continue outer
			}
		}
		return true
	}
	return false
}

// Rank returns the largest generator index appearing in w.
func (w Word) Rank() int {
	rank := 0
	for _, x := range w {
		if x < 0 {
			x = -x
		}
		if x > rank {
			rank = x
		}
	}
	return rank
}

// Count returns the number of occurrences of the given letter in w.
// Count(2) and Count(-2) count the generator and its inverse separately.
func (w Word) Count(letter int) int {
	count := 0
	for _, x := range w {
		if x == letter {
			count++
		}
	}
	return count
}

// IndexOf returns the index of the first occurrence of the given letter,
// or -1 if absent.
func (w Word) IndexOf(letter int) int {
	for i, x := range w {
		if x == letter {
			return i
		}
	}
	return -1
}

// ExpSum returns the exponent sum of generator g (g > 0) in w.
func (w Word) ExpSum(g int) int {
	sum := 0
	for _, x := range w {
		switch x {
		case g:
			sum++
		case -g:
			sum--
		}
	}
	return sum
}

// Generators returns the alphabetic names of the first rank generators.
func Generators(rank int) []string {
	gens := make([]string, rank)
	for i := range gens {
		gens[i] = string(rune('a' + i))
	}
	return gens
}

// String renders w alphabetically when every generator fits in a..z
// ('a' for 1, 'A' for -1), and as a bracketed letter list otherwise.
func (w Word) String() string {
	if len(w) == 0 {
		return ""
	}
	if w.Rank() <= 26 {
		var b strings.Builder
		b.Grow(len(w))
		for _, x := range w {
			if x > 0 {
				b.WriteByte(byte('a' + x - 1))
			} else {
				b.WriteByte(byte('A' - x - 1))
			}
		}
		return b.String()
	}
	var b strings.Builder
	b.WriteByte('[')
	for i, x := range w {
		if i > 0 {
			b.WriteByte(',')
		}
		fmt.Fprintf(&b, "%d", x)
	}
	b.WriteByte(']')
	return b.String()
}

// GAPString renders w as a GAP expression in the generators of the named
// free group, e.g. Word{1, 2, -1, -2} becomes "f.1*f.2*f.1^-1*f.2^-1".
// The empty word renders as the GAP identity "One(f)".
func (w Word) GAPString(freeGroupName string) string {
	if len(w) == 0 {
		return "One(" + freeGroupName + ")"
	}
	var b strings.Builder
	i := 0
	for i < len(w) {
		x := w[i]
		run := 1
		for i+run < len(w) && w[i+run] == x {
			run++
		}
		if b.Len() > 0 {
			b.WriteByte('*')
		}
		exp := run
		if x < 0 {
			exp = -run
			x = -x
		}
		fmt.Fprintf(&b, "%s.%d", freeGroupName, x)
		if exp != 1 {
			fmt.Fprintf(&b, "^%d", exp)
		}
		i += run
	}
	return b.String()
}

// CanonicalRotation returns the lexicographically least cyclic rotation
// among all rotations of the cyclic reduction of w and of its inverse.
// Conjugate relators and inverse relators map to the same value.
func (w Word) CanonicalRotation() Word {
	c := w.CyclicReduce()
	best := c
	for _, base := range []Word{c, c.Inverse()} {
		for i := range base {
			rot := base.Rotate(i)
			if rot.less(best) {
				best = rot
			}
		}
	}
	return best
}

func (w Word) less(v Word) bool {
	for i, x := range w {
		if i >= len(v) {
			return false
		}
		if x != v[i] {
			return x < v[i]
		}
	}
	return len(w) < len(v)
}
