// Package sapirspakulova implements the Sapir-Spakulova embeddability
// condition: a one-relator group passing it embeds in an ascending HNN
// extension of a free group and is therefore residually finite.
//
// The relator is traced as a lattice path in Z^rank; the test then looks
// for a hyperplane parallel to the total exponent vector touching the
// i-labelled edges of the trace in a single simple vertex or edge.  All
// arithmetic is exact over the rationals, so the test always decides.
package sapirspakulova

import (
	"github.com/cashenchris/onerelatorgroups/freegroup"
)

// latticePoint is a point of Z^rank.
type latticePoint []int64

func (p latticePoint) equal(q latticePoint) bool {
	for i, x := range p {
		if x != q[i] {
			return false
		}
	}
	return true
}

func (p latticePoint) isZero() bool {
	for _, x := range p {
		if x != 0 {
			return false
		}
	}
	return true
}

func sub(p, q latticePoint) latticePoint {
	d := make(latticePoint, len(p))
	for i := range p {
		d[i] = p[i] - q[i]
	}
	return d
}

func dot(p, q latticePoint) int64 {
	var s int64
	for i := range p {
		s += p[i] * q[i]
	}
	return s
}

// traceDiagram walks the relator through Z^rank one letter at a time.
// edges[g] holds the endpoints of every step made by generator g+1,
// flattened in traversal order with two entries per step.  The walk ends
// at the relator's exponent sum vector.
type traceDiagram struct {
	edges [][]latticePoint
}

func newTraceDiagram(relator freegroup.Word, rank int) *traceDiagram {
	tr := &traceDiagram{
		edges: make([][]latticePoint, rank),
	}
	cur := make(latticePoint, rank)
	for _, letter := range relator {
		g := letter
		step := int64(1)
		if g < 0 {
			g = -g
			step = -1
		}
		next := make(latticePoint, rank)
		copy(next, cur)
		next[g-1] += step

		tr.edges[g-1] = append(tr.edges[g-1], cur, next)
		cur = next
	}
	return tr
}

// simpleVertices returns the points of the given endpoint list that occur
// exactly once.
func simpleVertices(verts []latticePoint) []latticePoint {
	var simple []latticePoint
	for i, v := range verts {
		count := 0
		for _, w := range verts {
			if v.equal(w) {
				count++
			}
		}
		if count == 1 {
			simple = append(simple, verts[i])
		}
	}
	return simple
}

// simpleEdges returns the undirected endpoint pairs that occur exactly once.
func simpleEdges(verts []latticePoint) [][2]latticePoint {
	type edge [2]latticePoint
	all := make([]edge, 0, len(verts)/2)
	for i := 0; i+1 < len(verts); i += 2 {
		all = append(all, edge{verts[i], verts[i+1]})
	}
	sameEdge := func(a, b edge) bool {
		return (a[0].equal(b[0]) && a[1].equal(b[1])) ||
			(a[0].equal(b[1]) && a[1].equal(b[0]))
	}

	var simple [][2]latticePoint
	for i, e := range all {
		count := 0
		for _, f := range all {
			if sameEdge(e, f) {
				count++
			}
		}
		if count == 1 {
			simple = append(simple, all[i])
		}
	}
	return simple
}
