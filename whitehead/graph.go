// Package whitehead implements Whitehead graphs of cyclic words and
// length reduction by Whitehead automorphisms.
package whitehead

import (
	"github.com/cashenchris/onerelatorgroups/freegroup"
)

// Graph is the reduced Whitehead graph of a set of cyclic words: one vertex
// per letter ±1..±rank, and an edge {-a, b} for every two-letter cyclic
// subword (a, b).  Multiplicities are dropped.
//
// Scanning a word w covers its inverse too: the subword (a, b) of w and the
// subword (-b, -a) of w^-1 yield the same edge.
type Graph struct {
	rank int
	adj  [][]bool // indexed by vertexIndex
}

// NewGraph builds the reduced Whitehead graph of the given cyclically
// reduced words over the first rank generators.
func NewGraph(rank int, words ...freegroup.Word) *Graph {
	g := &Graph{
		rank: rank,
		adj:  make([][]bool, 2*rank),
	}
	for i := range g.adj {
		g.adj[i] = make([]bool, 2*rank)
	}
	for _, w := range words {
		n := len(w)
		if n < 2 {
			continue
		}
		for i := 0; i < n; i++ {
			g.addEdge(-w[i], w[(i+1)%n])
		}
	}
	return g
}

func (g *Graph) Rank() int { return g.rank }

// vertexIndex maps letter v in ±1..±rank to 0..2*rank-1.
func (g *Graph) vertexIndex(v int) int {
	if v > 0 {
		return v - 1
	}
	return g.rank - v - 1
}

// vertexLetter is the inverse of vertexIndex.
func (g *Graph) vertexLetter(i int) int {
	if i < g.rank {
		return i + 1
	}
	return g.rank - i - 1
}

func (g *Graph) addEdge(a, b int) {
	ai, bi := g.vertexIndex(a), g.vertexIndex(b)
	if ai == bi {
		return // reduced graph is simple
	}
	g.adj[ai][bi] = true
	g.adj[bi][ai] = true
}

// HasEdge reports whether letters a and b are adjacent.
func (g *Graph) HasEdge(a, b int) bool {
	return g.adj[g.vertexIndex(a)][g.vertexIndex(b)]
}

// Degree returns the number of neighbors of letter v.
func (g *Graph) Degree(v int) int {
	deg := 0
	for _, e := range g.adj[g.vertexIndex(v)] {
		if e {
			deg++
		}
	}
	return deg
}

// ThreeCycles returns all triangles of the graph, each as a letter triple
// in increasing vertexIndex order.
//
// Vertices not lying on any triangle are pruned first: the diagonal of the
// cubed adjacency matrix counts closed length-3 walks, which in a simple
// graph exist only at triangle vertices.
func (g *Graph) ThreeCycles() [][3]int {
	n := 2 * g.rank

	a := make([][]int, n)
	for i := range a {
		a[i] = make([]int, n)
		for j, e := range g.adj[i] {
			if e {
				a[i][j] = 1
			}
		}
	}
	sq := matMul(a, a)
	cube := matMul(sq, a)

	var onTriangle []int
	for i := 0; i < n; i++ {
		if cube[i][i] > 0 {
			onTriangle = append(onTriangle, i)
		}
	}

	var cycles [][3]int
	for x := 0; x < len(onTriangle); x++ {
		for y := x + 1; y < len(onTriangle); y++ {
			if !g.adj[onTriangle[x]][onTriangle[y]] {
				continue
			}
			for z := y + 1; z < len(onTriangle); z++ {
				if g.adj[onTriangle[x]][onTriangle[z]] && g.adj[onTriangle[y]][onTriangle[z]] {
					cycles = append(cycles, [3]int{
						g.vertexLetter(onTriangle[x]),
						g.vertexLetter(onTriangle[y]),
						g.vertexLetter(onTriangle[z]),
					})
				}
			}
		}
	}
	return cycles
}

func matMul(a, b [][]int) [][]int {
	n := len(a)
	m := make([][]int, n)
	for i := range m {
		m[i] = make([]int, n)
		for k := 0; k < n; k++ {
			if a[i][k] == 0 {
				continue
			}
			aik := a[i][k]
			for j := 0; j < n; j++ {
				m[i][j] += aik * b[k][j]
			}
		}
	}
	return m
}
