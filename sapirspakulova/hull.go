package sapirspakulova

import (
	"math/big"
)

// ratVec is a point of Q^dim.
type ratVec []*big.Rat

func (v ratVec) isZero() bool {
	for _, x := range v {
		if x.Sign() != 0 {
			return false
		}
	}
	return true
}

func (v ratVec) equal(w ratVec) bool {
	for i, x := range v {
		if x.Cmp(w[i]) != 0 {
			return false
		}
	}
	return true
}

func uniqueVecs(pts []ratVec) []ratVec {
	var out []ratVec
	for _, p := range pts {
		dup := false
		for _, q := range out {
			if p.equal(q) {
				dup = true
				break
			}
		}
		if !dup {
			out = append(out, p)
		}
	}
	return out
}

// projectAlong returns d minus its component along axis, where axis is a
// nonzero integer vector.  The result lies in the hyperplane orthogonal
// to axis.
func projectAlong(d latticePoint, axis latticePoint) ratVec {
	coef := new(big.Rat).SetFrac64(dot(d, axis), dot(axis, axis))
	p := make(ratVec, len(d))
	for i := range d {
		p[i] = new(big.Rat).Sub(
			new(big.Rat).SetInt64(d[i]),
			new(big.Rat).Mul(coef, new(big.Rat).SetInt64(axis[i])),
		)
	}
	return p
}

// originInHull reports whether the origin lies in the convex hull of pts.
// It solves the phase-one linear program for
//
//	sum_j lambda_j * pts[j] = 0,  sum_j lambda_j = 1,  lambda >= 0
//
// by the simplex method with Bland's rule, so the answer is exact and the
// procedure always terminates.
func originInHull(pts []ratVec) bool {
	if len(pts) == 0 {
		return false
	}
	dim := len(pts[0])
	m := len(pts) // lambda variables
	r := dim + 1  // constraint rows
	width := m + r + 1

	// Tableau rows: dim coordinate constraints with right-hand side 0,
	// then the convexity row summing to 1.  Every right-hand side is
	// nonnegative, so each row starts with its own artificial variable
	// in the basis.
	tab := make([][]*big.Rat, r)
	basis := make([]int, r)
	for i := 0; i < r; i++ {
		row := make([]*big.Rat, width)
		for j := range row {
			row[j] = new(big.Rat)
		}
		for j := 0; j < m; j++ {
			if i < dim {
				row[j].Set(pts[j][i])
			} else {
				row[j].SetInt64(1)
			}
		}
		row[m+i].SetInt64(1)
		if i == dim {
			row[width-1].SetInt64(1)
		}
		tab[i] = row
		basis[i] = m + i
	}

	for {
		// Reduced cost of column j for the phase-one objective: the sum
		// of its entries over rows still basic in an artificial.
		enter := -1
		for j := 0; j < m; j++ {
			cost := new(big.Rat)
			for i := 0; i < r; i++ {
				if basis[i] >= m {
					cost.Add(cost, tab[i][j])
				}
			}
			if cost.Sign() > 0 {
				enter = j
				break
			}
		}
		if enter < 0 {
			break
		}

		// Ratio test, ties broken by smallest basis index.
		leave := -1
		best := new(big.Rat)
		for i := 0; i < r; i++ {
			if tab[i][enter].Sign() <= 0 {
				continue
			}
			ratio := new(big.Rat).Quo(tab[i][width-1], tab[i][enter])
			if leave < 0 || ratio.Cmp(best) < 0 ||
				(ratio.Cmp(best) == 0 && basis[i] < basis[leave]) {
				leave = i
				best = ratio
			}
		}
		if leave < 0 {
			// Unbounded phase-one objective cannot happen; bail out.
			return false
		}

		pivot := new(big.Rat).Set(tab[leave][enter])
		for j := 0; j < width; j++ {
			tab[leave][j].Quo(tab[leave][j], pivot)
		}
		for i := 0; i < r; i++ {
			if i == leave || tab[i][enter].Sign() == 0 {
				continue
			}
			factor := new(big.Rat).Set(tab[i][enter])
			for j := 0; j < width; j++ {
				tab[i][j].Sub(tab[i][j], new(big.Rat).Mul(factor, tab[leave][j]))
			}
		}
		basis[leave] = enter
	}

	// Feasible iff every artificial still in the basis carries value 0.
	for i := 0; i < r; i++ {
		if basis[i] >= m && tab[i][width-1].Sign() != 0 {
			return false
		}
	}
	return true
}
