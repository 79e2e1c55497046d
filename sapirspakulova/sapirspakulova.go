package sapirspakulova

import (
	"github.com/pkg/errors"

	"github.com/cashenchris/onerelatorgroups/freegroup"
	"github.com/cashenchris/onerelatorgroups/onerel"
)

// Condition tests the Sapir-Spakulova criterion for the one-relator group
// with the given cyclically reduced relator.  Yes means the group embeds
// into an ascending HNN extension of a free group, hence is residually
// finite; No means the criterion fails (the group may still embed).
//
// The criterion is undefined when the relator lies in the commutator
// subgroup, i.e. all exponent sums vanish; that case returns
// onerel.ErrCommutatorRelator.
func Condition(relator freegroup.Word) (onerel.Answer, error) {
	if !relator.IsCyclicallyReduced() {
		return onerel.Maybe, errors.WithStack(onerel.ErrNotCyclicallyReduced)
	}
	rank := relator.Rank()
	axis := make(latticePoint, rank)
	for g := 1; g <= rank; g++ {
		axis[g-1] = int64(relator.ExpSum(g))
	}
	if axis.isZero() {
		return onerel.Maybe, errors.WithStack(onerel.ErrCommutatorRelator)
	}
	tr := newTraceDiagram(relator, rank)
	for g := 0; g < rank; g++ {
		if touching(tr.edges[g], axis) {
			return onerel.Yes, nil
		}
	}
	return onerel.No, nil
}

// touching reports whether some hyperplane parallel to axis meets the
// given edge set in exactly one simple vertex or one simple edge.  The
// test works in the quotient by axis: every other endpoint is projected
// to the orthogonal complement of axis, and the candidate touches iff
// the origin lies outside the convex hull of the projections.
func touching(verts []latticePoint, axis latticePoint) bool {
	for _, s := range simpleVertices(verts) {
		projected := make([]ratVec, 0, len(verts))
		clear := true
		for _, v := range verts {
			if v.equal(s) {
				continue
			}
			p := projectAlong(sub(v, s), axis)
			if p.isZero() {
				// Another endpoint lies on the same axis line,
				// so no hyperplane meets s alone.
				clear = false
				break
			}
			projected = append(projected, p)
		}
		if clear && !originInHull(uniqueVecs(projected)) {
			return true
		}
	}

	for _, e := range simpleEdges(verts) {
		s, t := e[0], e[1]
		if !projectAlong(sub(t, s), axis).isZero() {
			// Edge not parallel to axis: a hyperplane through it
			// would cut, not touch.
			continue
		}
		projected := make([]ratVec, 0, len(verts))
		clear := true
		for _, v := range verts {
			if v.equal(s) || v.equal(t) {
				continue
			}
			p := projectAlong(sub(v, s), axis)
			if p.isZero() {
				clear = false
				break
			}
			projected = append(projected, p)
		}
		if clear && !originInHull(uniqueVecs(projected)) {
			return true
		}
	}
	return false
}
