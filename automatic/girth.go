package automatic

import (
	"path/filepath"

	"github.com/cashenchris/onerelatorgroups/freegroup"
	"github.com/cashenchris/onerelatorgroups/onerel"
)

// Reducer maps an alphabetic word to its shortlex normal form for some
// fixed automatic structure.
type Reducer func(word string) (string, error)

// Girth returns the girth of the Cayley graph of the one-relator
// presentation, with a pair of distinct equivalent words witnessing a
// shortest relation.  The group must be shortlex automatic; the automatic
// structure is computed with autgroup if not already on disk.
//
// If opts.Reduce is nil, words are reduced by shelling out to kbmag's
// wordreduce against the computed structure.
func Girth(relator freegroup.Word, opts Opts) (girth int, u, v string, err error) {
	if len(relator) == 0 {
		return 0, "", "", onerel.ErrEmptyRelator
	}
	base := opts.baseName(relator)
	path := filepath.Join(opts.Dir, base)

	generators := opts.Generators
	if generators == nil {
		generators = DefaultGenerators(relator.Rank())
	}
	if _, err := runAutgroup(relator, path, base, generators, opts); err != nil {
		return 0, "", "", err
	}
	if opts.Cleanup != nil && *opts.Cleanup {
		defer removeWorkingFiles(path)
	}

	reduce := opts.Reduce
	if reduce == nil {
		reduce = func(word string) (string, error) {
			return ReduceWord(word, path)
		}
	}

	rstr := relator.String()
	rank := relator.Rank()
	foundRelation := false
	length := 0
	for !foundRelation {
		length++
		if 2*length == len(rstr) || 2*length-1 == len(rstr) {
			// No relation shorter than the relator itself.
			return len(rstr), rstr, "", nil
		}
		for _, w := range freegroup.EnumerateWords(rank, length, length) {
			s := w.String()
			red, rerr := reduce(s)
			if rerr != nil {
				return 0, "", "", rerr
			}
			if len(red) < len(s) {
				// Shortlex reduction of a geodesic-plus-one word shortens
				// by exactly one, witnessing an odd cycle.
				return 2*length - 1, s, red, nil
			}
			if red != s {
				// Equal length but lex-smaller: an even cycle.  Keep
				// scanning this length for a shorter odd one.
				foundRelation = true
				u, v = s, red
			}
		}
	}
	return 2 * length, u, v, nil
}
