package hyperbolic

import (
	"github.com/plan-systems/klog"

	"github.com/cashenchris/onerelatorgroups/automatic"
	"github.com/cashenchris/onerelatorgroups/freegroup"
	"github.com/cashenchris/onerelatorgroups/gap"
	"github.com/cashenchris/onerelatorgroups/onerel"
	"github.com/cashenchris/onerelatorgroups/smallcancellation"
	"github.com/cashenchris/onerelatorgroups/whitehead"
)

// Options configures the certification cascade.  The zero value runs the
// full cascade, spawning external tools as needed.
type Options struct {
	NoMinimization bool // use the relator as given instead of a Whitehead-minimal representative
	NoWalrus       bool // skip the GAP/walrus fallback
	NoKB           bool // skip the kbmag fallback
	Verbose        bool // log cascade progress

	// GAP, if set, is a caller-owned session prepared with
	// gap.SpawnForWalrus.  Reuse amortizes the GAP startup cost over many
	// relators; when nil, a session is spawned and closed per call.
	GAP             *gap.Session
	Walrus          gap.Opts       // spawn params when GAP is nil
	WalrusParameter string         // walrus slack parameter ("" means gap.DefaultParameter)
	KB              automatic.Opts // kbmag params

	// Catalog, if set, is consulted before the cascade runs and records
	// the verdict afterwards, keyed by the relator's canonical rotation.
	Catalog onerel.Catalog
}

// CertifyHyperbolicity runs the certification cascade on the one-relator
// group defined by the given relator, stopping at the first criterion that
// gives a definitive answer:
//
//	free/torsion detection, cyclic pinching, Ivanov-Schupp, classical
//	C'(1/6) small cancellation, Blufstein-Minian, walrus, kbmag.
//
// A Maybe verdict means every criterion legitimately abstained.  External
// tool failures propagate as errors, never as a silent Maybe.
func CertifyHyperbolicity(relator freegroup.Word, opts Options) (onerel.Verdict, error) {
	if len(relator) == 0 {
		return onerel.Verdict{Answer: onerel.Yes, Reason: onerel.ReasonFree}, nil
	}

	var catKey []int
	if opts.Catalog != nil {
		catKey = []int(relator.CanonicalRotation())
		if v, ok := opts.Catalog.Lookup(catKey); ok {
			return v, nil
		}
	}

	v, err := runCascade(relator, opts)
	if err != nil {
		return v, err
	}
	if opts.Catalog != nil && !opts.Catalog.IsReadOnly() {
		if _, err := opts.Catalog.TryAdd(catKey, v); err != nil {
			return v, err
		}
	}
	return v, nil
}

func runCascade(relator freegroup.Word, opts Options) (onerel.Verdict, error) {
	maybe := onerel.Verdict{Answer: onerel.Maybe}

	r2 := relator.CyclicReduce()
	if !opts.NoMinimization {
		if opts.Verbose {
			klog.Infof("minimizing %v", relator)
		}
		r2 = whitehead.MinimalRepresentative(r2)
	}
	if len(r2) <= 1 {
		return onerel.Verdict{Answer: onerel.Yes, Reason: onerel.ReasonFree}, nil
	}
	if r2.Degree() > 1 { // one-relator groups with torsion are hyperbolic
		return onerel.Verdict{Answer: onerel.Yes, Reason: onerel.ReasonTorsion}, nil
	}

	if m, n, pinched := IsCyclicallyPinched(r2); pinched {
		ans := onerel.Yes
		if m > 1 && n > 1 {
			ans = onerel.No
		}
		return onerel.Verdict{Answer: ans, Reason: onerel.ReasonCyclicallyPinched}, nil
	}

	if opts.Verbose {
		klog.Infof("checking Ivanov-Schupp criteria")
	}
	ans, _, err := IvanovSchupp(r2)
	if err != nil {
		return maybe, err
	}
	if ans != onerel.Maybe {
		return onerel.Verdict{Answer: ans, Reason: onerel.ReasonIvanovSchupp}, nil
	}

	cprime := smallcancellation.CprimeBound(r2)
	if smallcancellation.Sixth(cprime) {
		return onerel.Verdict{Answer: onerel.Yes, Reason: onerel.ReasonSmallCancellation}, nil
	}
	bm, err := BlufsteinMinian(r2, cprime)
	if err != nil {
		return maybe, err
	}
	if bm {
		return onerel.Verdict{Answer: onerel.Yes, Reason: onerel.ReasonBlufsteinMinian}, nil
	}
	if opts.Verbose {
		klog.Infof("not small cancellation")
	}

	if !opts.NoWalrus {
		if opts.Verbose {
			klog.Infof("trying GAP with walrus")
		}
		sess := opts.GAP
		if sess == nil {
			sess, err = gap.SpawnForWalrus(r2.Rank(), opts.Walrus)
			if err != nil {
				return maybe, err
			}
			defer sess.Close()
		}
		ok, err := sess.CheckHyperbolicity(r2, opts.WalrusParameter)
		if err != nil {
			return maybe, err
		}
		if ok {
			return onerel.Verdict{Answer: onerel.Yes, Reason: onerel.ReasonWalrus}, nil
		}
		if opts.Verbose {
			klog.Infof("walrus failed")
		}
	}

	if !opts.NoKB {
		if opts.Verbose {
			klog.Infof("trying kbmag")
		}
		ok, err := automatic.CertifyHyperbolicity(r2, opts.KB)
		if err != nil {
			return maybe, err
		}
		if ok {
			return onerel.Verdict{Answer: onerel.Yes, Reason: onerel.ReasonKBMag}, nil
		}
	}

	return maybe, nil
}
