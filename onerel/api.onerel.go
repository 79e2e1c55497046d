package onerel

// Answer is a three-valued result of a hyperbolicity test.
//
// A test that returns Maybe has failed to certify either way; it says
// nothing about the group.
type Answer int8

const (
	No    Answer = -1
	Maybe Answer = 0
	Yes   Answer = 1
)

func (a Answer) String() string {
	switch a {
	case No:
		return "No"
	case Yes:
		return "Yes"
	}
	return "Maybe"
}

// Reason tags identifying which criterion settled a Verdict.
const (
	ReasonFree              = "free"
	ReasonTorsion           = "torsion"
	ReasonCyclicallyPinched = "cyclically pinched"
	ReasonIvanovSchupp      = "Ivanov Schupp"
	ReasonSmallCancellation = "small cancellation"
	ReasonBlufsteinMinian   = "Blufstein Minian"
	ReasonWalrus            = "walrus"
	ReasonKBMag             = "kbmag"
)

// Verdict is the outcome of running the certification cascade on a relator.
type Verdict struct {
	Answer Answer
	Reason string // one of the Reason tags, or "" when Answer is Maybe
}

// CatalogContext tracks open verdict catalogs so a host can shut down cleanly.
type CatalogContext interface {

	// Attaches the given Catalog to this context, preventing Done() from firing until it is closed.
	AttachCatalog(cat Catalog)

	// Detaches the given Catalog after its closed.
	DetachCatalog(cat Catalog)

	// Initiates a close of this context, closing all open catalogs.
	Close()

	// Signals when Close() has been called and all open catalogs have closed.
	Done() <-chan struct{}
}

// CatalogOpts specifies params for opening a verdict Catalog.
type CatalogOpts struct {
	DbPathName string // path to the catalog db ("" means in-memory)
	ReadOnly   bool   // deny writes
	TraceFn    func(relator []int, v Verdict)
}

// Catalog stores certification verdicts keyed by relator.
//
// Relators are keyed by their letter sequence, so callers are expected to
// normalize (e.g. take a canonical cyclic rotation) before insertion if they
// want conjugate relators to collide.
type Catalog interface {

	// TryAdd inserts the verdict for the given relator.
	// Returns false if the relator is already present (the stored verdict wins).
	TryAdd(relator []int, v Verdict) (bool, error)

	// Lookup returns the stored verdict for the given relator, if present.
	Lookup(relator []int) (Verdict, bool)

	// NumChecked returns how many relators this catalog holds.
	NumChecked() int64

	// NumWithAnswer returns how many stored verdicts carry the given Answer.
	NumWithAnswer(a Answer) int64

	IsReadOnly() bool

	Close() error
}
