package catalog

import "github.com/dgraph-io/badger/v3"

// WordSet collects relator letter sequences and reports whether a given
// one has already been added.  Callers normalize (canonical rotation)
// before insertion so that conjugate and inverse relators collide.
type WordSet interface {

	// TryAdd adds the given relator if it is not already present.
	//
	// If the relator already is in this WordSet, false is returned and this call has no effect.
	// If it isn't, a copy is added and true is returned.
	//
	// After one or more calls to TryAdd(), be sure to call Close() for cleanup.
	TryAdd(relator []int) bool

	// Close removes all previously added items from this set.
	//
	// If you make subsequent calls to TryAdd(), call Close() when you're done.
	Close()
}

func NewWordSet() WordSet {
	return &wordSet{}
}

type wordSet struct {
	lsmSet
}

func (ws *wordSet) TryAdd(relator []int) bool {
	var buf [192]byte
	key := AppendRelatorKey(buf[:0], relator)
	return ws.tryAdd(key)
}

type lsmSet struct {
	db *badger.DB
}

func (set *lsmSet) autoOpen() {
	if set.db == nil {
		dbOpts := badger.DefaultOptions("").WithInMemory(true)
		dbOpts.Logger = nil
		dbOpts.MetricsEnabled = false

		var err error
		set.db, err = badger.Open(dbOpts)
		if err != nil {
			panic(err)
		}
	}
}

func (set *lsmSet) tryAdd(key []byte) bool {
	set.autoOpen()

	txn := set.db.NewTransaction(true)
	defer txn.Commit()

	added := false
	_, err := txn.Get(key)
	if err == nil {
		// no-op since the key is already in the db
	} else if err == badger.ErrKeyNotFound {
		err = txn.Set(append([]byte{}, key...), nil)
		added = true
	}

	if err != nil {
		panic(err)
	}

	return added
}

func (set *lsmSet) Close() {
	if set.db != nil {
		set.db.Close()
		set.db = nil
	}
}
