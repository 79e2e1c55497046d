// Package catalog persists certification verdicts in a badger key-value
// store, keyed by relator letter sequence.  A catalog doubles as a resume
// point for long enumeration runs: relators already decided are skipped on
// the next pass.
package catalog

import (
	"encoding/binary"
	"runtime"

	"github.com/dgraph-io/badger/v3"
	"github.com/pkg/errors"

	"github.com/cashenchris/onerelatorgroups/onerel"
)

/***

Catalog database format:

	gCatalogStateKey => CatalogState

	RelatorKey ([letter]varint)  => Reason (string), UserMeta carries the Answer

Relator letters are nonzero, so the first byte of a RelatorKey varint is
never NUL and the reserved state key cannot collide with an entry.

***/

var gCatalogStateKey = []byte{0x00, 0x00, 0x01}

const (
	kMajorVers = 2024
	kMinorVers = 1
)

type catalog struct {
	ctx        onerel.CatalogContext
	opts       onerel.CatalogOpts
	readOnly   bool
	stateDirty bool
	state      CatalogState
	db         *badger.DB
}

// OpenCatalog opens (or creates) the verdict catalog at opts.DbPathName.
// An empty path opens a transient in-memory catalog.
func OpenCatalog(ctx onerel.CatalogContext, opts onerel.CatalogOpts) (onerel.Catalog, error) {
	cat := &catalog{
		ctx:      ctx,
		opts:     opts,
		readOnly: opts.ReadOnly,
	}

	dbOpts := badger.DefaultOptions(opts.DbPathName)
	dbOpts.ReadOnly = opts.ReadOnly
	dbOpts.DetectConflicts = false // single writer, so skip the bookkeeping
	dbOpts.Logger = nil
	dbOpts.MetricsEnabled = false

	// Badger for windows currently does not support read-only mode
	if runtime.GOOS == "windows" {
		dbOpts.ReadOnly = false
	}

	if len(opts.DbPathName) == 0 {
		if opts.ReadOnly {
			return nil, errors.Wrap(onerel.ErrBadCatalogParam, "DbPathName must be specified for read-only catalog")
		}
		dbOpts.InMemory = true
	}

	var err error
	cat.db, err = badger.Open(dbOpts)
	if err != nil {
		return nil, err
	}

	// Once the db is open, the catalog ctx blocks until the catalog closes
	ctx.AttachCatalog(cat)

	err = cat.loadState()
	if err == badger.ErrKeyNotFound {
		err = nil
		cat.stateDirty = true
		cat.state.MajorVers = kMajorVers
		cat.state.MinorVers = kMinorVers
	}

	if err == nil && (cat.state.MajorVers != kMajorVers || cat.state.MinorVers != kMinorVers) {
		err = errors.New("catalog version is incompatible")
	}

	if err != nil {
		cat.Close()
		return nil, err
	}

	return cat, nil
}

func (cat *catalog) loadState() error {
	return cat.db.View(func(txn *badger.Txn) error {
		item, err := txn.Get(gCatalogStateKey)
		if err != nil {
			return err
		}
		return item.Value(func(val []byte) error {
			if err := cat.state.Unmarshal(val); err != nil {
				return errors.Wrap(onerel.ErrUnmarshal, err.Error())
			}
			return nil
		})
	})
}

func (cat *catalog) flushState() {
	if !cat.stateDirty || cat.readOnly {
		return
	}
	err := cat.db.Update(func(txn *badger.Txn) error {
		stateBuf, err := cat.state.Marshal()
		if err != nil {
			return err
		}
		return txn.Set(gCatalogStateKey, stateBuf)
	})
	if err != nil {
		panic(err)
	}
	cat.stateDirty = false
}

func (cat *catalog) Close() error {
	cat.flushState()
	if cat.db != nil {
		cat.db.Close()
		cat.db = nil
		cat.ctx.DetachCatalog(cat)
		cat.ctx = nil
	}
	return nil
}

func (cat *catalog) IsReadOnly() bool {
	return cat.readOnly
}

func (cat *catalog) NumChecked() int64 {
	return cat.state.NumChecked
}

func (cat *catalog) NumWithAnswer(a onerel.Answer) int64 {
	switch a {
	case onerel.No:
		return cat.state.NumNo
	case onerel.Yes:
		return cat.state.NumYes
	}
	return cat.state.NumMaybe
}

// AppendRelatorKey appends the catalog key of the given relator letters.
// Each letter is varint encoded; letters are nonzero so the key never
// starts with a NUL byte.
func AppendRelatorKey(out []byte, relator []int) []byte {
	var scrap [12]byte
	for _, letter := range relator {
		n := binary.PutVarint(scrap[:], int64(letter))
		out = append(out, scrap[:n]...)
	}
	return out
}

// answerMeta packs an Answer into a badger UserMeta byte.
func answerMeta(a onerel.Answer) byte {
	return byte(int8(a) + 1)
}

func metaAnswer(meta byte) onerel.Answer {
	return onerel.Answer(int8(meta) - 1)
}

// TryAdd inserts the verdict for the given relator.
//
// If true is returned, the relator was not present and was added.
// If false is returned, a verdict for the relator is already stored and
// the stored one wins.
func (cat *catalog) TryAdd(relator []int, v onerel.Verdict) (bool, error) {
	if cat.readOnly {
		return false, errors.WithStack(onerel.ErrCatalogReadOnly)
	}
	if cat.db == nil {
		return false, errors.WithStack(onerel.ErrCatalogClosed)
	}
	if len(relator) == 0 {
		return false, errors.Wrap(onerel.ErrBadCatalogParam, "empty relator")
	}

	var keyBuf [192]byte
	key := AppendRelatorKey(keyBuf[:0], relator)

	txn := cat.db.NewTransaction(true)
	defer txn.Discard()

	_, err := txn.Get(key)
	if err == nil {
		return false, nil
	}
	if err != badger.ErrKeyNotFound {
		return false, err
	}

	entry := badger.NewEntry(append([]byte{}, key...), []byte(v.Reason)).WithMeta(answerMeta(v.Answer))
	if err = txn.SetEntry(entry); err != nil {
		return false, err
	}
	if err = txn.Commit(); err != nil {
		return false, err
	}

	cat.state.NumChecked++
	switch v.Answer {
	case onerel.No:
		cat.state.NumNo++
	case onerel.Yes:
		cat.state.NumYes++
	default:
		cat.state.NumMaybe++
	}
	cat.stateDirty = true

	if cat.opts.TraceFn != nil {
		cat.opts.TraceFn(relator, v)
	}
	return true, nil
}

// Lookup returns the stored verdict for the given relator, if present.
func (cat *catalog) Lookup(relator []int) (onerel.Verdict, bool) {
	if cat.db == nil || len(relator) == 0 {
		return onerel.Verdict{}, false
	}

	var keyBuf [192]byte
	key := AppendRelatorKey(keyBuf[:0], relator)

	var v onerel.Verdict
	found := false
	err := cat.db.View(func(txn *badger.Txn) error {
		item, err := txn.Get(key)
		if err == badger.ErrKeyNotFound {
			return nil
		}
		if err != nil {
			return err
		}
		v.Answer = metaAnswer(item.UserMeta())
		found = true
		return item.Value(func(val []byte) error {
			v.Reason = string(val)
			return nil
		})
	})
	if err != nil {
		panic(err)
	}
	return v, found
}
