package catalog_test

import (
	"os"
	"path"
	"testing"

	"github.com/cashenchris/onerelatorgroups/catalog"
	"github.com/cashenchris/onerelatorgroups/freegroup"
	"github.com/cashenchris/onerelatorgroups/onerel"
)

var verdicts = []struct {
	relator string
	v       onerel.Verdict
}{
	{"aaa", onerel.Verdict{Answer: onerel.Yes, Reason: onerel.ReasonTorsion}},
	{"abABcdCD", onerel.Verdict{Answer: onerel.Yes, Reason: onerel.ReasonCyclicallyPinched}},
	{"a*b*a*b", onerel.Verdict{Answer: onerel.No, Reason: onerel.ReasonIvanovSchupp}},
	{"a*b*a*B*a*b^3", onerel.Verdict{Answer: onerel.Maybe}},
}

func relatorKey(t *testing.T, expr string) []int {
	t.Helper()
	w, err := freegroup.Parse(expr)
	if err != nil {
		t.Fatal(err)
	}
	return []int(w.CanonicalRotation())
}

func TestBasics(t *testing.T) {
	dir, err := os.MkdirTemp("", "junk*")
	if err != nil {
		t.Fatal(err)
	}
	defer os.RemoveAll(dir)

	ctx := onerel.NewCatalogContext()
	dbPath := path.Join(dir, "TestBasics")

	cat, err := catalog.OpenCatalog(ctx, onerel.CatalogOpts{
		DbPathName: dbPath,
	})
	if err != nil {
		t.Fatal(err)
	}

	for _, tc := range verdicts {
		key := relatorKey(t, tc.relator)
		if added, err := cat.TryAdd(key, tc.v); err != nil || !added {
			t.Fatalf("TryAdd(%s) = %v, %v", tc.relator, added, err)
		}
		if added, err := cat.TryAdd(key, onerel.Verdict{}); err != nil || added {
			t.Fatalf("second TryAdd(%s) = %v, %v", tc.relator, added, err)
		}
	}

	for _, tc := range verdicts {
		got, ok := cat.Lookup(relatorKey(t, tc.relator))
		if !ok || got != tc.v {
			t.Fatalf("Lookup(%s) = %v, %v", tc.relator, got, ok)
		}
	}
	if _, ok := cat.Lookup(relatorKey(t, "a*b^5")); ok {
		t.Fatal("Lookup of absent relator succeeded")
	}

	if n := cat.NumChecked(); n != int64(len(verdicts)) {
		t.Fatalf("NumChecked = %v", n)
	}
	if n := cat.NumWithAnswer(onerel.Yes); n != 2 {
		t.Fatalf("NumWithAnswer(Yes) = %v", n)
	}
	if n := cat.NumWithAnswer(onerel.No); n != 1 {
		t.Fatalf("NumWithAnswer(No) = %v", n)
	}
	if n := cat.NumWithAnswer(onerel.Maybe); n != 1 {
		t.Fatalf("NumWithAnswer(Maybe) = %v", n)
	}

	if err := cat.Close(); err != nil {
		t.Fatal(err)
	}

	// Reopen read-only: state and entries must survive the round trip.
	cat, err = catalog.OpenCatalog(ctx, onerel.CatalogOpts{
		DbPathName: dbPath,
		ReadOnly:   true,
	})
	if err != nil {
		t.Fatal(err)
	}
	defer cat.Close()

	if !cat.IsReadOnly() {
		t.Fatal("expected read-only catalog")
	}
	if n := cat.NumChecked(); n != int64(len(verdicts)) {
		t.Fatalf("NumChecked after reopen = %v", n)
	}
	got, ok := cat.Lookup(relatorKey(t, "aaa"))
	if !ok || got.Reason != onerel.ReasonTorsion {
		t.Fatalf("Lookup after reopen = %v, %v", got, ok)
	}
	if _, err := cat.TryAdd(relatorKey(t, "a*b^5"), onerel.Verdict{}); err == nil {
		t.Fatal("TryAdd on read-only catalog succeeded")
	}
}

func TestInMemoryCatalog(t *testing.T) {
	ctx := onerel.NewCatalogContext()

	traced := 0
	cat, err := catalog.OpenCatalog(ctx, onerel.CatalogOpts{
		TraceFn: func(relator []int, v onerel.Verdict) { traced++ },
	})
	if err != nil {
		t.Fatal(err)
	}

	key := relatorKey(t, "a*b*a*b")
	if added, _ := cat.TryAdd(key, onerel.Verdict{Answer: onerel.No, Reason: onerel.ReasonIvanovSchupp}); !added {
		t.Fatal("TryAdd failed")
	}
	if added, _ := cat.TryAdd(key, onerel.Verdict{}); added {
		t.Fatal("duplicate TryAdd succeeded")
	}
	if traced != 1 {
		t.Fatalf("TraceFn fired %v times", traced)
	}

	cat.Close()

	// The context drains once the last catalog detaches.
	ctx.Close()
	<-ctx.Done()
}

func TestWordSet(t *testing.T) {
	set := catalog.NewWordSet()
	defer set.Close()

	if !set.TryAdd([]int{1, 2, -1, -2}) {
		t.Fatal("first TryAdd failed")
	}
	if set.TryAdd([]int{1, 2, -1, -2}) {
		t.Fatal("duplicate TryAdd succeeded")
	}
	if !set.TryAdd([]int{1, 2, -1}) {
		t.Fatal("prefix relator reported as duplicate")
	}
}
