package pyonerel

// Copyright 2018 The go-python Authors.  All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

import (
	"os"

	"github.com/go-python/gpython/py"

	"github.com/cashenchris/onerelatorgroups/automatic"
	"github.com/cashenchris/onerelatorgroups/catalog"
	"github.com/cashenchris/onerelatorgroups/freegroup"
	"github.com/cashenchris/onerelatorgroups/hyperbolic"
	"github.com/cashenchris/onerelatorgroups/onerel"
	"github.com/cashenchris/onerelatorgroups/sapirspakulova"
	"github.com/cashenchris/onerelatorgroups/smallcancellation"
)

var (
	LIB_VERSION = "v1.2026.1"
)

var (
	pyWordType      = py.NewType("Word", "a freely reduced word in a free group")
	pyCatalogType   = py.NewType("Catalog", "onerel.Catalog")
	pyWorkspaceType = py.NewType("Workspace", "collects active session resources and catalogs")
)

type pyWord struct {
	freegroup.Word
}

func (w pyWord) Type() *py.Type {
	return pyWordType
}

func (w pyWord) M__str__() (py.Object, error) {
	return py.String(w.Word.String()), nil
}

func (w pyWord) M__repr__() (py.Object, error) {
	return w.M__str__()
}

func getWordFromObj(obj py.Object) (freegroup.Word, error) {
	switch v := obj.(type) {
	case pyWord:
		return v.Word, nil
	case py.String:
		w, err := freegroup.Parse(string(v))
		if err != nil {
			return nil, py.ExceptionNewf(py.ValueError, "%v", err)
		}
		return w, nil
	}
	return nil, py.ExceptionNewf(py.TypeError, "expected Word or str (got %v)", obj.Type().Name)
}

// answerToPy maps the three-valued Answer to True / False / None.
func answerToPy(a onerel.Answer) py.Object {
	switch a {
	case onerel.Yes:
		return py.True
	case onerel.No:
		return py.False
	}
	return py.None
}

func py_Word(module py.Object, args py.Tuple) (py.Object, error) {
	var expr string
	err := py.LoadTuple(args, []interface{}{&expr})
	if err != nil {
		return nil, err
	}
	w, err := freegroup.Parse(expr)
	if err != nil {
		return nil, py.ExceptionNewf(py.ValueError, "%v", err)
	}
	return py.Object(pyWord{w}), nil
}

func py_Word_Letters(self py.Object, args py.Tuple) (py.Object, error) {
	w := self.(pyWord)
	letters := make(py.Tuple, len(w.Word))
	for i, letter := range w.Word {
		letters[i] = py.Int(letter)
	}
	return py.Object(letters), nil
}

func py_Word_Len(self py.Object, args py.Tuple) (py.Object, error) {
	w := self.(pyWord)
	return py.Int(w.Word.Len()), nil
}

func py_Word_Rank(self py.Object, args py.Tuple) (py.Object, error) {
	w := self.(pyWord)
	return py.Int(w.Word.Rank()), nil
}

func py_Word_CyclicReduce(self py.Object, args py.Tuple) (py.Object, error) {
	w := self.(pyWord)
	return py.Object(pyWord{w.Word.CyclicReduce()}), nil
}

func py_Word_MaxRoot(self py.Object, args py.Tuple) (py.Object, error) {
	w := self.(pyWord)
	root, deg := w.Word.MaxRoot()
	return py.Tuple{pyWord{root}, py.Int(deg)}, nil
}

func py_Word_GAPString(self py.Object, args py.Tuple) (py.Object, error) {
	w := self.(pyWord)
	name := "f"
	if len(args) > 0 {
		if s, ok := args[0].(py.String); ok {
			name = string(s)
		}
	}
	return py.String(w.Word.GAPString(name)), nil
}

func py_IvanovSchupp(module py.Object, args py.Tuple) (py.Object, error) {
	w, err := wordArg(args)
	if err != nil {
		return nil, err
	}
	answer, tag, err := hyperbolic.IvanovSchupp(w.CyclicReduce())
	if err != nil {
		return nil, py.ExceptionNewf(py.ValueError, "%v", err)
	}
	return py.Tuple{answerToPy(answer), py.String(tag)}, nil
}

func py_IsCyclicallyPinched(module py.Object, args py.Tuple) (py.Object, error) {
	w, err := wordArg(args)
	if err != nil {
		return nil, err
	}
	_, _, pinched := hyperbolic.IsCyclicallyPinched(w.CyclicReduce())
	if pinched {
		return py.True, nil
	}
	return py.False, nil
}

func py_CprimeBound(module py.Object, args py.Tuple) (py.Object, error) {
	w, err := wordArg(args)
	if err != nil {
		return nil, err
	}
	bound := smallcancellation.CprimeBound(w.CyclicReduce())
	if bound == nil {
		return py.None, nil
	}
	return py.String(bound.RatString()), nil
}

func py_BlufsteinMinianTprime(module py.Object, args py.Tuple) (py.Object, error) {
	w, err := wordArg(args)
	if err != nil {
		return nil, err
	}
	ok, err := hyperbolic.BlufsteinMinianTprime(w.CyclicReduce())
	if err != nil {
		return nil, py.ExceptionNewf(py.ValueError, "%v", err)
	}
	if ok {
		return py.True, nil
	}
	return py.False, nil
}

func py_SapirSpakulova(module py.Object, args py.Tuple) (py.Object, error) {
	w, err := wordArg(args)
	if err != nil {
		return nil, err
	}
	answer, err := sapirspakulova.Condition(w.CyclicReduce())
	if err != nil {
		return nil, py.ExceptionNewf(py.ValueError, "%v", err)
	}
	return answerToPy(answer), nil
}

func py_Girth(module py.Object, args py.Tuple) (py.Object, error) {
	w, err := wordArg(args)
	if err != nil {
		return nil, err
	}
	girth, u, v, err := automatic.Girth(w.CyclicReduce(), automatic.Opts{})
	if err != nil {
		return nil, py.ExceptionNewf(py.RuntimeError, "%v", err)
	}
	return py.Tuple{py.Int(girth), py.String(u), py.String(v)}, nil
}

// Kwargs: no_minimization, no_walrus, no_kb, verbose (bools), catalog (Catalog)
func py_CertifyHyperbolicity(module py.Object, args py.Tuple, kwargs py.StringDict) (py.Object, error) {
	w, err := wordArg(args)
	if err != nil {
		return nil, err
	}

	var opts hyperbolic.Options
	py.LoadAttr(kwargs, "no_minimization", &opts.NoMinimization)
	py.LoadAttr(kwargs, "no_walrus", &opts.NoWalrus)
	py.LoadAttr(kwargs, "no_kb", &opts.NoKB)
	py.LoadAttr(kwargs, "verbose", &opts.Verbose)
	if catObj, ok := kwargs["catalog"]; ok {
		if cat, isCat := catObj.(pyCatalog); isCat {
			opts.Catalog = cat.Catalog
		}
	}

	verdict, err := hyperbolic.CertifyHyperbolicity(w, opts)
	if err != nil {
		return nil, py.ExceptionNewf(py.RuntimeError, "%v", err)
	}
	return py.Tuple{answerToPy(verdict.Answer), py.String(verdict.Reason)}, nil
}

// Arg 1 (int): rank
// Arg 2 (int): min length
// Arg 3 (int): max length
//
// Enumerates cyclically reduced relators up to conjugacy and inversion.
func py_EnumerateRelators(module py.Object, args py.Tuple) (py.Object, error) {
	var rank, minLen, maxLen py.Object
	err := py.ParseTuple(args, "iii", &rank, &minLen, &maxLen)
	if err != nil {
		return nil, err
	}

	seen := catalog.NewWordSet()
	defer seen.Close()

	out := py.Tuple{}
	for _, w := range freegroup.EnumerateWords(int(rank.(py.Int)), int(minLen.(py.Int)), int(maxLen.(py.Int))) {
		if !w.IsCyclicallyReduced() {
			continue
		}
		if !seen.TryAdd([]int(w.CanonicalRotation())) {
			continue
		}
		out = append(out, pyWord{w})
	}
	return out, nil
}

func wordArg(args py.Tuple) (freegroup.Word, error) {
	if len(args) == 0 {
		return nil, py.ExceptionNewf(py.TypeError, "expected a relator argument")
	}
	return getWordFromObj(args[0])
}

const (
	READ_ONLY = 0x01

	kWorkspaceAttr = "_Workspace"
)

type Workspace struct {
	CatalogCtx onerel.CatalogContext
}

func (ws *Workspace) Close() {
	ws.CatalogCtx.Close()
	<-ws.CatalogCtx.Done()
}

func (ws *Workspace) Type() *py.Type {
	return pyWorkspaceType
}

func py_GetWorkspace(module py.Object, args py.Tuple) (py.Object, error) {
	wsObj, _ := py.GetAttrString(module, kWorkspaceAttr)
	if wsObj == nil {
		ws := &Workspace{
			CatalogCtx: onerel.NewCatalogContext(),
		}
		wsObj = ws
		py.SetAttrString(module, kWorkspaceAttr, wsObj)
	}
	return wsObj, nil
}

func py_Workspace_CatalogExists(self py.Object, args py.Tuple) (py.Object, error) {
	_ = self.(*Workspace)

	var pathname string
	err := py.LoadTuple(args, []interface{}{&pathname})
	if err != nil {
		return nil, err
	}
	_, err = os.Stat(pathname)
	if os.IsNotExist(err) {
		return py.False, nil
	}
	return py.True, nil
}

func py_Workspace_OpenCatalog(self py.Object, args py.Tuple) (py.Object, error) {
	ws := self.(*Workspace)

	var pathname string
	var flags int32
	err := py.LoadTuple(args, []interface{}{&pathname, &flags})
	if err != nil {
		return nil, err
	}

	opts := onerel.CatalogOpts{
		DbPathName: pathname,
		ReadOnly:   (flags & READ_ONLY) != 0,
	}

	cat, err := catalog.OpenCatalog(ws.CatalogCtx, opts)
	if err != nil {
		return nil, py.ExceptionNewf(py.RuntimeError, "%v", err)
	}

	return py.Object(pyCatalog{cat}), nil
}

type pyCatalog struct {
	onerel.Catalog
}

func (cat pyCatalog) Type() *py.Type {
	return pyCatalogType
}

func py_Catalog_Close(self py.Object, args py.Tuple) (py.Object, error) {
	cat := self.(pyCatalog)
	if cat.Catalog != nil {
		cat.Close()
	}
	return py.None, nil
}

func py_Catalog_Lookup(self py.Object, args py.Tuple) (py.Object, error) {
	cat := self.(pyCatalog)
	w, err := wordArg(args)
	if err != nil {
		return nil, err
	}
	v, found := cat.Lookup([]int(w.CanonicalRotation()))
	if !found {
		return py.None, nil
	}
	return py.Tuple{answerToPy(v.Answer), py.String(v.Reason)}, nil
}

func py_Catalog_NumChecked(self py.Object, args py.Tuple) (py.Object, error) {
	cat := self.(pyCatalog)
	return py.Int(cat.NumChecked()), nil
}

func py_Catalog_NumWithAnswer(self py.Object, args py.Tuple) (py.Object, error) {
	cat := self.(pyCatalog)
	if len(args) == 0 {
		return nil, py.ExceptionNewf(py.TypeError, "expected an answer argument")
	}
	var a onerel.Answer
	switch args[0] {
	case py.True:
		a = onerel.Yes
	case py.False:
		a = onerel.No
	default:
		a = onerel.Maybe
	}
	return py.Int(cat.NumWithAnswer(a)), nil
}

func init() {

	/////////////////////////////////
	// Word
	{
		pyWordType.Dict["Letters"] = py.MustNewMethod("Letters", py_Word_Letters, 0, "exports this Word's letters as a tuple of nonzero ints")
		pyWordType.Dict["Len"] = py.MustNewMethod("Len", py_Word_Len, 0, "")
		pyWordType.Dict["Rank"] = py.MustNewMethod("Rank", py_Word_Rank, 0, "")
		pyWordType.Dict["CyclicReduce"] = py.MustNewMethod("CyclicReduce", py_Word_CyclicReduce, 0, "")
		pyWordType.Dict["MaxRoot"] = py.MustNewMethod("MaxRoot", py_Word_MaxRoot, 0, "")
		pyWordType.Dict["GAPString"] = py.MustNewMethod("GAPString", py_Word_GAPString, 0, "")
	}

	/////////////////////////////////
	// Catalog
	{
		pyCatalogType.Dict["Lookup"] = py.MustNewMethod("Lookup", py_Catalog_Lookup, 0, "")
		pyCatalogType.Dict["NumChecked"] = py.MustNewMethod("NumChecked", py_Catalog_NumChecked, 0, "")
		pyCatalogType.Dict["NumWithAnswer"] = py.MustNewMethod("NumWithAnswer", py_Catalog_NumWithAnswer, 0, "")
		pyCatalogType.Dict["Close"] = py.MustNewMethod("Close", py_Catalog_Close, 0, "")
	}

	/////////////////////////////////
	// Workspace
	{
		pyWorkspaceType.Dict["OpenCatalog"] = py.MustNewMethod("OpenCatalog", py_Workspace_OpenCatalog, 0, "")
		pyWorkspaceType.Dict["CatalogExists"] = py.MustNewMethod("CatalogExists", py_Workspace_CatalogExists, 0, "")
	}

	{
		methods := []*py.Method{
			py.MustNewMethod("Word", py_Word, 0, ""),
			py.MustNewMethod("IvanovSchupp", py_IvanovSchupp, 0, ""),
			py.MustNewMethod("IsCyclicallyPinched", py_IsCyclicallyPinched, 0, ""),
			py.MustNewMethod("CprimeBound", py_CprimeBound, 0, ""),
			py.MustNewMethod("BlufsteinMinianTprime", py_BlufsteinMinianTprime, 0, ""),
			py.MustNewMethod("SapirSpakulova", py_SapirSpakulova, 0, ""),
			py.MustNewMethod("Girth", py_Girth, 0, ""),
			py.MustNewMethod("CertifyHyperbolicity", py_CertifyHyperbolicity, 0, ""),
			py.MustNewMethod("EnumerateRelators", py_EnumerateRelators, 0, ""),
			py.MustNewMethod("GetWorkspace", py_GetWorkspace, 0, ""),
		}

		globals := py.StringDict{
			"LIB_VERSION": py.String(LIB_VERSION),
			"PY_VERSION":  py.String("v3.4.0"),
		}

		py.RegisterModule(&py.ModuleImpl{
			Info: py.ModuleInfo{
				Name: "_pyonerel",
				Doc:  "one-relator group hyperbolicity gpython module",
			},
			Methods: methods,
			Globals: globals,
			OnContextClosed: func(m *py.Module) {
				wsObj, _ := py.GetAttrString(m, kWorkspaceAttr)
				if wsObj != nil {
					wsObj.(*Workspace).Close()
				}
			},
		})

	}
}
