package freegroup

import (
	"strconv"
	"strings"

	"github.com/alecthomas/participle/v2"
	"github.com/pkg/errors"

	"github.com/cashenchris/onerelatorgroups/onerel"
)

// Word expression grammar.
//
// A word literal is a product of factors joined with '*', where a factor is
// an alphabetic run ("abAB"), a bracketed letter list ("[1,2,-1,-2]"), or a
// parenthesized sub-expression, optionally raised to an integer power:
//
//	abAB
//	[1,2,-1,-2]
//	(ab)^3 * aba^-2
type WordExpr struct {
	Factors []*WordFactor `parser:"@@ (\"*\" @@)*"`
}

type WordFactor struct {
	Base *WordBase `parser:"@@"`
	Exp  *string   `parser:"(\"^\" @(\"-\"? Int))?"`
}

type WordBase struct {
	Run  string    `parser:"@Ident"`
	Ints []string  `parser:"| \"[\" (@(\"-\"? Int) (\",\" @(\"-\"? Int))*)? \"]\""`
	Sub  *WordExpr `parser:"| \"(\" @@ \")\""`
}

var parseWordExpr = participle.MustBuild[WordExpr]()

// Parse builds a Word from a word expression.
// The empty (or all-whitespace) expression parses as the empty word.
func Parse(expr string) (Word, error) {
	trimmed := strings.TrimSpace(expr)
	if trimmed == "" || trimmed == "[]" {
		return Word{}, nil
	}

	ast, err := parseWordExpr.ParseString("", trimmed)
	if err != nil {
		return nil, errors.Wrapf(onerel.ErrBadWordExpr, "%v", err)
	}
	return buildExpr(ast)
}

// MustParse is Parse for hard-coded word literals.
func MustParse(expr string) Word {
	w, err := Parse(expr)
	if err != nil {
		panic(err)
	}
	return w
}

func buildExpr(expr *WordExpr) (Word, error) {
	w := Word{}
	for _, f := range expr.Factors {
		base, err := buildBase(f.Base)
		if err != nil {
			return nil, err
		}
		if f.Exp != nil {
			n, err := strconv.Atoi(*f.Exp)
			if err != nil {
				return nil, errors.Wrapf(onerel.ErrBadWordExpr, "exponent %q", *f.Exp)
			}
			base = base.Pow(n)
		}
		w = Mul(w, base)
	}
	return w, nil
}

func buildBase(base *WordBase) (Word, error) {
	switch {
	case base.Run != "":
		letters := make([]int, 0, len(base.Run))
		for _, r := range base.Run {
			switch {
			case r >= 'a' && r <= 'z':
				letters = append(letters, int(r-'a')+1)
			case r >= 'A' && r <= 'Z':
				letters = append(letters, -(int(r-'A') + 1))
			default:
				return nil, errors.Wrapf(onerel.ErrBadLetter, "%q", r)
			}
		}
		return Reduce(letters), nil

	case base.Sub != nil:
		return buildExpr(base.Sub)

	default:
		letters := make([]int, 0, len(base.Ints))
		for _, s := range base.Ints {
			x, err := strconv.Atoi(s)
			if err != nil || x == 0 {
				return nil, errors.Wrapf(onerel.ErrBadLetter, "%q", s)
			}
			letters = append(letters, x)
		}
		return Reduce(letters), nil
	}
}
