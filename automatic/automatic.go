// Package automatic shells out to the kbmag tools to compute shortlex
// automatic structures for one-relator presentations.
package automatic

import (
	"context"
	"fmt"
	"math/rand"
	"os"
	"os/exec"
	"path/filepath"
	"strings"
	"time"

	"github.com/pkg/errors"

	"github.com/cashenchris/onerelatorgroups/freegroup"
)

const DefaultTimeout = 10 * time.Second

// Opts specifies params for a kbmag run.
type Opts struct {
	BaseName   string        // kbmag file base name ("" derives one from the relator)
	Dir        string        // working directory ("" means the process cwd)
	Generators []string      // generator ordering ("" means [...,"B","A","a","b",...])
	Timeout    time.Duration // per-attempt limit on autgroup (0 means DefaultTimeout)
	TryHard    int           // extra attempts with shuffled generator orderings
	Cleanup    *bool         // delete working files afterwards; nil means "only if we created them"
	Reduce     Reducer       // word reduction override (nil means kbmag wordreduce)
}

func (opts *Opts) baseName(relator freegroup.Word) string {
	if opts.BaseName != "" {
		return opts.BaseName
	}
	return "OneRelatorGroup-" + relator.String()
}

func (opts *Opts) timeout() time.Duration {
	if opts.Timeout <= 0 {
		return DefaultTimeout
	}
	return opts.Timeout
}

// DefaultGenerators returns the default kbmag generator ordering for the
// given rank: inverses of the generators in reverse order, then the
// generators, e.g. rank 2 gives B, A, a, b.
func DefaultGenerators(rank int) []string {
	gens := freegroup.Generators(rank)
	order := make([]string, 0, 2*rank)
	for i := rank - 1; i >= 0; i-- {
		order = append(order, strings.ToUpper(gens[i]))
	}
	return append(order, gens...)
}

// inverseOf maps a single-letter generator name to its inverse's name.
func inverseOf(g string) string {
	if g == strings.ToLower(g) {
		return strings.ToUpper(g)
	}
	return strings.ToLower(g)
}

// WriteRWSFile writes a kbmag rewriting-system file declaring the given
// generator ordering and relator equations.
func WriteRWSFile(path string, generators []string, relators []string) error {
	var b strings.Builder
	b.WriteString("_RWS := rec(\n")
	b.WriteString("  isRWS := true,\n")
	b.WriteString("  ordering := \"shortlex\",\n")
	b.WriteString("  generatorOrder := [" + strings.Join(generators, ",") + "],\n")

	inverses := make([]string, len(generators))
	for i, g := range generators {
		inverses[i] = inverseOf(g)
	}
	b.WriteString("  inverses := [" + strings.Join(inverses, ",") + "],\n")

	b.WriteString("  equations := [\n")
	for i, r := range relators {
		sep := ","
		if i == len(relators)-1 {
			sep = ""
		}
		b.WriteString("    [" + spellOut(r) + ",IdWord]" + sep + "\n")
	}
	b.WriteString("  ]\n);\n")

	return os.WriteFile(path, []byte(b.String()), 0644)
}

// spellOut renders an alphabetic word as a kbmag product, "abA" -> "a*b*A".
func spellOut(word string) string {
	letters := make([]string, len(word))
	for i := 0; i < len(word); i++ {
		letters[i] = word[i : i+1]
	}
	return strings.Join(letters, "*")
}

// CertifyHyperbolicity runs kbmag's autgroup on the one-relator
// presentation.  Success means the group is shortlex automatic with
// word-difference machines certifying hyperbolicity; failure (timeout or
// nonzero exit) removes any working files this call created and returns
// the error rather than degrading to an inconclusive answer.
//
// With TryHard > 0, failed attempts are retried with random generator
// orderings, which sometimes lets the knuth-bendix pass complete.
func CertifyHyperbolicity(relator freegroup.Word, opts Opts) (bool, error) {
	if len(relator) == 0 {
		return true, nil
	}
	base := opts.baseName(relator)
	path := filepath.Join(opts.Dir, base)

	generators := opts.Generators
	if generators == nil {
		generators = DefaultGenerators(relator.Rank())
	}

	attempts := 1 + opts.TryHard
	var lastErr error
	for attempt := 0; attempt < attempts; attempt++ {
		order := generators
		if attempt > 0 {
			order = append([]string{}, generators...)
			rand.Shuffle(len(order), func(i, j int) {
				order[i], order[j] = order[j], order[i]
			})
		}
		ok, err := runAutgroup(relator, path, base, order, opts)
		if err == nil {
			return ok, nil
		}
		lastErr = err
	}
	return false, lastErr
}

func runAutgroup(relator freegroup.Word, path, base string, generators []string, opts Opts) (bool, error) {
	preExisting := fileExists(path)
	cleanup := !preExisting
	if opts.Cleanup != nil {
		cleanup = *opts.Cleanup
	}

	if !preExisting {
		if err := WriteRWSFile(path, generators, []string{relator.String()}); err != nil {
			return false, errors.Wrap(err, "writing rws file")
		}
	}

	if fileExists(path + ".diff1") {
		return true, nil // automatic structure already computed
	}

	ctx, cancel := context.WithTimeout(context.Background(), opts.timeout())
	defer cancel()

	cmd := exec.CommandContext(ctx, "autgroup", "-silent", base)
	cmd.Dir = opts.Dir
	if err := cmd.Run(); err != nil {
		if cleanup {
			removeWorkingFiles(path)
		}
		if ctx.Err() == context.DeadlineExceeded {
			return false, errors.Wrapf(ctx.Err(), "autgroup timed out after %v", opts.timeout())
		}
		return false, errors.Wrap(err, "autgroup")
	}
	return true, nil
}

func fileExists(path string) bool {
	_, err := os.Stat(path)
	return err == nil
}

func removeWorkingFiles(path string) {
	files, _ := filepath.Glob(path + "*")
	for _, f := range files {
		os.Remove(f)
	}
}

// ReduceWord runs kbmag's wordreduce against a previously computed
// automatic structure, returning the shortlex normal form of the given
// alphabetic word.
func ReduceWord(word, path string) (string, error) {
	cmd := exec.Command("wordreduce", "-diff2", filepath.Base(path))
	cmd.Dir = filepath.Dir(path)
	cmd.Stdin = strings.NewReader(spellOut(word) + ";\n")
	out, err := cmd.Output()
	if err != nil {
		return "", errors.Wrap(err, "wordreduce")
	}
	return parseReducedWord(string(out))
}

// parseReducedWord extracts the reduced word from wordreduce output, which
// echoes a product of generators ("a*b*A") possibly with powers ("a^2")
// terminated by a semicolon.  "IdWord" denotes the empty word.
func parseReducedWord(out string) (string, error) {
	end := strings.LastIndex(out, ";")
	if end < 0 {
		return "", errors.Errorf("unterminated wordreduce output %q", out)
	}
	start := strings.LastIndex(out[:end], "=")
	expr := strings.TrimSpace(out[start+1 : end])
	if expr == "IdWord" {
		return "", nil
	}
	var b strings.Builder
	for _, factor := range strings.Split(expr, "*") {
		factor = strings.TrimSpace(factor)
		name, count := factor, 1
		if caret := strings.Index(factor, "^"); caret >= 0 {
			name = factor[:caret]
			if _, err := fmt.Sscanf(factor[caret+1:], "%d", &count); err != nil {
				return "", errors.Errorf("bad wordreduce factor %q", factor)
			}
		}
		for i := 0; i < count; i++ {
			b.WriteString(name)
		}
	}
	return b.String(), nil
}
