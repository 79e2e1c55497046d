// Package gap drives an interactive GAP process over pipes, enough to query
// the walrus package's hyperbolicity certification.
package gap

import (
	"bufio"
	"fmt"
	"io"
	"os/exec"
	"strings"

	"github.com/pkg/errors"

	"github.com/cashenchris/onerelatorgroups/freegroup"
	"github.com/cashenchris/onerelatorgroups/onerel"
)

const (
	DefaultPrompt        = "gap>"
	DefaultFreeGroupName = "f"
	DefaultParameter     = "1/100"
)

// Opts specifies params for spawning a GAP session.
type Opts struct {
	GAPPath       string // GAP executable ("" means "gap" on PATH)
	Prompt        string // prompt pattern to sync on ("" means DefaultPrompt)
	FreeGroupName string // GAP variable naming the free group ("" means DefaultFreeGroupName)
}

func (opts *Opts) applyDefaults() {
	if opts.GAPPath == "" {
		opts.GAPPath = "gap"
	}
	if opts.Prompt == "" {
		opts.Prompt = DefaultPrompt
	}
	if opts.FreeGroupName == "" {
		opts.FreeGroupName = DefaultFreeGroupName
	}
}

// Session is a live GAP process.  It is a caller-owned scoped resource:
// whoever spawns it closes it.  Reads block until the prompt reappears, so
// the session is left ready for the next command after every exchange.
//
// Sessions are not safe for concurrent use.
type Session struct {
	opts   Opts
	cmd    *exec.Cmd
	stdin  io.WriteCloser
	stdout *bufio.Reader
	closed bool
}

// Spawn starts GAP in batch mode and syncs on the first prompt.
func Spawn(opts Opts) (*Session, error) {
	opts.applyDefaults()

	cmd := exec.Command(opts.GAPPath, "-b", "-q", "-T")
	stdin, err := cmd.StdinPipe()
	if err != nil {
		return nil, errors.Wrap(err, "gap stdin")
	}
	stdout, err := cmd.StdoutPipe()
	if err != nil {
		return nil, errors.Wrap(err, "gap stdout")
	}
	if err := cmd.Start(); err != nil {
		return nil, errors.Wrap(err, "spawning gap")
	}

	sess := &Session{
		opts:   opts,
		cmd:    cmd,
		stdin:  stdin,
		stdout: bufio.NewReader(stdout),
	}
	if _, err := sess.Expect(opts.Prompt); err != nil {
		sess.Close()
		return nil, err
	}
	return sess, nil
}

// SpawnForWalrus spawns GAP, loads the walrus package, and defines a free
// group of the given rank, leaving the session ready for hyperbolicity
// queries.
func SpawnForWalrus(rank int, opts Opts) (*Session, error) {
	sess, err := Spawn(opts)
	if err != nil {
		return nil, err
	}
	steps := []string{
		`LoadPackage("walrus");;`,
		fmt.Sprintf("%s:=FreeGroup(%d);;", sess.opts.FreeGroupName, rank),
	}
	for _, cmd := range steps {
		if err := sess.Send(cmd); err != nil {
			sess.Close()
			return nil, err
		}
		if _, err := sess.Expect(sess.opts.Prompt); err != nil {
			sess.Close()
			return nil, err
		}
	}
	return sess, nil
}

// FreeGroupName returns the GAP variable naming the session's free group.
func (sess *Session) FreeGroupName() string {
	return sess.opts.FreeGroupName
}

// Send writes one command line to the process.
func (sess *Session) Send(command string) error {
	if sess.closed {
		return onerel.ErrSessionClosed
	}
	_, err := io.WriteString(sess.stdin, command+"\n")
	return errors.Wrap(err, "gap send")
}

// Expect reads output until the given pattern appears, returning everything
// before the match.  The read blocks indefinitely; lifetime management is
// the caller's job.
func (sess *Session) Expect(pattern string) (string, error) {
	if sess.closed {
		return "", onerel.ErrSessionClosed
	}
	var buf strings.Builder
	for {
		b, err := sess.stdout.ReadByte()
		if err != nil {
			return buf.String(), errors.Wrap(err, "gap expect")
		}
		buf.WriteByte(b)
		if strings.HasSuffix(buf.String(), pattern) {
			return strings.TrimSuffix(buf.String(), pattern), nil
		}
	}
}

// Close shuts the process down.
func (sess *Session) Close() error {
	if sess.closed {
		return nil
	}
	sess.closed = true
	sess.stdin.Close()
	if sess.cmd == nil {
		return nil
	}
	return sess.cmd.Wait()
}

// CheckHyperbolicity asks walrus whether the one-relator group with the
// given relator is hyperbolic, with the given slack parameter ("" means
// DefaultParameter).  A "fail" reply from walrus means it could not certify
// hyperbolicity, not that the group is non-hyperbolic; any other reply is
// surfaced as an error with the raw output attached.
func (sess *Session) CheckHyperbolicity(relator freegroup.Word, parameter string) (bool, error) {
	if parameter == "" {
		parameter = DefaultParameter
	}
	name := sess.opts.FreeGroupName
	query := fmt.Sprintf("IsHyperbolic(PregroupPresentationFromFp(%s,[],[%s]),%s);",
		name, relator.GAPString(name), parameter)

	if err := sess.Send(query); err != nil {
		return false, err
	}
	output, err := sess.Expect(sess.opts.Prompt)
	if err != nil {
		return false, err
	}
	switch {
	case strings.Contains(output, "true"):
		return true, nil
	case strings.Contains(output, "fail"):
		return false, nil
	}
	return false, errors.Wrapf(onerel.ErrToolOutput, "walrus said %q", output)
}
