// Package iostreams abstracts standard I/O so commands can be tested with
// in-memory buffers.
package iostreams

import (
	"bytes"
	"io"
	"os"

	"golang.org/x/term"
)

// IOStreams bundles the process streams with TTY detection.
type IOStreams struct {
	In     io.Reader
	Out    io.Writer
	ErrOut io.Writer

	// isTerminalFunc allows mocking of TTY detection
	isTerminalFunc func(fd int) bool
	errFd          int
}

// System returns IOStreams connected to os.Stdin/Stdout/Stderr.
func System() *IOStreams {
	return &IOStreams{
		In:             os.Stdin,
		Out:            os.Stdout,
		ErrOut:         os.Stderr,
		isTerminalFunc: term.IsTerminal,
		errFd:          int(os.Stderr.Fd()),
	}
}

// IsInteractive reports whether ErrOut is attached to a terminal, i.e.
// whether someone is watching for hints.
func (s *IOStreams) IsInteractive() bool {
	if s.isTerminalFunc == nil {
		return false
	}
	return s.isTerminalFunc(s.errFd)
}

// Test returns IOStreams backed by buffers, simulating a terminal when
// interactive is true.
func Test(interactive bool) (*IOStreams, *bytes.Buffer, *bytes.Buffer) {
	out := &bytes.Buffer{}
	errOut := &bytes.Buffer{}
	return &IOStreams{
		In:             &bytes.Buffer{},
		Out:            out,
		ErrOut:         errOut,
		isTerminalFunc: func(int) bool { return interactive },
	}, out, errOut
}
