// Package iostreams binds the prompt pipeline to real or in-memory
// terminals.
//
// Production code uses System, which wraps the process's standard
// streams. Tests use Test, which returns streams backed by buffers so
// prompts and answers can be asserted without a terminal.
package iostreams

import (
	"bufio"
	"bytes"
	"io"
	"os"

	"golang.org/x/term"
)

// FlushWriter is the output capability the prompt pipeline needs:
// writing bytes and forcing them out before blocking on input. Flush
// stays on the interface so a failed write and a failed flush remain
// distinguishable failures.
type FlushWriter interface {
	io.Writer
	Flush() error
}

// NopFlusher adds a no-op Flush to a writer that delivers immediately,
// such as a bytes.Buffer.
func NopFlusher(w io.Writer) FlushWriter {
	return nopFlusher{w}
}

type nopFlusher struct {
	io.Writer
}

func (nopFlusher) Flush() error { return nil }

// Streams holds the endpoints one prompt pipeline reads from and writes
// to. In is buffered so lines can be consumed one at a time; Out must be
// flushed after a prompt so it is visible before the read blocks.
type Streams struct {
	In     *bufio.Reader
	Out    FlushWriter
	ErrOut io.Writer

	// isTerminal allows mocking TTY detection in tests.
	isTerminal func(fd int) bool
	stdinFd    int
}

// System returns streams bound to the process's stdin, stdout and
// stderr. Stdout is buffered; ReadLine callers flush the prompt first.
func System() *Streams {
	return &Streams{
		In:         bufio.NewReader(os.Stdin),
		Out:        bufio.NewWriter(os.Stdout),
		ErrOut:     os.Stderr,
		isTerminal: term.IsTerminal,
		stdinFd:    int(os.Stdin.Fd()),
	}
}

// New returns streams over the given reader and writer. A nil reader or
// writer falls back to the corresponding system stream.
func New(r io.Reader, w FlushWriter) *Streams {
	s := System()
	if r != nil {
		s.In = bufio.NewReader(r)
	}
	if w != nil {
		s.Out = w
	}
	return s
}

// Test returns streams backed by in-memory buffers, plus the input and
// output buffers for seeding and assertions. TTY detection reports
// false, matching piped input.
func Test() (*Streams, *bytes.Buffer, *bytes.Buffer) {
	in := &bytes.Buffer{}
	out := &bytes.Buffer{}
	return &Streams{
		In:         bufio.NewReader(in),
		Out:        NopFlusher(out),
		ErrOut:     out,
		isTerminal: func(int) bool { return false },
	}, in, out
}

// ReadLine reads one line from In, including its terminator when one was
// present. It returns io.EOF once the source is exhausted; a final
// unterminated line is returned alongside io.EOF.
func (s *Streams) ReadLine() (string, error) {
	return s.In.ReadString('\n')
}

// IsInteractive reports whether standard input is a terminal. Streams
// built by Test report false. Callers can use this to skip prompting in
// CI pipelines.
func (s *Streams) IsInteractive() bool {
	if s.isTerminal == nil {
		return false
	}
	return s.isTerminal(s.stdinFd)
}
