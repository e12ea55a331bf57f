// Package console provides a concrete terminal implementation of the
// core.Console collaborator contract (§6). It is a reference adapter,
// not core logic: the core only ever depends on the core.Console
// interface, never on this package directly (spec.md §1's
// core/collaborator boundary).
//
// Grounded on original_source/rgwbasic-console/src/defaultconsole.rs's
// DefaultConsole: column tracking for TAB, blocking stdin reads, and a
// real filesystem-backed ReadFileLines for LOAD.
package console

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/rgwbasic/gwbasic/internal/core"
)

// Terminal is a synchronous, blocking-read console bound to a pair of
// io.Reader/io.Writer streams (stdin/stdout in production, in-memory
// buffers in tests).
type Terminal struct {
	out     io.Writer
	in      *bufio.Reader
	column  int // 0-based column of the next character to be written
	verbose bool
}

var _ core.Console = (*Terminal)(nil)

// New creates a Terminal console writing to out and reading from in.
func New(out io.Writer, in io.Reader, verbose bool) *Terminal {
	return &Terminal{out: out, in: bufio.NewReader(in), verbose: verbose}
}

// NewStdio creates a Terminal console bound to os.Stdout/os.Stdin, the
// default console a running `gwbasic` binary uses (§6 CLI surface).
func NewStdio(verbose bool) *Terminal {
	return New(os.Stdout, os.Stdin, verbose)
}

func (t *Terminal) Print(text string) {
	fmt.Fprint(t.out, text)
	if idx := strings.LastIndexByte(text, '\n'); idx >= 0 {
		t.column = len(text) - idx - 1
	} else {
		t.column += len(text)
	}
}

func (t *Terminal) PrintLine(text string) {
	fmt.Fprintln(t.out, text)
	t.column = 0
}

func (t *Terminal) ReadLine() (string, error) {
	line, err := t.in.ReadString('\n')
	if err != nil && err != io.EOF {
		return "", err
	}
	return strings.TrimRight(line, "\r\n"), nil
}

func (t *Terminal) ClearScreen() {
	fmt.Fprint(t.out, "\x1b[H\x1b[2J")
	t.column = 0
}

func (t *Terminal) CurrentTextColumn() int {
	return t.column + 1
}

// AdjustToPosition lands the cursor exactly on the 1-based column col
// (§4.3 TAB, §F Open Question decision: exact landing rather than the
// source's one-space-short behaviour). If the cursor has already
// passed col, a newline starts a fresh line before padding.
func (t *Terminal) AdjustToPosition(col int) {
	if col < 1 {
		col = 1
	}
	current := t.CurrentTextColumn()
	if current > col {
		t.PrintLine("")
		current = t.CurrentTextColumn()
	}
	if current < col {
		t.Print(strings.Repeat(" ", col-current))
	}
}

func (t *Terminal) Flush() {
	if f, ok := t.out.(interface{ Sync() error }); ok {
		_ = f.Sync()
	}
}

func (t *Terminal) ExitProgram() {
	os.Exit(0)
}

func (t *Terminal) ReadFileLines(name string) ([]string, error) {
	data, err := os.ReadFile(name)
	if err != nil {
		return nil, err
	}
	text := strings.ReplaceAll(string(data), "\r\n", "\n")
	lines := strings.Split(text, "\n")
	if len(lines) > 0 && lines[len(lines)-1] == "" {
		lines = lines[:len(lines)-1]
	}
	return lines, nil
}

// Clone detaches a second handle sharing the same underlying streams,
// with a fresh column tracker (§6: "for detaching a second handle into
// a fresh context").
func (t *Terminal) Clone() core.Console {
	return &Terminal{out: t.out, in: t.in, verbose: t.verbose}
}

func (t *Terminal) Log(msg string) {
	if t.verbose {
		fmt.Fprintf(os.Stderr, "[gwbasic] %s\n", msg)
	}
}

// RequiresAsyncReadLine reports false: a terminal-backed console blocks
// on stdin directly rather than suspending through the stepped driver
// (§F Open Question decision).
func (t *Terminal) RequiresAsyncReadLine() bool {
	return false
}
