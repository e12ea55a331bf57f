package console

import (
	"bytes"
	"io"
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func TestPrintTracksColumn(t *testing.T) {
	var buf bytes.Buffer
	term := New(&buf, strings.NewReader(""), false)
	term.Print("HELLO")
	if got := term.CurrentTextColumn(); got != 6 {
		t.Errorf("expected column 6 after printing 5 characters, got %d", got)
	}
}

func TestPrintLineResetsColumn(t *testing.T) {
	var buf bytes.Buffer
	term := New(&buf, strings.NewReader(""), false)
	term.Print("AB")
	term.PrintLine("CD")
	if got := term.CurrentTextColumn(); got != 1 {
		t.Errorf("expected column 1 after PrintLine, got %d", got)
	}
	if buf.String() != "ABCD\n" {
		t.Errorf("unexpected output %q", buf.String())
	}
}

func TestAdjustToPositionPadsForward(t *testing.T) {
	var buf bytes.Buffer
	term := New(&buf, strings.NewReader(""), false)
	term.Print("AB")
	term.AdjustToPosition(10)
	if got := term.CurrentTextColumn(); got != 10 {
		t.Errorf("expected column 10, got %d", got)
	}
	if buf.String() != "AB"+strings.Repeat(" ", 7) {
		t.Errorf("unexpected output %q", buf.String())
	}
}

func TestAdjustToPositionWrapsWhenPastColumn(t *testing.T) {
	var buf bytes.Buffer
	term := New(&buf, strings.NewReader(""), false)
	term.Print("0123456789")
	term.AdjustToPosition(3)
	if got := term.CurrentTextColumn(); got != 3 {
		t.Errorf("expected column 3 after wrapping, got %d", got)
	}
	if !strings.HasSuffix(buf.String(), "\n  ") {
		t.Errorf("expected a newline then two pad spaces, got %q", buf.String())
	}
}

func TestReadLineStripsNewline(t *testing.T) {
	term := New(&bytes.Buffer{}, strings.NewReader("HELLO\r\n"), false)
	line, err := term.ReadLine()
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if line != "HELLO" {
		t.Errorf("expected HELLO, got %q", line)
	}
}

func TestRequiresAsyncReadLineIsFalse(t *testing.T) {
	term := New(&bytes.Buffer{}, strings.NewReader(""), false)
	if term.RequiresAsyncReadLine() {
		t.Errorf("a terminal console must never require the async read protocol")
	}
}

func TestReadFileLinesStripsTrailingBlankLine(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "prog.bas")
	if err := os.WriteFile(path, []byte("10 PRINT \"HI\"\r\n20 END\r\n"), 0o644); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	term := New(&bytes.Buffer{}, strings.NewReader(""), false)
	lines, err := term.ReadFileLines(path)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	want := []string{`10 PRINT "HI"`, "20 END"}
	if len(lines) != len(want) {
		t.Fatalf("expected %d lines, got %d: %#v", len(want), len(lines), lines)
	}
	for i := range want {
		if lines[i] != want[i] {
			t.Errorf("line %d = %q, want %q", i, lines[i], want[i])
		}
	}
}

func TestLogOnlyWritesWhenVerbose(t *testing.T) {
	// Log writes to os.Stderr, not the console's own writer, so capture
	// os.Stderr through a pipe for the duration of the two calls.
	r, w, err := os.Pipe()
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	saved := os.Stderr
	os.Stderr = w
	New(&bytes.Buffer{}, strings.NewReader(""), false).Log("should be suppressed")
	New(&bytes.Buffer{}, strings.NewReader(""), true).Log("should appear")
	os.Stderr = saved
	w.Close()
	data, err := io.ReadAll(r)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if got, want := string(data), "[gwbasic] should appear\n"; got != want {
		t.Errorf("stderr = %q, want %q", got, want)
	}
}
