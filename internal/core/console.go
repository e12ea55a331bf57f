// Console is the external collaborator contract (§6) for text I/O. The
// core only ever consumes this interface; a concrete terminal
// implementation lives in internal/console and is wired together with
// the core by cmd/gwbasic.
package core

// Console is the character-device abstraction the spec calls the
// "Console collaborator" (§6): printing, reading lines, clearing the
// screen, column tracking, and loading file text.
type Console interface {
	// Print writes text with no trailing newline and advances the
	// column tracker.
	Print(text string)
	// PrintLine writes text followed by a newline and resets the
	// column tracker.
	PrintLine(text string)
	// ReadLine reads one line of input (without its trailing newline)
	// from the user.
	ReadLine() (string, error)
	// ClearScreen clears the display.
	ClearScreen()
	// CurrentTextColumn returns the 1-based current column.
	CurrentTextColumn() int
	// AdjustToPosition pads with spaces (or emits a newline when
	// already past the target column) to land exactly on col (§4.3
	// TAB, §9 design note: the core requires exact column landing).
	AdjustToPosition(col int)
	// Flush flushes any buffered output.
	Flush()
	// ExitProgram terminates the host process (SYSTEM).
	ExitProgram()
	// ReadFileLines returns the text lines of a file, for LOAD.
	ReadFileLines(name string) ([]string, error)
	// Clone detaches a second handle sharing the same underlying
	// device, for nested evaluation contexts.
	Clone() Console
	// Log emits a diagnostic message; never part of program output.
	Log(msg string)
	// RequiresAsyncReadLine reports whether this console needs the
	// stepped/async read protocol (§4.5) instead of blocking reads.
	RequiresAsyncReadLine() bool
}
