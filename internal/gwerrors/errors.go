// Package gwerrors formats the core's fatal runtime and parse errors.
//
// Grounded on the teacher's internal/errors package (CompilerError/Format):
// the same shape — message, offending source line, a caret pointing at the
// start of the statement after the label — adapted from DWScript's line/column positions to BASIC's
// line-numbered-label positions, since the core has no column information
// to offer (expressions don't carry token spans in this dialect).
package gwerrors

import (
	"fmt"
	"strings"
)

// RuntimeError is a fatal error produced by instruction or expression
// evaluation (§7). The driver never recovers from one: it prints the
// formatted message and halts (§4.6).
type RuntimeError struct {
	Message string
	Label   int // program line label, -1 if not associated with one (e.g. immediate mode)
	Source  string
}

func New(label int, source, format string, args ...any) *RuntimeError {
	return &RuntimeError{
		Message: fmt.Sprintf(format, args...),
		Label:   label,
		Source:  source,
	}
}

func (e *RuntimeError) Error() string {
	return e.Format()
}

// Format renders "RUNTIME ERROR: <message>", preceded by the labelled
// source line and a caret under the start of the statement text when a
// label and source are available, matching the
// teacher's CompilerError.Format but without ANSI colour (the BASIC shell
// targets plain terminals).
func (e *RuntimeError) Format() string {
	var sb strings.Builder
	if e.Label >= 0 && e.Source != "" {
		sb.WriteString(fmt.Sprintf("%d %s\n", e.Label, e.Source))
		sb.WriteString(strings.Repeat(" ", len(fmt.Sprintf("%d ", e.Label))))
		sb.WriteString("^\n")
	}
	sb.WriteString("RUNTIME ERROR: ")
	sb.WriteString(e.Message)
	return sb.String()
}

// ParseError is a non-fatal error produced while loading/parsing a
// program line (§4.6: "Parse errors during LOAD are reported per-line and
// abort loading but do not terminate the host shell.").
type ParseError struct {
	Line    int // 1-based input line number, not a BASIC label
	Message string
	Source  string
}

func (e *ParseError) Error() string {
	return e.Format()
}

func (e *ParseError) Format() string {
	if e.Source == "" {
		return fmt.Sprintf("Line %d Error: %s", e.Line, e.Message)
	}
	return fmt.Sprintf("Line %d Error: %s\n  %s", e.Line, e.Message, e.Source)
}

// Common fatal-error message constants (§7 taxonomy), used so call sites
// don't repeat the exact wording.
const (
	TypeMismatch        = "Type mismatch"
	SubscriptOutOfRange = "Subscript out of range"
	InvalidDimension    = "Invalid dimension"
	DimensionsRequired  = "Dimensions are required"
	NextWithoutFor      = "NEXT WITHOUT FOR"
	ForWithoutNext      = "FOR WITHOUT NEXT"
	WendWithoutWhile    = "WEND WITHOUT WHILE"
	WhileWithoutWend    = "WHILE WITHOUT WEND"
	ReturnNoPlace       = "RETURN: no place to return"
	OutOfData           = "OUT OF DATA"
	IllegalFunctionCall = "Illegal function call"
	UndefinedLine       = "Undefined line number"
	InvalidValue        = "Invalid value"
	InvalidFunctionCall = "Invalid function call"
	RedoFromStart       = "Redo from start"
)
