// Parser is the external collaborator contract (§6) that turns program
// text into AST nodes. The core never inspects tokens, only assembled
// nodes; a reference implementation lives in internal/miniparser.
package core

import "github.com/rgwbasic/gwbasic/internal/ast"

// ParseOutcome tags the three outcomes a parse call can produce (§6):
// a parsed node, a parse error message, or nothing (a blank/comment-only
// line that contributes no node).
type ParseOutcome int

const (
	ParseSuccess ParseOutcome = iota
	ParseError
	ParseNothing
)

// ParsedLine is the result of parsing a program-line source line.
type ParsedLine struct {
	Outcome ParseOutcome
	Line    ProgramLine
	Err     string
}

// ParsedInstruction is the result of parsing an immediate-mode line.
type ParsedInstruction struct {
	Outcome     ParseOutcome
	Instruction ast.Stmt
	Err         string
}

// Parser is the "Parser collaborator" of §6.
type Parser interface {
	ParseProgramLine(text string) ParsedLine
	ParseImmediate(text string) ParsedInstruction
}
