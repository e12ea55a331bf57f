package miniparser

import (
	"errors"
	"strings"

	"github.com/rgwbasic/gwbasic/internal/ast"
	"github.com/rgwbasic/gwbasic/internal/core"
)

var errUnexpectedTrailing = errors.New("unexpected text after statement")

// Parser is the reference implementation of core.Parser (§6), built for
// a self-contained `gwbasic` binary to have something runnable behind
// the interface. It has no persistent state: every call starts a fresh
// tokenizer over the supplied text.
type Parser struct{}

var _ core.Parser = Parser{}

// New creates a stateless Parser.
func New() Parser { return Parser{} }

// ParseProgramLine parses one stored-program source line: a leading
// line-number label followed by one or more colon-chained statements
// (§3 Program line, §4.3). A blank line yields ParseNothing; any other
// line without a label (a bare REM included) is a ParseError, since a
// program line without a label cannot be stored.
func (Parser) ParseProgramLine(text string) core.ParsedLine {
	trimmed := strings.TrimSpace(text)
	if trimmed == "" {
		return core.ParsedLine{Outcome: core.ParseNothing}
	}

	p := newParserState(trimmed)
	if p.tok.Kind != TokNumber || p.tok.NumKind != NumInt {
		return core.ParsedLine{Outcome: core.ParseError, Err: "expected a line number"}
	}
	label, err := parseIntLiteral(p.tok.NumText)
	if err != nil {
		return core.ParsedLine{Outcome: core.ParseError, Err: err.Error()}
	}
	p.advance()

	if p.tok.Kind == TokEOF {
		// A bare line number with nothing after it deletes that line in
		// a real interpreter; the core has no "delete" concept, so
		// model it as a no-op REM (§4.3 LIST/edit is out of scope).
		return core.ParsedLine{
			Outcome: core.ParseSuccess,
			Line: core.ProgramLine{
				Label:   int(label),
				Primary: ast.RemStmt{},
			},
		}
	}

	stmts, err := p.parseStmtChain()
	if err != nil {
		return core.ParsedLine{Outcome: core.ParseError, Err: err.Error()}
	}
	return core.ParsedLine{
		Outcome: core.ParseSuccess,
		Line: core.ProgramLine{
			Label:    int(label),
			Primary:  stmts[0],
			Trailing: stmts[1:],
		},
	}
}

// ParseImmediate parses one direct-mode line: a single statement with
// no label (§6 "parsing one line of direct-mode (no label) input").
// Only the first statement of a colon chain is honoured; immediate mode
// in this dialect executes one instruction at a time.
func (Parser) ParseImmediate(text string) core.ParsedInstruction {
	trimmed := strings.TrimSpace(text)
	if trimmed == "" {
		return core.ParsedInstruction{Outcome: core.ParseNothing}
	}
	p := newParserState(trimmed)
	stmt, err := p.parseStmt()
	if err != nil {
		return core.ParsedInstruction{Outcome: core.ParseError, Err: err.Error()}
	}
	return core.ParsedInstruction{Outcome: core.ParseSuccess, Instruction: stmt}
}

func (p *parser) parseStmtChain() ([]ast.Stmt, error) {
	var out []ast.Stmt
	for {
		s, err := p.parseStmt()
		if err != nil {
			return nil, err
		}
		out = append(out, s)
		if p.tok.Kind != TokColon {
			break
		}
		p.advance()
	}
	if p.tok.Kind != TokEOF {
		return nil, errUnexpectedTrailing
	}
	return out, nil
}
