package miniparser

import (
	"fmt"
	"strings"

	"github.com/rgwbasic/gwbasic/internal/ast"
)

func isKeyword(name, kw string) bool {
	return strings.EqualFold(name, kw)
}

// parseStmt parses one statement (everything up to a `:` chain
// separator or end of line). Grammar grounded on
// original_source's parser module for keyword spelling and the shape
// of each statement's argument list (§4.3).
func (p *parser) parseStmt() (ast.Stmt, error) {
	if p.tok.Kind != TokIdent {
		return nil, fmt.Errorf("expected a statement")
	}
	word := strings.ToUpper(p.tok.Text)

	switch word {
	case "LET":
		p.advance()
		return p.parseAssignmentBody()
	case "GOTO":
		p.advance()
		n, err := p.parseLabel()
		if err != nil {
			return nil, err
		}
		return ast.GotoStmt{Label: n}, nil
	case "GOSUB":
		p.advance()
		n, err := p.parseLabel()
		if err != nil {
			return nil, err
		}
		return ast.GosubStmt{Label: n}, nil
	case "RETURN":
		p.advance()
		return ast.ReturnStmt{}, nil
	case "ON":
		return p.parseOnGoto()
	case "IF":
		return p.parseIf()
	case "FOR":
		return p.parseFor()
	case "NEXT":
		p.advance()
		name := ""
		if p.tok.Kind == TokIdent {
			name = p.tok.Text
			p.advance()
		}
		return ast.NextStmt{Var: name}, nil
	case "WHILE":
		p.advance()
		cond, err := p.parseExpr()
		if err != nil {
			return nil, err
		}
		return ast.WhileStmt{Cond: cond}, nil
	case "WEND":
		p.advance()
		return ast.WendStmt{}, nil
	case "PRINT":
		return p.parsePrint()
	case "INPUT":
		return p.parseInput()
	case "DATA":
		return p.parseData()
	case "READ":
		return p.parseRead()
	case "DIM":
		return p.parseDim()
	case "DEFINT", "DEFSNG", "DEFDBL", "DEFSTR":
		return p.parseDefType(word)
	case "SWAP":
		return p.parseSwap()
	case "REM":
		text := p.lex.input[p.lex.pos:]
		p.tok = Token{Kind: TokEOF}
		return ast.RemStmt{Text: strings.TrimSpace(text)}, nil
	case "CLS":
		p.advance()
		return ast.ClsStmt{}, nil
	case "END":
		p.advance()
		return ast.EndStmt{}, nil
	case "STOP":
		p.advance()
		return ast.StopStmt{}, nil
	case "LIST":
		p.advance()
		return ast.ListStmt{}, nil
	case "RUN":
		p.advance()
		return ast.RunStmt{}, nil
	case "SYSTEM":
		p.advance()
		return ast.SystemStmt{}, nil
	case "LOAD":
		p.advance()
		if p.tok.Kind != TokString {
			return nil, fmt.Errorf("expected a filename string")
		}
		name := p.tok.Text
		p.advance()
		return ast.LoadStmt{Filename: name}, nil
	default:
		return p.parseAssignmentBody()
	}
}

// parseAssignmentBody handles both implicit LET and array-element
// assignment: `name = expr` or `name(idx,...) = expr` (§4.3).
func (p *parser) parseAssignmentBody() (ast.Stmt, error) {
	if p.tok.Kind != TokIdent {
		return nil, fmt.Errorf("expected a variable name")
	}
	name := p.tok.Text
	p.advance()

	if p.tok.Kind == TokLParen {
		p.advance()
		var indices []ast.Expr
		for {
			idx, err := p.parseExpr()
			if err != nil {
				return nil, err
			}
			indices = append(indices, idx)
			if p.tok.Kind != TokComma {
				break
			}
			p.advance()
		}
		if err := p.expect(TokRParen, "`)`"); err != nil {
			return nil, err
		}
		if err := p.expect(TokEq, "`=`"); err != nil {
			return nil, err
		}
		val, err := p.parseExpr()
		if err != nil {
			return nil, err
		}
		return ast.ArrayAssignStmt{Name: name, Indices: indices, Value: val}, nil
	}

	if err := p.expect(TokEq, "`=`"); err != nil {
		return nil, err
	}
	val, err := p.parseExpr()
	if err != nil {
		return nil, err
	}
	return ast.LetStmt{Name: name, Value: val}, nil
}

func (p *parser) parseLabel() (int, error) {
	if p.tok.Kind != TokNumber || p.tok.NumKind != NumInt {
		return 0, fmt.Errorf("expected a line number")
	}
	n, err := parseIntLiteral(p.tok.NumText)
	p.advance()
	return int(n), err
}

func (p *parser) parseOnGoto() (ast.Stmt, error) {
	p.advance() // ON
	sel, err := p.parseExpr()
	if err != nil {
		return nil, err
	}
	if p.tok.Kind != TokIdent || !isKeyword(p.tok.Text, "GOTO") {
		return nil, fmt.Errorf("expected GOTO")
	}
	p.advance()
	var labels []int
	for {
		n, err := p.parseLabel()
		if err != nil {
			return nil, err
		}
		labels = append(labels, n)
		if p.tok.Kind != TokComma {
			break
		}
		p.advance()
	}
	return ast.OnGotoStmt{Selector: sel, Labels: labels}, nil
}

func (p *parser) parseIf() (ast.Stmt, error) {
	p.advance() // IF
	cond, err := p.parseExpr()
	if err != nil {
		return nil, err
	}
	if p.tok.Kind != TokIdent || !isKeyword(p.tok.Text, "THEN") {
		return nil, fmt.Errorf("expected THEN")
	}
	p.advance()

	// Form A: `IF ... THEN <line number>`.
	if p.tok.Kind == TokNumber && p.tok.NumKind == NumInt {
		n, err := p.parseLabel()
		if err != nil {
			return nil, err
		}
		return ast.IfStmt{Cond: cond, ThenLabel: n}, nil
	}

	// Form B: `IF ... THEN stmt [: stmt ...]`.
	var stmts []ast.Stmt
	for {
		s, err := p.parseStmt()
		if err != nil {
			return nil, err
		}
		stmts = append(stmts, s)
		if p.tok.Kind != TokColon {
			break
		}
		p.advance()
	}
	return ast.IfStmt{Cond: cond, ThenStmts: stmts}, nil
}

func (p *parser) parseFor() (ast.Stmt, error) {
	p.advance() // FOR
	if p.tok.Kind != TokIdent {
		return nil, fmt.Errorf("expected a loop variable")
	}
	v := p.tok.Text
	p.advance()
	if err := p.expect(TokEq, "`=`"); err != nil {
		return nil, err
	}
	from, err := p.parseExpr()
	if err != nil {
		return nil, err
	}
	if p.tok.Kind != TokIdent || !isKeyword(p.tok.Text, "TO") {
		return nil, fmt.Errorf("expected TO")
	}
	p.advance()
	to, err := p.parseExpr()
	if err != nil {
		return nil, err
	}
	var step ast.Expr
	if p.tok.Kind == TokIdent && isKeyword(p.tok.Text, "STEP") {
		p.advance()
		step, err = p.parseExpr()
		if err != nil {
			return nil, err
		}
	}
	return ast.ForStmt{Var: v, From: from, To: to, Step: step}, nil
}

func (p *parser) parsePrint() (ast.Stmt, error) {
	p.advance() // PRINT
	if p.tok.Kind == TokIdent && isKeyword(p.tok.Text, "USING") {
		return p.parsePrintUsing()
	}

	var items []ast.PrintItem
	for p.tok.Kind != TokEOF && p.tok.Kind != TokColon {
		var item ast.PrintItem
		if p.tok.Kind == TokIdent && isKeyword(p.tok.Text, "TAB") {
			p.advance()
			if err := p.expect(TokLParen, "`(`"); err != nil {
				return nil, err
			}
			col, err := p.parseExpr()
			if err != nil {
				return nil, err
			}
			if err := p.expect(TokRParen, "`)`"); err != nil {
				return nil, err
			}
			item.Tab = col
		} else if p.tok.Kind != TokComma && p.tok.Kind != TokSemicolon {
			e, err := p.parseExpr()
			if err != nil {
				return nil, err
			}
			item.Expr = e
		}
		if p.tok.Kind == TokComma || p.tok.Kind == TokSemicolon {
			item.HasSep = true
			if p.tok.Kind == TokComma {
				item.Sep = ','
			} else {
				item.Sep = ';'
			}
			p.advance()
		}
		items = append(items, item)
	}
	return ast.PrintStmt{Items: items}, nil
}

func (p *parser) parsePrintUsing() (ast.Stmt, error) {
	p.advance() // USING
	format, err := p.parseExpr()
	if err != nil {
		return nil, err
	}
	if p.tok.Kind != TokSemicolon {
		return nil, fmt.Errorf("expected `;` after PRINT USING format")
	}
	p.advance()
	var args []ast.Expr
	trailing := false
	for p.tok.Kind != TokEOF && p.tok.Kind != TokColon {
		a, err := p.parseExpr()
		if err != nil {
			return nil, err
		}
		args = append(args, a)
		if p.tok.Kind == TokSemicolon {
			trailing = true
			p.advance()
			if p.tok.Kind == TokEOF || p.tok.Kind == TokColon {
				break
			}
			trailing = false
			continue
		}
		if p.tok.Kind == TokComma {
			p.advance()
			continue
		}
		break
	}
	return ast.PrintUsingStmt{Format: format, Args: args, TrailingSemicolon: trailing}, nil
}

func (p *parser) parseInput() (ast.Stmt, error) {
	p.advance() // INPUT
	prompt := ""
	hasText := false
	if p.tok.Kind == TokString {
		prompt = p.tok.Text
		hasText = true
		p.advance()
		if p.tok.Kind == TokComma || p.tok.Kind == TokSemicolon {
			p.advance()
		}
	}
	var targets []string
	for {
		if p.tok.Kind != TokIdent {
			return nil, fmt.Errorf("expected an INPUT target variable")
		}
		targets = append(targets, p.tok.Text)
		p.advance()
		if p.tok.Kind != TokComma {
			break
		}
		p.advance()
	}
	return ast.InputStmt{Prompt: prompt, HasText: hasText, Targets: targets}, nil
}

func (p *parser) parseData() (ast.Stmt, error) {
	p.advance() // DATA
	var items []string
	for p.tok.Kind != TokEOF && p.tok.Kind != TokColon {
		switch p.tok.Kind {
		case TokString:
			items = append(items, p.tok.Text)
			p.advance()
		case TokNumber:
			items = append(items, p.tok.NumText)
			p.advance()
		case TokIdent:
			items = append(items, p.tok.Text)
			p.advance()
		default:
			return nil, fmt.Errorf("unexpected token in DATA")
		}
		if p.tok.Kind == TokComma {
			p.advance()
		}
	}
	return ast.DataStmt{Items: items}, nil
}

func (p *parser) parseRead() (ast.Stmt, error) {
	p.advance() // READ
	var targets []string
	for {
		if p.tok.Kind != TokIdent {
			return nil, fmt.Errorf("expected a READ target variable")
		}
		targets = append(targets, p.tok.Text)
		p.advance()
		if p.tok.Kind != TokComma {
			break
		}
		p.advance()
	}
	return ast.ReadStmt{Targets: targets}, nil
}

func (p *parser) parseDim() (ast.Stmt, error) {
	p.advance() // DIM
	if p.tok.Kind != TokIdent {
		return nil, fmt.Errorf("expected an array name")
	}
	name := p.tok.Text
	p.advance()
	if err := p.expect(TokLParen, "`(`"); err != nil {
		return nil, err
	}
	var dims []ast.Expr
	for {
		d, err := p.parseExpr()
		if err != nil {
			return nil, err
		}
		dims = append(dims, d)
		if p.tok.Kind != TokComma {
			break
		}
		p.advance()
	}
	if err := p.expect(TokRParen, "`)`"); err != nil {
		return nil, err
	}
	return ast.DimStmt{Name: name, Dims: dims}, nil
}

func (p *parser) parseDefType(word string) (ast.Stmt, error) {
	p.advance()
	kindName := map[string]string{
		"DEFINT": "INTEGER", "DEFSNG": "SINGLE", "DEFDBL": "DOUBLE", "DEFSTR": "STRING",
	}[word]
	var ranges []ast.DefTypeRange
	for {
		if p.tok.Kind != TokIdent || len(p.tok.Text) == 0 {
			return nil, fmt.Errorf("expected a letter range")
		}
		from := strings.ToUpper(p.tok.Text)[0]
		p.advance()
		to := from
		if p.tok.Kind == TokMinus {
			p.advance()
			if p.tok.Kind != TokIdent || len(p.tok.Text) == 0 {
				return nil, fmt.Errorf("expected a letter after `-`")
			}
			to = strings.ToUpper(p.tok.Text)[0]
			p.advance()
		}
		ranges = append(ranges, ast.DefTypeRange{From: from, To: to})
		if p.tok.Kind != TokComma {
			break
		}
		p.advance()
	}
	return ast.DefTypeStmt{KindName: kindName, Ranges: ranges}, nil
}

func (p *parser) parseSwap() (ast.Stmt, error) {
	p.advance() // SWAP
	a, err := p.parseExpr()
	if err != nil {
		return nil, err
	}
	if err := p.expect(TokComma, "`,`"); err != nil {
		return nil, err
	}
	b, err := p.parseExpr()
	if err != nil {
		return nil, err
	}
	return ast.SwapStmt{A: a, B: b}, nil
}
