package miniparser

import (
	"fmt"

	"github.com/rgwbasic/gwbasic/internal/ast"
)

// parser is the shared recursive-descent state for both expression and
// statement grammar; stmt.go and expr.go are two faces of the same
// type, split the way the teacher splits its own parser into
// concern-sized files.
type parser struct {
	lex *Lexer
	tok Token
}

func newParserState(line string) *parser {
	p := &parser{lex: NewLexer(line)}
	p.advance()
	return p
}

func (p *parser) advance() {
	p.tok = p.lex.Next()
}

func (p *parser) expect(kind TokenKind, what string) error {
	if p.tok.Kind != kind {
		return fmt.Errorf("expected %s", what)
	}
	p.advance()
	return nil
}

// Precedence climbing over BASIC's flat comparison/additive/
// multiplicative/power ladder (§4.2: `+ - * / ^` plus the six
// comparisons, no boolean operators in scope).

func (p *parser) parseExpr() (ast.Expr, error) {
	return p.parseComparison()
}

var compareOps = map[TokenKind]string{
	TokEq: "=", TokNe: "<>", TokLt: "<", TokGt: ">", TokLe: "<=", TokGe: ">=",
}

func (p *parser) parseComparison() (ast.Expr, error) {
	left, err := p.parseAdditive()
	if err != nil {
		return nil, err
	}
	for {
		op, ok := compareOps[p.tok.Kind]
		if !ok {
			return left, nil
		}
		p.advance()
		right, err := p.parseAdditive()
		if err != nil {
			return nil, err
		}
		left = ast.BinaryExpr{Op: op, Left: left, Right: right}
	}
}

func (p *parser) parseAdditive() (ast.Expr, error) {
	left, err := p.parseMultiplicative()
	if err != nil {
		return nil, err
	}
	for p.tok.Kind == TokPlus || p.tok.Kind == TokMinus {
		op := "+"
		if p.tok.Kind == TokMinus {
			op = "-"
		}
		p.advance()
		right, err := p.parseMultiplicative()
		if err != nil {
			return nil, err
		}
		left = ast.BinaryExpr{Op: op, Left: left, Right: right}
	}
	return left, nil
}

func (p *parser) parseMultiplicative() (ast.Expr, error) {
	left, err := p.parsePower()
	if err != nil {
		return nil, err
	}
	for p.tok.Kind == TokStar || p.tok.Kind == TokSlash {
		op := "*"
		if p.tok.Kind == TokSlash {
			op = "/"
		}
		p.advance()
		right, err := p.parsePower()
		if err != nil {
			return nil, err
		}
		left = ast.BinaryExpr{Op: op, Left: left, Right: right}
	}
	return left, nil
}

func (p *parser) parsePower() (ast.Expr, error) {
	left, err := p.parseUnary()
	if err != nil {
		return nil, err
	}
	if p.tok.Kind == TokCaret {
		p.advance()
		// Right-associative, per the usual BASIC convention.
		right, err := p.parsePower()
		if err != nil {
			return nil, err
		}
		return ast.BinaryExpr{Op: "^", Left: left, Right: right}, nil
	}
	return left, nil
}

func (p *parser) parseUnary() (ast.Expr, error) {
	if p.tok.Kind == TokMinus {
		p.advance()
		x, err := p.parseUnary()
		if err != nil {
			return nil, err
		}
		return ast.UnaryMinusExpr{X: x}, nil
	}
	if p.tok.Kind == TokPlus {
		p.advance()
		return p.parseUnary()
	}
	return p.parsePrimary()
}

func (p *parser) parsePrimary() (ast.Expr, error) {
	switch p.tok.Kind {
	case TokNumber:
		lit, err := numberLiteral(p.tok)
		p.advance()
		return lit, err
	case TokString:
		s := p.tok.Text
		p.advance()
		return ast.StringLiteral{Value: s}, nil
	case TokLParen:
		p.advance()
		inner, err := p.parseExpr()
		if err != nil {
			return nil, err
		}
		if err := p.expect(TokRParen, "`)`"); err != nil {
			return nil, err
		}
		return inner, nil
	case TokIdent:
		name := p.tok.Text
		p.advance()
		if name == "INKEY$" {
			return ast.InKeyExpr{}, nil
		}
		if p.tok.Kind == TokLParen {
			p.advance()
			var args []ast.Expr
			if p.tok.Kind != TokRParen {
				for {
					a, err := p.parseExpr()
					if err != nil {
						return nil, err
					}
					args = append(args, a)
					if p.tok.Kind != TokComma {
						break
					}
					p.advance()
				}
			}
			if err := p.expect(TokRParen, "`)`"); err != nil {
				return nil, err
			}
			return ast.ParenAccessExpr{Name: name, Args: args}, nil
		}
		return ast.VariableExpr{Name: name}, nil
	}
	return nil, fmt.Errorf("unexpected token in expression")
}

func numberLiteral(tok Token) (ast.Expr, error) {
	switch tok.NumKind {
	case NumInt:
		n, err := parseIntLiteral(tok.NumText)
		if err != nil {
			return nil, fmt.Errorf("invalid integer literal %q", tok.NumText)
		}
		return ast.IntLiteral{Value: n}, nil
	case NumSingle:
		f, err := parseFloatLiteral(tok.NumText)
		if err != nil {
			return nil, fmt.Errorf("invalid numeric literal %q", tok.NumText)
		}
		return ast.SingleLiteral{Value: float32(f)}, nil
	default:
		f, err := parseFloatLiteral(tok.NumText)
		if err != nil {
			return nil, fmt.Errorf("invalid numeric literal %q", tok.NumText)
		}
		return ast.DoubleLiteral{Value: f}, nil
	}
}
