// scanForPartner implements the structured-pair scan shared by FOR/NEXT
// and WHILE/WEND (§3 Pair table, §4.3 FOR/NEXT and WHILE/WEND).
//
// Grounded on original_source/rgwbasic/src/eval/for_instr.rs's find_next:
// a forward scan from the opener with a nesting-depth counter so that an
// inner FOR...NEXT (or WHILE...WEND) doesn't fool the outer scan.
package core

import (
	"github.com/rgwbasic/gwbasic/internal/ast"
)

// scanForPartner scans forward from line+1 for the first closer whose
// nesting depth (relative to nested openers of the same kind) is zero.
// isOpener/isCloser classify a real line's statement. Returns -1 if no
// matching closer exists.
func scanForPartner(ctx *Context, line int, isOpener, isCloser func(ast.Stmt) bool) int {
	depth := 0
	real := ctx.Program.RealLines
	for i := line + 1; i < len(real); i++ {
		if isOpener(real[i]) {
			depth++
			continue
		}
		if isCloser(real[i]) {
			if depth == 0 {
				return i
			}
			depth--
		}
	}
	return -1
}

func isFor(s ast.Stmt) bool {
	_, ok := s.(ast.ForStmt)
	return ok
}

func isNext(s ast.Stmt) bool {
	_, ok := s.(ast.NextStmt)
	return ok
}

func isWhile(s ast.Stmt) bool {
	_, ok := s.(ast.WhileStmt)
	return ok
}

func isWend(s ast.Stmt) bool {
	_, ok := s.(ast.WendStmt)
	return ok
}

// pairPartner returns the cached partner for line, scanning and caching
// both directions on first encounter (§3 invariant 3: pair-table entries
// are mutual).
func pairPartner(ctx *Context, line int, isOpener, isCloser func(ast.Stmt) bool) (int, bool) {
	if partner, ok := ctx.PairTable[line]; ok {
		return partner, true
	}
	partner := scanForPartner(ctx, line, isOpener, isCloser)
	if partner < 0 {
		return 0, false
	}
	ctx.PairTable[line] = partner
	ctx.PairTable[partner] = line
	return partner, true
}
