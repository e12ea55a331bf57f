// Assignment instructions (§4.3 Assignment, Array assignment).
package core

import (
	"github.com/rgwbasic/gwbasic/internal/ast"
)

func evalLet(ctx *Context, s ast.LetStmt) InstructionResult {
	v, err := EvalExpr(ctx, s.Value)
	if err != nil {
		return ErrorResult(err.Error())
	}
	if err := ctx.AssignVariable(s.Name, v); err != nil {
		return ErrorResult(err.Error())
	}
	return Next()
}

func evalArrayAssign(ctx *Context, s ast.ArrayAssignStmt) InstructionResult {
	v, err := EvalExpr(ctx, s.Value)
	if err != nil {
		return ErrorResult(err.Error())
	}
	target := ast.ParenAccessExpr{Name: s.Name, Args: s.Indices}
	if err := AssignTo(ctx, target, v); err != nil {
		return ErrorResult(err.Error())
	}
	return Next()
}
