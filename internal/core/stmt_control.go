// Jump, subroutine and conditional instructions (§4.3 GOTO, GOSUB/
// RETURN, ON...GOTO, IF).
package core

import (
	"github.com/rgwbasic/gwbasic/internal/ast"
	"github.com/rgwbasic/gwbasic/internal/gwerrors"
	"github.com/rgwbasic/gwbasic/internal/values"
)

func evalGoto(ctx *Context, s ast.GotoStmt) InstructionResult {
	target, ok := ctx.Program.ResolveLabel(s.Label)
	if !ok {
		return ErrorResult(gwerrors.UndefinedLine)
	}
	return GotoLine(target)
}

// evalGosub implements GOSUB's two-phase contract (§4.3): a first entry
// (arg == Empty) pushes the return address and jumps; being re-entered
// with ArgSubReturn (after the matching RETURN) simply advances past
// itself.
func evalGosub(ctx *Context, line int, arg LineExecutionArgument, s ast.GosubStmt) InstructionResult {
	if arg.Kind == ArgSubReturn {
		return Next()
	}
	target, ok := ctx.Program.ResolveLabel(s.Label)
	if !ok {
		return ErrorResult(gwerrors.UndefinedLine)
	}
	ctx.PushReturn(line)
	return GotoLine(target)
}

func evalReturn(ctx *Context) InstructionResult {
	ret, ok := ctx.PopReturn()
	if !ok {
		return ErrorResult(gwerrors.ReturnNoPlace)
	}
	return GotoLineWithArg(ret, LineExecutionArgument{Kind: ArgSubReturn})
}

func evalOnGoto(ctx *Context, s ast.OnGotoStmt) InstructionResult {
	selVal, err := EvalExpr(ctx, s.Selector)
	if err != nil {
		return ErrorResult(err.Error())
	}
	if !values.IsNumeric(selVal) {
		return ErrorResult(gwerrors.TypeMismatch)
	}
	k := int(values.ToFloat64(selVal))
	if k < 1 || k > len(s.Labels) {
		return Next()
	}
	target, ok := ctx.Program.ResolveLabel(s.Labels[k-1])
	if !ok {
		return ErrorResult(gwerrors.UndefinedLine)
	}
	return GotoLine(target)
}

// evalIf implements both IF forms (§4.3): a numeric condition is false
// iff it equals BASIC false (0); a string condition is treated as false.
// Form A jumps to ThenLabel (or falls through);
// Form B executes ThenStmts in order and surfaces the last one's result
// so a nested STOP/GOTO still propagates correctly.
func evalIf(ctx *Context, line int, s ast.IfStmt) InstructionResult {
	cond, err := EvalExpr(ctx, s.Cond)
	if err != nil {
		return ErrorResult(err.Error())
	}
	if !values.IsNumeric(cond) || values.ToFloat64(cond) == 0 {
		return Next()
	}

	if s.ThenStmts != nil {
		var result InstructionResult
		for _, stmt := range s.ThenStmts {
			result = EvalStmt(ctx, line, ArgEmptyValue, stmt)
		}
		return result
	}

	target, ok := ctx.Program.ResolveLabel(s.ThenLabel)
	if !ok {
		return ErrorResult(gwerrors.UndefinedLine)
	}
	return GotoLine(target)
}
