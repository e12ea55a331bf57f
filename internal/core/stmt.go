// EvalStmt implements the instruction-node public contract (§4.3): every
// instruction evaluates at a real line with a driver-supplied argument,
// in a context, against a program, producing an InstructionResult.
package core

import (
	"fmt"

	"github.com/rgwbasic/gwbasic/internal/ast"
	"github.com/rgwbasic/gwbasic/internal/gwerrors"
)

// EvalStmt dispatches stmt to its implementation. line is the real-line
// index stmt occupies in ctx.Program.RealLines; arg is the driver's
// supplied LineExecutionArgument (§4.3).
func EvalStmt(ctx *Context, line int, arg LineExecutionArgument, stmt ast.Stmt) InstructionResult {
	switch s := stmt.(type) {
	case ast.LetStmt:
		return evalLet(ctx, s)
	case ast.ArrayAssignStmt:
		return evalArrayAssign(ctx, s)
	case ast.GotoStmt:
		return evalGoto(ctx, s)
	case ast.GosubStmt:
		return evalGosub(ctx, line, arg, s)
	case ast.ReturnStmt:
		return evalReturn(ctx)
	case ast.OnGotoStmt:
		return evalOnGoto(ctx, s)
	case ast.IfStmt:
		return evalIf(ctx, line, s)
	case ast.ForStmt:
		return evalFor(ctx, line, arg, s)
	case ast.NextStmt:
		return evalNext(ctx, line)
	case ast.WhileStmt:
		return evalWhile(ctx, line, s)
	case ast.WendStmt:
		return evalWend(ctx, line)
	case ast.PrintStmt:
		return evalPrint(ctx, s)
	case ast.PrintUsingStmt:
		return evalPrintUsing(ctx, s)
	case ast.InputStmt:
		return evalInput(ctx, line, arg, s)
	case ast.DataStmt:
		return Next()
	case ast.ReadStmt:
		return evalRead(ctx, s)
	case ast.DimStmt:
		return evalDim(ctx, s)
	case ast.DefTypeStmt:
		return evalDefType(ctx, s)
	case ast.SwapStmt:
		return evalSwap(ctx, s)
	case ast.RemStmt:
		return Next()
	case ast.ClsStmt:
		ctx.Console.ClearScreen()
		return Next()
	case ast.EndStmt:
		return End()
	case ast.StopStmt:
		return End()
	case ast.ListStmt:
		for _, l := range ctx.Program.List() {
			ctx.Console.PrintLine(l)
		}
		return Next()
	case ast.RunStmt:
		ctx.Reset()
		ctx.Program.Flatten()
		return GotoLine(0)
	case ast.LoadStmt:
		return evalLoad(ctx, s)
	case ast.SystemStmt:
		ctx.Console.ExitProgram()
		return End()
	default:
		return ErrorResult(fmt.Sprintf("%s: unknown instruction", gwerrors.InvalidFunctionCall))
	}
}
